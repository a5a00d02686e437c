package measure

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPath       = "data/measurements.txt"
	DefaultBufferSize = 4 << 20
	minBufferSize     = 256
)

// Observer gets told about the progress of a run. Calls for different shards
// may happen concurrently.
type Observer interface {
	ShardDone(shard int, rows uint64, bytes int64, took time.Duration)
	Merged(stations int)
}

type nopObserver struct{}

func (nopObserver) ShardDone(int, uint64, int64, time.Duration) {}
func (nopObserver) Merged(int)                                  {}

type Options struct {
	// Workers is the number of shards, defaults to the number of CPUs.
	Workers int
	// BufferSize is the read block size of each worker.
	BufferSize int
	Observer   Observer
	Logger     log.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU()
	}
	if o.BufferSize == 0 {
		o.BufferSize = DefaultBufferSize
	}
	if o.BufferSize < minBufferSize {
		o.BufferSize = minBufferSize
	}
	if o.Observer == nil {
		o.Observer = nopObserver{}
	}
	if o.Logger == nil {
		o.Logger = log.StandardLogger()
	}
	return o
}

// Report is the outcome of a successful run.
type Report struct {
	Totals  Totals
	Text    string
	Shards  int
	Rows    uint64
	Bytes   int64
	Elapsed time.Duration
}

// Run memory maps the file at path and aggregates it.
func Run(ctx context.Context, path string, opts Options) (*Report, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer r.Close()
	return Process(ctx, r, opts)
}

// Process splits src into shards, aggregates every shard in its own
// goroutine, merges the results once all of them are done and formats the
// report. The first error stops all workers, no partial report is returned.
func Process(ctx context.Context, src Source, opts Options) (*Report, error) {
	opts = opts.withDefaults()
	started := time.Now()
	shards, err := Chunk(src, opts.Workers)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debugf("split %d bytes into %d shards", src.Len(), len(shards))

	workers := make([]*worker, len(shards))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range shards {
		w := newWorker(i, s, opts.BufferSize)
		workers[i] = w
		g.Go(func() error {
			t := time.Now()
			if err := w.run(ctx, src); err != nil {
				return err
			}
			took := time.Since(t)
			opts.Observer.ShardDone(w.id, w.rows, w.shard.Len(), took)
			opts.Logger.WithFields(log.Fields{
				"shard":    w.id,
				"rows":     w.rows,
				"stations": w.table.Len(),
			}).Debugf("shard done in %s", took)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Shards: len(shards), Bytes: int64(src.Len())}
	tables := make([]*Table, len(workers))
	for i, w := range workers {
		tables[i] = w.table
		rep.Rows += w.rows
	}
	rep.Totals = Merge(tables...)
	opts.Observer.Merged(len(rep.Totals))
	rep.Text = Format(rep.Totals)
	rep.Elapsed = time.Since(started)
	return rep, nil
}

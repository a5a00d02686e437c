package measure

import (
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
)

// worker aggregates a single shard into its own Table. Nothing in here is
// shared with other workers.
type worker struct {
	id    int
	shard Shard
	table *Table
	buf   []byte
	rows  uint64
}

func newWorker(id int, shard Shard, bufSize int) *worker {
	return &worker{
		id:    id,
		shard: shard,
		table: NewTable(),
		buf:   make([]byte, bufSize),
	}
}

// run reads the shard block by block. A line cut off at the end of a block is
// moved to the front of the buffer and completed by the next read. The final
// line of the shard does not need a terminator.
func (w *worker) run(ctx context.Context, src io.ReaderAt) error {
	var (
		r     = io.NewSectionReader(src, w.shard.Start, w.shard.Len())
		off   = w.shard.Start // file offset of buf[0]
		carry int
	)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := io.ReadFull(r, w.buf[carry:])
		eof := err == io.EOF || err == io.ErrUnexpectedEOF
		if err != nil && !eof {
			return errors.Wrapf(err, "shard %d: read at offset %d", w.id, off+int64(carry))
		}
		data := w.buf[:carry+n]
		var start int
		for {
			i := bytes.IndexByte(data[start:], newline)
			if i < 0 {
				break
			}
			if err := w.record(data[start:start+i], off+int64(start)); err != nil {
				return err
			}
			start += i + 1
		}
		rest := data[start:]
		if eof {
			if len(rest) > 0 {
				return w.record(rest, off+int64(start))
			}
			return nil
		}
		if len(rest) == len(w.buf) {
			w.rows++
			return w.fail(rest[:min(64, len(rest))], off, errRecordTooLong)
		}
		carry = copy(w.buf, rest)
		off += int64(start)
	}
}

func (w *worker) record(line []byte, off int64) error {
	w.rows++
	name, temp, err := ParseLine(line)
	if err != nil {
		return w.fail(line, off, err)
	}
	w.table.Add(name, temp)
	return nil
}

func (w *worker) fail(line []byte, off int64, err error) error {
	return &RecordError{
		Shard:  w.id,
		Offset: off,
		Line:   w.rows,
		Record: string(line),
		Err:    err,
	}
}

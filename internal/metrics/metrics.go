// Package metrics records statistics about a single aggregation run on a
// private Prometheus registry, to be dumped once the run is over.
package metrics

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "brc"

// Run implements measure.Observer.
type Run struct {
	Registry *prometheus.Registry

	rows          prometheus.Counter
	bytes         prometheus.Counter
	shards        prometheus.Counter
	stations      prometheus.Gauge
	shardDuration prometheus.Histogram
	shardRows     *prometheus.GaugeVec
}

func New() *Run {
	r := &Run{
		Registry: prometheus.NewRegistry(),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_total",
			Help:      "Number of records aggregated.",
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_total",
			Help:      "Number of input bytes scanned.",
		}),
		shards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shards_total",
			Help:      "Number of shards processed.",
		}),
		stations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stations",
			Help:      "Number of distinct stations after merging.",
		}),
		shardDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shard_duration_seconds",
			Help:      "Time spent aggregating a single shard.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		shardRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "shard_rows",
			Help:      "Number of records in each shard.",
		}, []string{"shard"}),
	}
	r.Registry.MustRegister(r.rows, r.bytes, r.shards, r.stations, r.shardDuration, r.shardRows)
	return r
}

func (r *Run) ShardDone(shard int, rows uint64, bytes int64, took time.Duration) {
	r.rows.Add(float64(rows))
	r.bytes.Add(float64(bytes))
	r.shards.Inc()
	r.shardDuration.Observe(took.Seconds())
	r.shardRows.WithLabelValues(strconv.Itoa(shard)).Set(float64(rows))
}

func (r *Run) Merged(stations int) {
	r.stations.Set(float64(stations))
}

// WriteFile writes all metrics in the text exposition format, e.g. for the
// node exporter textfile collector.
func (r *Run) WriteFile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, r.Registry), "write metrics to %s", path)
}

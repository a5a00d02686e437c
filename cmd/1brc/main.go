// 1brc computes min/mean/max temperature per station.
//
// data:
//
// Tamale;27.5
// Bergen;9.6
// Lodwar;37.1
// Whitehorse;-3.8
// Ouarzazate;19.1
//
// Usage:
//
//	$ 1brc [flags] [measurements.txt]
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/miku/1brc/internal/logger"
	"github.com/miku/1brc/internal/measure"
	"github.com/miku/1brc/internal/metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	workers     int
	bufferSize  int
	logLevel    string
	cpuprofile  string
	metricsFile string
)

func init() {
	rootCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of shards processed in parallel")
	rootCmd.Flags().IntVar(&bufferSize, "buffer-size", measure.DefaultBufferSize, "read block size per worker in bytes")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level. panic|fatal|error|warning|info|debug")
	rootCmd.Flags().StringVar(&cpuprofile, "cpuprofile", "", "file to write cpu profile to")
	rootCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write run metrics in prometheus text format to this file")
}

var rootCmd = &cobra.Command{
	Use:           "1brc [file]",
	Short:         "aggregate temperature measurements per station",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Setup(os.Stderr, logLevel, "1brc"); err != nil {
			return err
		}
		fn := measure.DefaultPath
		if len(args) > 0 {
			fn = args[0]
		}
		if cpuprofile != "" {
			f, err := os.Create(cpuprofile)
			if err != nil {
				return errors.Wrap(err, "create cpu profile")
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return errors.Wrap(err, "start cpu profile")
			}
			defer pprof.StopCPUProfile()
		}
		return run(context.Background(), fn)
	},
}

func run(ctx context.Context, fn string) error {
	m := metrics.New()
	rep, err := measure.Run(ctx, fn, measure.Options{
		Workers:    workers,
		BufferSize: bufferSize,
		Observer:   m,
	})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(os.Stdout, rep.Text); err != nil {
		return errors.Wrap(err, "write report")
	}
	log.WithFields(log.Fields{
		"shards":   rep.Shards,
		"rows":     rep.Rows,
		"bytes":    rep.Bytes,
		"stations": len(rep.Totals),
	}).Infof("aggregated %s in %s", fn, rep.Elapsed)
	if metricsFile != "" {
		return m.WriteFile(metricsFile)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

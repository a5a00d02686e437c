// 1brc-gen writes a synthetic measurements file.
//
//	$ 1brc-gen --rows 1000000000 > data/measurements.txt
package main

import (
	"os"
	"time"

	"github.com/miku/1brc/internal/gen"
	"github.com/miku/1brc/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rows     int
	seed     int64
	output   string
	logLevel string
)

func init() {
	genCmd.Flags().IntVarP(&rows, "rows", "n", 1_000_000, "number of records to write")
	genCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	genCmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout if empty")
	genCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level. panic|fatal|error|warning|info|debug")
}

var genCmd = &cobra.Command{
	Use:           "1brc-gen",
	Short:         "generate station measurements",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Setup(os.Stderr, logLevel, "1brc-gen"); err != nil {
			return err
		}
		if rows < 0 {
			return errors.Errorf("rows must not be negative, got %d", rows)
		}
		w := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(err, "create output")
			}
			defer f.Close()
			w = f
		}
		started := time.Now()
		if err := gen.New(seed, nil).Write(w, rows); err != nil {
			return err
		}
		log.WithFields(log.Fields{"rows": rows, "seed": seed}).Infof("generated in %s", time.Since(started))
		if output != "" {
			return errors.Wrap(w.Close(), "close output")
		}
		return nil
	},
}

func main() {
	if err := genCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

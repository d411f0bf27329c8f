// distfit reads newline-separated numbers, describes their
// distribution, and ranks the distribution families that fit them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config) *cobra.Command {
	o := &fitOptions{config: cfg.fit, top: 10}
	var verbose bool
	root := &cobra.Command{
		Use:   "distfit [file...]",
		Short: "Fit probability distributions to a sample",
		Long: `distfit reads newline-separated numbers from the named files, or from
standard input, and ranks the distribution families that describe them
best. Both "." and "," are accepted as the decimal separator.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cfg.logLevel, verbose)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runFit(cmd, args, o, log)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "log per-family diagnostics")
	root.Flags().IntVar(&o.config.Bins, "bins", cfg.fit.Bins, "number of histogram `bins`")
	root.Flags().IntVar(&o.config.Parallelism, "parallel", cfg.fit.Parallelism, "fit at most `n` families at once")
	root.Flags().IntVar(&o.top, "top", o.top, "show the best `n` fits, or all if 0")
	root.Flags().BoolVar(&o.json, "json", false, "write the report as JSON")

	root.AddCommand(newSampleCmd(cfg), newListCmd())
	return root
}

// newLogger returns a development logger if verbose is set and
// otherwise a production logger at the named level.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

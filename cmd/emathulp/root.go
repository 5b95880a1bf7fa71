package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-emath/hwy/contrib/workerpool"
)

// options are the flags shared by every subcommand.
type options struct {
	verbose bool
	workers int

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "emathulp",
		Short:         "Measure and tune the accuracy of go-emath",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyEnv(cmd.Flags()); err != nil {
				return err
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress at debug level")
	pf.IntVar(&opts.workers, "workers", 0, "worker goroutines (0 uses GOMAXPROCS)")

	cmd.AddCommand(newBackendsCmd(opts), newSweepCmd(opts), newSearchCmd(opts))
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *options) pool() *workerpool.Pool {
	p := workerpool.New(o.workers)
	o.logger.Debug("worker pool", "workers", p.NumWorkers())
	return p
}

// envName maps a flag to its environment fallback: --max-steps reads
// EMATHULP_MAX_STEPS.
func envName(flag string) string {
	return "EMATHULP_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyEnv sets every flag the user did not pass from its environment
// variable, through the flag's own parser.
func applyEnv(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		v, ok := os.LookupEnv(envName(f.Name))
		if !ok {
			return
		}
		if serr := fs.Set(f.Name, v); serr != nil {
			err = fmt.Errorf("%s=%s: %w", envName(f.Name), strconv.Quote(v), serr)
		}
	})
	return err
}

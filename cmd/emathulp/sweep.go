package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-emath/hwy/contrib/math"
	"github.com/ajroetker/go-emath/internal/ulp"
)

type sweepOptions struct {
	funcs      []string
	precisions []int
	backends   []string
	samples    int
	seed       int64
	strict     bool
}

func newSweepCmd(opts *options) *cobra.Command {
	so := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Report the maximum ULP error per function, precision and backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, opts, so)
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&so.funcs, "funcs", []string{"all"}, "functions to measure, or all")
	f.IntSliceVar(&so.precisions, "precision", []int{64, 32}, "precisions to measure (32, 64)")
	f.StringSliceVar(&so.backends, "backends", []string{"all"}, "backend names to measure, or all")
	f.IntVar(&so.samples, "samples", 10000, "random arguments per function and precision")
	f.Int64Var(&so.seed, "seed", 42, "sampling seed")
	f.BoolVar(&so.strict, "strict", false, "fail when any result exceeds its bound")
	return cmd
}

// selectBackends filters the available backends by name.
func selectBackends(names []string) ([]math.Backend, error) {
	all := math.Backends()
	names = lo.Map(names, func(s string, _ int) string { return strings.ToLower(strings.TrimSpace(s)) })
	if len(names) == 0 || lo.Contains(names, "all") {
		return all, nil
	}
	known := lo.Map(all, func(b math.Backend, _ int) string { return b.Name })
	if missing := lo.Without(names, known...); len(missing) > 0 {
		return nil, fmt.Errorf("backend %s not available here (have %s)",
			strings.Join(missing, ", "), strings.Join(known, ", "))
	}
	return lo.Filter(all, func(b math.Backend, _ int) bool { return lo.Contains(names, b.Name) }), nil
}

func runSweep(cmd *cobra.Command, opts *options, so *sweepOptions) error {
	fns, err := ulp.ParseFuncs(so.funcs)
	if err != nil {
		return err
	}
	bs, err := selectBackends(so.backends)
	if err != nil {
		return err
	}
	precisions := lo.Uniq(so.precisions)

	pool := opts.pool()
	defer pool.Close()

	opts.logger.Info("sweep",
		"funcs", len(fns), "precisions", precisions,
		"backends", lo.Map(bs, func(b math.Backend, _ int) string { return b.Name }),
		"samples", so.samples)

	s := &ulp.Sweep{Samples: so.samples, Seed: so.seed, Pool: pool, Logger: opts.logger}
	results, err := s.Run(cmd.Context(), fns, precisions, bs)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	if err := writeReport(cmd.OutOrStdout(), buildReport(results)); err != nil {
		return err
	}
	over := overBound(results)
	for _, r := range over {
		opts.logger.Warn("bound exceeded", "func", r.Func, "precision", r.Precision,
			"backend", r.Backend, "max_ulp", r.MaxULP, "bound", r.Bound)
	}
	if so.strict && len(over) > 0 {
		return fmt.Errorf("%d results exceed their bound", len(over))
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-emath/internal/ulp"
)

type searchOptions struct {
	fn         string
	precision  int
	iterations int
	maxSteps   int
	seed       int64
}

func newSearchCmd(opts *options) *cobra.Command {
	so := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Randomly perturb a coefficient table looking for a lower maximum error",
		Long: `search perturbs the exp (64-bit) or asin (32-bit) coefficient table and
keeps the candidate with the lowest maximum ULP error on a fixed grid.
Interrupting the search still prints the best table found so far.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, opts, so)
		},
	}
	f := cmd.Flags()
	f.StringVar(&so.fn, "func", "exp", "function whose table to search (exp or asin)")
	f.IntVar(&so.precision, "precision", 64, "precision of the table (64 for exp, 32 for asin)")
	f.IntVar(&so.iterations, "iterations", 10000, "candidate tables to try")
	f.IntVar(&so.maxSteps, "max-steps", 0, "largest perturbation in epsilons (0 picks a default per precision)")
	f.Int64Var(&so.seed, "seed", 1, "random seed")
	return cmd
}

func runSearch(cmd *cobra.Command, opts *options, so *searchOptions) error {
	fn, err := ulp.ParseFunc(so.fn)
	if err != nil {
		return err
	}
	pool := opts.pool()
	defer pool.Close()

	s := &ulp.Search{
		Func:       fn,
		Precision:  so.precision,
		Iterations: so.iterations,
		MaxSteps:   so.maxSteps,
		Seed:       so.seed,
		Pool:       pool,
		Logger:     opts.logger,
	}
	opts.logger.Info("search", "func", fn, "precision", so.precision, "iterations", so.iterations)
	res, err := s.Run(cmd.Context())
	if err != nil && !errors.Is(err, cmd.Context().Err()) {
		return fmt.Errorf("search: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s f%d: tried %s tables\n", titler.String(fn.String()), so.precision, printer.Sprintf("%d", res.Tried))
	fmt.Fprintf(out, "baseline max ulp %.4f, best %.4f\n", res.Baseline, res.MaxULP)
	if !res.Improved() {
		fmt.Fprintln(out, "no improvement over the shipped table")
		return err
	}
	fmt.Fprintf(out, "table: {%s}\n", strings.Join(lo.Map(res.Table, func(c float64, _ int) string {
		return strconv.FormatFloat(c, 'g', -1, 64)
	}), ", "))
	return err
}

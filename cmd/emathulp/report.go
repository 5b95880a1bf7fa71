package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-emath/internal/ulp"
)

// row is one formatted line of a sweep report.
type row struct {
	Func      string
	Precision string
	Backend   string
	Samples   string
	MaxULP    string
	Bound     string
	Worst     string
	Status    string
}

var (
	titler  = cases.Title(language.English)
	printer = message.NewPrinter(language.English)
)

func formatRow(r ulp.Result) row {
	worst := fmt.Sprintf("%g", r.WorstX)
	if r.Func.Binary() {
		worst = fmt.Sprintf("%g, %g", r.WorstX, r.WorstY)
	}
	status := "ok"
	if !r.Within() {
		status = "OVER"
	}
	return row{
		Func:      titler.String(r.Func.String()),
		Precision: fmt.Sprintf("f%d", r.Precision),
		Backend:   r.Backend,
		Samples:   printer.Sprintf("%d", r.Samples),
		MaxULP:    fmt.Sprintf("%.3f", r.MaxULP),
		Bound:     fmt.Sprintf("%.1f", r.Bound),
		Worst:     worst,
		Status:    status,
	}
}

// buildReport formats results, worst offenders first within each function.
func buildReport(results []ulp.Result) []row {
	groups := lo.GroupBy(results, func(r ulp.Result) string {
		return fmt.Sprintf("%02d/%d", int(r.Func), r.Precision)
	})
	keys := lo.Keys(groups)
	slices.Sort(keys)
	var rows []row
	for _, k := range keys {
		g := groups[k]
		slices.SortStableFunc(g, func(a, b ulp.Result) int { return cmp.Compare(b.MaxULP, a.MaxULP) })
		rows = append(rows, lo.Map(g, func(r ulp.Result, _ int) row { return formatRow(r) })...)
	}
	return rows
}

func writeReport(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"FUNC", "PREC", "BACKEND", "SAMPLES", "MAX ULP", "BOUND", "WORST AT", "STATUS"}, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join([]string{r.Func, r.Precision, r.Backend, r.Samples, r.MaxULP, r.Bound, r.Worst, r.Status}, "\t"))
	}
	return tw.Flush()
}

// overBound returns the results that exceed their published bound.
func overBound(results []ulp.Result) []ulp.Result {
	return lo.Reject(results, func(r ulp.Result, _ int) bool { return r.Within() })
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-emath/hwy/contrib/math"
	"github.com/ajroetker/go-emath/internal/ulp"
)

func TestBuildReport(t *testing.T) {
	results := []ulp.Result{
		{Func: math.FuncExp, Precision: 64, Backend: "scalar", Samples: 12000, MaxULP: 0.5, WorstX: 1.5, Bound: 1.5},
		{Func: math.FuncExp, Precision: 64, Backend: "avx2", Samples: 12000, MaxULP: 0.75, WorstX: -3, Bound: 1.5},
		{Func: math.FuncAtan2, Precision: 32, Backend: "scalar", Samples: 500, MaxULP: 3.25, WorstX: 1, WorstY: -2, Bound: 3},
		{Func: math.FuncSin, Precision: 32, Backend: "scalar", Samples: 10, MaxULP: 1, WorstX: 2, Bound: 2},
		{Func: math.FuncSin, Precision: 64, Backend: "scalar", Samples: 10, MaxULP: 1, WorstX: 2, Bound: 2},
	}
	want := []row{
		{Func: "Sin", Precision: "f32", Backend: "scalar", Samples: "10", MaxULP: "1.000", Bound: "2.0", Worst: "2", Status: "ok"},
		{Func: "Sin", Precision: "f64", Backend: "scalar", Samples: "10", MaxULP: "1.000", Bound: "2.0", Worst: "2", Status: "ok"},
		{Func: "Atan2", Precision: "f32", Backend: "scalar", Samples: "500", MaxULP: "3.250", Bound: "3.0", Worst: "1, -2", Status: "OVER"},
		{Func: "Exp", Precision: "f64", Backend: "avx2", Samples: "12,000", MaxULP: "0.750", Bound: "1.5", Worst: "-3", Status: "ok"},
		{Func: "Exp", Precision: "f64", Backend: "scalar", Samples: "12,000", MaxULP: "0.500", Bound: "1.5", Worst: "1.5", Status: "ok"},
	}
	if diff := cmp.Diff(want, buildReport(results)); diff != "" {
		t.Errorf("buildReport mismatch (-want +got):\n%s", diff)
	}

	over := overBound(results)
	if len(over) != 1 || over[0].Func != math.FuncAtan2 {
		t.Errorf("overBound = %+v, want the atan2 result only", over)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBackendsCmd(t *testing.T) {
	out, err := run(t, "backends")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"detected:", "selected: " + math.CurrentBackend().Name, "scalar"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestSweepCmd(t *testing.T) {
	out, err := run(t, "sweep", "--funcs", "floor,ceil", "--precision", "64", "--backends", "scalar", "--samples", "50", "--workers", "2", "--strict")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header and two rows:\n%s", len(lines), out)
	}
	for _, l := range lines[1:] {
		if !strings.Contains(l, "0.000") || !strings.HasSuffix(strings.TrimSpace(l), "ok") {
			t.Errorf("unexpected row %q", l)
		}
	}
}

func TestSweepCmdErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown func", []string{"sweep", "--funcs", "gamma"}, "unknown function"},
		{"unknown backend", []string{"sweep", "--backends", "avx512"}, "not available"},
		{"bad precision", []string{"sweep", "--funcs", "sin", "--precision", "16", "--samples", "1"}, "precision"},
		{"not searchable", []string{"search", "--func", "sin"}, "no searchable table"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want one containing %q", err, tt.want)
			}
		})
	}
}

func TestSearchCmd(t *testing.T) {
	out, err := run(t, "search", "--func", "exp", "--precision", "64", "--iterations", "4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Exp f64: tried 4 tables") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("EMATHULP_SAMPLES", "7")
	t.Setenv("EMATHULP_FUNCS", "floor")
	out, err := run(t, "sweep", "--precision", "32", "--backends", "scalar")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Floor") || !strings.Contains(out, " 7 ") {
		t.Errorf("env values not applied:\n%s", out)
	}

	t.Setenv("EMATHULP_SAMPLES", "many")
	if _, err := run(t, "sweep"); err == nil || !strings.Contains(err.Error(), "EMATHULP_SAMPLES") {
		t.Errorf("error = %v, want one naming EMATHULP_SAMPLES", err)
	}
}

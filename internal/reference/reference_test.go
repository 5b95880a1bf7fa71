package reference

import (
	"math"
	"math/big"
	"testing"
)

// near reports whether the reference agrees with the standard library to
// within a few float64 ULPs. The standard library is not correctly rounded,
// so this only guards against gross mistakes in the series.
func near(t *testing.T, name string, got *big.Float, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: nil result", name)
	}
	g, _ := got.Float64()
	if g == want {
		return
	}
	if diff := math.Abs(g-want) / math.Max(math.Abs(want), math.SmallestNonzeroFloat64); diff > 1e-15 {
		t.Errorf("%s = %v, want %v (rel %g)", name, g, want, diff)
	}
}

func TestUnaryAgainstStdlib(t *testing.T) {
	tests := []struct {
		name string
		ref  func(float64) *big.Float
		std  func(float64) float64
		args []float64
	}{
		{"sin", Sin, math.Sin, []float64{0.5, -2.70752239, 3, 100, 1e-8, 12345.678}},
		{"cos", Cos, math.Cos, []float64{0, 0.5, -2.70752239, 3, 100, 12345.678}},
		{"tan", Tan, math.Tan, []float64{0.5, -1.2, 3, 100}},
		{"asin", Asin, math.Asin, []float64{0, 0.25, -0.5, 0.99, 1, -1}},
		{"acos", Acos, math.Acos, []float64{0, 0.25, -0.5, 0.99, 1, -1}},
		{"atan", Atan, math.Atan, []float64{0, 0.1, -0.9, 1, 3, -1e6}},
		{"exp", Exp, math.Exp, []float64{0, 1, -1, 10.5, -700, 709}},
		{"ln", Ln, math.Log, []float64{1, 2, 0.5, 1e-300, 1e300, 1.0000001}},
		{"sqrt", Sqrt, math.Sqrt, []float64{0, 2, 1e-310, 1e308}},
		{"cbrt", Cbrt, math.Cbrt, []float64{27, -27, 2, 1e-300, -1e300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.args {
				near(t, tt.name, tt.ref(x), tt.std(x))
			}
		})
	}
}

func TestBinaryAgainstStdlib(t *testing.T) {
	near(t, "atan2(1, -1)", Atan2(1, -1), math.Atan2(1, -1))
	near(t, "atan2(-0, -1)", Atan2(math.Copysign(0, -1), -1), -math.Pi)
	near(t, "atan2(3, 0)", Atan2(3, 0), math.Pi/2)
	near(t, "pow(2, 10)", Pow(2, 10), 1024)
	near(t, "pow(1.5, -3.25)", Pow(1.5, -3.25), math.Pow(1.5, -3.25))
	near(t, "hypot(3, 4)", Hypot(3, 4), 5)
}

func TestOutOfDomain(t *testing.T) {
	tests := []struct {
		name string
		got  *big.Float
	}{
		{"asin(2)", Asin(2)},
		{"acos(-1.5)", Acos(-1.5)},
		{"ln(0)", Ln(0)},
		{"ln(-1)", Ln(-1)},
		{"sqrt(-1)", Sqrt(-1)},
		{"sin(inf)", Sin(math.Inf(1))},
		{"exp(nan)", Exp(math.NaN())},
		{"pow(-2, 3)", Pow(-2, 3)},
		{"atan2(0, 0)", Atan2(0, 0)},
	}
	for _, tt := range tests {
		if tt.got != nil {
			t.Errorf("%s = %v, want nil", tt.name, tt.got)
		}
	}
}

func TestPi(t *testing.T) {
	near(t, "pi", Pi(), math.Pi)
	if Pi().Prec() < Prec {
		t.Errorf("Pi precision %d < %d", Pi().Prec(), Prec)
	}
}

package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-emath/hwy"
)

var (
	negZero = stdmath.Copysign(0, -1)
	posInf  = stdmath.Inf(1)
	negInf  = stdmath.Inf(-1)
	qnan    = stdmath.NaN()
)

// same reports bit-level agreement up to NaN payload: NaN matches NaN and
// zeros must agree in sign.
func same[T hwy.Floats](got, want T) bool {
	if want != want {
		return got != got
	}
	return got == want && signbit(got) == signbit(want)
}

type unaryCase struct {
	fn   Func
	in   float64
	want float64
}

// Exact results every backend must reproduce at both precisions.
var unaryCases = []unaryCase{
	{FuncSin, 0, 0}, {FuncSin, negZero, negZero}, {FuncSin, posInf, qnan}, {FuncSin, qnan, qnan},
	{FuncCos, posInf, qnan}, {FuncCos, qnan, qnan},
	{FuncTan, 0, 0}, {FuncTan, negZero, negZero}, {FuncTan, negInf, qnan},

	{FuncAsin, negZero, negZero}, {FuncAsin, 1.0000001, qnan}, {FuncAsin, -2, qnan}, {FuncAsin, qnan, qnan},
	{FuncAcos, 1.0000001, qnan}, {FuncAcos, -1.5, qnan},
	{FuncAtan, negZero, negZero}, {FuncAtan, 0, 0}, {FuncAtan, qnan, qnan},
	{FuncAtan, posInf, stdmath.Pi / 2}, {FuncAtan, negInf, -stdmath.Pi / 2},

	{FuncExp, 0, 1}, {FuncExp, posInf, posInf}, {FuncExp, -1000, 0}, {FuncExp, negInf, 0}, {FuncExp, 1000, posInf}, {FuncExp, qnan, qnan},
	{FuncLn, 1, 0}, {FuncLn, 0, negInf}, {FuncLn, negZero, negInf}, {FuncLn, -1, qnan}, {FuncLn, posInf, posInf}, {FuncLn, qnan, qnan},

	{FuncSqrt, 0, 0}, {FuncSqrt, negZero, negZero}, {FuncSqrt, -1, qnan}, {FuncSqrt, posInf, posInf}, {FuncSqrt, 4, 2}, {FuncSqrt, qnan, qnan},
	{FuncCbrt, 27, 3}, {FuncCbrt, -27, -3}, {FuncCbrt, 0, 0}, {FuncCbrt, negZero, negZero},
	{FuncCbrt, posInf, posInf}, {FuncCbrt, negInf, negInf}, {FuncCbrt, qnan, qnan},

	{FuncFloor, 2.5, 2}, {FuncFloor, -0.5, -1}, {FuncFloor, -2, -2}, {FuncFloor, negZero, negZero},
	{FuncFloor, 0.25, 0}, {FuncFloor, 1e30, 1e30}, {FuncFloor, negInf, negInf}, {FuncFloor, qnan, qnan},
	{FuncCeil, 2.5, 3}, {FuncCeil, -0.5, negZero}, {FuncCeil, 2, 2}, {FuncCeil, negZero, negZero},
	{FuncCeil, 0.25, 1}, {FuncCeil, -1e30, -1e30}, {FuncCeil, posInf, posInf}, {FuncCeil, qnan, qnan},
}

type binaryCase struct {
	fn   Func
	x, y float64
	want float64
}

var binaryCases = []binaryCase{
	{FuncPow, -2, 3, -8}, {FuncPow, -15, 0.2, qnan}, {FuncPow, 2, 0, 1}, {FuncPow, 0, 2, 0},
	{FuncPow, negZero, 3, negZero}, {FuncPow, 0, -1, posInf}, {FuncPow, 2, posInf, posInf},
	{FuncPow, 2, negInf, 0}, {FuncPow, posInf, -1, posInf}, {FuncPow, qnan, 2, qnan}, {FuncPow, 2, qnan, qnan},
	{FuncPow, 10, 400, posInf},

	{FuncHypot, posInf, qnan, posInf}, {FuncHypot, qnan, negInf, posInf}, {FuncHypot, qnan, 1, qnan},
	{FuncHypot, 0, -7, 7}, {FuncHypot, -7, 0, 7}, {FuncHypot, 0, 0, 0},

	{FuncAtan2, 0, 0, 0}, {FuncAtan2, negZero, 0, negZero}, {FuncAtan2, 0, -1, stdmath.Pi}, {FuncAtan2, negZero, -1, -stdmath.Pi},
	{FuncAtan2, 0, negZero, stdmath.Pi}, {FuncAtan2, negZero, negZero, -stdmath.Pi},
	{FuncAtan2, 1, 0, stdmath.Pi / 2}, {FuncAtan2, -1, negZero, -stdmath.Pi / 2},
	{FuncAtan2, posInf, posInf, stdmath.Pi / 4}, {FuncAtan2, negInf, posInf, -stdmath.Pi / 4},
	{FuncAtan2, 1, posInf, 0}, {FuncAtan2, -1, posInf, negZero}, {FuncAtan2, 1, negInf, stdmath.Pi}, {FuncAtan2, -1, negInf, -stdmath.Pi},
	{FuncAtan2, posInf, -3, stdmath.Pi / 2}, {FuncAtan2, negInf, 3, -stdmath.Pi / 2},
	{FuncAtan2, qnan, 1, qnan}, {FuncAtan2, 1, qnan, qnan},
}

func TestSpecialValues64(t *testing.T) {
	for _, b := range Backends() {
		t.Run(b.Name, func(t *testing.T) {
			for _, c := range unaryCases {
				if got := b.Kernels64.Unary(c.fn)(c.in); !same(got, c.want) {
					t.Errorf("%v(%v) = %v, want %v", c.fn, c.in, got, c.want)
				}
			}
			for _, c := range binaryCases {
				if got := b.Kernels64.Binary(c.fn)(c.x, c.y); !same(got, c.want) {
					t.Errorf("%v(%v, %v) = %v, want %v", c.fn, c.x, c.y, got, c.want)
				}
			}
		})
	}
}

func TestSpecialValues32(t *testing.T) {
	for _, b := range Backends() {
		t.Run(b.Name, func(t *testing.T) {
			for _, c := range unaryCases {
				if got := b.Kernels32.Unary(c.fn)(float32(c.in)); !same(got, float32(c.want)) {
					t.Errorf("%v(%v) = %v, want %v", c.fn, float32(c.in), got, float32(c.want))
				}
			}
			for _, c := range binaryCases {
				if got := b.Kernels32.Binary(c.fn)(float32(c.x), float32(c.y)); !same(got, float32(c.want)) {
					t.Errorf("%v(%v, %v) = %v, want %v", c.fn, float32(c.x), float32(c.y), got, float32(c.want))
				}
			}
		})
	}
}

func TestAsinEdges(t *testing.T) {
	for _, b := range Backends() {
		if got := b.Kernels64.Asin(1); got != stdmath.Pi/2 {
			t.Errorf("%s: asin(1) = %v, want π/2", b.Name, got)
		}
		if got := b.Kernels64.Asin(-1); got != -stdmath.Pi/2 {
			t.Errorf("%s: asin(-1) = %v, want -π/2", b.Name, got)
		}
		if got := b.Kernels32.Asin(1); got != float32(stdmath.Pi/2) {
			t.Errorf("%s: asin32(1) = %v, want π/2", b.Name, got)
		}
		if got := b.Kernels64.Atan(posInf); got != stdmath.Pi/2 {
			t.Errorf("%s: atan(+Inf) = %v, want π/2", b.Name, got)
		}
	}
}

// TestKnownValue pins one result bit for bit on every backend and in every
// lane of every vector width.
func TestKnownValue(t *testing.T) {
	const x, want = -2.70752239, -0.4205670692548423
	for _, b := range Backends() {
		if got := b.Kernels64.Sin(x); got != want {
			t.Errorf("%s: sin(%v) = %v, want %v", b.Name, x, got, want)
		}
	}
	for _, width := range []int{16, 32} {
		n := hwy.LanesFor[float64](width)
		v := Sin(hwy.SetN(x, n))
		for i := range n {
			if got := v.GetLane(i); got != want {
				t.Errorf("width %d lane %d: %v, want %v", width, i, got, want)
			}
		}
	}
	in := make([]float64, 11)
	for i := range in {
		in[i] = x
	}
	out := make([]float64, len(in))
	SinSlice(in, out)
	for i, got := range out {
		if got != want {
			t.Errorf("SinSlice[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestCbrtRoundTrip(t *testing.T) {
	for _, b := range Backends() {
		for e := -300; e <= 300; e += 7 {
			for _, m := range []float64{1, 1.7, 2.9, 7.3} {
				x := m * stdmath.Pow(10, float64(e))
				c := b.Kernels64.Cbrt(x)
				if rel := stdmath.Abs(c*c*c-x) / x; rel > 8*0x1p-52 {
					t.Errorf("%s: cbrt(%g)^3 off by %g relative", b.Name, x, rel)
				}
				if got := b.Kernels64.Cbrt(-x); got != -c {
					t.Errorf("%s: cbrt(-%g) = %v, want %v", b.Name, x, got, -c)
				}
			}
		}
	}
}

// rintk rounds ties away from zero, unlike the hardware's ties-to-even.
func TestRintkTies(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.5, 1}, {1.5, 2}, {2.5, 3}, {-0.5, -1}, {-2.5, -3}, {2.4999, 2}, {-3.7, -4},
	}
	for _, tt := range tests {
		if got := rintk(tt.in); got != tt.want {
			t.Errorf("rintk(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got := rintk(float32(tt.in)); got != float32(tt.want) {
			t.Errorf("rintk32(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got := stdmath.RoundToEven(tt.in); tt.in == 2.5 && got == tt.want {
			t.Errorf("RoundToEven(2.5) = %v; ties test no longer discriminates", got)
		}
	}
}

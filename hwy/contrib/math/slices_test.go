package math

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/go-emath/hwy"
)

func randomSlice[T hwy.Floats](rng *rand.Rand, n int, lo, hi float64) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(lo + (hi-lo)*rng.Float64())
	}
	return s
}

// The slice helpers must match the current backend's scalar entry points
// element for element, for lengths that exercise the tail.
func TestUnarySlices(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	helpers := []struct {
		fn     Func
		s64    func(in, out []float64)
		s32    func(in, out []float32)
		lo, hi float64
	}{
		{FuncSin, SinSlice[float64], SinSlice[float32], -50, 50},
		{FuncCos, CosSlice[float64], CosSlice[float32], -50, 50},
		{FuncTan, TanSlice[float64], TanSlice[float32], -1.5, 1.5},
		{FuncAsin, AsinSlice[float64], AsinSlice[float32], -1, 1},
		{FuncAcos, AcosSlice[float64], AcosSlice[float32], -1, 1},
		{FuncAtan, AtanSlice[float64], AtanSlice[float32], -20, 20},
		{FuncExp, ExpSlice[float64], ExpSlice[float32], -80, 80},
		{FuncLn, LnSlice[float64], LnSlice[float32], 1e-3, 1e6},
		{FuncSqrt, SqrtSlice[float64], SqrtSlice[float32], 0, 1e6},
		{FuncCbrt, CbrtSlice[float64], CbrtSlice[float32], -1e6, 1e6},
		{FuncFloor, FloorSlice[float64], FloorSlice[float32], -100, 100},
		{FuncCeil, CeilSlice[float64], CeilSlice[float32], -100, 100},
	}
	k64, k32 := CurrentBackend().Kernels64, CurrentBackend().Kernels32
	for _, h := range helpers {
		t.Run(h.fn.String(), func(t *testing.T) {
			for _, n := range []int{0, 1, 3, 4, 7, 8, 17, 64} {
				in64 := randomSlice[float64](rng, n, h.lo, h.hi)
				out64 := make([]float64, n)
				h.s64(in64, out64)
				for i, x := range in64 {
					if want := k64.Unary(h.fn)(x); !same(out64[i], want) {
						t.Errorf("n=%d [%d] %v(%v) = %v, want %v", n, i, h.fn, x, out64[i], want)
					}
				}

				in32 := randomSlice[float32](rng, n, h.lo, h.hi)
				out32 := make([]float32, n)
				h.s32(in32, out32)
				for i, x := range in32 {
					if want := k32.Unary(h.fn)(x); !same(out32[i], want) {
						t.Errorf("n=%d [%d] %v32(%v) = %v, want %v", n, i, h.fn, x, out32[i], want)
					}
				}
			}
		})
	}
}

func TestBinarySlices(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	k64 := CurrentBackend().Kernels64
	for _, n := range []int{1, 5, 9, 33} {
		a := randomSlice[float64](rng, n, 0.1, 20)
		b := randomSlice[float64](rng, n, -5, 5)
		out := make([]float64, n)

		Atan2Slice(b, a, out)
		for i := range out {
			if want := k64.Atan2(b[i], a[i]); !same(out[i], want) {
				t.Errorf("atan2(%v, %v) = %v, want %v", b[i], a[i], out[i], want)
			}
		}
		PowSlice(a, b, out)
		for i := range out {
			if want := k64.Pow(a[i], b[i]); !same(out[i], want) {
				t.Errorf("pow(%v, %v) = %v, want %v", a[i], b[i], out[i], want)
			}
		}
		HypotSlice(a, b, out)
		for i := range out {
			if want := k64.Hypot(a[i], b[i]); !same(out[i], want) {
				t.Errorf("hypot(%v, %v) = %v, want %v", a[i], b[i], out[i], want)
			}
		}
	}
}

func TestSliceLengths(t *testing.T) {
	in := []float64{1, 4, 9, 16, 25}
	out := make([]float64, 3)
	SqrtSlice(in, out)
	for i, want := range []float64{1, 2, 3} {
		if out[i] != want {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want)
		}
	}

	// In place.
	SqrtSlice(in, in)
	for i, want := range []float64{1, 2, 3, 4, 5} {
		if in[i] != want {
			t.Errorf("in-place [%d] = %v, want %v", i, in[i], want)
		}
	}

	x := []float32{2, 3}
	y := []float32{3}
	res := []float32{-1, -1}
	PowSlice(x, y, res)
	if res[0] != 8 || res[1] != -1 {
		t.Errorf("PowSlice with short y = %v, want [8 -1]", res)
	}
}

func BenchmarkSinSlice(b *testing.B) {
	in := randomSlice[float64](rand.New(rand.NewSource(1)), 1024, -100, 100)
	out := make([]float64, len(in))
	for b.Loop() {
		SinSlice(in, out)
	}
}

func BenchmarkExpSlice32(b *testing.B) {
	in := randomSlice[float32](rand.New(rand.NewSource(1)), 1024, -80, 80)
	out := make([]float32, len(in))
	for b.Loop() {
		ExpSlice(in, out)
	}
}

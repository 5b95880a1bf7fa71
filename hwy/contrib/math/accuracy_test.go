package math_test

import (
	"context"
	"fmt"
	stdmath "math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-emath/hwy/contrib/math"
	"github.com/ajroetker/go-emath/hwy/contrib/workerpool"
	"github.com/ajroetker/go-emath/internal/ulp"
)

// TestAccuracy measures every function on every available backend against
// the 128-bit reference and checks the published bounds, once per seed.
func TestAccuracy(t *testing.T) {
	samples := 40000
	if testing.Short() {
		samples = 1000
	}
	pool := workerpool.New(0)
	defer pool.Close()

	for _, seed := range []int64{1, 99, 2024} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			s := &ulp.Sweep{Samples: samples, Seed: seed, Pool: pool}
			results, err := s.Run(context.Background(), math.Funcs(), []int{64, 32}, math.Backends())
			if err != nil {
				t.Fatal(err)
			}
			for _, r := range results {
				if !r.Within() {
					t.Errorf("%s %v f%d: %.3f ulp at (%g, %g), bound %.1f",
						r.Backend, r.Func, r.Precision, r.MaxULP, r.WorstX, r.WorstY, r.Bound)
				}
			}
		})
	}
}

// edgeInputs returns hard arguments for the atan, atan2 and ln reductions
// at the given precision: atan near ±1 and at huge magnitudes, atan2 with
// extreme ratios in every quadrant, ln around 1 and the subnormal threshold.
func edgeInputs(fn math.Func, precision int) (xs, ys []float64) {
	round := func(x float64) float64 { return x }
	eps, minNormal, huge, maxExp := 0x1p-52, 2.2250738585072014e-308, 1e300, 1000
	sub := 5e-324
	if precision == 32 {
		round = func(x float64) float64 { return float64(float32(x)) }
		eps, minNormal, huge, maxExp = 0x1p-23, 1.1754943508222875e-38, 1e38, 120
		sub = 1.401298464324817e-45
	}
	add := func(x, y float64) {
		xs = append(xs, round(x))
		ys = append(ys, round(y))
	}

	switch fn {
	case math.FuncAtan:
		for k := -64; k <= 64; k++ {
			add(1+float64(k)*eps, 0)
			add(-1-float64(k)*eps, 0)
		}
		for e := 0; e < maxExp; e += 7 {
			add(stdmath.Ldexp(1.37, e), 0)
			add(stdmath.Ldexp(-1.91, e), 0)
			add(stdmath.Ldexp(1.13, -e), 0)
		}
		for _, x := range []float64{huge, -huge, eps, -eps} {
			add(x, 0)
		}
	case math.FuncAtan2:
		rng := rand.New(rand.NewSource(5))
		for _, sy := range []float64{1, -1} {
			for _, sx := range []float64{1, -1} {
				for e := -maxExp; e <= maxExp; e += 13 {
					r := min(stdmath.Ldexp(1, e), huge)
					add(sy*1.3*r, sx*0.7)
					add(sy*0.9, sx*1.7*r)
				}
				for k := -20; k <= 20; k++ {
					add(sy*(1+float64(k)*eps), sx)
					add(sy*(1+99*rng.Float64()), sx*(1+99*rng.Float64())*(1+float64(k)*eps))
				}
			}
		}
	case math.FuncLn:
		for k := -300; k <= 300; k++ {
			add(1+float64(k)*eps, 0)
		}
		for k := 1; k < 60; k++ {
			add(1+float64(k)*0x1p-30, 0)
			add(1-float64(k)*0x1p-30, 0)
		}
		for k := -40; k <= 40; k++ {
			add(minNormal*(1+float64(k)*0x1p-8), 0)
		}
		for _, x := range []float64{sub, 3 * sub, minNormal / 2, minNormal * 0.75, minNormal * 1.5} {
			add(x, 0)
		}
	}
	return xs, ys
}

func TestAccuracyEdges(t *testing.T) {
	for _, fn := range []math.Func{math.FuncAtan, math.FuncAtan2, math.FuncLn} {
		for _, precision := range []int{64, 32} {
			xs, ys := edgeInputs(fn, precision)
			bound := math.ULPBound(fn, precision)
			for _, b := range math.Backends() {
				t.Run(fmt.Sprintf("%v/f%d/%s", fn, precision, b.Name), func(t *testing.T) {
					eval := ulp.Evaluator(b, fn, precision)
					for i, x := range xs {
						if e := eval(x, ys[i], ulp.Reference(fn, x, ys[i])); !(e <= bound) {
							t.Errorf("(%g, %g): %.3f ulp, bound %.1f", x, ys[i], e, bound)
						}
					}
				})
			}
		}
	}
}

func ExampleSinF64() {
	fmt.Printf("%.6f\n", math.SinF64(0.5))
	// Output: 0.479426
}

func ExampleCbrtF32() {
	fmt.Println(math.CbrtF32(-27))
	// Output: -3
}

func ExampleExpSlice() {
	in := []float64{0, 1, 2, 3}
	out := make([]float64, len(in))
	math.ExpSlice(in, out)
	fmt.Printf("%.4f\n", out)
	// Output: [1.0000 2.7183 7.3891 20.0855]
}

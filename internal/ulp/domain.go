package ulp

import (
	stdmath "math"
	"math/rand"

	"github.com/ajroetker/go-emath/hwy/contrib/math"
)

// Range is an interval arguments are drawn from. With Log set, Lo and Hi
// are natural-log bounds and the argument is e^u for uniform u.
type Range struct {
	Lo, Hi float64
	Log    bool
}

func (r Range) draw(rng *rand.Rand) float64 {
	u := r.Lo + (r.Hi-r.Lo)*rng.Float64()
	if r.Log {
		return stdmath.Exp(u)
	}
	return u
}

// Domain is where a function's published bound is measured.
type Domain struct {
	X Range
	Y Range // binary functions only

	// SignedX mirrors half of the log-scaled X draws to negative values.
	SignedX bool
}

var (
	domains64 = [...]Domain{
		math.FuncSin:   {X: Range{Lo: -1000, Hi: 1000}},
		math.FuncCos:   {X: Range{Lo: -1000, Hi: 1000}},
		math.FuncTan:   {X: Range{Lo: -1000, Hi: 1000}},
		math.FuncAsin:  {X: Range{Lo: -1, Hi: 1}},
		math.FuncAcos:  {X: Range{Lo: -1, Hi: 1}},
		math.FuncAtan:  {X: Range{Lo: -100, Hi: 100}},
		math.FuncAtan2: {X: Range{Lo: -100, Hi: 100}, Y: Range{Lo: -100, Hi: 100}},
		math.FuncExp:   {X: Range{Lo: -700, Hi: 700}},
		math.FuncLn:    {X: Range{Lo: -700, Hi: 700, Log: true}},
		math.FuncPow:   {X: Range{Lo: -20, Hi: 20, Log: true}, Y: Range{Lo: -30, Hi: 30}},
		math.FuncSqrt:  {X: Range{Lo: -700, Hi: 700, Log: true}},
		math.FuncCbrt:  {X: Range{Lo: -700, Hi: 700, Log: true}, SignedX: true},
		math.FuncHypot: {X: Range{Lo: -1e10, Hi: 1e10}, Y: Range{Lo: -1e10, Hi: 1e10}},
		math.FuncFloor: {X: Range{Lo: -1e6, Hi: 1e6}},
		math.FuncCeil:  {X: Range{Lo: -1e6, Hi: 1e6}},
	}
	domains32 = [...]Domain{
		math.FuncSin:   {X: Range{Lo: -100, Hi: 100}},
		math.FuncCos:   {X: Range{Lo: -100, Hi: 100}},
		math.FuncTan:   {X: Range{Lo: -100, Hi: 100}},
		math.FuncAsin:  {X: Range{Lo: -1, Hi: 1}},
		math.FuncAcos:  {X: Range{Lo: -1, Hi: 1}},
		math.FuncAtan:  {X: Range{Lo: -100, Hi: 100}},
		math.FuncAtan2: {X: Range{Lo: -100, Hi: 100}, Y: Range{Lo: -100, Hi: 100}},
		math.FuncExp:   {X: Range{Lo: -87, Hi: 88}},
		math.FuncLn:    {X: Range{Lo: -80, Hi: 80, Log: true}},
		math.FuncPow:   {X: Range{Lo: -10, Hi: 10, Log: true}, Y: Range{Lo: -8, Hi: 8}},
		math.FuncSqrt:  {X: Range{Lo: -80, Hi: 80, Log: true}},
		math.FuncCbrt:  {X: Range{Lo: -80, Hi: 80, Log: true}, SignedX: true},
		math.FuncHypot: {X: Range{Lo: -1e6, Hi: 1e6}, Y: Range{Lo: -1e6, Hi: 1e6}},
		math.FuncFloor: {X: Range{Lo: -1e5, Hi: 1e5}},
		math.FuncCeil:  {X: Range{Lo: -1e5, Hi: 1e5}},
	}
)

// DomainOf returns the sampling domain of fn at precision 32 or 64.
func DomainOf(fn math.Func, precision int) (Domain, error) {
	if err := CheckPrecision(precision); err != nil {
		return Domain{}, err
	}
	if fn < 0 || int(fn) >= len(domains64) {
		return Domain{}, ErrUnknownFunc
	}
	if precision == 32 {
		return domains32[fn], nil
	}
	return domains64[fn], nil
}

// Sample draws one argument pair. At precision 32 both values are rounded
// to float32 first, so the reference sees exactly what the kernel sees.
func (d Domain) Sample(rng *rand.Rand, precision int) (x, y float64) {
	x = d.X.draw(rng)
	if d.SignedX && rng.Intn(2) == 1 {
		x = -x
	}
	if d.Y != (Range{}) {
		y = d.Y.draw(rng)
	}
	if precision == 32 {
		x, y = float64(float32(x)), float64(float32(y))
	}
	return x, y
}

// Samples draws n argument pairs from a generator seeded with seed.
func (d Domain) Samples(n int, seed int64, precision int) (xs, ys []float64) {
	rng := rand.New(rand.NewSource(seed))
	xs, ys = make([]float64, n), make([]float64, n)
	for i := range n {
		xs[i], ys[i] = d.Sample(rng, precision)
	}
	return xs, ys
}

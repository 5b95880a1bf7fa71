package math

import (
	"github.com/ajroetker/go-emath/hwy"
	"github.com/ajroetker/go-emath/hwy/contrib/dd"
)

// pow evaluates exp(y·ln|x|) with both the logarithm and the exponential
// carried in double-double. Single precision widens to float64, runs the
// same kernel and rounds once, so the float32 result carries a single
// rounding error and there is no separate float32 table to keep in sync.

var (
	ln2DD       = dd.DD[float64]{Hi: ln2_f64, Lo: ln2Lo_f64}
	twoThirdsDD = dd.DD[float64]{Hi: twoThirds, Lo: twoThirdsLo}
)

// logk returns ln(d) for finite positive d as a double-double.
func logk(d float64) dd.DD[float64] {
	sub := d < minNormal64
	if sub {
		d *= 0x1p64
	}
	e := ilogb2k(d * (1 / 0.75))
	m := ldexp3k(d, -e)
	if sub {
		e -= 64
	}
	x := dd.Div(dd.TwoSum(-1, m), dd.TwoSum(1, m))
	x2 := x.Square()
	t := horner(x2.Hi, logkCoeffs_f64)

	s := ln2DD.MulFloat(e)
	s = dd.Add(s, x.Scale(2))
	x = dd.Mul(x2, x)
	s = dd.Add(s, dd.Mul(x, twoThirdsDD))
	x = dd.Mul(x2, x)
	return dd.Add(s, x.MulFloat(t))
}

// expk returns e^d for a double-double d, flushing to 0 below -1000.
func expk(d dd.DD[float64]) float64 {
	q := rintk((d.Hi + d.Lo) * rln2)
	s := d.AddScalar(float64(q * -consts64.l2u))
	s = s.AddScalar(float64(q * -consts64.l2l))
	s = s.Normalize()
	u := horner(s.Hi, expkCoeffs_f64)
	t := dd.AddFast(1, s)
	t = dd.Add(t, s.Square().MulFloat(u))
	if d.Hi < expTiny_f64 {
		return 0
	}
	return ldexp2k(t.Hi+t.Lo, q)
}

func pow64(x, y float64) float64 {
	d := logk(eabs(x)).MulFloat(y)
	r := expk(d)
	if d.Hi > powHuge_f64 || isNaN(r) {
		r = infValue
	}
	integral := floork(y) == y
	if x == 0 {
		r = 0
		if y < 0 {
			r = infValue
		}
	}
	if signbit(x) && integral && isOdd(y) {
		r = -r
	}
	if y == 0 {
		r = 1
	}
	if isNaN(x) || isNaN(y) {
		r = nanValue
	}
	if y == -infValue {
		r = 0
	}
	if y == infValue || isInf(x) {
		r = infValue
	}
	if x < 0 && !integral {
		r = nanValue
	}
	return r
}

func powScalar[T hwy.Floats](x, y T) T {
	return T(pow64(float64(x), float64(y)))
}

func logkVec(d hwy.Vec[float64]) dd.Vec[float64] {
	n := d.NumLanes()
	sub := hwy.LessThan(d, splat[float64](minNormal64, n))
	d = hwy.IfThenElse(sub, hwy.Mul(d, splat[float64](0x1p64, n)), d)
	e := hwy.ILogB2K(hwy.Mul(d, splat[float64](1/0.75, n)))
	m := hwy.LdExp3K(d, hwy.Neg(e))
	e = hwy.IfThenElse(sub, hwy.Sub(e, splat[float64](64, n)), e)

	one := splat[float64](1, n)
	x := dd.DivVec(dd.TwoSumVec(hwy.Neg(one), m), dd.TwoSumVec(one, m))
	x2 := x.Square()
	t := hornerVec(x2.Hi, logkCoeffs_f64)

	s := dd.Vec[float64]{Hi: splat[float64](ln2_f64, n), Lo: splat[float64](ln2Lo_f64, n)}.MulFloat(e)
	s = dd.AddVec(s, x.Scale(splat[float64](2, n)))
	x = dd.MulVec(x2, x)
	c := dd.Vec[float64]{Hi: splat[float64](twoThirds, n), Lo: splat[float64](twoThirdsLo, n)}
	s = dd.AddVec(s, dd.MulVec(x, c))
	x = dd.MulVec(x2, x)
	return dd.AddVec(s, x.MulFloat(t))
}

func expkVec(d dd.Vec[float64]) hwy.Vec[float64] {
	n := d.Hi.NumLanes()
	q := hwy.RintK(hwy.Mul(hwy.Add(d.Hi, d.Lo), splat[float64](rln2, n)))
	s := d.AddScalar(hwy.Mul(q, splat[float64](-consts64.l2u, n)))
	s = s.AddScalar(hwy.Mul(q, splat[float64](-consts64.l2l, n)))
	s = s.Normalize()
	u := hornerVec(s.Hi, expkCoeffs_f64)
	t := dd.AddFastVec(splat[float64](1, n), s)
	t = dd.AddVec(t, s.Square().MulFloat(u))
	r := hwy.LdExp2K(hwy.Add(t.Hi, t.Lo), q)
	return hwy.IfThenZeroElse(hwy.LessThan(d.Hi, splat[float64](expTiny_f64, n)), r)
}

func pow64Vec(x, y hwy.Vec[float64]) hwy.Vec[float64] {
	n := min(x.NumLanes(), y.NumLanes())
	zero := splat[float64](0, n)
	inf := splat[float64](infValue, n)

	d := logkVec(hwy.Abs(x)).MulFloat(y)
	r := expkVec(d)
	r = hwy.IfThenElse(hwy.MaskOr(hwy.GreaterThan(d.Hi, splat[float64](powHuge_f64, n)), hwy.IsNaN(r)), inf, r)

	integral := hwy.Equal(hwy.Floor(y), y)
	odd := hwy.MaskAnd(integral, isOddVec(y))
	r = hwy.IfThenElse(hwy.Equal(x, zero), hwy.IfThenElse(hwy.LessThan(y, zero), inf, zero), r)
	r = negIf(hwy.MaskAnd(hwy.SignBit(x), odd), r)
	r = hwy.IfThenElse(hwy.Equal(y, zero), splat[float64](1, n), r)
	r = hwy.IfThenElse(hwy.MaskOr(hwy.IsNaN(x), hwy.IsNaN(y)), splat[float64](nanValue, n), r)
	r = hwy.IfThenZeroElse(hwy.IsInf(y, -1), r)
	r = hwy.IfThenElse(hwy.MaskOr(hwy.IsInf(y, 1), hwy.IsInf(x, 0)), inf, r)
	return hwy.IfThenElse(hwy.MaskAnd(hwy.LessThan(x, zero), hwy.MaskNot(integral)), splat[float64](nanValue, n), r)
}

// Pow computes x^y for every lane pair. A negative base with a non-integral
// exponent is NaN; an infinite base or a +Inf exponent is +Inf; a -Inf
// exponent is 0.
func Pow[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	return hwy.DemoteFromFloat64[T](pow64Vec(hwy.PromoteToFloat64(x), hwy.PromoteToFloat64(y)))
}

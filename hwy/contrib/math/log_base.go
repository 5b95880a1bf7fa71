package math

import (
	"github.com/ajroetker/go-emath/hwy"
	"github.com/ajroetker/go-emath/hwy/contrib/dd"
)

// ln decomposes x = a·2^n with a in [0.75, 1.5) and evaluates
// ln(x) = n·ln2 + 2t + t³·P(t²), t = (a-1)/(a+1). t is carried as th + tl
// against the two-sum a+1, and n·ln2 + 2th is summed error-free, so only the
// polynomial tail is rounded before the final addition. Subnormal inputs are
// scaled into the normal range first since ilogb2k reads the raw exponent
// field.

func lnScalar[T hwy.Floats](d T) T {
	c := constsFor[T]()
	x := d
	sub := x < T(c.minNormal)
	if sub {
		x = T(x * T(c.lnPrescale))
	}
	n := ilogb2k(T(x * T(1/0.75)))
	a := ldexp3k(x, -n)
	if sub {
		n -= T(c.lnPrescaleBits)
	}
	num := a - 1
	den := dd.TwoSum(a, 1)
	th := num / den.Hi
	tl := mlaf(-th, den.Lo, mlaf(-th, den.Hi, num)) / den.Hi
	t2 := T(th * th)
	hi := T(n * T(c.ln2))
	he := mlaf(n, T(c.ln2), -hi)
	tt := T(2 * th)
	s := hi + tt
	e := hi - s + tt
	lo := mlaf(T(th*t2), horner(t2, c.ln), e+he+mlaf(n, T(c.ln2Lo), T(2*tl)))
	r := s + lo
	switch {
	case isNaN(d) || d < 0:
		return nan[T]()
	case d == 0:
		return -inf[T]()
	case isInf(d):
		return d
	}
	return r
}

// Ln computes the natural logarithm of every lane of v.
func Ln[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := v.NumLanes()
	one := splat[T](1, n)
	zero := splat[T](0, n)

	sub := hwy.LessThan(v, splat[T](c.minNormal, n))
	x := hwy.IfThenElse(sub, hwy.Mul(v, splat[T](c.lnPrescale, n)), v)
	e := hwy.ILogB2K(hwy.Mul(x, splat[T](1/0.75, n)))
	a := hwy.LdExp3K(x, hwy.Neg(e))
	e = hwy.IfThenElse(sub, hwy.Sub(e, splat[T](c.lnPrescaleBits, n)), e)

	num := hwy.Sub(a, one)
	den := dd.TwoSumVec(a, one)
	th := hwy.Div(num, den.Hi)
	negTh := hwy.Neg(th)
	tl := hwy.Div(hwy.MulAdd(negTh, den.Lo, hwy.MulAdd(negTh, den.Hi, num)), den.Hi)
	t2 := hwy.Mul(th, th)
	ln2 := splat[T](c.ln2, n)
	hi := hwy.Mul(e, ln2)
	he := hwy.MulAdd(e, ln2, hwy.Neg(hi))
	two := splat[T](2, n)
	tt := hwy.Mul(two, th)
	s := hwy.Add(hi, tt)
	lo := hwy.Add(hwy.Add(hwy.Sub(hi, s), tt), he)
	lo = hwy.Add(lo, hwy.MulAdd(e, splat[T](c.ln2Lo, n), hwy.Mul(two, tl)))
	lo = hwy.MulAdd(hwy.Mul(th, t2), hornerVec(t2, c.ln), lo)
	r := hwy.Add(s, lo)

	r = hwy.IfThenElse(hwy.IsInf(v, 1), v, r)
	r = hwy.IfThenElse(hwy.MaskOr(hwy.IsNaN(v), hwy.LessThan(v, zero)), splat[T](nanValue, n), r)
	return hwy.IfThenElse(hwy.Equal(v, zero), splat[T](-infValue, n), r)
}

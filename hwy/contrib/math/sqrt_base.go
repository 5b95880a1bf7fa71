package math

import (
	"github.com/ajroetker/go-emath/hwy"
	"github.com/ajroetker/go-emath/hwy/contrib/dd"
)

// sqrt starts from the inverse square root magic-number guess, runs three
// Newton steps and recovers the last bit as (d + x·x)·(1/x) in
// double-double. Inputs are scaled so the intermediate squares stay finite.

func rsqrtStep[T hwy.Floats](x, d T) T {
	return T(x * T(1.5-T(T(T(0.5*d)*x)*x)))
}

func sqrtScalar[T hwy.Floats](d T) T {
	c := constsFor[T]()
	q := T(0.5)
	if d < 0 {
		d = nan[T]()
	}
	if d < T(c.sqrtTiny) {
		d = T(d * T(c.sqrtTinyScale))
		q = T(c.sqrtTinyQ)
	}
	if d > T(c.sqrtHuge) {
		d = T(d * T(c.sqrtHugeScale))
		q = T(c.sqrtHugeQ)
	}
	x := hwy.FloatFromBits[T](c.sqrtMagic - hwy.FloatBits(d+T(c.sqrtBias))>>1)
	x = rsqrtStep(x, d)
	x = rsqrtStep(x, d)
	x = T(rsqrtStep(x, d) * d)
	s := dd.Mul(dd.AddFloat(d, dd.MulExact(x, x)), dd.Reciprocal(x))
	r := T(T(s.Hi+s.Lo) * q)
	if isInf(d) || d == 0 {
		return d
	}
	return r
}

// Sqrt computes the square root of every lane of v without a hardware
// square root instruction. Negative lanes are NaN and -0 stays -0.
func Sqrt[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := v.NumLanes()
	zero := splat[T](0, n)
	d := hwy.IfThenElse(hwy.LessThan(v, zero), splat[T](nanValue, n), v)
	q := splat[T](0.5, n)

	tiny := hwy.LessThan(d, splat[T](c.sqrtTiny, n))
	d = hwy.IfThenElse(tiny, hwy.Mul(d, splat[T](c.sqrtTinyScale, n)), d)
	q = hwy.IfThenElse(tiny, splat[T](c.sqrtTinyQ, n), q)
	huge := hwy.GreaterThan(d, splat[T](c.sqrtHuge, n))
	d = hwy.IfThenElse(huge, hwy.Mul(d, splat[T](c.sqrtHugeScale, n)), d)
	q = hwy.IfThenElse(huge, splat[T](c.sqrtHugeQ, n), q)

	guess := hwy.ShiftRight(hwy.BitsOf(hwy.Add(d, splat[T](c.sqrtBias, n))), 1)
	x := hwy.FromBits[T](hwy.Sub(hwy.SetN(c.sqrtMagic, n), guess))
	half, threeHalves := splat[T](0.5, n), splat[T](1.5, n)
	for range 3 {
		t := hwy.Mul(hwy.Mul(hwy.Mul(half, d), x), x)
		x = hwy.Mul(x, hwy.Sub(threeHalves, t))
	}
	x = hwy.Mul(x, d)

	s := dd.MulVec(dd.AddFloatVec(d, dd.MulExactVec(x, x)), dd.ReciprocalVec(x))
	r := hwy.Mul(hwy.Add(s.Hi, s.Lo), q)
	r = hwy.IfThenElse(hwy.IsInf(d, 1), d, r)
	return hwy.IfThenElse(hwy.Equal(d, zero), d, r)
}

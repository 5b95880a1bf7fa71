package math

import (
	"github.com/ajroetker/go-emath/hwy"
	"github.com/ajroetker/go-emath/hwy/contrib/dd"
	"github.com/ajroetker/go-emath/hwy/contrib/wideint"
)

// cbrt guesses from the exponent field divided by 3, refines with Halley's
// iteration in the overflow-safe ratio form t·(t³+2a)/(2t³+a), and finishes
// with one correction step on the exact square of the truncated estimate.
// Subnormal and very large inputs are scaled by a power of 2^3 first.

func halley[T hwy.Floats](t, a T) T {
	t3 := T(T(t*t) * t)
	return T(t * T(T(t3+T(2*a))/T(T(2*t3)+a)))
}

func cbrtScalar[T hwy.Floats](d T) T {
	if d == 0 || isInf(d) || isNaN(d) {
		return d
	}
	c := constsFor[T]()
	a, scale := d, T(1)
	switch ad := eabs(d); {
	case ad < T(c.cbrtTiny):
		a, scale = T(d*T(c.cbrtTinyScale)), T(c.cbrtTinyUnscale)
	case ad > T(c.cbrtHuge):
		a, scale = T(d*T(c.cbrtHugeScale)), T(c.cbrtHugeUnscale)
	}
	b := hwy.FloatBits(a)
	hx := (b >> c.cbrtShift) & cbrtSignMask
	hx = wideint.DivBy3(hx) + c.cbrtB1
	t := hwy.FloatFromBits[T](b&hwy.FormatOf[T]().SignMask | hx<<c.cbrtShift)
	for range c.cbrtHalley {
		t = halley(t, a)
	}
	t = upper(t)
	s := T(t * t)
	r := a / s
	w := t + t
	r = T(r-t) / T(w+r)
	t = t + T(t*r)
	return T(t * scale)
}

// Cbrt computes the cube root of every lane of v.
func Cbrt[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := v.NumLanes()
	ad := hwy.Abs(v)
	tiny := hwy.LessThan(ad, splat[T](c.cbrtTiny, n))
	huge := hwy.GreaterThan(ad, splat[T](c.cbrtHuge, n))
	a := hwy.IfThenElse(tiny, hwy.Mul(v, splat[T](c.cbrtTinyScale, n)), v)
	a = hwy.IfThenElse(huge, hwy.Mul(v, splat[T](c.cbrtHugeScale, n)), a)
	scale := hwy.IfThenElse(tiny, splat[T](c.cbrtTinyUnscale, n), splat[T](1, n))
	scale = hwy.IfThenElse(huge, splat[T](c.cbrtHugeUnscale, n), scale)

	// The 31-bit field times 0xAAAAAAAB fits in 64 bits, so the quotient
	// by 3 is exact without a 128-bit product.
	b := hwy.BitsOf(a)
	hx := hwy.And(hwy.ShiftRight(b, c.cbrtShift), hwy.SetN[uint64](cbrtSignMask, n))
	hx = hwy.ShiftRight(hwy.Mul(hx, hwy.SetN[uint64](divBy3Mul32, n)), divBy3Shift)
	hx = hwy.Add(hx, hwy.SetN(c.cbrtB1, n))
	sign := hwy.And(b, hwy.SetN(hwy.FormatOf[T]().SignMask, n))
	t := hwy.FromBits[T](hwy.Or(sign, hwy.ShiftLeft(hx, c.cbrtShift)))

	two := splat[T](2, n)
	for range c.cbrtHalley {
		t3 := hwy.Mul(hwy.Mul(t, t), t)
		num := hwy.Add(t3, hwy.Mul(two, a))
		den := hwy.Add(hwy.Mul(two, t3), a)
		t = hwy.Mul(t, hwy.Div(num, den))
	}
	t = dd.UpperVec(t)
	s := hwy.Mul(t, t)
	r := hwy.Div(a, s)
	w := hwy.Add(t, t)
	r = hwy.Div(hwy.Sub(r, t), hwy.Add(w, r))
	t = hwy.Add(t, hwy.Mul(t, r))
	t = hwy.Mul(t, scale)

	special := hwy.MaskOr(hwy.Equal(v, splat[T](0, n)), hwy.MaskNot(hwy.IsFinite(v)))
	return hwy.IfThenElse(special, v, t)
}

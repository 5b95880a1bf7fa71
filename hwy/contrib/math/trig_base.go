package math

import "github.com/ajroetker/go-emath/hwy"

// sin and cos reduce by multiples of π (cos by odd multiples of π/2) with a
// split constant, so the sign of the result follows the parity of the
// quotient. tan reduces by π/2 and inverts on odd quadrants.

func sinScalar[T hwy.Floats](d T) T {
	c := constsFor[T]()
	q := rintk(T(d * T(c.onePi)))
	r := d
	for _, p := range c.piSplit {
		r = mlaf(q, T(-p), r)
	}
	x2 := T(r * r)
	if isOdd(q) {
		r = -r
	}
	u := horner(x2, c.sin)
	u = mlaf(u, T(x2*r), r)
	switch {
	case d == 0:
		return d
	case isInf(d):
		return nan[T]()
	}
	return u
}

func cosScalar[T hwy.Floats](d T) T {
	c := constsFor[T]()
	q := 1 + 2*rintk(T(d*T(c.onePi))-0.5)
	r := d
	for _, p := range c.piSplit {
		r = mlaf(q, T(-p*0.5), r)
	}
	x2 := T(r * r)
	if quadrant(q) == 1 {
		r = -r
	}
	u := horner(x2, c.sin)
	u = mlaf(u, T(x2*r), r)
	if isInf(d) {
		return nan[T]()
	}
	return u
}

func tanScalar[T hwy.Floats](d T) T {
	c := constsFor[T]()
	q := rintk(T(d * T(c.twoPi)))
	x := d
	for _, p := range c.piSplit {
		x = mlaf(q, T(-p*0.5), x)
	}
	odd := isOdd(q)
	if odd {
		x = -x
	}
	if c.tanHalveAngle {
		x *= 0.5
	}
	x2 := T(x * x)
	u := horner(x2, c.tan)
	u = mlaf(u, T(x2*x), x)
	if c.tanHalveAngle {
		u = T(2*u) / T(1-T(u*u))
	}
	if odd {
		u = 1 / u
	}
	switch {
	case d == 0:
		return d
	case isInf(d):
		return nan[T]()
	}
	return u
}

// Sin computes sin(x) for every lane of v.
func Sin[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := v.NumLanes()
	q := hwy.RintK(hwy.Mul(v, splat[T](c.onePi, n)))
	r := v
	for _, p := range c.piSplit {
		r = hwy.MulAdd(q, splat[T](-p, n), r)
	}
	x2 := hwy.Mul(r, r)
	r = negIf(isOddVec(q), r)
	u := hornerVec(x2, c.sin)
	u = hwy.MulAdd(u, hwy.Mul(x2, r), r)

	zero := hwy.Equal(v, splat[T](0, n))
	u = hwy.IfThenElse(zero, v, u)
	return hwy.IfThenElse(hwy.IsInf(v, 0), splat[T](nanValue, n), u)
}

// Cos computes cos(x) for every lane of v.
func Cos[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := v.NumLanes()
	t := hwy.Sub(hwy.Mul(v, splat[T](c.onePi, n)), splat[T](0.5, n))
	q := hwy.MulAdd(splat[T](2, n), hwy.RintK(t), splat[T](1, n))
	r := v
	for _, p := range c.piSplit {
		r = hwy.MulAdd(q, splat[T](-p*0.5, n), r)
	}
	x2 := hwy.Mul(r, r)
	r = negIf(hwy.Equal(quadrantVec(q), splat[T](1, n)), r)
	u := hornerVec(x2, c.sin)
	u = hwy.MulAdd(u, hwy.Mul(x2, r), r)
	return hwy.IfThenElse(hwy.IsInf(v, 0), splat[T](nanValue, n), u)
}

// Tan computes tan(x) for every lane of v.
func Tan[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := v.NumLanes()
	q := hwy.RintK(hwy.Mul(v, splat[T](c.twoPi, n)))
	x := v
	for _, p := range c.piSplit {
		x = hwy.MulAdd(q, splat[T](-p*0.5, n), x)
	}
	odd := isOddVec(q)
	x = negIf(odd, x)
	one := splat[T](1, n)
	if c.tanHalveAngle {
		x = hwy.Mul(x, splat[T](0.5, n))
	}
	x2 := hwy.Mul(x, x)
	u := hornerVec(x2, c.tan)
	u = hwy.MulAdd(u, hwy.Mul(x2, x), x)
	if c.tanHalveAngle {
		u = hwy.Div(hwy.Mul(splat[T](2, n), u), hwy.Sub(one, hwy.Mul(u, u)))
	}
	u = hwy.IfThenElse(odd, hwy.Div(one, u), u)

	u = hwy.IfThenElse(hwy.Equal(v, splat[T](0, n)), v, u)
	return hwy.IfThenElse(hwy.IsInf(v, 0), splat[T](nanValue, n), u)
}

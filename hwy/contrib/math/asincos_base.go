package math

import "github.com/ajroetker/go-emath/hwy"

// asin and acos share one polynomial on [0, 0.5]. Larger magnitudes use the
// half-angle identity asin(x) = π/2 - 2·asin(sqrt((1-x)/2)).

func asinScalar[T hwy.Floats](d T) T {
	return asinWithTable(d, constsFor[T]().asin)
}

func asinWithTable[T hwy.Floats](d T, table []float64) T {
	c := constsFor[T]()
	ca := eabs(d)
	small := ca < 0.5
	x, x2 := asinArg(ca, small)
	u := horner(x2, table)
	u = mlaf(u, T(x*x2), x)
	if !small {
		u = T(c.halfPi) - T(2*u)
	}
	if ca > 1 || isNaN(d) {
		return nan[T]()
	}
	return copysignk(u, d)
}

// asinArg returns the reduced argument and its square.
func asinArg[T hwy.Floats](ca T, small bool) (x, x2 T) {
	if small {
		return ca, T(ca * ca)
	}
	x2 = T(T(1-ca) * 0.5)
	return sqrtk(x2), x2
}

func acosScalar[T hwy.Floats](d T) T {
	c := constsFor[T]()
	ca := eabs(d)
	small := ca < 0.5
	x, x2 := asinArg(ca, small)
	u := T(horner(x2, c.asin) * T(x*x2))
	var r T
	if small {
		r = T(c.halfPi) - T(copysignk(x, d)+copysignk(u, d))
	} else {
		r = T(x+u) * 2
		if d < 0 {
			r = T(T(c.piHi)-r) + T(c.piLo)
		}
	}
	if ca > 1 || isNaN(d) {
		return nan[T]()
	}
	return r
}

// asinReduce is the lane form of asinArg.
func asinReduce[T hwy.Floats](ca hwy.Vec[T], small hwy.Mask[T]) (x, x2 hwy.Vec[T]) {
	n := ca.NumLanes()
	big2 := hwy.Mul(hwy.Sub(splat[T](1, n), ca), splat[T](0.5, n))
	x2 = hwy.IfThenElse(small, hwy.Mul(ca, ca), big2)
	x = hwy.IfThenElse(small, ca, hwy.Sqrt(x2))
	return x, x2
}

// Asin computes asin(x) for every lane of v; lanes with |x| > 1 are NaN.
func Asin[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := v.NumLanes()
	ca := hwy.Abs(v)
	small := hwy.LessThan(ca, splat[T](0.5, n))
	x, x2 := asinReduce(ca, small)
	u := hornerVec(x2, c.asin)
	u = hwy.MulAdd(u, hwy.Mul(x, x2), x)
	u = hwy.IfThenElse(small, u, hwy.Sub(splat[T](c.halfPi, n), hwy.Mul(splat[T](2, n), u)))
	u = hwy.CopySign(u, v)
	return hwy.IfThenElse(hwy.GreaterThan(ca, splat[T](1, n)), splat[T](nanValue, n), u)
}

// Acos computes acos(x) for every lane of v; lanes with |x| > 1 are NaN.
func Acos[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := v.NumLanes()
	ca := hwy.Abs(v)
	small := hwy.LessThan(ca, splat[T](0.5, n))
	x, x2 := asinReduce(ca, small)
	u := hwy.Mul(hornerVec(x2, c.asin), hwy.Mul(x, x2))

	near := hwy.Sub(splat[T](c.halfPi, n), hwy.Add(hwy.CopySign(x, v), hwy.CopySign(u, v)))
	far := hwy.Mul(hwy.Add(x, u), splat[T](2, n))
	farNeg := hwy.Add(hwy.Sub(splat[T](c.piHi, n), far), splat[T](c.piLo, n))
	far = hwy.IfThenElse(hwy.LessThan(v, splat[T](0, n)), farNeg, far)

	r := hwy.IfThenElse(small, near, far)
	return hwy.IfThenElse(hwy.GreaterThan(ca, splat[T](1, n)), splat[T](nanValue, n), r)
}

package math

import "github.com/ajroetker/go-emath/hwy"

func expScalar[T hwy.Floats](d T) T {
	return expWithTable(d, constsFor[T]().exp)
}

// expWithTable is exp with the rational-form polynomial taken from table,
// which the coefficient search varies.
func expWithTable[T hwy.Floats](d T, table []float64) T {
	c := constsFor[T]()
	q := rintk(T(d * T(rln2)))
	r := mlaf(q, T(-c.l2u), d)
	r = mlaf(q, T(-c.l2l), r)
	u := horner(T(r*r), table)
	u = 1 + T(T(2*r)/T(u-r))
	u = ldexp2k(u, q)
	switch {
	case isNaN(d):
		return d
	case d > T(c.expHuge):
		return inf[T]()
	case d < T(c.expTiny):
		return 0
	}
	return u
}

// Exp computes e^x for every lane of v. Lanes above the overflow threshold
// are +Inf and lanes below the underflow threshold are 0; results between
// the two may be subnormal.
func Exp[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := v.NumLanes()
	one := splat[T](1, n)
	q := hwy.RintK(hwy.Mul(v, splat[T](rln2, n)))
	r := hwy.MulAdd(q, splat[T](-c.l2u, n), v)
	r = hwy.MulAdd(q, splat[T](-c.l2l, n), r)
	u := hornerVec(hwy.Mul(r, r), c.exp)
	u = hwy.Add(one, hwy.Div(hwy.Mul(splat[T](2, n), r), hwy.Sub(u, r)))
	u = hwy.LdExp2K(u, q)

	u = hwy.IfThenElse(hwy.GreaterThan(v, splat[T](c.expHuge, n)), splat[T](infValue, n), u)
	u = hwy.IfThenZeroElse(hwy.LessThan(v, splat[T](c.expTiny, n)), u)
	return hwy.IfThenElse(hwy.IsNaN(v), v, u)
}

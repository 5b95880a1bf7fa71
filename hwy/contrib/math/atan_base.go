package math

import "github.com/ajroetker/go-emath/hwy"

// atan and atan2 reduce to z = min(|y|,|x|)/max(|y|,|x|) in [0, 1]. The
// quotient is carried as zh + zl, the polynomial tail rides on zl, and the
// π/2 or π offset is added as a two-sum so only the final addition rounds.

// atanReduce returns atan(min/max) as zh + corr and whether ay > ax.
func atanReduce[T hwy.Floats](ay, ax T) (zh, corr T, swap bool) {
	c := constsFor[T]()
	swap = ay > ax
	n, den := ay, ax
	if swap {
		n, den = ax, ay
	}
	zh = n / den
	zl := mlaf(-zh, den, n) / den
	t := T(zh * zh)
	corr = mlaf(T(zh*t), horner(t, c.atan), zl)
	return zh, corr, swap
}

// atanFinish returns (oh + ol) + (zh + corr) rounded once.
func atanFinish[T hwy.Floats](oh, ol, zh, corr T) T {
	h := oh + zh
	e := oh - h + zh
	return h + (e + (ol + corr))
}

func atanScalar[T hwy.Floats](d T) T {
	c := constsFor[T]()
	if isInf(d) {
		return copysignk(T(c.halfPi), d)
	}
	zh, corr, swap := atanReduce(eabs(d), 1)
	var oh, ol T
	if swap {
		oh, ol = T(c.halfPi), T(c.halfPiLo)
		zh, corr = -zh, -corr
	}
	return copysignk(atanFinish(oh, ol, zh, corr), d)
}

// atan2Scalar follows IEEE 754 for signed zeros and infinities: the quadrant
// comes from the sign bits of y and x, not from comparisons, so
// atan2(-0, -1) is -π.
func atan2Scalar[T hwy.Floats](y, x T) T {
	c := constsFor[T]()
	pi := T(c.piHi)
	switch {
	case isNaN(x) || isNaN(y):
		return nan[T]()
	case isInf(x) && isInf(y):
		q := T(c.halfPi) * 0.5
		if x < 0 {
			q *= 3
		}
		return copysignk(q, y)
	case x == 0:
		switch {
		case y > 0:
			return T(c.halfPi)
		case y < 0:
			return -T(c.halfPi)
		case signbit(x):
			return copysignk(pi, y)
		}
		return y
	case isInf(y):
		return copysignk(T(c.halfPi), y)
	case isInf(x):
		if x > 0 {
			return copysignk(0, y)
		}
		return copysignk(pi, y)
	}

	zh, corr, swap := atanReduce(eabs(y), eabs(x))
	var oh, ol T
	switch {
	case swap:
		oh, ol = T(c.halfPi), T(c.halfPiLo)
	case signbit(x):
		oh, ol = pi, T(c.piLo)
	}
	if swap {
		zh, corr = -zh, -corr
	}
	zh, corr = mulsignk(zh, x), mulsignk(corr, x)
	return copysignk(atanFinish(oh, ol, zh, corr), y)
}

func atanReduceVec[T hwy.Floats](ay, ax hwy.Vec[T]) (zh, corr hwy.Vec[T], swap hwy.Mask[T]) {
	c := constsFor[T]()
	swap = hwy.GreaterThan(ay, ax)
	num := hwy.IfThenElse(swap, ax, ay)
	den := hwy.IfThenElse(swap, ay, ax)
	zh = hwy.Div(num, den)
	zl := hwy.Div(hwy.MulAdd(hwy.Neg(zh), den, num), den)
	t := hwy.Mul(zh, zh)
	corr = hwy.MulAdd(hwy.Mul(zh, t), hornerVec(t, c.atan), zl)
	return zh, corr, swap
}

func atanFinishVec[T hwy.Floats](oh, ol, zh, corr hwy.Vec[T]) hwy.Vec[T] {
	h := hwy.Add(oh, zh)
	e := hwy.Add(hwy.Sub(oh, h), zh)
	return hwy.Add(h, hwy.Add(e, hwy.Add(ol, corr)))
}

// Atan computes atan(x) for every lane of v.
func Atan[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := v.NumLanes()
	zero := splat[T](0, n)
	halfPi := splat[T](c.halfPi, n)

	zh, corr, swap := atanReduceVec(hwy.Abs(v), splat[T](1, n))
	oh := hwy.IfThenElse(swap, halfPi, zero)
	ol := hwy.IfThenElse(swap, splat[T](c.halfPiLo, n), zero)
	r := atanFinishVec(oh, ol, negIf(swap, zh), negIf(swap, corr))
	r = hwy.IfThenElse(hwy.IsInf(v, 0), halfPi, r)
	return hwy.CopySign(r, v)
}

// Atan2 computes atan2(y, x) for every lane pair.
func Atan2[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] {
	c := constsFor[T]()
	n := min(y.NumLanes(), x.NumLanes())
	zero := splat[T](0, n)
	pi := splat[T](c.piHi, n)
	halfPi := splat[T](c.halfPi, n)
	xNeg := hwy.SignBit(x)

	zh, corr, swap := atanReduceVec(hwy.Abs(y), hwy.Abs(x))
	oh := hwy.IfThenElse(swap, halfPi, hwy.IfThenElse(xNeg, pi, zero))
	ol := hwy.IfThenElse(swap, splat[T](c.halfPiLo, n), hwy.IfThenElse(xNeg, splat[T](c.piLo, n), zero))
	zh, corr = negIf(swap, zh), negIf(swap, corr)
	zh, corr = hwy.MulSign(zh, x), hwy.MulSign(corr, x)
	r := atanFinishVec(oh, ol, zh, corr)

	// y = ±Inf or x = ±Inf with the other finite
	r = hwy.IfThenElse(hwy.IsInf(x, 0), hwy.IfThenElse(xNeg, pi, zero), r)
	r = hwy.IfThenElse(hwy.IsInf(y, 0), halfPi, r)
	r = hwy.CopySign(r, y)

	// x == ±0
	onAxis := hwy.IfThenElse(xNeg, hwy.CopySign(pi, y), y)
	onAxis = hwy.IfThenElse(hwy.GreaterThan(y, zero), halfPi, onAxis)
	onAxis = hwy.IfThenElse(hwy.LessThan(y, zero), hwy.Neg(halfPi), onAxis)
	r = hwy.IfThenElse(hwy.Equal(x, zero), onAxis, r)

	quarter := hwy.Mul(halfPi, splat[T](0.5, n))
	corner := hwy.IfThenElse(hwy.LessThan(x, zero), hwy.Mul(quarter, splat[T](3, n)), quarter)
	bothInf := hwy.MaskAnd(hwy.IsInf(x, 0), hwy.IsInf(y, 0))
	r = hwy.IfThenElse(bothInf, hwy.CopySign(corner, y), r)

	return hwy.IfThenElse(hwy.MaskOr(hwy.IsNaN(x), hwy.IsNaN(y)), splat[T](nanValue, n), r)
}

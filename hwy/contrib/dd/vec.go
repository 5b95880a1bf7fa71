package dd

import "github.com/ajroetker/go-emath/hwy"

// Vec is the lane form of DD: lane i holds Hi[i] + Lo[i].
type Vec[T hwy.Floats] struct {
	Hi, Lo hwy.Vec[T]
}

// Value rounds each lane pair to a single float.
func (x Vec[T]) Value() hwy.Vec[T] {
	return hwy.Add(x.Hi, x.Lo)
}

// UpperVec is Upper applied lane-wise.
func UpperVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	m := hwy.SetN(upperMask[T](), x.NumLanes())
	return hwy.FromBits[T](hwy.And(hwy.BitsOf(x), m))
}

func split[T hwy.Floats](x hwy.Vec[T]) (hi, lo hwy.Vec[T]) {
	hi = UpperVec(x)
	return hi, hwy.Sub(x, hi)
}

// crossTerms returns xh*yh - r + xl*yh + xh*yl + xl*yl.
func crossTerms[T hwy.Floats](xh, xl, yh, yl, r hwy.Vec[T]) hwy.Vec[T] {
	s := hwy.Sub(hwy.Mul(xh, yh), r)
	s = hwy.Add(s, hwy.Mul(xl, yh))
	s = hwy.Add(s, hwy.Mul(xh, yl))
	return hwy.Add(s, hwy.Mul(xl, yl))
}

// MulExactVec is MulExact lane-wise.
func MulExactVec[T hwy.Floats](x, y hwy.Vec[T]) Vec[T] {
	xh, xl := split(x)
	yh, yl := split(y)
	r := hwy.Mul(x, y)
	return Vec[T]{Hi: r, Lo: crossTerms(xh, xl, yh, yl, r)}
}

// AddFloatVec is AddFloat lane-wise.
func AddFloatVec[T hwy.Floats](x hwy.Vec[T], y Vec[T]) Vec[T] {
	r := hwy.Add(x, y.Hi)
	v := hwy.Sub(r, x)
	lo := hwy.Add(hwy.Add(hwy.Sub(x, hwy.Sub(r, v)), hwy.Sub(y.Hi, v)), y.Lo)
	return Vec[T]{Hi: r, Lo: lo}
}

// TwoSumVec is TwoSum lane-wise.
func TwoSumVec[T hwy.Floats](x, y hwy.Vec[T]) Vec[T] {
	r := hwy.Add(x, y)
	v := hwy.Sub(r, x)
	return Vec[T]{Hi: r, Lo: hwy.Add(hwy.Sub(x, hwy.Sub(r, v)), hwy.Sub(y, v))}
}

// AddScalar is DD.AddScalar lane-wise.
func (x Vec[T]) AddScalar(y hwy.Vec[T]) Vec[T] {
	r := hwy.Add(x.Hi, y)
	v := hwy.Sub(r, x.Hi)
	lo := hwy.Add(hwy.Add(hwy.Sub(x.Hi, hwy.Sub(r, v)), hwy.Sub(y, v)), x.Lo)
	return Vec[T]{Hi: r, Lo: lo}
}

// AddVec is Add lane-wise.
func AddVec[T hwy.Floats](x, y Vec[T]) Vec[T] {
	r := hwy.Add(x.Hi, y.Hi)
	lo := hwy.Add(hwy.Add(hwy.Add(hwy.Sub(x.Hi, r), y.Hi), x.Lo), y.Lo)
	return Vec[T]{Hi: r, Lo: lo}
}

// AddFastVec is AddFast lane-wise.
func AddFastVec[T hwy.Floats](x hwy.Vec[T], y Vec[T]) Vec[T] {
	r := hwy.Add(x, y.Hi)
	return Vec[T]{Hi: r, Lo: hwy.Add(hwy.Add(hwy.Sub(x, r), y.Hi), y.Lo)}
}

// ReciprocalVec is Reciprocal lane-wise.
func ReciprocalVec[T hwy.Floats](d hwy.Vec[T]) Vec[T] {
	n := d.NumLanes()
	t := hwy.Div(hwy.SetN[T](1, n), d)
	dh, dl := split(d)
	th, tl := split(t)
	e := hwy.Sub(hwy.SetN[T](1, n), hwy.Mul(dh, th))
	e = hwy.Sub(e, hwy.Mul(dh, tl))
	e = hwy.Sub(e, hwy.Mul(dl, th))
	e = hwy.Sub(e, hwy.Mul(dl, tl))
	return Vec[T]{Hi: t, Lo: hwy.Mul(t, e)}
}

// MulVec is Mul lane-wise.
func MulVec[T hwy.Floats](x, y Vec[T]) Vec[T] {
	xh, xl := split(x.Hi)
	yh, yl := split(y.Hi)
	r := hwy.Mul(x.Hi, y.Hi)
	lo := crossTerms(xh, xl, yh, yl, r)
	lo = hwy.Add(lo, hwy.Mul(x.Hi, y.Lo))
	lo = hwy.Add(lo, hwy.Mul(x.Lo, y.Hi))
	return Vec[T]{Hi: r, Lo: lo}
}

// MulFloat is DD.MulFloat lane-wise.
func (x Vec[T]) MulFloat(y hwy.Vec[T]) Vec[T] {
	xh, xl := split(x.Hi)
	yh, yl := split(y)
	r := hwy.Mul(x.Hi, y)
	lo := hwy.Add(crossTerms(xh, xl, yh, yl, r), hwy.Mul(x.Lo, y))
	return Vec[T]{Hi: r, Lo: lo}
}

// Square is DD.Square lane-wise.
func (x Vec[T]) Square() Vec[T] {
	xh, xl := split(x.Hi)
	r := hwy.Mul(x.Hi, x.Hi)
	lo := hwy.Sub(hwy.Mul(xh, xh), r)
	lo = hwy.Add(lo, hwy.Mul(hwy.Add(xh, xh), xl))
	lo = hwy.Add(lo, hwy.Mul(xl, xl))
	lo = hwy.Add(lo, hwy.Mul(x.Hi, hwy.Add(x.Lo, x.Lo)))
	return Vec[T]{Hi: r, Lo: lo}
}

// DivVec is Div lane-wise.
func DivVec[T hwy.Floats](n, d Vec[T]) Vec[T] {
	one := hwy.SetN[T](1, d.Hi.NumLanes())
	t := hwy.Div(one, d.Hi)
	dh, dl := split(d.Hi)
	th, tl := split(t)
	nhh, nhl := split(n.Hi)
	q := hwy.Mul(n.Hi, t)

	u := hwy.Add(hwy.Neg(q), hwy.Mul(nhh, th))
	u = hwy.Add(u, hwy.Mul(nhh, tl))
	u = hwy.Add(u, hwy.Mul(nhl, th))
	u = hwy.Add(u, hwy.Mul(nhl, tl))
	e := hwy.Sub(one, hwy.Mul(dh, th))
	e = hwy.Sub(e, hwy.Mul(dh, tl))
	e = hwy.Sub(e, hwy.Mul(dl, th))
	e = hwy.Sub(e, hwy.Mul(dl, tl))
	u = hwy.Add(u, hwy.Mul(q, e))

	lo := hwy.Add(hwy.Mul(t, hwy.Sub(n.Lo, hwy.Mul(q, d.Lo))), u)
	return Vec[T]{Hi: q, Lo: lo}
}

// Normalize is DD.Normalize lane-wise.
func (x Vec[T]) Normalize() Vec[T] {
	s := hwy.Add(x.Hi, x.Lo)
	return Vec[T]{Hi: s, Lo: hwy.Add(hwy.Sub(x.Hi, s), x.Lo)}
}

// Scale is DD.Scale lane-wise.
func (x Vec[T]) Scale(s hwy.Vec[T]) Vec[T] {
	return Vec[T]{Hi: hwy.Mul(x.Hi, s), Lo: hwy.Mul(x.Lo, s)}
}

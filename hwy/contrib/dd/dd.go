// Package dd implements double-double arithmetic: a value held as the
// unevaluated sum Hi + Lo of two floats, giving roughly twice the working
// precision. The square root kernels use it to recover the last bit of a
// Newton iteration, and the float64 pow kernel runs its logarithm and
// exponential in it.
//
// Operations come in three shapes that compute the same expressions in the
// same order:
//   - DD[T] on plain float32/float64 values
//   - Vec[T] on hwy.Vec lanes
//   - F64x4 and F32x8 on archsimd AVX2 registers (GOEXPERIMENT=simd)
//
// Nothing here validates finiteness. Callers special-case NaN, Inf and zero
// before or after.
package dd

import "github.com/ajroetker/go-emath/hwy"

// Split masks. Clearing the low 27 (float64) or 12 (float32) mantissa bits
// leaves a high half whose products with another high half are exact.
const (
	upperMask64 = 0xfffffffff8000000
	upperMask32 = 0xfffff000
)

// DD is a double-double value Hi + Lo with |Lo| <= ulp(Hi).
type DD[T hwy.Floats] struct {
	Hi, Lo T
}

// FromFloat returns x with a zero low part.
func FromFloat[T hwy.Floats](x T) DD[T] {
	return DD[T]{Hi: x}
}

// Value rounds the pair to a single float.
func (x DD[T]) Value() T {
	return x.Hi + x.Lo
}

func upperMask[T hwy.Floats]() uint64 {
	if hwy.FormatOf[T]().MantissaBits == 23 {
		return upperMask32
	}
	return upperMask64
}

// Upper returns the Dekker high half of x, so that x - Upper(x) is exact.
func Upper[T hwy.Floats](x T) T {
	return hwy.FloatFromBits[T](hwy.FloatBits(x) & upperMask[T]())
}

// MulExact returns x*y as a double-double using Dekker's product of the
// split halves.
func MulExact[T hwy.Floats](x, y T) DD[T] {
	xh := Upper(x)
	xl := x - xh
	yh := Upper(y)
	yl := y - yh
	r := T(x * y)
	return DD[T]{Hi: r, Lo: T(xh*yh) - r + T(xl*yh) + T(xh*yl) + T(xl*yl)}
}

// AddFloat returns x + y for a plain float x, with a two-sum correction.
func AddFloat[T hwy.Floats](x T, y DD[T]) DD[T] {
	r := x + y.Hi
	v := r - x
	return DD[T]{Hi: r, Lo: (x - (r - v)) + (y.Hi - v) + y.Lo}
}

// TwoSum returns x + y exactly.
func TwoSum[T hwy.Floats](x, y T) DD[T] {
	r := x + y
	v := r - x
	return DD[T]{Hi: r, Lo: (x - (r - v)) + (y - v)}
}

// AddScalar returns x + y with a two-sum on the high parts.
func (x DD[T]) AddScalar(y T) DD[T] {
	r := x.Hi + y
	v := r - x.Hi
	return DD[T]{Hi: r, Lo: ((x.Hi - (r - v)) + (y - v)) + x.Lo}
}

// Add returns x + y. It assumes |x| >= |y| or that either is zero.
func Add[T hwy.Floats](x, y DD[T]) DD[T] {
	r := x.Hi + y.Hi
	return DD[T]{Hi: r, Lo: x.Hi - r + y.Hi + x.Lo + y.Lo}
}

// AddFast returns x + y for a plain float x. It assumes |x| >= |y|.
func AddFast[T hwy.Floats](x T, y DD[T]) DD[T] {
	r := x + y.Hi
	return DD[T]{Hi: r, Lo: x - r + y.Hi + y.Lo}
}

// Reciprocal returns 1/d as a double-double, refining the rounded quotient
// with one Newton correction.
func Reciprocal[T hwy.Floats](d T) DD[T] {
	t := 1 / d
	dh := Upper(d)
	dl := d - dh
	th := Upper(t)
	tl := t - th
	return DD[T]{Hi: t, Lo: T(t * (1 - T(dh*th) - T(dh*tl) - T(dl*th) - T(dl*tl)))}
}

// Mul returns x*y keeping all four cross terms of the high parts and the
// two first-order terms of the low parts.
func Mul[T hwy.Floats](x, y DD[T]) DD[T] {
	xh := Upper(x.Hi)
	xl := x.Hi - xh
	yh := Upper(y.Hi)
	yl := y.Hi - yh
	r := T(x.Hi * y.Hi)
	return DD[T]{Hi: r, Lo: T(xh*yh) - r + T(xl*yh) + T(xh*yl) + T(xl*yl) + T(x.Hi*y.Lo) + T(x.Lo*y.Hi)}
}

// MulFloat returns x*y for a plain float y.
func (x DD[T]) MulFloat(y T) DD[T] {
	xh := Upper(x.Hi)
	xl := x.Hi - xh
	yh := Upper(y)
	yl := y - yh
	r := T(x.Hi * y)
	return DD[T]{Hi: r, Lo: T(xh*yh) - r + T(xl*yh) + T(xh*yl) + T(xl*yl) + T(x.Lo*y)}
}

// Square returns x*x.
func (x DD[T]) Square() DD[T] {
	xh := Upper(x.Hi)
	xl := x.Hi - xh
	r := T(x.Hi * x.Hi)
	return DD[T]{Hi: r, Lo: T(xh*xh) - r + T((xh+xh)*xl) + T(xl*xl) + T(x.Hi*(x.Lo+x.Lo))}
}

// Div returns n/d.
func Div[T hwy.Floats](n, d DD[T]) DD[T] {
	t := 1 / d.Hi
	dh := Upper(d.Hi)
	dl := d.Hi - dh
	th := Upper(t)
	tl := t - th
	nhh := Upper(n.Hi)
	nhl := n.Hi - nhh
	q := T(n.Hi * t)
	u := -q + T(nhh*th) + T(nhh*tl) + T(nhl*th) + T(nhl*tl) +
		T(q*(1-T(dh*th)-T(dh*tl)-T(dl*th)-T(dl*tl)))
	return DD[T]{Hi: q, Lo: T(t*(n.Lo-T(q*d.Lo))) + u}
}

// Normalize renormalizes the pair so Hi is the rounded sum.
func (x DD[T]) Normalize() DD[T] {
	s := x.Hi + x.Lo
	return DD[T]{Hi: s, Lo: x.Hi - s + x.Lo}
}

// Scale multiplies both parts by s, exact when s is a power of two.
func (x DD[T]) Scale(s T) DD[T] {
	return DD[T]{Hi: x.Hi * s, Lo: x.Lo * s}
}

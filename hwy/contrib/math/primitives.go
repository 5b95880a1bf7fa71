package math

import (
	stdmath "math"

	"github.com/ajroetker/go-emath/hwy"
	"github.com/ajroetker/go-emath/hwy/contrib/dd"
)

// Scalar building blocks. They mirror the lane operations in package hwy so
// the scalar kernels and the vector kernels evaluate the same expressions.

func eabs[T hwy.Floats](x T) T {
	return hwy.FloatFromBits[T](hwy.FloatBits(x) &^ hwy.FormatOf[T]().SignMask)
}

// copysignk returns the magnitude of x with the sign of y.
func copysignk[T hwy.Floats](x, y T) T {
	sm := hwy.FormatOf[T]().SignMask
	return hwy.FloatFromBits[T]((hwy.FloatBits(x) &^ sm) ^ (hwy.FloatBits(y) & sm))
}

// mulsignk flips the sign of x when y's sign bit is set.
func mulsignk[T hwy.Floats](x, y T) T {
	sm := hwy.FormatOf[T]().SignMask
	return hwy.FloatFromBits[T](hwy.FloatBits(x) ^ (hwy.FloatBits(y) & sm))
}

func signbit[T hwy.Floats](x T) bool {
	return hwy.FloatBits(x)&hwy.FormatOf[T]().SignMask != 0
}

// mlaf is a*b + c with a single rounding.
func mlaf[T hwy.Floats](a, b, c T) T {
	return T(stdmath.FMA(float64(a), float64(b), float64(c)))
}

// rintk rounds half away from zero: rintk(2.5) == 3.
func rintk[T hwy.Floats](x T) T {
	return T(stdmath.Trunc(float64(x + copysignk(0.5, x))))
}

func trunck[T hwy.Floats](x T) T { return T(stdmath.Trunc(float64(x))) }
func floork[T hwy.Floats](x T) T { return T(stdmath.Floor(float64(x))) }

// sqrtk is the correctly rounded hardware square root.
func sqrtk[T hwy.Floats](x T) T { return T(stdmath.Sqrt(float64(x))) }

func isNaN[T hwy.Floats](x T) bool { return x != x }

func isInf[T hwy.Floats](x T) bool {
	return eabs(x) == T(stdmath.Inf(1))
}

var (
	nanValue = stdmath.NaN()
	infValue = stdmath.Inf(1)
)

func inf[T hwy.Floats]() T { return T(stdmath.Inf(1)) }
func nan[T hwy.Floats]() T { return T(stdmath.NaN()) }

// isOdd reports whether the integer-valued q is odd.
func isOdd[T hwy.Floats](q T) bool {
	h := q * 0.5
	return h != floork(h)
}

// quadrant returns q mod 4 in [0, 4) for integer-valued q of either sign.
func quadrant[T hwy.Floats](q T) T {
	return q - 4*floork(q*0.25)
}

// pow2i is 2^q for integer q in the normal exponent range.
func pow2i[T hwy.Floats](q T) T {
	f := hwy.FormatOf[T]()
	e := uint64(int64(q)+int64(f.ExponentBias)) & f.ExponentMask
	return hwy.FloatFromBits[T](e << f.MantissaBits)
}

// ldexp2k is x·2^q for q up to twice the exponent range.
func ldexp2k[T hwy.Floats](x, q T) T {
	h := floork(q * 0.5)
	return T(T(x*pow2i(h)) * pow2i(q-h))
}

func ilogb2k[T hwy.Floats](x T) T {
	f := hwy.FormatOf[T]()
	e := (hwy.FloatBits(x) >> f.MantissaBits) & f.ExponentMask
	return T(int64(e) - int64(f.ExponentBias))
}

func ldexp3k[T hwy.Floats](x, e T) T {
	f := hwy.FormatOf[T]()
	return hwy.FloatFromBits[T](hwy.FloatBits(x) + uint64(int64(e)<<f.MantissaBits))
}

// horner evaluates the table at x, highest degree first, with one mlaf per
// coefficient.
func horner[T hwy.Floats](x T, table []float64) T {
	u := T(table[0])
	for _, c := range table[1:] {
		u = mlaf(u, x, T(c))
	}
	return u
}

// fmax returns x when y is NaN or x > y, and y otherwise.
func fmax[T hwy.Floats](x, y T) T {
	if isNaN(y) || x > y {
		return x
	}
	return y
}

// fmin returns x when y is NaN or x < y, and y otherwise.
func fmin[T hwy.Floats](x, y T) T {
	if isNaN(y) || x < y {
		return x
	}
	return y
}

// Lane-vector counterparts.

func splat[T hwy.Floats](c float64, n int) hwy.Vec[T] {
	return hwy.SetN(T(c), n)
}

func hornerVec[T hwy.Floats](x hwy.Vec[T], table []float64) hwy.Vec[T] {
	n := x.NumLanes()
	u := splat[T](table[0], n)
	for _, c := range table[1:] {
		u = hwy.MulAdd(u, x, splat[T](c, n))
	}
	return u
}

func isOddVec[T hwy.Floats](q hwy.Vec[T]) hwy.Mask[T] {
	h := hwy.Mul(q, splat[T](0.5, q.NumLanes()))
	return hwy.NotEqual(h, hwy.Floor(h))
}

func quadrantVec[T hwy.Floats](q hwy.Vec[T]) hwy.Vec[T] {
	n := q.NumLanes()
	return hwy.Sub(q, hwy.Mul(splat[T](4, n), hwy.Floor(hwy.Mul(q, splat[T](0.25, n)))))
}

// negIf negates the lanes of v selected by m.
func negIf[T hwy.Floats](m hwy.Mask[T], v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenElse(m, hwy.Neg(v), v)
}

func fmaxVec[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenElse(hwy.MaskOr(hwy.IsNaN(y), hwy.GreaterThan(x, y)), x, y)
}

func fminVec[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenElse(hwy.MaskOr(hwy.IsNaN(y), hwy.LessThan(x, y)), x, y)
}

// upper is the Dekker high half of x.
func upper[T hwy.Floats](x T) T { return dd.Upper(x) }

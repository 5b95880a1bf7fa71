package math

import "github.com/ajroetker/go-emath/hwy"

// hypot scales by the larger magnitude so the square never overflows:
// max·sqrt(1 + (min/max)²).

func hypotScalar[T hwy.Floats](x, y T) T {
	x, y = eabs(x), eabs(y)
	hi, lo := fmax(x, y), fmin(x, y)
	r := lo / hi
	h := T(hi * sqrtScalar(mlaf(r, r, 1)))
	switch {
	case isInf(x) || isInf(y):
		return inf[T]()
	case isNaN(x) || isNaN(y):
		return nan[T]()
	case lo == 0:
		return hi
	case isNaN(h):
		return inf[T]()
	}
	return h
}

// hypotN is the Euclidean norm of up to four values; unused slots are 0.
func hypotN[T hwy.Floats](v [4]T) T {
	var m T
	for i := range v {
		v[i] = eabs(v[i])
		m = fmax(m, v[i])
	}
	for _, a := range v {
		switch {
		case isInf(a):
			return inf[T]()
		case isNaN(a):
			return nan[T]()
		}
	}
	if m == 0 {
		return 0
	}
	var sum T
	for _, a := range v {
		a /= m
		sum += T(a * a)
	}
	return T(m * sqrtk(sum))
}

func hypot3Scalar[T hwy.Floats](x, y, z T) T { return hypotN([4]T{x, y, z}) }

func hypot4Scalar[T hwy.Floats](x, y, z, w T) T { return hypotN([4]T{x, y, z, w}) }

// Hypot computes sqrt(x² + y²) for every lane pair without intermediate
// overflow.
func Hypot[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	n := min(x.NumLanes(), y.NumLanes())
	ax, ay := hwy.Abs(x), hwy.Abs(y)
	hi, lo := fmaxVec(ax, ay), fminVec(ax, ay)
	r := hwy.Div(lo, hi)
	h := hwy.Mul(hi, Sqrt(hwy.MulAdd(r, r, splat[T](1, n))))

	inf := splat[T](infValue, n)
	h = hwy.IfThenElse(hwy.IsNaN(h), inf, h)
	h = hwy.IfThenElse(hwy.Equal(lo, splat[T](0, n)), hi, h)
	h = hwy.IfThenElse(hwy.MaskOr(hwy.IsNaN(ax), hwy.IsNaN(ay)), splat[T](nanValue, n), h)
	return hwy.IfThenElse(hwy.MaskOr(hwy.IsInf(ax, 0), hwy.IsInf(ay, 0)), inf, h)
}

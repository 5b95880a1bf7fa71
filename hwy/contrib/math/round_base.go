package math

import "github.com/ajroetker/go-emath/hwy"

// floor and ceil subtract the fractional part left by truncation, adjusted
// by one toward the rounding direction. Magnitudes at or above 2^52 (2^23)
// are already integers and pass through, as do NaN and ±Inf.

func floorScalar[T hwy.Floats](x T) T {
	fr := x - trunck(x)
	if fr < 0 {
		fr++
	}
	if isInf(x) || eabs(x) >= T(constsFor[T]().exactInt) {
		return x
	}
	return copysignk(x-fr, x)
}

func ceilScalar[T hwy.Floats](x T) T {
	fr := x - trunck(x)
	if fr > 0 {
		fr--
	}
	if isInf(x) || eabs(x) >= T(constsFor[T]().exactInt) {
		return x
	}
	return copysignk(x-fr, x)
}

// Floor rounds every lane of v toward -Inf.
func Floor[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	n := v.NumLanes()
	fr := hwy.Sub(v, hwy.Trunc(v))
	fr = hwy.IfThenElse(hwy.LessThan(fr, splat[T](0, n)), hwy.Add(fr, splat[T](1, n)), fr)
	r := hwy.CopySign(hwy.Sub(v, fr), v)
	return passIntegral(v, r)
}

// Ceil rounds every lane of v toward +Inf.
func Ceil[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	n := v.NumLanes()
	fr := hwy.Sub(v, hwy.Trunc(v))
	fr = hwy.IfThenElse(hwy.GreaterThan(fr, splat[T](0, n)), hwy.Sub(fr, splat[T](1, n)), fr)
	r := hwy.CopySign(hwy.Sub(v, fr), v)
	return passIntegral(v, r)
}

// passIntegral keeps v in the lanes that are infinite or too large to have
// a fractional part.
func passIntegral[T hwy.Floats](v, r hwy.Vec[T]) hwy.Vec[T] {
	big := hwy.GreaterEqual(hwy.Abs(v), splat[T](constsFor[T]().exactInt, v.NumLanes()))
	return hwy.IfThenElse(hwy.MaskOr(big, hwy.IsInf(v, 0)), v, r)
}

package hwy

import "math"

// This file provides the portable rounding operations.
// convert_avx2.go has the archsimd counterparts used by the AVX2 kernels.

// Trunc truncates each lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math.Trunc)
}

// Floor rounds each lane down toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	return mapFloat(v, math.Floor)
}

// mapFloat applies an exact float64 function lane by lane. Every function
// passed here returns an integer value representable in T, so the narrowing
// conversion back to T never rounds.
func mapFloat[T Floats](v Vec[T], fn func(float64) float64) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = T(fn(float64(v.data[i])))
	}
	return r
}

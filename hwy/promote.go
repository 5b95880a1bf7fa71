package hwy

// This file provides float widening and narrowing. Single-precision
// kernels that compute in double precision (pow) widen their lanes, run the
// double kernel, and narrow the result with a single rounding.

// PromoteToFloat64 widens each lane of v to float64. It is exact for both
// float32 and float64 lanes.
func PromoteToFloat64[T Floats](v Vec[T]) Vec[float64] {
	r := Vec[float64]{n: v.n}
	for i := range r.n {
		r.data[i] = float64(v.data[i])
	}
	return r
}

// DemoteFromFloat64 narrows float64 lanes to T. For float64 it is the
// identity.
func DemoteFromFloat64[T Floats](v Vec[float64]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = T(v.data[i])
	}
	return r
}

// Package hwy provides portable lane vectors with runtime CPU dispatch.
//
// It follows the Highway C++ library's design philosophy: write an algorithm
// once over a small set of lane operations, and let the dispatch level decide
// how wide the lanes are. The element-wise functions here are the portable
// realization used for SSE4.1, NEON, and AVX2 when archsimd is not compiled
// in; architecture-specific helpers live in the *_avx2.go files.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-emath/hwy"
//
//	n := hwy.LanesFor[float64](hwy.CurrentWidth())
//	a := hwy.LoadN(data1, n)
//	b := hwy.LoadN(data2, n)
//	result := hwy.MulAdd(a, b, hwy.SetN(1.0, n))
//	hwy.Store(result, output)
//
// A Vec is a fixed-size value; no operation in this package allocates.
package hwy

// MaxVecLanes is the capacity of a Vec: the lane count of the widest
// supported target (8 x float32 for AVX2).
const MaxVecLanes = 8

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle holding up to MaxVecLanes lanes.
//
// Vec instances should not be created directly; use LoadN or SetN
// instead. Binary operations work on the lanes common to both operands.
type Vec[T Lanes] struct {
	data [MaxVecLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// GetLane returns lane i, or the zero value if i is out of range.
func (v Vec[T]) GetLane(i int) T {
	if i < 0 || i >= v.n {
		var zero T
		return zero
	}
	return v.data[i]
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse to perform conditional selection.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterThan instead.
type Mask[T Lanes] struct {
	// bits has bit i set if lane i is active.
	bits uint64
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

func (m *Mask[T]) set(i int, on bool) {
	if on {
		m.bits |= 1 << i
	}
}

func lowBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (1 << n) - 1
}

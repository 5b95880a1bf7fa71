package hwy

// This file provides mask construction and mask logic. Masks are produced by
// comparisons and consumed by IfThenElse.

// RebindMask reinterprets a mask over lanes of type T as a mask over lanes
// of type U with the same lane count, as when a comparison on float
// encodings (uint64 lanes) selects between float lanes.
func RebindMask[U, T Lanes](m Mask[T]) Mask[U] {
	return Mask[U]{bits: m.bits, n: m.n}
}

// MaskAnd performs bitwise AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{bits: a.bits & b.bits & lowBits(n), n: n}
}

// MaskOr performs bitwise OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{bits: (a.bits | b.bits) & lowBits(n), n: n}
}

// MaskNot inverts all bits in a mask.
func MaskNot[T Lanes](mask Mask[T]) Mask[T] {
	return Mask[T]{bits: ^mask.bits & lowBits(mask.n), n: mask.n}
}

// Package wideint provides 128-bit integer arithmetic built from 64-bit
// halves. The cube-root kernels use it to divide an exponent field by three
// with a widening multiply instead of a division.
//
// Every operation wraps modulo 2^128, matching native two's-complement
// arithmetic including carries between the halves.
package wideint

import "math/bits"

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Lo, Hi uint64
}

// U64 widens x.
func U64(x uint64) Uint128 {
	return Uint128{Lo: x}
}

// Add returns a + b.
func (a Uint128) Add(b Uint128) Uint128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return Uint128{Lo: lo, Hi: hi}
}

// Sub returns a - b.
func (a Uint128) Sub(b Uint128) Uint128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return Uint128{Lo: lo, Hi: hi}
}

// Mul returns the low 128 bits of a * b.
func (a Uint128) Mul(b Uint128) Uint128 {
	hi, lo := bits.Mul64(a.Lo, b.Lo)
	hi += a.Hi*b.Lo + a.Lo*b.Hi
	return Uint128{Lo: lo, Hi: hi}
}

// Mul64 returns the full 128-bit product of two 64-bit values.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Lo: lo, Hi: hi}
}

// MulHi64 returns the high 64 bits of a * b.
func MulHi64(a, b uint64) uint64 {
	hi, _ := bits.Mul64(a, b)
	return hi
}

// Lsh returns a << n. Shifts of 128 or more yield zero.
func (a Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: a.Lo << (n - 64)}
	case n == 0:
		return a
	}
	return Uint128{Lo: a.Lo << n, Hi: a.Hi<<n | a.Lo>>(64-n)}
}

// Rsh returns a >> n. Shifts of 128 or more yield zero.
func (a Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: a.Hi >> (n - 64)}
	case n == 0:
		return a
	}
	return Uint128{Lo: a.Lo>>n | a.Hi<<(64-n), Hi: a.Hi >> n}
}

// Cmp returns -1, 0 or +1 as a is less than, equal to or greater than b.
func (a Uint128) Cmp(b Uint128) int {
	switch {
	case a.Hi < b.Hi:
		return -1
	case a.Hi > b.Hi:
		return 1
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	}
	return 0
}

// IsZero reports whether a == 0.
func (a Uint128) IsZero() bool {
	return a.Lo|a.Hi == 0
}

// divBy3Magic is ceil(2^65 / 3). For every 64-bit x,
// floor(x / 3) == (x * divBy3Magic) >> 65.
const divBy3Magic = 0xAAAAAAAAAAAAAAAB

// DivBy3 returns x / 3, exactly, from one widening multiply.
func DivBy3(x uint64) uint64 {
	return MulHi64(x, divBy3Magic) >> 1
}

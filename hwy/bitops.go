// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"math"
	"unsafe"
)

// This file provides the IEEE-754 bit-level primitives that elementary
// function kernels rely on but that float arithmetic does not expose:
// sign manipulation, exponent-field injection and extraction, and
// round-to-integer. Float bits travel in uint64 lanes for both precisions,
// so one generic routine serves float32 and float64.

// FloatFormat describes the bit layout of a binary floating-point type.
type FloatFormat struct {
	MantissaBits int    // explicit fraction bits (52 or 23)
	ExponentBias int    // 1023 or 127
	ExponentMask uint64 // exponent field, unshifted (0x7ff or 0xff)
	SignMask     uint64 // the sign bit in place
}

var (
	format64 = FloatFormat{MantissaBits: 52, ExponentBias: 1023, ExponentMask: 0x7ff, SignMask: 1 << 63}
	format32 = FloatFormat{MantissaBits: 23, ExponentBias: 127, ExponentMask: 0xff, SignMask: 1 << 31}
)

// FormatOf returns the bit layout of T.
func FormatOf[T Floats]() FloatFormat {
	if is32[T]() {
		return format32
	}
	return format64
}

func is32[T Floats]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// FloatBits returns the IEEE-754 encoding of x, zero-extended to 64 bits.
func FloatBits[T Floats](x T) uint64 {
	if is32[T]() {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// FloatFromBits is the inverse of FloatBits; for float32 only the low 32
// bits of b are used.
func FloatFromBits[T Floats](b uint64) T {
	if is32[T]() {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// BitsOf reinterprets each float lane as its encoding in a uint64 lane.
func BitsOf[T Floats](v Vec[T]) Vec[uint64] {
	r := Vec[uint64]{n: v.n}
	for i := range r.n {
		r.data[i] = FloatBits(v.data[i])
	}
	return r
}

// FromBits reinterprets uint64 lanes holding float encodings as floats.
func FromBits[T Floats](v Vec[uint64]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = FloatFromBits[T](v.data[i])
	}
	return r
}

// CopySign returns lanes with the magnitude of mag and the sign of sign,
// composed as (mag &^ signbit) | (sign & signbit). It is exact for zeros,
// infinities and NaNs.
func CopySign[T Floats](mag, sign Vec[T]) Vec[T] {
	sm := SetN(FormatOf[T]().SignMask, mag.n)
	return FromBits[T](Or(AndNot(sm, BitsOf(mag)), And(BitsOf(sign), sm)))
}

// MulSign multiplies x by the sign of y by flipping x's sign bit where y's
// is set. Unlike CopySign it keeps the sign of x when y is positive.
func MulSign[T Floats](x, y Vec[T]) Vec[T] {
	sm := SetN(FormatOf[T]().SignMask, x.n)
	return FromBits[T](Xor(BitsOf(x), And(BitsOf(y), sm)))
}

// SignBit returns a mask of the lanes whose sign bit is set, -0 and
// negative NaNs included.
func SignBit[T Floats](v Vec[T]) Mask[T] {
	sm := SetN(FormatOf[T]().SignMask, v.n)
	return RebindMask[T](NotEqual(And(BitsOf(v), sm), SetN[uint64](0, v.n)))
}

// RintK rounds to an integer by adding ±0.5 and truncating. Halfway cases
// round away from zero rather than to even: RintK(2.5) is 3 where
// math.RoundToEven gives 2. Every backend uses this same construction.
func RintK[T Floats](v Vec[T]) Vec[T] {
	half := CopySign(SetN[T](0.5, v.n), v)
	return Trunc(Add(v, half))
}

// Pow2I constructs 2^q by writing q + bias into the exponent field. The
// lanes of q must hold integers in the normal exponent range; other lanes
// produce unspecified values that callers replace.
func Pow2I[T Floats](q Vec[T]) Vec[T] {
	f := FormatOf[T]()
	r := Vec[T]{n: q.n}
	for i := range r.n {
		e := uint64(int64(q.data[i])+int64(f.ExponentBias)) & f.ExponentMask
		r.data[i] = FloatFromBits[T](e << f.MantissaBits)
	}
	return r
}

// LdExp2K scales x by 2^q in two steps so q may span twice the exponent
// range, as needed when the result of exp lands near overflow or in the
// subnormals.
func LdExp2K[T Floats](x, q Vec[T]) Vec[T] {
	h := Floor(Mul(q, SetN[T](0.5, q.n)))
	return Mul(Mul(x, Pow2I(h)), Pow2I(Sub(q, h)))
}

// ILogB2K returns the unbiased exponent field of each lane as a float. It
// does not normalize subnormals; callers prescale them.
func ILogB2K[T Floats](v Vec[T]) Vec[T] {
	f := FormatOf[T]()
	r := Vec[T]{n: v.n}
	for i := range r.n {
		e := (FloatBits(v.data[i]) >> f.MantissaBits) & f.ExponentMask
		r.data[i] = T(int64(e) - int64(f.ExponentBias))
	}
	return r
}

// LdExp3K adds the integer lanes of e to the exponent field of v without
// any range check.
func LdExp3K[T Floats](v, e Vec[T]) Vec[T] {
	f := FormatOf[T]()
	r := Vec[T]{n: min(v.n, e.n)}
	for i := range r.n {
		r.data[i] = FloatFromBits[T](FloatBits(v.data[i]) + uint64(int64(e.data[i])<<f.MantissaBits))
	}
	return r
}

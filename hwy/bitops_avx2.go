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

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// This file provides the AVX2 forms of the float bit primitives in
// bitops.go. Sign operations are integer AND/ANDN/XOR on the reinterpreted
// lanes; exponent injection uses the 2^52 (2^23) magic-number trick since
// AVX2 has no packed float64 -> int64 conversion.

var (
	bits64_sign  = archsimd.BroadcastInt64x4(-1 << 63)
	bits64_half  = archsimd.BroadcastFloat64x4(0.5)
	bits64_magic = archsimd.BroadcastFloat64x4(0x1p52 + 1023)

	bits32_sign  = archsimd.BroadcastInt32x8(-1 << 31)
	bits32_half  = archsimd.BroadcastFloat32x8(0.5)
	bits32_magic = archsimd.BroadcastFloat32x8(0x1p23 + 127)
)

// Abs_AVX2_F64x4 clears the sign bit of each lane.
func Abs_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	return x.AsInt64x4().AndNot(bits64_sign).AsFloat64x4()
}

// Neg_AVX2_F64x4 flips the sign bit of each lane; Neg(0) is -0.
func Neg_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	return x.AsInt64x4().Xor(bits64_sign).AsFloat64x4()
}

// CopySign_AVX2_F64x4 returns the magnitude of mag with the sign of sign.
func CopySign_AVX2_F64x4(mag, sign archsimd.Float64x4) archsimd.Float64x4 {
	m := mag.AsInt64x4().AndNot(bits64_sign)
	s := sign.AsInt64x4().And(bits64_sign)
	return m.Or(s).AsFloat64x4()
}

// MulSign_AVX2_F64x4 flips the sign of x where y is negative.
func MulSign_AVX2_F64x4(x, y archsimd.Float64x4) archsimd.Float64x4 {
	return x.AsInt64x4().Xor(y.AsInt64x4().And(bits64_sign)).AsFloat64x4()
}

// SignBit_AVX2_F64x4 returns a mask of the lanes with the sign bit set.
func SignBit_AVX2_F64x4(x archsimd.Float64x4) archsimd.Mask64x4 {
	return x.AsInt64x4().And(bits64_sign).Equal(bits64_sign)
}

// RintK_AVX2_F64x4 rounds by adding ±0.5 and truncating (ties away from zero).
func RintK_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	return x.Add(CopySign_AVX2_F64x4(bits64_half, x)).Trunc()
}

// Pow2I_AVX2_F64x4 builds 2^q for integer-valued q in [-1022, 1023].
// Adding 2^52+1023 leaves q+1023 in the low mantissa bits; shifting left by
// 52 moves it into the exponent field and drops the magic bits.
func Pow2I_AVX2_F64x4(q archsimd.Float64x4) archsimd.Float64x4 {
	return q.Add(bits64_magic).AsInt64x4().ShiftAllLeft(52).AsFloat64x4()
}

// LdExp2K_AVX2_F64x4 scales x by 2^q in two halves, for q in [-2044, 2046].
func LdExp2K_AVX2_F64x4(x, q archsimd.Float64x4) archsimd.Float64x4 {
	h := q.Mul(bits64_half).Floor()
	return x.Mul(Pow2I_AVX2_F64x4(h)).Mul(Pow2I_AVX2_F64x4(q.Sub(h)))
}

// Abs_AVX2_F32x8 clears the sign bit of each lane.
func Abs_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	return x.AsInt32x8().AndNot(bits32_sign).AsFloat32x8()
}

// Neg_AVX2_F32x8 flips the sign bit of each lane; Neg(0) is -0.
func Neg_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	return x.AsInt32x8().Xor(bits32_sign).AsFloat32x8()
}

// CopySign_AVX2_F32x8 returns the magnitude of mag with the sign of sign.
func CopySign_AVX2_F32x8(mag, sign archsimd.Float32x8) archsimd.Float32x8 {
	m := mag.AsInt32x8().AndNot(bits32_sign)
	s := sign.AsInt32x8().And(bits32_sign)
	return m.Or(s).AsFloat32x8()
}

// MulSign_AVX2_F32x8 flips the sign of x where y is negative.
func MulSign_AVX2_F32x8(x, y archsimd.Float32x8) archsimd.Float32x8 {
	return x.AsInt32x8().Xor(y.AsInt32x8().And(bits32_sign)).AsFloat32x8()
}

// SignBit_AVX2_F32x8 returns a mask of the lanes with the sign bit set.
func SignBit_AVX2_F32x8(x archsimd.Float32x8) archsimd.Mask32x8 {
	return x.AsInt32x8().And(bits32_sign).Equal(bits32_sign)
}

// RintK_AVX2_F32x8 rounds by adding ±0.5 and truncating (ties away from zero).
func RintK_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	return x.Add(CopySign_AVX2_F32x8(bits32_half, x)).Trunc()
}

// Pow2I_AVX2_F32x8 builds 2^q for integer-valued q in [-126, 127].
func Pow2I_AVX2_F32x8(q archsimd.Float32x8) archsimd.Float32x8 {
	return q.Add(bits32_magic).AsInt32x8().ShiftAllLeft(23).AsFloat32x8()
}

// LdExp2K_AVX2_F32x8 scales x by 2^q in two halves, for q in [-252, 254].
func LdExp2K_AVX2_F32x8(x, q archsimd.Float32x8) archsimd.Float32x8 {
	h := q.Mul(bits32_half).Floor()
	return x.Mul(Pow2I_AVX2_F32x8(h)).Mul(Pow2I_AVX2_F32x8(q.Sub(h)))
}

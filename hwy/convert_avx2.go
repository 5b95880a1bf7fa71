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

// This file provides AVX2 conversions between integer-valued float lanes and
// exponent fields. Integers are moved in and out of the mantissa with the
// 1.5*2^52 (1.5*2^23) magic constant, which is exact for |n| < 2^51 (2^22)
// and works for negative n.

var (
	conv64_magic     = archsimd.BroadcastFloat64x4(0x1.8p52)
	conv64_magicBits = archsimd.BroadcastInt64x4(0x4338000000000000)
	conv64_expMask   = archsimd.BroadcastInt64x4(0x7ff)
	conv64_bias      = archsimd.BroadcastFloat64x4(1023)

	conv32_magic     = archsimd.BroadcastFloat32x8(0x1.8p23)
	conv32_magicBits = archsimd.BroadcastInt32x8(0x4b400000)
	conv32_expMask   = archsimd.BroadcastInt32x8(0xff)
	conv32_bias      = archsimd.BroadcastFloat32x8(127)
)

// FloatToInt_AVX2_F64x4 converts integer-valued lanes with |v| < 2^51 to int64.
func FloatToInt_AVX2_F64x4(v archsimd.Float64x4) archsimd.Int64x4 {
	return v.Add(conv64_magic).AsInt64x4().Sub(conv64_magicBits)
}

// IntToFloat_AVX2_I64x4 converts int64 lanes with |n| < 2^51 to float64.
func IntToFloat_AVX2_I64x4(n archsimd.Int64x4) archsimd.Float64x4 {
	return n.Add(conv64_magicBits).AsFloat64x4().Sub(conv64_magic)
}

// ILogB2K_AVX2_F64x4 returns the unbiased exponent field of each lane.
func ILogB2K_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	e := x.AsInt64x4().ShiftAllRight(52).And(conv64_expMask)
	return IntToFloat_AVX2_I64x4(e).Sub(conv64_bias)
}

// LdExp3K_AVX2_F64x4 adds the integer lanes of e to the exponent field of x.
func LdExp3K_AVX2_F64x4(x, e archsimd.Float64x4) archsimd.Float64x4 {
	n := FloatToInt_AVX2_F64x4(e).ShiftAllLeft(52)
	return x.AsInt64x4().Add(n).AsFloat64x4()
}

// FloatToInt_AVX2_F32x8 converts integer-valued lanes with |v| < 2^22 to int32.
func FloatToInt_AVX2_F32x8(v archsimd.Float32x8) archsimd.Int32x8 {
	return v.Add(conv32_magic).AsInt32x8().Sub(conv32_magicBits)
}

// IntToFloat_AVX2_I32x8 converts int32 lanes to float32.
func IntToFloat_AVX2_I32x8(n archsimd.Int32x8) archsimd.Float32x8 {
	return n.ConvertToFloat32()
}

// ILogB2K_AVX2_F32x8 returns the unbiased exponent field of each lane.
func ILogB2K_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	e := x.AsInt32x8().ShiftAllRight(23).And(conv32_expMask)
	return IntToFloat_AVX2_I32x8(e).Sub(conv32_bias)
}

// LdExp3K_AVX2_F32x8 adds the integer lanes of e to the exponent field of x.
func LdExp3K_AVX2_F32x8(x, e archsimd.Float32x8) archsimd.Float32x8 {
	n := FloatToInt_AVX2_F32x8(e).ShiftAllLeft(23)
	return x.AsInt32x8().Add(n).AsFloat32x8()
}

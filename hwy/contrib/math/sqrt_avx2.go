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

package math

import (
	"simd/archsimd"

	"github.com/ajroetker/go-emath/hwy/contrib/dd"
)

var (
	sqrt64_tiny        = archsimd.BroadcastFloat64x4(consts64.sqrtTiny)
	sqrt64_tinyScale   = archsimd.BroadcastFloat64x4(consts64.sqrtTinyScale)
	sqrt64_tinyQ       = archsimd.BroadcastFloat64x4(consts64.sqrtTinyQ)
	sqrt64_huge        = archsimd.BroadcastFloat64x4(consts64.sqrtHuge)
	sqrt64_hugeScale   = archsimd.BroadcastFloat64x4(consts64.sqrtHugeScale)
	sqrt64_hugeQ       = archsimd.BroadcastFloat64x4(consts64.sqrtHugeQ)
	sqrt64_bias        = archsimd.BroadcastFloat64x4(consts64.sqrtBias)
	sqrt64_threeHalves = archsimd.BroadcastFloat64x4(1.5)
	sqrt64_magic       = archsimd.BroadcastInt64x4(int64(consts64.sqrtMagic))
)

var (
	sqrt32_tiny        = archsimd.BroadcastFloat32x8(float32(consts32.sqrtTiny))
	sqrt32_tinyScale   = archsimd.BroadcastFloat32x8(float32(consts32.sqrtTinyScale))
	sqrt32_tinyQ       = archsimd.BroadcastFloat32x8(float32(consts32.sqrtTinyQ))
	sqrt32_huge        = archsimd.BroadcastFloat32x8(float32(consts32.sqrtHuge))
	sqrt32_hugeScale   = archsimd.BroadcastFloat32x8(float32(consts32.sqrtHugeScale))
	sqrt32_hugeQ       = archsimd.BroadcastFloat32x8(float32(consts32.sqrtHugeQ))
	sqrt32_bias        = archsimd.BroadcastFloat32x8(float32(consts32.sqrtBias))
	sqrt32_threeHalves = archsimd.BroadcastFloat32x8(1.5)
	sqrt32_magic       = archsimd.BroadcastInt32x8(int32(consts32.sqrtMagic))
)

// Sqrt_AVX2_F64x4 computes the square root of each lane from an inverse
// square root estimate, without the hardware square root.
func Sqrt_AVX2_F64x4(v archsimd.Float64x4) archsimd.Float64x4 {
	d := v64_nan.Merge(v, v.Less(v64_zero))
	q := v64_half

	tiny := d.Less(sqrt64_tiny)
	d = d.Mul(sqrt64_tinyScale).Merge(d, tiny)
	q = sqrt64_tinyQ.Merge(q, tiny)
	huge := d.Greater(sqrt64_huge)
	d = d.Mul(sqrt64_hugeScale).Merge(d, huge)
	q = sqrt64_hugeQ.Merge(q, huge)

	x := sqrt64_magic.Sub(d.Add(sqrt64_bias).AsInt64x4().ShiftAllRight(1)).AsFloat64x4()
	for range 3 {
		x = x.Mul(sqrt64_threeHalves.Sub(v64_half.Mul(d).Mul(x).Mul(x)))
	}
	x = x.Mul(d)

	s := dd.Mul_AVX2_F64x4(dd.AddFloat_AVX2_F64x4(d, dd.MulExact_AVX2_F64x4(x, x)), dd.Reciprocal_AVX2_F64x4(x))
	r := s.Hi.Add(s.Lo).Mul(q)
	r = d.Merge(r, d.Equal(v64_inf))
	return d.Merge(r, d.Equal(v64_zero))
}

// Sqrt_AVX2_F32x8 computes the square root of each lane from an inverse
// square root estimate, without the hardware square root.
func Sqrt_AVX2_F32x8(v archsimd.Float32x8) archsimd.Float32x8 {
	d := v32_nan.Merge(v, v.Less(v32_zero))
	q := v32_half

	tiny := d.Less(sqrt32_tiny)
	d = d.Mul(sqrt32_tinyScale).Merge(d, tiny)
	q = sqrt32_tinyQ.Merge(q, tiny)
	huge := d.Greater(sqrt32_huge)
	d = d.Mul(sqrt32_hugeScale).Merge(d, huge)
	q = sqrt32_hugeQ.Merge(q, huge)

	x := sqrt32_magic.Sub(d.Add(sqrt32_bias).AsInt32x8().ShiftAllRight(1)).AsFloat32x8()
	for range 3 {
		x = x.Mul(sqrt32_threeHalves.Sub(v32_half.Mul(d).Mul(x).Mul(x)))
	}
	x = x.Mul(d)

	s := dd.Mul_AVX2_F32x8(dd.AddFloat_AVX2_F32x8(d, dd.MulExact_AVX2_F32x8(x, x)), dd.Reciprocal_AVX2_F32x8(x))
	r := s.Hi.Add(s.Lo).Mul(q)
	r = d.Merge(r, d.Equal(v32_inf))
	return d.Merge(r, d.Equal(v32_zero))
}

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

	"github.com/ajroetker/go-emath/hwy"
)

var (
	atan64_coeffs       = broadcast64(atanCoeffs_f64)
	atan64_halfPi       = archsimd.BroadcastFloat64x4(consts64.halfPi)
	atan64_halfPiLo     = archsimd.BroadcastFloat64x4(consts64.halfPiLo)
	atan64_negHalfPi    = archsimd.BroadcastFloat64x4(-consts64.halfPi)
	atan64_pi           = archsimd.BroadcastFloat64x4(consts64.piHi)
	atan64_piLo         = archsimd.BroadcastFloat64x4(consts64.piLo)
	atan64_quarterPi    = archsimd.BroadcastFloat64x4(consts64.halfPi * 0.5)
	atan64_threeQuarter = archsimd.BroadcastFloat64x4(consts64.halfPi * 0.5 * 3)
)

var (
	atan32_coeffs       = broadcast32(atanCoeffs_f32)
	atan32_halfPi       = archsimd.BroadcastFloat32x8(float32(consts32.halfPi))
	atan32_halfPiLo     = archsimd.BroadcastFloat32x8(float32(consts32.halfPiLo))
	atan32_negHalfPi    = archsimd.BroadcastFloat32x8(float32(-consts32.halfPi))
	atan32_pi           = archsimd.BroadcastFloat32x8(float32(consts32.piHi))
	atan32_piLo         = archsimd.BroadcastFloat32x8(float32(consts32.piLo))
	atan32_quarterPi    = archsimd.BroadcastFloat32x8(float32(consts32.halfPi * 0.5))
	atan32_threeQuarter = archsimd.BroadcastFloat32x8(float32(consts32.halfPi * 0.5 * 3))
)

func atanReduce_AVX2_F64x4(ay, ax archsimd.Float64x4) (zh, corr archsimd.Float64x4, swap archsimd.Mask64x4) {
	swap = ay.Greater(ax)
	num := ax.Merge(ay, swap)
	den := ay.Merge(ax, swap)
	zh = num.Div(den)
	zl := hwy.Neg_AVX2_F64x4(zh).MulAdd(den, num).Div(den)
	t := zh.Mul(zh)
	corr = zh.Mul(t).MulAdd(horner_AVX2_F64x4(t, atan64_coeffs), zl)
	return zh, corr, swap
}

func atanFinish_AVX2_F64x4(oh, ol, zh, corr archsimd.Float64x4) archsimd.Float64x4 {
	h := oh.Add(zh)
	e := oh.Sub(h).Add(zh)
	return h.Add(e.Add(ol.Add(corr)))
}

func negIf_AVX2_F64x4(m archsimd.Mask64x4, v archsimd.Float64x4) archsimd.Float64x4 {
	return hwy.Neg_AVX2_F64x4(v).Merge(v, m)
}

// Atan_AVX2_F64x4 computes atan(x) for each lane.
func Atan_AVX2_F64x4(d archsimd.Float64x4) archsimd.Float64x4 {
	zh, corr, swap := atanReduce_AVX2_F64x4(hwy.Abs_AVX2_F64x4(d), v64_one)
	oh := atan64_halfPi.Merge(v64_zero, swap)
	ol := atan64_halfPiLo.Merge(v64_zero, swap)
	r := atanFinish_AVX2_F64x4(oh, ol, negIf_AVX2_F64x4(swap, zh), negIf_AVX2_F64x4(swap, corr))
	r = atan64_halfPi.Merge(r, hwy.IsInf_AVX2_F64x4(d))
	return hwy.CopySign_AVX2_F64x4(r, d)
}

// Atan2_AVX2_F64x4 computes atan2(y, x) for each lane pair with the IEEE
// treatment of signed zeros and infinities.
func Atan2_AVX2_F64x4(y, x archsimd.Float64x4) archsimd.Float64x4 {
	xNeg := hwy.SignBit_AVX2_F64x4(x)
	zh, corr, swap := atanReduce_AVX2_F64x4(hwy.Abs_AVX2_F64x4(y), hwy.Abs_AVX2_F64x4(x))
	oh := atan64_halfPi.Merge(atan64_pi.Merge(v64_zero, xNeg), swap)
	ol := atan64_halfPiLo.Merge(atan64_piLo.Merge(v64_zero, xNeg), swap)
	zh, corr = negIf_AVX2_F64x4(swap, zh), negIf_AVX2_F64x4(swap, corr)
	zh, corr = hwy.MulSign_AVX2_F64x4(zh, x), hwy.MulSign_AVX2_F64x4(corr, x)
	r := atanFinish_AVX2_F64x4(oh, ol, zh, corr)

	r = atan64_pi.Merge(v64_zero, xNeg).Merge(r, hwy.IsInf_AVX2_F64x4(x))
	r = atan64_halfPi.Merge(r, hwy.IsInf_AVX2_F64x4(y))
	r = hwy.CopySign_AVX2_F64x4(r, y)

	onAxis := hwy.CopySign_AVX2_F64x4(atan64_pi, y).Merge(y, xNeg)
	onAxis = atan64_halfPi.Merge(onAxis, y.Greater(v64_zero))
	onAxis = atan64_negHalfPi.Merge(onAxis, y.Less(v64_zero))
	r = onAxis.Merge(r, x.Equal(v64_zero))

	corner := atan64_threeQuarter.Merge(atan64_quarterPi, x.Less(v64_zero))
	bothInf := hwy.IsInf_AVX2_F64x4(x).And(hwy.IsInf_AVX2_F64x4(y))
	r = hwy.CopySign_AVX2_F64x4(corner, y).Merge(r, bothInf)
	return v64_nan.Merge(r, hwy.IsNaN_AVX2_F64x4(x).Or(hwy.IsNaN_AVX2_F64x4(y)))
}

func atanReduce_AVX2_F32x8(ay, ax archsimd.Float32x8) (zh, corr archsimd.Float32x8, swap archsimd.Mask32x8) {
	swap = ay.Greater(ax)
	num := ax.Merge(ay, swap)
	den := ay.Merge(ax, swap)
	zh = num.Div(den)
	zl := hwy.Neg_AVX2_F32x8(zh).MulAdd(den, num).Div(den)
	t := zh.Mul(zh)
	corr = zh.Mul(t).MulAdd(horner_AVX2_F32x8(t, atan32_coeffs), zl)
	return zh, corr, swap
}

func atanFinish_AVX2_F32x8(oh, ol, zh, corr archsimd.Float32x8) archsimd.Float32x8 {
	h := oh.Add(zh)
	e := oh.Sub(h).Add(zh)
	return h.Add(e.Add(ol.Add(corr)))
}

func negIf_AVX2_F32x8(m archsimd.Mask32x8, v archsimd.Float32x8) archsimd.Float32x8 {
	return hwy.Neg_AVX2_F32x8(v).Merge(v, m)
}

// Atan_AVX2_F32x8 computes atan(x) for each lane.
func Atan_AVX2_F32x8(d archsimd.Float32x8) archsimd.Float32x8 {
	zh, corr, swap := atanReduce_AVX2_F32x8(hwy.Abs_AVX2_F32x8(d), v32_one)
	oh := atan32_halfPi.Merge(v32_zero, swap)
	ol := atan32_halfPiLo.Merge(v32_zero, swap)
	r := atanFinish_AVX2_F32x8(oh, ol, negIf_AVX2_F32x8(swap, zh), negIf_AVX2_F32x8(swap, corr))
	r = atan32_halfPi.Merge(r, hwy.IsInf_AVX2_F32x8(d))
	return hwy.CopySign_AVX2_F32x8(r, d)
}

// Atan2_AVX2_F32x8 computes atan2(y, x) for each lane pair with the IEEE
// treatment of signed zeros and infinities.
func Atan2_AVX2_F32x8(y, x archsimd.Float32x8) archsimd.Float32x8 {
	xNeg := hwy.SignBit_AVX2_F32x8(x)
	zh, corr, swap := atanReduce_AVX2_F32x8(hwy.Abs_AVX2_F32x8(y), hwy.Abs_AVX2_F32x8(x))
	oh := atan32_halfPi.Merge(atan32_pi.Merge(v32_zero, xNeg), swap)
	ol := atan32_halfPiLo.Merge(atan32_piLo.Merge(v32_zero, xNeg), swap)
	zh, corr = negIf_AVX2_F32x8(swap, zh), negIf_AVX2_F32x8(swap, corr)
	zh, corr = hwy.MulSign_AVX2_F32x8(zh, x), hwy.MulSign_AVX2_F32x8(corr, x)
	r := atanFinish_AVX2_F32x8(oh, ol, zh, corr)

	r = atan32_pi.Merge(v32_zero, xNeg).Merge(r, hwy.IsInf_AVX2_F32x8(x))
	r = atan32_halfPi.Merge(r, hwy.IsInf_AVX2_F32x8(y))
	r = hwy.CopySign_AVX2_F32x8(r, y)

	onAxis := hwy.CopySign_AVX2_F32x8(atan32_pi, y).Merge(y, xNeg)
	onAxis = atan32_halfPi.Merge(onAxis, y.Greater(v32_zero))
	onAxis = atan32_negHalfPi.Merge(onAxis, y.Less(v32_zero))
	r = onAxis.Merge(r, x.Equal(v32_zero))

	corner := atan32_threeQuarter.Merge(atan32_quarterPi, x.Less(v32_zero))
	bothInf := hwy.IsInf_AVX2_F32x8(x).And(hwy.IsInf_AVX2_F32x8(y))
	r = hwy.CopySign_AVX2_F32x8(corner, y).Merge(r, bothInf)
	return v32_nan.Merge(r, hwy.IsNaN_AVX2_F32x8(x).Or(hwy.IsNaN_AVX2_F32x8(y)))
}

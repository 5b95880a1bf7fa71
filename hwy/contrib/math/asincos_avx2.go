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
	asin64_coeffs = broadcast64(asinCoeffs_f64)
	asin64_halfPi = archsimd.BroadcastFloat64x4(consts64.halfPi)
	asin64_piHi   = archsimd.BroadcastFloat64x4(consts64.piHi)
	asin64_piLo   = archsimd.BroadcastFloat64x4(consts64.piLo)
)

var (
	asin32_coeffs = broadcast32(asinCoeffs_f32)
	asin32_halfPi = archsimd.BroadcastFloat32x8(float32(consts32.halfPi))
	asin32_piHi   = archsimd.BroadcastFloat32x8(float32(consts32.piHi))
	asin32_piLo   = archsimd.BroadcastFloat32x8(float32(consts32.piLo))
)

func asinReduce_AVX2_F64x4(ca archsimd.Float64x4) (x, x2 archsimd.Float64x4, small archsimd.Mask64x4) {
	small = ca.Less(v64_half)
	x2 = ca.Mul(ca).Merge(v64_one.Sub(ca).Mul(v64_half), small)
	x = ca.Merge(x2.Sqrt(), small)
	return x, x2, small
}

// Asin_AVX2_F64x4 computes asin(x) for each lane.
func Asin_AVX2_F64x4(d archsimd.Float64x4) archsimd.Float64x4 {
	ca := hwy.Abs_AVX2_F64x4(d)
	x, x2, small := asinReduce_AVX2_F64x4(ca)
	u := horner_AVX2_F64x4(x2, asin64_coeffs)
	u = u.MulAdd(x.Mul(x2), x)
	u = u.Merge(asin64_halfPi.Sub(v64_two.Mul(u)), small)
	u = hwy.CopySign_AVX2_F64x4(u, d)
	return v64_nan.Merge(u, ca.Greater(v64_one))
}

// Acos_AVX2_F64x4 computes acos(x) for each lane.
func Acos_AVX2_F64x4(d archsimd.Float64x4) archsimd.Float64x4 {
	ca := hwy.Abs_AVX2_F64x4(d)
	x, x2, small := asinReduce_AVX2_F64x4(ca)
	u := horner_AVX2_F64x4(x2, asin64_coeffs).Mul(x.Mul(x2))

	near := asin64_halfPi.Sub(hwy.CopySign_AVX2_F64x4(x, d).Add(hwy.CopySign_AVX2_F64x4(u, d)))
	far := x.Add(u).Mul(v64_two)
	far = asin64_piHi.Sub(far).Add(asin64_piLo).Merge(far, d.Less(v64_zero))

	r := near.Merge(far, small)
	return v64_nan.Merge(r, ca.Greater(v64_one))
}

func asinReduce_AVX2_F32x8(ca archsimd.Float32x8) (x, x2 archsimd.Float32x8, small archsimd.Mask32x8) {
	small = ca.Less(v32_half)
	x2 = ca.Mul(ca).Merge(v32_one.Sub(ca).Mul(v32_half), small)
	x = ca.Merge(x2.Sqrt(), small)
	return x, x2, small
}

// Asin_AVX2_F32x8 computes asin(x) for each lane.
func Asin_AVX2_F32x8(d archsimd.Float32x8) archsimd.Float32x8 {
	ca := hwy.Abs_AVX2_F32x8(d)
	x, x2, small := asinReduce_AVX2_F32x8(ca)
	u := horner_AVX2_F32x8(x2, asin32_coeffs)
	u = u.MulAdd(x.Mul(x2), x)
	u = u.Merge(asin32_halfPi.Sub(v32_two.Mul(u)), small)
	u = hwy.CopySign_AVX2_F32x8(u, d)
	return v32_nan.Merge(u, ca.Greater(v32_one))
}

// Acos_AVX2_F32x8 computes acos(x) for each lane.
func Acos_AVX2_F32x8(d archsimd.Float32x8) archsimd.Float32x8 {
	ca := hwy.Abs_AVX2_F32x8(d)
	x, x2, small := asinReduce_AVX2_F32x8(ca)
	u := horner_AVX2_F32x8(x2, asin32_coeffs).Mul(x.Mul(x2))

	near := asin32_halfPi.Sub(hwy.CopySign_AVX2_F32x8(x, d).Add(hwy.CopySign_AVX2_F32x8(u, d)))
	far := x.Add(u).Mul(v32_two)
	far = asin32_piHi.Sub(far).Add(asin32_piLo).Merge(far, d.Less(v32_zero))

	r := near.Merge(far, small)
	return v32_nan.Merge(r, ca.Greater(v32_one))
}

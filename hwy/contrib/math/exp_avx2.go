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
	exp64_rln2   = archsimd.BroadcastFloat64x4(rln2)
	exp64_negL2U = archsimd.BroadcastFloat64x4(-consts64.l2u)
	exp64_negL2L = archsimd.BroadcastFloat64x4(-consts64.l2l)
	exp64_huge   = archsimd.BroadcastFloat64x4(consts64.expHuge)
	exp64_tiny   = archsimd.BroadcastFloat64x4(consts64.expTiny)
	exp64_coeffs = broadcast64(expCoeffs_f64)
)

var (
	exp32_rln2   = archsimd.BroadcastFloat32x8(float32(rln2))
	exp32_negL2U = archsimd.BroadcastFloat32x8(float32(-consts32.l2u))
	exp32_negL2L = archsimd.BroadcastFloat32x8(float32(-consts32.l2l))
	exp32_huge   = archsimd.BroadcastFloat32x8(float32(consts32.expHuge))
	exp32_tiny   = archsimd.BroadcastFloat32x8(float32(consts32.expTiny))
	exp32_coeffs = broadcast32(expCoeffs_f32)
)

// Exp_AVX2_F64x4 computes e^x for each lane.
func Exp_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	q := hwy.RintK_AVX2_F64x4(x.Mul(exp64_rln2))
	r := q.MulAdd(exp64_negL2U, x)
	r = q.MulAdd(exp64_negL2L, r)
	u := horner_AVX2_F64x4(r.Mul(r), exp64_coeffs)
	u = v64_one.Add(v64_two.Mul(r).Div(u.Sub(r)))
	u = hwy.LdExp2K_AVX2_F64x4(u, q)

	u = v64_inf.Merge(u, x.Greater(exp64_huge))
	u = v64_zero.Merge(u, x.Less(exp64_tiny))
	return x.Merge(u, hwy.IsNaN_AVX2_F64x4(x))
}

// Exp_AVX2_F32x8 computes e^x for each lane.
func Exp_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	q := hwy.RintK_AVX2_F32x8(x.Mul(exp32_rln2))
	r := q.MulAdd(exp32_negL2U, x)
	r = q.MulAdd(exp32_negL2L, r)
	u := horner_AVX2_F32x8(r.Mul(r), exp32_coeffs)
	u = v32_one.Add(v32_two.Mul(r).Div(u.Sub(r)))
	u = hwy.LdExp2K_AVX2_F32x8(u, q)

	u = v32_inf.Merge(u, x.Greater(exp32_huge))
	u = v32_zero.Merge(u, x.Less(exp32_tiny))
	return x.Merge(u, hwy.IsNaN_AVX2_F32x8(x))
}

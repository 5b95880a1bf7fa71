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
	"github.com/ajroetker/go-emath/hwy/contrib/dd"
)

var (
	log64_minNormal     = archsimd.BroadcastFloat64x4(consts64.minNormal)
	log64_prescale      = archsimd.BroadcastFloat64x4(consts64.lnPrescale)
	log64_prescaleBits  = archsimd.BroadcastFloat64x4(consts64.lnPrescaleBits)
	log64_invThreeQuart = archsimd.BroadcastFloat64x4(1 / 0.75)
	log64_ln2           = archsimd.BroadcastFloat64x4(consts64.ln2)
	log64_ln2Lo         = archsimd.BroadcastFloat64x4(consts64.ln2Lo)
	log64_coeffs        = broadcast64(lnCoeffs_f64)
)

var (
	log32_minNormal     = archsimd.BroadcastFloat32x8(float32(consts32.minNormal))
	log32_prescale      = archsimd.BroadcastFloat32x8(float32(consts32.lnPrescale))
	log32_prescaleBits  = archsimd.BroadcastFloat32x8(float32(consts32.lnPrescaleBits))
	log32_invThreeQuart = archsimd.BroadcastFloat32x8(float32(1 / 0.75))
	log32_ln2           = archsimd.BroadcastFloat32x8(float32(consts32.ln2))
	log32_ln2Lo         = archsimd.BroadcastFloat32x8(float32(consts32.ln2Lo))
	log32_coeffs        = broadcast32(lnCoeffs_f32)
)

// Ln_AVX2_F64x4 computes the natural logarithm of each lane.
func Ln_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	sub := x.Less(log64_minNormal)
	d := x.Mul(log64_prescale).Merge(x, sub)
	e := hwy.ILogB2K_AVX2_F64x4(d.Mul(log64_invThreeQuart))
	a := hwy.LdExp3K_AVX2_F64x4(d, hwy.Neg_AVX2_F64x4(e))
	e = e.Sub(log64_prescaleBits).Merge(e, sub)

	num := a.Sub(v64_one)
	den := dd.TwoSum_AVX2_F64x4(a, v64_one)
	th := num.Div(den.Hi)
	negTh := hwy.Neg_AVX2_F64x4(th)
	tl := negTh.MulAdd(den.Lo, negTh.MulAdd(den.Hi, num)).Div(den.Hi)
	t2 := th.Mul(th)
	hi := e.Mul(log64_ln2)
	he := e.MulAdd(log64_ln2, hwy.Neg_AVX2_F64x4(hi))
	tt := v64_two.Mul(th)
	s := hi.Add(tt)
	lo := hi.Sub(s).Add(tt).Add(he)
	lo = lo.Add(e.MulAdd(log64_ln2Lo, v64_two.Mul(tl)))
	lo = th.Mul(t2).MulAdd(horner_AVX2_F64x4(t2, log64_coeffs), lo)
	r := s.Add(lo)

	r = x.Merge(r, x.Equal(v64_inf))
	r = v64_nan.Merge(r, hwy.IsNaN_AVX2_F64x4(x).Or(x.Less(v64_zero)))
	return v64_negInf.Merge(r, x.Equal(v64_zero))
}

// Ln_AVX2_F32x8 computes the natural logarithm of each lane.
func Ln_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	sub := x.Less(log32_minNormal)
	d := x.Mul(log32_prescale).Merge(x, sub)
	e := hwy.ILogB2K_AVX2_F32x8(d.Mul(log32_invThreeQuart))
	a := hwy.LdExp3K_AVX2_F32x8(d, hwy.Neg_AVX2_F32x8(e))
	e = e.Sub(log32_prescaleBits).Merge(e, sub)

	num := a.Sub(v32_one)
	den := dd.TwoSum_AVX2_F32x8(a, v32_one)
	th := num.Div(den.Hi)
	negTh := hwy.Neg_AVX2_F32x8(th)
	tl := negTh.MulAdd(den.Lo, negTh.MulAdd(den.Hi, num)).Div(den.Hi)
	t2 := th.Mul(th)
	hi := e.Mul(log32_ln2)
	he := e.MulAdd(log32_ln2, hwy.Neg_AVX2_F32x8(hi))
	tt := v32_two.Mul(th)
	s := hi.Add(tt)
	lo := hi.Sub(s).Add(tt).Add(he)
	lo = lo.Add(e.MulAdd(log32_ln2Lo, v32_two.Mul(tl)))
	lo = th.Mul(t2).MulAdd(horner_AVX2_F32x8(t2, log32_coeffs), lo)
	r := s.Add(lo)

	r = x.Merge(r, x.Equal(v32_inf))
	r = v32_nan.Merge(r, hwy.IsNaN_AVX2_F32x8(x).Or(x.Less(v32_zero)))
	return v32_negInf.Merge(r, x.Equal(v32_zero))
}

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
	pow64_minNormal     = archsimd.BroadcastFloat64x4(minNormal64)
	pow64_prescale      = archsimd.BroadcastFloat64x4(0x1p64)
	pow64_prescaleBits  = archsimd.BroadcastFloat64x4(64)
	pow64_invThreeQuart = archsimd.BroadcastFloat64x4(1 / 0.75)
	pow64_negOne        = archsimd.BroadcastFloat64x4(-1)
	pow64_rln2          = archsimd.BroadcastFloat64x4(rln2)
	pow64_negL2U        = archsimd.BroadcastFloat64x4(-consts64.l2u)
	pow64_negL2L        = archsimd.BroadcastFloat64x4(-consts64.l2l)
	pow64_huge          = archsimd.BroadcastFloat64x4(powHuge_f64)
	pow64_tiny          = archsimd.BroadcastFloat64x4(expTiny_f64)
	pow64_logk          = broadcast64(logkCoeffs_f64)
	pow64_expk          = broadcast64(expkCoeffs_f64)

	pow64_ln2 = dd.F64x4{
		Hi: archsimd.BroadcastFloat64x4(ln2_f64),
		Lo: archsimd.BroadcastFloat64x4(ln2Lo_f64),
	}
	pow64_twoThirds = dd.F64x4{
		Hi: archsimd.BroadcastFloat64x4(twoThirds),
		Lo: archsimd.BroadcastFloat64x4(twoThirdsLo),
	}
)

func logk_AVX2_F64x4(d archsimd.Float64x4) dd.F64x4 {
	sub := d.Less(pow64_minNormal)
	d = d.Mul(pow64_prescale).Merge(d, sub)
	e := hwy.ILogB2K_AVX2_F64x4(d.Mul(pow64_invThreeQuart))
	m := hwy.LdExp3K_AVX2_F64x4(d, hwy.Neg_AVX2_F64x4(e))
	e = e.Sub(pow64_prescaleBits).Merge(e, sub)

	x := dd.Div_AVX2_F64x4(dd.TwoSum_AVX2_F64x4(pow64_negOne, m), dd.TwoSum_AVX2_F64x4(v64_one, m))
	x2 := dd.Square_AVX2_F64x4(x)
	t := horner_AVX2_F64x4(x2.Hi, pow64_logk)

	s := dd.MulFloat_AVX2_F64x4(pow64_ln2, e)
	s = dd.Add_AVX2_F64x4(s, dd.Scale_AVX2_F64x4(x, v64_two))
	x = dd.Mul_AVX2_F64x4(x2, x)
	s = dd.Add_AVX2_F64x4(s, dd.Mul_AVX2_F64x4(x, pow64_twoThirds))
	x = dd.Mul_AVX2_F64x4(x2, x)
	return dd.Add_AVX2_F64x4(s, dd.MulFloat_AVX2_F64x4(x, t))
}

func expk_AVX2_F64x4(d dd.F64x4) archsimd.Float64x4 {
	q := hwy.RintK_AVX2_F64x4(d.Hi.Add(d.Lo).Mul(pow64_rln2))
	s := dd.AddScalar_AVX2_F64x4(d, q.Mul(pow64_negL2U))
	s = dd.AddScalar_AVX2_F64x4(s, q.Mul(pow64_negL2L))
	s = dd.Normalize_AVX2_F64x4(s)
	u := horner_AVX2_F64x4(s.Hi, pow64_expk)
	t := dd.AddFast_AVX2_F64x4(v64_one, s)
	t = dd.Add_AVX2_F64x4(t, dd.MulFloat_AVX2_F64x4(dd.Square_AVX2_F64x4(s), u))
	r := hwy.LdExp2K_AVX2_F64x4(t.Hi.Add(t.Lo), q)
	return v64_zero.Merge(r, d.Hi.Less(pow64_tiny))
}

// Pow_AVX2_F64x4 computes x^y for each lane pair.
func Pow_AVX2_F64x4(x, y archsimd.Float64x4) archsimd.Float64x4 {
	d := dd.MulFloat_AVX2_F64x4(logk_AVX2_F64x4(hwy.Abs_AVX2_F64x4(x)), y)
	r := expk_AVX2_F64x4(d)
	r = v64_inf.Merge(r, d.Hi.Greater(pow64_huge).Or(hwy.IsNaN_AVX2_F64x4(r)))

	integral := y.Floor().Equal(y)
	odd := integral.And(isOdd_AVX2_F64x4(y))
	atZero := v64_inf.Merge(v64_zero, y.Less(v64_zero))
	r = atZero.Merge(r, x.Equal(v64_zero))
	r = hwy.Neg_AVX2_F64x4(r).Merge(r, hwy.SignBit_AVX2_F64x4(x).And(odd))
	r = v64_one.Merge(r, y.Equal(v64_zero))
	r = v64_nan.Merge(r, hwy.IsNaN_AVX2_F64x4(x).Or(hwy.IsNaN_AVX2_F64x4(y)))
	r = v64_zero.Merge(r, y.Equal(v64_negInf))
	r = v64_inf.Merge(r, y.Equal(v64_inf).Or(hwy.IsInf_AVX2_F64x4(x)))

	negBase := r.Merge(v64_nan, integral)
	return negBase.Merge(r, x.Less(v64_zero))
}

// Pow_AVX2_F32x8 computes x^y for each lane pair in float64 and rounds
// once to float32.
func Pow_AVX2_F32x8(x, y archsimd.Float32x8) archsimd.Float32x8 {
	lo := Pow_AVX2_F64x4(hwy.PromoteF32ToF64_AVX2_Lower(x), hwy.PromoteF32ToF64_AVX2_Lower(y))
	hi := Pow_AVX2_F64x4(hwy.PromoteF32ToF64_AVX2_Upper(x), hwy.PromoteF32ToF64_AVX2_Upper(y))
	return hwy.DemoteTwoF64ToF32_AVX2(lo, hi)
}

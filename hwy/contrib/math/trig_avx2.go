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
	trig64_onePi     = archsimd.BroadcastFloat64x4(consts64.onePi)
	trig64_twoPi     = archsimd.BroadcastFloat64x4(consts64.twoPi)
	trig64_negPi     = broadcast64(scaled(consts64.piSplit, -1))
	trig64_negHalfPi = broadcast64(scaled(consts64.piSplit, -0.5))
	trig64_sin       = broadcast64(sinCoeffs_f64)
	trig64_tan       = broadcast64(tanCoeffs_f64)
)

var (
	trig32_onePi     = archsimd.BroadcastFloat32x8(float32(consts32.onePi))
	trig32_twoPi     = archsimd.BroadcastFloat32x8(float32(consts32.twoPi))
	trig32_negPi     = broadcast32(scaled(consts32.piSplit, -1))
	trig32_negHalfPi = broadcast32(scaled(consts32.piSplit, -0.5))
	trig32_sin       = broadcast32(sinCoeffs_f32)
	trig32_tan       = broadcast32(tanCoeffs_f32)
)

// Sin_AVX2_F64x4 computes sin(x) for each lane.
func Sin_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	q := hwy.RintK_AVX2_F64x4(x.Mul(trig64_onePi))
	r := x
	for _, p := range trig64_negPi {
		r = q.MulAdd(p, r)
	}
	x2 := r.Mul(r)
	r = hwy.Neg_AVX2_F64x4(r).Merge(r, isOdd_AVX2_F64x4(q))
	u := horner_AVX2_F64x4(x2, trig64_sin)
	u = u.MulAdd(x2.Mul(r), r)

	u = x.Merge(u, x.Equal(v64_zero))
	return v64_nan.Merge(u, hwy.IsInf_AVX2_F64x4(x))
}

// Cos_AVX2_F64x4 computes cos(x) for each lane.
func Cos_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	q := hwy.RintK_AVX2_F64x4(x.Mul(trig64_onePi).Sub(v64_half)).MulAdd(v64_two, v64_one)
	r := x
	for _, p := range trig64_negHalfPi {
		r = q.MulAdd(p, r)
	}
	x2 := r.Mul(r)
	r = hwy.Neg_AVX2_F64x4(r).Merge(r, quadrant_AVX2_F64x4(q).Equal(v64_one))
	u := horner_AVX2_F64x4(x2, trig64_sin)
	u = u.MulAdd(x2.Mul(r), r)
	return v64_nan.Merge(u, hwy.IsInf_AVX2_F64x4(x))
}

// Tan_AVX2_F64x4 computes tan(x) for each lane.
func Tan_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	q := hwy.RintK_AVX2_F64x4(x.Mul(trig64_twoPi))
	r := x
	for _, p := range trig64_negHalfPi {
		r = q.MulAdd(p, r)
	}
	odd := isOdd_AVX2_F64x4(q)
	r = hwy.Neg_AVX2_F64x4(r).Merge(r, odd)
	r = r.Mul(v64_half)
	x2 := r.Mul(r)
	u := horner_AVX2_F64x4(x2, trig64_tan)
	u = u.MulAdd(x2.Mul(r), r)
	u = v64_two.Mul(u).Div(v64_one.Sub(u.Mul(u)))
	u = v64_one.Div(u).Merge(u, odd)

	u = x.Merge(u, x.Equal(v64_zero))
	return v64_nan.Merge(u, hwy.IsInf_AVX2_F64x4(x))
}

// Sin_AVX2_F32x8 computes sin(x) for each lane.
func Sin_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	q := hwy.RintK_AVX2_F32x8(x.Mul(trig32_onePi))
	r := x
	for _, p := range trig32_negPi {
		r = q.MulAdd(p, r)
	}
	x2 := r.Mul(r)
	r = hwy.Neg_AVX2_F32x8(r).Merge(r, isOdd_AVX2_F32x8(q))
	u := horner_AVX2_F32x8(x2, trig32_sin)
	u = u.MulAdd(x2.Mul(r), r)

	u = x.Merge(u, x.Equal(v32_zero))
	return v32_nan.Merge(u, hwy.IsInf_AVX2_F32x8(x))
}

// Cos_AVX2_F32x8 computes cos(x) for each lane.
func Cos_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	q := hwy.RintK_AVX2_F32x8(x.Mul(trig32_onePi).Sub(v32_half)).MulAdd(v32_two, v32_one)
	r := x
	for _, p := range trig32_negHalfPi {
		r = q.MulAdd(p, r)
	}
	x2 := r.Mul(r)
	r = hwy.Neg_AVX2_F32x8(r).Merge(r, quadrant_AVX2_F32x8(q).Equal(v32_one))
	u := horner_AVX2_F32x8(x2, trig32_sin)
	u = u.MulAdd(x2.Mul(r), r)
	return v32_nan.Merge(u, hwy.IsInf_AVX2_F32x8(x))
}

// Tan_AVX2_F32x8 computes tan(x) for each lane.
func Tan_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	q := hwy.RintK_AVX2_F32x8(x.Mul(trig32_twoPi))
	r := x
	for _, p := range trig32_negHalfPi {
		r = q.MulAdd(p, r)
	}
	odd := isOdd_AVX2_F32x8(q)
	r = hwy.Neg_AVX2_F32x8(r).Merge(r, odd)
	x2 := r.Mul(r)
	u := horner_AVX2_F32x8(x2, trig32_tan)
	u = u.MulAdd(x2.Mul(r), r)
	u = v32_one.Div(u).Merge(u, odd)

	u = x.Merge(u, x.Equal(v32_zero))
	return v32_nan.Merge(u, hwy.IsInf_AVX2_F32x8(x))
}

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

// Hypot_AVX2_F64x4 computes sqrt(x² + y²) for each lane pair.
func Hypot_AVX2_F64x4(x, y archsimd.Float64x4) archsimd.Float64x4 {
	ax, ay := hwy.Abs_AVX2_F64x4(x), hwy.Abs_AVX2_F64x4(y)
	yNaN := hwy.IsNaN_AVX2_F64x4(ay)
	hi := ax.Merge(ay, yNaN.Or(ax.Greater(ay)))
	lo := ax.Merge(ay, yNaN.Or(ax.Less(ay)))
	r := lo.Div(hi)
	h := hi.Mul(Sqrt_AVX2_F64x4(r.MulAdd(r, v64_one)))

	h = v64_inf.Merge(h, hwy.IsNaN_AVX2_F64x4(h))
	h = hi.Merge(h, lo.Equal(v64_zero))
	h = v64_nan.Merge(h, hwy.IsNaN_AVX2_F64x4(ax).Or(yNaN))
	return v64_inf.Merge(h, hwy.IsInf_AVX2_F64x4(ax).Or(hwy.IsInf_AVX2_F64x4(ay)))
}

// Hypot_AVX2_F32x8 computes sqrt(x² + y²) for each lane pair.
func Hypot_AVX2_F32x8(x, y archsimd.Float32x8) archsimd.Float32x8 {
	ax, ay := hwy.Abs_AVX2_F32x8(x), hwy.Abs_AVX2_F32x8(y)
	yNaN := hwy.IsNaN_AVX2_F32x8(ay)
	hi := ax.Merge(ay, yNaN.Or(ax.Greater(ay)))
	lo := ax.Merge(ay, yNaN.Or(ax.Less(ay)))
	r := lo.Div(hi)
	h := hi.Mul(Sqrt_AVX2_F32x8(r.MulAdd(r, v32_one)))

	h = v32_inf.Merge(h, hwy.IsNaN_AVX2_F32x8(h))
	h = hi.Merge(h, lo.Equal(v32_zero))
	h = v32_nan.Merge(h, hwy.IsNaN_AVX2_F32x8(ax).Or(yNaN))
	return v32_inf.Merge(h, hwy.IsInf_AVX2_F32x8(ax).Or(hwy.IsInf_AVX2_F32x8(ay)))
}

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

var round64_exact = archsimd.BroadcastFloat64x4(consts64.exactInt)

var round32_exact = archsimd.BroadcastFloat32x8(float32(consts32.exactInt))

// Floor_AVX2_F64x4 rounds each lane toward -Inf.
func Floor_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	fr := x.Sub(x.Trunc())
	fr = fr.Add(v64_one).Merge(fr, fr.Less(v64_zero))
	return passIntegral_AVX2_F64x4(x, hwy.CopySign_AVX2_F64x4(x.Sub(fr), x))
}

// Ceil_AVX2_F64x4 rounds each lane toward +Inf.
func Ceil_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	fr := x.Sub(x.Trunc())
	fr = fr.Sub(v64_one).Merge(fr, fr.Greater(v64_zero))
	return passIntegral_AVX2_F64x4(x, hwy.CopySign_AVX2_F64x4(x.Sub(fr), x))
}

func passIntegral_AVX2_F64x4(x, r archsimd.Float64x4) archsimd.Float64x4 {
	big := hwy.Abs_AVX2_F64x4(x).GreaterEqual(round64_exact)
	return x.Merge(r, big.Or(hwy.IsInf_AVX2_F64x4(x)))
}

// Floor_AVX2_F32x8 rounds each lane toward -Inf.
func Floor_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	fr := x.Sub(x.Trunc())
	fr = fr.Add(v32_one).Merge(fr, fr.Less(v32_zero))
	return passIntegral_AVX2_F32x8(x, hwy.CopySign_AVX2_F32x8(x.Sub(fr), x))
}

// Ceil_AVX2_F32x8 rounds each lane toward +Inf.
func Ceil_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	fr := x.Sub(x.Trunc())
	fr = fr.Sub(v32_one).Merge(fr, fr.Greater(v32_zero))
	return passIntegral_AVX2_F32x8(x, hwy.CopySign_AVX2_F32x8(x.Sub(fr), x))
}

func passIntegral_AVX2_F32x8(x, r archsimd.Float32x8) archsimd.Float32x8 {
	big := hwy.Abs_AVX2_F32x8(x).GreaterEqual(round32_exact)
	return x.Merge(r, big.Or(hwy.IsInf_AVX2_F32x8(x)))
}

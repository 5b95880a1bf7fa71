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

import (
	"math"
	"simd/archsimd"
)

// This file provides AVX2 lane classification and lane access helpers used
// by the archsimd kernels and their single-value wrappers.

var (
	ops64_inf = archsimd.BroadcastFloat64x4(math.Inf(1))
	ops32_inf = archsimd.BroadcastFloat32x8(float32(math.Inf(1)))
)

// IsNaN_AVX2_F64x4 returns a mask of NaN lanes (self-inequality).
func IsNaN_AVX2_F64x4(x archsimd.Float64x4) archsimd.Mask64x4 {
	return x.NotEqual(x)
}

// IsInf_AVX2_F64x4 returns a mask of ±Inf lanes.
func IsInf_AVX2_F64x4(x archsimd.Float64x4) archsimd.Mask64x4 {
	return Abs_AVX2_F64x4(x).Equal(ops64_inf)
}

// Lane0_AVX2_F64x4 extracts lane 0.
func Lane0_AVX2_F64x4(v archsimd.Float64x4) float64 {
	var out [4]float64
	v.Store(&out)
	return out[0]
}

// IsNaN_AVX2_F32x8 returns a mask of NaN lanes (self-inequality).
func IsNaN_AVX2_F32x8(x archsimd.Float32x8) archsimd.Mask32x8 {
	return x.NotEqual(x)
}

// IsInf_AVX2_F32x8 returns a mask of ±Inf lanes.
func IsInf_AVX2_F32x8(x archsimd.Float32x8) archsimd.Mask32x8 {
	return Abs_AVX2_F32x8(x).Equal(ops32_inf)
}

// Lane0_AVX2_F32x8 extracts lane 0.
func Lane0_AVX2_F32x8(v archsimd.Float32x8) float32 {
	var out [8]float32
	v.Store(&out)
	return out[0]
}

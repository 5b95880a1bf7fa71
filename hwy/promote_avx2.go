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

import "simd/archsimd"

// archsimd does not expose VCVTPS2PD/VCVTPD2PS for these shapes, so the
// conversions go through memory.

// PromoteF32ToF64_AVX2_Lower promotes the lower 4 float32 lanes to float64.
func PromoteF32ToF64_AVX2_Lower(v archsimd.Float32x8) archsimd.Float64x4 {
	var data [8]float32
	v.Store(&data)
	var result [4]float64
	for i := range result {
		result[i] = float64(data[i])
	}
	return archsimd.LoadFloat64x4Slice(result[:])
}

// PromoteF32ToF64_AVX2_Upper promotes the upper 4 float32 lanes to float64.
func PromoteF32ToF64_AVX2_Upper(v archsimd.Float32x8) archsimd.Float64x4 {
	var data [8]float32
	v.Store(&data)
	var result [4]float64
	for i := range result {
		result[i] = float64(data[4+i])
	}
	return archsimd.LoadFloat64x4Slice(result[:])
}

// DemoteTwoF64ToF32_AVX2 narrows two Float64x4 vectors into one Float32x8,
// lo in lanes 0-3 and hi in lanes 4-7.
func DemoteTwoF64ToF32_AVX2(lo, hi archsimd.Float64x4) archsimd.Float32x8 {
	var loData, hiData [4]float64
	lo.Store(&loData)
	hi.Store(&hiData)
	var result [8]float32
	for i := range 4 {
		result[i] = float32(loData[i])
		result[4+i] = float32(hiData[i])
	}
	return archsimd.LoadFloat32x8Slice(result[:])
}

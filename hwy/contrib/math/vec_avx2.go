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
	stdmath "math"
	"simd/archsimd"
)

// Shared lane constants and helpers for the AVX2 kernels. Each kernel file
// broadcasts its own coefficient tables once at package init.

var (
	v64_zero    = archsimd.BroadcastFloat64x4(0)
	v64_quarter = archsimd.BroadcastFloat64x4(0.25)
	v64_half    = archsimd.BroadcastFloat64x4(0.5)
	v64_one     = archsimd.BroadcastFloat64x4(1)
	v64_two     = archsimd.BroadcastFloat64x4(2)
	v64_three   = archsimd.BroadcastFloat64x4(3)
	v64_four    = archsimd.BroadcastFloat64x4(4)
	v64_inf     = archsimd.BroadcastFloat64x4(stdmath.Inf(1))
	v64_negInf  = archsimd.BroadcastFloat64x4(stdmath.Inf(-1))
	v64_nan     = archsimd.BroadcastFloat64x4(stdmath.NaN())

	v32_zero    = archsimd.BroadcastFloat32x8(0)
	v32_quarter = archsimd.BroadcastFloat32x8(0.25)
	v32_half    = archsimd.BroadcastFloat32x8(0.5)
	v32_one     = archsimd.BroadcastFloat32x8(1)
	v32_two     = archsimd.BroadcastFloat32x8(2)
	v32_three   = archsimd.BroadcastFloat32x8(3)
	v32_four    = archsimd.BroadcastFloat32x8(4)
	v32_inf     = archsimd.BroadcastFloat32x8(float32(stdmath.Inf(1)))
	v32_negInf  = archsimd.BroadcastFloat32x8(float32(stdmath.Inf(-1)))
	v32_nan     = archsimd.BroadcastFloat32x8(float32(stdmath.NaN()))
)

func broadcast64(table []float64) []archsimd.Float64x4 {
	out := make([]archsimd.Float64x4, len(table))
	for i, c := range table {
		out[i] = archsimd.BroadcastFloat64x4(c)
	}
	return out
}

func broadcast32(table []float64) []archsimd.Float32x8 {
	out := make([]archsimd.Float32x8, len(table))
	for i, c := range table {
		out[i] = archsimd.BroadcastFloat32x8(float32(c))
	}
	return out
}

// scaled returns table with every entry multiplied by s.
func scaled(table []float64, s float64) []float64 {
	out := make([]float64, len(table))
	for i, c := range table {
		out[i] = c * s
	}
	return out
}

// horner_AVX2_F64x4 evaluates table at x, highest degree first.
func horner_AVX2_F64x4(x archsimd.Float64x4, table []archsimd.Float64x4) archsimd.Float64x4 {
	u := table[0]
	for _, c := range table[1:] {
		u = u.MulAdd(x, c)
	}
	return u
}

func isOdd_AVX2_F64x4(q archsimd.Float64x4) archsimd.Mask64x4 {
	h := q.Mul(v64_half)
	return h.NotEqual(h.Floor())
}

// quadrant_AVX2_F64x4 is q mod 4 for integer-valued q.
func quadrant_AVX2_F64x4(q archsimd.Float64x4) archsimd.Float64x4 {
	return q.Sub(v64_four.Mul(q.Mul(v64_quarter).Floor()))
}

func horner_AVX2_F32x8(x archsimd.Float32x8, table []archsimd.Float32x8) archsimd.Float32x8 {
	u := table[0]
	for _, c := range table[1:] {
		u = u.MulAdd(x, c)
	}
	return u
}

func isOdd_AVX2_F32x8(q archsimd.Float32x8) archsimd.Mask32x8 {
	h := q.Mul(v32_half)
	return h.NotEqual(h.Floor())
}

func quadrant_AVX2_F32x8(q archsimd.Float32x8) archsimd.Float32x8 {
	return q.Sub(v32_four.Mul(q.Mul(v32_quarter).Floor()))
}

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

type (
	f64x4Func  = func(archsimd.Float64x4) archsimd.Float64x4
	f64x4Func2 = func(a, b archsimd.Float64x4) archsimd.Float64x4
	f32x8Func  = func(archsimd.Float32x8) archsimd.Float32x8
	f32x8Func2 = func(a, b archsimd.Float32x8) archsimd.Float32x8
)

var avx2Unary64 = [numFuncs]f64x4Func{
	FuncSin: Sin_AVX2_F64x4, FuncCos: Cos_AVX2_F64x4, FuncTan: Tan_AVX2_F64x4,
	FuncAsin: Asin_AVX2_F64x4, FuncAcos: Acos_AVX2_F64x4, FuncAtan: Atan_AVX2_F64x4,
	FuncExp: Exp_AVX2_F64x4, FuncLn: Ln_AVX2_F64x4,
	FuncSqrt: Sqrt_AVX2_F64x4, FuncCbrt: Cbrt_AVX2_F64x4,
	FuncFloor: Floor_AVX2_F64x4, FuncCeil: Ceil_AVX2_F64x4,
}

var avx2Unary32 = [numFuncs]f32x8Func{
	FuncSin: Sin_AVX2_F32x8, FuncCos: Cos_AVX2_F32x8, FuncTan: Tan_AVX2_F32x8,
	FuncAsin: Asin_AVX2_F32x8, FuncAcos: Acos_AVX2_F32x8, FuncAtan: Atan_AVX2_F32x8,
	FuncExp: Exp_AVX2_F32x8, FuncLn: Ln_AVX2_F32x8,
	FuncSqrt: Sqrt_AVX2_F32x8, FuncCbrt: Cbrt_AVX2_F32x8,
	FuncFloor: Floor_AVX2_F32x8, FuncCeil: Ceil_AVX2_F32x8,
}

var avx2Binary64 = [numFuncs]f64x4Func2{
	FuncAtan2: Atan2_AVX2_F64x4, FuncPow: Pow_AVX2_F64x4, FuncHypot: Hypot_AVX2_F64x4,
}

var avx2Binary32 = [numFuncs]f32x8Func2{
	FuncAtan2: Atan2_AVX2_F32x8, FuncPow: Pow_AVX2_F32x8, FuncHypot: Hypot_AVX2_F32x8,
}

func wrap64(k f64x4Func) func(float64) float64 {
	return func(x float64) float64 {
		return hwy.Lane0_AVX2_F64x4(k(archsimd.BroadcastFloat64x4(x)))
	}
}

func wrap64x2(k f64x4Func2) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		return hwy.Lane0_AVX2_F64x4(k(archsimd.BroadcastFloat64x4(x), archsimd.BroadcastFloat64x4(y)))
	}
}

func wrap32(k f32x8Func) func(float32) float32 {
	return func(x float32) float32 {
		return hwy.Lane0_AVX2_F32x8(k(archsimd.BroadcastFloat32x8(x)))
	}
}

func wrap32x2(k f32x8Func2) func(x, y float32) float32 {
	return func(x, y float32) float32 {
		return hwy.Lane0_AVX2_F32x8(k(archsimd.BroadcastFloat32x8(x), archsimd.BroadcastFloat32x8(y)))
	}
}

// archBackend returns the archsimd AVX2 kernels.
func archBackend() (Backend, bool) {
	b := Backend{Level: hwy.DispatchAVX2, Name: "avx2"}
	k64, k32 := &b.Kernels64, &b.Kernels32
	for _, f := range Funcs() {
		if f.Binary() {
			*k64.binarySlot(f) = wrap64x2(avx2Binary64[f])
			*k32.binarySlot(f) = wrap32x2(avx2Binary32[f])
			continue
		}
		*k64.unarySlot(f) = wrap64(avx2Unary64[f])
		*k32.unarySlot(f) = wrap32(avx2Unary32[f])
	}
	return b, true
}

// archMapUnary runs the AVX2 kernel for f over in when the current backend
// is the archsimd one and in is []float64 or []float32. It reports whether
// it handled the call.
func archMapUnary(f Func, in, out any) bool {
	if current.Level != hwy.DispatchAVX2 {
		return false
	}
	switch in := in.(type) {
	case []float64:
		out := out.([]float64)
		k := avx2Unary64[f]
		n := len(in) &^ 3
		for i := 0; i < n; i += 4 {
			k(archsimd.LoadFloat64x4Slice(in[i:])).StoreSlice(out[i:])
		}
		if n < len(in) {
			var buf [4]float64
			copy(buf[:], in[n:])
			k(archsimd.LoadFloat64x4Slice(buf[:])).StoreSlice(buf[:])
			copy(out[n:], buf[:])
		}
		return true
	case []float32:
		out := out.([]float32)
		k := avx2Unary32[f]
		n := len(in) &^ 7
		for i := 0; i < n; i += 8 {
			k(archsimd.LoadFloat32x8Slice(in[i:])).StoreSlice(out[i:])
		}
		if n < len(in) {
			var buf [8]float32
			copy(buf[:], in[n:])
			k(archsimd.LoadFloat32x8Slice(buf[:])).StoreSlice(buf[:])
			copy(out[n:], buf[:])
		}
		return true
	}
	return false
}

// archMapBinary is archMapUnary for two-argument functions; a, b and out
// are already trimmed to the same length.
func archMapBinary(f Func, a, b, out any) bool {
	if current.Level != hwy.DispatchAVX2 {
		return false
	}
	switch a := a.(type) {
	case []float64:
		b, out := b.([]float64), out.([]float64)
		k := avx2Binary64[f]
		n := len(a) &^ 3
		for i := 0; i < n; i += 4 {
			k(archsimd.LoadFloat64x4Slice(a[i:]), archsimd.LoadFloat64x4Slice(b[i:])).StoreSlice(out[i:])
		}
		if n < len(a) {
			var ba, bb [4]float64
			copy(ba[:], a[n:])
			copy(bb[:], b[n:])
			k(archsimd.LoadFloat64x4Slice(ba[:]), archsimd.LoadFloat64x4Slice(bb[:])).StoreSlice(ba[:])
			copy(out[n:], ba[:])
		}
		return true
	case []float32:
		b, out := b.([]float32), out.([]float32)
		k := avx2Binary32[f]
		n := len(a) &^ 7
		for i := 0; i < n; i += 8 {
			k(archsimd.LoadFloat32x8Slice(a[i:]), archsimd.LoadFloat32x8Slice(b[i:])).StoreSlice(out[i:])
		}
		if n < len(a) {
			var ba, bb [8]float32
			copy(ba[:], a[n:])
			copy(bb[:], b[n:])
			k(archsimd.LoadFloat32x8Slice(ba[:]), archsimd.LoadFloat32x8Slice(bb[:])).StoreSlice(ba[:])
			copy(out[n:], ba[:])
		}
		return true
	}
	return false
}

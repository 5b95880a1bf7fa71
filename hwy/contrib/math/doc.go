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

// Package math provides elementary functions in float32 and float64 with a
// published maximum ULP error per function, realized on several backends.
//
// # Scalar Entry Points
//
// SinF64, CosF64, TanF64, AsinF64, AcosF64, AtanF64, Atan2F64, ExpF64,
// LnF64, PowF64, SqrtF64, CbrtF64, HypotF64, FloorF64 and CeilF64, plus
// their F32 twins. Each accepts any bit pattern and never panics; domain
// errors return NaN, overflow returns +Inf and underflow returns 0.
//
// # Backends
//
// A Backend is picked once at package init from hwy.CurrentLevel, in the
// order AVX2, SSE4.1 or NEON, scalar. A scalar argument is broadcast into a
// vector of the backend's width and lane 0 is returned, so every backend
// evaluates the same expressions:
//   - scalar: plain Go (sinScalar and friends)
//   - sse4, neon: the generic lane kernels Sin[T] ... Ceil[T] over hwy.Vec
//     at 16 bytes
//   - avx2: the archsimd kernels (Sin_AVX2_F64x4, Sin_AVX2_F32x8, ...) when
//     built with GOEXPERIMENT=simd, otherwise the lane kernels at 32 bytes
//
// HWY_NO_SIMD and HWY_MAX_LEVEL cap the level before the choice is made.
// Backends lists everything that can run, for agreement testing.
//
// # Accuracy
//
// ULPBound reports each function's bound. Range reduction rounds quotients
// half away from zero (rintk), so results at exact ties of x·(1/π) may land
// one quadrant over from a round-to-even reduction; the bound covers both.
//
// # Example Usage
//
//	y := math.SinF64(-2.70752239) // -0.4205670692548423
//
//	out := make([]float32, len(in))
//	math.ExpSlice(in, out)
package math

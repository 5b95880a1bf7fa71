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
	cbrt64_tiny        = archsimd.BroadcastFloat64x4(consts64.cbrtTiny)
	cbrt64_tinyScale   = archsimd.BroadcastFloat64x4(consts64.cbrtTinyScale)
	cbrt64_tinyUnscale = archsimd.BroadcastFloat64x4(consts64.cbrtTinyUnscale)
	cbrt64_huge        = archsimd.BroadcastFloat64x4(consts64.cbrtHuge)
	cbrt64_hugeScale   = archsimd.BroadcastFloat64x4(consts64.cbrtHugeScale)
	cbrt64_hugeUnscale = archsimd.BroadcastFloat64x4(consts64.cbrtHugeUnscale)
	cbrt64_b1          = archsimd.BroadcastInt64x4(int64(consts64.cbrtB1))
	cbrt64_field       = archsimd.BroadcastInt64x4(cbrtSignMask)
	cbrt64_sign        = archsimd.BroadcastInt64x4(-1 << 63)
)

var (
	cbrt32_tiny        = archsimd.BroadcastFloat32x8(float32(consts32.cbrtTiny))
	cbrt32_tinyScale   = archsimd.BroadcastFloat32x8(float32(consts32.cbrtTinyScale))
	cbrt32_tinyUnscale = archsimd.BroadcastFloat32x8(float32(consts32.cbrtTinyUnscale))
	cbrt32_huge        = archsimd.BroadcastFloat32x8(float32(consts32.cbrtHuge))
	cbrt32_hugeScale   = archsimd.BroadcastFloat32x8(float32(consts32.cbrtHugeScale))
	cbrt32_hugeUnscale = archsimd.BroadcastFloat32x8(float32(consts32.cbrtHugeUnscale))
	cbrt32_b1          = archsimd.BroadcastInt32x8(int32(consts32.cbrtB1))
	cbrt32_field       = archsimd.BroadcastInt32x8(cbrtSignMask)
	cbrt32_sign        = archsimd.BroadcastInt32x8(-1 << 31)
	cbrt32_low16       = archsimd.BroadcastInt32x8(0xffff)
	cbrt32_twoTo16     = archsimd.BroadcastFloat32x8(65536)
)

func halley_AVX2_F64x4(t, a archsimd.Float64x4) archsimd.Float64x4 {
	t3 := t.Mul(t).Mul(t)
	return t.Mul(t3.Add(v64_two.Mul(a)).Div(v64_two.Mul(t3).Add(a)))
}

// Cbrt_AVX2_F64x4 computes the cube root of each lane.
func Cbrt_AVX2_F64x4(v archsimd.Float64x4) archsimd.Float64x4 {
	ad := hwy.Abs_AVX2_F64x4(v)
	tiny := ad.Less(cbrt64_tiny)
	huge := ad.Greater(cbrt64_huge)
	a := v.Mul(cbrt64_tinyScale).Merge(v, tiny)
	a = v.Mul(cbrt64_hugeScale).Merge(a, huge)
	scale := cbrt64_tinyUnscale.Merge(v64_one, tiny)
	scale = cbrt64_hugeUnscale.Merge(scale, huge)

	b := a.AsInt64x4()
	hx := divBy3_AVX2_I64x4(b.ShiftAllRight(32).And(cbrt64_field)).Add(cbrt64_b1)
	t := b.And(cbrt64_sign).Or(hx.ShiftAllLeft(32)).AsFloat64x4()
	for range consts64.cbrtHalley {
		t = halley_AVX2_F64x4(t, a)
	}
	t = dd.Upper_AVX2_F64x4(t)
	s := t.Mul(t)
	r := a.Div(s)
	w := t.Add(t)
	r = r.Sub(t).Div(w.Add(r))
	t = t.Add(t.Mul(r)).Mul(scale)

	special := v.Equal(v64_zero).Or(hwy.IsInf_AVX2_F64x4(v)).Or(hwy.IsNaN_AVX2_F64x4(v))
	return v.Merge(t, special)
}

func halley_AVX2_F32x8(t, a archsimd.Float32x8) archsimd.Float32x8 {
	t3 := t.Mul(t).Mul(t)
	return t.Mul(t3.Add(v32_two.Mul(a)).Div(v32_two.Mul(t3).Add(a)))
}

// Cbrt_AVX2_F32x8 computes the cube root of each lane.
func Cbrt_AVX2_F32x8(v archsimd.Float32x8) archsimd.Float32x8 {
	ad := hwy.Abs_AVX2_F32x8(v)
	tiny := ad.Less(cbrt32_tiny)
	huge := ad.Greater(cbrt32_huge)
	a := v.Mul(cbrt32_tinyScale).Merge(v, tiny)
	a = v.Mul(cbrt32_hugeScale).Merge(a, huge)
	scale := cbrt32_tinyUnscale.Merge(v32_one, tiny)
	scale = cbrt32_hugeUnscale.Merge(scale, huge)

	b := a.AsInt32x8()
	hx := divBy3_AVX2_I32x8(b.And(cbrt32_field)).Add(cbrt32_b1)
	t := b.And(cbrt32_sign).Or(hx).AsFloat32x8()
	for range consts32.cbrtHalley {
		t = halley_AVX2_F32x8(t, a)
	}
	t = dd.Upper_AVX2_F32x8(t)
	s := t.Mul(t)
	r := a.Div(s)
	w := t.Add(t)
	r = r.Sub(t).Div(w.Add(r))
	t = t.Add(t.Mul(r)).Mul(scale)

	special := v.Equal(v32_zero).Or(hwy.IsInf_AVX2_F32x8(v)).Or(hwy.IsNaN_AVX2_F32x8(v))
	return v.Merge(t, special)
}

// divBy3_AVX2_I64x4 is n/3 for 0 <= n < 2^31. The quotient is exact in
// float64 since n has at most 31 significant bits.
func divBy3_AVX2_I64x4(n archsimd.Int64x4) archsimd.Int64x4 {
	return hwy.FloatToInt_AVX2_F64x4(hwy.IntToFloat_AVX2_I64x4(n).Div(v64_three).Floor())
}

// divBy3_AVX2_I32x8 is n/3 for 0 <= n < 2^31. float32 holds 24 bits, so the
// division runs in two 16-bit halves: n = hi·2^16 + lo and
// n/3 = (hi/3)·2^16 + ((hi mod 3)·2^16 + lo)/3.
func divBy3_AVX2_I32x8(n archsimd.Int32x8) archsimd.Int32x8 {
	hi := n.ShiftAllRight(16).ConvertToFloat32()
	lo := n.And(cbrt32_low16).ConvertToFloat32()
	qa := hi.Div(v32_three).Floor()
	ra := hi.Sub(qa.Mul(v32_three))
	qb := ra.MulAdd(cbrt32_twoTo16, lo).Div(v32_three).Floor()
	return qa.ConvertToInt32().ShiftAllLeft(16).Add(qb.ConvertToInt32())
}

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

package hwy

import "math"

// This file provides the portable implementations of all lane operations.
// Every product is rounded before it is added to anything (T(a*b)), so the
// compiler cannot contract a Mul followed by an Add into a fused operation;
// fusion only happens where FMA/MulAdd asks for it.

// LoadN creates a vector of n lanes from the start of src. Lanes past
// len(src) are zero. n is clamped to MaxVecLanes.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	n = clampLanes(n)
	var v Vec[T]
	v.n = n
	copy(v.data[:n], src)
	return v
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// SetN creates an n-lane vector with all lanes set to value. This is how a
// single scalar is wrapped into a padded vector for a specific backend width.
func SetN[T Lanes](value T, n int) Vec[T] {
	n = clampLanes(n)
	var v Vec[T]
	v.n = n
	for i := range n {
		v.data[i] = value
	}
	return v
}

func clampLanes(n int) int {
	return max(0, min(n, MaxVecLanes))
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication. The product is rounded.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = T(a.data[i] * b.data[i])
	}
	return r
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// Neg negates each lane. For floats this flips the sign bit, so Neg(0) is -0.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = -v.data[i]
	}
	return r
}

// Abs computes the absolute value of each lane. For floats the sign bit is
// cleared, so NaN payloads survive and Abs(-0) is +0.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = absHelper(v.data[i])
	}
	return r
}

func absHelper[T Lanes](a T) T {
	switch x := any(a).(type) {
	case float32:
		return any(math.Float32frombits(math.Float32bits(x) &^ (1 << 31))).(T)
	case float64:
		return any(math.Abs(x)).(T)
	}
	if a < 0 {
		return -a
	}
	return a
}

// Sqrt computes the correctly rounded square root of each lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = T(math.Sqrt(float64(v.data[i])))
	}
	return r
}

// FMA performs fused multiply-add: a*b + c with a single rounding for
// float64. float32 lanes are computed in float64 and rounded back.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n, c.n)}
	for i := range r.n {
		r.data[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return r
}

// MulAdd performs fused multiply-add: a*b + c.
// This is an alias for FMA with the common a.MulAdd(b, c) semantics.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.set(i, a.data[i] == b.data[i])
	}
	return m
}

// NotEqual performs element-wise inequality comparison. NaN lanes compare
// not-equal to everything, themselves included.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.set(i, a.data[i] != b.data[i])
	}
	return m
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.set(i, a.data[i] < b.data[i])
	}
	return m
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.set(i, a.data[i] > b.data[i])
	}
	return m
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.set(i, a.data[i] >= b.data[i])
	}
	return m
}

// IsNaN returns a mask of the lanes holding NaN, detected by self-inequality.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return NotEqual(v, v)
}

// IsInf returns a mask indicating which lanes contain infinity.
// The sign parameter: 0 = either, > 0 = +Inf only, < 0 = -Inf only.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range m.n {
		m.set(i, math.IsInf(float64(v.data[i]), sign))
	}
	return m
}

// IsFinite returns a mask indicating which lanes contain finite values.
// A value is finite if it is neither NaN nor infinity.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range m.n {
		f := float64(v.data[i])
		m.set(i, !math.IsNaN(f) && !math.IsInf(f, 0))
	}
	return m
}

// IfThenElse performs conditional selection: a where mask is set, b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, a.n, b.n)}
	for i := range r.n {
		if mask.bits&(1<<i) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// IfThenZeroElse returns zero where mask is true, b otherwise.
// Equivalent to IfThenElse(mask, SetN(0, n), b) without the splat.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, b.n)}
	for i := range r.n {
		if mask.bits&(1<<i) == 0 {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] & b.data[i]
	}
	return r
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] | b.data[i]
	}
	return r
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] ^ b.data[i]
	}
	return r
}

// AndNot computes (~a) & b, matching the x86 ANDN operand order.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = b.data[i] &^ a.data[i]
	}
	return r
}

// ShiftLeft shifts each lane left by bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = v.data[i] << bits
	}
	return r
}

// ShiftRight shifts each lane right by bits. Signed lanes shift
// arithmetically, unsigned lanes logically.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = v.data[i] >> bits
	}
	return r
}

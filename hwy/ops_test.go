package hwy

import (
	"math"
	"testing"
)

func lanes64(v Vec[float64]) []float64 {
	out := make([]float64, v.NumLanes())
	for i := range out {
		out[i] = v.GetLane(i)
	}
	return out
}

func maskBits[T Lanes](m Mask[T]) uint64 { return m.bits }

func TestFloatOps(t *testing.T) {
	a := LoadN([]float64{10, -4, 2.5, 9}, 4)
	b := LoadN([]float64{5, 2, -0.5, 3}, 4)
	tests := []struct {
		name string
		got  Vec[float64]
		want []float64
	}{
		{"Add", Add(a, b), []float64{15, -2, 2, 12}},
		{"Sub", Sub(a, b), []float64{5, -6, 3, 6}},
		{"Mul", Mul(a, b), []float64{50, -8, -1.25, 27}},
		{"Div", Div(a, b), []float64{2, -2, -5, 3}},
		{"Neg", Neg(a), []float64{-10, 4, -2.5, -9}},
		{"Abs", Abs(a), []float64{10, 4, 2.5, 9}},
		{"Sqrt", Sqrt(Abs(Mul(a, a))), []float64{10, 4, 2.5, 9}},
		{"MulAdd", MulAdd(a, b, SetN(1.0, 4)), []float64{51, -7, -0.25, 28}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lanes64(tt.got)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lanes, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i] != w {
					t.Errorf("lane %d: got %v, want %v", i, got[i], w)
				}
			}
		})
	}
}

func TestComparisons(t *testing.T) {
	nan := math.NaN()
	a := LoadN([]float64{1, 5, 3, nan}, 4)
	b := LoadN([]float64{1, 4, 4, nan}, 4)
	tests := []struct {
		name string
		got  Mask[float64]
		want uint64
	}{
		{"Equal", Equal(a, b), 0b0001},
		{"NotEqual", NotEqual(a, b), 0b1110},
		{"LessThan", LessThan(a, b), 0b0100},
		{"GreaterThan", GreaterThan(a, b), 0b0010},
		{"GreaterEqual", GreaterEqual(a, b), 0b0011},
		{"IsNaN", IsNaN(a), 0b1000},
	}
	for _, tt := range tests {
		if got := maskBits(tt.got); got != tt.want {
			t.Errorf("%s: got %04b, want %04b", tt.name, got, tt.want)
		}
	}
}

func TestSelect(t *testing.T) {
	m := Equal(LoadN([]float64{1, 2, 3, 4}, 4), LoadN([]float64{1, 0, 3, 0}, 4))
	a, b := SetN(100.0, 4), SetN(200.0, 4)
	if got := lanes64(IfThenElse(m, a, b)); got[0] != 100 || got[1] != 200 || got[2] != 100 || got[3] != 200 {
		t.Errorf("IfThenElse: got %v", got)
	}
	if got := lanes64(IfThenZeroElse(m, b)); got[0] != 0 || got[1] != 200 || got[2] != 0 || got[3] != 200 {
		t.Errorf("IfThenZeroElse: got %v", got)
	}
}

func TestIntegerOps(t *testing.T) {
	a := LoadN([]uint32{0xFF00FF00, 0xAAAAAAAA, 0x12345678, 16}, 4)
	b := LoadN([]uint32{0x00FF00FF, 0xFFFFFFFF, 0x0F0F0F0F, 0xFFFFFFFF}, 4)
	tests := []struct {
		name string
		got  Vec[uint32]
		want []uint32
	}{
		{"And", And(a, b), []uint32{0, 0xAAAAAAAA, 0x02040608, 16}},
		{"Or", Or(a, b), []uint32{0xFFFFFFFF, 0xFFFFFFFF, 0x1F3F5F7F, 0xFFFFFFFF}},
		{"Xor", Xor(a, b), []uint32{0xFFFFFFFF, 0x55555555, 0x1D3B5977, 0xFFFFFFEF}},
		{"AndNot", AndNot(a, b), []uint32{0x00FF00FF, 0x55555555, 0x0D0B0907, 0xFFFFFFEF}},
		{"ShiftLeft", ShiftLeft(a, 4), []uint32{0xF00FF000, 0xAAAAAAA0, 0x23456780, 256}},
		{"ShiftRight", ShiftRight(a, 4), []uint32{0x0FF00FF0, 0x0AAAAAAA, 0x01234567, 1}},
	}
	for _, tt := range tests {
		for i, w := range tt.want {
			if got := tt.got.GetLane(i); got != w {
				t.Errorf("%s: lane %d: got 0x%08X, want 0x%08X", tt.name, i, got, w)
			}
		}
	}

	// Signed lanes shift arithmetically.
	s := ShiftRight(LoadN([]int32{-16, -8, 8, 4}, 4), 2)
	for i, w := range []int32{-4, -2, 2, 1} {
		if got := s.GetLane(i); got != w {
			t.Errorf("ShiftRight signed: lane %d: got %d, want %d", i, got, w)
		}
	}
}

func TestProcessWithTailN(t *testing.T) {
	data := make([]float32, 100)
	for i := range data {
		data[i] = float32(i)
	}
	output := make([]float32, len(data))
	lanes := LanesFor[float32](CurrentWidth())

	fullVectors := 0
	ProcessWithTailN(len(data), lanes,
		func(offset int) {
			fullVectors++
			v := LoadN(data[offset:], lanes)
			Store(Add(v, v), output[offset:])
		},
		func(offset, count int) {
			v := LoadN(data[offset:offset+count], lanes)
			Store(Add(v, v), output[offset:offset+count])
		},
	)

	if fullVectors != len(data)/lanes {
		t.Errorf("ProcessWithTailN: %d full vectors, want %d", fullVectors, len(data)/lanes)
	}
	for i, val := range output {
		if want := float32(i) * 2; val != want {
			t.Errorf("ProcessWithTailN: output[%d]: got %v, want %v", i, val, want)
		}
	}
}

func TestLoadNPadsWithZero(t *testing.T) {
	v := LoadN([]float64{1, 2, 3}, 4)
	if v.NumLanes() != 4 {
		t.Fatalf("LoadN: got %d lanes, want 4", v.NumLanes())
	}
	want := []float64{1, 2, 3, 0}
	for i, w := range want {
		if got := v.GetLane(i); got != w {
			t.Errorf("LoadN: lane %d: got %v, want %v", i, got, w)
		}
	}
	if got := LoadN([]float64{1}, 100).NumLanes(); got != MaxVecLanes {
		t.Errorf("LoadN clamps to MaxVecLanes: got %d", got)
	}
}

func TestSetN(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8} {
		v := SetN(2.5, n)
		if v.NumLanes() != n {
			t.Errorf("SetN(%d): got %d lanes", n, v.NumLanes())
		}
		for i := range n {
			if v.GetLane(i) != 2.5 {
				t.Errorf("SetN(%d): lane %d: got %v", n, i, v.GetLane(i))
			}
		}
	}
}

func TestBinaryOpsUseCommonLanes(t *testing.T) {
	a := SetN[float32](1, 8)
	b := SetN[float32](2, 4)
	if got := Add(a, b).NumLanes(); got != 4 {
		t.Errorf("Add of 8 and 4 lanes: got %d lanes, want 4", got)
	}
	if got := MulAdd(a, b, SetN[float32](0, 2)).NumLanes(); got != 2 {
		t.Errorf("MulAdd: got %d lanes, want 2", got)
	}
}

func TestAbsClearsSignBit(t *testing.T) {
	v := Abs(LoadN([]float64{math.Copysign(0, -1), math.Inf(-1), -3}, 3))
	if math.Signbit(v.GetLane(0)) {
		t.Error("Abs(-0) kept the sign")
	}
	if !math.IsInf(v.GetLane(1), 1) {
		t.Errorf("Abs(-Inf): got %v", v.GetLane(1))
	}
	if v.GetLane(2) != 3 {
		t.Errorf("Abs(-3): got %v", v.GetLane(2))
	}
	i := Abs(LoadN([]int32{-7, 7}, 2))
	if i.GetLane(0) != 7 || i.GetLane(1) != 7 {
		t.Errorf("Abs int32: got %d, %d", i.GetLane(0), i.GetLane(1))
	}
}

func TestFMAIsFused(t *testing.T) {
	// 1+2^-30 squared needs 61 bits; only a fused operation recovers the tail.
	x := 1 + 0x1p-30
	p := Mul(SetN(x, 2), SetN(x, 2)).GetLane(0)
	tail := FMA(SetN(x, 2), SetN(x, 2), SetN(-p, 2)).GetLane(0)
	if tail != 0x1p-60 {
		t.Errorf("FMA tail: got %g, want 2^-60", tail)
	}
}

func TestInfAndFinite(t *testing.T) {
	v := LoadN([]float64{1, math.NaN(), math.Inf(1), math.Inf(-1)}, 4)
	tests := []struct {
		name string
		got  Mask[float64]
		want uint64
	}{
		{"IsInf(+)", IsInf(v, 1), 0b0100},
		{"IsInf(-)", IsInf(v, -1), 0b1000},
		{"IsInf(any)", IsInf(v, 0), 0b1100},
		{"IsFinite", IsFinite(v), 0b0001},
	}
	for _, tt := range tests {
		if got := maskBits(tt.got); got != tt.want {
			t.Errorf("%s: got %04b, want %04b", tt.name, got, tt.want)
		}
	}
}

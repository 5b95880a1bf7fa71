package hwy

import (
	"math"
	"testing"
)

func TestPromoteToFloat64(t *testing.T) {
	in := LoadN([]float32{1.5, -2.25, 3.1415927, float32(math.Inf(-1))}, 4)
	got := PromoteToFloat64(in)
	if got.NumLanes() != 4 {
		t.Fatalf("got %d lanes, want 4", got.NumLanes())
	}
	for i := range 4 {
		if want := float64(in.GetLane(i)); got.GetLane(i) != want {
			t.Errorf("lane %d: got %v, want %v", i, got.GetLane(i), want)
		}
	}
}

func TestDemoteFromFloat64Rounds(t *testing.T) {
	tests := []struct {
		in   float64
		want float32
	}{
		{1.0, 1.0},
		{math.Pi, float32(math.Pi)},
		{1e39, float32(math.Inf(1))},
		{-1e-50, float32(math.Copysign(0, -1))},
	}
	for _, tt := range tests {
		got := DemoteFromFloat64[float32](SetN(tt.in, 2)).GetLane(0)
		if math.Float32bits(got) != math.Float32bits(tt.want) {
			t.Errorf("DemoteFromFloat64(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDemoteFromFloat64Identity(t *testing.T) {
	in := LoadN([]float64{0.1, -0.2, 1e300, math.SmallestNonzeroFloat64}, 4)
	got := DemoteFromFloat64[float64](PromoteToFloat64(in))
	for i := range in.NumLanes() {
		if got.GetLane(i) != in.GetLane(i) {
			t.Errorf("lane %d: got %v, want %v", i, got.GetLane(i), in.GetLane(i))
		}
	}
}

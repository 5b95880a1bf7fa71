package hwy

import "testing"

func TestMaskLogic(t *testing.T) {
	a := Mask[int32]{bits: 0b0011, n: 4}
	b := Mask[int32]{bits: 0b0101, n: 4}
	tests := []struct {
		name string
		got  Mask[int32]
		want uint64
	}{
		{"and", MaskAnd(a, b), 0b0001},
		{"or", MaskOr(a, b), 0b0111},
		{"not", MaskNot(a), 0b1100},
		{"narrower", MaskOr(a, Mask[int32]{bits: 0b1111, n: 2}), 0b0011},
	}
	for _, tt := range tests {
		if got := maskBits(tt.got); got != tt.want {
			t.Errorf("%s: got %04b, want %04b", tt.name, got, tt.want)
		}
	}
}

func TestRebindMaskSelectsFloats(t *testing.T) {
	bits := SetN[uint64](1<<63, 2)
	m := RebindMask[float64](Equal(bits, SetN[uint64](1<<63, 2)))
	got := IfThenElse(m, SetN(1.0, 2), SetN(2.0, 2))
	for i := range 2 {
		if got.GetLane(i) != 1 {
			t.Errorf("lane %d: got %v, want 1", i, got.GetLane(i))
		}
	}
}

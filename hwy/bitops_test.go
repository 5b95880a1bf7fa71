package hwy

import (
	"math"
	"testing"
)

func TestFloatBitsRoundTrip(t *testing.T) {
	for _, x := range []float64{0, math.Copysign(0, -1), 1, -2.5, math.Inf(1), math.SmallestNonzeroFloat64, math.MaxFloat64} {
		if got := FloatFromBits[float64](FloatBits(x)); math.Float64bits(got) != math.Float64bits(x) {
			t.Errorf("float64 %v: round trip gave %v", x, got)
		}
	}
	for _, x := range []float32{0, 1, -2.5, math.MaxFloat32, math.SmallestNonzeroFloat32} {
		b := FloatBits(x)
		if b>>32 != 0 {
			t.Errorf("float32 %v: bits 0x%x not zero-extended", x, b)
		}
		if got := FloatFromBits[float32](b); got != x {
			t.Errorf("float32 %v: round trip gave %v", x, got)
		}
	}
}

func TestBitsOfPreservesNaNPayload(t *testing.T) {
	const quiet = 0x7ff8000000000123
	v := FromBits[float64](SetN[uint64](quiet, 2))
	if got := BitsOf(v).data[0]; got != quiet {
		t.Errorf("got 0x%x, want 0x%x", got, uint64(quiet))
	}
	if v.NumLanes() != 2 {
		t.Errorf("lanes: got %d, want 2", v.NumLanes())
	}
}

func TestFormatOf(t *testing.T) {
	if f := FormatOf[float64](); f.MantissaBits != 52 || f.ExponentBias != 1023 {
		t.Errorf("float64 format: %+v", f)
	}
	if f := FormatOf[float32](); f.MantissaBits != 23 || f.ExponentBias != 127 || f.SignMask != 1<<31 {
		t.Errorf("float32 format: %+v", f)
	}
}

func TestCopySign(t *testing.T) {
	negZero := math.Copysign(0, -1)
	mag := LoadN([]float64{1.5, 2, math.Inf(1), 0}, 4)
	sign := LoadN([]float64{-1, 3, negZero, negZero}, 4)
	got := CopySign(mag, sign)
	want := []float64{-1.5, 2, math.Inf(-1), negZero}
	for i := 0; i < got.NumLanes(); i++ {
		if math.Float64bits(got.data[i]) != math.Float64bits(want[i]) {
			t.Errorf("lane %d: got %v, want %v", i, got.data[i], want[i])
		}
	}
}

func TestCopySignFloat32UsesAllLanes(t *testing.T) {
	mag := SetN[float32](3, 4)
	got := CopySign(mag, SetN[float32](-1, 4))
	if got.NumLanes() != mag.NumLanes() {
		t.Fatalf("lanes: got %d, want %d", got.NumLanes(), mag.NumLanes())
	}
	for i := 0; i < got.NumLanes(); i++ {
		if got.data[i] != -3 {
			t.Errorf("lane %d: got %v, want -3", i, got.data[i])
		}
	}
}

func TestMulSign(t *testing.T) {
	x := LoadN([]float64{-2, -2, 3, 3}, 4)
	y := LoadN([]float64{1, -1, math.Copysign(0, -1), 0}, 4)
	got := MulSign(x, y)
	want := []float64{-2, 2, -3, 3}
	for i := 0; i < got.NumLanes(); i++ {
		if got.data[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got.data[i], want[i])
		}
	}
}

func TestSignBit(t *testing.T) {
	v := LoadN([]float32{-1, 1, float32(math.Copysign(0, -1)), 0}, 4)
	m := SignBit(v)
	if got := maskBits(m); got != 0b0101 {
		t.Errorf("got %04b, want 0101", got)
	}
}

func TestRintKRoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.5, 3},
		{-2.5, -3},
		{0.5, 1},
		{1.4999, 1},
		{-0.4, 0},
		{7, 7},
	}
	for _, tt := range tests {
		if got := RintK(SetN(tt.in, 4)).data[0]; got != tt.want {
			t.Errorf("RintK(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got := RintK(SetN(float32(tt.in), 4)).data[0]; got != float32(tt.want) {
			t.Errorf("RintK(float32 %v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	// Ties differ from math.RoundToEven.
	if got := RintK(SetN(2.5, 4)).data[0]; got == math.RoundToEven(2.5) {
		t.Errorf("RintK(2.5) = %v rounds to even", got)
	}
}

func TestPow2I(t *testing.T) {
	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{10, 1024},
		{-1, 0.5},
		{-1022, 0x1p-1022},
		{1023, 0x1p1023},
	}
	for _, tt := range tests {
		if got := Pow2I(SetN(tt.q, 4)).data[0]; got != tt.want {
			t.Errorf("Pow2I(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}
	if got := Pow2I(SetN[float32](127, 4)).data[0]; got != 0x1p127 {
		t.Errorf("Pow2I(float32 127) = %v, want 2^127", got)
	}
	if got := Pow2I(SetN[float32](-126, 4)).data[0]; got != 0x1p-126 {
		t.Errorf("Pow2I(float32 -126) = %v, want 2^-126", got)
	}
}

func TestLdExp2K(t *testing.T) {
	tests := []struct {
		x, q, want float64
	}{
		{1, 1023, 0x1p1023},
		{1, -1074, math.SmallestNonzeroFloat64},
		{1.5, 4, 24},
		{1, 1500, math.Inf(1)},
		{-3, -2, -0.75},
	}
	for _, tt := range tests {
		if got := LdExp2K(SetN(tt.x, 4), SetN(tt.q, 4)).data[0]; got != tt.want {
			t.Errorf("LdExp2K(%v, %v) = %v, want %v", tt.x, tt.q, got, tt.want)
		}
	}
	if got := LdExp2K(SetN[float32](1, 4), SetN[float32](-149, 4)).data[0]; got != math.SmallestNonzeroFloat32 {
		t.Errorf("LdExp2K(float32 1, -149) = %v, want smallest subnormal", got)
	}
}

func TestILogB2K(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1, 0},
		{8, 3},
		{0.75, -1},
		{-1024, 10},
		{math.MaxFloat64, 1023},
	}
	for _, tt := range tests {
		if got := ILogB2K(SetN(tt.in, 4)).data[0]; got != tt.want {
			t.Errorf("ILogB2K(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := ILogB2K(SetN[float32](0.125, 4)).data[0]; got != -3 {
		t.Errorf("ILogB2K(float32 0.125) = %v, want -3", got)
	}
}

func TestLdExp3K(t *testing.T) {
	got := LdExp3K(LoadN([]float64{1.5, 1.5, -1, 3}, 4), LoadN([]float64{4, -1, 10, 0}, 4))
	want := []float64{24, 0.75, -1024, 3}
	for i := 0; i < got.NumLanes(); i++ {
		if got.data[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, got.data[i], want[i])
		}
	}
	if g := LdExp3K(SetN[float32](1, 4), SetN[float32](-3, 4)).data[0]; g != 0.125 {
		t.Errorf("float32: got %v, want 0.125", g)
	}
}

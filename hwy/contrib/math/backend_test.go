package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-emath/hwy"
)

func TestFuncNames(t *testing.T) {
	fs := Funcs()
	if len(fs) != int(numFuncs) {
		t.Fatalf("Funcs() has %d entries, want %d", len(fs), numFuncs)
	}
	for _, f := range fs {
		got, ok := FuncByName(f.String())
		if !ok || got != f {
			t.Errorf("FuncByName(%q) = %v, %v", f.String(), got, ok)
		}
	}
	if f, ok := FuncByName(" LOG "); !ok || f != FuncLn {
		t.Errorf("FuncByName(log) = %v, %v, want ln", f, ok)
	}
	if _, ok := FuncByName("sinh"); ok {
		t.Error("FuncByName(sinh) succeeded")
	}
	if s := Func(42).String(); s != "Func(42)" {
		t.Errorf("Func(42).String() = %q", s)
	}
	for _, f := range fs {
		want := f == FuncAtan2 || f == FuncPow || f == FuncHypot
		if f.Binary() != want {
			t.Errorf("%v.Binary() = %v", f, f.Binary())
		}
	}
}

func TestKernelsComplete(t *testing.T) {
	for _, b := range Backends() {
		for _, f := range Funcs() {
			if f.Binary() {
				if b.Kernels64.Binary(f) == nil || b.Kernels32.Binary(f) == nil {
					t.Errorf("%s: no binary kernel for %v", b.Name, f)
				}
				if b.Kernels64.Unary(f) != nil {
					t.Errorf("%s: unary kernel for binary %v", b.Name, f)
				}
				continue
			}
			if b.Kernels64.Unary(f) == nil || b.Kernels32.Unary(f) == nil {
				t.Errorf("%s: no unary kernel for %v", b.Name, f)
			}
		}
	}
}

func TestBackends(t *testing.T) {
	bs := Backends()
	if len(bs) == 0 {
		t.Fatal("no backends")
	}
	if last := bs[len(bs)-1]; last.Level != hwy.DispatchScalar || last.Name != "scalar" {
		t.Errorf("last backend = %s, want scalar", last.Name)
	}
	if cur := CurrentBackend(); cur.Name != bs[0].Name || cur.Level != bs[0].Level {
		t.Errorf("CurrentBackend() = %s, want the first of Backends() (%s)", cur.Name, bs[0].Name)
	}
	if cur := CurrentBackend(); hwy.CurrentLevel() != cur.Level && cur.Level != hwy.DispatchScalar {
		t.Errorf("CurrentBackend level %v, hwy level %v", cur.Level, hwy.CurrentLevel())
	}
	bs[0].Name = "mutated"
	if Backends()[0].Name == "mutated" {
		t.Error("Backends() exposes its internal slice")
	}
}

func TestAvailableBackends(t *testing.T) {
	tests := []struct {
		level hwy.DispatchLevel
		want  []hwy.DispatchLevel
	}{
		{hwy.DispatchScalar, []hwy.DispatchLevel{hwy.DispatchScalar}},
		{hwy.DispatchSSE4, []hwy.DispatchLevel{hwy.DispatchSSE4, hwy.DispatchScalar}},
		{hwy.DispatchAVX2, []hwy.DispatchLevel{hwy.DispatchAVX2, hwy.DispatchSSE4, hwy.DispatchScalar}},
		{hwy.DispatchNEON, []hwy.DispatchLevel{hwy.DispatchNEON, hwy.DispatchScalar}},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			bs := availableBackends(tt.level)
			if len(bs) != len(tt.want) {
				t.Fatalf("got %d backends, want %d", len(bs), len(tt.want))
			}
			for i, b := range bs {
				if b.Level != tt.want[i] {
					t.Errorf("backend %d: level %v, want %v", i, b.Level, tt.want[i])
				}
			}
		})
	}
}

// TestBackendAgreement checks every backend against the scalar kernels on a
// spread of ordinary arguments: the results must be within the sum of the
// two backends' bounds.
func TestBackendAgreement(t *testing.T) {
	bs := Backends()
	ref := bs[len(bs)-1]
	xs := []float64{-7.5, -2.70752239, -0.9, -0.3, 0.1, 0.45, 0.77, 1.5, 3, 42.25, 700.5}
	ulps := func(a, b float64) float64 {
		if a == b || (a != a && b != b) {
			return 0
		}
		return stdmath.Abs(a-b) / ulpOf(b)
	}
	for _, b := range bs[:len(bs)-1] {
		for _, f := range Funcs() {
			bound := 2 * ULPBound(f, 64)
			for _, x := range xs {
				var got, want float64
				if f.Binary() {
					y := 1.25
					if f == FuncPow {
						x = stdmath.Abs(x)
					}
					got, want = b.Kernels64.Binary(f)(x, y), ref.Kernels64.Binary(f)(x, y)
				} else {
					got, want = b.Kernels64.Unary(f)(x), ref.Kernels64.Unary(f)(x)
				}
				if d := ulps(got, want); d > bound {
					t.Errorf("%s %v(%v) = %v, scalar %v (%g ulp)", b.Name, f, x, got, want, d)
				}
			}
		}
	}
}

func ulpOf(x float64) float64 {
	x = stdmath.Abs(x)
	if x == 0 || stdmath.IsInf(x, 0) {
		return stdmath.SmallestNonzeroFloat64
	}
	return stdmath.Nextafter(x, posInf) - x
}

func TestULPBound(t *testing.T) {
	for _, f := range Funcs() {
		for _, p := range []int{32, 64} {
			b := ULPBound(f, p)
			switch f {
			case FuncFloor, FuncCeil:
				if b != 0 {
					t.Errorf("ULPBound(%v, %d) = %v, want 0", f, p, b)
				}
			default:
				if b < 0.5 || b > 4 {
					t.Errorf("ULPBound(%v, %d) = %v out of range", f, p, b)
				}
			}
		}
	}
	if ULPBound(FuncSin, 16) != 0 || ULPBound(Func(99), 64) != 0 {
		t.Error("unknown precision or function has a bound")
	}
}

func TestDefaultTable(t *testing.T) {
	tab, ok := DefaultTable(FuncExp, 64)
	if !ok || len(tab) == 0 {
		t.Fatal("no exp table")
	}
	tab[0] = 12345
	again, _ := DefaultTable(FuncExp, 64)
	if again[0] == 12345 {
		t.Error("DefaultTable returned the shared table")
	}
	if _, ok := DefaultTable(FuncSin, 64); ok {
		t.Error("sin table should not be exposed")
	}

	for _, x := range []float64{-20, -1, 0.5, 3, 200} {
		if got, want := ExpWithTable64(x, again), expScalar(x); got != want {
			t.Errorf("ExpWithTable64(%v) = %v, want %v", x, got, want)
		}
	}
	asin32, ok := DefaultTable(FuncAsin, 32)
	if !ok {
		t.Fatal("no asin table")
	}
	for _, x := range []float32{-0.9, -0.2, 0, 0.3, 0.75} {
		if got, want := AsinWithTable32(x, asin32), asinScalar(x); !same(got, want) {
			t.Errorf("AsinWithTable32(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestEntryPoints(t *testing.T) {
	k64, k32 := CurrentBackend().Kernels64, CurrentBackend().Kernels32
	unary64 := map[Func]func(float64) float64{
		FuncSin: SinF64, FuncCos: CosF64, FuncTan: TanF64,
		FuncAsin: AsinF64, FuncAcos: AcosF64, FuncAtan: AtanF64,
		FuncExp: ExpF64, FuncLn: LnF64, FuncSqrt: SqrtF64, FuncCbrt: CbrtF64,
		FuncFloor: FloorF64, FuncCeil: CeilF64,
	}
	unary32 := map[Func]func(float32) float32{
		FuncSin: SinF32, FuncCos: CosF32, FuncTan: TanF32,
		FuncAsin: AsinF32, FuncAcos: AcosF32, FuncAtan: AtanF32,
		FuncExp: ExpF32, FuncLn: LnF32, FuncSqrt: SqrtF32, FuncCbrt: CbrtF32,
		FuncFloor: FloorF32, FuncCeil: CeilF32,
	}
	for f, fn := range unary64 {
		for _, x := range []float64{-0.75, 0.3, 2.5} {
			if got, want := fn(x), k64.Unary(f)(x); !same(got, want) {
				t.Errorf("%v(%v) = %v, backend %v", f, x, got, want)
			}
			if got, want := unary32[f](float32(x)), k32.Unary(f)(float32(x)); !same(got, want) {
				t.Errorf("%v32(%v) = %v, backend %v", f, x, got, want)
			}
		}
	}
	if Atan2F64(1, 2) != k64.Atan2(1, 2) || PowF64(1.5, 2.5) != k64.Pow(1.5, 2.5) || HypotF64(3, 4) != k64.Hypot(3, 4) {
		t.Error("binary float64 entry points disagree with the backend")
	}
	if Atan2F32(1, 2) != k32.Atan2(1, 2) || PowF32(1.5, 2.5) != k32.Pow(1.5, 2.5) || HypotF32(3, 4) != k32.Hypot(3, 4) {
		t.Error("binary float32 entry points disagree with the backend")
	}
}

func TestHypotN(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"3-4-12", Hypot3F64(3, 4, 12), 13},
		{"2-3-6", Hypot3F64(-2, 3, -6), 7},
		{"1-2-2-4", Hypot4F64(1, 2, 2, 4), 5},
		{"zeros", Hypot4F64(0, 0, 0, 0), 0},
		{"inf wins", Hypot3F64(qnan, 1, negInf), posInf},
		{"nan", Hypot4F64(1, qnan, 2, 3), qnan},
		{"huge", Hypot3F64(1e300, 1e300, 0), 1e300 * stdmath.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			switch {
			case stdmath.IsNaN(tt.want):
				if !stdmath.IsNaN(tt.got) {
					t.Errorf("got %v, want NaN", tt.got)
				}
			case tt.got != tt.want && stdmath.Abs(tt.got-tt.want) > 2*ulpOf(tt.want):
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
	if got := Hypot3F32(3, 4, 12); stdmath.Abs(float64(got)-13) > 2e-6 {
		t.Errorf("Hypot3F32 = %v, want 13", got)
	}
	if got := Hypot4F32(1, 2, 2, 4); stdmath.Abs(float64(got)-5) > 1e-6 {
		t.Errorf("Hypot4F32 = %v, want 5", got)
	}
}

func TestMinMaxSign(t *testing.T) {
	if FmaxF64(1, qnan) != 1 || FminF64(1, qnan) != 1 {
		t.Error("NaN second argument should yield the first")
	}
	if FmaxF64(qnan, 1) != 1 {
		t.Error("fmax(NaN, 1) should yield 1")
	}
	if FmaxF64(-3, 2) != 2 || FminF64(-3, 2) != -3 {
		t.Error("ordinary fmax/fmin")
	}
	if FmaxF32(2, 5) != 5 || FminF32(2, 5) != 2 {
		t.Error("float32 fmax/fmin")
	}
	if AbsF64(negZero) != 0 || signbit(AbsF64(negZero)) || AbsF32(-2.5) != 2.5 {
		t.Error("abs")
	}
	if CopySignF64(3, negZero) != -3 || CopySignF32(-3, 1) != 3 || !signbit(CopySignF64(0, -1)) {
		t.Error("copysign")
	}
	if !stdmath.IsNaN(AbsF64(qnan)) {
		t.Error("abs(NaN) is not NaN")
	}

	v := Fmax(hwy.SetN(1.0, 2), hwy.SetN(qnan, 2))
	w := Fmin(hwy.SetN(4.0, 2), hwy.SetN(-1.0, 2))
	if v.GetLane(1) != 1 || w.GetLane(0) != -1 {
		t.Errorf("lane fmax/fmin = %v, %v", v.GetLane(1), w.GetLane(0))
	}
}

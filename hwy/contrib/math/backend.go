package math

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-emath/hwy"
)

// Func names one of the dispatched elementary functions.
type Func int

const (
	FuncSin Func = iota
	FuncCos
	FuncTan
	FuncAsin
	FuncAcos
	FuncAtan
	FuncAtan2
	FuncExp
	FuncLn
	FuncPow
	FuncSqrt
	FuncCbrt
	FuncHypot
	FuncFloor
	FuncCeil
	numFuncs
)

var funcNames = [numFuncs]string{
	"sin", "cos", "tan", "asin", "acos", "atan", "atan2",
	"exp", "ln", "pow", "sqrt", "cbrt", "hypot", "floor", "ceil",
}

func (f Func) String() string {
	if f < 0 || f >= numFuncs {
		return fmt.Sprintf("Func(%d)", int(f))
	}
	return funcNames[f]
}

// Binary reports whether f takes two arguments.
func (f Func) Binary() bool {
	return f == FuncAtan2 || f == FuncPow || f == FuncHypot
}

// Funcs returns every Func in declaration order.
func Funcs() []Func {
	fs := make([]Func, numFuncs)
	for i := range fs {
		fs[i] = Func(i)
	}
	return fs
}

// FuncByName looks up a function by the name String prints. Matching is
// case-insensitive and accepts "log" for ln.
func FuncByName(name string) (Func, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "log" {
		return FuncLn, true
	}
	for i, n := range funcNames {
		if n == name {
			return Func(i), true
		}
	}
	return 0, false
}

// Kernels is one backend's set of scalar entry points for one precision.
type Kernels[T hwy.Floats] struct {
	Sin, Cos, Tan     func(T) T
	Asin, Acos, Atan  func(T) T
	Exp, Ln           func(T) T
	Sqrt, Cbrt        func(T) T
	Floor, Ceil       func(T) T
	Atan2, Pow, Hypot func(T, T) T
}

// Unary returns the kernel for a one-argument function, or nil.
func (k *Kernels[T]) Unary(f Func) func(T) T {
	if p := k.unarySlot(f); p != nil {
		return *p
	}
	return nil
}

// Binary returns the kernel for a two-argument function, or nil.
func (k *Kernels[T]) Binary(f Func) func(T, T) T {
	if p := k.binarySlot(f); p != nil {
		return *p
	}
	return nil
}

func (k *Kernels[T]) unarySlot(f Func) *func(T) T {
	switch f {
	case FuncSin:
		return &k.Sin
	case FuncCos:
		return &k.Cos
	case FuncTan:
		return &k.Tan
	case FuncAsin:
		return &k.Asin
	case FuncAcos:
		return &k.Acos
	case FuncAtan:
		return &k.Atan
	case FuncExp:
		return &k.Exp
	case FuncLn:
		return &k.Ln
	case FuncSqrt:
		return &k.Sqrt
	case FuncCbrt:
		return &k.Cbrt
	case FuncFloor:
		return &k.Floor
	case FuncCeil:
		return &k.Ceil
	}
	return nil
}

func (k *Kernels[T]) binarySlot(f Func) *func(T, T) T {
	switch f {
	case FuncAtan2:
		return &k.Atan2
	case FuncPow:
		return &k.Pow
	case FuncHypot:
		return &k.Hypot
	}
	return nil
}

// Backend is one realization of every function at both precisions.
type Backend struct {
	Level     hwy.DispatchLevel
	Name      string
	Kernels64 Kernels[float64]
	Kernels32 Kernels[float32]
}

func scalarKernels[T hwy.Floats]() Kernels[T] {
	return Kernels[T]{
		Sin: sinScalar[T], Cos: cosScalar[T], Tan: tanScalar[T],
		Asin: asinScalar[T], Acos: acosScalar[T], Atan: atanScalar[T],
		Exp: expScalar[T], Ln: lnScalar[T],
		Sqrt: sqrtScalar[T], Cbrt: cbrtScalar[T],
		Floor: floorScalar[T], Ceil: ceilScalar[T],
		Atan2: atan2Scalar[T], Pow: powScalar[T], Hypot: hypotScalar[T],
	}
}

// lane1 broadcasts x into a vector of the given width, runs k and returns
// lane 0.
func lane1[T hwy.Floats](k func(hwy.Vec[T]) hwy.Vec[T], lanes int) func(T) T {
	return func(x T) T {
		return k(hwy.SetN(x, lanes)).GetLane(0)
	}
}

func lane2[T hwy.Floats](k func(a, b hwy.Vec[T]) hwy.Vec[T], lanes int) func(T, T) T {
	return func(x, y T) T {
		return k(hwy.SetN(x, lanes), hwy.SetN(y, lanes)).GetLane(0)
	}
}

func laneKernels[T hwy.Floats](width int) Kernels[T] {
	n := hwy.LanesFor[T](width)
	return Kernels[T]{
		Sin: lane1(Sin[T], n), Cos: lane1(Cos[T], n), Tan: lane1(Tan[T], n),
		Asin: lane1(Asin[T], n), Acos: lane1(Acos[T], n), Atan: lane1(Atan[T], n),
		Exp: lane1(Exp[T], n), Ln: lane1(Ln[T], n),
		Sqrt: lane1(Sqrt[T], n), Cbrt: lane1(Cbrt[T], n),
		Floor: lane1(Floor[T], n), Ceil: lane1(Ceil[T], n),
		Atan2: lane2(Atan2[T], n), Pow: lane2(Pow[T], n), Hypot: lane2(Hypot[T], n),
	}
}

func scalarBackend() Backend {
	return Backend{
		Level:     hwy.DispatchScalar,
		Name:      "scalar",
		Kernels64: scalarKernels[float64](),
		Kernels32: scalarKernels[float32](),
	}
}

// laneBackend realizes level with the portable lane kernels at the level's
// register width.
func laneBackend(level hwy.DispatchLevel) Backend {
	return Backend{
		Level:     level,
		Name:      level.String(),
		Kernels64: laneKernels[float64](level.Width()),
		Kernels32: laneKernels[float32](level.Width()),
	}
}

// availableBackends lists every backend that runs at level, best first.
func availableBackends(level hwy.DispatchLevel) []Backend {
	var bs []Backend
	for _, l := range []hwy.DispatchLevel{hwy.DispatchAVX2, hwy.DispatchSSE4, hwy.DispatchNEON} {
		if hwy.CapLevel(level, l) != l {
			continue
		}
		if l == hwy.DispatchAVX2 {
			if b, ok := archBackend(); ok {
				bs = append(bs, b)
				continue
			}
		}
		bs = append(bs, laneBackend(l))
	}
	return append(bs, scalarBackend())
}

var (
	backends []Backend
	current  *Backend
)

func init() {
	backends = availableBackends(hwy.CurrentLevel())
	current = &backends[0]
}

// CurrentBackend returns the backend every scalar entry point uses. It is
// chosen once at init from hwy.CurrentLevel.
func CurrentBackend() Backend { return *current }

// Backends returns every backend that can run on this machine, best first.
// The last one is always scalar.
func Backends() []Backend {
	return append([]Backend(nil), backends...)
}

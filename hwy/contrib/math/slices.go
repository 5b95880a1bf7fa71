package math

import "github.com/ajroetker/go-emath/hwy"

// The slice helpers apply a function to min(len(in), len(out)) elements at
// the current backend's width. in and out may be the same slice.

func mapUnary[T hwy.Floats](f Func, lane func(hwy.Vec[T]) hwy.Vec[T], scalar func(T) T, in, out []T) {
	n := min(len(in), len(out))
	in, out = in[:n], out[:n]
	if current.Level == hwy.DispatchScalar {
		for i, x := range in {
			out[i] = scalar(x)
		}
		return
	}
	if archMapUnary(f, in, out) {
		return
	}
	lanes := hwy.LanesFor[T](current.Level.Width())
	hwy.ProcessWithTailN(n, lanes,
		func(off int) {
			hwy.Store(lane(hwy.LoadN(in[off:], lanes)), out[off:])
		},
		func(off, count int) {
			hwy.Store(lane(hwy.LoadN(in[off:off+count], lanes)), out[off:off+count])
		},
	)
}

func mapBinary[T hwy.Floats](f Func, lane func(a, b hwy.Vec[T]) hwy.Vec[T], scalar func(a, b T) T, a, b, out []T) {
	n := min(len(a), len(b), len(out))
	a, b, out = a[:n], b[:n], out[:n]
	if current.Level == hwy.DispatchScalar {
		for i := range n {
			out[i] = scalar(a[i], b[i])
		}
		return
	}
	if archMapBinary(f, a, b, out) {
		return
	}
	lanes := hwy.LanesFor[T](current.Level.Width())
	hwy.ProcessWithTailN(n, lanes,
		func(off int) {
			hwy.Store(lane(hwy.LoadN(a[off:], lanes), hwy.LoadN(b[off:], lanes)), out[off:])
		},
		func(off, count int) {
			end := off + count
			hwy.Store(lane(hwy.LoadN(a[off:end], lanes), hwy.LoadN(b[off:end], lanes)), out[off:end])
		},
	)
}

func SinSlice[T hwy.Floats](in, out []T)   { mapUnary(FuncSin, Sin[T], sinScalar[T], in, out) }
func CosSlice[T hwy.Floats](in, out []T)   { mapUnary(FuncCos, Cos[T], cosScalar[T], in, out) }
func TanSlice[T hwy.Floats](in, out []T)   { mapUnary(FuncTan, Tan[T], tanScalar[T], in, out) }
func AsinSlice[T hwy.Floats](in, out []T)  { mapUnary(FuncAsin, Asin[T], asinScalar[T], in, out) }
func AcosSlice[T hwy.Floats](in, out []T)  { mapUnary(FuncAcos, Acos[T], acosScalar[T], in, out) }
func AtanSlice[T hwy.Floats](in, out []T)  { mapUnary(FuncAtan, Atan[T], atanScalar[T], in, out) }
func ExpSlice[T hwy.Floats](in, out []T)   { mapUnary(FuncExp, Exp[T], expScalar[T], in, out) }
func LnSlice[T hwy.Floats](in, out []T)    { mapUnary(FuncLn, Ln[T], lnScalar[T], in, out) }
func SqrtSlice[T hwy.Floats](in, out []T)  { mapUnary(FuncSqrt, Sqrt[T], sqrtScalar[T], in, out) }
func CbrtSlice[T hwy.Floats](in, out []T)  { mapUnary(FuncCbrt, Cbrt[T], cbrtScalar[T], in, out) }
func FloorSlice[T hwy.Floats](in, out []T) { mapUnary(FuncFloor, Floor[T], floorScalar[T], in, out) }
func CeilSlice[T hwy.Floats](in, out []T)  { mapUnary(FuncCeil, Ceil[T], ceilScalar[T], in, out) }

// Atan2Slice writes atan2(y[i], x[i]) to out[i].
func Atan2Slice[T hwy.Floats](y, x, out []T) { mapBinary(FuncAtan2, Atan2[T], atan2Scalar[T], y, x, out) }

// PowSlice writes x[i]^y[i] to out[i].
func PowSlice[T hwy.Floats](x, y, out []T) { mapBinary(FuncPow, Pow[T], powScalar[T], x, y, out) }

// HypotSlice writes hypot(x[i], y[i]) to out[i].
func HypotSlice[T hwy.Floats](x, y, out []T) { mapBinary(FuncHypot, Hypot[T], hypotScalar[T], x, y, out) }

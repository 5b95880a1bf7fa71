package math

import "github.com/ajroetker/go-emath/hwy"

// Fmax returns the larger of x and y per lane. A NaN in y yields x; a NaN
// only in x yields y.
func Fmax[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] { return fmaxVec(x, y) }

// Fmin returns the smaller of x and y per lane with the same NaN rule as
// Fmax.
func Fmin[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] { return fminVec(x, y) }

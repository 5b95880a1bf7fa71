package math

// Scalar entry points. Each call goes through the backend chosen at init;
// any bit pattern is accepted and domain errors return NaN.

// SinF64 returns sin(x).
func SinF64(x float64) float64 { return current.Kernels64.Sin(x) }

// CosF64 returns cos(x).
func CosF64(x float64) float64 { return current.Kernels64.Cos(x) }

// TanF64 returns tan(x).
func TanF64(x float64) float64 { return current.Kernels64.Tan(x) }

// AsinF64 returns asin(x), or NaN for |x| > 1.
func AsinF64(x float64) float64 { return current.Kernels64.Asin(x) }

// AcosF64 returns acos(x), or NaN for |x| > 1.
func AcosF64(x float64) float64 { return current.Kernels64.Acos(x) }

// AtanF64 returns atan(x).
func AtanF64(x float64) float64 { return current.Kernels64.Atan(x) }

// Atan2F64 returns the angle of the point (x, y) in [-π, π].
func Atan2F64(y, x float64) float64 { return current.Kernels64.Atan2(y, x) }

// ExpF64 returns e^x.
func ExpF64(x float64) float64 { return current.Kernels64.Exp(x) }

// LnF64 returns the natural logarithm of x.
func LnF64(x float64) float64 { return current.Kernels64.Ln(x) }

// PowF64 returns x^y.
func PowF64(x, y float64) float64 { return current.Kernels64.Pow(x, y) }

// SqrtF64 returns the square root of x.
func SqrtF64(x float64) float64 { return current.Kernels64.Sqrt(x) }

// CbrtF64 returns the cube root of x.
func CbrtF64(x float64) float64 { return current.Kernels64.Cbrt(x) }

// HypotF64 returns sqrt(x² + y²) without intermediate overflow.
func HypotF64(x, y float64) float64 { return current.Kernels64.Hypot(x, y) }

// FloorF64 returns the greatest integer value not above x.
func FloorF64(x float64) float64 { return current.Kernels64.Floor(x) }

// CeilF64 returns the least integer value not below x.
func CeilF64(x float64) float64 { return current.Kernels64.Ceil(x) }

// The float32 entry points mirror the float64 ones.

func SinF32(x float32) float32      { return current.Kernels32.Sin(x) }
func CosF32(x float32) float32      { return current.Kernels32.Cos(x) }
func TanF32(x float32) float32      { return current.Kernels32.Tan(x) }
func AsinF32(x float32) float32     { return current.Kernels32.Asin(x) }
func AcosF32(x float32) float32     { return current.Kernels32.Acos(x) }
func AtanF32(x float32) float32     { return current.Kernels32.Atan(x) }
func Atan2F32(y, x float32) float32 { return current.Kernels32.Atan2(y, x) }
func ExpF32(x float32) float32      { return current.Kernels32.Exp(x) }
func LnF32(x float32) float32       { return current.Kernels32.Ln(x) }
func PowF32(x, y float32) float32   { return current.Kernels32.Pow(x, y) }
func SqrtF32(x float32) float32     { return current.Kernels32.Sqrt(x) }
func CbrtF32(x float32) float32     { return current.Kernels32.Cbrt(x) }
func HypotF32(x, y float32) float32 { return current.Kernels32.Hypot(x, y) }
func FloorF32(x float32) float32    { return current.Kernels32.Floor(x) }
func CeilF32(x float32) float32     { return current.Kernels32.Ceil(x) }

// Hypot3F64 returns the Euclidean norm of (x, y, z). Any infinite argument
// gives +Inf, then any NaN gives NaN.
func Hypot3F64(x, y, z float64) float64 { return hypot3Scalar(x, y, z) }

// Hypot4F64 returns the Euclidean norm of (x, y, z, w).
func Hypot4F64(x, y, z, w float64) float64 { return hypot4Scalar(x, y, z, w) }

func Hypot3F32(x, y, z float32) float32    { return hypot3Scalar(x, y, z) }
func Hypot4F32(x, y, z, w float32) float32 { return hypot4Scalar(x, y, z, w) }

// FmaxF64 returns x if y is NaN or x > y, and y otherwise.
func FmaxF64(x, y float64) float64 { return fmax(x, y) }

// FminF64 returns x if y is NaN or x < y, and y otherwise.
func FminF64(x, y float64) float64 { return fmin(x, y) }

func FmaxF32(x, y float32) float32 { return fmax(x, y) }
func FminF32(x, y float32) float32 { return fmin(x, y) }

// AbsF64 clears the sign bit of x.
func AbsF64(x float64) float64 { return eabs(x) }

// CopySignF64 returns the magnitude of x with the sign of y.
func CopySignF64(x, y float64) float64 { return copysignk(x, y) }

func AbsF32(x float32) float32         { return eabs(x) }
func CopySignF32(x, y float32) float32 { return copysignk(x, y) }

// ExpWithTable64 is the scalar exp kernel evaluated with a caller-supplied
// coefficient table in the layout DefaultTable(FuncExp, 64) returns.
func ExpWithTable64(x float64, table []float64) float64 {
	return expWithTable(x, table)
}

// AsinWithTable32 is the scalar asin kernel with a caller-supplied table in
// the layout DefaultTable(FuncAsin, 32) returns.
func AsinWithTable32(x float32, table []float64) float32 {
	return asinWithTable(x, table)
}

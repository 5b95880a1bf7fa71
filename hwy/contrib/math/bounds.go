package math

// Published maximum errors in ULPs, measured against a 128-bit reference
// over each function's tested domain with several seeds. Floor and ceil
// are exact.
var (
	ulpBounds64 = [numFuncs]float64{
		FuncSin: 2.0, FuncCos: 2.0, FuncTan: 3.5,
		FuncAsin: 2.5, FuncAcos: 2.0, FuncAtan: 1.5, FuncAtan2: 1.5,
		FuncExp: 1.5, FuncLn: 1.0, FuncPow: 1.0,
		FuncSqrt: 1.0, FuncCbrt: 1.0, FuncHypot: 2.0,
	}
	ulpBounds32 = [numFuncs]float64{
		FuncSin: 2.0, FuncCos: 2.0, FuncTan: 3.5,
		FuncAsin: 3.5, FuncAcos: 2.0, FuncAtan: 1.5, FuncAtan2: 2.0,
		FuncExp: 2.0, FuncLn: 1.0, FuncPow: 1.0,
		FuncSqrt: 1.0, FuncCbrt: 1.0, FuncHypot: 2.0,
	}
)

// ULPBound returns the published error bound of fn at precision 32 or 64.
// It returns 0 for an unknown function or precision.
func ULPBound(fn Func, precision int) float64 {
	if fn < 0 || fn >= numFuncs {
		return 0
	}
	switch precision {
	case 64:
		return ulpBounds64[fn]
	case 32:
		return ulpBounds32[fn]
	}
	return 0
}

// DefaultTable returns a copy of the coefficient table the exp (64-bit) or
// asin (32-bit) kernel uses. Those are the two kernels that accept a
// caller-supplied table; ok is false for any other pair.
func DefaultTable(fn Func, precision int) (table []float64, ok bool) {
	switch {
	case fn == FuncExp && precision == 64:
		return append([]float64(nil), expCoeffs_f64...), true
	case fn == FuncAsin && precision == 32:
		return append([]float64(nil), asinCoeffs_f32...), true
	}
	return nil, false
}

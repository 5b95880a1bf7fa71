// Package ulp measures the error of the go-emath kernels in units in the
// last place against the math/big reference.
package ulp

import (
	"errors"
	"fmt"
	stdmath "math"
	"math/big"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-emath/hwy/contrib/math"
	"github.com/ajroetker/go-emath/internal/reference"
)

// Mismatch is the error charged when the reference is zero and the result
// is not, or when exactly one side is a domain error.
const Mismatch = 10000

var (
	// ErrUnknownFunc is returned for a function name that is not one of the
	// dispatched functions.
	ErrUnknownFunc = errors.New("ulp: unknown function")

	// ErrPrecision is returned for a precision other than 32 or 64.
	ErrPrecision = errors.New("ulp: precision must be 32 or 64")
)

// ParseFunc resolves a function name such as "sin" or "atan2".
func ParseFunc(name string) (math.Func, error) {
	f, ok := math.FuncByName(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFunc, name)
	}
	return f, nil
}

// ParseFuncs resolves a list of names, dropping duplicates. "all" (or an
// empty list) selects every function.
func ParseFuncs(names []string) ([]math.Func, error) {
	names = lo.Filter(lo.Map(names, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	}), func(s string, _ int) bool { return s != "" })
	if len(names) == 0 || lo.Contains(names, "all") {
		return math.Funcs(), nil
	}
	fs := make([]math.Func, 0, len(names))
	for _, n := range lo.Uniq(names) {
		f, err := ParseFunc(n)
		if err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return lo.Uniq(fs), nil
}

// CheckPrecision returns ErrPrecision unless p is 32 or 64.
func CheckPrecision(p int) error {
	if p != 32 && p != 64 {
		return fmt.Errorf("%w: got %d", ErrPrecision, p)
	}
	return nil
}

// Reference evaluates fn at (x, y) with the math/big oracle. y is ignored
// for unary functions. It returns nil outside the domain, and for floor
// and ceil, which are checked for exactness instead.
func Reference(fn math.Func, x, y float64) *big.Float {
	switch fn {
	case math.FuncSin:
		return reference.Sin(x)
	case math.FuncCos:
		return reference.Cos(x)
	case math.FuncTan:
		return reference.Tan(x)
	case math.FuncAsin:
		return reference.Asin(x)
	case math.FuncAcos:
		return reference.Acos(x)
	case math.FuncAtan:
		return reference.Atan(x)
	case math.FuncAtan2:
		return reference.Atan2(x, y)
	case math.FuncExp:
		return reference.Exp(x)
	case math.FuncLn:
		return reference.Ln(x)
	case math.FuncPow:
		return reference.Pow(x, y)
	case math.FuncSqrt:
		return reference.Sqrt(x)
	case math.FuncCbrt:
		return reference.Cbrt(x)
	case math.FuncHypot:
		return reference.Hypot(x, y)
	case math.FuncFloor:
		return new(big.Float).SetFloat64(stdmath.Floor(x))
	case math.FuncCeil:
		return new(big.Float).SetFloat64(stdmath.Ceil(x))
	}
	return nil
}

// CountULP64 returns the error of got against ref in float64 ULPs of the
// reference. A nil ref is a domain error, matched only by NaN.
func CountULP64(got float64, ref *big.Float) float64 {
	return count(got, ref, 53, -1021)
}

// CountULP32 is CountULP64 for float32 results.
func CountULP32(got float32, ref *big.Float) float64 {
	return count(float64(got), ref, 24, -125)
}

// count implements both precisions. mant is the significand width and
// minExp the smallest normal exponent in big.Float's [0.5, 1) convention.
func count(got float64, ref *big.Float, mant uint, minExp int) float64 {
	if ref == nil {
		if stdmath.IsNaN(got) {
			return 0
		}
		return Mismatch
	}
	if stdmath.IsNaN(got) {
		return Mismatch
	}
	// Round the reference to the target format to classify it.
	rf, _ := ref.Float64()
	if mant == 24 {
		f32, _ := ref.Float32()
		rf = float64(f32)
	}
	if stdmath.IsInf(got, 0) || stdmath.IsInf(rf, 0) {
		if got == rf {
			return 0
		}
		return stdmath.Inf(1)
	}
	if subnormal(got, minExp) && subnormal(rf, minExp) {
		return 0
	}
	if ref.Sign() == 0 {
		if got == 0 {
			return 0
		}
		return Mismatch
	}
	e := max(ref.MantExp(nil), minExp)
	diff := new(big.Float).SetPrec(reference.Prec).Sub(new(big.Float).SetFloat64(got), ref)
	diff.SetMantExp(diff, int(mant)-e)
	d, _ := diff.Float64()
	return stdmath.Abs(d)
}

// subnormal reports whether x is zero or below the smallest normal of the
// format whose minimum exponent is minExp.
func subnormal(x float64, minExp int) bool {
	return stdmath.Abs(x) < stdmath.Ldexp(1, minExp-1)
}

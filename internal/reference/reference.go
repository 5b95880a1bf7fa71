// Package reference evaluates elementary functions of float64 arguments to
// at least Prec bits with math/big. It is the oracle for ULP measurements.
//
// Arguments must be finite and inside the function's domain; out-of-domain
// calls return nil.
package reference

import (
	"math"
	"math/big"
	"sync"
)

// Prec is the number of correct bits every result carries.
const Prec = 128

// work is the internal precision; the guard bits absorb rounding in the
// series and in range reduction of arguments up to about 2^40.
const work = Prec + 64

func newf() *big.Float { return new(big.Float).SetPrec(work) }

func fromFloat(x float64) *big.Float { return newf().SetFloat64(x) }

func fromInt(n int64) *big.Float { return newf().SetInt64(n) }

func add(a, b *big.Float) *big.Float { return newf().Add(a, b) }
func sub(a, b *big.Float) *big.Float { return newf().Sub(a, b) }
func mul(a, b *big.Float) *big.Float { return newf().Mul(a, b) }
func quo(a, b *big.Float) *big.Float { return newf().Quo(a, b) }

// ldexp returns a·2^k.
func ldexp(a *big.Float, k int) *big.Float {
	return newf().SetMantExp(a, k)
}

// tiny reports whether term no longer changes a sum of magnitude about 1.
func tiny(term *big.Float) bool {
	return term.Sign() == 0 || term.MantExp(nil) < -work-8
}

var constants = sync.OnceValues(func() (pi, ln2 *big.Float) {
	// Machin: π = 16·atan(1/5) - 4·atan(1/239).
	a := atanSeries(quo(fromInt(1), fromInt(5)))
	b := atanSeries(quo(fromInt(1), fromInt(239)))
	pi = sub(ldexp(a, 4), ldexp(b, 2))
	// ln 2 = 2·atanh(1/3).
	ln2 = ldexp(atanhSeries(quo(fromInt(1), fromInt(3))), 1)
	return pi, ln2
})

// Pi returns π to the working precision.
func Pi() *big.Float {
	pi, _ := constants()
	return newf().Set(pi)
}

func ln2() *big.Float {
	_, l := constants()
	return l
}

// atanSeries is Σ (-1)^k x^(2k+1)/(2k+1) for small |x|.
func atanSeries(x *big.Float) *big.Float {
	x2 := mul(x, x)
	sum := newf().Set(x)
	pow := newf().Set(x)
	for k := int64(1); ; k++ {
		pow = mul(pow, x2)
		term := quo(pow, fromInt(2*k+1))
		if tiny(term) {
			break
		}
		if k%2 == 1 {
			sum = sub(sum, term)
		} else {
			sum = add(sum, term)
		}
	}
	return sum
}

// atanhSeries is Σ x^(2k+1)/(2k+1) for |x| <= 1/3.
func atanhSeries(x *big.Float) *big.Float {
	x2 := mul(x, x)
	sum := newf().Set(x)
	pow := newf().Set(x)
	for k := int64(1); ; k++ {
		pow = mul(pow, x2)
		term := quo(pow, fromInt(2*k+1))
		if tiny(term) {
			break
		}
		sum = add(sum, term)
	}
	return sum
}

// sinCosSeries returns sin(r) and cos(r) by Taylor series for |r| <= π/4.
func sinCosSeries(r *big.Float) (s, c *big.Float) {
	s = newf().Set(r)
	c = fromInt(1)
	term := newf().Set(r) // r^n / n!
	for n := int64(2); ; n++ {
		term = quo(mul(term, r), fromInt(n))
		if tiny(term) {
			break
		}
		switch n % 4 {
		case 0:
			c = add(c, term)
		case 1:
			s = add(s, term)
		case 2:
			c = sub(c, term)
		case 3:
			s = sub(s, term)
		}
	}
	return s, c
}

// reduceHalfPi returns r = x - k·π/2 with |r| <= π/4 and k mod 4.
func reduceHalfPi(x float64) (r *big.Float, quadrant int) {
	halfPi := ldexp(Pi(), -1)
	bx := fromFloat(x)
	kf := quo(bx, halfPi)
	k, _ := add(kf, fromFloat(math.Copysign(0.5, x))).Int(nil) // round half away
	r = sub(bx, mul(newf().SetInt(k), halfPi))
	q := new(big.Int).Mod(k, big.NewInt(4))
	return r, int(q.Int64())
}

// Sin returns sin(x).
func Sin(x float64) *big.Float {
	if !finite(x) {
		return nil
	}
	r, q := reduceHalfPi(x)
	s, c := sinCosSeries(r)
	switch q {
	case 0:
		return s
	case 1:
		return c
	case 2:
		return s.Neg(s)
	}
	return c.Neg(c)
}

// Cos returns cos(x).
func Cos(x float64) *big.Float {
	if !finite(x) {
		return nil
	}
	r, q := reduceHalfPi(x)
	s, c := sinCosSeries(r)
	switch q {
	case 0:
		return c
	case 1:
		return s.Neg(s)
	case 2:
		return c.Neg(c)
	}
	return s
}

// Tan returns tan(x).
func Tan(x float64) *big.Float {
	if !finite(x) {
		return nil
	}
	r, q := reduceHalfPi(x)
	s, c := sinCosSeries(r)
	if q%2 == 1 {
		return quo(c, s.Neg(s))
	}
	return quo(s, c)
}

// atan is atan(x) for any finite x.
func atan(x *big.Float) *big.Float {
	one := fromInt(1)
	ax := newf().Abs(x)
	if ax.Cmp(one) > 0 {
		r := sub(ldexp(Pi(), -1), atan(quo(one, ax)))
		if x.Sign() < 0 {
			r.Neg(r)
		}
		return r
	}
	// atan(x) = 2·atan(x / (1 + sqrt(1 + x²))), applied until |x| < 1/8.
	doublings := 0
	for ax.Cmp(quo(one, fromInt(8))) > 0 {
		ax = quo(ax, add(one, newf().Sqrt(add(one, mul(ax, ax)))))
		doublings++
	}
	r := ldexp(atanSeries(ax), doublings)
	if x.Sign() < 0 {
		r.Neg(r)
	}
	return r
}

// Atan returns atan(x).
func Atan(x float64) *big.Float {
	if !finite(x) {
		return nil
	}
	return atan(fromFloat(x))
}

// Atan2 returns atan2(y, x) for finite arguments, not both zero.
func Atan2(y, x float64) *big.Float {
	if !finite(x) || !finite(y) || (x == 0 && y == 0) {
		return nil
	}
	pi := Pi()
	if x == 0 {
		r := ldexp(pi, -1)
		if y < 0 {
			r.Neg(r)
		}
		return r
	}
	r := atan(quo(fromFloat(y), fromFloat(x)))
	switch {
	case x > 0:
		return r
	case math.Signbit(y):
		return sub(r, pi)
	}
	return add(r, pi)
}

// Asin returns asin(x) for |x| <= 1.
func Asin(x float64) *big.Float {
	if !(math.Abs(x) <= 1) {
		return nil
	}
	if math.Abs(x) == 1 {
		r := ldexp(Pi(), -1)
		if x < 0 {
			r.Neg(r)
		}
		return r
	}
	bx := fromFloat(x)
	return atan(quo(bx, newf().Sqrt(sub(fromInt(1), mul(bx, bx)))))
}

// Acos returns acos(x) for |x| <= 1.
func Acos(x float64) *big.Float {
	a := Asin(x)
	if a == nil {
		return nil
	}
	return sub(ldexp(Pi(), -1), a)
}

// exp is e^x for |x| below a few thousand.
func exp(x *big.Float) *big.Float {
	l2 := ln2()
	kf, _ := quo(x, l2).Float64()
	k := int(math.Round(kf))
	r := sub(x, mul(fromInt(int64(k)), l2))
	// e^r = (e^(r/2^16))^(2^16)
	const halvings = 16
	r = ldexp(r, -halvings)
	sum := fromInt(1)
	term := fromInt(1)
	for n := int64(1); ; n++ {
		term = quo(mul(term, r), fromInt(n))
		if tiny(term) {
			break
		}
		sum = add(sum, term)
	}
	for range halvings {
		sum = mul(sum, sum)
	}
	return ldexp(sum, k)
}

// Exp returns e^x for finite x.
func Exp(x float64) *big.Float {
	if !finite(x) {
		return nil
	}
	return exp(fromFloat(x))
}

// ln is the natural logarithm of x > 0.
func ln(x *big.Float) *big.Float {
	m := newf()
	e := x.MantExp(m) // x = m·2^e, m in [0.5, 1)
	if m.Cmp(newf().SetFloat64(math.Sqrt2/2)) < 0 {
		m = ldexp(m, 1)
		e--
	}
	one := fromInt(1)
	t := quo(sub(m, one), add(m, one))
	r := ldexp(atanhSeries(t), 1)
	return add(r, mul(fromInt(int64(e)), ln2()))
}

// Ln returns ln(x) for finite x > 0.
func Ln(x float64) *big.Float {
	if !(x > 0) || !finite(x) {
		return nil
	}
	return ln(fromFloat(x))
}

// Sqrt returns sqrt(x) for finite x >= 0.
func Sqrt(x float64) *big.Float {
	if !(x >= 0) || !finite(x) {
		return nil
	}
	return newf().Sqrt(fromFloat(x))
}

// Cbrt returns the real cube root of finite x.
func Cbrt(x float64) *big.Float {
	if !finite(x) {
		return nil
	}
	if x == 0 {
		return fromFloat(x)
	}
	a := fromFloat(math.Abs(x))
	t := fromFloat(math.Cbrt(math.Abs(x)))
	three := fromInt(3)
	// Newton: t ← t - (t³ - a)/(3t²); quadratic from a 53-bit start.
	for range 4 {
		t2 := mul(t, t)
		t = sub(t, quo(sub(mul(t2, t), a), mul(three, t2)))
	}
	if x < 0 {
		t.Neg(t)
	}
	return t
}

// Pow returns x^y for finite x > 0 and finite y.
func Pow(x, y float64) *big.Float {
	if !(x > 0) || !finite(x) || !finite(y) {
		return nil
	}
	return exp(mul(fromFloat(y), ln(fromFloat(x))))
}

// Hypot returns sqrt(x² + y²) for finite x and y.
func Hypot(x, y float64) *big.Float {
	if !finite(x) || !finite(y) {
		return nil
	}
	bx, by := fromFloat(x), fromFloat(y)
	return newf().Sqrt(add(mul(bx, bx), mul(by, by)))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

//go:build amd64 && goexperiment.simd

package dd

import "simd/archsimd"

var (
	dd64_upper = archsimd.BroadcastInt64x4(-0x8000000) // 0xfffffffff8000000
	dd64_one   = archsimd.BroadcastFloat64x4(1)

	dd32_upper = archsimd.BroadcastInt32x8(-0x1000) // 0xfffff000
	dd32_one   = archsimd.BroadcastFloat32x8(1)
)

// F64x4 is a double-double in four float64 lanes.
type F64x4 struct {
	Hi, Lo archsimd.Float64x4
}

// F32x8 is a double-single in eight float32 lanes.
type F32x8 struct {
	Hi, Lo archsimd.Float32x8
}

// Upper_AVX2_F64x4 is Upper lane-wise.
func Upper_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	return x.AsInt64x4().And(dd64_upper).AsFloat64x4()
}

func split_AVX2_F64x4(x archsimd.Float64x4) (hi, lo archsimd.Float64x4) {
	hi = Upper_AVX2_F64x4(x)
	return hi, x.Sub(hi)
}

func cross_AVX2_F64x4(xh, xl, yh, yl, r archsimd.Float64x4) archsimd.Float64x4 {
	return xh.Mul(yh).Sub(r).Add(xl.Mul(yh)).Add(xh.Mul(yl)).Add(xl.Mul(yl))
}

// Value_AVX2_F64x4 rounds the pair to a single float per lane.
func Value_AVX2_F64x4(x F64x4) archsimd.Float64x4 {
	return x.Hi.Add(x.Lo)
}

// MulExact_AVX2_F64x4 is MulExact lane-wise.
func MulExact_AVX2_F64x4(x, y archsimd.Float64x4) F64x4 {
	xh, xl := split_AVX2_F64x4(x)
	yh, yl := split_AVX2_F64x4(y)
	r := x.Mul(y)
	return F64x4{Hi: r, Lo: cross_AVX2_F64x4(xh, xl, yh, yl, r)}
}

// AddFloat_AVX2_F64x4 is AddFloat lane-wise.
func AddFloat_AVX2_F64x4(x archsimd.Float64x4, y F64x4) F64x4 {
	r := x.Add(y.Hi)
	v := r.Sub(x)
	return F64x4{Hi: r, Lo: x.Sub(r.Sub(v)).Add(y.Hi.Sub(v)).Add(y.Lo)}
}

// TwoSum_AVX2_F64x4 is TwoSum lane-wise.
func TwoSum_AVX2_F64x4(x, y archsimd.Float64x4) F64x4 {
	r := x.Add(y)
	v := r.Sub(x)
	return F64x4{Hi: r, Lo: x.Sub(r.Sub(v)).Add(y.Sub(v))}
}

// AddScalar_AVX2_F64x4 is DD.AddScalar lane-wise.
func AddScalar_AVX2_F64x4(x F64x4, y archsimd.Float64x4) F64x4 {
	r := x.Hi.Add(y)
	v := r.Sub(x.Hi)
	return F64x4{Hi: r, Lo: x.Hi.Sub(r.Sub(v)).Add(y.Sub(v)).Add(x.Lo)}
}

// Add_AVX2_F64x4 is Add lane-wise.
func Add_AVX2_F64x4(x, y F64x4) F64x4 {
	r := x.Hi.Add(y.Hi)
	return F64x4{Hi: r, Lo: x.Hi.Sub(r).Add(y.Hi).Add(x.Lo).Add(y.Lo)}
}

// AddFast_AVX2_F64x4 is AddFast lane-wise.
func AddFast_AVX2_F64x4(x archsimd.Float64x4, y F64x4) F64x4 {
	r := x.Add(y.Hi)
	return F64x4{Hi: r, Lo: x.Sub(r).Add(y.Hi).Add(y.Lo)}
}

func recipErr_AVX2_F64x4(dh, dl, th, tl archsimd.Float64x4) archsimd.Float64x4 {
	return dd64_one.Sub(dh.Mul(th)).Sub(dh.Mul(tl)).Sub(dl.Mul(th)).Sub(dl.Mul(tl))
}

// Reciprocal_AVX2_F64x4 is Reciprocal lane-wise.
func Reciprocal_AVX2_F64x4(d archsimd.Float64x4) F64x4 {
	t := dd64_one.Div(d)
	dh, dl := split_AVX2_F64x4(d)
	th, tl := split_AVX2_F64x4(t)
	return F64x4{Hi: t, Lo: t.Mul(recipErr_AVX2_F64x4(dh, dl, th, tl))}
}

// Mul_AVX2_F64x4 is Mul lane-wise.
func Mul_AVX2_F64x4(x, y F64x4) F64x4 {
	xh, xl := split_AVX2_F64x4(x.Hi)
	yh, yl := split_AVX2_F64x4(y.Hi)
	r := x.Hi.Mul(y.Hi)
	lo := cross_AVX2_F64x4(xh, xl, yh, yl, r).Add(x.Hi.Mul(y.Lo)).Add(x.Lo.Mul(y.Hi))
	return F64x4{Hi: r, Lo: lo}
}

// MulFloat_AVX2_F64x4 is DD.MulFloat lane-wise.
func MulFloat_AVX2_F64x4(x F64x4, y archsimd.Float64x4) F64x4 {
	xh, xl := split_AVX2_F64x4(x.Hi)
	yh, yl := split_AVX2_F64x4(y)
	r := x.Hi.Mul(y)
	return F64x4{Hi: r, Lo: cross_AVX2_F64x4(xh, xl, yh, yl, r).Add(x.Lo.Mul(y))}
}

// Square_AVX2_F64x4 is DD.Square lane-wise.
func Square_AVX2_F64x4(x F64x4) F64x4 {
	xh, xl := split_AVX2_F64x4(x.Hi)
	r := x.Hi.Mul(x.Hi)
	lo := xh.Mul(xh).Sub(r).Add(xh.Add(xh).Mul(xl)).Add(xl.Mul(xl)).Add(x.Hi.Mul(x.Lo.Add(x.Lo)))
	return F64x4{Hi: r, Lo: lo}
}

// Div_AVX2_F64x4 is Div lane-wise.
func Div_AVX2_F64x4(n, d F64x4) F64x4 {
	t := dd64_one.Div(d.Hi)
	dh, dl := split_AVX2_F64x4(d.Hi)
	th, tl := split_AVX2_F64x4(t)
	nhh, nhl := split_AVX2_F64x4(n.Hi)
	q := n.Hi.Mul(t)
	u := nhh.Mul(th).Sub(q).Add(nhh.Mul(tl)).Add(nhl.Mul(th)).Add(nhl.Mul(tl))
	u = u.Add(q.Mul(recipErr_AVX2_F64x4(dh, dl, th, tl)))
	lo := t.Mul(n.Lo.Sub(q.Mul(d.Lo))).Add(u)
	return F64x4{Hi: q, Lo: lo}
}

// Normalize_AVX2_F64x4 is DD.Normalize lane-wise.
func Normalize_AVX2_F64x4(x F64x4) F64x4 {
	s := x.Hi.Add(x.Lo)
	return F64x4{Hi: s, Lo: x.Hi.Sub(s).Add(x.Lo)}
}

// Scale_AVX2_F64x4 is DD.Scale lane-wise.
func Scale_AVX2_F64x4(x F64x4, s archsimd.Float64x4) F64x4 {
	return F64x4{Hi: x.Hi.Mul(s), Lo: x.Lo.Mul(s)}
}

// Upper_AVX2_F32x8 is Upper lane-wise.
func Upper_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	return x.AsInt32x8().And(dd32_upper).AsFloat32x8()
}

func split_AVX2_F32x8(x archsimd.Float32x8) (hi, lo archsimd.Float32x8) {
	hi = Upper_AVX2_F32x8(x)
	return hi, x.Sub(hi)
}

func cross_AVX2_F32x8(xh, xl, yh, yl, r archsimd.Float32x8) archsimd.Float32x8 {
	return xh.Mul(yh).Sub(r).Add(xl.Mul(yh)).Add(xh.Mul(yl)).Add(xl.Mul(yl))
}

// Value_AVX2_F32x8 rounds the pair to a single float per lane.
func Value_AVX2_F32x8(x F32x8) archsimd.Float32x8 {
	return x.Hi.Add(x.Lo)
}

// MulExact_AVX2_F32x8 is MulExact lane-wise.
func MulExact_AVX2_F32x8(x, y archsimd.Float32x8) F32x8 {
	xh, xl := split_AVX2_F32x8(x)
	yh, yl := split_AVX2_F32x8(y)
	r := x.Mul(y)
	return F32x8{Hi: r, Lo: cross_AVX2_F32x8(xh, xl, yh, yl, r)}
}

// AddFloat_AVX2_F32x8 is AddFloat lane-wise.
func AddFloat_AVX2_F32x8(x archsimd.Float32x8, y F32x8) F32x8 {
	r := x.Add(y.Hi)
	v := r.Sub(x)
	return F32x8{Hi: r, Lo: x.Sub(r.Sub(v)).Add(y.Hi.Sub(v)).Add(y.Lo)}
}

// TwoSum_AVX2_F32x8 is TwoSum lane-wise.
func TwoSum_AVX2_F32x8(x, y archsimd.Float32x8) F32x8 {
	r := x.Add(y)
	v := r.Sub(x)
	return F32x8{Hi: r, Lo: x.Sub(r.Sub(v)).Add(y.Sub(v))}
}

// Reciprocal_AVX2_F32x8 is Reciprocal lane-wise.
func Reciprocal_AVX2_F32x8(d archsimd.Float32x8) F32x8 {
	t := dd32_one.Div(d)
	dh, dl := split_AVX2_F32x8(d)
	th, tl := split_AVX2_F32x8(t)
	e := dd32_one.Sub(dh.Mul(th)).Sub(dh.Mul(tl)).Sub(dl.Mul(th)).Sub(dl.Mul(tl))
	return F32x8{Hi: t, Lo: t.Mul(e)}
}

// Mul_AVX2_F32x8 is Mul lane-wise.
func Mul_AVX2_F32x8(x, y F32x8) F32x8 {
	xh, xl := split_AVX2_F32x8(x.Hi)
	yh, yl := split_AVX2_F32x8(y.Hi)
	r := x.Hi.Mul(y.Hi)
	lo := cross_AVX2_F32x8(xh, xl, yh, yl, r).Add(x.Hi.Mul(y.Lo)).Add(x.Lo.Mul(y.Hi))
	return F32x8{Hi: r, Lo: lo}
}

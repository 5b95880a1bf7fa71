package math

import "github.com/ajroetker/go-emath/hwy"

// Coefficient tables, highest degree first. Each (function, precision) pair
// owns exactly one table; kernels convert entries to the lane type at use.
// Single-precision entries are written as the float32 values they round to.

var (
	sinCoeffs_f64 = []float64{
		-8.118486649859753485496e-18,
		2.811227876145604544553e-15,
		-7.647160846222341105455e-13,
		1.605904381455638364872e-10,
		-2.505210838533321890745e-8,
		2.755731922398555921929e-6,
		-0.0001984126984126984066122,
		0.008333333333333333332719,
		-0.1666666666666666666666,
	}
	sinCoeffs_f32 = []float64{
		-2.4535176e-8,
		2.7551241e-6,
		-0.00019841341,
		0.0083333375,
		-0.16666667,
	}

	// tan(x)/x - 1 in x² on [-π/8, π/8]; reconstructed with the
	// double-angle formula.
	tanCoeffs_f64 = []float64{
		0.3245098826639276316e-3,
		0.5619219738114323735e-3,
		0.1460781502402784494e-2,
		0.3591611540792499519e-2,
		0.8863268409563113126e-2,
		0.2186948728185535498e-1,
		0.5396825399517272970e-1,
		0.1333333333330500581,
		0.3333333333333343695,
	}
	// tan(x)/x - 1 in x² on [-π/4, π/4].
	tanCoeffs_f32 = []float64{
		0.003119367819237227984603,
		-0.008780698867440909852696,
		0.01566058603292222557185,
		-0.008716767804671342083395,
		0.01536309149864370613748,
		0.01976259322538098448190,
		0.05437330042338871738713,
		0.1332909226735641872812,
		0.3333353561669567628359,
	}

	// exp(r) = 1 + 2r/(P(r²) - r).
	expCoeffs_f64 = []float64{
		-6.77936059264516573366e-13,
		1.71721241125556891283e-14,
		2.67650730613693576657e-11,
		-1.05683802773749863697e-9,
		4.17535139757361979584e-8,
		-1.6534391534392554e-6,
		6.613756613755705e-5,
		-0.0027777777777777614,
		0.16666666666666674,
		2.0,
	}
	expCoeffs_f32 = []float64{
		1.6546869e-6,
		6.6094115e-5,
		-0.002775669,
		0.16666707,
		2.0,
	}

	// ln(a) = 2t + t³·P(t²) with t = (a-1)/(a+1), a in [0.75, 1.5).
	lnCoeffs_f64 = []float64{
		0.15443050462299468,
		0.1523998084856963,
		0.18186905729175176,
		0.22222123674774563,
		0.2857142960481076,
		0.3999999999468883,
		0.6666666666667705,
	}
	lnCoeffs_f32 = []float64{
		0.2419617696040758,
		0.2849932257234876,
		0.40001064410214904,
		0.6666666119158072,
	}

	// asin(x)/x - 1 in x² on [0, 0.5]; shared by acos.
	asinCoeffs_f64 = []float64{
		+0.3161587650653934628e-1,
		-0.1581918243329996643e-1,
		+0.1929045477267910674e-1,
		+0.6606077476277170610e-2,
		+0.1215360525577377331e-1,
		+0.1388715184501609218e-1,
		+0.1735956991223614604e-1,
		+0.2237176181932048341e-1,
		+0.3038195928038132237e-1,
		+0.4464285681377102438e-1,
		+0.7500000000378581611e-1,
		+0.1666666666666497543e+0,
	}
	asinCoeffs_f32 = []float64{
		+0.4197454825e-1,
		+0.2424046025e-1,
		+0.4547423869e-1,
		+0.7495029271e-1,
		+0.1666677296e+0,
	}

	// atan(z) = z + z·t·P(t) with t = z², z in [0, 1]. The constant term is
	// exactly 1 and kept out of the table.
	atanCoeffs_f64 = []float64{
		1.06298484191448746607415e-05,
		-0.000125620649967286867384336,
		0.00070557664296393412389774,
		-0.00251865614498713360352999,
		0.00646262899036991172313504,
		-0.0128281333663399031014274,
		0.0208024799924145797902497,
		-0.0289002344784740315686289,
		0.0359785005035104590853656,
		-0.041848579703592507506027,
		0.0470843011653283988193763,
		-0.0524914210588448421068719,
		0.0587946590969581003860434,
		-0.0666620884778795497194182,
		0.0769225330296203768654095,
		-0.0909090442773387574781907,
		0.111111108376896236538123,
		-0.142857142756268568062339,
		0.199999999997977351284817,
		-0.333333333333317605173818,
	}
	atanCoeffs_f32 = []float64{
		0.0029745907991982506,
		-0.016581185584302195,
		0.04355354187472572,
		-0.07580578337286198,
		0.10678940374066545,
		-0.14214209154596893,
		0.19994137206958448,
		-0.33333166966087846,
	}

	// Double-double log and exp used by pow (float64 only).
	logkCoeffs_f64 = []float64{
		0.116255524079935043668677,
		0.103239680901072952701192,
		0.117754809412463995466069,
		0.13332981086846273921509,
		0.153846227114512262845736,
		0.181818180850050775676507,
		0.222222222230083560345903,
		0.285714285714249172087875,
		0.400000000000000077715612,
	}
	expkCoeffs_f64 = []float64{
		2.51069683420950419527139e-08,
		2.76286166770270649116855e-07,
		2.75572496725023574143864e-06,
		2.48014973989819794114153e-05,
		0.000198412698809069797676111,
		0.0013888888939977128960529,
		0.00833333333332371417601081,
		0.0416666666665409524128449,
		0.166666666666666740681535,
		0.500000000000000999200722,
	}
)

const (
	pi_f64       = 3.141592653589793116
	piLo_f64     = 1.2246467991473532072e-16
	onePi_f64    = 0.318309886183790671537767526745028724
	twoOverPi    = 0.636619772367581343075535053490057448
	halfPi_f64   = 1.570796326794896557998981734272092580795288085937
	halfPiLo_f64 = 6.123233995736766e-17
	rln2         = 1.442695040888963407359924681001892137426645954152985934135449406931
	ln2_f64      = 0.693147180559945286226764
	ln2Lo_f64    = 2.319046813846299558417771e-17
	twoThirds    = 0.666666666666666629659233
	twoThirdsLo  = 3.80554962542412056336616e-17
	pi_f32       = 3.1415927410125732
	piLo_f32     = -8.742277657347586e-08
	halfPi_f32   = 1.5707963705062866
	expHuge_f64  = 709.782712893384
	powHuge_f64  = 709.78271114955742909217217426
	expTiny_f64  = -1000.0
	cbrtB1_f64   = 715094163
	cbrtB1_f32   = 709958130
	sqrtMagic64  = 0x5fe6ec85e7de30da
	sqrtMagic32  = 0x5f375a86
	minNormal64  = 2.2250738585072014e-308
	minNormal32  = 1.1754943508222875e-38
	exact_f64    = 4503599627370496.0 // 2^52
	exact_f32    = 8388608.0          // 2^23
	divBy3Mul32  = 0xAAAAAAAB
	divBy3Shift  = 33
	cbrtSignMask = 0x7fffffff
)

// consts holds the per-precision parameters of every kernel. Values are
// float64; kernels convert them to the lane type once per use.
type consts struct {
	piSplit []float64 // π as an unevaluated sum, most significant first
	onePi   float64
	twoPi   float64 // 2/π
	halfPi  float64
	piHi    float64 // π = piHi + piLo for acos reconstruction
	piLo    float64

	// Low halves for the atan2 quadrant offset and ln's n·ln2.
	halfPiLo float64
	ln2Lo    float64

	sin, tan      []float64
	tanHalveAngle bool

	l2u, l2l       float64
	exp            []float64
	expHuge        float64
	expTiny        float64
	ln             []float64
	ln2            float64
	minNormal      float64
	lnPrescale     float64
	lnPrescaleBits float64

	asin, atan []float64

	cbrtTiny, cbrtTinyScale, cbrtTinyUnscale float64
	cbrtHuge, cbrtHugeScale, cbrtHugeUnscale float64
	cbrtB1                                   uint64
	cbrtShift                                int
	cbrtHalley                               int

	sqrtTiny, sqrtTinyScale, sqrtTinyQ float64
	sqrtHuge, sqrtHugeScale, sqrtHugeQ float64
	sqrtBias                           float64
	sqrtMagic                          uint64

	exactInt float64 // smallest magnitude at which every value is an integer
}

var consts64 = consts{
	piSplit: []float64{pi_f64, piLo_f64},
	onePi:   onePi_f64,
	twoPi:   twoOverPi,
	halfPi:  halfPi_f64,
	piHi:    pi_f64,
	piLo:    piLo_f64,

	halfPiLo: halfPiLo_f64,
	ln2Lo:    ln2Lo_f64,

	sin:           sinCoeffs_f64,
	tan:           tanCoeffs_f64,
	tanHalveAngle: true,

	l2u:            0.69314718055966295651160180568695068359375,
	l2l:            0.28235290563031577122588448175013436025525412068e-12,
	exp:            expCoeffs_f64,
	expHuge:        expHuge_f64,
	expTiny:        expTiny_f64,
	ln:             lnCoeffs_f64,
	ln2:            ln2_f64,
	minNormal:      minNormal64,
	lnPrescale:     0x1p64,
	lnPrescaleBits: 64,

	asin: asinCoeffs_f64,
	atan: atanCoeffs_f64,

	cbrtTiny:        minNormal64,
	cbrtTinyScale:   0x1p54,
	cbrtTinyUnscale: 0x1p-18,
	cbrtHuge:        0x1p1000,
	cbrtHugeScale:   0x1p-999,
	cbrtHugeUnscale: 0x1p333,
	cbrtB1:          cbrtB1_f64,
	cbrtShift:       32,
	cbrtHalley:      2,

	sqrtTiny:      8.636168555094445e-78,
	sqrtTinyScale: 1.157920892373162e77,
	sqrtTinyQ:     2.9387358770557188e-39 * 0.5,
	sqrtHuge:      1.3407807929942597e+154,
	sqrtHugeScale: 7.4583407312002070e-155,
	sqrtHugeQ:     1.1579208923731620e+77 * 0.5,
	sqrtBias:      1e-320,
	sqrtMagic:     sqrtMagic64,

	exactInt: exact_f64,
}

var consts32 = consts{
	piSplit: []float64{3.140625, 0.0009670257568359375, 6.2771141529083251953e-7, 1.2154201256553420762e-10},
	onePi:   0.31830987334251404,
	twoPi:   0.6366197466850281,
	halfPi:  halfPi_f32,
	piHi:    pi_f32,
	piLo:    piLo_f32,

	halfPiLo: -4.371139000186243e-08,
	ln2Lo:    -1.904654299957768e-09,

	sin: sinCoeffs_f32,
	tan: tanCoeffs_f32,

	l2u:            0.693145751953125,
	l2l:            1.428606765330187045e-6,
	exp:            expCoeffs_f32,
	expHuge:        88.72283935546875,
	expTiny:        -104,
	ln:             lnCoeffs_f32,
	ln2:            0.6931471824645996,
	minNormal:      minNormal32,
	lnPrescale:     0x1p32,
	lnPrescaleBits: 32,

	asin: asinCoeffs_f32,
	atan: atanCoeffs_f32,

	cbrtTiny:        minNormal32,
	cbrtTinyScale:   0x1p24,
	cbrtTinyUnscale: 0x1p-8,
	cbrtHuge:        0x1p120,
	cbrtHugeScale:   0x1p-120,
	cbrtHugeUnscale: 0x1p40,
	cbrtB1:          cbrtB1_f32,
	cbrtShift:       0,
	cbrtHalley:      1,

	sqrtTiny:      5.2939559203393770e-23,
	sqrtTinyScale: 1.8889465931478580e+22,
	sqrtTinyQ:     7.2759576141834260e-12 * 0.5,
	sqrtHuge:      1.8446744073709552e+19,
	sqrtHugeScale: 5.4210108624275220e-20,
	sqrtHugeQ:     4294967296 * 0.5,
	sqrtBias:      1e-45,
	sqrtMagic:     sqrtMagic32,

	exactInt: exact_f32,
}

// constsFor returns the parameters for T's precision.
func constsFor[T hwy.Floats]() *consts {
	if hwy.FormatOf[T]().MantissaBits == 23 {
		return &consts32
	}
	return &consts64
}

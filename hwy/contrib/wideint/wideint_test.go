package wideint

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

func (a Uint128) big() *big.Int {
	b := new(big.Int).SetUint64(a.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(a.Lo))
}

// requireBig compares by value; big.Int internals are not DeepEqual-stable.
func requireBig(t *testing.T, want, got *big.Int, op string) {
	t.Helper()
	require.Zerof(t, want.Cmp(got), "%s: want %s, got %s", op, want, got)
}

func wrap(b *big.Int) *big.Int {
	return b.Mod(b, two128)
}

func randU128(r *rand.Rand) Uint128 {
	return Uint128{Lo: r.Uint64(), Hi: r.Uint64()}
}

func TestUint128Carries(t *testing.T) {
	max64 := Uint128{Lo: math.MaxUint64}
	assert.Equal(t, Uint128{Hi: 1}, max64.Add(U64(1)))
	assert.Equal(t, max64, Uint128{Hi: 1}.Sub(U64(1)))
	assert.Equal(t, Uint128{Lo: math.MaxUint64, Hi: math.MaxUint64}, Uint128{}.Sub(U64(1)))
	assert.Equal(t, Uint128{}, Uint128{Lo: math.MaxUint64, Hi: math.MaxUint64}.Add(U64(1)))
}

func TestUint128AgainstBig(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		a, b := randU128(r), randU128(r)
		requireBig(t, wrap(new(big.Int).Add(a.big(), b.big())), a.Add(b).big(), "add")
		requireBig(t, wrap(new(big.Int).Sub(a.big(), b.big())), a.Sub(b).big(), "sub")
		requireBig(t, wrap(new(big.Int).Mul(a.big(), b.big())), a.Mul(b).big(), "mul")

		n := uint(r.IntN(140))
		requireBig(t, wrap(new(big.Int).Lsh(a.big(), n)), a.Lsh(n).big(), "lsh")
		requireBig(t, new(big.Int).Rsh(a.big(), n), a.Rsh(n).big(), "rsh")
		require.Equal(t, a.big().Cmp(b.big()), a.Cmp(b))
	}
}

func TestMul64(t *testing.T) {
	p := Mul64(math.MaxUint64, math.MaxUint64)
	assert.Equal(t, Uint128{Lo: 1, Hi: math.MaxUint64 - 1}, p)
	assert.Equal(t, uint64(math.MaxUint64-1), MulHi64(math.MaxUint64, math.MaxUint64))
	assert.True(t, Mul64(0, 12345).IsZero())
}

func TestDivBy3(t *testing.T) {
	cases := []uint64{0, 1, 2, 3, 4, 5, 6, 2046, 2047, 3069, 1 << 32, math.MaxUint64, math.MaxUint64 - 1}
	r := rand.New(rand.NewPCG(5, 6))
	for range 1000 {
		cases = append(cases, r.Uint64())
	}
	for _, x := range cases {
		require.Equal(t, x/3, DivBy3(x), "x = %d", x)
	}
}

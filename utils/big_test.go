package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivCeilXDoesNotMutate(t *testing.T) {
	x := BN(7)
	y := BN(2)
	assert.Equal(t, int64(4), DivCeilX(x, y).Int64())
	assert.Equal(t, int64(7), x.Int64())
	assert.Equal(t, int64(3), DivCeilX(BN(6), BN(2)).Int64())
}

func TestDivRoundX(t *testing.T) {
	cases := []struct {
		x, y, want int64
	}{
		{5, 2, 3},
		{7, 3, 2},
		{-5, 2, -3},
		{5, -2, -3},
		{2000000000, 8400, 238095},
		{1, 3, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DivRoundX(BN(c.x), BN(c.y)).Int64(), "%d/%d", c.x, c.y)
	}
}

func TestBN(t *testing.T) {
	assert.Equal(t, "18446744073709551615", BN(uint64(18446744073709551615)).String())
	assert.Equal(t, int64(-3), BN(int16(-3)).Int64())
}

func TestUint64Saturates(t *testing.T) {
	assert.Equal(t, uint64(0), Uint64(BN(-1)))
	over := new(big.Int).Lsh(BN(1), 70)
	assert.Equal(t, ^uint64(0), Uint64(over))
	assert.Equal(t, uint64(42), Uint64(BN(42)))
}

func TestUint128FromLE(t *testing.T) {
	b := make([]byte, 16)
	b[0] = 0x01
	b[8] = 0x01
	want := new(big.Int).Add(new(big.Int).Lsh(BN(1), 64), BN(1))
	assert.Equal(t, want.String(), Uint128FromLE(b).String())
}

func TestSquareRootBN(t *testing.T) {
	assert.Equal(t, int64(100_000), SquareRootBN(BN(10_000_000_001)).Int64())
	assert.Equal(t, int64(3), SquareRootBN(BN(15)).Int64())
}

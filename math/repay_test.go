package math

import (
	"math/big"
	"testing"

	"quartzgo/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test --run TestRepayValueForTargetHealth

func TestRepayValueForTargetHealth(t *testing.T) {
	repay, err := RepayValueForTargetHealth(80, big.NewInt(500_000), big.NewInt(300_000), 80, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(238_095), repay.Int64())

	// repaying r moves health to the target, up to rounding
	weighted := new(big.Int).Sub(big.NewInt(500_000), new(big.Int).Div(new(big.Int).Mul(repay, big.NewInt(80)), big.NewInt(100)))
	margin := new(big.Int).Sub(big.NewInt(300_000), repay)
	assert.InDelta(t, 80, HealthFromValues(weighted, margin), 1)
}

func TestRepayValueIsMonotonicInTarget(t *testing.T) {
	weighted := big.NewInt(500_000)
	margin := big.NewInt(300_000)
	previous := big.NewInt(0)
	for target := 41; target <= 100; target++ {
		repay, err := RepayValueForTargetHealth(target, weighted, margin, 80, 110)
		require.NoError(t, err, "target %d", target)
		assert.True(t, repay.Cmp(previous) >= 0, "target %d: %s < %s", target, repay, previous)
		previous = repay
	}
}

func TestRepayValueValidation(t *testing.T) {
	weighted := big.NewInt(500_000)
	margin := big.NewInt(300_000)
	cases := []struct {
		name                     string
		target, asset, liability int
	}{
		{"target below current", 40, 80, 100},
		{"target above 100", 101, 80, 100},
		{"negative target", -1, 80, 100},
		{"asset weight above 100", 80, 101, 100},
		{"negative asset weight", 80, -1, 100},
		{"liability weight below 100", 80, 80, 99},
	}
	for _, c := range cases {
		_, err := RepayValueForTargetHealth(c.target, weighted, margin, c.asset, c.liability)
		require.Error(t, err, c.name)
		assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err), c.name)
	}
}

func TestRepayValueExhaustingCollateral(t *testing.T) {
	// health 0 with equal sides: the solve repays all weighted collateral
	_, err := RepayValueForTargetHealth(50, big.NewInt(1_000), big.NewInt(1_000), 100, 100)
	require.Error(t, err)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
}

package quartz

import (
	"context"
	"testing"
	"time"

	"quartzgo/constants"
	"quartzgo/errs"
	quartzlib "quartzgo/lib/quartz"

	"github.com/davecgh/go-spew/spew"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test --run TestUserGetters

func TestUserGetters(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	ctx := context.Background()

	collateral, err := user.GetTotalCollateralValue(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(60_000_000), collateral.Int64())

	weighted, err := user.GetTotalWeightedCollateralValue(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(80_000_000), weighted.Int64())

	margin, err := user.GetMarginRequirement(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(40_000_000), margin.Int64())

	credit, err := user.GetAvailableCreditUsdcBaseUnits(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(40_000_000), credit.Int64())

	balances, err := user.GetMultipleTokenBalances(ctx, []uint16{0, 1, 5}, nil)
	require.NoError(t, err)
	spew.Dump("TestUserGetters balances", balances)
	assert.Equal(t, int64(-40_000_000), balances[0].Int64())
	assert.Equal(t, int64(1_000_000_000), balances[1].Int64())
	assert.Zero(t, balances[5].Sign())
}

func TestWithdrawOrdersReduceBalances(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	ctx := context.Background()

	pending := quartzlib.WithdrawOrder{
		TimeLock:         quartzlib.TimeLock{Owner: env.owner},
		AmountBaseUnits:  400_000_000,
		DriftMarketIndex: 1,
	}
	foreign := pending
	foreign.TimeLock.Owner = solana.NewWallet().PublicKey()

	balance, err := user.GetTokenBalance(ctx, 1, []quartzlib.WithdrawOrder{pending, foreign})
	require.NoError(t, err)
	assert.Equal(t, int64(600_000_000), balance.Int64())

	// a fetched order applies the same way as a supplied one
	require.NoError(t, env.fetcher.SetEncodable(solana.NewWallet().PublicKey(), constants.QUARTZ_PROGRAM_ID, pending))
	fetched, err := user.GetTokenBalance(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, balance.Int64(), fetched.Int64())

	unaffected, err := user.GetTokenBalance(ctx, 1, []quartzlib.WithdrawOrder{})
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000_000), unaffected.Int64())
}

func TestGetMultipleWithdrawalLimits(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	limits, err := user.GetMultipleWithdrawalLimits(context.Background(), []uint16{0, 1}, false, []quartzlib.WithdrawOrder{})
	require.NoError(t, err)
	require.Len(t, limits, 2)
	single, err := user.GetWithdrawalLimit(context.Background(), 1, false, []quartzlib.WithdrawOrder{})
	require.NoError(t, err)
	assert.Zero(t, single.Cmp(limits[1]))
	assert.True(t, limits[1].Sign() > 0)

	reduceOnly, err := user.GetWithdrawalLimit(context.Background(), 0, true, []quartzlib.WithdrawOrder{})
	require.NoError(t, err)
	assert.Zero(t, reduceOnly.Sign())
}

// go test --run TestGetSpendableBalance

func TestGetSpendableBalance(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	ctx := context.Background()

	spendable, err := user.GetSpendableBalanceUsdcBaseUnits(ctx, []quartzlib.WithdrawOrder{})
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), spendable.Int64())

	env.client.now = func() time.Time { return time.Unix(2_000_000_000, 0) }
	spendable, err = user.GetSpendableBalanceUsdcBaseUnits(ctx, []quartzlib.WithdrawOrder{})
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), spendable.Int64())

	user.Account.SpendLimitPerTransaction = 100_000_000
	user.Account.SpendLimitPerTimeframe = 100_000_000
	spendable, err = user.GetSpendableBalanceUsdcBaseUnits(ctx, []quartzlib.WithdrawOrder{})
	require.NoError(t, err)
	assert.Equal(t, int64(40_000_000), spendable.Int64())
}

func TestGetRepayUsdcValueForTargetHealth(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	repay, err := user.GetRepayUsdcValueForTargetHealth(80, 80, 100)
	require.NoError(t, err)
	assert.InDelta(t, 28_571_429, repay.Int64(), 1)

	_, err = user.GetRepayUsdcValueForTargetHealth(50, 80, 100)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
	_, err = user.GetRepayUsdcValueForTargetHealth(101, 80, 100)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
}

func TestRepayTargetUsesBufferedHealth(t *testing.T) {
	env := newTestEnv(t)
	env.client.healthBuffer = 10
	user := env.user(t)

	health, err := user.GetHealth()
	require.NoError(t, err)
	assert.Equal(t, 44, health)

	// buffered 80 is unbuffered 82
	repay, err := user.GetRepayUsdcValueForTargetHealth(80, 80, 100)
	require.NoError(t, err)
	assert.InDelta(t, 29_906_542, repay.Int64(), 1)

	_, err = user.GetRepayUsdcValueForTargetHealth(health, 80, 100)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
}

func TestNewUserFromSnapshot(t *testing.T) {
	env := newTestEnv(t)
	loaded := env.user(t)

	user := env.client.NewUser(loaded.Account, loaded.Snapshot)
	assert.Equal(t, loaded.Vault, user.Vault)
	assert.Equal(t, loaded.DriftUser, user.DriftUser)
	health, err := user.GetHealth()
	require.NoError(t, err)
	assert.Equal(t, 50, health)
}

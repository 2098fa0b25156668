package main

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"quartzgo/accounts"
	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/lib/drift"
	"quartzgo/lib/pyth"
	quartzlib "quartzgo/lib/quartz"
	spl_token "quartzgo/lib/spl-token"
	"quartzgo/quartz"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMarket(t *testing.T, fetcher *accounts.MemoryFetcher, marketIndex uint16, mint solana.PublicKey, decimals uint32, price int64) {
	oracle := solana.NewWallet().PublicKey()
	fetcher.SetSpotMarket(&drift.SpotMarket{
		Oracle:                     oracle,
		Mint:                       mint,
		DepositBalance:             big.NewInt(0),
		BorrowBalance:              big.NewInt(0),
		CumulativeDepositInterest:  big.NewInt(10_000_000_000),
		CumulativeBorrowInterest:   big.NewInt(10_000_000_000),
		InitialAssetWeight:         10000,
		MaintenanceAssetWeight:     10000,
		InitialLiabilityWeight:     10000,
		MaintenanceLiabilityWeight: 10000,
		Decimals:                   decimals,
		MarketIndex:                marketIndex,
	})
	require.NoError(t, fetcher.SetEncodable(oracle, constants.PYTH_RECEIVER_PROGRAM_ID, &pyth.PriceUpdateV2{
		VerificationLevel: pyth.VerificationLevel{Full: true},
		PriceMessage:      pyth.PriceMessage{Price: price, Exponent: -8},
	}))
}

// newTestApp seeds a devnet vault holding 2 SOL at $100 and nothing else.
func newTestApp(t *testing.T) (*app, *accounts.MemoryFetcher, solana.PublicKey, *bytes.Buffer) {
	fetcher := accounts.NewMemoryFetcher()
	fetcher.SetSlot(10)
	seedMarket(t, fetcher, 0, constants.USDC_MINT_DEVNET, 6, 100_000_000)
	seedMarket(t, fetcher, 1, spl_token.NATIVE_MINT, 9, 10_000_000_000)

	owner := solana.NewWallet().PublicKey()
	vault := addresses.GetVaultPublicKey(constants.QUARTZ_PROGRAM_ID, owner)
	require.NoError(t, fetcher.SetEncodable(vault, constants.QUARTZ_PROGRAM_ID, quartzlib.Vault{Owner: owner}))
	user := &drift.User{Authority: vault}
	user.SpotPositions[0] = drift.SpotPosition{ScaledBalance: 2_000_000_000, MarketIndex: 1}
	fetcher.SetDriftUser(vault, user)

	client, err := quartz.NewClient(quartz.ClientConfig{Env: constants.EnvDevnet, Fetcher: fetcher, Logger: zerolog.Nop()})
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return &app{client: client, out: out, logger: zerolog.Nop()}, fetcher, owner, out
}

// go test --run TestHealthCommand

func TestHealthCommand(t *testing.T) {
	app, _, owner, out := newTestApp(t)
	require.NoError(t, app.runCommand(context.Background(), "health", []string{owner.String()}))
	assert.Regexp(t, `health\s+100`, out.String())
	assert.Regexp(t, `collateral\s+200 USDC`, out.String())
	assert.Regexp(t, `margin requirement\s+0 USDC`, out.String())
}

func TestLimitsCommand(t *testing.T) {
	app, _, owner, out := newTestApp(t)
	require.NoError(t, app.runCommand(context.Background(), "limits", []string{"-reduce-only", owner.String()}))
	assert.Contains(t, out.String(), "withdrawal limit")
	assert.Regexp(t, `1\s+SOL\s+2\s+`, out.String())
}

func TestOrdersCommand(t *testing.T) {
	app, fetcher, owner, out := newTestApp(t)
	require.NoError(t, app.runCommand(context.Background(), "orders", []string{owner.String()}))
	assert.Contains(t, out.String(), "no open withdraw orders")

	out.Reset()
	order := solana.NewWallet().PublicKey()
	require.NoError(t, fetcher.SetEncodable(order, constants.QUARTZ_PROGRAM_ID, quartzlib.WithdrawOrder{
		TimeLock:         quartzlib.TimeLock{Owner: owner, ReleaseSlot: 20},
		AmountBaseUnits:  500_000_000,
		DriftMarketIndex: 1,
		Destination:      owner,
	}))
	require.NoError(t, app.runCommand(context.Background(), "orders", []string{owner.String()}))
	assert.Contains(t, out.String(), order.String())
	assert.Contains(t, out.String(), "0.5 SOL")
}

func TestCommandValidation(t *testing.T) {
	app, _, owner, _ := newTestApp(t)
	ctx := context.Background()

	err := app.runCommand(ctx, "launch", nil)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	err = app.runCommand(ctx, "health", nil)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	err = app.runCommand(ctx, "health", []string{"not-a-key"})
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	err = app.runCommand(ctx, "deposit", []string{owner.String(), "one", "10"})
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	err = app.runCommand(ctx, "health", []string{solana.NewWallet().PublicKey().String()})
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	err = run(ctx, nil, &bytes.Buffer{})
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
}

package quartz

import (
	"context"
	"math/big"
	"testing"
	"time"

	"quartzgo/accounts"
	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/lib/drift"
	"quartzgo/lib/pyth"
	quartzlib "quartzgo/lib/quartz"
	spl_token "quartzgo/lib/spl-token"

	"github.com/davecgh/go-spew/spew"
	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	fetcher *accounts.MemoryFetcher
	client  *Client
	owner   solana.PublicKey
	oracles map[uint16]solana.PublicKey
}

func seedSpotMarket(t *testing.T, env *testEnv, marketIndex uint16, mint solana.PublicKey, decimals uint32, price int64, assetWeight, liabilityWeight uint32) {
	oracle := solana.NewWallet().PublicKey()
	env.oracles[marketIndex] = oracle
	env.fetcher.SetSpotMarket(&drift.SpotMarket{
		Oracle:                     oracle,
		Mint:                       mint,
		DepositBalance:             big.NewInt(0),
		BorrowBalance:              big.NewInt(0),
		CumulativeDepositInterest:  big.NewInt(10_000_000_000),
		CumulativeBorrowInterest:   big.NewInt(10_000_000_000),
		InitialAssetWeight:         assetWeight,
		MaintenanceAssetWeight:     assetWeight,
		InitialLiabilityWeight:     liabilityWeight,
		MaintenanceLiabilityWeight: liabilityWeight,
		Decimals:                   decimals,
		MarketIndex:                marketIndex,
	})
	require.NoError(t, env.fetcher.SetEncodable(oracle, constants.PYTH_RECEIVER_PROGRAM_ID, &pyth.PriceUpdateV2{
		VerificationLevel: pyth.VerificationLevel{Full: true},
		PriceMessage:      pyth.PriceMessage{Price: price, Exponent: -8},
	}))
	env.fetcher.SetAccount(mint, spl_token.TOKEN_PROGRAM_ID, nil)
}

// newTestEnv seeds a devnet vault holding 1 SOL at $100 against a $40 USDC
// borrow, which is health 50.
func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{
		fetcher: accounts.NewMemoryFetcher(),
		owner:   solana.NewWallet().PublicKey(),
		oracles: make(map[uint16]solana.PublicKey),
	}
	env.fetcher.SetSlot(42)
	seedSpotMarket(t, env, 0, constants.USDC_MINT_DEVNET, 6, 100_000_000, 10000, 10000)
	seedSpotMarket(t, env, 1, spl_token.NATIVE_MINT, 9, 10_000_000_000, 8000, 12000)

	vault := addresses.GetVaultPublicKey(constants.QUARTZ_PROGRAM_ID, env.owner)
	require.NoError(t, env.fetcher.SetEncodable(vault, constants.QUARTZ_PROGRAM_ID, quartzlib.Vault{
		Owner:                           env.owner,
		SpendLimitPerTransaction:        10_000_000,
		SpendLimitPerTimeframe:          20_000_000,
		RemainingSpendLimitPerTimeframe: 5_000_000,
		NextTimeframeResetTimestamp:     2_000_000_000,
		TimeframeInSeconds:              86_400,
	}))
	user := &drift.User{Authority: vault}
	user.SpotPositions[0] = drift.SpotPosition{ScaledBalance: 40_000_000_000, MarketIndex: 0, BalanceType: drift.SpotBalanceTypeBorrow}
	user.SpotPositions[1] = drift.SpotPosition{ScaledBalance: 1_000_000_000, MarketIndex: 1}
	env.fetcher.SetDriftUser(vault, user)

	client, err := NewClient(ClientConfig{
		Env:                 constants.EnvDevnet,
		Fetcher:             env.fetcher,
		Logger:              zerolog.Nop(),
		SpendFeeDestination: solana.NewWallet().PublicKey(),
	})
	require.NoError(t, err)
	client.now = func() time.Time { return time.Unix(1_900_000_000, 0) }
	env.client = client
	return env
}

func (env *testEnv) user(t *testing.T) *User {
	user, err := env.client.GetQuartzAccount(context.Background(), env.owner)
	require.NoError(t, err)
	return user
}

// go test --run TestNewClient

func TestNewClient(t *testing.T) {
	fetcher := accounts.NewMemoryFetcher()

	_, err := NewClient(ClientConfig{Env: constants.EnvDevnet})
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	_, err = NewClient(ClientConfig{Env: "localnet", Fetcher: fetcher})
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	_, err = NewClient(ClientConfig{Env: constants.EnvDevnet, Fetcher: fetcher, HealthBuffer: 100})
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	client, err := NewClient(ClientConfig{Env: constants.EnvMainnetBeta, Fetcher: fetcher})
	require.NoError(t, err)
	assert.Equal(t, constants.QUARTZ_PROGRAM_ID, client.ProgramId())
	assert.Equal(t, []solana.PublicKey{constants.QUARTZ_ADDRESS_TABLE}, client.LookupTables())
}

// go test --run TestGetQuartzAccount

func TestGetQuartzAccount(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	spew.Dump("TestGetQuartzAccount Result", user.Snapshot.Balances)

	assert.Equal(t, env.owner, user.Owner)
	assert.Equal(t, addresses.GetVaultPublicKey(constants.QUARTZ_PROGRAM_ID, env.owner), user.Vault)
	assert.Equal(t, uint64(10_000_000), user.Account.SpendLimitPerTransaction)

	health, err := user.GetHealth()
	require.NoError(t, err)
	assert.Equal(t, 50, health)

	_, err = env.client.GetQuartzAccount(context.Background(), solana.NewWallet().PublicKey())
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestHealthBuffer(t *testing.T) {
	env := newTestEnv(t)
	env.client.healthBuffer = 10
	health, err := env.user(t).GetHealth()
	require.NoError(t, err)
	assert.Equal(t, 44, health)
}

func TestGetMultipleQuartzAccounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	noDriftUser := solana.NewWallet().PublicKey()
	require.NoError(t, env.fetcher.SetEncodable(
		addresses.GetVaultPublicKey(constants.QUARTZ_PROGRAM_ID, noDriftUser),
		constants.QUARTZ_PROGRAM_ID,
		quartzlib.Vault{Owner: noDriftUser},
	))

	users, err := env.client.GetMultipleQuartzAccounts(ctx, []solana.PublicKey{env.owner, noDriftUser})
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.NotNil(t, users[0])
	assert.Nil(t, users[1])
	assert.Equal(t, int64(1_000_000_000), users[0].Snapshot.Balance(1).Int64())

	_, err = env.client.GetMultipleQuartzAccounts(ctx, []solana.PublicKey{env.owner, solana.NewWallet().PublicKey()})
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	users, err = env.client.GetMultipleQuartzAccounts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	borrow, err := env.client.GetBorrowRate(ctx, 0)
	require.NoError(t, err)
	deposit, err := env.client.GetDepositRate(ctx, 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, deposit.Cmp(borrow), 0)

	_, err = env.client.GetBorrowRate(ctx, 9)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestMakeInitQuartzUserIxs(t *testing.T) {
	env := newTestEnv(t)
	owner := solana.NewWallet().PublicKey()

	bundle, err := env.client.MakeInitQuartzUserIxs(owner, SpendLimits{
		PerTransaction:     1_000_000,
		PerTimeframe:       5_000_000,
		TimeframeInSeconds: 86_400,
	})
	require.NoError(t, err)
	require.Len(t, bundle.Instructions, 1)
	assert.Empty(t, bundle.Signers)
	assert.Equal(t, []solana.PublicKey{constants.QUARTZ_ADDRESS_TABLE}, bundle.LookupTables)

	ix := bundle.Instructions[0]
	data, err := ix.Data()
	require.NoError(t, err)
	decoded, err := quartzlib.DecodeInstruction(ix.Accounts(), data)
	require.NoError(t, err)
	assert.Equal(t, "InitUser", decoded.Name())
	initUser := decoded.Impl.(*quartzlib.InitUser)
	assert.Equal(t, uint64(5_000_000), *initUser.SpendLimitPerTimeframe)

	accounts := ix.Accounts()
	vault := addresses.GetVaultPublicKey(constants.QUARTZ_PROGRAM_ID, owner)
	assert.Equal(t, vault, accounts[0].PublicKey)
	assert.Equal(t, owner, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsSigner)
	assert.Equal(t, addresses.GetUserAccountPublicKey(constants.DRIFT_PROGRAM_ID, vault, 0), accounts[3].PublicKey)

	_, err = env.client.MakeInitQuartzUserIxs(owner, SpendLimits{PerTransaction: 2, PerTimeframe: 1, TimeframeInSeconds: 1})
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
}

func TestMakeReclaimBridgeRentIxs(t *testing.T) {
	env := newTestEnv(t)
	eventData := solana.NewWallet().PublicKey()
	reclaimer := solana.NewWallet().PublicKey()

	bundle, err := env.client.MakeReclaimBridgeRentIxs(eventData, []byte{1, 2, 3}, reclaimer)
	require.NoError(t, err)
	accounts := bundle.Instructions[0].Accounts()
	require.Len(t, accounts, 5)
	assert.Equal(t, reclaimer, accounts[0].PublicKey)
	assert.Equal(t, eventData, accounts[3].PublicKey)
	assert.Equal(t, constants.MESSAGE_TRANSMITTER_PROGRAM_ID, accounts[4].PublicKey)

	_, err = env.client.MakeReclaimBridgeRentIxs(eventData, nil, reclaimer)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
}

// go test --run TestClientsKeepTheirProgramId

func TestClientsKeepTheirProgramId(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	otherProgram := solana.NewWallet().PublicKey()
	other, err := NewClient(ClientConfig{Env: constants.EnvDevnet, Fetcher: env.fetcher, ProgramId: otherProgram})
	require.NoError(t, err)
	assert.Equal(t, otherProgram, other.ProgramId())

	bundle, err := user.MakeInitiateWithdrawIxs(1_000, 1, false, solana.PublicKey{}, false)
	require.NoError(t, err)
	for _, ix := range bundle.Instructions {
		assert.Equal(t, constants.QUARTZ_PROGRAM_ID, ix.ProgramID())
	}

	owner := solana.NewWallet().PublicKey()
	bundle, err = other.MakeInitQuartzUserIxs(owner, SpendLimits{})
	require.NoError(t, err)
	ix := bundle.Instructions[0]
	assert.Equal(t, otherProgram, ix.ProgramID())
	assert.Equal(t, addresses.GetVaultPublicKey(otherProgram, owner), ix.Accounts()[0].PublicKey)
}

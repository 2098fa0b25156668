package accounts

import (
	"context"
	"math/big"
	"testing"

	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/lib/drift"
	"quartzgo/lib/pyth"
	"quartzgo/lib/quartz"
	"quartzgo/math"

	"github.com/davecgh/go-spew/spew"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMarket(t *testing.T, fetcher *MemoryFetcher, marketIndex uint16, decimals uint32, price int64, assetWeight, liabilityWeight uint32) {
	oracle := solana.NewWallet().PublicKey()
	fetcher.SetSpotMarket(&drift.SpotMarket{
		Oracle:                     oracle,
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
	update := &pyth.PriceUpdateV2{
		VerificationLevel: pyth.VerificationLevel{Full: true},
		PriceMessage:      pyth.PriceMessage{Price: price, Exponent: -8},
	}
	require.NoError(t, fetcher.SetEncodable(oracle, constants.PYTH_RECEIVER_PROGRAM_ID, update))
}

func seedDevnetVault(t *testing.T) (*MemoryFetcher, solana.PublicKey, solana.PublicKey) {
	fetcher := NewMemoryFetcher()
	fetcher.SetSlot(42)
	seedMarket(t, fetcher, 0, 6, 100_000_000, 10000, 10000)
	seedMarket(t, fetcher, 1, 9, 10_000_000_000, 8000, 12000)

	owner := solana.NewWallet().PublicKey()
	vault := addresses.GetVaultPublicKey(constants.QUARTZ_PROGRAM_ID, owner)
	user := &drift.User{Authority: vault}
	user.SpotPositions[0] = drift.SpotPosition{ScaledBalance: 40_000_000_000, MarketIndex: 0, BalanceType: drift.SpotBalanceTypeBorrow}
	user.SpotPositions[1] = drift.SpotPosition{ScaledBalance: 1_000_000_000, MarketIndex: 1}
	fetcher.SetDriftUser(vault, user)
	return fetcher, owner, vault
}

// go test --run TestLoadSnapshot

func TestLoadSnapshot(t *testing.T) {
	fetcher, owner, vault := seedDevnetVault(t)

	snapshot, err := LoadSnapshot(context.Background(), fetcher, constants.EnvDevnet, owner, vault)
	require.NoError(t, err)
	spew.Dump("TestLoadSnapshot Result", snapshot.Balances)

	assert.Equal(t, uint64(42), snapshot.Slot)
	assert.Equal(t, int64(-40_000_000), snapshot.Balance(0).Int64())
	assert.Equal(t, int64(1_000_000_000), snapshot.Balance(1).Int64())
	require.Len(t, snapshot.Markets, 2)
	assert.Equal(t, int64(100_000_000), snapshot.Markets[1].OraclePrice.Int64())
	assert.Equal(t, int64(1_000_000), snapshot.Markets[0].OraclePrice.Int64())

	health, err := math.Health(snapshot, nil)
	require.NoError(t, err)
	assert.Equal(t, 50, health)
}

func TestLoadSnapshotMissingUser(t *testing.T) {
	fetcher, owner, _ := seedDevnetVault(t)
	_, err := LoadSnapshot(context.Background(), fetcher, constants.EnvDevnet, owner, solana.NewWallet().PublicKey())
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestLoadSnapshotFetchesUnlistedMarkets(t *testing.T) {
	fetcher, owner, vault := seedDevnetVault(t)
	seedMarket(t, fetcher, 7, 6, 50_000_000, 9000, 11000)

	user := &drift.User{Authority: vault}
	user.SpotPositions[0] = drift.SpotPosition{ScaledBalance: 2_000_000_000, MarketIndex: 7}
	fetcher.SetDriftUser(vault, user)

	snapshot, err := LoadSnapshot(context.Background(), fetcher, constants.EnvDevnet, owner, vault)
	require.NoError(t, err)
	assert.Equal(t, int64(2_000_000), snapshot.Balance(7).Int64())
	assert.Contains(t, snapshot.Markets, uint16(7))
}

func TestFetchOpenWithdrawOrders(t *testing.T) {
	fetcher := NewMemoryFetcher()
	owner := solana.NewWallet().PublicKey()
	other := solana.NewWallet().PublicKey()

	mine := solana.NewWallet().PublicKey()
	theirs := solana.NewWallet().PublicKey()
	hold := solana.NewWallet().PublicKey()
	require.NoError(t, fetcher.SetEncodable(mine, constants.QUARTZ_PROGRAM_ID, quartz.WithdrawOrder{
		TimeLock: quartz.TimeLock{Owner: owner, ReleaseSlot: 10}, AmountBaseUnits: 5, DriftMarketIndex: 1,
	}))
	require.NoError(t, fetcher.SetEncodable(theirs, constants.QUARTZ_PROGRAM_ID, quartz.WithdrawOrder{
		TimeLock: quartz.TimeLock{Owner: other}, AmountBaseUnits: 7,
	}))
	require.NoError(t, fetcher.SetEncodable(hold, constants.QUARTZ_PROGRAM_ID, quartz.SpendHold{
		TimeLock: quartz.TimeLock{Owner: owner}, AmountUsdcBaseUnits: 9,
	}))

	orders, err := FetchOpenWithdrawOrders(context.Background(), fetcher, constants.QUARTZ_PROGRAM_ID, owner)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine, orders[0].PublicKey)
	assert.Equal(t, uint64(5), WithdrawOrders(orders)[0].AmountBaseUnits)

	_, err = FetchWithdrawOrder(context.Background(), fetcher, hold)
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))

	_, err = FetchWithdrawOrder(context.Background(), fetcher, solana.NewWallet().PublicKey())
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	spendHold, err := FetchSpendHold(context.Background(), fetcher, hold)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), spendHold.AmountUsdcBaseUnits)
}

func TestFetchVaults(t *testing.T) {
	fetcher := NewMemoryFetcher()
	owner := solana.NewWallet().PublicKey()
	missing := solana.NewWallet().PublicKey()
	vault := quartz.Vault{Owner: owner, SpendLimitPerTransaction: 100}
	require.NoError(t, fetcher.SetEncodable(addresses.GetVaultPublicKey(constants.QUARTZ_PROGRAM_ID, owner), constants.QUARTZ_PROGRAM_ID, vault))

	fetched, err := FetchVault(context.Background(), fetcher, constants.QUARTZ_PROGRAM_ID, owner)
	require.NoError(t, err)
	assert.Equal(t, vault, *fetched)

	_, err = FetchVault(context.Background(), fetcher, constants.QUARTZ_PROGRAM_ID, missing)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	vaults, err := FetchMultipleVaults(context.Background(), fetcher, constants.QUARTZ_PROGRAM_ID, []solana.PublicKey{missing, owner})
	require.NoError(t, err)
	require.Len(t, vaults, 2)
	assert.Nil(t, vaults[0])
	assert.Equal(t, uint64(100), vaults[1].SpendLimitPerTransaction)
}

func TestFilters(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	data := append(append([]byte{}, quartz.WithdrawOrderDiscriminator[:]...), owner[:]...)

	assert.True(t, MatchesFilters(data, []rpc.RPCFilter{GetWithdrawOrderFilter(), GetTimeLockOwnerFilter(owner)}))
	assert.False(t, MatchesFilters(data, []rpc.RPCFilter{GetSpendHoldFilter()}))
	assert.False(t, MatchesFilters(data, []rpc.RPCFilter{GetTimeLockOwnerFilter(solana.NewWallet().PublicKey())}))
	assert.False(t, MatchesFilters(data[:20], []rpc.RPCFilter{GetTimeLockOwnerFilter(owner)}))
	assert.False(t, MatchesFilters(data, []rpc.RPCFilter{{DataSize: 1}}))
	assert.Equal(t, quartz.VaultDiscriminator[:], []byte(GetVaultFilter().Memcmp.Bytes))
}

func TestChunks(t *testing.T) {
	keys := make([]int, 250)
	parts := chunks(keys, GET_MULTIPLE_ACCOUNTS_CHUNK_SIZE)
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 50)
	assert.Empty(t, chunks([]int{}, 10))
}

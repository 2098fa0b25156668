package drift

import (
	"math/big"
	"testing"

	"quartzgo/errs"

	"github.com/davecgh/go-spew/spew"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test --run TestDecodeUser

func TestDecodeUser(t *testing.T) {
	user := &User{
		Authority: solana.NewWallet().PublicKey(),
		Delegate:  solana.NewWallet().PublicKey(),
	}
	copy(user.Name[:], "Quartz Vault")
	user.SpotPositions[0] = SpotPosition{ScaledBalance: 2_000_000_000, MarketIndex: 1, CumulativeDeposits: 2_000_000_000}
	user.SpotPositions[1] = SpotPosition{ScaledBalance: 150_000_000, MarketIndex: 0, BalanceType: SpotBalanceTypeBorrow}
	user.SpotPositions[2] = SpotPosition{MarketIndex: 3, OpenOrders: 1, OpenBids: 10, OpenAsks: -5}

	data := user.Encode()
	require.Len(t, data, UserSize)

	decoded, err := DecodeUser(data)
	require.NoError(t, err)
	spew.Dump("TestDecodeUser Result", decoded.ActiveSpotPositions())

	assert.Equal(t, *user, *decoded)
	assert.Len(t, decoded.ActiveSpotPositions(), 3)
	assert.Equal(t, SpotBalanceTypeBorrow, decoded.GetSpotPosition(0).BalanceType)
	assert.Equal(t, int64(-5), decoded.GetSpotPosition(3).OpenAsks)
	assert.Nil(t, decoded.GetSpotPosition(4))
	assert.Equal(t, "borrow", SpotBalanceTypeBorrow.String())
}

// go test --run TestDecodeSpotMarket

func TestDecodeSpotMarket(t *testing.T) {
	market := &SpotMarket{
		Pubkey:                     solana.NewWallet().PublicKey(),
		Oracle:                     solana.NewWallet().PublicKey(),
		Mint:                       solana.SolMint,
		Vault:                      solana.NewWallet().PublicKey(),
		InsuranceFund:              InsuranceFund{TotalFactor: 100_000, UserFactor: 50_000},
		DepositBalance:             big.NewInt(5_000_000_000_000),
		BorrowBalance:              new(big.Int).Lsh(big.NewInt(1), 70),
		CumulativeDepositInterest:  big.NewInt(10_500_000_000),
		CumulativeBorrowInterest:   big.NewInt(11_000_000_000),
		InitialAssetWeight:         8000,
		MaintenanceAssetWeight:     9000,
		InitialLiabilityWeight:     12000,
		MaintenanceLiabilityWeight: 11000,
		ImfFactor:                  1000,
		OptimalUtilization:         700_000,
		OptimalBorrowRate:          100_000,
		MaxBorrowRate:              1_000_000,
		Decimals:                   9,
		MarketIndex:                1,
	}
	copy(market.Name[:], "SOL")

	decoded, err := DecodeSpotMarket(market.Encode())
	require.NoError(t, err)
	spew.Dump("TestDecodeSpotMarket Result", decoded.MarketIndex, decoded.Decimals)
	assert.Equal(t, *market, *decoded)
}

func TestDecodeRejectsForeignAccounts(t *testing.T) {
	market := (&SpotMarket{MarketIndex: 2}).Encode()

	_, err := DecodeUser(market)
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))

	_, err = DecodeSpotMarket(market[:100])
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))

	decoded, err := DecodeSpotMarket(market)
	require.NoError(t, err)
	assert.Equal(t, int64(0), decoded.DepositBalance.Int64())
}

package math

import (
	"math/big"
	"testing"

	"quartzgo/errs"
	"quartzgo/lib/drift"
	"quartzgo/lib/pyth"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usdcSpotMarket(depositTokens, borrowTokens int64) *drift.SpotMarket {
	// cumulative interest at 1.0 scales token amounts by 1e3 for 6 decimals
	return &drift.SpotMarket{
		InsuranceFund:             drift.InsuranceFund{TotalFactor: 100_000},
		DepositBalance:            big.NewInt(depositTokens * 1_000),
		BorrowBalance:             big.NewInt(borrowTokens * 1_000),
		CumulativeDepositInterest: big.NewInt(10_000_000_000),
		CumulativeBorrowInterest:  big.NewInt(10_000_000_000),
		OptimalUtilization:        800_000,
		OptimalBorrowRate:         100_000,
		MaxBorrowRate:             1_000_000,
		Decimals:                  6,
	}
}

func TestInterestRates(t *testing.T) {
	market := usdcSpotMarket(1_000_000, 500_000)
	assert.Equal(t, int64(500_000), CalculateUtilization(market).Int64())
	assert.Equal(t, int64(62_500), GetBorrowRate(market).Int64())
	assert.Equal(t, int64(28_125), GetDepositRate(market).Int64())

	market = usdcSpotMarket(1_000_000, 900_000)
	assert.Equal(t, int64(550_000), GetBorrowRate(market).Int64())

	empty := usdcSpotMarket(0, 0)
	assert.Equal(t, int64(0), GetBorrowRate(empty).Int64())
	assert.Equal(t, int64(0), GetDepositRate(empty).Int64())
}

func TestBorrowTokenAmountRoundsUp(t *testing.T) {
	market := usdcSpotMarket(0, 0)
	market.CumulativeBorrowInterest = big.NewInt(10_300_000_000)

	// 970_874 * 1.03 = 999_999.22
	position := &drift.SpotPosition{ScaledBalance: 970_874_000, BalanceType: drift.SpotBalanceTypeBorrow}
	tokens := GetTokenAmount(big.NewInt(970_874_000), market, drift.SpotBalanceTypeBorrow)
	assert.Equal(t, int64(1_000_000), tokens.Int64())
	assert.Equal(t, "-1000000", GetSpotPositionTokenAmount(position, market).String())
}

func TestDecimalConversion(t *testing.T) {
	assert.Equal(t, "1.5", BaseUnitsToDecimal(big.NewInt(1_500_000), 6).String())
	assert.Equal(t, "-0.000000001", BaseUnitsToDecimal(big.NewInt(-1), 9).String())
	assert.Equal(t, int64(1_500_000_000), DecimalToBaseUnits(decimal.RequireFromString("1.5"), 9).Int64())
	assert.Equal(t, int64(1_000_000), DecimalToBaseUnits(decimal.RequireFromString("1.0000009"), 6).Int64())
	assert.Equal(t, int64(145), ConvertToNumber(big.NewInt(145_234_567)))
}

func TestOraclePrice(t *testing.T) {
	message := &pyth.PriceMessage{Price: 14_523_456_789, Conf: 14_523_457, Exponent: -8, PublishTime: 1_000}
	price, err := OraclePrice(message)
	require.NoError(t, err)
	assert.Equal(t, int64(145_234_567), price.Int64())

	message.Price = -1
	_, err = OraclePrice(message)
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
}

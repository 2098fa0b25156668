package math

import (
	"math/big"

	"quartzgo/constants"
	"quartzgo/utils"

	"github.com/shopspring/decimal"
)

// BaseUnitsToDecimal renders an integer base-unit amount as a token amount.
func BaseUnitsToDecimal(amount *big.Int, decimals uint32) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -int32(decimals))
}

// DecimalToBaseUnits truncates a token amount to base units.
func DecimalToBaseUnits(amount decimal.Decimal, decimals uint32) *big.Int {
	return amount.Shift(int32(decimals)).BigInt()
}

// ConvertToNumber reduces a fixed-point value to its whole part at precision,
// PRICE_PRECISION by default.
func ConvertToNumber(bigNumber *big.Int, precision ...*big.Int) int64 {
	if bigNumber == nil {
		return 0
	}
	precisionx := constants.PRICE_PRECISION
	if len(precision) > 0 {
		precisionx = precision[0]
	}
	return utils.DivX(bigNumber, precisionx).Int64()
}

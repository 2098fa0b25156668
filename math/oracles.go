package math

import (
	"math/big"

	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/lib/pyth"
)

// OraclePrice converts a Pyth price message to PRICE_PRECISION, rejecting
// prices that cannot value collateral.
func OraclePrice(message *pyth.PriceMessage) (*big.Int, error) {
	price := message.PricePrecision(int32(constants.PRICE_PRECISION_EXP.Int64()))
	if price.Sign() <= 0 {
		return nil, errs.InvalidInput("math.OraclePrice", "non-positive oracle price %s for feed %x", message.GetPrice(), message.FeedId)
	}
	return price, nil
}

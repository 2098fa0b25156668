package math

import (
	"math/big"

	"quartzgo/lib/drift"
	"quartzgo/utils"
)

// GetSpotPositionTokenAmount is the signed token amount a Drift spot
// position holds, interest included.
func GetSpotPositionTokenAmount(
	position *drift.SpotPosition,
	spotMarket *drift.SpotMarket,
) *big.Int {
	tokenAmount := GetTokenAmount(utils.BN(position.ScaledBalance), spotMarket, position.BalanceType)
	return GetSignedTokenAmount(tokenAmount, position.BalanceType)
}

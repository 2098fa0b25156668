package math

import (
	"math/big"

	"quartzgo/constants"
	"quartzgo/utils"
)

// MarginTier selects which pair of market weights applies.
type MarginTier uint8

const (
	MarginTierInitial MarginTier = iota
	MarginTierMaintenance
)

func (t MarginTier) String() string {
	if t == MarginTierMaintenance {
		return "maintenance"
	}
	return "initial"
}

func CalculateSizePremiumLiabilityWeight(
	size *big.Int,
	imfFactor *big.Int,
	liabilityWeight *big.Int,
	precision *big.Int,
) *big.Int {
	if imfFactor.Cmp(constants.ZERO) == 0 {
		return liabilityWeight
	}

	sizeSqrt := utils.SquareRootBN(utils.AddX(utils.MulX(utils.AbsX(size), utils.BN(10)), utils.BN(1))) //1e9 -> 1e10 -> 1e5

	liabilityWeightNumerator := utils.SubX(liabilityWeight, utils.DivX(liabilityWeight, utils.BN(5)))

	denom := utils.DivX(
		utils.MulX(
			utils.BN(100000),
			constants.SPOT_MARKET_IMF_PRECISION,
		),
		precision,
	)

	sizePremiumLiabilityWeight := utils.AddX(liabilityWeightNumerator, utils.DivX(utils.MulX(sizeSqrt, imfFactor), denom))

	return utils.Max(liabilityWeight, sizePremiumLiabilityWeight)
}

func CalculateSizeDiscountAssetWeight(
	size *big.Int,
	imfFactor *big.Int,
	assetWeight *big.Int,
) *big.Int {
	if imfFactor.Cmp(constants.ZERO) == 0 {
		return assetWeight
	}
	sizeSqrt := utils.SquareRootBN(utils.AddX(utils.MulX(utils.AbsX(size), utils.BN(10)), utils.BN(1))) //1e9 -> 1e10 -> 1e5
	imfNumerator := utils.AddX(
		constants.SPOT_MARKET_IMF_PRECISION,
		utils.DivX(constants.SPOT_MARKET_IMF_PRECISION, utils.BN(10)),
	)

	sizeDiscountAssetWeight := utils.DivX(
		utils.MulX(imfNumerator, constants.SPOT_MARKET_WEIGHT_PRECISION),
		utils.AddX(
			constants.SPOT_MARKET_IMF_PRECISION,
			utils.DivX(utils.MulX(sizeSqrt, imfFactor), utils.BN(100000)),
		),
	)

	return utils.Min(assetWeight, sizeDiscountAssetWeight)
}

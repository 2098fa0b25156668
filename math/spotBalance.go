package math

import (
	"math/big"

	"quartzgo/constants"
	"quartzgo/lib/drift"
	"quartzgo/types"
	"quartzgo/utils"
)

func precisionIncrease(decimals uint32) *big.Int {
	return utils.PowX(utils.BN(10), utils.BN(19-int64(decimals)))
}

//GetBalance
//GetTokenAmount
/**
 * Calculates the spot token amount including any accumulated interest.
 *
 * @param balanceAmount - the scaled balance, typically `SpotPosition.ScaledBalance`
 * @return the token amount in base units of the market mint
 */
func GetTokenAmount(
	balanceAmount *big.Int,
	spotMarket *drift.SpotMarket,
	balanceType drift.SpotBalanceType,
) *big.Int {
	if balanceType == drift.SpotBalanceTypeDeposit {
		return utils.DivX(utils.MulX(balanceAmount, spotMarket.CumulativeDepositInterest), precisionIncrease(spotMarket.Decimals))
	}
	return utils.DivCeilX(utils.MulX(balanceAmount, spotMarket.CumulativeBorrowInterest), precisionIncrease(spotMarket.Decimals))
}

// GetSignedTokenAmount returns the token amount negated for borrows.
func GetSignedTokenAmount(
	tokenAmount *big.Int,
	balanceType drift.SpotBalanceType,
) *big.Int {
	if balanceType == drift.SpotBalanceTypeDeposit {
		return utils.IntX(tokenAmount)
	}
	return utils.NegX(utils.AbsX(tokenAmount))
}

// GetTokenValue
/**
 * Values a token amount at an oracle price.
 *
 * @param tokenAmount - base units, signed
 * @param oraclePrice - at PRICE_PRECISION
 * @return the signed value at QUOTE_PRECISION
 */
func GetTokenValue(
	tokenAmount *big.Int,
	decimals uint32,
	oraclePrice *big.Int,
) *big.Int {
	if tokenAmount.Cmp(constants.ZERO) == 0 {
		return utils.BN(0)
	}
	return utils.DivX(utils.MulX(tokenAmount, oraclePrice), constants.TenPow(decimals))
}

// GetTokenAmountForValue is the inverse of GetTokenValue, truncated.
func GetTokenAmountForValue(
	value *big.Int,
	decimals uint32,
	oraclePrice *big.Int,
) *big.Int {
	if oraclePrice.Sign() <= 0 {
		return utils.BN(0)
	}
	return utils.DivX(utils.MulX(value, constants.TenPow(decimals)), oraclePrice)
}

func sizeInAmmReservePrecision(size *big.Int, decimals uint32) *big.Int {
	sizePrecision := constants.TenPow(decimals)
	if sizePrecision.Cmp(constants.AMM_RESERVE_PRECISION) > 0 {
		return utils.DivX(size, utils.DivX(sizePrecision, constants.AMM_RESERVE_PRECISION))
	}
	return utils.DivX(utils.MulX(size, constants.AMM_RESERVE_PRECISION), sizePrecision)
}

// CalculateAssetWeight is the asset weight of a deposit of balanceAmount,
// discounted for size when the market carries an IMF factor.
func CalculateAssetWeight(
	balanceAmount *big.Int,
	market *types.MarketState,
	tier MarginTier,
) *big.Int {
	assetWeight := utils.BN(market.InitialAssetWeight)
	if tier == MarginTierMaintenance {
		assetWeight = utils.BN(market.MaintenanceAssetWeight)
	}
	return CalculateSizeDiscountAssetWeight(
		sizeInAmmReservePrecision(balanceAmount, market.Decimals),
		utils.BN(market.ImfFactor),
		assetWeight,
	)
}

// CalculateLiabilityWeight is the liability weight of a borrow of size,
// raised for size when the market carries an IMF factor.
func CalculateLiabilityWeight(
	size *big.Int,
	market *types.MarketState,
	tier MarginTier,
) *big.Int {
	liabilityWeight := utils.BN(market.InitialLiabilityWeight)
	if tier == MarginTierMaintenance {
		liabilityWeight = utils.BN(market.MaintenanceLiabilityWeight)
	}
	return CalculateSizePremiumLiabilityWeight(
		sizeInAmmReservePrecision(size, market.Decimals),
		utils.BN(market.ImfFactor),
		liabilityWeight,
		constants.SPOT_MARKET_WEIGHT_PRECISION,
	)
}

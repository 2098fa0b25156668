package math

import (
	"math/big"

	"quartzgo/constants"
	"quartzgo/lib/drift"
	"quartzgo/utils"
)

// CalculateUtilization is borrows over deposits at SPOT_MARKET_UTILIZATION_PRECISION.
func CalculateUtilization(spotMarket *drift.SpotMarket) *big.Int {
	depositTokenAmount := GetTokenAmount(spotMarket.DepositBalance, spotMarket, drift.SpotBalanceTypeDeposit)
	borrowTokenAmount := GetTokenAmount(spotMarket.BorrowBalance, spotMarket, drift.SpotBalanceTypeBorrow)

	if depositTokenAmount.Sign() == 0 {
		if borrowTokenAmount.Sign() == 0 {
			return utils.BN(0)
		}
		return utils.IntX(constants.SPOT_MARKET_UTILIZATION_PRECISION)
	}
	return utils.DivX(utils.MulX(borrowTokenAmount, constants.SPOT_MARKET_UTILIZATION_PRECISION), depositTokenAmount)
}

// GetBorrowRate is the annualised borrow rate at SPOT_MARKET_RATE_PRECISION.
// The curve is linear up to the optimal utilization and steeper above it.
func GetBorrowRate(spotMarket *drift.SpotMarket) *big.Int {
	utilization := CalculateUtilization(spotMarket)
	optimalUtilization := utils.BN(spotMarket.OptimalUtilization)
	optimalRate := utils.BN(spotMarket.OptimalBorrowRate)
	maxRate := utils.BN(spotMarket.MaxBorrowRate)

	if utilization.Cmp(optimalUtilization) > 0 {
		surplusUtilization := utils.SubX(utilization, optimalUtilization)
		headroom := utils.SubX(constants.SPOT_MARKET_UTILIZATION_PRECISION, optimalUtilization)
		if headroom.Sign() <= 0 {
			return maxRate
		}
		borrowRateSlope := utils.DivX(
			utils.MulX(utils.SubX(maxRate, optimalRate), constants.SPOT_MARKET_UTILIZATION_PRECISION),
			headroom,
		)
		return utils.AddX(
			optimalRate,
			utils.DivX(utils.MulX(surplusUtilization, borrowRateSlope), constants.SPOT_MARKET_UTILIZATION_PRECISION),
		)
	}

	if optimalUtilization.Sign() == 0 {
		return optimalRate
	}
	borrowRateSlope := utils.DivX(utils.MulX(optimalRate, constants.SPOT_MARKET_UTILIZATION_PRECISION), optimalUtilization)
	return utils.DivX(utils.MulX(utilization, borrowRateSlope), constants.SPOT_MARKET_UTILIZATION_PRECISION)
}

// GetDepositRate is the borrow rate paid through to depositors, less the
// insurance fund's cut.
func GetDepositRate(spotMarket *drift.SpotMarket) *big.Int {
	utilization := CalculateUtilization(spotMarket)
	borrowRate := GetBorrowRate(spotMarket)
	passThrough := utils.SubX(constants.PERCENTAGE_PRECISION, utils.BN(spotMarket.InsuranceFund.TotalFactor))
	return utils.DivX(
		utils.MulX(borrowRate, passThrough, utilization),
		constants.SPOT_MARKET_UTILIZATION_PRECISION,
		constants.PERCENTAGE_PRECISION,
	)
}

package math

import (
	"math/big"

	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/utils"
)

// RepayValueForTargetHealth solves for the USDC value r that, taken from
// collateral weighted at assetWeight and applied to a liability weighted at
// liabilityWeight, moves health to targetHealth:
//
//	T/100 = 1 - (M - r*L/100) / (W - r*A/100)
//
// which rearranges to r = 100(W(T-100) + 100M) / (A(T-100) + 100L), rounded
// half up. Weights are whole percentages.
func RepayValueForTargetHealth(
	targetHealth int,
	weightedCollateral *big.Int,
	marginRequirement *big.Int,
	assetWeight int,
	liabilityWeight int,
) (*big.Int, error) {
	const op = "math.RepayValueForTargetHealth"
	if targetHealth < 0 || targetHealth > constants.MAX_HEALTH {
		return nil, errs.InvalidParameter(op, "target health %d must be between 0 and 100 inclusive", targetHealth)
	}
	if assetWeight < 0 || assetWeight > constants.MAX_ASSET_WEIGHT_PERCENT {
		return nil, errs.InvalidParameter(op, "repay asset weight %d must be between 0 and 100 inclusive", assetWeight)
	}
	if liabilityWeight < constants.MIN_LIABILITY_WEIGHT_PERCENT {
		return nil, errs.InvalidParameter(op, "repay liability weight %d must be at least 100", liabilityWeight)
	}
	currentHealth := HealthFromValues(weightedCollateral, marginRequirement)
	if targetHealth <= currentHealth {
		return nil, errs.InvalidParameter(op, "target health %d must be greater than current health %d", targetHealth, currentHealth)
	}

	healthDelta := utils.BN(targetHealth - constants.MAX_HEALTH)
	numerator := utils.MulX(
		utils.AddX(
			utils.MulX(weightedCollateral, healthDelta),
			utils.MulX(marginRequirement, constants.HUNDRED),
		),
		constants.HUNDRED,
	)
	denominator := utils.AddX(
		utils.MulX(utils.BN(assetWeight), healthDelta),
		utils.MulX(utils.BN(liabilityWeight), constants.HUNDRED),
	)
	if denominator.Sign() == 0 {
		return nil, errs.InvalidParameter(op, "target health %d is unreachable with the given weights", targetHealth)
	}

	repay := utils.DivRoundX(numerator, denominator)

	remaining := utils.SubX(
		utils.MulX(weightedCollateral, constants.HUNDRED),
		utils.MulX(repay, utils.BN(assetWeight)),
	)
	if remaining.Sign() == 0 {
		return nil, errs.InvalidParameter(op, "repay of %s leaves no weighted collateral", repay)
	}
	return repay, nil
}

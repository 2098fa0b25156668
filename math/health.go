package math

import (
	"math/big"

	"quartzgo/constants"
	"quartzgo/lib/quartz"
	"quartzgo/types"
	"quartzgo/utils"
)

// HealthFromValues maps weighted collateral and margin requirement to a whole
// percentage. A position without liabilities is always 100.
func HealthFromValues(weightedCollateral *big.Int, marginRequirement *big.Int) int {
	if marginRequirement.Sign() <= 0 {
		return constants.MAX_HEALTH
	}
	if weightedCollateral.Sign() <= 0 {
		return 0
	}
	health := utils.DivX(
		utils.MulX(utils.SubX(weightedCollateral, marginRequirement), constants.HUNDRED),
		weightedCollateral,
	)
	return int(utils.ClampBN(health, constants.ZERO, constants.HUNDRED).Int64())
}

// Health uses the initial tier for both sides of the ratio.
func Health(snapshot *types.Snapshot, orders []quartz.WithdrawOrder) (int, error) {
	sum, err := sumCollateral(snapshot, EffectiveBalances(snapshot, orders), MarginTierInitial)
	if err != nil {
		return 0, err
	}
	return HealthFromValues(sum.weighted, sum.margin), nil
}

// HealthWithBuffer rescales health so that `buffer` reads as zero.
func HealthWithBuffer(health int, buffer int) int {
	if buffer <= 0 {
		return health
	}
	if health >= constants.MAX_HEALTH {
		return constants.MAX_HEALTH
	}
	if health <= buffer {
		return 0
	}
	return (health - buffer) * constants.MAX_HEALTH / (constants.MAX_HEALTH - buffer)
}

// HealthWithoutBuffer maps a buffered health back onto the unbuffered scale,
// rounding up so the result never reads below the buffered value.
func HealthWithoutBuffer(health int, buffer int) int {
	if buffer <= 0 || health < 0 || health >= constants.MAX_HEALTH {
		return health
	}
	span := constants.MAX_HEALTH - buffer
	return buffer + (health*span+constants.MAX_HEALTH-1)/constants.MAX_HEALTH
}

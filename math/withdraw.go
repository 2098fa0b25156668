package math

import (
	"math/big"

	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/lib/quartz"
	"quartzgo/types"
	"quartzgo/utils"
)

// WithdrawalLimit is the largest amount of marketIndex, in base units, that
// can leave the vault while weighted collateral still covers the margin
// requirement. Deposits are released first; anything beyond them is a new
// borrow. With reduceOnly the limit stops at the current deposit.
func WithdrawalLimit(
	snapshot *types.Snapshot,
	orders []quartz.WithdrawOrder,
	marketIndex uint16,
	reduceOnly bool,
) (*big.Int, error) {
	market, err := snapshot.Market(marketIndex)
	if err != nil {
		return nil, err
	}
	if market.OraclePrice.Sign() <= 0 {
		return nil, errs.InvalidInput("math.WithdrawalLimit", "market %d has non-positive oracle price %s", marketIndex, market.OraclePrice)
	}

	balances := EffectiveBalances(snapshot, orders)
	sum, err := sumCollateral(snapshot, balances, MarginTierInitial)
	if err != nil {
		return nil, err
	}
	freeCollateral := utils.Max(utils.SubX(sum.weighted, sum.margin), constants.ZERO)

	deposit := utils.BN(0)
	if balance, ok := balances[marketIndex]; ok && balance.Sign() > 0 {
		deposit = balance
	}

	if deposit.Sign() > 0 {
		assetWeight := CalculateAssetWeight(deposit, market, MarginTierInitial)
		if assetWeight.Sign() > 0 {
			releasable := GetTokenAmountForValue(
				utils.DivX(utils.MulX(freeCollateral, constants.SPOT_MARKET_WEIGHT_PRECISION), assetWeight),
				market.Decimals,
				market.OraclePrice,
			)
			if releasable.Cmp(deposit) < 0 {
				return releasable, nil
			}
			depositValue := GetTokenValue(deposit, market.Decimals, market.OraclePrice)
			freeCollateral = utils.Max(utils.SubX(freeCollateral, weightValue(depositValue, assetWeight)), constants.ZERO)
		}
	}

	if reduceOnly {
		return deposit, nil
	}

	liabilityWeight := CalculateLiabilityWeight(constants.ZERO, market, MarginTierInitial)
	borrowable := GetTokenAmountForValue(
		utils.DivX(utils.MulX(freeCollateral, constants.SPOT_MARKET_WEIGHT_PRECISION), liabilityWeight),
		market.Decimals,
		market.OraclePrice,
	)
	return utils.AddX(deposit, borrowable), nil
}

// AvailableCredit is the USDC that can be withdrawn or spent, borrowing included.
func AvailableCredit(snapshot *types.Snapshot, orders []quartz.WithdrawOrder) (*big.Int, error) {
	return WithdrawalLimit(snapshot, orders, constants.QUOTE_SPOT_MARKET_INDEX, false)
}

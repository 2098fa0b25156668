package math

import (
	"math/big"

	"quartzgo/constants"
	"quartzgo/lib/quartz"
	"quartzgo/types"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go"
)

// GetWithdrawOrderReserves sums the amounts still pending in owner's open
// withdraw orders per market. Orders of other owners are ignored. Reduce-only
// orders can only reserve what is currently deposited.
func GetWithdrawOrderReserves(
	orders []quartz.WithdrawOrder,
	owner solana.PublicKey,
	snapshot *types.Snapshot,
) map[uint16]*big.Int {
	reserves := make(map[uint16]*big.Int)
	reduceOnly := make(map[uint16]*big.Int)
	for i := range orders {
		order := &orders[i]
		if !order.TimeLock.Owner.Equals(owner) {
			continue
		}
		bucket := reserves
		if order.ReduceOnly {
			bucket = reduceOnly
		}
		if _, ok := bucket[order.DriftMarketIndex]; !ok {
			bucket[order.DriftMarketIndex] = utils.BN(0)
		}
		bucket[order.DriftMarketIndex].Add(bucket[order.DriftMarketIndex], utils.BN(order.AmountBaseUnits))
	}

	for marketIndex, amount := range reduceOnly {
		available := snapshot.Balance(marketIndex)
		existing, ok := reserves[marketIndex]
		if ok {
			available = utils.SubX(available, existing)
		}
		capped := utils.Min(amount, utils.Max(available, utils.BN(0)))
		if ok {
			reserves[marketIndex] = utils.AddX(existing, capped)
		} else {
			reserves[marketIndex] = capped
		}
	}
	return reserves
}

// EffectiveBalances returns the snapshot balances net of open withdraw order reserves.
func EffectiveBalances(snapshot *types.Snapshot, orders []quartz.WithdrawOrder) map[uint16]*big.Int {
	balances := make(map[uint16]*big.Int, len(snapshot.Balances))
	for marketIndex := range snapshot.Balances {
		balances[marketIndex] = snapshot.Balance(marketIndex)
	}
	for marketIndex, reserved := range GetWithdrawOrderReserves(orders, snapshot.Owner, snapshot) {
		balances[marketIndex] = utils.SubX(snapshot.Balance(marketIndex), reserved)
	}
	return balances
}

type collateral struct {
	total    *big.Int
	weighted *big.Int
	margin   *big.Int
}

func sumCollateral(snapshot *types.Snapshot, balances map[uint16]*big.Int, tier MarginTier) (*collateral, error) {
	result := &collateral{total: utils.BN(0), weighted: utils.BN(0), margin: utils.BN(0)}
	for marketIndex, balance := range balances {
		if balance.Sign() == 0 {
			continue
		}
		market, err := snapshot.Market(marketIndex)
		if err != nil {
			return nil, err
		}
		value := GetTokenValue(balance, market.Decimals, market.OraclePrice)
		result.total.Add(result.total, value)

		if balance.Sign() > 0 {
			weight := CalculateAssetWeight(balance, market, tier)
			result.weighted.Add(result.weighted, weightValue(value, weight))
		} else {
			weight := CalculateLiabilityWeight(balance, market, tier)
			result.margin.Add(result.margin, weightValue(utils.AbsX(value), weight))
		}
	}
	return result, nil
}

func weightValue(value *big.Int, weight *big.Int) *big.Int {
	return utils.DivX(utils.MulX(value, weight), constants.SPOT_MARKET_WEIGHT_PRECISION)
}

// TotalCollateralValue is the signed, unweighted value of every position at
// QUOTE_PRECISION after reserving open withdraw orders.
func TotalCollateralValue(snapshot *types.Snapshot, orders []quartz.WithdrawOrder) (*big.Int, error) {
	sum, err := sumCollateral(snapshot, EffectiveBalances(snapshot, orders), MarginTierInitial)
	if err != nil {
		return nil, err
	}
	return sum.total, nil
}

// TotalWeightedCollateralValue is the sum of deposits valued at their asset weight.
func TotalWeightedCollateralValue(snapshot *types.Snapshot, orders []quartz.WithdrawOrder, tier MarginTier) (*big.Int, error) {
	sum, err := sumCollateral(snapshot, EffectiveBalances(snapshot, orders), tier)
	if err != nil {
		return nil, err
	}
	return sum.weighted, nil
}

// MarginRequirement is the sum of borrows valued at their liability weight.
func MarginRequirement(snapshot *types.Snapshot, orders []quartz.WithdrawOrder, tier MarginTier) (*big.Int, error) {
	sum, err := sumCollateral(snapshot, EffectiveBalances(snapshot, orders), tier)
	if err != nil {
		return nil, err
	}
	return sum.margin, nil
}

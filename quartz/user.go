package quartz

import (
	"context"
	"math/big"

	"quartzgo/accounts"
	"quartzgo/addresses"
	"quartzgo/constants"
	quartzlib "quartzgo/lib/quartz"
	"quartzgo/math"
	"quartzgo/types"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go"
)

// User is one vault owner's account as of its last Refresh. Queries run
// against Snapshot; builders derive every address from Owner.
type User struct {
	client         *Client
	Owner          solana.PublicKey
	Vault          solana.PublicKey
	DriftUser      solana.PublicKey
	DriftUserStats solana.PublicKey
	Account        *quartzlib.Vault
	Snapshot       *types.Snapshot
}

func (p *Client) newUser(owner solana.PublicKey, account *quartzlib.Vault) *User {
	vault := addresses.GetVaultPublicKey(p.programId, owner)
	return &User{
		client:         p,
		Owner:          owner,
		Vault:          vault,
		DriftUser:      addresses.GetUserAccountPublicKey(constants.DRIFT_PROGRAM_ID, vault, constants.DRIFT_SUB_ACCOUNT_ID),
		DriftUserStats: addresses.GetUserStatsAccountPublicKey(constants.DRIFT_PROGRAM_ID, vault),
		Account:        account,
	}
}

// NewUser wraps an already loaded snapshot, for callers that manage their
// own account reads.
func (p *Client) NewUser(account *quartzlib.Vault, snapshot *types.Snapshot) *User {
	user := p.newUser(snapshot.Owner, account)
	user.Snapshot = snapshot
	return user
}

// Refresh replaces the snapshot with a freshly loaded one.
func (p *User) Refresh(ctx context.Context) error {
	snapshot, err := accounts.LoadSnapshot(ctx, p.client.fetcher, p.client.env, p.Owner, p.Vault)
	if err != nil {
		return err
	}
	p.Snapshot = snapshot
	return nil
}

// openOrders fetches the owner's open withdraw orders when orders is nil and
// otherwise drops orders that belong to someone else.
func (p *User) openOrders(ctx context.Context, orders []quartzlib.WithdrawOrder) ([]quartzlib.WithdrawOrder, error) {
	if orders == nil {
		keyed, err := p.client.GetOpenWithdrawOrders(ctx, p.Owner)
		if err != nil {
			return nil, err
		}
		return accounts.WithdrawOrders(keyed), nil
	}
	owned := make([]quartzlib.WithdrawOrder, 0, len(orders))
	for _, order := range orders {
		if order.TimeLock.Owner.Equals(p.Owner) {
			owned = append(owned, order)
		}
	}
	return owned, nil
}

// GetHealth is the snapshot health with the client's buffer applied.
func (p *User) GetHealth() (int, error) {
	health, err := math.Health(p.Snapshot, nil)
	if err != nil {
		return 0, err
	}
	return math.HealthWithBuffer(health, p.client.healthBuffer), nil
}

func (p *User) GetTotalCollateralValue(ctx context.Context, orders []quartzlib.WithdrawOrder) (*big.Int, error) {
	orders, err := p.openOrders(ctx, orders)
	if err != nil {
		return nil, err
	}
	return math.TotalCollateralValue(p.Snapshot, orders)
}

func (p *User) GetTotalWeightedCollateralValue(ctx context.Context, orders []quartzlib.WithdrawOrder) (*big.Int, error) {
	orders, err := p.openOrders(ctx, orders)
	if err != nil {
		return nil, err
	}
	return math.TotalWeightedCollateralValue(p.Snapshot, orders, math.MarginTierInitial)
}

func (p *User) GetMarginRequirement(ctx context.Context, orders []quartzlib.WithdrawOrder) (*big.Int, error) {
	orders, err := p.openOrders(ctx, orders)
	if err != nil {
		return nil, err
	}
	return math.MarginRequirement(p.Snapshot, orders, math.MarginTierInitial)
}

func (p *User) GetAvailableCreditUsdcBaseUnits(ctx context.Context, orders []quartzlib.WithdrawOrder) (*big.Int, error) {
	orders, err := p.openOrders(ctx, orders)
	if err != nil {
		return nil, err
	}
	return math.AvailableCredit(p.Snapshot, orders)
}

func (p *User) GetWithdrawalLimit(
	ctx context.Context,
	marketIndex uint16,
	reduceOnly bool,
	orders []quartzlib.WithdrawOrder,
) (*big.Int, error) {
	orders, err := p.openOrders(ctx, orders)
	if err != nil {
		return nil, err
	}
	return math.WithdrawalLimit(p.Snapshot, orders, marketIndex, reduceOnly)
}

// GetMultipleWithdrawalLimits reads the open orders once and reuses them
// for every market.
func (p *User) GetMultipleWithdrawalLimits(
	ctx context.Context,
	marketIndices []uint16,
	reduceOnly bool,
	orders []quartzlib.WithdrawOrder,
) (map[uint16]*big.Int, error) {
	orders, err := p.openOrders(ctx, orders)
	if err != nil {
		return nil, err
	}
	limits := make(map[uint16]*big.Int, len(marketIndices))
	for _, marketIndex := range marketIndices {
		if limits[marketIndex], err = math.WithdrawalLimit(p.Snapshot, orders, marketIndex, reduceOnly); err != nil {
			return nil, err
		}
	}
	return limits, nil
}

// GetTokenBalance is the signed balance net of open withdraw orders.
func (p *User) GetTokenBalance(ctx context.Context, marketIndex uint16, orders []quartzlib.WithdrawOrder) (*big.Int, error) {
	balances, err := p.GetMultipleTokenBalances(ctx, []uint16{marketIndex}, orders)
	if err != nil {
		return nil, err
	}
	return balances[marketIndex], nil
}

func (p *User) GetMultipleTokenBalances(ctx context.Context, marketIndices []uint16, orders []quartzlib.WithdrawOrder) (map[uint16]*big.Int, error) {
	orders, err := p.openOrders(ctx, orders)
	if err != nil {
		return nil, err
	}
	effective := math.EffectiveBalances(p.Snapshot, orders)
	balances := make(map[uint16]*big.Int, len(marketIndices))
	for _, marketIndex := range marketIndices {
		balances[marketIndex] = utils.BN(0)
		if balance, exists := effective[marketIndex]; exists {
			balances[marketIndex] = balance
		}
	}
	return balances, nil
}

// GetRepayUsdcValueForTargetHealth ignores open withdraw orders. The target
// is on the same buffered scale as GetHealth.
func (p *User) GetRepayUsdcValueForTargetHealth(targetHealth int, repayAssetWeight int, repayLiabilityWeight int) (*big.Int, error) {
	targetHealth = math.HealthWithoutBuffer(targetHealth, p.client.healthBuffer)
	weighted, err := math.TotalWeightedCollateralValue(p.Snapshot, nil, math.MarginTierInitial)
	if err != nil {
		return nil, err
	}
	margin, err := math.MarginRequirement(p.Snapshot, nil, math.MarginTierInitial)
	if err != nil {
		return nil, err
	}
	return math.RepayValueForTargetHealth(targetHealth, weighted, margin, repayAssetWeight, repayLiabilityWeight)
}

// GetSpendableBalanceUsdcBaseUnits is the available credit capped by the
// vault's spend limits. A timeframe whose reset time has passed counts as
// fully replenished.
func (p *User) GetSpendableBalanceUsdcBaseUnits(ctx context.Context, orders []quartzlib.WithdrawOrder) (*big.Int, error) {
	credit, err := p.GetAvailableCreditUsdcBaseUnits(ctx, orders)
	if err != nil {
		return nil, err
	}
	if p.Account == nil {
		return credit, nil
	}
	remaining := p.Account.RemainingSpendLimitPerTimeframe
	if uint64(p.client.now().Unix()) >= p.Account.NextTimeframeResetTimestamp {
		remaining = p.Account.SpendLimitPerTimeframe
	}
	limit := utils.BigUInt64(min(remaining, p.Account.SpendLimitPerTransaction))
	return utils.Min(credit, limit), nil
}

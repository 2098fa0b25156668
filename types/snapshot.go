// Package types holds the in-memory views the calculator and composer share.
package types

import (
	"math/big"
	"slices"

	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/lib/drift"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go"
)

// MarketState is the per-market input of the collateral calculator.
// Weights are at SPOT_MARKET_WEIGHT_PRECISION and OraclePrice at PRICE_PRECISION.
type MarketState struct {
	MarketIndex                uint16
	Decimals                   uint32
	InitialAssetWeight         uint32
	MaintenanceAssetWeight     uint32
	InitialLiabilityWeight     uint32
	MaintenanceLiabilityWeight uint32
	ImfFactor                  uint32
	OraclePrice                *big.Int

	// SpotMarket is the decoded Drift account when the state was loaded from chain.
	SpotMarket *drift.SpotMarket
}

// NewMarketState seeds a market state from the static market table.
func NewMarketState(market *constants.Market, oraclePrice *big.Int) *MarketState {
	return &MarketState{
		MarketIndex:                market.MarketIndex,
		Decimals:                   market.Decimals,
		InitialAssetWeight:         market.InitialAssetWeight,
		MaintenanceAssetWeight:     market.MaintenanceAssetWeight,
		InitialLiabilityWeight:     market.InitialLiabilityWeight,
		MaintenanceLiabilityWeight: market.MaintenanceLiabilityWeight,
		ImfFactor:                  market.ImfFactor,
		OraclePrice:                oraclePrice,
	}
}

// NewMarketStateFromSpotMarket prefers the live on-chain weights over the table.
func NewMarketStateFromSpotMarket(spotMarket *drift.SpotMarket, oraclePrice *big.Int) *MarketState {
	return &MarketState{
		MarketIndex:                spotMarket.MarketIndex,
		Decimals:                   spotMarket.Decimals,
		InitialAssetWeight:         spotMarket.InitialAssetWeight,
		MaintenanceAssetWeight:     spotMarket.MaintenanceAssetWeight,
		InitialLiabilityWeight:     spotMarket.InitialLiabilityWeight,
		MaintenanceLiabilityWeight: spotMarket.MaintenanceLiabilityWeight,
		ImfFactor:                  spotMarket.ImfFactor,
		OraclePrice:                oraclePrice,
		SpotMarket:                 spotMarket,
	}
}

func (m *MarketState) Precision() *big.Int {
	return constants.TenPow(m.Decimals)
}

// Snapshot is a point-in-time view of one vault's Drift positions.
// Balances are signed token amounts in base units, negative for borrows.
type Snapshot struct {
	Owner    solana.PublicKey
	Vault    solana.PublicKey
	Slot     uint64
	Balances map[uint16]*big.Int
	Markets  map[uint16]*MarketState
}

func NewSnapshot(owner solana.PublicKey, vault solana.PublicKey) *Snapshot {
	return &Snapshot{
		Owner:    owner,
		Vault:    vault,
		Balances: make(map[uint16]*big.Int),
		Markets:  make(map[uint16]*MarketState),
	}
}

func (s *Snapshot) SetBalance(marketIndex uint16, balance *big.Int) {
	s.Balances[marketIndex] = utils.IntX(balance)
}

func (s *Snapshot) SetMarket(state *MarketState) {
	s.Markets[state.MarketIndex] = state
}

// Balance returns a copy of the signed balance, zero for markets without a position.
func (s *Snapshot) Balance(marketIndex uint16) *big.Int {
	balance, exists := s.Balances[marketIndex]
	if !exists || balance == nil {
		return big.NewInt(0)
	}
	return utils.IntX(balance)
}

func (s *Snapshot) Market(marketIndex uint16) (*MarketState, error) {
	state, exists := s.Markets[marketIndex]
	if !exists || state == nil {
		return nil, errs.NotFound("types.Snapshot.Market", "no market state for index %d", marketIndex)
	}
	if state.OraclePrice == nil {
		return nil, errs.InvalidInput("types.Snapshot.Market", "market %d has no oracle price", marketIndex)
	}
	return state, nil
}

// PositionIndices lists the markets holding a non-zero balance, ascending.
func (s *Snapshot) PositionIndices() []uint16 {
	indices := make([]uint16, 0, len(s.Balances))
	for idx, balance := range s.Balances {
		if balance != nil && balance.Sign() != 0 {
			indices = append(indices, idx)
		}
	}
	slices.Sort(indices)
	return indices
}

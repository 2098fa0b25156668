package accounts

import (
	"context"
	"math/big"
	"slices"

	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/lib/drift"
	"quartzgo/lib/pyth"
	"quartzgo/math"
	"quartzgo/types"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"
)

// LoadSnapshot reads the vault's Drift user, the spot markets of every
// configured market and of every open position, and their Pyth price
// updates, and assembles a fresh snapshot.
func LoadSnapshot(
	ctx context.Context,
	fetcher Fetcher,
	env constants.Env,
	owner solana.PublicKey,
	vault solana.PublicKey,
) (*types.Snapshot, error) {
	const op = "accounts.LoadSnapshot"
	snapshot := types.NewSnapshot(owner, vault)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snapshot.Slot, err = fetcher.GetSlot(gctx)
		return err
	})

	var user *drift.User
	var spotMarkets map[uint16]*drift.SpotMarket
	g.Go(func() error {
		userKey := addresses.GetUserAccountPublicKey(constants.DRIFT_PROGRAM_ID, vault, constants.DRIFT_SUB_ACCOUNT_ID)
		indices := constants.MarketIndices(env)
		keys := []solana.PublicKey{userKey}
		for _, marketIndex := range indices {
			keys = append(keys, addresses.GetSpotMarketAddress(constants.DRIFT_PROGRAM_ID, marketIndex))
		}
		datas, err := fetcher.FetchAccounts(gctx, keys)
		if err != nil {
			return err
		}
		if datas[0] == nil {
			return errs.NotFound(op, "no Drift user for vault %s", vault)
		}
		if user, err = drift.DecodeUser(datas[0]); err != nil {
			return err
		}
		if spotMarkets, err = decodeSpotMarkets(indices, datas[1:]); err != nil {
			return err
		}

		var missing []uint16
		for _, position := range user.ActiveSpotPositions() {
			if _, ok := spotMarkets[position.MarketIndex]; !ok && !slices.Contains(missing, position.MarketIndex) {
				missing = append(missing, position.MarketIndex)
			}
		}
		if len(missing) == 0 {
			return nil
		}
		extra, err := FetchSpotMarkets(gctx, fetcher, missing)
		if err != nil {
			return err
		}
		for marketIndex, market := range extra {
			spotMarkets[marketIndex] = market
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prices, err := FetchOraclePrices(ctx, fetcher, spotMarkets)
	if err != nil {
		return nil, err
	}
	for marketIndex, market := range spotMarkets {
		snapshot.SetMarket(types.NewMarketStateFromSpotMarket(market, prices[marketIndex]))
	}
	for i := range user.SpotPositions {
		position := &user.SpotPositions[i]
		if position.ScaledBalance == 0 {
			continue
		}
		snapshot.SetBalance(position.MarketIndex, math.GetSpotPositionTokenAmount(position, spotMarkets[position.MarketIndex]))
	}
	return snapshot, nil
}

func decodeSpotMarkets(indices []uint16, datas [][]byte) (map[uint16]*drift.SpotMarket, error) {
	markets := make(map[uint16]*drift.SpotMarket, len(indices))
	for i, marketIndex := range indices {
		if datas[i] == nil {
			return nil, errs.NotFound("accounts.FetchSpotMarkets", "spot market %d does not exist", marketIndex)
		}
		market, err := drift.DecodeSpotMarket(datas[i])
		if err != nil {
			return nil, err
		}
		if market.MarketIndex != marketIndex {
			return nil, errs.ProtocolMismatch("accounts.FetchSpotMarkets", "spot market account for %d holds index %d", marketIndex, market.MarketIndex)
		}
		markets[marketIndex] = market
	}
	return markets, nil
}

func FetchSpotMarkets(ctx context.Context, fetcher Fetcher, indices []uint16) (map[uint16]*drift.SpotMarket, error) {
	keys := make([]solana.PublicKey, len(indices))
	for i, marketIndex := range indices {
		keys[i] = addresses.GetSpotMarketAddress(constants.DRIFT_PROGRAM_ID, marketIndex)
	}
	datas, err := fetcher.FetchAccounts(ctx, keys)
	if err != nil {
		return nil, err
	}
	return decodeSpotMarkets(indices, datas)
}

func FetchSpotMarket(ctx context.Context, fetcher Fetcher, marketIndex uint16) (*drift.SpotMarket, error) {
	markets, err := FetchSpotMarkets(ctx, fetcher, []uint16{marketIndex})
	if err != nil {
		return nil, err
	}
	return markets[marketIndex], nil
}

// FetchOraclePrices reads the price update each market points at and
// returns prices at PRICE_PRECISION.
func FetchOraclePrices(ctx context.Context, fetcher Fetcher, spotMarkets map[uint16]*drift.SpotMarket) (map[uint16]*big.Int, error) {
	indices := make([]uint16, 0, len(spotMarkets))
	for marketIndex := range spotMarkets {
		indices = append(indices, marketIndex)
	}
	slices.Sort(indices)

	keys := make([]solana.PublicKey, len(indices))
	for i, marketIndex := range indices {
		keys[i] = spotMarkets[marketIndex].Oracle
	}
	datas, err := fetcher.FetchAccounts(ctx, keys)
	if err != nil {
		return nil, err
	}

	prices := make(map[uint16]*big.Int, len(indices))
	for i, marketIndex := range indices {
		if datas[i] == nil {
			return nil, errs.NotFound("accounts.FetchOraclePrices", "oracle %s for market %d does not exist", keys[i], marketIndex)
		}
		update, err := pyth.DecodePriceUpdateV2(datas[i])
		if err != nil {
			return nil, err
		}
		if prices[marketIndex], err = math.OraclePrice(&update.PriceMessage); err != nil {
			return nil, err
		}
	}
	return prices, nil
}

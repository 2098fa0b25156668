package quartz

import (
	"context"
	"slices"

	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	spl_token "quartzgo/lib/spl-token"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"
)

// market resolves a spot market from the snapshot first and the static
// market table second.
func (p *User) market(op string, marketIndex uint16) (mint solana.PublicKey, oracle solana.PublicKey, err error) {
	if state, exists := p.Snapshot.Markets[marketIndex]; exists && state.SpotMarket != nil {
		return state.SpotMarket.Mint, state.SpotMarket.Oracle, nil
	}
	market, exists := constants.FindMarket(p.client.env, marketIndex)
	if !exists {
		return solana.PublicKey{}, solana.PublicKey{}, errs.NotFound(op, "spot market %d is not supported", marketIndex)
	}
	oracle, err = addresses.GetOracleAddress(constants.PYTH_PUSH_ORACLE_PROGRAM_ID, market.PythFeedId)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	return market.Mint, oracle, nil
}

// remainingAccounts lists the Drift accounts a margin check reads: every
// oracle, then every spot market, each group sorted by market index. The
// markets are the user's open positions plus writable.
func (p *User) remainingAccounts(op string, writable ...uint16) (solana.AccountMetaSlice, error) {
	indices := p.Snapshot.PositionIndices()
	for _, marketIndex := range writable {
		if !slices.Contains(indices, marketIndex) {
			indices = append(indices, marketIndex)
		}
	}
	slices.Sort(indices)

	seenOracles := make(map[solana.PublicKey]bool, len(indices))
	var oracles, spotMarkets solana.AccountMetaSlice
	for _, marketIndex := range indices {
		_, oracle, err := p.market(op, marketIndex)
		if err != nil {
			return nil, err
		}
		if !seenOracles[oracle] {
			seenOracles[oracle] = true
			oracles = append(oracles, solana.Meta(oracle))
		}
		spotMarket := solana.Meta(addresses.GetSpotMarketAddress(constants.DRIFT_PROGRAM_ID, marketIndex))
		if slices.Contains(writable, marketIndex) {
			spotMarket = spotMarket.WRITE()
		}
		spotMarkets = append(spotMarkets, spotMarket)
	}
	return slices.Concat(oracles, spotMarkets), nil
}

// resolveTokenPrograms reads the owning program of each mint concurrently.
// Results are in mint order.
func (p *Client) resolveTokenPrograms(ctx context.Context, mints ...solana.PublicKey) ([]solana.PublicKey, error) {
	programs := make([]solana.PublicKey, len(mints))
	g, gctx := errgroup.WithContext(ctx)
	for i, mint := range mints {
		g.Go(func() error {
			owner, err := p.fetcher.FetchAccountOwner(gctx, mint)
			if err != nil {
				return err
			}
			programs[i], err = spl_token.GetTokenProgramForMintOwner(owner)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return programs, nil
}

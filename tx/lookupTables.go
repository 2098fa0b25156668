package tx

import (
	"context"
	"sync"

	"quartzgo/accounts"
	"quartzgo/errs"

	"github.com/gagliardetto/solana-go"
	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
)

// FetchLookupTables reads and decodes address lookup tables in one batch.
// A missing table is NotFound.
func FetchLookupTables(ctx context.Context, fetcher accounts.Fetcher, keys []solana.PublicKey) ([]addresslookuptable.KeyedAddressLookupTable, error) {
	const op = "tx.FetchLookupTables"
	if len(keys) == 0 {
		return nil, nil
	}
	datas, err := fetcher.FetchAccounts(ctx, keys)
	if err != nil {
		return nil, err
	}
	tables := make([]addresslookuptable.KeyedAddressLookupTable, len(keys))
	for i, data := range datas {
		if data == nil {
			return nil, errs.NotFound(op, "lookup table %s does not exist", keys[i])
		}
		state, err := addresslookuptable.DecodeAddressLookupTableState(data)
		if err != nil {
			return nil, errs.Wrap(errs.KindProtocolMismatch, op, err)
		}
		tables[i] = addresslookuptable.KeyedAddressLookupTable{Key: keys[i], State: *state}
	}
	return tables, nil
}

// LookupTableCache keeps decoded tables. Tables only grow, so a cached
// copy may miss recently extended addresses but never holds wrong ones.
type LookupTableCache struct {
	fetcher accounts.Fetcher
	mxState sync.RWMutex
	tables  map[solana.PublicKey]addresslookuptable.KeyedAddressLookupTable
}

func NewLookupTableCache(fetcher accounts.Fetcher) *LookupTableCache {
	return &LookupTableCache{
		fetcher: fetcher,
		tables:  make(map[solana.PublicKey]addresslookuptable.KeyedAddressLookupTable),
	}
}

func (p *LookupTableCache) Get(ctx context.Context, keys []solana.PublicKey) ([]addresslookuptable.KeyedAddressLookupTable, error) {
	var missing []solana.PublicKey
	p.mxState.RLock()
	for _, key := range keys {
		if _, exists := p.tables[key]; !exists {
			missing = append(missing, key)
		}
	}
	p.mxState.RUnlock()

	fetched, err := FetchLookupTables(ctx, p.fetcher, missing)
	if err != nil {
		return nil, err
	}

	defer p.mxState.Unlock()
	p.mxState.Lock()
	for _, table := range fetched {
		p.tables[table.Key] = table
	}
	tables := make([]addresslookuptable.KeyedAddressLookupTable, len(keys))
	for i, key := range keys {
		tables[i] = p.tables[key]
	}
	return tables, nil
}

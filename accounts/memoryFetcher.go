package accounts

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/lib/drift"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type memoryAccount struct {
	owner solana.PublicKey
	data  []byte
}

// MemoryFetcher is an in-process Fetcher over a fixed account set, for tests
// and offline tooling.
type MemoryFetcher struct {
	mxState      sync.RWMutex
	accounts     map[solana.PublicKey]memoryAccount
	transactions map[solana.Signature]*rpc.GetTransactionResult
	slot         uint64
	calls        map[string]int
}

func NewMemoryFetcher() *MemoryFetcher {
	return &MemoryFetcher{
		accounts:     make(map[solana.PublicKey]memoryAccount),
		transactions: make(map[solana.Signature]*rpc.GetTransactionResult),
		calls:        make(map[string]int),
	}
}

func (p *MemoryFetcher) SetAccount(address solana.PublicKey, owner solana.PublicKey, data []byte) {
	defer p.mxState.Unlock()
	p.mxState.Lock()
	p.accounts[address] = memoryAccount{owner: owner, data: slices.Clone(data)}
}

func (p *MemoryFetcher) RemoveAccount(address solana.PublicKey) {
	defer p.mxState.Unlock()
	p.mxState.Lock()
	delete(p.accounts, address)
}

func (p *MemoryFetcher) SetTransaction(signature solana.Signature, tx *rpc.GetTransactionResult) {
	defer p.mxState.Unlock()
	p.mxState.Lock()
	p.transactions[signature] = tx
}

func (p *MemoryFetcher) SetSlot(slot uint64) {
	defer p.mxState.Unlock()
	p.mxState.Lock()
	p.slot = slot
}

// Calls reports how many times method was invoked.
func (p *MemoryFetcher) Calls(method string) int {
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	return p.calls[method]
}

func (p *MemoryFetcher) record(method string) {
	p.mxState.Lock()
	p.calls[method]++
	p.mxState.Unlock()
}

func (p *MemoryFetcher) FetchAccount(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	p.record("FetchAccount")
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	account, exists := p.accounts[address]
	if !exists {
		return nil, errs.NotFound("accounts.FetchAccount", "account %s does not exist", address)
	}
	return slices.Clone(account.data), nil
}

func (p *MemoryFetcher) FetchAccounts(ctx context.Context, addresses []solana.PublicKey) ([][]byte, error) {
	p.record("FetchAccounts")
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	result := make([][]byte, len(addresses))
	for i, address := range addresses {
		if account, exists := p.accounts[address]; exists {
			result[i] = slices.Clone(account.data)
		}
	}
	return result, nil
}

func (p *MemoryFetcher) FetchAccountOwner(ctx context.Context, address solana.PublicKey) (solana.PublicKey, error) {
	p.record("FetchAccountOwner")
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	account, exists := p.accounts[address]
	if !exists {
		return solana.PublicKey{}, errs.NotFound("accounts.FetchAccountOwner", "account %s does not exist", address)
	}
	return account.owner, nil
}

func (p *MemoryFetcher) FetchTransaction(ctx context.Context, signature solana.Signature) (*rpc.GetTransactionResult, error) {
	p.record("FetchTransaction")
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	tx, exists := p.transactions[signature]
	if !exists {
		return nil, errs.NotFound("accounts.FetchTransaction", "transaction %s does not exist", signature)
	}
	return tx, nil
}

// FetchProgramAccounts returns matches ordered by address so results are stable.
func (p *MemoryFetcher) FetchProgramAccounts(ctx context.Context, programId solana.PublicKey, filters []rpc.RPCFilter) ([]KeyedAccount, error) {
	p.record("FetchProgramAccounts")
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	var result []KeyedAccount
	for address, account := range p.accounts {
		if !account.owner.Equals(programId) || !MatchesFilters(account.data, filters) {
			continue
		}
		result = append(result, KeyedAccount{PublicKey: address, Data: slices.Clone(account.data)})
	}
	slices.SortFunc(result, func(a, b KeyedAccount) int {
		return bytes.Compare(a.PublicKey[:], b.PublicKey[:])
	})
	return result, nil
}

func (p *MemoryFetcher) GetSlot(ctx context.Context) (uint64, error) {
	p.record("GetSlot")
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	return p.slot, nil
}

// SetDriftUser stores user as the vault's sub-account 0.
func (p *MemoryFetcher) SetDriftUser(vault solana.PublicKey, user *drift.User) solana.PublicKey {
	address := addresses.GetUserAccountPublicKey(constants.DRIFT_PROGRAM_ID, vault, constants.DRIFT_SUB_ACCOUNT_ID)
	p.SetAccount(address, constants.DRIFT_PROGRAM_ID, user.Encode())
	return address
}

func (p *MemoryFetcher) SetSpotMarket(market *drift.SpotMarket) solana.PublicKey {
	address := addresses.GetSpotMarketAddress(constants.DRIFT_PROGRAM_ID, market.MarketIndex)
	p.SetAccount(address, constants.DRIFT_PROGRAM_ID, market.Encode())
	return address
}

// SetEncodable stores any Borsh-encodable account, such as a price update
// or a Quartz order.
func (p *MemoryFetcher) SetEncodable(address solana.PublicKey, owner solana.PublicKey, account bin.BinaryMarshaler) error {
	buf := new(bytes.Buffer)
	if err := account.MarshalWithEncoder(bin.NewBorshEncoder(buf)); err != nil {
		return err
	}
	p.SetAccount(address, owner, buf.Bytes())
	return nil
}

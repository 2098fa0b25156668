// Package accounts reads Quartz, Drift and Pyth state from chain and turns
// it into decoded accounts and calculator snapshots.
package accounts

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// GET_MULTIPLE_ACCOUNTS_CHUNK_SIZE is the getMultipleAccounts key limit.
const GET_MULTIPLE_ACCOUNTS_CHUNK_SIZE = 100

type KeyedAccount struct {
	PublicKey solana.PublicKey
	Data      []byte
}

// Fetcher is the read side the SDK depends on. Absent accounts are NotFound
// for single reads and nil entries for batched reads; RPC failures surface as
// Transient once retries are spent.
type Fetcher interface {
	FetchAccount(ctx context.Context, address solana.PublicKey) ([]byte, error)
	FetchAccounts(ctx context.Context, addresses []solana.PublicKey) ([][]byte, error)
	FetchAccountOwner(ctx context.Context, address solana.PublicKey) (solana.PublicKey, error)
	FetchTransaction(ctx context.Context, signature solana.Signature) (*rpc.GetTransactionResult, error)
	FetchProgramAccounts(ctx context.Context, programId solana.PublicKey, filters []rpc.RPCFilter) ([]KeyedAccount, error)
	GetSlot(ctx context.Context) (uint64, error)
}

func chunks[T any](array []T, size int) [][]T {
	var chunkArray [][]T
	for start := 0; start < len(array); start += size {
		end := min(start+size, len(array))
		chunkArray = append(chunkArray, array[start:end])
	}
	return chunkArray
}

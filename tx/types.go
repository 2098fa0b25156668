package tx

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const DEFAULT_COMPUTE_UNITS = 200_000

const MAX_COMPUTE_UNITS = 1_400_000

const COMPUTE_UNIT_BUFFER_FACTOR = 1.2

// TxParams sets the compute budget. A zero ComputeUnitsPrice lets the
// Builder estimate one.
type TxParams struct {
	ComputeUnits      uint32 `yaml:"computeUnits"`
	ComputeUnitsPrice uint64 `yaml:"computeUnitsPrice"`
	// SimulateComputeUnits replaces ComputeUnits with the simulated usage
	// times ComputeUnitsBufferMultiplier.
	SimulateComputeUnits         bool    `yaml:"simulateComputeUnits"`
	ComputeUnitsBufferMultiplier float64 `yaml:"computeUnitsBufferMultiplier"`
}

// RpcClient is the part of rpc.Client the Builder needs.
type RpcClient interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SimulateTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts *rpc.SimulateTransactionOpts) (*rpc.SimulateTransactionResponse, error)
}

package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type RpcCaller interface {
	RPCCallForInto(ctx context.Context, out interface{}, method string, params []interface{}) error
}

type ProgramAccounts struct {
	Slot     uint64
	Accounts []*rpc.KeyedAccount
}

// GetProgramAccountsAtSlot is getProgramAccounts with withContext set, so
// the slot the filters ran at comes back with the matches. A zero
// minContextSlot is not sent.
func GetProgramAccountsAtSlot(
	ctx context.Context,
	cl RpcCaller,
	programId solana.PublicKey,
	commitment rpc.CommitmentType,
	filters []rpc.RPCFilter,
	minContextSlot uint64,
) (*ProgramAccounts, error) {
	config := rpc.M{
		"encoding":    solana.EncodingBase64,
		"withContext": true,
	}
	if commitment != "" {
		config["commitment"] = commitment
	}
	if len(filters) > 0 {
		config["filters"] = filters
	}
	if minContextSlot > 0 {
		config["minContextSlot"] = minContextSlot
	}

	var out struct {
		Context rpc.Context         `json:"context"`
		Value   []*rpc.KeyedAccount `json:"value"`
	}
	if err := cl.RPCCallForInto(ctx, &out, "getProgramAccounts", []interface{}{programId, config}); err != nil {
		return nil, err
	}
	return &ProgramAccounts{Slot: out.Context.Slot, Accounts: out.Value}, nil
}

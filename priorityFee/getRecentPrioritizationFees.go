package priorityFee

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// GetRecentPrioritizationFeesEx is getRecentPrioritizationFees with the
// percentile option some providers accept. A node caches fees for up to 150
// blocks.
func GetRecentPrioritizationFeesEx(
	ctx context.Context,
	cl RpcCaller,
	accounts solana.PublicKeySlice,
	percentile uint,
) (out []rpc.PriorizationFeeResult, err error) {
	params := []interface{}{accounts}
	if percentile > 0 {
		params = append(params, rpc.M{"percentile": percentile})
	}
	err = cl.RPCCallForInto(ctx, &out, "getRecentPrioritizationFees", params)
	return
}

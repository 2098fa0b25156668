package tx

import (
	"context"

	"quartzgo/errs"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SimulateComputeUnits runs transaction unsigned and returns the units it
// consumed times multiplier, capped at MAX_COMPUTE_UNITS.
func SimulateComputeUnits(ctx context.Context, client RpcClient, transaction *solana.Transaction, multiplier float64) (uint32, error) {
	const op = "tx.SimulateComputeUnits"
	simulated := *transaction
	simulated.Signatures = make([]solana.Signature, transaction.Message.Header.NumRequiredSignatures)
	out, err := client.SimulateTransactionWithOpts(ctx, &simulated, &rpc.SimulateTransactionOpts{
		SigVerify:              false,
		ReplaceRecentBlockhash: true,
	})
	if err != nil {
		return 0, errs.Wrap(errs.KindTransient, op, err)
	}
	if out == nil || out.Value == nil {
		return 0, errs.Transient(op, "empty simulation response")
	}
	if out.Value.Err != nil {
		return 0, errs.InvalidInput(op, "simulation failed: %v", out.Value.Err)
	}
	if out.Value.UnitsConsumed == nil {
		return 0, errs.ProtocolMismatch(op, "simulation did not report units consumed")
	}
	multiplier = utils.TT(multiplier > 0, multiplier, COMPUTE_UNIT_BUFFER_FACTOR)
	units := float64(*out.Value.UnitsConsumed) * multiplier
	return uint32(min(units, MAX_COMPUTE_UNITS)), nil
}

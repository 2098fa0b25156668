package priorityFee

import (
	"cmp"
	"context"
	"slices"

	"quartzgo/errs"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// FetchSolanaPriorityFee returns the samples within lookbackDistance slots
// of the newest one, newest first.
func FetchSolanaPriorityFee(
	ctx context.Context,
	connection RpcCaller,
	lookbackDistance uint64,
	addresses solana.PublicKeySlice,
	percentile uint,
) ([]Sample, error) {
	response, err := GetRecentPrioritizationFeesEx(ctx, connection, addresses, percentile)
	if err != nil {
		return nil, errs.Wrap(errs.KindTransient, "priorityFee.FetchSolanaPriorityFee", err)
	}
	if len(response) == 0 {
		return nil, nil
	}
	slices.SortFunc(response, func(a, b rpc.PriorizationFeeResult) int {
		return cmp.Compare(b.Slot, a.Slot)
	})

	cutoffSlot := response[0].Slot - min(lookbackDistance, response[0].Slot)
	var descResults []Sample
	for _, result := range response {
		if result.Slot >= cutoffSlot {
			descResults = append(descResults, Sample{Slot: result.Slot, PrioritizationFee: result.PrioritizationFee})
		}
	}
	return descResults, nil
}

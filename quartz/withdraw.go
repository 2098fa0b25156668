package quartz

import (
	"context"

	"quartzgo/accounts"
	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	quartzlib "quartzgo/lib/quartz"
	spl_token "quartzgo/lib/spl-token"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go"
)

func (p *User) timeLockRentPayer(paidByUser bool) solana.PublicKey {
	return utils.TT(paidByUser, p.Owner, addresses.GetTimeLockRentPayerPublicKey(p.client.programId))
}

// checkOrderOwner rejects orders recorded for another vault owner.
func (p *User) checkOrderOwner(op string, order solana.PublicKey, timeLock quartzlib.TimeLock) error {
	if !timeLock.Owner.Equals(p.Owner) {
		return errs.ProtocolMismatch(op, "order %s belongs to %s, not %s", order, timeLock.Owner, p.Owner)
	}
	return nil
}

// MakeInitiateWithdrawIxs opens a time-locked withdraw order. A zero
// destination means the owner. The new order account is returned as a
// signer.
func (p *User) MakeInitiateWithdrawIxs(
	amountBaseUnits uint64,
	marketIndex uint16,
	reduceOnly bool,
	destination solana.PublicKey,
	paidByUser bool,
) (*Bundle, error) {
	const op = "quartz.MakeInitiateWithdrawIxs"
	if amountBaseUnits == 0 {
		return nil, errs.InvalidParameter(op, "withdraw amount must be positive")
	}
	if _, _, err := p.market(op, marketIndex); err != nil {
		return nil, err
	}
	if destination.IsZero() {
		destination = p.Owner
	}
	order, err := newOrderKey(op)
	if err != nil {
		return nil, err
	}

	ix, err := p.client.build(op, quartzlib.NewInitiateWithdrawInstruction(
		amountBaseUnits,
		marketIndex,
		reduceOnly,
		p.Vault,
		p.Owner,
		order.PublicKey(),
		p.timeLockRentPayer(paidByUser),
		solana.SystemProgramID,
		destination,
	))
	if err != nil {
		return nil, err
	}
	p.client.logger.Debug().
		Str("owner", p.Owner.String()).
		Str("order", order.PublicKey().String()).
		Uint16("market", marketIndex).
		Msg("withdraw order composed")
	return p.client.newBundle([]solana.Instruction{ix}, order), nil
}

// MakeFulfilWithdrawIxs completes a released withdraw order. Market, rent
// payer and destination come from the order account, never from the caller.
func (p *User) MakeFulfilWithdrawIxs(ctx context.Context, orderAddress solana.PublicKey, caller solana.PublicKey) (*Bundle, error) {
	const op = "quartz.MakeFulfilWithdrawIxs"
	order, err := accounts.FetchWithdrawOrder(ctx, p.client.fetcher, orderAddress)
	if err != nil {
		return nil, err
	}
	if err = p.checkOrderOwner(op, orderAddress, order.TimeLock); err != nil {
		return nil, err
	}
	marketIndex := order.DriftMarketIndex
	mint, _, err := p.market(op, marketIndex)
	if err != nil {
		return nil, err
	}
	remaining, err := p.remainingAccounts(op, marketIndex)
	if err != nil {
		return nil, err
	}
	tokenPrograms, err := p.client.resolveTokenPrograms(ctx, mint)
	if err != nil {
		return nil, err
	}
	tokenProgram := tokenPrograms[0]

	// SOL is paid out as lamports; the program id stands in for the absent
	// destination token account.
	destinationSpl := p.client.programId
	if !mint.Equals(spl_token.NATIVE_MINT) {
		destinationSpl = addresses.GetAssociatedTokenAddress(order.Destination, mint, tokenProgram)
	}

	ix, err := p.client.buildWithRemainingAccounts(op, quartzlib.NewFulfilWithdrawInstructionBuilder().
		SetWithdrawOrderAccount(orderAddress).
		SetTimeLockRentPayerAccount(p.timeLockRentPayer(order.TimeLock.IsOwnerPayer)).
		SetCallerAccount(caller).
		SetVaultAccount(p.Vault).
		SetMuleAccount(addresses.GetWithdrawMulePublicKey(p.client.programId, p.Owner)).
		SetOwnerAccount(p.Owner).
		SetSplMintAccount(mint).
		SetDriftUserAccount(p.DriftUser).
		SetDriftUserStatsAccount(p.DriftUserStats).
		SetDriftStateAccount(addresses.GetDriftStateAccountPublicKey(constants.DRIFT_PROGRAM_ID)).
		SetSpotMarketVaultAccount(addresses.GetSpotMarketVaultAddress(constants.DRIFT_PROGRAM_ID, marketIndex)).
		SetDriftSignerAccount(addresses.GetDriftSignerPublicKey(constants.DRIFT_PROGRAM_ID)).
		SetTokenProgramAccount(tokenProgram).
		SetAssociatedTokenProgramAccount(spl_token.ASSOCIATED_TOKEN_PROGRAM_ID).
		SetDriftProgramAccount(constants.DRIFT_PROGRAM_ID).
		SetSystemProgramAccount(solana.SystemProgramID).
		SetDestinationAccount(order.Destination).
		SetDestinationSplAccount(destinationSpl), remaining)
	if err != nil {
		return nil, err
	}
	return p.client.newBundle([]solana.Instruction{ix}), nil
}

package quartz

import (
	"context"

	"quartzgo/accounts"
	"quartzgo/addresses"
	quartzlib "quartzgo/lib/quartz"

	"github.com/gagliardetto/solana-go"
)

// MakeInitiateSpendLimitsIxs opens a time-locked change of the vault's spend
// limits. The new order account is returned as a signer.
func (p *User) MakeInitiateSpendLimitsIxs(limits SpendLimits, paidByUser bool) (*Bundle, error) {
	const op = "quartz.MakeInitiateSpendLimitsIxs"
	if err := limits.validate(op); err != nil {
		return nil, err
	}
	order, err := newOrderKey(op)
	if err != nil {
		return nil, err
	}
	ix, err := p.client.build(op, quartzlib.NewInitiateSpendLimitsInstruction(
		limits.PerTransaction,
		limits.PerTimeframe,
		limits.TimeframeInSeconds,
		limits.NextTimeframeResetTimestamp,
		p.Vault,
		p.Owner,
		order.PublicKey(),
		p.timeLockRentPayer(paidByUser),
		solana.SystemProgramID,
	))
	if err != nil {
		return nil, err
	}
	return p.client.newBundle([]solana.Instruction{ix}, order), nil
}

// MakeFulfilSpendLimitsIxs applies a released spend limits order.
func (p *User) MakeFulfilSpendLimitsIxs(ctx context.Context, orderAddress solana.PublicKey, caller solana.PublicKey) (*Bundle, error) {
	const op = "quartz.MakeFulfilSpendLimitsIxs"
	order, err := accounts.FetchSpendLimitsOrder(ctx, p.client.fetcher, orderAddress)
	if err != nil {
		return nil, err
	}
	if err = p.checkOrderOwner(op, orderAddress, order.TimeLock); err != nil {
		return nil, err
	}
	ix, err := p.client.build(op, quartzlib.NewFulfilSpendLimitsInstructionBuilder().
		SetSpendLimitsOrderAccount(orderAddress).
		SetTimeLockRentPayerAccount(p.timeLockRentPayer(order.TimeLock.IsOwnerPayer)).
		SetCallerAccount(caller).
		SetVaultAccount(p.Vault).
		SetOwnerAccount(p.Owner).
		SetSystemProgramAccount(solana.SystemProgramID).
		SetEventAuthorityAccount(addresses.GetEventAuthorityPublicKey(p.client.programId)).
		SetProgramAccount(p.client.programId))
	if err != nil {
		return nil, err
	}
	return p.client.newBundle([]solana.Instruction{ix}), nil
}

package quartz

import (
	"context"
	"slices"

	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	quartzlib "quartzgo/lib/quartz"
	associatedtokenaccount "quartzgo/lib/solana/associated-token-account"
	spl_token "quartzgo/lib/spl-token"

	"github.com/gagliardetto/solana-go"
)

// MakeDepositIxs moves amountBaseUnits of a market's token from the owner's
// associated token account into the vault's Drift position. SOL is wrapped
// into the owner's wSOL account first.
func (p *User) MakeDepositIxs(
	ctx context.Context,
	amountBaseUnits uint64,
	marketIndex uint16,
	reduceOnly bool,
) (*Bundle, error) {
	const op = "quartz.MakeDepositIxs"
	if amountBaseUnits == 0 {
		return nil, errs.InvalidParameter(op, "deposit amount must be positive")
	}
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
	ownerSpl := addresses.GetAssociatedTokenAddress(p.Owner, mint, tokenProgram)

	var ixs []solana.Instruction
	if mint.Equals(spl_token.NATIVE_MINT) {
		ixs = append(ixs, associatedtokenaccount.NewCreateIdempotentInstruction(p.Owner, p.Owner, mint, ownerSpl, tokenProgram).Build())
		ixs = append(ixs, spl_token.CreateWrapSolInstructions(p.Owner, ownerSpl, amountBaseUnits)...)
	}

	deposit, err := p.client.buildWithRemainingAccounts(op, quartzlib.NewDepositInstructionBuilder().
		SetAmountBaseUnits(amountBaseUnits).
		SetDriftMarketIndex(marketIndex).
		SetReduceOnly(reduceOnly).
		SetVaultAccount(p.Vault).
		SetVaultSplAccount(addresses.GetVaultSplPublicKey(p.client.programId, p.Vault, mint)).
		SetOwnerAccount(p.Owner).
		SetOwnerSplAccount(ownerSpl).
		SetSplMintAccount(mint).
		SetDriftUserAccount(p.DriftUser).
		SetDriftUserStatsAccount(p.DriftUserStats).
		SetDriftStateAccount(addresses.GetDriftStateAccountPublicKey(constants.DRIFT_PROGRAM_ID)).
		SetSpotMarketVaultAccount(addresses.GetSpotMarketVaultAddress(constants.DRIFT_PROGRAM_ID, marketIndex)).
		SetTokenProgramAccount(tokenProgram).
		SetAssociatedTokenProgramAccount(spl_token.ASSOCIATED_TOKEN_PROGRAM_ID).
		SetDriftProgramAccount(constants.DRIFT_PROGRAM_ID).
		SetSystemProgramAccount(solana.SystemProgramID), remaining)
	if err != nil {
		return nil, err
	}

	p.client.logger.Debug().
		Str("owner", p.Owner.String()).
		Uint16("market", marketIndex).
		Uint64("amount", amountBaseUnits).
		Msg("deposit composed")
	return p.client.newBundle(slices.Concat(ixs, []solana.Instruction{deposit})), nil
}

// MakeFulfilDepositIx deposits on the owner's behalf from caller's token
// account.
func (p *User) MakeFulfilDepositIx(
	ctx context.Context,
	amountBaseUnits uint64,
	marketIndex uint16,
	reduceOnly bool,
	caller solana.PublicKey,
) (*Bundle, error) {
	const op = "quartz.MakeFulfilDepositIx"
	if amountBaseUnits == 0 {
		return nil, errs.InvalidParameter(op, "deposit amount must be positive")
	}
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

	ix, err := p.client.buildWithRemainingAccounts(op, quartzlib.NewFulfilDepositInstructionBuilder().
		SetAmountBaseUnits(amountBaseUnits).
		SetDriftMarketIndex(marketIndex).
		SetReduceOnly(reduceOnly).
		SetVaultAccount(p.Vault).
		SetVaultSplAccount(addresses.GetVaultSplPublicKey(p.client.programId, p.Vault, mint)).
		SetOwnerAccount(p.Owner).
		SetCallerAccount(caller).
		SetCallerSplAccount(addresses.GetAssociatedTokenAddress(caller, mint, tokenProgram)).
		SetSplMintAccount(mint).
		SetDriftUserAccount(p.DriftUser).
		SetDriftUserStatsAccount(p.DriftUserStats).
		SetDriftStateAccount(addresses.GetDriftStateAccountPublicKey(constants.DRIFT_PROGRAM_ID)).
		SetSpotMarketVaultAccount(addresses.GetSpotMarketVaultAddress(constants.DRIFT_PROGRAM_ID, marketIndex)).
		SetTokenProgramAccount(tokenProgram).
		SetAssociatedTokenProgramAccount(spl_token.ASSOCIATED_TOKEN_PROGRAM_ID).
		SetDriftProgramAccount(constants.DRIFT_PROGRAM_ID).
		SetSystemProgramAccount(solana.SystemProgramID), remaining)
	if err != nil {
		return nil, err
	}
	return p.client.newBundle([]solana.Instruction{ix}), nil
}

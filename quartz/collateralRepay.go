package quartz

import (
	"context"
	"slices"

	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	quartzlib "quartzgo/lib/quartz"

	"github.com/gagliardetto/solana-go"
)

// MakeCollateralRepayIxs wraps caller-supplied swap instructions in the
// three collateral repay legs. The emitted order is always start, swap,
// deposit, withdraw. Market indices are passed through as given; the
// program rejects identical markets. With requireOwnerSignature the owner
// is marked as a signer on all three legs after they are built.
func (p *User) MakeCollateralRepayIxs(
	ctx context.Context,
	caller solana.PublicKey,
	depositMarketIndex uint16,
	withdrawMarketIndex uint16,
	swapIxs []solana.Instruction,
	requireOwnerSignature bool,
) (*Bundle, error) {
	const op = "quartz.MakeCollateralRepayIxs"
	if len(swapIxs) == 0 {
		return nil, errs.InvalidParameter(op, "at least one swap instruction is required")
	}
	depositMint, depositOracle, err := p.market(op, depositMarketIndex)
	if err != nil {
		return nil, err
	}
	withdrawMint, withdrawOracle, err := p.market(op, withdrawMarketIndex)
	if err != nil {
		return nil, err
	}
	depositRemaining, err := p.remainingAccounts(op, depositMarketIndex)
	if err != nil {
		return nil, err
	}
	withdrawRemaining, err := p.remainingAccounts(op, withdrawMarketIndex)
	if err != nil {
		return nil, err
	}

	tokenPrograms, err := p.client.resolveTokenPrograms(ctx, depositMint, withdrawMint)
	if err != nil {
		return nil, err
	}
	depositTokenProgram, withdrawTokenProgram := tokenPrograms[0], tokenPrograms[1]
	callerDepositSpl := addresses.GetAssociatedTokenAddress(caller, depositMint, depositTokenProgram)
	callerWithdrawSpl := addresses.GetAssociatedTokenAddress(caller, withdrawMint, withdrawTokenProgram)
	ledger := addresses.GetCollateralRepayLedgerPublicKey(p.client.programId, p.Owner)
	driftState := addresses.GetDriftStateAccountPublicKey(constants.DRIFT_PROGRAM_ID)

	start, err := p.client.build(op, quartzlib.NewStartCollateralRepayInstructionBuilder().
		SetCallerAccount(caller).
		SetCallerDepositSplAccount(callerDepositSpl).
		SetCallerWithdrawSplAccount(callerWithdrawSpl).
		SetOwnerAccount(p.Owner).
		SetVaultAccount(p.Vault).
		SetMintDepositAccount(depositMint).
		SetMintWithdrawAccount(withdrawMint).
		SetTokenProgramDepositAccount(depositTokenProgram).
		SetTokenProgramWithdrawAccount(withdrawTokenProgram).
		SetSystemProgramAccount(solana.SystemProgramID).
		SetInstructionsAccount(solana.SysVarInstructionsPubkey).
		SetLedgerAccount(ledger))
	if err != nil {
		return nil, err
	}

	deposit, err := p.client.buildWithRemainingAccounts(op, quartzlib.NewDepositCollateralRepayInstructionBuilder().
		SetDepositMarketIndex(depositMarketIndex).
		SetCallerAccount(caller).
		SetCallerSplAccount(callerDepositSpl).
		SetOwnerAccount(p.Owner).
		SetVaultAccount(p.Vault).
		SetVaultSplAccount(addresses.GetVaultSplPublicKey(p.client.programId, p.Vault, depositMint)).
		SetSplMintAccount(depositMint).
		SetDriftUserAccount(p.DriftUser).
		SetDriftUserStatsAccount(p.DriftUserStats).
		SetDriftStateAccount(driftState).
		SetSpotMarketVaultAccount(addresses.GetSpotMarketVaultAddress(constants.DRIFT_PROGRAM_ID, depositMarketIndex)).
		SetTokenProgramAccount(depositTokenProgram).
		SetDriftProgramAccount(constants.DRIFT_PROGRAM_ID).
		SetSystemProgramAccount(solana.SystemProgramID).
		SetInstructionsAccount(solana.SysVarInstructionsPubkey).
		SetLedgerAccount(ledger), depositRemaining)
	if err != nil {
		return nil, err
	}

	withdraw, err := p.client.buildWithRemainingAccounts(op, quartzlib.NewWithdrawCollateralRepayInstructionBuilder().
		SetWithdrawMarketIndex(withdrawMarketIndex).
		SetCallerAccount(caller).
		SetCallerSplAccount(callerWithdrawSpl).
		SetOwnerAccount(p.Owner).
		SetVaultAccount(p.Vault).
		SetVaultSplAccount(addresses.GetVaultSplPublicKey(p.client.programId, p.Vault, withdrawMint)).
		SetSplMintAccount(withdrawMint).
		SetDriftUserAccount(p.DriftUser).
		SetDriftUserStatsAccount(p.DriftUserStats).
		SetDriftStateAccount(driftState).
		SetSpotMarketVaultAccount(addresses.GetSpotMarketVaultAddress(constants.DRIFT_PROGRAM_ID, withdrawMarketIndex)).
		SetDriftSignerAccount(addresses.GetDriftSignerPublicKey(constants.DRIFT_PROGRAM_ID)).
		SetTokenProgramAccount(withdrawTokenProgram).
		SetDriftProgramAccount(constants.DRIFT_PROGRAM_ID).
		SetSystemProgramAccount(solana.SystemProgramID).
		SetDepositPriceUpdateAccount(depositOracle).
		SetWithdrawPriceUpdateAccount(withdrawOracle).
		SetInstructionsAccount(solana.SysVarInstructionsPubkey).
		SetLedgerAccount(ledger), withdrawRemaining)
	if err != nil {
		return nil, err
	}

	legs := []solana.Instruction{start, deposit, withdraw}
	if requireOwnerSignature {
		MarkSigner(legs, p.Owner)
	}

	p.client.logger.Debug().
		Str("owner", p.Owner.String()).
		Str("caller", caller.String()).
		Uint16("depositMarket", depositMarketIndex).
		Uint16("withdrawMarket", withdrawMarketIndex).
		Int("swapIxs", len(swapIxs)).
		Msg("collateral repay composed")
	return p.client.newBundle(slices.Concat(
		[]solana.Instruction{start},
		swapIxs,
		[]solana.Instruction{deposit, withdraw},
	)), nil
}

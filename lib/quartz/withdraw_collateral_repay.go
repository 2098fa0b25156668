package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// WithdrawCollateralRepay withdraws collateral to cover the swap, checking slippage against both price updates.
type WithdrawCollateralRepay struct {
	WithdrawMarketIndex *uint16

	// [0] = [WRITE, SIGNER] caller
	// [1] = [WRITE] callerSpl
	// [2] = owner
	// [3] = [WRITE] vault
	// [4] = [WRITE] vaultSpl
	// [5] = splMint
	// [6] = [WRITE] driftUser
	// [7] = [WRITE] driftUserStats
	// [8] = [WRITE] driftState
	// [9] = [WRITE] spotMarketVault
	// [10] = driftSigner
	// [11] = tokenProgram
	// [12] = driftProgram
	// [13] = systemProgram
	// [14] = depositPriceUpdate
	// [15] = withdrawPriceUpdate
	// [16] = instructions
	// [17] = [WRITE] ledger
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewWithdrawCollateralRepayInstructionBuilder creates a new `WithdrawCollateralRepay` instruction builder.
func NewWithdrawCollateralRepayInstructionBuilder() *WithdrawCollateralRepay {
	return &WithdrawCollateralRepay{
		AccountMetaSlice: make(solana.AccountMetaSlice, 18),
	}
}

func (inst *WithdrawCollateralRepay) SetWithdrawMarketIndex(withdrawMarketIndex uint16) *WithdrawCollateralRepay {
	inst.WithdrawMarketIndex = &withdrawMarketIndex
	return inst
}

func (inst *WithdrawCollateralRepay) SetCallerAccount(caller solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[0] = solana.Meta(caller).WRITE().SIGNER()
	return inst
}

func (inst *WithdrawCollateralRepay) GetCallerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *WithdrawCollateralRepay) SetCallerSplAccount(callerSpl solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[1] = solana.Meta(callerSpl).WRITE()
	return inst
}

func (inst *WithdrawCollateralRepay) GetCallerSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *WithdrawCollateralRepay) SetOwnerAccount(owner solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[2] = solana.Meta(owner)
	return inst
}

func (inst *WithdrawCollateralRepay) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *WithdrawCollateralRepay) SetVaultAccount(vault solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[3] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *WithdrawCollateralRepay) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *WithdrawCollateralRepay) SetVaultSplAccount(vaultSpl solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[4] = solana.Meta(vaultSpl).WRITE()
	return inst
}

func (inst *WithdrawCollateralRepay) GetVaultSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *WithdrawCollateralRepay) SetSplMintAccount(splMint solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[5] = solana.Meta(splMint)
	return inst
}

func (inst *WithdrawCollateralRepay) GetSplMintAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *WithdrawCollateralRepay) SetDriftUserAccount(driftUser solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[6] = solana.Meta(driftUser).WRITE()
	return inst
}

func (inst *WithdrawCollateralRepay) GetDriftUserAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *WithdrawCollateralRepay) SetDriftUserStatsAccount(driftUserStats solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[7] = solana.Meta(driftUserStats).WRITE()
	return inst
}

func (inst *WithdrawCollateralRepay) GetDriftUserStatsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *WithdrawCollateralRepay) SetDriftStateAccount(driftState solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[8] = solana.Meta(driftState).WRITE()
	return inst
}

func (inst *WithdrawCollateralRepay) GetDriftStateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst *WithdrawCollateralRepay) SetSpotMarketVaultAccount(spotMarketVault solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[9] = solana.Meta(spotMarketVault).WRITE()
	return inst
}

func (inst *WithdrawCollateralRepay) GetSpotMarketVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

func (inst *WithdrawCollateralRepay) SetDriftSignerAccount(driftSigner solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[10] = solana.Meta(driftSigner)
	return inst
}

func (inst *WithdrawCollateralRepay) GetDriftSignerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

func (inst *WithdrawCollateralRepay) SetTokenProgramAccount(tokenProgram solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[11] = solana.Meta(tokenProgram)
	return inst
}

func (inst *WithdrawCollateralRepay) GetTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

func (inst *WithdrawCollateralRepay) SetDriftProgramAccount(driftProgram solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[12] = solana.Meta(driftProgram)
	return inst
}

func (inst *WithdrawCollateralRepay) GetDriftProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

func (inst *WithdrawCollateralRepay) SetSystemProgramAccount(systemProgram solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[13] = solana.Meta(systemProgram)
	return inst
}

func (inst *WithdrawCollateralRepay) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(13)
}

func (inst *WithdrawCollateralRepay) SetDepositPriceUpdateAccount(depositPriceUpdate solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[14] = solana.Meta(depositPriceUpdate)
	return inst
}

func (inst *WithdrawCollateralRepay) GetDepositPriceUpdateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(14)
}

func (inst *WithdrawCollateralRepay) SetWithdrawPriceUpdateAccount(withdrawPriceUpdate solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[15] = solana.Meta(withdrawPriceUpdate)
	return inst
}

func (inst *WithdrawCollateralRepay) GetWithdrawPriceUpdateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(15)
}

func (inst *WithdrawCollateralRepay) SetInstructionsAccount(instructions solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[16] = solana.Meta(instructions)
	return inst
}

func (inst *WithdrawCollateralRepay) GetInstructionsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(16)
}

func (inst *WithdrawCollateralRepay) SetLedgerAccount(ledger solana.PublicKey) *WithdrawCollateralRepay {
	inst.AccountMetaSlice[17] = solana.Meta(ledger).WRITE()
	return inst
}

func (inst *WithdrawCollateralRepay) GetLedgerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(17)
}

func (inst WithdrawCollateralRepay) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_WithdrawCollateralRepay,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst WithdrawCollateralRepay) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *WithdrawCollateralRepay) Validate() error {
	// Check whether all (required) parameters are set:
	{
		if inst.WithdrawMarketIndex == nil {
			return errors.New("WithdrawMarketIndex parameter is not set")
		}
	}

	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.Caller is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.CallerSpl is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.Owner is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.Vault is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.VaultSpl is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.SplMint is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.DriftUser is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.DriftUserStats is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.DriftState is not set")
		}
		if inst.AccountMetaSlice[9] == nil {
			return errors.New("accounts.SpotMarketVault is not set")
		}
		if inst.AccountMetaSlice[10] == nil {
			return errors.New("accounts.DriftSigner is not set")
		}
		if inst.AccountMetaSlice[11] == nil {
			return errors.New("accounts.TokenProgram is not set")
		}
		if inst.AccountMetaSlice[12] == nil {
			return errors.New("accounts.DriftProgram is not set")
		}
		if inst.AccountMetaSlice[13] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[14] == nil {
			return errors.New("accounts.DepositPriceUpdate is not set")
		}
		if inst.AccountMetaSlice[15] == nil {
			return errors.New("accounts.WithdrawPriceUpdate is not set")
		}
		if inst.AccountMetaSlice[16] == nil {
			return errors.New("accounts.Instructions is not set")
		}
		if inst.AccountMetaSlice[17] == nil {
			return errors.New("accounts.Ledger is not set")
		}
	}
	return nil
}

func (inst *WithdrawCollateralRepay) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("WithdrawCollateralRepay")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=1]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param("WithdrawMarketIndex", *inst.WithdrawMarketIndex))
					})

					instructionBranch.Child("Accounts[len=18]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("             caller", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("          callerSpl", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("              owner", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("              vault", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("           vaultSpl", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("            splMint", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("          driftUser", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta("     driftUserStats", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta("         driftState", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(format.Meta("    spotMarketVault", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(format.Meta("        driftSigner", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(format.Meta("       tokenProgram", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(format.Meta("       driftProgram", inst.AccountMetaSlice.Get(12)))
						accountsBranch.Child(format.Meta("      systemProgram", inst.AccountMetaSlice.Get(13)))
						accountsBranch.Child(format.Meta(" depositPriceUpdate", inst.AccountMetaSlice.Get(14)))
						accountsBranch.Child(format.Meta("withdrawPriceUpdate", inst.AccountMetaSlice.Get(15)))
						accountsBranch.Child(format.Meta("       instructions", inst.AccountMetaSlice.Get(16)))
						accountsBranch.Child(format.Meta("             ledger", inst.AccountMetaSlice.Get(17)))
					})
				})
		})
}

func (obj WithdrawCollateralRepay) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	err = encoder.WriteUint16(*obj.WithdrawMarketIndex, bin.LE)
	if err != nil {
		return err
	}
	return nil
}

func (obj *WithdrawCollateralRepay) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	{
		v, err := decoder.ReadUint16(bin.LE)
		if err != nil {
			return err
		}
		obj.WithdrawMarketIndex = &v
	}
	return nil
}

// NewWithdrawCollateralRepayInstruction declares a new WithdrawCollateralRepay instruction with the provided parameters and accounts.
func NewWithdrawCollateralRepayInstruction(
	// Parameters:
	withdrawMarketIndex uint16,
	// Accounts:
	caller solana.PublicKey,
	callerSpl solana.PublicKey,
	owner solana.PublicKey,
	vault solana.PublicKey,
	vaultSpl solana.PublicKey,
	splMint solana.PublicKey,
	driftUser solana.PublicKey,
	driftUserStats solana.PublicKey,
	driftState solana.PublicKey,
	spotMarketVault solana.PublicKey,
	driftSigner solana.PublicKey,
	tokenProgram solana.PublicKey,
	driftProgram solana.PublicKey,
	systemProgram solana.PublicKey,
	depositPriceUpdate solana.PublicKey,
	withdrawPriceUpdate solana.PublicKey,
	instructions solana.PublicKey,
	ledger solana.PublicKey,
) *WithdrawCollateralRepay {
	return NewWithdrawCollateralRepayInstructionBuilder().
		SetWithdrawMarketIndex(withdrawMarketIndex).
		SetCallerAccount(caller).
		SetCallerSplAccount(callerSpl).
		SetOwnerAccount(owner).
		SetVaultAccount(vault).
		SetVaultSplAccount(vaultSpl).
		SetSplMintAccount(splMint).
		SetDriftUserAccount(driftUser).
		SetDriftUserStatsAccount(driftUserStats).
		SetDriftStateAccount(driftState).
		SetSpotMarketVaultAccount(spotMarketVault).
		SetDriftSignerAccount(driftSigner).
		SetTokenProgramAccount(tokenProgram).
		SetDriftProgramAccount(driftProgram).
		SetSystemProgramAccount(systemProgram).
		SetDepositPriceUpdateAccount(depositPriceUpdate).
		SetWithdrawPriceUpdateAccount(withdrawPriceUpdate).
		SetInstructionsAccount(instructions).
		SetLedgerAccount(ledger)
}

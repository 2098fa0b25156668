package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

type DepositCollateralRepay struct {
	DepositMarketIndex *uint16

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
	// [10] = tokenProgram
	// [11] = driftProgram
	// [12] = systemProgram
	// [13] = instructions
	// [14] = [WRITE] ledger
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewDepositCollateralRepayInstructionBuilder creates a new `DepositCollateralRepay` instruction builder.
func NewDepositCollateralRepayInstructionBuilder() *DepositCollateralRepay {
	return &DepositCollateralRepay{
		AccountMetaSlice: make(solana.AccountMetaSlice, 15),
	}
}

func (inst *DepositCollateralRepay) SetDepositMarketIndex(depositMarketIndex uint16) *DepositCollateralRepay {
	inst.DepositMarketIndex = &depositMarketIndex
	return inst
}

func (inst *DepositCollateralRepay) SetCallerAccount(caller solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[0] = solana.Meta(caller).WRITE().SIGNER()
	return inst
}

func (inst *DepositCollateralRepay) GetCallerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *DepositCollateralRepay) SetCallerSplAccount(callerSpl solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[1] = solana.Meta(callerSpl).WRITE()
	return inst
}

func (inst *DepositCollateralRepay) GetCallerSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *DepositCollateralRepay) SetOwnerAccount(owner solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[2] = solana.Meta(owner)
	return inst
}

func (inst *DepositCollateralRepay) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *DepositCollateralRepay) SetVaultAccount(vault solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[3] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *DepositCollateralRepay) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *DepositCollateralRepay) SetVaultSplAccount(vaultSpl solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[4] = solana.Meta(vaultSpl).WRITE()
	return inst
}

func (inst *DepositCollateralRepay) GetVaultSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *DepositCollateralRepay) SetSplMintAccount(splMint solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[5] = solana.Meta(splMint)
	return inst
}

func (inst *DepositCollateralRepay) GetSplMintAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *DepositCollateralRepay) SetDriftUserAccount(driftUser solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[6] = solana.Meta(driftUser).WRITE()
	return inst
}

func (inst *DepositCollateralRepay) GetDriftUserAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *DepositCollateralRepay) SetDriftUserStatsAccount(driftUserStats solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[7] = solana.Meta(driftUserStats).WRITE()
	return inst
}

func (inst *DepositCollateralRepay) GetDriftUserStatsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *DepositCollateralRepay) SetDriftStateAccount(driftState solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[8] = solana.Meta(driftState).WRITE()
	return inst
}

func (inst *DepositCollateralRepay) GetDriftStateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst *DepositCollateralRepay) SetSpotMarketVaultAccount(spotMarketVault solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[9] = solana.Meta(spotMarketVault).WRITE()
	return inst
}

func (inst *DepositCollateralRepay) GetSpotMarketVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

func (inst *DepositCollateralRepay) SetTokenProgramAccount(tokenProgram solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[10] = solana.Meta(tokenProgram)
	return inst
}

func (inst *DepositCollateralRepay) GetTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

func (inst *DepositCollateralRepay) SetDriftProgramAccount(driftProgram solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[11] = solana.Meta(driftProgram)
	return inst
}

func (inst *DepositCollateralRepay) GetDriftProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

func (inst *DepositCollateralRepay) SetSystemProgramAccount(systemProgram solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[12] = solana.Meta(systemProgram)
	return inst
}

func (inst *DepositCollateralRepay) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

func (inst *DepositCollateralRepay) SetInstructionsAccount(instructions solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[13] = solana.Meta(instructions)
	return inst
}

func (inst *DepositCollateralRepay) GetInstructionsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(13)
}

func (inst *DepositCollateralRepay) SetLedgerAccount(ledger solana.PublicKey) *DepositCollateralRepay {
	inst.AccountMetaSlice[14] = solana.Meta(ledger).WRITE()
	return inst
}

func (inst *DepositCollateralRepay) GetLedgerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(14)
}

func (inst DepositCollateralRepay) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_DepositCollateralRepay,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst DepositCollateralRepay) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *DepositCollateralRepay) Validate() error {
	// Check whether all (required) parameters are set:
	{
		if inst.DepositMarketIndex == nil {
			return errors.New("DepositMarketIndex parameter is not set")
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
			return errors.New("accounts.TokenProgram is not set")
		}
		if inst.AccountMetaSlice[11] == nil {
			return errors.New("accounts.DriftProgram is not set")
		}
		if inst.AccountMetaSlice[12] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[13] == nil {
			return errors.New("accounts.Instructions is not set")
		}
		if inst.AccountMetaSlice[14] == nil {
			return errors.New("accounts.Ledger is not set")
		}
	}
	return nil
}

func (inst *DepositCollateralRepay) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("DepositCollateralRepay")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=1]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param("DepositMarketIndex", *inst.DepositMarketIndex))
					})

					instructionBranch.Child("Accounts[len=15]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("         caller", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("      callerSpl", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("          owner", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("          vault", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("       vaultSpl", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("        splMint", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("      driftUser", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta(" driftUserStats", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta("     driftState", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(format.Meta("spotMarketVault", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(format.Meta("   tokenProgram", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(format.Meta("   driftProgram", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(format.Meta("  systemProgram", inst.AccountMetaSlice.Get(12)))
						accountsBranch.Child(format.Meta("   instructions", inst.AccountMetaSlice.Get(13)))
						accountsBranch.Child(format.Meta("         ledger", inst.AccountMetaSlice.Get(14)))
					})
				})
		})
}

func (obj DepositCollateralRepay) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	err = encoder.WriteUint16(*obj.DepositMarketIndex, bin.LE)
	if err != nil {
		return err
	}
	return nil
}

func (obj *DepositCollateralRepay) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	{
		v, err := decoder.ReadUint16(bin.LE)
		if err != nil {
			return err
		}
		obj.DepositMarketIndex = &v
	}
	return nil
}

// NewDepositCollateralRepayInstruction declares a new DepositCollateralRepay instruction with the provided parameters and accounts.
func NewDepositCollateralRepayInstruction(
	// Parameters:
	depositMarketIndex uint16,
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
	tokenProgram solana.PublicKey,
	driftProgram solana.PublicKey,
	systemProgram solana.PublicKey,
	instructions solana.PublicKey,
	ledger solana.PublicKey,
) *DepositCollateralRepay {
	return NewDepositCollateralRepayInstructionBuilder().
		SetDepositMarketIndex(depositMarketIndex).
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
		SetTokenProgramAccount(tokenProgram).
		SetDriftProgramAccount(driftProgram).
		SetSystemProgramAccount(systemProgram).
		SetInstructionsAccount(instructions).
		SetLedgerAccount(ledger)
}

package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

type FulfilSpendLimits struct {
	// [0] = [WRITE] spendLimitsOrder
	// [1] = [WRITE] timeLockRentPayer
	// [2] = [WRITE, SIGNER] caller
	// [3] = [WRITE] vault
	// [4] = [WRITE] owner
	// [5] = systemProgram
	// [6] = eventAuthority
	// [7] = program
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewFulfilSpendLimitsInstructionBuilder creates a new `FulfilSpendLimits` instruction builder.
func NewFulfilSpendLimitsInstructionBuilder() *FulfilSpendLimits {
	return &FulfilSpendLimits{
		AccountMetaSlice: make(solana.AccountMetaSlice, 8),
	}
}

func (inst *FulfilSpendLimits) SetSpendLimitsOrderAccount(spendLimitsOrder solana.PublicKey) *FulfilSpendLimits {
	inst.AccountMetaSlice[0] = solana.Meta(spendLimitsOrder).WRITE()
	return inst
}

func (inst *FulfilSpendLimits) GetSpendLimitsOrderAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *FulfilSpendLimits) SetTimeLockRentPayerAccount(timeLockRentPayer solana.PublicKey) *FulfilSpendLimits {
	inst.AccountMetaSlice[1] = solana.Meta(timeLockRentPayer).WRITE()
	return inst
}

func (inst *FulfilSpendLimits) GetTimeLockRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *FulfilSpendLimits) SetCallerAccount(caller solana.PublicKey) *FulfilSpendLimits {
	inst.AccountMetaSlice[2] = solana.Meta(caller).WRITE().SIGNER()
	return inst
}

func (inst *FulfilSpendLimits) GetCallerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *FulfilSpendLimits) SetVaultAccount(vault solana.PublicKey) *FulfilSpendLimits {
	inst.AccountMetaSlice[3] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *FulfilSpendLimits) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *FulfilSpendLimits) SetOwnerAccount(owner solana.PublicKey) *FulfilSpendLimits {
	inst.AccountMetaSlice[4] = solana.Meta(owner).WRITE()
	return inst
}

func (inst *FulfilSpendLimits) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *FulfilSpendLimits) SetSystemProgramAccount(systemProgram solana.PublicKey) *FulfilSpendLimits {
	inst.AccountMetaSlice[5] = solana.Meta(systemProgram)
	return inst
}

func (inst *FulfilSpendLimits) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *FulfilSpendLimits) SetEventAuthorityAccount(eventAuthority solana.PublicKey) *FulfilSpendLimits {
	inst.AccountMetaSlice[6] = solana.Meta(eventAuthority)
	return inst
}

func (inst *FulfilSpendLimits) GetEventAuthorityAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *FulfilSpendLimits) SetProgramAccount(program solana.PublicKey) *FulfilSpendLimits {
	inst.AccountMetaSlice[7] = solana.Meta(program)
	return inst
}

func (inst *FulfilSpendLimits) GetProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst FulfilSpendLimits) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_FulfilSpendLimits,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst FulfilSpendLimits) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *FulfilSpendLimits) Validate() error {
	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.SpendLimitsOrder is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.TimeLockRentPayer is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.Caller is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.Vault is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.Owner is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.EventAuthority is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.Program is not set")
		}
	}
	return nil
}

func (inst *FulfilSpendLimits) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("FulfilSpendLimits")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=0]").ParentFunc(func(paramsBranch treeout.Branches) {})

					instructionBranch.Child("Accounts[len=8]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta(" spendLimitsOrder", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("timeLockRentPayer", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("           caller", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("            vault", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("            owner", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("    systemProgram", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("   eventAuthority", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta("          program", inst.AccountMetaSlice.Get(7)))
					})
				})
		})
}

func (obj FulfilSpendLimits) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	return nil
}

func (obj *FulfilSpendLimits) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	return nil
}

// NewFulfilSpendLimitsInstruction declares a new FulfilSpendLimits instruction with the provided parameters and accounts.
func NewFulfilSpendLimitsInstruction(
	// Accounts:
	spendLimitsOrder solana.PublicKey,
	timeLockRentPayer solana.PublicKey,
	caller solana.PublicKey,
	vault solana.PublicKey,
	owner solana.PublicKey,
	systemProgram solana.PublicKey,
	eventAuthority solana.PublicKey,
	program solana.PublicKey,
) *FulfilSpendLimits {
	return NewFulfilSpendLimitsInstructionBuilder().
		SetSpendLimitsOrderAccount(spendLimitsOrder).
		SetTimeLockRentPayerAccount(timeLockRentPayer).
		SetCallerAccount(caller).
		SetVaultAccount(vault).
		SetOwnerAccount(owner).
		SetSystemProgramAccount(systemProgram).
		SetEventAuthorityAccount(eventAuthority).
		SetProgramAccount(program)
}

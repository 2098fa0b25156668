package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

type CloseUser struct {
	// [0] = [WRITE] vault
	// [1] = [WRITE, SIGNER] owner
	// [2] = [WRITE] initRentPayer
	// [3] = [WRITE] driftUser
	// [4] = [WRITE] driftUserStats
	// [5] = [WRITE] driftState
	// [6] = driftProgram
	// [7] = systemProgram
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewCloseUserInstructionBuilder creates a new `CloseUser` instruction builder.
func NewCloseUserInstructionBuilder() *CloseUser {
	return &CloseUser{
		AccountMetaSlice: make(solana.AccountMetaSlice, 8),
	}
}

func (inst *CloseUser) SetVaultAccount(vault solana.PublicKey) *CloseUser {
	inst.AccountMetaSlice[0] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *CloseUser) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *CloseUser) SetOwnerAccount(owner solana.PublicKey) *CloseUser {
	inst.AccountMetaSlice[1] = solana.Meta(owner).WRITE().SIGNER()
	return inst
}

func (inst *CloseUser) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *CloseUser) SetInitRentPayerAccount(initRentPayer solana.PublicKey) *CloseUser {
	inst.AccountMetaSlice[2] = solana.Meta(initRentPayer).WRITE()
	return inst
}

func (inst *CloseUser) GetInitRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *CloseUser) SetDriftUserAccount(driftUser solana.PublicKey) *CloseUser {
	inst.AccountMetaSlice[3] = solana.Meta(driftUser).WRITE()
	return inst
}

func (inst *CloseUser) GetDriftUserAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *CloseUser) SetDriftUserStatsAccount(driftUserStats solana.PublicKey) *CloseUser {
	inst.AccountMetaSlice[4] = solana.Meta(driftUserStats).WRITE()
	return inst
}

func (inst *CloseUser) GetDriftUserStatsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *CloseUser) SetDriftStateAccount(driftState solana.PublicKey) *CloseUser {
	inst.AccountMetaSlice[5] = solana.Meta(driftState).WRITE()
	return inst
}

func (inst *CloseUser) GetDriftStateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *CloseUser) SetDriftProgramAccount(driftProgram solana.PublicKey) *CloseUser {
	inst.AccountMetaSlice[6] = solana.Meta(driftProgram)
	return inst
}

func (inst *CloseUser) GetDriftProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *CloseUser) SetSystemProgramAccount(systemProgram solana.PublicKey) *CloseUser {
	inst.AccountMetaSlice[7] = solana.Meta(systemProgram)
	return inst
}

func (inst *CloseUser) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst CloseUser) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_CloseUser,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst CloseUser) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *CloseUser) Validate() error {
	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.Vault is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.Owner is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.InitRentPayer is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.DriftUser is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.DriftUserStats is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.DriftState is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.DriftProgram is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
	}
	return nil
}

func (inst *CloseUser) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("CloseUser")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=0]").ParentFunc(func(paramsBranch treeout.Branches) {})

					instructionBranch.Child("Accounts[len=8]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("         vault", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("         owner", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta(" initRentPayer", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("     driftUser", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("driftUserStats", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("    driftState", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("  driftProgram", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta(" systemProgram", inst.AccountMetaSlice.Get(7)))
					})
				})
		})
}

func (obj CloseUser) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	return nil
}

func (obj *CloseUser) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	return nil
}

// NewCloseUserInstruction declares a new CloseUser instruction with the provided parameters and accounts.
func NewCloseUserInstruction(
	// Accounts:
	vault solana.PublicKey,
	owner solana.PublicKey,
	initRentPayer solana.PublicKey,
	driftUser solana.PublicKey,
	driftUserStats solana.PublicKey,
	driftState solana.PublicKey,
	driftProgram solana.PublicKey,
	systemProgram solana.PublicKey,
) *CloseUser {
	return NewCloseUserInstructionBuilder().
		SetVaultAccount(vault).
		SetOwnerAccount(owner).
		SetInitRentPayerAccount(initRentPayer).
		SetDriftUserAccount(driftUser).
		SetDriftUserStatsAccount(driftUserStats).
		SetDriftStateAccount(driftState).
		SetDriftProgramAccount(driftProgram).
		SetSystemProgramAccount(systemProgram)
}

package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// InitiateWithdraw opens a time-locked withdraw order.
type InitiateWithdraw struct {
	AmountBaseUnits  *uint64
	DriftMarketIndex *uint16
	ReduceOnly       *bool

	// [0] = vault
	// [1] = [SIGNER] owner
	// [2] = [WRITE, SIGNER] withdrawOrder
	// [3] = [WRITE] timeLockRentPayer
	// [4] = systemProgram
	// [5] = destination
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewInitiateWithdrawInstructionBuilder creates a new `InitiateWithdraw` instruction builder.
func NewInitiateWithdrawInstructionBuilder() *InitiateWithdraw {
	return &InitiateWithdraw{
		AccountMetaSlice: make(solana.AccountMetaSlice, 6),
	}
}

func (inst *InitiateWithdraw) SetAmountBaseUnits(amountBaseUnits uint64) *InitiateWithdraw {
	inst.AmountBaseUnits = &amountBaseUnits
	return inst
}

func (inst *InitiateWithdraw) SetDriftMarketIndex(driftMarketIndex uint16) *InitiateWithdraw {
	inst.DriftMarketIndex = &driftMarketIndex
	return inst
}

func (inst *InitiateWithdraw) SetReduceOnly(reduceOnly bool) *InitiateWithdraw {
	inst.ReduceOnly = &reduceOnly
	return inst
}

func (inst *InitiateWithdraw) SetVaultAccount(vault solana.PublicKey) *InitiateWithdraw {
	inst.AccountMetaSlice[0] = solana.Meta(vault)
	return inst
}

func (inst *InitiateWithdraw) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *InitiateWithdraw) SetOwnerAccount(owner solana.PublicKey) *InitiateWithdraw {
	inst.AccountMetaSlice[1] = solana.Meta(owner).SIGNER()
	return inst
}

func (inst *InitiateWithdraw) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *InitiateWithdraw) SetWithdrawOrderAccount(withdrawOrder solana.PublicKey) *InitiateWithdraw {
	inst.AccountMetaSlice[2] = solana.Meta(withdrawOrder).WRITE().SIGNER()
	return inst
}

func (inst *InitiateWithdraw) GetWithdrawOrderAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *InitiateWithdraw) SetTimeLockRentPayerAccount(timeLockRentPayer solana.PublicKey) *InitiateWithdraw {
	inst.AccountMetaSlice[3] = solana.Meta(timeLockRentPayer).WRITE()
	return inst
}

func (inst *InitiateWithdraw) GetTimeLockRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *InitiateWithdraw) SetSystemProgramAccount(systemProgram solana.PublicKey) *InitiateWithdraw {
	inst.AccountMetaSlice[4] = solana.Meta(systemProgram)
	return inst
}

func (inst *InitiateWithdraw) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *InitiateWithdraw) SetDestinationAccount(destination solana.PublicKey) *InitiateWithdraw {
	inst.AccountMetaSlice[5] = solana.Meta(destination)
	return inst
}

func (inst *InitiateWithdraw) GetDestinationAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst InitiateWithdraw) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_InitiateWithdraw,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst InitiateWithdraw) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *InitiateWithdraw) Validate() error {
	// Check whether all (required) parameters are set:
	{
		if inst.AmountBaseUnits == nil {
			return errors.New("AmountBaseUnits parameter is not set")
		}
		if inst.DriftMarketIndex == nil {
			return errors.New("DriftMarketIndex parameter is not set")
		}
		if inst.ReduceOnly == nil {
			return errors.New("ReduceOnly parameter is not set")
		}
	}

	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.Vault is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.Owner is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.WithdrawOrder is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.TimeLockRentPayer is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.Destination is not set")
		}
	}
	return nil
}

func (inst *InitiateWithdraw) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("InitiateWithdraw")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=3]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param(" AmountBaseUnits", *inst.AmountBaseUnits))
						paramsBranch.Child(format.Param("DriftMarketIndex", *inst.DriftMarketIndex))
						paramsBranch.Child(format.Param("      ReduceOnly", *inst.ReduceOnly))
					})

					instructionBranch.Child("Accounts[len=6]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("            vault", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("            owner", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("    withdrawOrder", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("timeLockRentPayer", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("    systemProgram", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("      destination", inst.AccountMetaSlice.Get(5)))
					})
				})
		})
}

func (obj InitiateWithdraw) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	err = encoder.WriteUint64(*obj.AmountBaseUnits, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteUint16(*obj.DriftMarketIndex, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteBool(*obj.ReduceOnly)
	if err != nil {
		return err
	}
	return nil
}

func (obj *InitiateWithdraw) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	{
		v, err := decoder.ReadUint64(bin.LE)
		if err != nil {
			return err
		}
		obj.AmountBaseUnits = &v
	}
	{
		v, err := decoder.ReadUint16(bin.LE)
		if err != nil {
			return err
		}
		obj.DriftMarketIndex = &v
	}
	{
		v, err := decoder.ReadBool()
		if err != nil {
			return err
		}
		obj.ReduceOnly = &v
	}
	return nil
}

// NewInitiateWithdrawInstruction declares a new InitiateWithdraw instruction with the provided parameters and accounts.
func NewInitiateWithdrawInstruction(
	// Parameters:
	amountBaseUnits uint64,
	driftMarketIndex uint16,
	reduceOnly bool,
	// Accounts:
	vault solana.PublicKey,
	owner solana.PublicKey,
	withdrawOrder solana.PublicKey,
	timeLockRentPayer solana.PublicKey,
	systemProgram solana.PublicKey,
	destination solana.PublicKey,
) *InitiateWithdraw {
	return NewInitiateWithdrawInstructionBuilder().
		SetAmountBaseUnits(amountBaseUnits).
		SetDriftMarketIndex(driftMarketIndex).
		SetReduceOnly(reduceOnly).
		SetVaultAccount(vault).
		SetOwnerAccount(owner).
		SetWithdrawOrderAccount(withdrawOrder).
		SetTimeLockRentPayerAccount(timeLockRentPayer).
		SetSystemProgramAccount(systemProgram).
		SetDestinationAccount(destination)
}

package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

type InitiateSpendLimits struct {
	SpendLimitPerTransaction    *uint64
	SpendLimitPerTimeframe      *uint64
	TimeframeInSeconds          *uint64
	NextTimeframeResetTimestamp *uint64

	// [0] = vault
	// [1] = [SIGNER] owner
	// [2] = [WRITE, SIGNER] spendLimitsOrder
	// [3] = [WRITE] timeLockRentPayer
	// [4] = systemProgram
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewInitiateSpendLimitsInstructionBuilder creates a new `InitiateSpendLimits` instruction builder.
func NewInitiateSpendLimitsInstructionBuilder() *InitiateSpendLimits {
	return &InitiateSpendLimits{
		AccountMetaSlice: make(solana.AccountMetaSlice, 5),
	}
}

func (inst *InitiateSpendLimits) SetSpendLimitPerTransaction(spendLimitPerTransaction uint64) *InitiateSpendLimits {
	inst.SpendLimitPerTransaction = &spendLimitPerTransaction
	return inst
}

func (inst *InitiateSpendLimits) SetSpendLimitPerTimeframe(spendLimitPerTimeframe uint64) *InitiateSpendLimits {
	inst.SpendLimitPerTimeframe = &spendLimitPerTimeframe
	return inst
}

func (inst *InitiateSpendLimits) SetTimeframeInSeconds(timeframeInSeconds uint64) *InitiateSpendLimits {
	inst.TimeframeInSeconds = &timeframeInSeconds
	return inst
}

func (inst *InitiateSpendLimits) SetNextTimeframeResetTimestamp(nextTimeframeResetTimestamp uint64) *InitiateSpendLimits {
	inst.NextTimeframeResetTimestamp = &nextTimeframeResetTimestamp
	return inst
}

func (inst *InitiateSpendLimits) SetVaultAccount(vault solana.PublicKey) *InitiateSpendLimits {
	inst.AccountMetaSlice[0] = solana.Meta(vault)
	return inst
}

func (inst *InitiateSpendLimits) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *InitiateSpendLimits) SetOwnerAccount(owner solana.PublicKey) *InitiateSpendLimits {
	inst.AccountMetaSlice[1] = solana.Meta(owner).SIGNER()
	return inst
}

func (inst *InitiateSpendLimits) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *InitiateSpendLimits) SetSpendLimitsOrderAccount(spendLimitsOrder solana.PublicKey) *InitiateSpendLimits {
	inst.AccountMetaSlice[2] = solana.Meta(spendLimitsOrder).WRITE().SIGNER()
	return inst
}

func (inst *InitiateSpendLimits) GetSpendLimitsOrderAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *InitiateSpendLimits) SetTimeLockRentPayerAccount(timeLockRentPayer solana.PublicKey) *InitiateSpendLimits {
	inst.AccountMetaSlice[3] = solana.Meta(timeLockRentPayer).WRITE()
	return inst
}

func (inst *InitiateSpendLimits) GetTimeLockRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *InitiateSpendLimits) SetSystemProgramAccount(systemProgram solana.PublicKey) *InitiateSpendLimits {
	inst.AccountMetaSlice[4] = solana.Meta(systemProgram)
	return inst
}

func (inst *InitiateSpendLimits) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst InitiateSpendLimits) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_InitiateSpendLimits,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst InitiateSpendLimits) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *InitiateSpendLimits) Validate() error {
	// Check whether all (required) parameters are set:
	{
		if inst.SpendLimitPerTransaction == nil {
			return errors.New("SpendLimitPerTransaction parameter is not set")
		}
		if inst.SpendLimitPerTimeframe == nil {
			return errors.New("SpendLimitPerTimeframe parameter is not set")
		}
		if inst.TimeframeInSeconds == nil {
			return errors.New("TimeframeInSeconds parameter is not set")
		}
		if inst.NextTimeframeResetTimestamp == nil {
			return errors.New("NextTimeframeResetTimestamp parameter is not set")
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
			return errors.New("accounts.SpendLimitsOrder is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.TimeLockRentPayer is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
	}
	return nil
}

func (inst *InitiateSpendLimits) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("InitiateSpendLimits")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=4]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param("   SpendLimitPerTransaction", *inst.SpendLimitPerTransaction))
						paramsBranch.Child(format.Param("     SpendLimitPerTimeframe", *inst.SpendLimitPerTimeframe))
						paramsBranch.Child(format.Param("         TimeframeInSeconds", *inst.TimeframeInSeconds))
						paramsBranch.Child(format.Param("NextTimeframeResetTimestamp", *inst.NextTimeframeResetTimestamp))
					})

					instructionBranch.Child("Accounts[len=5]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("            vault", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("            owner", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta(" spendLimitsOrder", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("timeLockRentPayer", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("    systemProgram", inst.AccountMetaSlice.Get(4)))
					})
				})
		})
}

func (obj InitiateSpendLimits) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	err = encoder.WriteUint64(*obj.SpendLimitPerTransaction, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteUint64(*obj.SpendLimitPerTimeframe, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteUint64(*obj.TimeframeInSeconds, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteUint64(*obj.NextTimeframeResetTimestamp, bin.LE)
	if err != nil {
		return err
	}
	return nil
}

func (obj *InitiateSpendLimits) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	{
		v, err := decoder.ReadUint64(bin.LE)
		if err != nil {
			return err
		}
		obj.SpendLimitPerTransaction = &v
	}
	{
		v, err := decoder.ReadUint64(bin.LE)
		if err != nil {
			return err
		}
		obj.SpendLimitPerTimeframe = &v
	}
	{
		v, err := decoder.ReadUint64(bin.LE)
		if err != nil {
			return err
		}
		obj.TimeframeInSeconds = &v
	}
	{
		v, err := decoder.ReadUint64(bin.LE)
		if err != nil {
			return err
		}
		obj.NextTimeframeResetTimestamp = &v
	}
	return nil
}

// NewInitiateSpendLimitsInstruction declares a new InitiateSpendLimits instruction with the provided parameters and accounts.
func NewInitiateSpendLimitsInstruction(
	// Parameters:
	spendLimitPerTransaction uint64,
	spendLimitPerTimeframe uint64,
	timeframeInSeconds uint64,
	nextTimeframeResetTimestamp uint64,
	// Accounts:
	vault solana.PublicKey,
	owner solana.PublicKey,
	spendLimitsOrder solana.PublicKey,
	timeLockRentPayer solana.PublicKey,
	systemProgram solana.PublicKey,
) *InitiateSpendLimits {
	return NewInitiateSpendLimitsInstructionBuilder().
		SetSpendLimitPerTransaction(spendLimitPerTransaction).
		SetSpendLimitPerTimeframe(spendLimitPerTimeframe).
		SetTimeframeInSeconds(timeframeInSeconds).
		SetNextTimeframeResetTimestamp(nextTimeframeResetTimestamp).
		SetVaultAccount(vault).
		SetOwnerAccount(owner).
		SetSpendLimitsOrderAccount(spendLimitsOrder).
		SetTimeLockRentPayerAccount(timeLockRentPayer).
		SetSystemProgramAccount(systemProgram)
}

package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// UpgradeVault migrates an existing vault to the current layout, setting its spend limits.
type UpgradeVault struct {
	SpendLimitPerTransaction    *uint64
	SpendLimitPerTimeframe      *uint64
	TimeframeInSeconds          *uint64
	NextTimeframeResetTimestamp *uint64

	// [0] = [WRITE] vault
	// [1] = [WRITE, SIGNER] owner
	// [2] = [WRITE] initRentPayer
	// [3] = systemProgram
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewUpgradeVaultInstructionBuilder creates a new `UpgradeVault` instruction builder.
func NewUpgradeVaultInstructionBuilder() *UpgradeVault {
	return &UpgradeVault{
		AccountMetaSlice: make(solana.AccountMetaSlice, 4),
	}
}

func (inst *UpgradeVault) SetSpendLimitPerTransaction(spendLimitPerTransaction uint64) *UpgradeVault {
	inst.SpendLimitPerTransaction = &spendLimitPerTransaction
	return inst
}

func (inst *UpgradeVault) SetSpendLimitPerTimeframe(spendLimitPerTimeframe uint64) *UpgradeVault {
	inst.SpendLimitPerTimeframe = &spendLimitPerTimeframe
	return inst
}

func (inst *UpgradeVault) SetTimeframeInSeconds(timeframeInSeconds uint64) *UpgradeVault {
	inst.TimeframeInSeconds = &timeframeInSeconds
	return inst
}

func (inst *UpgradeVault) SetNextTimeframeResetTimestamp(nextTimeframeResetTimestamp uint64) *UpgradeVault {
	inst.NextTimeframeResetTimestamp = &nextTimeframeResetTimestamp
	return inst
}

func (inst *UpgradeVault) SetVaultAccount(vault solana.PublicKey) *UpgradeVault {
	inst.AccountMetaSlice[0] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *UpgradeVault) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *UpgradeVault) SetOwnerAccount(owner solana.PublicKey) *UpgradeVault {
	inst.AccountMetaSlice[1] = solana.Meta(owner).WRITE().SIGNER()
	return inst
}

func (inst *UpgradeVault) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *UpgradeVault) SetInitRentPayerAccount(initRentPayer solana.PublicKey) *UpgradeVault {
	inst.AccountMetaSlice[2] = solana.Meta(initRentPayer).WRITE()
	return inst
}

func (inst *UpgradeVault) GetInitRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *UpgradeVault) SetSystemProgramAccount(systemProgram solana.PublicKey) *UpgradeVault {
	inst.AccountMetaSlice[3] = solana.Meta(systemProgram)
	return inst
}

func (inst *UpgradeVault) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst UpgradeVault) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_UpgradeVault,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst UpgradeVault) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *UpgradeVault) Validate() error {
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
			return errors.New("accounts.InitRentPayer is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
	}
	return nil
}

func (inst *UpgradeVault) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("UpgradeVault")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=4]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param("   SpendLimitPerTransaction", *inst.SpendLimitPerTransaction))
						paramsBranch.Child(format.Param("     SpendLimitPerTimeframe", *inst.SpendLimitPerTimeframe))
						paramsBranch.Child(format.Param("         TimeframeInSeconds", *inst.TimeframeInSeconds))
						paramsBranch.Child(format.Param("NextTimeframeResetTimestamp", *inst.NextTimeframeResetTimestamp))
					})

					instructionBranch.Child("Accounts[len=4]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("        vault", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("        owner", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("initRentPayer", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("systemProgram", inst.AccountMetaSlice.Get(3)))
					})
				})
		})
}

func (obj UpgradeVault) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
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

func (obj *UpgradeVault) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
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

// NewUpgradeVaultInstruction declares a new UpgradeVault instruction with the provided parameters and accounts.
func NewUpgradeVaultInstruction(
	// Parameters:
	spendLimitPerTransaction uint64,
	spendLimitPerTimeframe uint64,
	timeframeInSeconds uint64,
	nextTimeframeResetTimestamp uint64,
	// Accounts:
	vault solana.PublicKey,
	owner solana.PublicKey,
	initRentPayer solana.PublicKey,
	systemProgram solana.PublicKey,
) *UpgradeVault {
	return NewUpgradeVaultInstructionBuilder().
		SetSpendLimitPerTransaction(spendLimitPerTransaction).
		SetSpendLimitPerTimeframe(spendLimitPerTimeframe).
		SetTimeframeInSeconds(timeframeInSeconds).
		SetNextTimeframeResetTimestamp(nextTimeframeResetTimestamp).
		SetVaultAccount(vault).
		SetOwnerAccount(owner).
		SetInitRentPayerAccount(initRentPayer).
		SetSystemProgramAccount(systemProgram)
}

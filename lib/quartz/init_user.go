package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// InitUser creates the vault and its Drift user.
type InitUser struct {
	SpendLimitPerTransaction    *uint64
	SpendLimitPerTimeframe      *uint64
	TimeframeInSeconds          *uint64
	NextTimeframeResetTimestamp *uint64

	// [0] = [WRITE] vault
	// [1] = [WRITE, SIGNER] owner
	// [2] = [WRITE] initRentPayer
	// [3] = [WRITE] driftUser
	// [4] = [WRITE] driftUserStats
	// [5] = [WRITE] driftState
	// [6] = driftProgram
	// [7] = rent
	// [8] = systemProgram
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewInitUserInstructionBuilder creates a new `InitUser` instruction builder.
func NewInitUserInstructionBuilder() *InitUser {
	return &InitUser{
		AccountMetaSlice: make(solana.AccountMetaSlice, 9),
	}
}

func (inst *InitUser) SetSpendLimitPerTransaction(spendLimitPerTransaction uint64) *InitUser {
	inst.SpendLimitPerTransaction = &spendLimitPerTransaction
	return inst
}

func (inst *InitUser) SetSpendLimitPerTimeframe(spendLimitPerTimeframe uint64) *InitUser {
	inst.SpendLimitPerTimeframe = &spendLimitPerTimeframe
	return inst
}

func (inst *InitUser) SetTimeframeInSeconds(timeframeInSeconds uint64) *InitUser {
	inst.TimeframeInSeconds = &timeframeInSeconds
	return inst
}

func (inst *InitUser) SetNextTimeframeResetTimestamp(nextTimeframeResetTimestamp uint64) *InitUser {
	inst.NextTimeframeResetTimestamp = &nextTimeframeResetTimestamp
	return inst
}

func (inst *InitUser) SetVaultAccount(vault solana.PublicKey) *InitUser {
	inst.AccountMetaSlice[0] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *InitUser) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *InitUser) SetOwnerAccount(owner solana.PublicKey) *InitUser {
	inst.AccountMetaSlice[1] = solana.Meta(owner).WRITE().SIGNER()
	return inst
}

func (inst *InitUser) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *InitUser) SetInitRentPayerAccount(initRentPayer solana.PublicKey) *InitUser {
	inst.AccountMetaSlice[2] = solana.Meta(initRentPayer).WRITE()
	return inst
}

func (inst *InitUser) GetInitRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *InitUser) SetDriftUserAccount(driftUser solana.PublicKey) *InitUser {
	inst.AccountMetaSlice[3] = solana.Meta(driftUser).WRITE()
	return inst
}

func (inst *InitUser) GetDriftUserAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *InitUser) SetDriftUserStatsAccount(driftUserStats solana.PublicKey) *InitUser {
	inst.AccountMetaSlice[4] = solana.Meta(driftUserStats).WRITE()
	return inst
}

func (inst *InitUser) GetDriftUserStatsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *InitUser) SetDriftStateAccount(driftState solana.PublicKey) *InitUser {
	inst.AccountMetaSlice[5] = solana.Meta(driftState).WRITE()
	return inst
}

func (inst *InitUser) GetDriftStateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *InitUser) SetDriftProgramAccount(driftProgram solana.PublicKey) *InitUser {
	inst.AccountMetaSlice[6] = solana.Meta(driftProgram)
	return inst
}

func (inst *InitUser) GetDriftProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *InitUser) SetRentAccount(rent solana.PublicKey) *InitUser {
	inst.AccountMetaSlice[7] = solana.Meta(rent)
	return inst
}

func (inst *InitUser) GetRentAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *InitUser) SetSystemProgramAccount(systemProgram solana.PublicKey) *InitUser {
	inst.AccountMetaSlice[8] = solana.Meta(systemProgram)
	return inst
}

func (inst *InitUser) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst InitUser) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_InitUser,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst InitUser) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *InitUser) Validate() error {
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
			return errors.New("accounts.Rent is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
	}
	return nil
}

func (inst *InitUser) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("InitUser")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=4]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param("   SpendLimitPerTransaction", *inst.SpendLimitPerTransaction))
						paramsBranch.Child(format.Param("     SpendLimitPerTimeframe", *inst.SpendLimitPerTimeframe))
						paramsBranch.Child(format.Param("         TimeframeInSeconds", *inst.TimeframeInSeconds))
						paramsBranch.Child(format.Param("NextTimeframeResetTimestamp", *inst.NextTimeframeResetTimestamp))
					})

					instructionBranch.Child("Accounts[len=9]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("         vault", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("         owner", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta(" initRentPayer", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("     driftUser", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("driftUserStats", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("    driftState", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("  driftProgram", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta("          rent", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta(" systemProgram", inst.AccountMetaSlice.Get(8)))
					})
				})
		})
}

func (obj InitUser) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
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

func (obj *InitUser) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
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

// NewInitUserInstruction declares a new InitUser instruction with the provided parameters and accounts.
func NewInitUserInstruction(
	// Parameters:
	spendLimitPerTransaction uint64,
	spendLimitPerTimeframe uint64,
	timeframeInSeconds uint64,
	nextTimeframeResetTimestamp uint64,
	// Accounts:
	vault solana.PublicKey,
	owner solana.PublicKey,
	initRentPayer solana.PublicKey,
	driftUser solana.PublicKey,
	driftUserStats solana.PublicKey,
	driftState solana.PublicKey,
	driftProgram solana.PublicKey,
	rent solana.PublicKey,
	systemProgram solana.PublicKey,
) *InitUser {
	return NewInitUserInstructionBuilder().
		SetSpendLimitPerTransaction(spendLimitPerTransaction).
		SetSpendLimitPerTimeframe(spendLimitPerTimeframe).
		SetTimeframeInSeconds(timeframeInSeconds).
		SetNextTimeframeResetTimestamp(nextTimeframeResetTimestamp).
		SetVaultAccount(vault).
		SetOwnerAccount(owner).
		SetInitRentPayerAccount(initRentPayer).
		SetDriftUserAccount(driftUser).
		SetDriftUserStatsAccount(driftUserStats).
		SetDriftStateAccount(driftState).
		SetDriftProgramAccount(driftProgram).
		SetRentAccount(rent).
		SetSystemProgramAccount(systemProgram)
}

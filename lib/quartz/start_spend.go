package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// StartSpend withdraws USDC from Drift into the spend mule.
type StartSpend struct {
	AmountUsdcBaseUnits *uint64
	SpendFee            *bool

	// [0] = [WRITE] vault
	// [1] = owner
	// [2] = [WRITE, SIGNER] spendCaller
	// [3] = [WRITE] spendFeeDestination
	// [4] = [WRITE] mule
	// [5] = [WRITE] usdcMint
	// [6] = [WRITE] driftUser
	// [7] = [WRITE] driftUserStats
	// [8] = [WRITE] driftState
	// [9] = [WRITE] spotMarketVault
	// [10] = driftSigner
	// [11] = tokenProgram
	// [12] = associatedTokenProgram
	// [13] = driftProgram
	// [14] = instructions
	// [15] = systemProgram
	// [16] = eventAuthority
	// [17] = program
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewStartSpendInstructionBuilder creates a new `StartSpend` instruction builder.
func NewStartSpendInstructionBuilder() *StartSpend {
	return &StartSpend{
		AccountMetaSlice: make(solana.AccountMetaSlice, 18),
	}
}

func (inst *StartSpend) SetAmountUsdcBaseUnits(amountUsdcBaseUnits uint64) *StartSpend {
	inst.AmountUsdcBaseUnits = &amountUsdcBaseUnits
	return inst
}

func (inst *StartSpend) SetSpendFee(spendFee bool) *StartSpend {
	inst.SpendFee = &spendFee
	return inst
}

func (inst *StartSpend) SetVaultAccount(vault solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[0] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *StartSpend) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *StartSpend) SetOwnerAccount(owner solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[1] = solana.Meta(owner)
	return inst
}

func (inst *StartSpend) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *StartSpend) SetSpendCallerAccount(spendCaller solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[2] = solana.Meta(spendCaller).WRITE().SIGNER()
	return inst
}

func (inst *StartSpend) GetSpendCallerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *StartSpend) SetSpendFeeDestinationAccount(spendFeeDestination solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[3] = solana.Meta(spendFeeDestination).WRITE()
	return inst
}

func (inst *StartSpend) GetSpendFeeDestinationAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *StartSpend) SetMuleAccount(mule solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[4] = solana.Meta(mule).WRITE()
	return inst
}

func (inst *StartSpend) GetMuleAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *StartSpend) SetUsdcMintAccount(usdcMint solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[5] = solana.Meta(usdcMint).WRITE()
	return inst
}

func (inst *StartSpend) GetUsdcMintAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *StartSpend) SetDriftUserAccount(driftUser solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[6] = solana.Meta(driftUser).WRITE()
	return inst
}

func (inst *StartSpend) GetDriftUserAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *StartSpend) SetDriftUserStatsAccount(driftUserStats solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[7] = solana.Meta(driftUserStats).WRITE()
	return inst
}

func (inst *StartSpend) GetDriftUserStatsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *StartSpend) SetDriftStateAccount(driftState solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[8] = solana.Meta(driftState).WRITE()
	return inst
}

func (inst *StartSpend) GetDriftStateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst *StartSpend) SetSpotMarketVaultAccount(spotMarketVault solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[9] = solana.Meta(spotMarketVault).WRITE()
	return inst
}

func (inst *StartSpend) GetSpotMarketVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

func (inst *StartSpend) SetDriftSignerAccount(driftSigner solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[10] = solana.Meta(driftSigner)
	return inst
}

func (inst *StartSpend) GetDriftSignerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

func (inst *StartSpend) SetTokenProgramAccount(tokenProgram solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[11] = solana.Meta(tokenProgram)
	return inst
}

func (inst *StartSpend) GetTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

func (inst *StartSpend) SetAssociatedTokenProgramAccount(associatedTokenProgram solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[12] = solana.Meta(associatedTokenProgram)
	return inst
}

func (inst *StartSpend) GetAssociatedTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

func (inst *StartSpend) SetDriftProgramAccount(driftProgram solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[13] = solana.Meta(driftProgram)
	return inst
}

func (inst *StartSpend) GetDriftProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(13)
}

func (inst *StartSpend) SetInstructionsAccount(instructions solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[14] = solana.Meta(instructions)
	return inst
}

func (inst *StartSpend) GetInstructionsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(14)
}

func (inst *StartSpend) SetSystemProgramAccount(systemProgram solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[15] = solana.Meta(systemProgram)
	return inst
}

func (inst *StartSpend) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(15)
}

func (inst *StartSpend) SetEventAuthorityAccount(eventAuthority solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[16] = solana.Meta(eventAuthority)
	return inst
}

func (inst *StartSpend) GetEventAuthorityAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(16)
}

func (inst *StartSpend) SetProgramAccount(program solana.PublicKey) *StartSpend {
	inst.AccountMetaSlice[17] = solana.Meta(program)
	return inst
}

func (inst *StartSpend) GetProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(17)
}

func (inst StartSpend) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_StartSpend,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst StartSpend) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *StartSpend) Validate() error {
	// Check whether all (required) parameters are set:
	{
		if inst.AmountUsdcBaseUnits == nil {
			return errors.New("AmountUsdcBaseUnits parameter is not set")
		}
		if inst.SpendFee == nil {
			return errors.New("SpendFee parameter is not set")
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
			return errors.New("accounts.SpendCaller is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.SpendFeeDestination is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.Mule is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.UsdcMint is not set")
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
			return errors.New("accounts.AssociatedTokenProgram is not set")
		}
		if inst.AccountMetaSlice[13] == nil {
			return errors.New("accounts.DriftProgram is not set")
		}
		if inst.AccountMetaSlice[14] == nil {
			return errors.New("accounts.Instructions is not set")
		}
		if inst.AccountMetaSlice[15] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[16] == nil {
			return errors.New("accounts.EventAuthority is not set")
		}
		if inst.AccountMetaSlice[17] == nil {
			return errors.New("accounts.Program is not set")
		}
	}
	return nil
}

func (inst *StartSpend) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("StartSpend")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=2]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param("AmountUsdcBaseUnits", *inst.AmountUsdcBaseUnits))
						paramsBranch.Child(format.Param("           SpendFee", *inst.SpendFee))
					})

					instructionBranch.Child("Accounts[len=18]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("                 vault", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("                 owner", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("           spendCaller", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("   spendFeeDestination", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("                  mule", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("              usdcMint", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("             driftUser", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta("        driftUserStats", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta("            driftState", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(format.Meta("       spotMarketVault", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(format.Meta("           driftSigner", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(format.Meta("          tokenProgram", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(format.Meta("associatedTokenProgram", inst.AccountMetaSlice.Get(12)))
						accountsBranch.Child(format.Meta("          driftProgram", inst.AccountMetaSlice.Get(13)))
						accountsBranch.Child(format.Meta("          instructions", inst.AccountMetaSlice.Get(14)))
						accountsBranch.Child(format.Meta("         systemProgram", inst.AccountMetaSlice.Get(15)))
						accountsBranch.Child(format.Meta("        eventAuthority", inst.AccountMetaSlice.Get(16)))
						accountsBranch.Child(format.Meta("               program", inst.AccountMetaSlice.Get(17)))
					})
				})
		})
}

func (obj StartSpend) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	err = encoder.WriteUint64(*obj.AmountUsdcBaseUnits, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteBool(*obj.SpendFee)
	if err != nil {
		return err
	}
	return nil
}

func (obj *StartSpend) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	{
		v, err := decoder.ReadUint64(bin.LE)
		if err != nil {
			return err
		}
		obj.AmountUsdcBaseUnits = &v
	}
	{
		v, err := decoder.ReadBool()
		if err != nil {
			return err
		}
		obj.SpendFee = &v
	}
	return nil
}

// NewStartSpendInstruction declares a new StartSpend instruction with the provided parameters and accounts.
func NewStartSpendInstruction(
	// Parameters:
	amountUsdcBaseUnits uint64,
	spendFee bool,
	// Accounts:
	vault solana.PublicKey,
	owner solana.PublicKey,
	spendCaller solana.PublicKey,
	spendFeeDestination solana.PublicKey,
	mule solana.PublicKey,
	usdcMint solana.PublicKey,
	driftUser solana.PublicKey,
	driftUserStats solana.PublicKey,
	driftState solana.PublicKey,
	spotMarketVault solana.PublicKey,
	driftSigner solana.PublicKey,
	tokenProgram solana.PublicKey,
	associatedTokenProgram solana.PublicKey,
	driftProgram solana.PublicKey,
	instructions solana.PublicKey,
	systemProgram solana.PublicKey,
	eventAuthority solana.PublicKey,
	program solana.PublicKey,
) *StartSpend {
	return NewStartSpendInstructionBuilder().
		SetAmountUsdcBaseUnits(amountUsdcBaseUnits).
		SetSpendFee(spendFee).
		SetVaultAccount(vault).
		SetOwnerAccount(owner).
		SetSpendCallerAccount(spendCaller).
		SetSpendFeeDestinationAccount(spendFeeDestination).
		SetMuleAccount(mule).
		SetUsdcMintAccount(usdcMint).
		SetDriftUserAccount(driftUser).
		SetDriftUserStatsAccount(driftUserStats).
		SetDriftStateAccount(driftState).
		SetSpotMarketVaultAccount(spotMarketVault).
		SetDriftSignerAccount(driftSigner).
		SetTokenProgramAccount(tokenProgram).
		SetAssociatedTokenProgramAccount(associatedTokenProgram).
		SetDriftProgramAccount(driftProgram).
		SetInstructionsAccount(instructions).
		SetSystemProgramAccount(systemProgram).
		SetEventAuthorityAccount(eventAuthority).
		SetProgramAccount(program)
}

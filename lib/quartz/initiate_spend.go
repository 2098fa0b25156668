package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// InitiateSpend moves USDC from Drift into the spend hold vault behind a time lock.
type InitiateSpend struct {
	AmountUsdcBaseUnits *uint64
	SpendFee            *bool

	// [0] = [WRITE] vault
	// [1] = owner
	// [2] = [WRITE, SIGNER] spendCaller
	// [3] = [WRITE] usdcMint
	// [4] = [WRITE] driftUser
	// [5] = [WRITE] driftUserStats
	// [6] = [WRITE] driftState
	// [7] = [WRITE] spotMarketVault
	// [8] = driftSigner
	// [9] = tokenProgram
	// [10] = associatedTokenProgram
	// [11] = driftProgram
	// [12] = systemProgram
	// [13] = [WRITE] timeLockRentPayer
	// [14] = [WRITE, SIGNER] spendHold
	// [15] = [WRITE] spendHoldVault
	// [16] = eventAuthority
	// [17] = program
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewInitiateSpendInstructionBuilder creates a new `InitiateSpend` instruction builder.
func NewInitiateSpendInstructionBuilder() *InitiateSpend {
	return &InitiateSpend{
		AccountMetaSlice: make(solana.AccountMetaSlice, 18),
	}
}

func (inst *InitiateSpend) SetAmountUsdcBaseUnits(amountUsdcBaseUnits uint64) *InitiateSpend {
	inst.AmountUsdcBaseUnits = &amountUsdcBaseUnits
	return inst
}

func (inst *InitiateSpend) SetSpendFee(spendFee bool) *InitiateSpend {
	inst.SpendFee = &spendFee
	return inst
}

func (inst *InitiateSpend) SetVaultAccount(vault solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[0] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *InitiateSpend) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *InitiateSpend) SetOwnerAccount(owner solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[1] = solana.Meta(owner)
	return inst
}

func (inst *InitiateSpend) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *InitiateSpend) SetSpendCallerAccount(spendCaller solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[2] = solana.Meta(spendCaller).WRITE().SIGNER()
	return inst
}

func (inst *InitiateSpend) GetSpendCallerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *InitiateSpend) SetUsdcMintAccount(usdcMint solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[3] = solana.Meta(usdcMint).WRITE()
	return inst
}

func (inst *InitiateSpend) GetUsdcMintAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *InitiateSpend) SetDriftUserAccount(driftUser solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[4] = solana.Meta(driftUser).WRITE()
	return inst
}

func (inst *InitiateSpend) GetDriftUserAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *InitiateSpend) SetDriftUserStatsAccount(driftUserStats solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[5] = solana.Meta(driftUserStats).WRITE()
	return inst
}

func (inst *InitiateSpend) GetDriftUserStatsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *InitiateSpend) SetDriftStateAccount(driftState solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[6] = solana.Meta(driftState).WRITE()
	return inst
}

func (inst *InitiateSpend) GetDriftStateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *InitiateSpend) SetSpotMarketVaultAccount(spotMarketVault solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[7] = solana.Meta(spotMarketVault).WRITE()
	return inst
}

func (inst *InitiateSpend) GetSpotMarketVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *InitiateSpend) SetDriftSignerAccount(driftSigner solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[8] = solana.Meta(driftSigner)
	return inst
}

func (inst *InitiateSpend) GetDriftSignerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst *InitiateSpend) SetTokenProgramAccount(tokenProgram solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[9] = solana.Meta(tokenProgram)
	return inst
}

func (inst *InitiateSpend) GetTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

func (inst *InitiateSpend) SetAssociatedTokenProgramAccount(associatedTokenProgram solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[10] = solana.Meta(associatedTokenProgram)
	return inst
}

func (inst *InitiateSpend) GetAssociatedTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

func (inst *InitiateSpend) SetDriftProgramAccount(driftProgram solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[11] = solana.Meta(driftProgram)
	return inst
}

func (inst *InitiateSpend) GetDriftProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

func (inst *InitiateSpend) SetSystemProgramAccount(systemProgram solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[12] = solana.Meta(systemProgram)
	return inst
}

func (inst *InitiateSpend) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

func (inst *InitiateSpend) SetTimeLockRentPayerAccount(timeLockRentPayer solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[13] = solana.Meta(timeLockRentPayer).WRITE()
	return inst
}

func (inst *InitiateSpend) GetTimeLockRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(13)
}

func (inst *InitiateSpend) SetSpendHoldAccount(spendHold solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[14] = solana.Meta(spendHold).WRITE().SIGNER()
	return inst
}

func (inst *InitiateSpend) GetSpendHoldAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(14)
}

func (inst *InitiateSpend) SetSpendHoldVaultAccount(spendHoldVault solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[15] = solana.Meta(spendHoldVault).WRITE()
	return inst
}

func (inst *InitiateSpend) GetSpendHoldVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(15)
}

func (inst *InitiateSpend) SetEventAuthorityAccount(eventAuthority solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[16] = solana.Meta(eventAuthority)
	return inst
}

func (inst *InitiateSpend) GetEventAuthorityAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(16)
}

func (inst *InitiateSpend) SetProgramAccount(program solana.PublicKey) *InitiateSpend {
	inst.AccountMetaSlice[17] = solana.Meta(program)
	return inst
}

func (inst *InitiateSpend) GetProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(17)
}

func (inst InitiateSpend) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_InitiateSpend,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst InitiateSpend) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *InitiateSpend) Validate() error {
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
			return errors.New("accounts.UsdcMint is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.DriftUser is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.DriftUserStats is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.DriftState is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.SpotMarketVault is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.DriftSigner is not set")
		}
		if inst.AccountMetaSlice[9] == nil {
			return errors.New("accounts.TokenProgram is not set")
		}
		if inst.AccountMetaSlice[10] == nil {
			return errors.New("accounts.AssociatedTokenProgram is not set")
		}
		if inst.AccountMetaSlice[11] == nil {
			return errors.New("accounts.DriftProgram is not set")
		}
		if inst.AccountMetaSlice[12] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[13] == nil {
			return errors.New("accounts.TimeLockRentPayer is not set")
		}
		if inst.AccountMetaSlice[14] == nil {
			return errors.New("accounts.SpendHold is not set")
		}
		if inst.AccountMetaSlice[15] == nil {
			return errors.New("accounts.SpendHoldVault is not set")
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

func (inst *InitiateSpend) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("InitiateSpend")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=2]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param("AmountUsdcBaseUnits", *inst.AmountUsdcBaseUnits))
						paramsBranch.Child(format.Param("           SpendFee", *inst.SpendFee))
					})

					instructionBranch.Child("Accounts[len=18]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("                 vault", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("                 owner", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("           spendCaller", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("              usdcMint", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("             driftUser", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("        driftUserStats", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("            driftState", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta("       spotMarketVault", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta("           driftSigner", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(format.Meta("          tokenProgram", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(format.Meta("associatedTokenProgram", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(format.Meta("          driftProgram", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(format.Meta("         systemProgram", inst.AccountMetaSlice.Get(12)))
						accountsBranch.Child(format.Meta("     timeLockRentPayer", inst.AccountMetaSlice.Get(13)))
						accountsBranch.Child(format.Meta("             spendHold", inst.AccountMetaSlice.Get(14)))
						accountsBranch.Child(format.Meta("        spendHoldVault", inst.AccountMetaSlice.Get(15)))
						accountsBranch.Child(format.Meta("        eventAuthority", inst.AccountMetaSlice.Get(16)))
						accountsBranch.Child(format.Meta("               program", inst.AccountMetaSlice.Get(17)))
					})
				})
		})
}

func (obj InitiateSpend) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
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

func (obj *InitiateSpend) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
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

// NewInitiateSpendInstruction declares a new InitiateSpend instruction with the provided parameters and accounts.
func NewInitiateSpendInstruction(
	// Parameters:
	amountUsdcBaseUnits uint64,
	spendFee bool,
	// Accounts:
	vault solana.PublicKey,
	owner solana.PublicKey,
	spendCaller solana.PublicKey,
	usdcMint solana.PublicKey,
	driftUser solana.PublicKey,
	driftUserStats solana.PublicKey,
	driftState solana.PublicKey,
	spotMarketVault solana.PublicKey,
	driftSigner solana.PublicKey,
	tokenProgram solana.PublicKey,
	associatedTokenProgram solana.PublicKey,
	driftProgram solana.PublicKey,
	systemProgram solana.PublicKey,
	timeLockRentPayer solana.PublicKey,
	spendHold solana.PublicKey,
	spendHoldVault solana.PublicKey,
	eventAuthority solana.PublicKey,
	program solana.PublicKey,
) *InitiateSpend {
	return NewInitiateSpendInstructionBuilder().
		SetAmountUsdcBaseUnits(amountUsdcBaseUnits).
		SetSpendFee(spendFee).
		SetVaultAccount(vault).
		SetOwnerAccount(owner).
		SetSpendCallerAccount(spendCaller).
		SetUsdcMintAccount(usdcMint).
		SetDriftUserAccount(driftUser).
		SetDriftUserStatsAccount(driftUserStats).
		SetDriftStateAccount(driftState).
		SetSpotMarketVaultAccount(spotMarketVault).
		SetDriftSignerAccount(driftSigner).
		SetTokenProgramAccount(tokenProgram).
		SetAssociatedTokenProgramAccount(associatedTokenProgram).
		SetDriftProgramAccount(driftProgram).
		SetSystemProgramAccount(systemProgram).
		SetTimeLockRentPayerAccount(timeLockRentPayer).
		SetSpendHoldAccount(spendHold).
		SetSpendHoldVaultAccount(spendHoldVault).
		SetEventAuthorityAccount(eventAuthority).
		SetProgramAccount(program)
}

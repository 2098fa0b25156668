package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// FulfilDeposit moves tokens already sent to the vault's deposit address into Drift.
type FulfilDeposit struct {
	AmountBaseUnits  *uint64
	DriftMarketIndex *uint16
	ReduceOnly       *bool

	// [0] = [WRITE] vault
	// [1] = [WRITE] vaultSpl
	// [2] = owner
	// [3] = [WRITE, SIGNER] caller
	// [4] = [WRITE] callerSpl
	// [5] = splMint
	// [6] = [WRITE] driftUser
	// [7] = [WRITE] driftUserStats
	// [8] = [WRITE] driftState
	// [9] = [WRITE] spotMarketVault
	// [10] = tokenProgram
	// [11] = associatedTokenProgram
	// [12] = driftProgram
	// [13] = systemProgram
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewFulfilDepositInstructionBuilder creates a new `FulfilDeposit` instruction builder.
func NewFulfilDepositInstructionBuilder() *FulfilDeposit {
	return &FulfilDeposit{
		AccountMetaSlice: make(solana.AccountMetaSlice, 14),
	}
}

func (inst *FulfilDeposit) SetAmountBaseUnits(amountBaseUnits uint64) *FulfilDeposit {
	inst.AmountBaseUnits = &amountBaseUnits
	return inst
}

func (inst *FulfilDeposit) SetDriftMarketIndex(driftMarketIndex uint16) *FulfilDeposit {
	inst.DriftMarketIndex = &driftMarketIndex
	return inst
}

func (inst *FulfilDeposit) SetReduceOnly(reduceOnly bool) *FulfilDeposit {
	inst.ReduceOnly = &reduceOnly
	return inst
}

func (inst *FulfilDeposit) SetVaultAccount(vault solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[0] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *FulfilDeposit) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *FulfilDeposit) SetVaultSplAccount(vaultSpl solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[1] = solana.Meta(vaultSpl).WRITE()
	return inst
}

func (inst *FulfilDeposit) GetVaultSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *FulfilDeposit) SetOwnerAccount(owner solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[2] = solana.Meta(owner)
	return inst
}

func (inst *FulfilDeposit) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *FulfilDeposit) SetCallerAccount(caller solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[3] = solana.Meta(caller).WRITE().SIGNER()
	return inst
}

func (inst *FulfilDeposit) GetCallerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *FulfilDeposit) SetCallerSplAccount(callerSpl solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[4] = solana.Meta(callerSpl).WRITE()
	return inst
}

func (inst *FulfilDeposit) GetCallerSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *FulfilDeposit) SetSplMintAccount(splMint solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[5] = solana.Meta(splMint)
	return inst
}

func (inst *FulfilDeposit) GetSplMintAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *FulfilDeposit) SetDriftUserAccount(driftUser solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[6] = solana.Meta(driftUser).WRITE()
	return inst
}

func (inst *FulfilDeposit) GetDriftUserAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *FulfilDeposit) SetDriftUserStatsAccount(driftUserStats solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[7] = solana.Meta(driftUserStats).WRITE()
	return inst
}

func (inst *FulfilDeposit) GetDriftUserStatsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *FulfilDeposit) SetDriftStateAccount(driftState solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[8] = solana.Meta(driftState).WRITE()
	return inst
}

func (inst *FulfilDeposit) GetDriftStateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst *FulfilDeposit) SetSpotMarketVaultAccount(spotMarketVault solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[9] = solana.Meta(spotMarketVault).WRITE()
	return inst
}

func (inst *FulfilDeposit) GetSpotMarketVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

func (inst *FulfilDeposit) SetTokenProgramAccount(tokenProgram solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[10] = solana.Meta(tokenProgram)
	return inst
}

func (inst *FulfilDeposit) GetTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

func (inst *FulfilDeposit) SetAssociatedTokenProgramAccount(associatedTokenProgram solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[11] = solana.Meta(associatedTokenProgram)
	return inst
}

func (inst *FulfilDeposit) GetAssociatedTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

func (inst *FulfilDeposit) SetDriftProgramAccount(driftProgram solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[12] = solana.Meta(driftProgram)
	return inst
}

func (inst *FulfilDeposit) GetDriftProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

func (inst *FulfilDeposit) SetSystemProgramAccount(systemProgram solana.PublicKey) *FulfilDeposit {
	inst.AccountMetaSlice[13] = solana.Meta(systemProgram)
	return inst
}

func (inst *FulfilDeposit) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(13)
}

func (inst FulfilDeposit) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_FulfilDeposit,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst FulfilDeposit) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *FulfilDeposit) Validate() error {
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
			return errors.New("accounts.VaultSpl is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.Owner is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.Caller is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.CallerSpl is not set")
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
			return errors.New("accounts.AssociatedTokenProgram is not set")
		}
		if inst.AccountMetaSlice[12] == nil {
			return errors.New("accounts.DriftProgram is not set")
		}
		if inst.AccountMetaSlice[13] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
	}
	return nil
}

func (inst *FulfilDeposit) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("FulfilDeposit")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=3]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param(" AmountBaseUnits", *inst.AmountBaseUnits))
						paramsBranch.Child(format.Param("DriftMarketIndex", *inst.DriftMarketIndex))
						paramsBranch.Child(format.Param("      ReduceOnly", *inst.ReduceOnly))
					})

					instructionBranch.Child("Accounts[len=14]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("                 vault", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("              vaultSpl", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("                 owner", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("                caller", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("             callerSpl", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("               splMint", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("             driftUser", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta("        driftUserStats", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta("            driftState", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(format.Meta("       spotMarketVault", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(format.Meta("          tokenProgram", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(format.Meta("associatedTokenProgram", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(format.Meta("          driftProgram", inst.AccountMetaSlice.Get(12)))
						accountsBranch.Child(format.Meta("         systemProgram", inst.AccountMetaSlice.Get(13)))
					})
				})
		})
}

func (obj FulfilDeposit) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
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

func (obj *FulfilDeposit) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
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

// NewFulfilDepositInstruction declares a new FulfilDeposit instruction with the provided parameters and accounts.
func NewFulfilDepositInstruction(
	// Parameters:
	amountBaseUnits uint64,
	driftMarketIndex uint16,
	reduceOnly bool,
	// Accounts:
	vault solana.PublicKey,
	vaultSpl solana.PublicKey,
	owner solana.PublicKey,
	caller solana.PublicKey,
	callerSpl solana.PublicKey,
	splMint solana.PublicKey,
	driftUser solana.PublicKey,
	driftUserStats solana.PublicKey,
	driftState solana.PublicKey,
	spotMarketVault solana.PublicKey,
	tokenProgram solana.PublicKey,
	associatedTokenProgram solana.PublicKey,
	driftProgram solana.PublicKey,
	systemProgram solana.PublicKey,
) *FulfilDeposit {
	return NewFulfilDepositInstructionBuilder().
		SetAmountBaseUnits(amountBaseUnits).
		SetDriftMarketIndex(driftMarketIndex).
		SetReduceOnly(reduceOnly).
		SetVaultAccount(vault).
		SetVaultSplAccount(vaultSpl).
		SetOwnerAccount(owner).
		SetCallerAccount(caller).
		SetCallerSplAccount(callerSpl).
		SetSplMintAccount(splMint).
		SetDriftUserAccount(driftUser).
		SetDriftUserStatsAccount(driftUserStats).
		SetDriftStateAccount(driftState).
		SetSpotMarketVaultAccount(spotMarketVault).
		SetTokenProgramAccount(tokenProgram).
		SetAssociatedTokenProgramAccount(associatedTokenProgram).
		SetDriftProgramAccount(driftProgram).
		SetSystemProgramAccount(systemProgram)
}

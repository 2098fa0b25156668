package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

type Deposit struct {
	AmountBaseUnits  *uint64
	DriftMarketIndex *uint16
	ReduceOnly       *bool

	// [0] = [WRITE] vault
	// [1] = [WRITE] vaultSpl
	// [2] = [WRITE, SIGNER] owner
	// [3] = [WRITE] ownerSpl
	// [4] = splMint
	// [5] = [WRITE] driftUser
	// [6] = [WRITE] driftUserStats
	// [7] = [WRITE] driftState
	// [8] = [WRITE] spotMarketVault
	// [9] = tokenProgram
	// [10] = associatedTokenProgram
	// [11] = driftProgram
	// [12] = systemProgram
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewDepositInstructionBuilder creates a new `Deposit` instruction builder.
func NewDepositInstructionBuilder() *Deposit {
	return &Deposit{
		AccountMetaSlice: make(solana.AccountMetaSlice, 13),
	}
}

func (inst *Deposit) SetAmountBaseUnits(amountBaseUnits uint64) *Deposit {
	inst.AmountBaseUnits = &amountBaseUnits
	return inst
}

func (inst *Deposit) SetDriftMarketIndex(driftMarketIndex uint16) *Deposit {
	inst.DriftMarketIndex = &driftMarketIndex
	return inst
}

func (inst *Deposit) SetReduceOnly(reduceOnly bool) *Deposit {
	inst.ReduceOnly = &reduceOnly
	return inst
}

func (inst *Deposit) SetVaultAccount(vault solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[0] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *Deposit) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *Deposit) SetVaultSplAccount(vaultSpl solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[1] = solana.Meta(vaultSpl).WRITE()
	return inst
}

func (inst *Deposit) GetVaultSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *Deposit) SetOwnerAccount(owner solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[2] = solana.Meta(owner).WRITE().SIGNER()
	return inst
}

func (inst *Deposit) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *Deposit) SetOwnerSplAccount(ownerSpl solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[3] = solana.Meta(ownerSpl).WRITE()
	return inst
}

func (inst *Deposit) GetOwnerSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *Deposit) SetSplMintAccount(splMint solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[4] = solana.Meta(splMint)
	return inst
}

func (inst *Deposit) GetSplMintAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *Deposit) SetDriftUserAccount(driftUser solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[5] = solana.Meta(driftUser).WRITE()
	return inst
}

func (inst *Deposit) GetDriftUserAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *Deposit) SetDriftUserStatsAccount(driftUserStats solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[6] = solana.Meta(driftUserStats).WRITE()
	return inst
}

func (inst *Deposit) GetDriftUserStatsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *Deposit) SetDriftStateAccount(driftState solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[7] = solana.Meta(driftState).WRITE()
	return inst
}

func (inst *Deposit) GetDriftStateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *Deposit) SetSpotMarketVaultAccount(spotMarketVault solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[8] = solana.Meta(spotMarketVault).WRITE()
	return inst
}

func (inst *Deposit) GetSpotMarketVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst *Deposit) SetTokenProgramAccount(tokenProgram solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[9] = solana.Meta(tokenProgram)
	return inst
}

func (inst *Deposit) GetTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

func (inst *Deposit) SetAssociatedTokenProgramAccount(associatedTokenProgram solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[10] = solana.Meta(associatedTokenProgram)
	return inst
}

func (inst *Deposit) GetAssociatedTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

func (inst *Deposit) SetDriftProgramAccount(driftProgram solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[11] = solana.Meta(driftProgram)
	return inst
}

func (inst *Deposit) GetDriftProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

func (inst *Deposit) SetSystemProgramAccount(systemProgram solana.PublicKey) *Deposit {
	inst.AccountMetaSlice[12] = solana.Meta(systemProgram)
	return inst
}

func (inst *Deposit) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

func (inst Deposit) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_Deposit,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst Deposit) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *Deposit) Validate() error {
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
			return errors.New("accounts.OwnerSpl is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.SplMint is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.DriftUser is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.DriftUserStats is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.DriftState is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.SpotMarketVault is not set")
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
	}
	return nil
}

func (inst *Deposit) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("Deposit")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=3]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param(" AmountBaseUnits", *inst.AmountBaseUnits))
						paramsBranch.Child(format.Param("DriftMarketIndex", *inst.DriftMarketIndex))
						paramsBranch.Child(format.Param("      ReduceOnly", *inst.ReduceOnly))
					})

					instructionBranch.Child("Accounts[len=13]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("                 vault", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("              vaultSpl", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("                 owner", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("              ownerSpl", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("               splMint", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("             driftUser", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("        driftUserStats", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta("            driftState", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta("       spotMarketVault", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(format.Meta("          tokenProgram", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(format.Meta("associatedTokenProgram", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(format.Meta("          driftProgram", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(format.Meta("         systemProgram", inst.AccountMetaSlice.Get(12)))
					})
				})
		})
}

func (obj Deposit) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
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

func (obj *Deposit) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
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

// NewDepositInstruction declares a new Deposit instruction with the provided parameters and accounts.
func NewDepositInstruction(
	// Parameters:
	amountBaseUnits uint64,
	driftMarketIndex uint16,
	reduceOnly bool,
	// Accounts:
	vault solana.PublicKey,
	vaultSpl solana.PublicKey,
	owner solana.PublicKey,
	ownerSpl solana.PublicKey,
	splMint solana.PublicKey,
	driftUser solana.PublicKey,
	driftUserStats solana.PublicKey,
	driftState solana.PublicKey,
	spotMarketVault solana.PublicKey,
	tokenProgram solana.PublicKey,
	associatedTokenProgram solana.PublicKey,
	driftProgram solana.PublicKey,
	systemProgram solana.PublicKey,
) *Deposit {
	return NewDepositInstructionBuilder().
		SetAmountBaseUnits(amountBaseUnits).
		SetDriftMarketIndex(driftMarketIndex).
		SetReduceOnly(reduceOnly).
		SetVaultAccount(vault).
		SetVaultSplAccount(vaultSpl).
		SetOwnerAccount(owner).
		SetOwnerSplAccount(ownerSpl).
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

package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// FulfilWithdraw executes a released withdraw order.
type FulfilWithdraw struct {
	// [0] = [WRITE] withdrawOrder
	// [1] = [WRITE] timeLockRentPayer
	// [2] = [WRITE, SIGNER] caller
	// [3] = [WRITE] vault
	// [4] = [WRITE] mule
	// [5] = [WRITE] owner
	// [6] = splMint
	// [7] = [WRITE] driftUser
	// [8] = [WRITE] driftUserStats
	// [9] = [WRITE] driftState
	// [10] = [WRITE] spotMarketVault
	// [11] = driftSigner
	// [12] = tokenProgram
	// [13] = associatedTokenProgram
	// [14] = driftProgram
	// [15] = systemProgram
	// [16] = [WRITE] destination
	// [17] = [WRITE] destinationSpl (optional)
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewFulfilWithdrawInstructionBuilder creates a new `FulfilWithdraw` instruction builder.
func NewFulfilWithdrawInstructionBuilder() *FulfilWithdraw {
	return &FulfilWithdraw{
		AccountMetaSlice: make(solana.AccountMetaSlice, 18),
	}
}

func (inst *FulfilWithdraw) SetWithdrawOrderAccount(withdrawOrder solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[0] = solana.Meta(withdrawOrder).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetWithdrawOrderAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *FulfilWithdraw) SetTimeLockRentPayerAccount(timeLockRentPayer solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[1] = solana.Meta(timeLockRentPayer).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetTimeLockRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *FulfilWithdraw) SetCallerAccount(caller solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[2] = solana.Meta(caller).WRITE().SIGNER()
	return inst
}

func (inst *FulfilWithdraw) GetCallerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *FulfilWithdraw) SetVaultAccount(vault solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[3] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *FulfilWithdraw) SetMuleAccount(mule solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[4] = solana.Meta(mule).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetMuleAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *FulfilWithdraw) SetOwnerAccount(owner solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[5] = solana.Meta(owner).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *FulfilWithdraw) SetSplMintAccount(splMint solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[6] = solana.Meta(splMint)
	return inst
}

func (inst *FulfilWithdraw) GetSplMintAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *FulfilWithdraw) SetDriftUserAccount(driftUser solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[7] = solana.Meta(driftUser).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetDriftUserAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *FulfilWithdraw) SetDriftUserStatsAccount(driftUserStats solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[8] = solana.Meta(driftUserStats).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetDriftUserStatsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst *FulfilWithdraw) SetDriftStateAccount(driftState solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[9] = solana.Meta(driftState).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetDriftStateAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

func (inst *FulfilWithdraw) SetSpotMarketVaultAccount(spotMarketVault solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[10] = solana.Meta(spotMarketVault).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetSpotMarketVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

func (inst *FulfilWithdraw) SetDriftSignerAccount(driftSigner solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[11] = solana.Meta(driftSigner)
	return inst
}

func (inst *FulfilWithdraw) GetDriftSignerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

func (inst *FulfilWithdraw) SetTokenProgramAccount(tokenProgram solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[12] = solana.Meta(tokenProgram)
	return inst
}

func (inst *FulfilWithdraw) GetTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

func (inst *FulfilWithdraw) SetAssociatedTokenProgramAccount(associatedTokenProgram solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[13] = solana.Meta(associatedTokenProgram)
	return inst
}

func (inst *FulfilWithdraw) GetAssociatedTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(13)
}

func (inst *FulfilWithdraw) SetDriftProgramAccount(driftProgram solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[14] = solana.Meta(driftProgram)
	return inst
}

func (inst *FulfilWithdraw) GetDriftProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(14)
}

func (inst *FulfilWithdraw) SetSystemProgramAccount(systemProgram solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[15] = solana.Meta(systemProgram)
	return inst
}

func (inst *FulfilWithdraw) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(15)
}

func (inst *FulfilWithdraw) SetDestinationAccount(destination solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[16] = solana.Meta(destination).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetDestinationAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(16)
}

func (inst *FulfilWithdraw) SetDestinationSplAccount(destinationSpl solana.PublicKey) *FulfilWithdraw {
	inst.AccountMetaSlice[17] = solana.Meta(destinationSpl).WRITE()
	return inst
}

func (inst *FulfilWithdraw) GetDestinationSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(17)
}

func (inst FulfilWithdraw) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_FulfilWithdraw,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst FulfilWithdraw) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *FulfilWithdraw) Validate() error {
	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.WithdrawOrder is not set")
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
			return errors.New("accounts.Mule is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.Owner is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.SplMint is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.DriftUser is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.DriftUserStats is not set")
		}
		if inst.AccountMetaSlice[9] == nil {
			return errors.New("accounts.DriftState is not set")
		}
		if inst.AccountMetaSlice[10] == nil {
			return errors.New("accounts.SpotMarketVault is not set")
		}
		if inst.AccountMetaSlice[11] == nil {
			return errors.New("accounts.DriftSigner is not set")
		}
		if inst.AccountMetaSlice[12] == nil {
			return errors.New("accounts.TokenProgram is not set")
		}
		if inst.AccountMetaSlice[13] == nil {
			return errors.New("accounts.AssociatedTokenProgram is not set")
		}
		if inst.AccountMetaSlice[14] == nil {
			return errors.New("accounts.DriftProgram is not set")
		}
		if inst.AccountMetaSlice[15] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[16] == nil {
			return errors.New("accounts.Destination is not set")
		}
	}
	return nil
}

func (inst *FulfilWithdraw) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("FulfilWithdraw")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=0]").ParentFunc(func(paramsBranch treeout.Branches) {})

					instructionBranch.Child("Accounts[len=18]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("         withdrawOrder", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("     timeLockRentPayer", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("                caller", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("                 vault", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("                  mule", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("                 owner", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("               splMint", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta("             driftUser", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta("        driftUserStats", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(format.Meta("            driftState", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(format.Meta("       spotMarketVault", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(format.Meta("           driftSigner", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(format.Meta("          tokenProgram", inst.AccountMetaSlice.Get(12)))
						accountsBranch.Child(format.Meta("associatedTokenProgram", inst.AccountMetaSlice.Get(13)))
						accountsBranch.Child(format.Meta("          driftProgram", inst.AccountMetaSlice.Get(14)))
						accountsBranch.Child(format.Meta("         systemProgram", inst.AccountMetaSlice.Get(15)))
						accountsBranch.Child(format.Meta("           destination", inst.AccountMetaSlice.Get(16)))
						accountsBranch.Child(format.Meta("        destinationSpl", inst.AccountMetaSlice.Get(17)))
					})
				})
		})
}

func (obj FulfilWithdraw) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	return nil
}

func (obj *FulfilWithdraw) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	return nil
}

// NewFulfilWithdrawInstruction declares a new FulfilWithdraw instruction with the provided parameters and accounts.
func NewFulfilWithdrawInstruction(
	// Accounts:
	withdrawOrder solana.PublicKey,
	timeLockRentPayer solana.PublicKey,
	caller solana.PublicKey,
	vault solana.PublicKey,
	mule solana.PublicKey,
	owner solana.PublicKey,
	splMint solana.PublicKey,
	driftUser solana.PublicKey,
	driftUserStats solana.PublicKey,
	driftState solana.PublicKey,
	spotMarketVault solana.PublicKey,
	driftSigner solana.PublicKey,
	tokenProgram solana.PublicKey,
	associatedTokenProgram solana.PublicKey,
	driftProgram solana.PublicKey,
	systemProgram solana.PublicKey,
	destination solana.PublicKey,
	destinationSpl solana.PublicKey,
) *FulfilWithdraw {
	return NewFulfilWithdrawInstructionBuilder().
		SetWithdrawOrderAccount(withdrawOrder).
		SetTimeLockRentPayerAccount(timeLockRentPayer).
		SetCallerAccount(caller).
		SetVaultAccount(vault).
		SetMuleAccount(mule).
		SetOwnerAccount(owner).
		SetSplMintAccount(splMint).
		SetDriftUserAccount(driftUser).
		SetDriftUserStatsAccount(driftUserStats).
		SetDriftStateAccount(driftState).
		SetSpotMarketVaultAccount(spotMarketVault).
		SetDriftSignerAccount(driftSigner).
		SetTokenProgramAccount(tokenProgram).
		SetAssociatedTokenProgramAccount(associatedTokenProgram).
		SetDriftProgramAccount(driftProgram).
		SetSystemProgramAccount(systemProgram).
		SetDestinationAccount(destination).
		SetDestinationSplAccount(destinationSpl)
}

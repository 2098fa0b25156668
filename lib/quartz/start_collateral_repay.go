package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// StartCollateralRepay records the caller's starting balances in the collateral repay ledger.
type StartCollateralRepay struct {
	// [0] = [WRITE, SIGNER] caller
	// [1] = [WRITE] callerDepositSpl
	// [2] = [WRITE] callerWithdrawSpl
	// [3] = owner
	// [4] = [WRITE] vault
	// [5] = mintDeposit
	// [6] = mintWithdraw
	// [7] = tokenProgramDeposit
	// [8] = tokenProgramWithdraw
	// [9] = systemProgram
	// [10] = instructions
	// [11] = [WRITE] ledger
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewStartCollateralRepayInstructionBuilder creates a new `StartCollateralRepay` instruction builder.
func NewStartCollateralRepayInstructionBuilder() *StartCollateralRepay {
	return &StartCollateralRepay{
		AccountMetaSlice: make(solana.AccountMetaSlice, 12),
	}
}

func (inst *StartCollateralRepay) SetCallerAccount(caller solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[0] = solana.Meta(caller).WRITE().SIGNER()
	return inst
}

func (inst *StartCollateralRepay) GetCallerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *StartCollateralRepay) SetCallerDepositSplAccount(callerDepositSpl solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[1] = solana.Meta(callerDepositSpl).WRITE()
	return inst
}

func (inst *StartCollateralRepay) GetCallerDepositSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *StartCollateralRepay) SetCallerWithdrawSplAccount(callerWithdrawSpl solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[2] = solana.Meta(callerWithdrawSpl).WRITE()
	return inst
}

func (inst *StartCollateralRepay) GetCallerWithdrawSplAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *StartCollateralRepay) SetOwnerAccount(owner solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[3] = solana.Meta(owner)
	return inst
}

func (inst *StartCollateralRepay) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *StartCollateralRepay) SetVaultAccount(vault solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[4] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *StartCollateralRepay) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *StartCollateralRepay) SetMintDepositAccount(mintDeposit solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[5] = solana.Meta(mintDeposit)
	return inst
}

func (inst *StartCollateralRepay) GetMintDepositAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *StartCollateralRepay) SetMintWithdrawAccount(mintWithdraw solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[6] = solana.Meta(mintWithdraw)
	return inst
}

func (inst *StartCollateralRepay) GetMintWithdrawAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *StartCollateralRepay) SetTokenProgramDepositAccount(tokenProgramDeposit solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[7] = solana.Meta(tokenProgramDeposit)
	return inst
}

func (inst *StartCollateralRepay) GetTokenProgramDepositAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *StartCollateralRepay) SetTokenProgramWithdrawAccount(tokenProgramWithdraw solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[8] = solana.Meta(tokenProgramWithdraw)
	return inst
}

func (inst *StartCollateralRepay) GetTokenProgramWithdrawAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst *StartCollateralRepay) SetSystemProgramAccount(systemProgram solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[9] = solana.Meta(systemProgram)
	return inst
}

func (inst *StartCollateralRepay) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

func (inst *StartCollateralRepay) SetInstructionsAccount(instructions solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[10] = solana.Meta(instructions)
	return inst
}

func (inst *StartCollateralRepay) GetInstructionsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

func (inst *StartCollateralRepay) SetLedgerAccount(ledger solana.PublicKey) *StartCollateralRepay {
	inst.AccountMetaSlice[11] = solana.Meta(ledger).WRITE()
	return inst
}

func (inst *StartCollateralRepay) GetLedgerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

func (inst StartCollateralRepay) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_StartCollateralRepay,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst StartCollateralRepay) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *StartCollateralRepay) Validate() error {
	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.Caller is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.CallerDepositSpl is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.CallerWithdrawSpl is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.Owner is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.Vault is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.MintDeposit is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.MintWithdraw is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.TokenProgramDeposit is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.TokenProgramWithdraw is not set")
		}
		if inst.AccountMetaSlice[9] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[10] == nil {
			return errors.New("accounts.Instructions is not set")
		}
		if inst.AccountMetaSlice[11] == nil {
			return errors.New("accounts.Ledger is not set")
		}
	}
	return nil
}

func (inst *StartCollateralRepay) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("StartCollateralRepay")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=0]").ParentFunc(func(paramsBranch treeout.Branches) {})

					instructionBranch.Child("Accounts[len=12]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("              caller", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("    callerDepositSpl", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("   callerWithdrawSpl", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("               owner", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("               vault", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("         mintDeposit", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("        mintWithdraw", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta(" tokenProgramDeposit", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta("tokenProgramWithdraw", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(format.Meta("       systemProgram", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(format.Meta("        instructions", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(format.Meta("              ledger", inst.AccountMetaSlice.Get(11)))
					})
				})
		})
}

func (obj StartCollateralRepay) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	return nil
}

func (obj *StartCollateralRepay) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	return nil
}

// NewStartCollateralRepayInstruction declares a new StartCollateralRepay instruction with the provided parameters and accounts.
func NewStartCollateralRepayInstruction(
	// Accounts:
	caller solana.PublicKey,
	callerDepositSpl solana.PublicKey,
	callerWithdrawSpl solana.PublicKey,
	owner solana.PublicKey,
	vault solana.PublicKey,
	mintDeposit solana.PublicKey,
	mintWithdraw solana.PublicKey,
	tokenProgramDeposit solana.PublicKey,
	tokenProgramWithdraw solana.PublicKey,
	systemProgram solana.PublicKey,
	instructions solana.PublicKey,
	ledger solana.PublicKey,
) *StartCollateralRepay {
	return NewStartCollateralRepayInstructionBuilder().
		SetCallerAccount(caller).
		SetCallerDepositSplAccount(callerDepositSpl).
		SetCallerWithdrawSplAccount(callerWithdrawSpl).
		SetOwnerAccount(owner).
		SetVaultAccount(vault).
		SetMintDepositAccount(mintDeposit).
		SetMintWithdrawAccount(mintWithdraw).
		SetTokenProgramDepositAccount(tokenProgramDeposit).
		SetTokenProgramWithdrawAccount(tokenProgramWithdraw).
		SetSystemProgramAccount(systemProgram).
		SetInstructionsAccount(instructions).
		SetLedgerAccount(ledger)
}

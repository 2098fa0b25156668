package associatedtokenaccount

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

const ProgramName = "AssociatedTokenAccount"

var ProgramID = solana.SPLAssociatedTokenAccountProgramID

// Instruction index of CreateIdempotent in the associated token program.
const instructionCreateIdempotent = 1

// CreateIdempotent creates the associated token account for wallet and mint
// under TokenProgram, succeeding without change when it already exists.
type CreateIdempotent struct {
	Payer                  solana.PublicKey
	AssociatedTokenAccount solana.PublicKey
	Wallet                 solana.PublicKey
	Mint                   solana.PublicKey
	TokenProgram           solana.PublicKey
}

// NewCreateIdempotentInstructionBuilder creates a new `CreateIdempotent` instruction builder.
func NewCreateIdempotentInstructionBuilder() *CreateIdempotent {
	return &CreateIdempotent{TokenProgram: solana.TokenProgramID}
}

func (inst *CreateIdempotent) SetPayer(payer solana.PublicKey) *CreateIdempotent {
	inst.Payer = payer
	return inst
}

func (inst *CreateIdempotent) SetWallet(wallet solana.PublicKey) *CreateIdempotent {
	inst.Wallet = wallet
	return inst
}

func (inst *CreateIdempotent) SetMint(mint solana.PublicKey) *CreateIdempotent {
	inst.Mint = mint
	return inst
}

func (inst *CreateIdempotent) SetAssociatedToken(token solana.PublicKey) *CreateIdempotent {
	inst.AssociatedTokenAccount = token
	return inst
}

func (inst *CreateIdempotent) SetTokenProgram(tokenProgram solana.PublicKey) *CreateIdempotent {
	inst.TokenProgram = tokenProgram
	return inst
}

func (inst *CreateIdempotent) accounts() solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.Meta(inst.Payer).WRITE().SIGNER(),
		solana.Meta(inst.AssociatedTokenAccount).WRITE(),
		solana.Meta(inst.Wallet),
		solana.Meta(inst.Mint),
		solana.Meta(solana.SystemProgramID),
		solana.Meta(inst.TokenProgram),
	}
}

func (inst CreateIdempotent) Build() solana.Instruction {
	return solana.NewInstruction(ProgramID, inst.accounts(), []byte{instructionCreateIdempotent})
}

// ValidateAndBuild validates the instruction accounts.
// If there is a validation error, return the error.
// Otherwise, build and return the instruction.
func (inst CreateIdempotent) ValidateAndBuild() (solana.Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *CreateIdempotent) Validate() error {
	if inst.Payer.IsZero() {
		return errors.New("Payer not set")
	}
	if inst.Wallet.IsZero() {
		return errors.New("Wallet not set")
	}
	if inst.Mint.IsZero() {
		return errors.New("Mint not set")
	}
	if inst.AssociatedTokenAccount.IsZero() {
		return errors.New("AssociatedTokenAccount not set")
	}
	if inst.TokenProgram.IsZero() {
		return errors.New("TokenProgram not set")
	}
	return nil
}

func (inst *CreateIdempotent) EncodeToTree(parent treeout.Branches) {
	accounts := inst.accounts()
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("CreateIdempotent")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=0]").ParentFunc(func(paramsBranch treeout.Branches) {})
					instructionBranch.Child("Accounts[len=6]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("                 payer", accounts.Get(0)))
						accountsBranch.Child(format.Meta("associatedTokenAddress", accounts.Get(1)))
						accountsBranch.Child(format.Meta("                wallet", accounts.Get(2)))
						accountsBranch.Child(format.Meta("             tokenMint", accounts.Get(3)))
						accountsBranch.Child(format.Meta("         systemProgram", accounts.Get(4)))
						accountsBranch.Child(format.Meta("          tokenProgram", accounts.Get(5)))
					})
				})
		})
}

func NewCreateIdempotentInstruction(
	payer solana.PublicKey,
	walletAddress solana.PublicKey,
	splTokenMintAddress solana.PublicKey,
	associatedTokenAddress solana.PublicKey,
	tokenProgram solana.PublicKey,
) *CreateIdempotent {
	return NewCreateIdempotentInstructionBuilder().
		SetPayer(payer).
		SetWallet(walletAddress).
		SetMint(splTokenMintAddress).
		SetAssociatedToken(associatedTokenAddress).
		SetTokenProgram(tokenProgram)
}

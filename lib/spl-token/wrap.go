package spl_token

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

// CreateWrapSolInstructions moves lamports into an existing wSOL token
// account and syncs its token balance.
func CreateWrapSolInstructions(
	owner solana.PublicKey,
	wsolAccount solana.PublicKey,
	lamports uint64,
) []solana.Instruction {
	return []solana.Instruction{
		system.NewTransferInstruction(lamports, owner, wsolAccount).Build(),
		token.NewSyncNativeInstruction(wsolAccount).Build(),
	}
}

// CreateCloseAccountInstruction closes a token account, returning its rent
// (and any wrapped SOL) to destination.
func CreateCloseAccountInstruction(
	account solana.PublicKey,
	destination solana.PublicKey,
	owner solana.PublicKey,
) solana.Instruction {
	return token.NewCloseAccountInstruction(account, destination, owner, nil).Build()
}

package addresses

import (
	"github.com/gagliardetto/solana-go"
)

// GetAssociatedTokenAddress works for both the Token and Token-2022 programs.
func GetAssociatedTokenAddress(
	owner solana.PublicKey,
	mint solana.PublicKey,
	tokenProgram solana.PublicKey,
) solana.PublicKey {
	address, _ := findProgramAddress(
		[][]byte{owner.Bytes(), tokenProgram.Bytes(), mint.Bytes()},
		solana.SPLAssociatedTokenAccountProgramID,
	)
	return address
}

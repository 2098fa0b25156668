package spl_token

import (
	"quartzgo/errs"

	"github.com/gagliardetto/solana-go"
)

var TOKEN_PROGRAM_ID = solana.MPK("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

var TOKEN_2022_PROGRAM_ID = solana.MPK("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")

var ASSOCIATED_TOKEN_PROGRAM_ID = solana.MPK("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")

var NATIVE_MINT = solana.MPK("So11111111111111111111111111111111111111112")

// GetTokenProgramForMintOwner checks that a mint's owning program is one of
// the two token programs and returns it.
func GetTokenProgramForMintOwner(owner solana.PublicKey) (solana.PublicKey, error) {
	switch {
	case owner.Equals(TOKEN_PROGRAM_ID):
		return TOKEN_PROGRAM_ID, nil
	case owner.Equals(TOKEN_2022_PROGRAM_ID):
		return TOKEN_2022_PROGRAM_ID, nil
	default:
		return solana.PublicKey{}, errs.ProtocolMismatch("GetTokenProgramForMintOwner", "mint owned by %s, not a token program", owner)
	}
}

package spl_token

import (
	"testing"

	"quartzgo/errs"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenProgramForMintOwner(t *testing.T) {
	program, err := GetTokenProgramForMintOwner(solana.TokenProgramID)
	require.NoError(t, err)
	assert.Equal(t, TOKEN_PROGRAM_ID, program)

	program, err = GetTokenProgramForMintOwner(TOKEN_2022_PROGRAM_ID)
	require.NoError(t, err)
	assert.Equal(t, TOKEN_2022_PROGRAM_ID, program)

	_, err = GetTokenProgramForMintOwner(solana.SystemProgramID)
	assert.True(t, errs.IsKind(err, errs.KindProtocolMismatch))
}

func TestCreateWrapSolInstructions(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	wsol := solana.NewWallet().PublicKey()
	ixs := CreateWrapSolInstructions(owner, wsol, 5_000)
	require.Len(t, ixs, 2)
	assert.Equal(t, solana.SystemProgramID, ixs[0].ProgramID())
	assert.Equal(t, solana.TokenProgramID, ixs[1].ProgramID())

	closeIx := CreateCloseAccountInstruction(wsol, owner, owner)
	assert.Equal(t, wsol, closeIx.Accounts()[0].PublicKey)
}

package associatedtokenaccount

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var token2022 = solana.MPK("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")

func TestCreateIdempotent(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	ata := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	ix, err := NewCreateIdempotentInstruction(payer, payer, mint, ata, token2022).ValidateAndBuild()
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, data)
	assert.Equal(t, solana.SPLAssociatedTokenAccountProgramID, ix.ProgramID())

	accounts := ix.Accounts()
	require.Len(t, accounts, 6)
	assert.True(t, accounts[0].IsSigner)
	assert.True(t, accounts[1].IsWritable)
	assert.Equal(t, ata, accounts[1].PublicKey)
	assert.Equal(t, token2022, accounts[5].PublicKey)

	_, err = NewCreateIdempotentInstructionBuilder().SetPayer(payer).ValidateAndBuild()
	assert.Error(t, err)
}

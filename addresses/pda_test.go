package addresses

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quartzgo/constants"
	"quartzgo/errs"
)

var testOwner = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

// go test --run TestDriftAddresses
func TestDriftAddresses(t *testing.T) {
	programId := constants.DRIFT_PROGRAM_ID

	state, bump := GetDriftStateAccountPublicKeyAndNonce(programId)
	assert.Equal(t, "5zpq7DvB6UdFFvpmBPspGPNfUGoBRRCE2HHg5u3gxcsN", state.String())
	assert.Equal(t, uint8(252), bump)

	assert.Equal(t, "JCNCMFXo5M5qwUPg2Utu1u6YWp3MbygxqBsBeXXJfrw", GetDriftSignerPublicKey(programId).String())
	assert.Equal(t, "6gMq3mRCKf8aP3ttTyYhuijVZ2LGi14oDsBbkgubfLB3", GetSpotMarketPublicKey(programId, 0).String())
	assert.Equal(t, "GXWqPpjQpdz7KZw9p7f5PX2eGxHAhvpNXiviFkAB8zXg", GetSpotMarketVaultPublicKey(programId, 0).String())
}

func TestQuartzVaultAndDriftUser(t *testing.T) {
	vault, bump := GetVaultPublicKeyAndNonce(constants.QUARTZ_PROGRAM_ID, testOwner)
	assert.Equal(t, "DZTYqxc1DPWMNdPxhLMqgELbN2omMY7u5qU1R96Zb1rJ", vault.String())
	assert.Equal(t, uint8(255), bump)

	user := GetUserAccountPublicKey(constants.DRIFT_PROGRAM_ID, vault)
	assert.Equal(t, "5uAWZhMmMv684cBGWtDb8yLGnLKgioZUe4HNLYUdbYWh", user.String())
	assert.Equal(t, user, GetUserAccountPublicKey(constants.DRIFT_PROGRAM_ID, vault, 0))
	assert.NotEqual(t, user, GetUserAccountPublicKey(constants.DRIFT_PROGRAM_ID, vault, 1))
}

func TestDerivationIsDeterministic(t *testing.T) {
	programId := constants.QUARTZ_PROGRAM_ID
	other := solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

	derivations := map[string]func(solana.PublicKey) solana.PublicKey{
		"vault":         func(o solana.PublicKey) solana.PublicKey { return GetVaultPublicKey(programId, o) },
		"spendMule":     func(o solana.PublicKey) solana.PublicKey { return GetSpendMulePublicKey(programId, o) },
		"withdrawMule":  func(o solana.PublicKey) solana.PublicKey { return GetWithdrawMulePublicKey(programId, o) },
		"repayLedger":   func(o solana.PublicKey) solana.PublicKey { return GetCollateralRepayLedgerPublicKey(programId, o) },
		"driftUserStat": func(o solana.PublicKey) solana.PublicKey { return GetUserStatsAccountPublicKey(constants.DRIFT_PROGRAM_ID, o) },
	}
	seen := make(map[solana.PublicKey]string)
	for name, derive := range derivations {
		first := derive(testOwner)
		assert.Equal(t, first, derive(testOwner), name)
		assert.NotEqual(t, first, derive(other), name)
		assert.False(t, solana.IsOnCurve(first.Bytes()), name)
		prev, dup := seen[first]
		assert.False(t, dup, "%s collides with %s", name, prev)
		seen[first] = name
	}
}

func TestFixedSeedAccountsDiffer(t *testing.T) {
	programId := constants.QUARTZ_PROGRAM_ID
	keys := []solana.PublicKey{
		GetBridgeRentPayerPublicKey(programId),
		GetInitRentPayerPublicKey(programId),
		GetTimeLockRentPayerPublicKey(programId),
		GetSpendHoldVaultPublicKey(programId),
		GetEventAuthorityPublicKey(programId),
	}
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			assert.NotEqual(t, keys[i], keys[j])
		}
	}
}

func TestVaultSplIsSeededByVault(t *testing.T) {
	programId := constants.QUARTZ_PROGRAM_ID
	vault := GetVaultPublicKey(programId, testOwner)
	usdc := constants.USDC_MINT_MAINNET
	assert.NotEqual(t,
		GetVaultSplPublicKey(programId, vault, usdc),
		GetVaultSplPublicKey(programId, testOwner, usdc),
	)
	assert.NotEqual(t,
		GetVaultSplPublicKey(programId, vault, usdc),
		GetVaultSplPublicKey(programId, vault, solana.SolMint),
	)
}

func TestPythPriceUpdate(t *testing.T) {
	programId := constants.PYTH_PUSH_ORACLE_PROGRAM_ID

	sol, err := GetPythPriceUpdatePublicKey(programId, 0, "0xef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d")
	require.NoError(t, err)
	assert.Equal(t, "7UVimffxr9ow1uXYxsr4LHAcV58mLzhmwaeKvJ1pjLiE", sol.String())

	unprefixed, err := GetPythPriceUpdatePublicKey(programId, 0, "ef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d")
	require.NoError(t, err)
	assert.Equal(t, sol, unprefixed)

	usdc, err := GetOracleAddress(programId, "0xeaa020c61cc479712813461ce153894a96a6c00b21ed0cfc2798d1f9a9e9c94a")
	require.NoError(t, err)
	assert.Equal(t, "Dpw1EAVrSB1ibxiDQyTAW6Zip3J4Btk2x4SgApQCeFbX", usdc.String())

	otherShard, err := GetPythPriceUpdatePublicKey(programId, 1, "0xef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d")
	require.NoError(t, err)
	assert.NotEqual(t, sol, otherShard)
}

func TestPythFeedIdValidation(t *testing.T) {
	_, err := GetPythPriceUpdatePublicKey(constants.PYTH_PUSH_ORACLE_PROGRAM_ID, 0, "0xef0d8b")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindInvalidInput))
	assert.Contains(t, err.Error(), "Feed ID should be 32 bytes long")

	_, err = GetPythPriceUpdatePublicKey(constants.PYTH_PUSH_ORACLE_PROGRAM_ID, 0, "zz")
	assert.True(t, errs.IsKind(err, errs.KindInvalidInput))
}

func TestAssociatedTokenAddress(t *testing.T) {
	ata := GetAssociatedTokenAddress(testOwner, constants.USDC_MINT_MAINNET, solana.TokenProgramID)
	assert.Equal(t, "DHe62eeQVEnNK7vg5xUpDkJm7tuqHadjhvmPRFBG9UPo", ata.String())
	assert.NotEqual(t, ata, GetAssociatedTokenAddress(testOwner, constants.USDC_MINT_MAINNET, solana.Token2022ProgramID))
}

func TestCctpAddresses(t *testing.T) {
	tmm := constants.TOKEN_MESSENGER_MINTER_PROGRAM_ID
	assert.NotEqual(t, GetRemoteTokenMessengerPublicKey(tmm, 6), GetRemoteTokenMessengerPublicKey(tmm, 0))
	assert.NotEqual(t, GetLocalTokenPublicKey(tmm, constants.USDC_MINT_MAINNET), GetTokenMinterPublicKey(tmm))
	assert.False(t, GetMessageTransmitterPublicKey(constants.MESSAGE_TRANSMITTER_PROGRAM_ID).IsZero())
	assert.False(t, GetSenderAuthorityPublicKey(tmm).IsZero())
	assert.False(t, GetTokenMessengerPublicKey(tmm).IsZero())
}

func TestMarketAddressCache(t *testing.T) {
	first := GetSpotMarketAddress(constants.DRIFT_PROGRAM_ID, 1)
	assert.Equal(t, GetSpotMarketPublicKey(constants.DRIFT_PROGRAM_ID, 1), first)
	assert.Equal(t, first, GetSpotMarketAddress(constants.DRIFT_PROGRAM_ID, 1))
	assert.NotEqual(t, first, GetSpotMarketVaultAddress(constants.DRIFT_PROGRAM_ID, 1))
}

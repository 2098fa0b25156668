package quartz

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"testing"

	"quartzgo/errs"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/iancoleman/strcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allInstructionIDs = []bin.TypeID{
	Instruction_ReclaimBridgeRent,
	Instruction_InitUser,
	Instruction_CloseUser,
	Instruction_UpgradeVault,
	Instruction_Deposit,
	Instruction_FulfilDeposit,
	Instruction_InitiateWithdraw,
	Instruction_FulfilWithdraw,
	Instruction_StartSpend,
	Instruction_CompleteSpend,
	Instruction_InitiateSpend,
	Instruction_FulfilSpend,
	Instruction_InitiateSpendLimits,
	Instruction_FulfilSpendLimits,
	Instruction_StartCollateralRepay,
	Instruction_DepositCollateralRepay,
	Instruction_WithdrawCollateralRepay,
}

func TestInstructionDiscriminators(t *testing.T) {
	seen := map[bin.TypeID]bool{}
	for _, id := range allInstructionIDs {
		name := InstructionIDToName(id)
		require.NotEmpty(t, name)
		sighash := sha256.Sum256([]byte("global:" + strcase.ToSnake(name)))
		assert.Equal(t, sighash[:8], id.Bytes(), name)
		assert.False(t, seen[id], name)
		seen[id] = true
	}
	assert.Equal(t, "", InstructionIDToName(bin.TypeID{}))
}

func testKeys(n int) []solana.PublicKey {
	keys := make([]solana.PublicKey, n)
	for i := range keys {
		keys[i] = solana.NewWallet().PublicKey()
	}
	return keys
}

func TestDepositEncoding(t *testing.T) {
	k := testKeys(13)
	ix := NewDepositInstruction(1_000_000, 1, false,
		k[0], k[1], k[2], k[3], k[4], k[5], k[6], k[7], k[8], k[9], k[10], k[11], k[12],
	).Build()

	data, err := ix.Data()
	require.NoError(t, err)
	expected := []byte{242, 35, 198, 137, 82, 225, 242, 182}
	expected = append(expected, 0x40, 0x42, 0x0f, 0, 0, 0, 0, 0) // 1_000_000
	expected = append(expected, 1, 0)                            // market 1
	expected = append(expected, 0)                               // reduceOnly
	assert.Equal(t, expected, data)

	accounts := ix.Accounts()
	require.Len(t, accounts, 13)
	assert.Equal(t, ProgramID, ix.ProgramID())
	assert.True(t, accounts[0].IsWritable)
	assert.False(t, accounts[0].IsSigner)
	assert.True(t, accounts[2].IsSigner && accounts[2].IsWritable)
	assert.False(t, accounts[4].IsWritable)
	for i, meta := range accounts {
		assert.Equal(t, k[i], meta.PublicKey)
	}
}

func TestDecodeInstruction(t *testing.T) {
	k := testKeys(6)
	built := NewInitiateWithdrawInstruction(25, 3, true, k[0], k[1], k[2], k[3], k[4], k[5]).Build()
	data, err := built.Data()
	require.NoError(t, err)

	decoded, err := DecodeInstruction(built.Accounts(), data)
	require.NoError(t, err)
	assert.Equal(t, Instruction_InitiateWithdraw, decoded.TypeID)
	assert.Equal(t, "InitiateWithdraw", decoded.Name())

	withdraw, ok := decoded.Impl.(*InitiateWithdraw)
	require.True(t, ok)
	assert.Equal(t, uint64(25), *withdraw.AmountBaseUnits)
	assert.Equal(t, uint16(3), *withdraw.DriftMarketIndex)
	assert.True(t, *withdraw.ReduceOnly)
	assert.Equal(t, k[2], withdraw.GetWithdrawOrderAccount().PublicKey)

	_, err = DecodeInstruction(nil, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Error(t, err)
}

func TestReclaimBridgeRentAttestationIsLengthPrefixed(t *testing.T) {
	k := testKeys(5)
	attestation := []byte{0xde, 0xad, 0xbe, 0xef}
	ix := NewReclaimBridgeRentInstruction(attestation, k[0], k[1], k[2], k[3], k[4]).Build()
	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 0, 0, 0, 0xde, 0xad, 0xbe, 0xef}, data[8:])

	decoded, err := DecodeInstruction(ix.Accounts(), data)
	require.NoError(t, err)
	assert.Equal(t, attestation, decoded.Impl.(*ReclaimBridgeRent).Attestation)
}

func TestValidateReportsMissingAccount(t *testing.T) {
	k := testKeys(4)
	_, err := NewUpgradeVaultInstructionBuilder().
		SetSpendLimitPerTransaction(1).
		SetSpendLimitPerTimeframe(2).
		SetTimeframeInSeconds(3).
		SetNextTimeframeResetTimestamp(4).
		SetVaultAccount(k[0]).
		SetOwnerAccount(k[1]).
		SetSystemProgramAccount(k[3]).
		ValidateAndBuild()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InitRentPayer")

	_, err = NewCloseUserInstructionBuilder().ValidateAndBuild()
	assert.Error(t, err)

	_, err = NewDepositCollateralRepayInstructionBuilder().ValidateAndBuild()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DepositMarketIndex")
}

func TestFulfilWithdrawDestinationSplIsOptional(t *testing.T) {
	k := testKeys(17)
	builder := NewFulfilWithdrawInstructionBuilder()
	setters := []func(solana.PublicKey) *FulfilWithdraw{
		builder.SetWithdrawOrderAccount, builder.SetTimeLockRentPayerAccount, builder.SetCallerAccount,
		builder.SetVaultAccount, builder.SetMuleAccount, builder.SetOwnerAccount, builder.SetSplMintAccount,
		builder.SetDriftUserAccount, builder.SetDriftUserStatsAccount, builder.SetDriftStateAccount,
		builder.SetSpotMarketVaultAccount, builder.SetDriftSignerAccount, builder.SetTokenProgramAccount,
		builder.SetAssociatedTokenProgramAccount, builder.SetDriftProgramAccount,
		builder.SetSystemProgramAccount, builder.SetDestinationAccount,
	}
	for i, set := range setters {
		set(k[i])
	}
	ix, err := builder.ValidateAndBuild()
	require.NoError(t, err)
	assert.Len(t, ix.Accounts(), 17)

	builder.SetDestinationSplAccount(ProgramID)
	assert.Len(t, builder.Build().Accounts(), 18)
	assert.True(t, builder.GetOwnerAccount().IsWritable)
	assert.False(t, builder.GetOwnerAccount().IsSigner)
}

func TestTimeLockedAccounts(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	destination := solana.NewWallet().PublicKey()
	order := WithdrawOrder{
		TimeLock:         TimeLock{Owner: owner, IsOwnerPayer: true, ReleaseSlot: 1_000},
		AmountBaseUnits:  42,
		DriftMarketIndex: 5,
		ReduceOnly:       true,
		Destination:      destination,
	}
	buf := new(bytes.Buffer)
	require.NoError(t, order.MarshalWithEncoder(bin.NewBorshEncoder(buf)))
	assert.Len(t, buf.Bytes(), WithdrawOrderSize)

	decoded, err := DecodeWithdrawOrder(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, order, *decoded)
	assert.False(t, decoded.TimeLock.IsReleased(999))
	assert.True(t, decoded.TimeLock.IsReleased(1_000))

	_, err = DecodeSpendHold(buf.Bytes())
	require.Error(t, err)
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))

	_, err = DecodeVault([]byte{1, 2, 3})
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))
}

func TestVaultAndLedgerAccounts(t *testing.T) {
	vault := Vault{
		Owner:                           solana.NewWallet().PublicKey(),
		Bump:                            254,
		SpendLimitPerTransaction:        1_000_000_000,
		SpendLimitPerTimeframe:          5_000_000_000,
		RemainingSpendLimitPerTimeframe: 4_000_000_000,
		NextTimeframeResetTimestamp:     1_730_000_000,
		TimeframeInSeconds:              86_400,
	}
	buf := new(bytes.Buffer)
	require.NoError(t, vault.MarshalWithEncoder(bin.NewBorshEncoder(buf)))
	assert.Len(t, buf.Bytes(), VaultSize)
	assert.Equal(t, VaultDiscriminator[:], buf.Bytes()[:8])

	decoded, err := DecodeVault(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, vault, *decoded)

	ledger := CollateralRepayLedger{Deposit: 7, Withdraw: 9}
	buf.Reset()
	require.NoError(t, ledger.MarshalWithEncoder(bin.NewBorshEncoder(buf)))
	decodedLedger, err := DecodeCollateralRepayLedger(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, ledger, *decodedLedger)
}

func TestParseProgramError(t *testing.T) {
	err := fmt.Errorf("simulation failed: Error processing Instruction 2: custom program error: 0x1773")
	programErr := ParseProgramError(err)
	require.NotNil(t, programErr)
	assert.Equal(t, ErrCodeMaxSlippageExceeded, programErr.Code)
	assert.Equal(t, "MaxSlippageExceeded", programErr.Name)

	assert.Nil(t, ParseProgramError(fmt.Errorf("custom program error: 0x1")))
	assert.Nil(t, ParseProgramError(nil))
	assert.Equal(t, "InvalidDestinationSplWSOL", LookupProgramError(6038).Name)
	assert.Nil(t, LookupProgramError(6039))

	wrapped := fmt.Errorf("outer: %w", LookupProgramError(6035))
	assert.Equal(t, ErrCodeTimeLockNotReleased, ParseProgramError(wrapped).Code)
}

package quartz

import (
	"context"
	"testing"

	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	quartzlib "quartzgo/lib/quartz"
	spl_token "quartzgo/lib/spl-token"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireQuartzIx(t *testing.T, ix solana.Instruction, id bin.TypeID) []byte {
	assert.Equal(t, constants.QUARTZ_PROGRAM_ID, ix.ProgramID())
	data, err := ix.Data()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 8)
	require.Equal(t, id.Bytes(), data[:8], quartzlib.InstructionIDToName(id))
	return data
}

func tail(accounts []*solana.AccountMeta, n int) []*solana.AccountMeta {
	return accounts[len(accounts)-n:]
}

// go test --run TestMakeDepositIxs

func TestMakeDepositIxs(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	bundle, err := user.MakeDepositIxs(context.Background(), 5_000_000, 0, true)
	require.NoError(t, err)
	require.Len(t, bundle.Instructions, 1)
	data := requireQuartzIx(t, bundle.Instructions[0], quartzlib.Instruction_Deposit)
	assert.Equal(t, []byte{0x40, 0x4b, 0x4c, 0, 0, 0, 0, 0, 0, 0, 1}, data[8:])

	accounts := bundle.Instructions[0].Accounts()
	require.Len(t, accounts, 13+4)
	assert.Equal(t, user.Vault, accounts[0].PublicKey)
	assert.Equal(t, addresses.GetVaultSplPublicKey(constants.QUARTZ_PROGRAM_ID, user.Vault, constants.USDC_MINT_DEVNET), accounts[1].PublicKey)
	assert.Equal(t, addresses.GetAssociatedTokenAddress(env.owner, constants.USDC_MINT_DEVNET, spl_token.TOKEN_PROGRAM_ID), accounts[3].PublicKey)
	assert.Equal(t, spl_token.TOKEN_PROGRAM_ID, accounts[9].PublicKey)

	remaining := tail(accounts, 4)
	assert.Equal(t, env.oracles[0], remaining[0].PublicKey)
	assert.Equal(t, env.oracles[1], remaining[1].PublicKey)
	assert.Equal(t, addresses.GetSpotMarketAddress(constants.DRIFT_PROGRAM_ID, 0), remaining[2].PublicKey)
	assert.Equal(t, addresses.GetSpotMarketAddress(constants.DRIFT_PROGRAM_ID, 1), remaining[3].PublicKey)
	assert.False(t, remaining[0].IsWritable)
	assert.True(t, remaining[2].IsWritable)
	assert.False(t, remaining[3].IsWritable)
}

func TestMakeDepositIxsWrapsSol(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	bundle, err := user.MakeDepositIxs(context.Background(), 250_000_000, 1, false)
	require.NoError(t, err)
	require.Len(t, bundle.Instructions, 4)
	wsol := addresses.GetAssociatedTokenAddress(env.owner, spl_token.NATIVE_MINT, spl_token.TOKEN_PROGRAM_ID)

	assert.Equal(t, solana.SPLAssociatedTokenAccountProgramID, bundle.Instructions[0].ProgramID())
	assert.Equal(t, solana.SystemProgramID, bundle.Instructions[1].ProgramID())
	assert.Equal(t, wsol, bundle.Instructions[1].Accounts()[1].PublicKey)
	assert.Equal(t, solana.TokenProgramID, bundle.Instructions[2].ProgramID())
	requireQuartzIx(t, bundle.Instructions[3], quartzlib.Instruction_Deposit)
	assert.Equal(t, wsol, bundle.Instructions[3].Accounts()[3].PublicKey)

	remaining := tail(bundle.Instructions[3].Accounts(), 2)
	assert.False(t, remaining[0].IsWritable)
	assert.True(t, remaining[1].IsWritable)
}

func TestMakeDepositIxsValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	ctx := context.Background()

	_, err := user.MakeDepositIxs(ctx, 0, 0, false)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	_, err = user.MakeDepositIxs(ctx, 1, 42, false)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	env.fetcher.SetAccount(constants.USDC_MINT_DEVNET, solana.SystemProgramID, nil)
	_, err = user.MakeDepositIxs(ctx, 1, 0, false)
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))
}

func TestMakeFulfilDepositIx(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	caller := solana.NewWallet().PublicKey()

	bundle, err := user.MakeFulfilDepositIx(context.Background(), 1_000, 0, false, caller)
	require.NoError(t, err)
	requireQuartzIx(t, bundle.Instructions[0], quartzlib.Instruction_FulfilDeposit)
	accounts := bundle.Instructions[0].Accounts()
	assert.Equal(t, env.owner, accounts[2].PublicKey)
	assert.Equal(t, caller, accounts[3].PublicKey)
	assert.Equal(t, addresses.GetAssociatedTokenAddress(caller, constants.USDC_MINT_DEVNET, spl_token.TOKEN_PROGRAM_ID), accounts[4].PublicKey)
}

// go test --run TestWithdrawOrderRoundTrip

func TestWithdrawOrderRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	ctx := context.Background()
	destination := solana.NewWallet().PublicKey()

	bundle, err := user.MakeInitiateWithdrawIxs(3_000_000, 0, false, destination, true)
	require.NoError(t, err)
	require.Len(t, bundle.Signers, 1)
	order := bundle.Signers[0].PublicKey()
	data := requireQuartzIx(t, bundle.Instructions[0], quartzlib.Instruction_InitiateWithdraw)
	assert.Equal(t, []byte{0xc0, 0xc6, 0x2d, 0, 0, 0, 0, 0, 0, 0, 0}, data[8:])

	accounts := bundle.Instructions[0].Accounts()
	assert.Equal(t, order, accounts[2].PublicKey)
	assert.True(t, accounts[2].IsSigner)
	assert.Equal(t, env.owner, accounts[3].PublicKey)
	assert.Equal(t, destination, accounts[5].PublicKey)

	// what the program would have recorded for the initiate above
	require.NoError(t, env.fetcher.SetEncodable(order, constants.QUARTZ_PROGRAM_ID, quartzlib.WithdrawOrder{
		TimeLock:         quartzlib.TimeLock{Owner: env.owner, IsOwnerPayer: true, ReleaseSlot: 50},
		AmountBaseUnits:  3_000_000,
		DriftMarketIndex: 0,
		Destination:      destination,
	}))
	caller := solana.NewWallet().PublicKey()
	fulfil, err := user.MakeFulfilWithdrawIxs(ctx, order, caller)
	require.NoError(t, err)
	requireQuartzIx(t, fulfil.Instructions[0], quartzlib.Instruction_FulfilWithdraw)

	accounts = fulfil.Instructions[0].Accounts()
	require.Len(t, accounts, 18+4)
	assert.Equal(t, order, accounts[0].PublicKey)
	assert.Equal(t, env.owner, accounts[1].PublicKey)
	assert.Equal(t, caller, accounts[2].PublicKey)
	assert.Equal(t, addresses.GetWithdrawMulePublicKey(constants.QUARTZ_PROGRAM_ID, env.owner), accounts[4].PublicKey)
	assert.Equal(t, constants.USDC_MINT_DEVNET, accounts[6].PublicKey)
	assert.Equal(t, destination, accounts[16].PublicKey)
	assert.Equal(t, addresses.GetAssociatedTokenAddress(destination, constants.USDC_MINT_DEVNET, spl_token.TOKEN_PROGRAM_ID), accounts[17].PublicKey)
}

func TestInitiateWithdrawDefaults(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	bundle, err := user.MakeInitiateWithdrawIxs(1, 1, true, solana.PublicKey{}, false)
	require.NoError(t, err)
	accounts := bundle.Instructions[0].Accounts()
	assert.Equal(t, addresses.GetTimeLockRentPayerPublicKey(constants.QUARTZ_PROGRAM_ID), accounts[3].PublicKey)
	assert.Equal(t, env.owner, accounts[5].PublicKey)

	_, err = user.MakeInitiateWithdrawIxs(0, 1, true, solana.PublicKey{}, false)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
}

func TestFulfilWithdrawSolUsesProgramPlaceholder(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	order := solana.NewWallet().PublicKey()
	require.NoError(t, env.fetcher.SetEncodable(order, constants.QUARTZ_PROGRAM_ID, quartzlib.WithdrawOrder{
		TimeLock:         quartzlib.TimeLock{Owner: env.owner},
		AmountBaseUnits:  1,
		DriftMarketIndex: 1,
		Destination:      env.owner,
	}))

	bundle, err := user.MakeFulfilWithdrawIxs(context.Background(), order, env.owner)
	require.NoError(t, err)
	accounts := bundle.Instructions[0].Accounts()
	assert.Equal(t, addresses.GetTimeLockRentPayerPublicKey(constants.QUARTZ_PROGRAM_ID), accounts[1].PublicKey)
	assert.Equal(t, spl_token.NATIVE_MINT, accounts[6].PublicKey)
	assert.Equal(t, constants.QUARTZ_PROGRAM_ID, accounts[17].PublicKey)
	assert.True(t, tail(accounts, 2)[1].IsWritable)
}

func TestFulfilRejectsForeignOrders(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	ctx := context.Background()
	caller := solana.NewWallet().PublicKey()

	_, err := user.MakeFulfilWithdrawIxs(ctx, solana.NewWallet().PublicKey(), caller)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	foreign := solana.NewWallet().PublicKey()
	require.NoError(t, env.fetcher.SetEncodable(foreign, constants.QUARTZ_PROGRAM_ID, quartzlib.WithdrawOrder{
		TimeLock: quartzlib.TimeLock{Owner: solana.NewWallet().PublicKey()},
	}))
	_, err = user.MakeFulfilWithdrawIxs(ctx, foreign, caller)
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))

	hold := solana.NewWallet().PublicKey()
	require.NoError(t, env.fetcher.SetEncodable(hold, constants.QUARTZ_PROGRAM_ID, quartzlib.SpendHold{
		TimeLock: quartzlib.TimeLock{Owner: env.owner},
	}))
	_, err = user.MakeFulfilWithdrawIxs(ctx, hold, caller)
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))
	_, err = user.MakeFulfilSpendLimitsIxs(ctx, hold, caller)
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))
}

func TestSpendLimitsOrderRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	limits := SpendLimits{PerTransaction: 1, PerTimeframe: 2, TimeframeInSeconds: 3, NextTimeframeResetTimestamp: 4}

	bundle, err := user.MakeInitiateSpendLimitsIxs(limits, false)
	require.NoError(t, err)
	order := bundle.Signers[0].PublicKey()
	data := requireQuartzIx(t, bundle.Instructions[0], quartzlib.Instruction_InitiateSpendLimits)
	assert.Len(t, data, 8+32)
	assert.Equal(t, order, bundle.Instructions[0].Accounts()[2].PublicKey)

	require.NoError(t, env.fetcher.SetEncodable(order, constants.QUARTZ_PROGRAM_ID, quartzlib.SpendLimitsOrder{
		TimeLock:                    quartzlib.TimeLock{Owner: env.owner},
		SpendLimitPerTransaction:    1,
		SpendLimitPerTimeframe:      2,
		TimeframeInSeconds:          3,
		NextTimeframeResetTimestamp: 4,
	}))
	caller := solana.NewWallet().PublicKey()
	fulfil, err := user.MakeFulfilSpendLimitsIxs(context.Background(), order, caller)
	require.NoError(t, err)
	accounts := fulfil.Instructions[0].Accounts()
	require.Len(t, accounts, 8)
	assert.Equal(t, addresses.GetTimeLockRentPayerPublicKey(constants.QUARTZ_PROGRAM_ID), accounts[1].PublicKey)
	assert.Equal(t, addresses.GetEventAuthorityPublicKey(constants.QUARTZ_PROGRAM_ID), accounts[6].PublicKey)
	assert.Equal(t, constants.QUARTZ_PROGRAM_ID, accounts[7].PublicKey)
}

func TestLifecycleIxs(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)

	closing, err := user.MakeCloseAccountIxs()
	require.NoError(t, err)
	requireQuartzIx(t, closing.Instructions[0], quartzlib.Instruction_CloseUser)
	assert.Equal(t, user.DriftUser, closing.Instructions[0].Accounts()[3].PublicKey)

	upgrade, err := user.MakeUpgradeAccountIxs(SpendLimits{PerTransaction: 5, PerTimeframe: 10, TimeframeInSeconds: 60})
	require.NoError(t, err)
	requireQuartzIx(t, upgrade.Instructions[0], quartzlib.Instruction_UpgradeVault)
}

// go test --run TestMakeSpendIxs

func TestMakeSpendIxs(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	spendCaller, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	bundle, err := user.MakeSpendIxs(2_000_000, spendCaller, true)
	require.NoError(t, err)
	require.Len(t, bundle.Instructions, 2)
	requireQuartzIx(t, bundle.Instructions[0], quartzlib.Instruction_StartSpend)
	requireQuartzIx(t, bundle.Instructions[1], quartzlib.Instruction_CompleteSpend)
	require.Len(t, bundle.Signers, 2)
	assert.Equal(t, spendCaller.PublicKey(), bundle.SignerKeys()[0])

	start := bundle.Instructions[0].Accounts()
	complete := bundle.Instructions[1].Accounts()
	mule := addresses.GetSpendMulePublicKey(constants.QUARTZ_PROGRAM_ID, env.owner)
	assert.Equal(t, mule, start[4].PublicKey)
	assert.Equal(t, mule, complete[3].PublicKey)
	assert.Equal(t, env.client.spendFeeDestination, start[3].PublicKey)
	assert.Equal(t, bundle.Signers[1].PublicKey(), complete[12].PublicKey)
	assert.Equal(t, addresses.GetRemoteTokenMessengerPublicKey(constants.TOKEN_MESSENGER_MINTER_PROGRAM_ID, constants.CCTP_DOMAIN_BASE), complete[9].PublicKey)
	assert.True(t, tail(start, 2)[0].IsWritable)

	env.client.spendFeeDestination = solana.PublicKey{}
	_, err = user.MakeSpendIxs(2_000_000, spendCaller, true)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
	_, err = user.MakeSpendIxs(2_000_000, spendCaller, false)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	_, err = user.MakeSpendIxs(0, spendCaller, true)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
}

func TestSpendHoldRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	spendCaller, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	bundle, err := user.MakeInitiateSpendIxs(1_500_000, spendCaller, false)
	require.NoError(t, err)
	requireQuartzIx(t, bundle.Instructions[0], quartzlib.Instruction_InitiateSpend)
	require.Len(t, bundle.Signers, 2)
	hold := bundle.Signers[1].PublicKey()
	assert.Equal(t, hold, bundle.Instructions[0].Accounts()[14].PublicKey)

	require.NoError(t, env.fetcher.SetEncodable(hold, constants.QUARTZ_PROGRAM_ID, quartzlib.SpendHold{
		TimeLock:            quartzlib.TimeLock{Owner: env.owner},
		AmountUsdcBaseUnits: 1_500_000,
	}))
	fulfil, err := user.MakeFulfilSpendIxs(context.Background(), hold, spendCaller)
	require.NoError(t, err)
	requireQuartzIx(t, fulfil.Instructions[0], quartzlib.Instruction_FulfilSpend)
	accounts := fulfil.Instructions[0].Accounts()
	require.Len(t, accounts, 20)
	assert.Equal(t, hold, accounts[18].PublicKey)
	assert.Equal(t, addresses.GetSpendHoldVaultPublicKey(constants.QUARTZ_PROGRAM_ID), accounts[19].PublicKey)
	assert.Equal(t, fulfil.Signers[1].PublicKey(), accounts[9].PublicKey)
}

// go test --run TestMakeCollateralRepayIxs

func TestMakeCollateralRepayIxs(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	caller := solana.NewWallet().PublicKey()
	swap := system.NewTransferInstruction(1, caller, caller).Build()

	bundle, err := user.MakeCollateralRepayIxs(context.Background(), caller, 0, 1, []solana.Instruction{swap}, false)
	require.NoError(t, err)
	require.Len(t, bundle.Instructions, 4)
	requireQuartzIx(t, bundle.Instructions[0], quartzlib.Instruction_StartCollateralRepay)
	assert.Same(t, swap, bundle.Instructions[1])
	depositData := requireQuartzIx(t, bundle.Instructions[2], quartzlib.Instruction_DepositCollateralRepay)
	withdrawData := requireQuartzIx(t, bundle.Instructions[3], quartzlib.Instruction_WithdrawCollateralRepay)
	assert.Equal(t, []byte{0, 0}, depositData[8:])
	assert.Equal(t, []byte{1, 0}, withdrawData[8:])

	ledger := addresses.GetCollateralRepayLedgerPublicKey(constants.QUARTZ_PROGRAM_ID, env.owner)
	withdraw := bundle.Instructions[3].Accounts()
	assert.Equal(t, env.oracles[0], withdraw[14].PublicKey)
	assert.Equal(t, env.oracles[1], withdraw[15].PublicKey)
	assert.Equal(t, ledger, withdraw[17].PublicKey)
	assert.Equal(t, ledger, bundle.Instructions[0].Accounts()[11].PublicKey)

	for _, ix := range []solana.Instruction{bundle.Instructions[0], bundle.Instructions[2], bundle.Instructions[3]} {
		for _, meta := range ix.Accounts() {
			if meta.PublicKey.Equals(env.owner) {
				assert.False(t, meta.IsSigner)
			}
		}
	}
}

func TestCollateralRepayOwnerSignature(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	caller := solana.NewWallet().PublicKey()
	swap := system.NewTransferInstruction(1, caller, caller).Build()

	bundle, err := user.MakeCollateralRepayIxs(context.Background(), caller, 1, 0, []solana.Instruction{swap}, true)
	require.NoError(t, err)
	for _, i := range []int{0, 2, 3} {
		found := false
		for _, meta := range bundle.Instructions[i].Accounts() {
			if meta.PublicKey.Equals(env.owner) {
				found = true
				assert.True(t, meta.IsSigner)
			}
		}
		assert.True(t, found)
	}
	for _, meta := range swap.Accounts() {
		assert.False(t, meta.PublicKey.Equals(env.owner))
	}
}

func TestCollateralRepayPassesIdenticalMarketsThrough(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t)
	caller := solana.NewWallet().PublicKey()
	swap := system.NewTransferInstruction(1, caller, caller).Build()

	bundle, err := user.MakeCollateralRepayIxs(context.Background(), caller, 1, 1, []solana.Instruction{swap}, false)
	require.NoError(t, err)
	depositData, err := bundle.Instructions[2].Data()
	require.NoError(t, err)
	withdrawData, err := bundle.Instructions[3].Data()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0}, depositData[8:])
	assert.Equal(t, []byte{1, 0}, withdrawData[8:])

	_, err = user.MakeCollateralRepayIxs(context.Background(), caller, 0, 1, nil, false)
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
}

func TestMarkSigner(t *testing.T) {
	key := solana.NewWallet().PublicKey()
	other := solana.NewWallet().PublicKey()
	ixs := []solana.Instruction{
		system.NewTransferInstruction(1, other, key).Build(),
		solana.NewInstruction(constants.QUARTZ_PROGRAM_ID, solana.AccountMetaSlice{solana.Meta(key), solana.Meta(other)}, nil),
	}
	assert.Equal(t, 2, MarkSigner(ixs, key))
	assert.True(t, ixs[0].Accounts()[1].IsSigner)
	assert.True(t, ixs[1].Accounts()[0].IsSigner)
	assert.False(t, ixs[1].Accounts()[1].IsSigner)
}

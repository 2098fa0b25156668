package quartz

import (
	"context"

	"quartzgo/accounts"
	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	quartzlib "quartzgo/lib/quartz"
	spl_token "quartzgo/lib/spl-token"

	"github.com/gagliardetto/solana-go"
)

// cctpAccounts are the bridge accounts shared by completeSpend and
// fulfilSpend.
type cctpAccounts struct {
	senderAuthority      solana.PublicKey
	messageTransmitter   solana.PublicKey
	tokenMessenger       solana.PublicKey
	remoteTokenMessenger solana.PublicKey
	tokenMinter          solana.PublicKey
	localToken           solana.PublicKey
	eventAuthority       solana.PublicKey
}

func newCctpAccounts(usdcMint solana.PublicKey) cctpAccounts {
	tokenMessengerMinter := constants.TOKEN_MESSENGER_MINTER_PROGRAM_ID
	return cctpAccounts{
		senderAuthority:      addresses.GetSenderAuthorityPublicKey(tokenMessengerMinter),
		messageTransmitter:   addresses.GetMessageTransmitterPublicKey(constants.MESSAGE_TRANSMITTER_PROGRAM_ID),
		tokenMessenger:       addresses.GetTokenMessengerPublicKey(tokenMessengerMinter),
		remoteTokenMessenger: addresses.GetRemoteTokenMessengerPublicKey(tokenMessengerMinter, constants.CCTP_DOMAIN_BASE),
		tokenMinter:          addresses.GetTokenMinterPublicKey(tokenMessengerMinter),
		localToken:           addresses.GetLocalTokenPublicKey(tokenMessengerMinter, usdcMint),
		eventAuthority:       addresses.GetEventAuthorityPublicKey(tokenMessengerMinter),
	}
}

func (p *User) checkSpend(op string, amountUsdcBaseUnits uint64, spendCaller solana.PrivateKey) error {
	if amountUsdcBaseUnits == 0 {
		return errs.InvalidParameter(op, "spend amount must be positive")
	}
	if len(spendCaller) == 0 {
		return errs.InvalidParameter(op, "spend caller key is required")
	}
	return nil
}

// checkSpendFeeDestination applies whether or not a fee is charged; the
// destination is a fixed account of startSpend and fulfilSpend.
func (p *Client) checkSpendFeeDestination(op string) error {
	if p.spendFeeDestination.IsZero() {
		return errs.InvalidParameter(op, "no spend fee destination configured")
	}
	return nil
}

// MakeSpendIxs moves a card spend out of the vault and over the bridge in
// one transaction: startSpend withdraws into the spend mule under the
// vault's spend limits, completeSpend burns it through CCTP.
func (p *User) MakeSpendIxs(amountUsdcBaseUnits uint64, spendCaller solana.PrivateKey, spendFee bool) (*Bundle, error) {
	const op = "quartz.MakeSpendIxs"
	if err := p.checkSpend(op, amountUsdcBaseUnits, spendCaller); err != nil {
		return nil, err
	}
	if err := p.client.checkSpendFeeDestination(op); err != nil {
		return nil, err
	}
	remaining, err := p.remainingAccounts(op, constants.QUOTE_SPOT_MARKET_INDEX)
	if err != nil {
		return nil, err
	}
	messageSentEventData, err := newOrderKey(op)
	if err != nil {
		return nil, err
	}
	usdcMint := constants.UsdcMint(p.client.env)
	mule := addresses.GetSpendMulePublicKey(p.client.programId, p.Owner)

	startSpend, err := p.client.buildWithRemainingAccounts(op, quartzlib.NewStartSpendInstructionBuilder().
		SetAmountUsdcBaseUnits(amountUsdcBaseUnits).
		SetSpendFee(spendFee).
		SetVaultAccount(p.Vault).
		SetOwnerAccount(p.Owner).
		SetSpendCallerAccount(spendCaller.PublicKey()).
		SetSpendFeeDestinationAccount(p.client.spendFeeDestination).
		SetMuleAccount(mule).
		SetUsdcMintAccount(usdcMint).
		SetDriftUserAccount(p.DriftUser).
		SetDriftUserStatsAccount(p.DriftUserStats).
		SetDriftStateAccount(addresses.GetDriftStateAccountPublicKey(constants.DRIFT_PROGRAM_ID)).
		SetSpotMarketVaultAccount(addresses.GetSpotMarketVaultAddress(constants.DRIFT_PROGRAM_ID, constants.QUOTE_SPOT_MARKET_INDEX)).
		SetDriftSignerAccount(addresses.GetDriftSignerPublicKey(constants.DRIFT_PROGRAM_ID)).
		SetTokenProgramAccount(spl_token.TOKEN_PROGRAM_ID).
		SetAssociatedTokenProgramAccount(spl_token.ASSOCIATED_TOKEN_PROGRAM_ID).
		SetDriftProgramAccount(constants.DRIFT_PROGRAM_ID).
		SetInstructionsAccount(solana.SysVarInstructionsPubkey).
		SetSystemProgramAccount(solana.SystemProgramID).
		SetEventAuthorityAccount(addresses.GetEventAuthorityPublicKey(p.client.programId)).
		SetProgramAccount(p.client.programId), remaining)
	if err != nil {
		return nil, err
	}

	cctp := newCctpAccounts(usdcMint)
	completeSpend, err := p.client.build(op, quartzlib.NewCompleteSpendInstructionBuilder().
		SetVaultAccount(p.Vault).
		SetOwnerAccount(p.Owner).
		SetSpendCallerAccount(spendCaller.PublicKey()).
		SetMuleAccount(mule).
		SetUsdcMintAccount(usdcMint).
		SetBridgeRentPayerAccount(addresses.GetBridgeRentPayerPublicKey(p.client.programId)).
		SetSenderAuthorityPdaAccount(cctp.senderAuthority).
		SetMessageTransmitterAccount(cctp.messageTransmitter).
		SetTokenMessengerAccount(cctp.tokenMessenger).
		SetRemoteTokenMessengerAccount(cctp.remoteTokenMessenger).
		SetTokenMinterAccount(cctp.tokenMinter).
		SetLocalTokenAccount(cctp.localToken).
		SetMessageSentEventDataAccount(messageSentEventData.PublicKey()).
		SetEventAuthorityAccount(cctp.eventAuthority).
		SetMessageTransmitterProgramAccount(constants.MESSAGE_TRANSMITTER_PROGRAM_ID).
		SetTokenMessengerMinterProgramAccount(constants.TOKEN_MESSENGER_MINTER_PROGRAM_ID).
		SetTokenProgramAccount(spl_token.TOKEN_PROGRAM_ID).
		SetAssociatedTokenProgramAccount(spl_token.ASSOCIATED_TOKEN_PROGRAM_ID).
		SetInstructionsAccount(solana.SysVarInstructionsPubkey).
		SetSystemProgramAccount(solana.SystemProgramID))
	if err != nil {
		return nil, err
	}

	p.client.logger.Debug().
		Str("owner", p.Owner.String()).
		Uint64("amount", amountUsdcBaseUnits).
		Bool("spendFee", spendFee).
		Msg("spend composed")
	return p.client.newBundle([]solana.Instruction{startSpend, completeSpend}, spendCaller, messageSentEventData), nil
}

// MakeInitiateSpendIxs withdraws a card spend into the spend hold vault and
// records a time-locked spend hold. The hold account is returned as a
// signer.
func (p *User) MakeInitiateSpendIxs(amountUsdcBaseUnits uint64, spendCaller solana.PrivateKey, spendFee bool) (*Bundle, error) {
	const op = "quartz.MakeInitiateSpendIxs"
	if err := p.checkSpend(op, amountUsdcBaseUnits, spendCaller); err != nil {
		return nil, err
	}
	remaining, err := p.remainingAccounts(op, constants.QUOTE_SPOT_MARKET_INDEX)
	if err != nil {
		return nil, err
	}
	spendHold, err := newOrderKey(op)
	if err != nil {
		return nil, err
	}

	ix, err := p.client.buildWithRemainingAccounts(op, quartzlib.NewInitiateSpendInstructionBuilder().
		SetAmountUsdcBaseUnits(amountUsdcBaseUnits).
		SetSpendFee(spendFee).
		SetVaultAccount(p.Vault).
		SetOwnerAccount(p.Owner).
		SetSpendCallerAccount(spendCaller.PublicKey()).
		SetUsdcMintAccount(constants.UsdcMint(p.client.env)).
		SetDriftUserAccount(p.DriftUser).
		SetDriftUserStatsAccount(p.DriftUserStats).
		SetDriftStateAccount(addresses.GetDriftStateAccountPublicKey(constants.DRIFT_PROGRAM_ID)).
		SetSpotMarketVaultAccount(addresses.GetSpotMarketVaultAddress(constants.DRIFT_PROGRAM_ID, constants.QUOTE_SPOT_MARKET_INDEX)).
		SetDriftSignerAccount(addresses.GetDriftSignerPublicKey(constants.DRIFT_PROGRAM_ID)).
		SetTokenProgramAccount(spl_token.TOKEN_PROGRAM_ID).
		SetAssociatedTokenProgramAccount(spl_token.ASSOCIATED_TOKEN_PROGRAM_ID).
		SetDriftProgramAccount(constants.DRIFT_PROGRAM_ID).
		SetSystemProgramAccount(solana.SystemProgramID).
		SetTimeLockRentPayerAccount(addresses.GetTimeLockRentPayerPublicKey(p.client.programId)).
		SetSpendHoldAccount(spendHold.PublicKey()).
		SetSpendHoldVaultAccount(addresses.GetSpendHoldVaultPublicKey(p.client.programId)).
		SetEventAuthorityAccount(addresses.GetEventAuthorityPublicKey(p.client.programId)).
		SetProgramAccount(p.client.programId), remaining)
	if err != nil {
		return nil, err
	}
	return p.client.newBundle([]solana.Instruction{ix}, spendCaller, spendHold), nil
}

// MakeFulfilSpendIxs sends a released spend hold over the bridge.
func (p *User) MakeFulfilSpendIxs(ctx context.Context, spendHoldAddress solana.PublicKey, spendCaller solana.PrivateKey) (*Bundle, error) {
	const op = "quartz.MakeFulfilSpendIxs"
	if len(spendCaller) == 0 {
		return nil, errs.InvalidParameter(op, "spend caller key is required")
	}
	if err := p.client.checkSpendFeeDestination(op); err != nil {
		return nil, err
	}
	hold, err := accounts.FetchSpendHold(ctx, p.client.fetcher, spendHoldAddress)
	if err != nil {
		return nil, err
	}
	if err = p.checkOrderOwner(op, spendHoldAddress, hold.TimeLock); err != nil {
		return nil, err
	}
	messageSentEventData, err := newOrderKey(op)
	if err != nil {
		return nil, err
	}
	usdcMint := constants.UsdcMint(p.client.env)
	cctp := newCctpAccounts(usdcMint)

	ix, err := p.client.build(op, quartzlib.NewFulfilSpendInstructionBuilder().
		SetSpendCallerAccount(spendCaller.PublicKey()).
		SetUsdcMintAccount(usdcMint).
		SetBridgeRentPayerAccount(addresses.GetBridgeRentPayerPublicKey(p.client.programId)).
		SetSenderAuthorityPdaAccount(cctp.senderAuthority).
		SetMessageTransmitterAccount(cctp.messageTransmitter).
		SetTokenMessengerAccount(cctp.tokenMessenger).
		SetRemoteTokenMessengerAccount(cctp.remoteTokenMessenger).
		SetTokenMinterAccount(cctp.tokenMinter).
		SetLocalTokenAccount(cctp.localToken).
		SetMessageSentEventDataAccount(messageSentEventData.PublicKey()).
		SetEventAuthorityAccount(cctp.eventAuthority).
		SetMessageTransmitterProgramAccount(constants.MESSAGE_TRANSMITTER_PROGRAM_ID).
		SetTokenMessengerMinterProgramAccount(constants.TOKEN_MESSENGER_MINTER_PROGRAM_ID).
		SetTokenProgramAccount(spl_token.TOKEN_PROGRAM_ID).
		SetAssociatedTokenProgramAccount(spl_token.ASSOCIATED_TOKEN_PROGRAM_ID).
		SetSystemProgramAccount(solana.SystemProgramID).
		SetSpendFeeDestinationAccount(p.client.spendFeeDestination).
		SetTimeLockRentPayerAccount(p.timeLockRentPayer(hold.TimeLock.IsOwnerPayer)).
		SetSpendHoldAccount(spendHoldAddress).
		SetSpendHoldVaultAccount(addresses.GetSpendHoldVaultPublicKey(p.client.programId)))
	if err != nil {
		return nil, err
	}
	return p.client.newBundle([]solana.Instruction{ix}, spendCaller, messageSentEventData), nil
}

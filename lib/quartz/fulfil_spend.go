package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// FulfilSpend bridges a released spend hold.
type FulfilSpend struct {
	// [0] = [WRITE, SIGNER] spendCaller
	// [1] = [WRITE] usdcMint
	// [2] = [WRITE] bridgeRentPayer
	// [3] = senderAuthorityPda
	// [4] = [WRITE] messageTransmitter
	// [5] = tokenMessenger
	// [6] = remoteTokenMessenger
	// [7] = tokenMinter
	// [8] = [WRITE] localToken
	// [9] = [WRITE, SIGNER] messageSentEventData
	// [10] = eventAuthority
	// [11] = messageTransmitterProgram
	// [12] = tokenMessengerMinterProgram
	// [13] = tokenProgram
	// [14] = associatedTokenProgram
	// [15] = systemProgram
	// [16] = [WRITE] spendFeeDestination
	// [17] = [WRITE] timeLockRentPayer
	// [18] = [WRITE] spendHold
	// [19] = [WRITE] spendHoldVault
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewFulfilSpendInstructionBuilder creates a new `FulfilSpend` instruction builder.
func NewFulfilSpendInstructionBuilder() *FulfilSpend {
	return &FulfilSpend{
		AccountMetaSlice: make(solana.AccountMetaSlice, 20),
	}
}

func (inst *FulfilSpend) SetSpendCallerAccount(spendCaller solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[0] = solana.Meta(spendCaller).WRITE().SIGNER()
	return inst
}

func (inst *FulfilSpend) GetSpendCallerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *FulfilSpend) SetUsdcMintAccount(usdcMint solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[1] = solana.Meta(usdcMint).WRITE()
	return inst
}

func (inst *FulfilSpend) GetUsdcMintAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *FulfilSpend) SetBridgeRentPayerAccount(bridgeRentPayer solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[2] = solana.Meta(bridgeRentPayer).WRITE()
	return inst
}

func (inst *FulfilSpend) GetBridgeRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *FulfilSpend) SetSenderAuthorityPdaAccount(senderAuthorityPda solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[3] = solana.Meta(senderAuthorityPda)
	return inst
}

func (inst *FulfilSpend) GetSenderAuthorityPdaAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *FulfilSpend) SetMessageTransmitterAccount(messageTransmitter solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[4] = solana.Meta(messageTransmitter).WRITE()
	return inst
}

func (inst *FulfilSpend) GetMessageTransmitterAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *FulfilSpend) SetTokenMessengerAccount(tokenMessenger solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[5] = solana.Meta(tokenMessenger)
	return inst
}

func (inst *FulfilSpend) GetTokenMessengerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *FulfilSpend) SetRemoteTokenMessengerAccount(remoteTokenMessenger solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[6] = solana.Meta(remoteTokenMessenger)
	return inst
}

func (inst *FulfilSpend) GetRemoteTokenMessengerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *FulfilSpend) SetTokenMinterAccount(tokenMinter solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[7] = solana.Meta(tokenMinter)
	return inst
}

func (inst *FulfilSpend) GetTokenMinterAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *FulfilSpend) SetLocalTokenAccount(localToken solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[8] = solana.Meta(localToken).WRITE()
	return inst
}

func (inst *FulfilSpend) GetLocalTokenAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst *FulfilSpend) SetMessageSentEventDataAccount(messageSentEventData solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[9] = solana.Meta(messageSentEventData).WRITE().SIGNER()
	return inst
}

func (inst *FulfilSpend) GetMessageSentEventDataAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

func (inst *FulfilSpend) SetEventAuthorityAccount(eventAuthority solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[10] = solana.Meta(eventAuthority)
	return inst
}

func (inst *FulfilSpend) GetEventAuthorityAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

func (inst *FulfilSpend) SetMessageTransmitterProgramAccount(messageTransmitterProgram solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[11] = solana.Meta(messageTransmitterProgram)
	return inst
}

func (inst *FulfilSpend) GetMessageTransmitterProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

func (inst *FulfilSpend) SetTokenMessengerMinterProgramAccount(tokenMessengerMinterProgram solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[12] = solana.Meta(tokenMessengerMinterProgram)
	return inst
}

func (inst *FulfilSpend) GetTokenMessengerMinterProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

func (inst *FulfilSpend) SetTokenProgramAccount(tokenProgram solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[13] = solana.Meta(tokenProgram)
	return inst
}

func (inst *FulfilSpend) GetTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(13)
}

func (inst *FulfilSpend) SetAssociatedTokenProgramAccount(associatedTokenProgram solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[14] = solana.Meta(associatedTokenProgram)
	return inst
}

func (inst *FulfilSpend) GetAssociatedTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(14)
}

func (inst *FulfilSpend) SetSystemProgramAccount(systemProgram solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[15] = solana.Meta(systemProgram)
	return inst
}

func (inst *FulfilSpend) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(15)
}

func (inst *FulfilSpend) SetSpendFeeDestinationAccount(spendFeeDestination solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[16] = solana.Meta(spendFeeDestination).WRITE()
	return inst
}

func (inst *FulfilSpend) GetSpendFeeDestinationAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(16)
}

func (inst *FulfilSpend) SetTimeLockRentPayerAccount(timeLockRentPayer solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[17] = solana.Meta(timeLockRentPayer).WRITE()
	return inst
}

func (inst *FulfilSpend) GetTimeLockRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(17)
}

func (inst *FulfilSpend) SetSpendHoldAccount(spendHold solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[18] = solana.Meta(spendHold).WRITE()
	return inst
}

func (inst *FulfilSpend) GetSpendHoldAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(18)
}

func (inst *FulfilSpend) SetSpendHoldVaultAccount(spendHoldVault solana.PublicKey) *FulfilSpend {
	inst.AccountMetaSlice[19] = solana.Meta(spendHoldVault).WRITE()
	return inst
}

func (inst *FulfilSpend) GetSpendHoldVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(19)
}

func (inst FulfilSpend) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_FulfilSpend,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst FulfilSpend) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *FulfilSpend) Validate() error {
	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.SpendCaller is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.UsdcMint is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.BridgeRentPayer is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.SenderAuthorityPda is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.MessageTransmitter is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.TokenMessenger is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.RemoteTokenMessenger is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.TokenMinter is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.LocalToken is not set")
		}
		if inst.AccountMetaSlice[9] == nil {
			return errors.New("accounts.MessageSentEventData is not set")
		}
		if inst.AccountMetaSlice[10] == nil {
			return errors.New("accounts.EventAuthority is not set")
		}
		if inst.AccountMetaSlice[11] == nil {
			return errors.New("accounts.MessageTransmitterProgram is not set")
		}
		if inst.AccountMetaSlice[12] == nil {
			return errors.New("accounts.TokenMessengerMinterProgram is not set")
		}
		if inst.AccountMetaSlice[13] == nil {
			return errors.New("accounts.TokenProgram is not set")
		}
		if inst.AccountMetaSlice[14] == nil {
			return errors.New("accounts.AssociatedTokenProgram is not set")
		}
		if inst.AccountMetaSlice[15] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
		if inst.AccountMetaSlice[16] == nil {
			return errors.New("accounts.SpendFeeDestination is not set")
		}
		if inst.AccountMetaSlice[17] == nil {
			return errors.New("accounts.TimeLockRentPayer is not set")
		}
		if inst.AccountMetaSlice[18] == nil {
			return errors.New("accounts.SpendHold is not set")
		}
		if inst.AccountMetaSlice[19] == nil {
			return errors.New("accounts.SpendHoldVault is not set")
		}
	}
	return nil
}

func (inst *FulfilSpend) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("FulfilSpend")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=0]").ParentFunc(func(paramsBranch treeout.Branches) {})

					instructionBranch.Child("Accounts[len=20]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("                spendCaller", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("                   usdcMint", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("            bridgeRentPayer", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("         senderAuthorityPda", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("         messageTransmitter", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("             tokenMessenger", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("       remoteTokenMessenger", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta("                tokenMinter", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta("                 localToken", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(format.Meta("       messageSentEventData", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(format.Meta("             eventAuthority", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(format.Meta("  messageTransmitterProgram", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(format.Meta("tokenMessengerMinterProgram", inst.AccountMetaSlice.Get(12)))
						accountsBranch.Child(format.Meta("               tokenProgram", inst.AccountMetaSlice.Get(13)))
						accountsBranch.Child(format.Meta("     associatedTokenProgram", inst.AccountMetaSlice.Get(14)))
						accountsBranch.Child(format.Meta("              systemProgram", inst.AccountMetaSlice.Get(15)))
						accountsBranch.Child(format.Meta("        spendFeeDestination", inst.AccountMetaSlice.Get(16)))
						accountsBranch.Child(format.Meta("          timeLockRentPayer", inst.AccountMetaSlice.Get(17)))
						accountsBranch.Child(format.Meta("                  spendHold", inst.AccountMetaSlice.Get(18)))
						accountsBranch.Child(format.Meta("             spendHoldVault", inst.AccountMetaSlice.Get(19)))
					})
				})
		})
}

func (obj FulfilSpend) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	return nil
}

func (obj *FulfilSpend) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	return nil
}

// NewFulfilSpendInstruction declares a new FulfilSpend instruction with the provided parameters and accounts.
func NewFulfilSpendInstruction(
	// Accounts:
	spendCaller solana.PublicKey,
	usdcMint solana.PublicKey,
	bridgeRentPayer solana.PublicKey,
	senderAuthorityPda solana.PublicKey,
	messageTransmitter solana.PublicKey,
	tokenMessenger solana.PublicKey,
	remoteTokenMessenger solana.PublicKey,
	tokenMinter solana.PublicKey,
	localToken solana.PublicKey,
	messageSentEventData solana.PublicKey,
	eventAuthority solana.PublicKey,
	messageTransmitterProgram solana.PublicKey,
	tokenMessengerMinterProgram solana.PublicKey,
	tokenProgram solana.PublicKey,
	associatedTokenProgram solana.PublicKey,
	systemProgram solana.PublicKey,
	spendFeeDestination solana.PublicKey,
	timeLockRentPayer solana.PublicKey,
	spendHold solana.PublicKey,
	spendHoldVault solana.PublicKey,
) *FulfilSpend {
	return NewFulfilSpendInstructionBuilder().
		SetSpendCallerAccount(spendCaller).
		SetUsdcMintAccount(usdcMint).
		SetBridgeRentPayerAccount(bridgeRentPayer).
		SetSenderAuthorityPdaAccount(senderAuthorityPda).
		SetMessageTransmitterAccount(messageTransmitter).
		SetTokenMessengerAccount(tokenMessenger).
		SetRemoteTokenMessengerAccount(remoteTokenMessenger).
		SetTokenMinterAccount(tokenMinter).
		SetLocalTokenAccount(localToken).
		SetMessageSentEventDataAccount(messageSentEventData).
		SetEventAuthorityAccount(eventAuthority).
		SetMessageTransmitterProgramAccount(messageTransmitterProgram).
		SetTokenMessengerMinterProgramAccount(tokenMessengerMinterProgram).
		SetTokenProgramAccount(tokenProgram).
		SetAssociatedTokenProgramAccount(associatedTokenProgram).
		SetSystemProgramAccount(systemProgram).
		SetSpendFeeDestinationAccount(spendFeeDestination).
		SetTimeLockRentPayerAccount(timeLockRentPayer).
		SetSpendHoldAccount(spendHold).
		SetSpendHoldVaultAccount(spendHoldVault)
}

package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// CompleteSpend burns the mule's USDC through CCTP towards the card issuer.
type CompleteSpend struct {
	// [0] = [WRITE] vault
	// [1] = owner
	// [2] = [WRITE, SIGNER] spendCaller
	// [3] = [WRITE] mule
	// [4] = [WRITE] usdcMint
	// [5] = [WRITE] bridgeRentPayer
	// [6] = senderAuthorityPda
	// [7] = [WRITE] messageTransmitter
	// [8] = tokenMessenger
	// [9] = remoteTokenMessenger
	// [10] = tokenMinter
	// [11] = [WRITE] localToken
	// [12] = [WRITE, SIGNER] messageSentEventData
	// [13] = eventAuthority
	// [14] = messageTransmitterProgram
	// [15] = tokenMessengerMinterProgram
	// [16] = tokenProgram
	// [17] = associatedTokenProgram
	// [18] = instructions
	// [19] = systemProgram
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewCompleteSpendInstructionBuilder creates a new `CompleteSpend` instruction builder.
func NewCompleteSpendInstructionBuilder() *CompleteSpend {
	return &CompleteSpend{
		AccountMetaSlice: make(solana.AccountMetaSlice, 20),
	}
}

func (inst *CompleteSpend) SetVaultAccount(vault solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[0] = solana.Meta(vault).WRITE()
	return inst
}

func (inst *CompleteSpend) GetVaultAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *CompleteSpend) SetOwnerAccount(owner solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[1] = solana.Meta(owner)
	return inst
}

func (inst *CompleteSpend) GetOwnerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *CompleteSpend) SetSpendCallerAccount(spendCaller solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[2] = solana.Meta(spendCaller).WRITE().SIGNER()
	return inst
}

func (inst *CompleteSpend) GetSpendCallerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *CompleteSpend) SetMuleAccount(mule solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[3] = solana.Meta(mule).WRITE()
	return inst
}

func (inst *CompleteSpend) GetMuleAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *CompleteSpend) SetUsdcMintAccount(usdcMint solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[4] = solana.Meta(usdcMint).WRITE()
	return inst
}

func (inst *CompleteSpend) GetUsdcMintAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst *CompleteSpend) SetBridgeRentPayerAccount(bridgeRentPayer solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[5] = solana.Meta(bridgeRentPayer).WRITE()
	return inst
}

func (inst *CompleteSpend) GetBridgeRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(5)
}

func (inst *CompleteSpend) SetSenderAuthorityPdaAccount(senderAuthorityPda solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[6] = solana.Meta(senderAuthorityPda)
	return inst
}

func (inst *CompleteSpend) GetSenderAuthorityPdaAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(6)
}

func (inst *CompleteSpend) SetMessageTransmitterAccount(messageTransmitter solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[7] = solana.Meta(messageTransmitter).WRITE()
	return inst
}

func (inst *CompleteSpend) GetMessageTransmitterAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(7)
}

func (inst *CompleteSpend) SetTokenMessengerAccount(tokenMessenger solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[8] = solana.Meta(tokenMessenger)
	return inst
}

func (inst *CompleteSpend) GetTokenMessengerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(8)
}

func (inst *CompleteSpend) SetRemoteTokenMessengerAccount(remoteTokenMessenger solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[9] = solana.Meta(remoteTokenMessenger)
	return inst
}

func (inst *CompleteSpend) GetRemoteTokenMessengerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(9)
}

func (inst *CompleteSpend) SetTokenMinterAccount(tokenMinter solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[10] = solana.Meta(tokenMinter)
	return inst
}

func (inst *CompleteSpend) GetTokenMinterAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(10)
}

func (inst *CompleteSpend) SetLocalTokenAccount(localToken solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[11] = solana.Meta(localToken).WRITE()
	return inst
}

func (inst *CompleteSpend) GetLocalTokenAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(11)
}

func (inst *CompleteSpend) SetMessageSentEventDataAccount(messageSentEventData solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[12] = solana.Meta(messageSentEventData).WRITE().SIGNER()
	return inst
}

func (inst *CompleteSpend) GetMessageSentEventDataAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(12)
}

func (inst *CompleteSpend) SetEventAuthorityAccount(eventAuthority solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[13] = solana.Meta(eventAuthority)
	return inst
}

func (inst *CompleteSpend) GetEventAuthorityAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(13)
}

func (inst *CompleteSpend) SetMessageTransmitterProgramAccount(messageTransmitterProgram solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[14] = solana.Meta(messageTransmitterProgram)
	return inst
}

func (inst *CompleteSpend) GetMessageTransmitterProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(14)
}

func (inst *CompleteSpend) SetTokenMessengerMinterProgramAccount(tokenMessengerMinterProgram solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[15] = solana.Meta(tokenMessengerMinterProgram)
	return inst
}

func (inst *CompleteSpend) GetTokenMessengerMinterProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(15)
}

func (inst *CompleteSpend) SetTokenProgramAccount(tokenProgram solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[16] = solana.Meta(tokenProgram)
	return inst
}

func (inst *CompleteSpend) GetTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(16)
}

func (inst *CompleteSpend) SetAssociatedTokenProgramAccount(associatedTokenProgram solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[17] = solana.Meta(associatedTokenProgram)
	return inst
}

func (inst *CompleteSpend) GetAssociatedTokenProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(17)
}

func (inst *CompleteSpend) SetInstructionsAccount(instructions solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[18] = solana.Meta(instructions)
	return inst
}

func (inst *CompleteSpend) GetInstructionsAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(18)
}

func (inst *CompleteSpend) SetSystemProgramAccount(systemProgram solana.PublicKey) *CompleteSpend {
	inst.AccountMetaSlice[19] = solana.Meta(systemProgram)
	return inst
}

func (inst *CompleteSpend) GetSystemProgramAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(19)
}

func (inst CompleteSpend) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_CompleteSpend,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst CompleteSpend) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *CompleteSpend) Validate() error {
	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.Vault is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.Owner is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.SpendCaller is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.Mule is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.UsdcMint is not set")
		}
		if inst.AccountMetaSlice[5] == nil {
			return errors.New("accounts.BridgeRentPayer is not set")
		}
		if inst.AccountMetaSlice[6] == nil {
			return errors.New("accounts.SenderAuthorityPda is not set")
		}
		if inst.AccountMetaSlice[7] == nil {
			return errors.New("accounts.MessageTransmitter is not set")
		}
		if inst.AccountMetaSlice[8] == nil {
			return errors.New("accounts.TokenMessenger is not set")
		}
		if inst.AccountMetaSlice[9] == nil {
			return errors.New("accounts.RemoteTokenMessenger is not set")
		}
		if inst.AccountMetaSlice[10] == nil {
			return errors.New("accounts.TokenMinter is not set")
		}
		if inst.AccountMetaSlice[11] == nil {
			return errors.New("accounts.LocalToken is not set")
		}
		if inst.AccountMetaSlice[12] == nil {
			return errors.New("accounts.MessageSentEventData is not set")
		}
		if inst.AccountMetaSlice[13] == nil {
			return errors.New("accounts.EventAuthority is not set")
		}
		if inst.AccountMetaSlice[14] == nil {
			return errors.New("accounts.MessageTransmitterProgram is not set")
		}
		if inst.AccountMetaSlice[15] == nil {
			return errors.New("accounts.TokenMessengerMinterProgram is not set")
		}
		if inst.AccountMetaSlice[16] == nil {
			return errors.New("accounts.TokenProgram is not set")
		}
		if inst.AccountMetaSlice[17] == nil {
			return errors.New("accounts.AssociatedTokenProgram is not set")
		}
		if inst.AccountMetaSlice[18] == nil {
			return errors.New("accounts.Instructions is not set")
		}
		if inst.AccountMetaSlice[19] == nil {
			return errors.New("accounts.SystemProgram is not set")
		}
	}
	return nil
}

func (inst *CompleteSpend) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("CompleteSpend")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=0]").ParentFunc(func(paramsBranch treeout.Branches) {})

					instructionBranch.Child("Accounts[len=20]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("                      vault", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("                      owner", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("                spendCaller", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("                       mule", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("                   usdcMint", inst.AccountMetaSlice.Get(4)))
						accountsBranch.Child(format.Meta("            bridgeRentPayer", inst.AccountMetaSlice.Get(5)))
						accountsBranch.Child(format.Meta("         senderAuthorityPda", inst.AccountMetaSlice.Get(6)))
						accountsBranch.Child(format.Meta("         messageTransmitter", inst.AccountMetaSlice.Get(7)))
						accountsBranch.Child(format.Meta("             tokenMessenger", inst.AccountMetaSlice.Get(8)))
						accountsBranch.Child(format.Meta("       remoteTokenMessenger", inst.AccountMetaSlice.Get(9)))
						accountsBranch.Child(format.Meta("                tokenMinter", inst.AccountMetaSlice.Get(10)))
						accountsBranch.Child(format.Meta("                 localToken", inst.AccountMetaSlice.Get(11)))
						accountsBranch.Child(format.Meta("       messageSentEventData", inst.AccountMetaSlice.Get(12)))
						accountsBranch.Child(format.Meta("             eventAuthority", inst.AccountMetaSlice.Get(13)))
						accountsBranch.Child(format.Meta("  messageTransmitterProgram", inst.AccountMetaSlice.Get(14)))
						accountsBranch.Child(format.Meta("tokenMessengerMinterProgram", inst.AccountMetaSlice.Get(15)))
						accountsBranch.Child(format.Meta("               tokenProgram", inst.AccountMetaSlice.Get(16)))
						accountsBranch.Child(format.Meta("     associatedTokenProgram", inst.AccountMetaSlice.Get(17)))
						accountsBranch.Child(format.Meta("               instructions", inst.AccountMetaSlice.Get(18)))
						accountsBranch.Child(format.Meta("              systemProgram", inst.AccountMetaSlice.Get(19)))
					})
				})
		})
}

func (obj CompleteSpend) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	return nil
}

func (obj *CompleteSpend) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	return nil
}

// NewCompleteSpendInstruction declares a new CompleteSpend instruction with the provided parameters and accounts.
func NewCompleteSpendInstruction(
	// Accounts:
	vault solana.PublicKey,
	owner solana.PublicKey,
	spendCaller solana.PublicKey,
	mule solana.PublicKey,
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
	instructions solana.PublicKey,
	systemProgram solana.PublicKey,
) *CompleteSpend {
	return NewCompleteSpendInstructionBuilder().
		SetVaultAccount(vault).
		SetOwnerAccount(owner).
		SetSpendCallerAccount(spendCaller).
		SetMuleAccount(mule).
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
		SetInstructionsAccount(instructions).
		SetSystemProgramAccount(systemProgram)
}

package quartz

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text/format"
	"github.com/gagliardetto/treeout"
)

// ReclaimBridgeRent returns the rent held by a CCTP message account once the bridge attestation is available.
type ReclaimBridgeRent struct {
	Attestation []byte

	// [0] = [SIGNER] rentReclaimer
	// [1] = [WRITE] bridgeRentPayer
	// [2] = [WRITE] messageTransmitter
	// [3] = [WRITE] messageSentEventData
	// [4] = cctpMessageTransmitter
	solana.AccountMetaSlice `bin:"-" borsh_skip:"true"`
}

// NewReclaimBridgeRentInstructionBuilder creates a new `ReclaimBridgeRent` instruction builder.
func NewReclaimBridgeRentInstructionBuilder() *ReclaimBridgeRent {
	return &ReclaimBridgeRent{
		AccountMetaSlice: make(solana.AccountMetaSlice, 5),
	}
}

func (inst *ReclaimBridgeRent) SetAttestation(attestation []byte) *ReclaimBridgeRent {
	inst.Attestation = attestation
	return inst
}

func (inst *ReclaimBridgeRent) SetRentReclaimerAccount(rentReclaimer solana.PublicKey) *ReclaimBridgeRent {
	inst.AccountMetaSlice[0] = solana.Meta(rentReclaimer).SIGNER()
	return inst
}

func (inst *ReclaimBridgeRent) GetRentReclaimerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(0)
}

func (inst *ReclaimBridgeRent) SetBridgeRentPayerAccount(bridgeRentPayer solana.PublicKey) *ReclaimBridgeRent {
	inst.AccountMetaSlice[1] = solana.Meta(bridgeRentPayer).WRITE()
	return inst
}

func (inst *ReclaimBridgeRent) GetBridgeRentPayerAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(1)
}

func (inst *ReclaimBridgeRent) SetMessageTransmitterAccount(messageTransmitter solana.PublicKey) *ReclaimBridgeRent {
	inst.AccountMetaSlice[2] = solana.Meta(messageTransmitter).WRITE()
	return inst
}

func (inst *ReclaimBridgeRent) GetMessageTransmitterAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(2)
}

func (inst *ReclaimBridgeRent) SetMessageSentEventDataAccount(messageSentEventData solana.PublicKey) *ReclaimBridgeRent {
	inst.AccountMetaSlice[3] = solana.Meta(messageSentEventData).WRITE()
	return inst
}

func (inst *ReclaimBridgeRent) GetMessageSentEventDataAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(3)
}

func (inst *ReclaimBridgeRent) SetCctpMessageTransmitterAccount(cctpMessageTransmitter solana.PublicKey) *ReclaimBridgeRent {
	inst.AccountMetaSlice[4] = solana.Meta(cctpMessageTransmitter)
	return inst
}

func (inst *ReclaimBridgeRent) GetCctpMessageTransmitterAccount() *solana.AccountMeta {
	return inst.AccountMetaSlice.Get(4)
}

func (inst ReclaimBridgeRent) Build() *Instruction {
	return &Instruction{BaseVariant: bin.BaseVariant{
		Impl:   inst,
		TypeID: Instruction_ReclaimBridgeRent,
	}}
}

// ValidateAndBuild validates the instruction parameters and accounts;
// if there is a validation error, it returns the error.
// Otherwise, it builds and returns the instruction.
func (inst ReclaimBridgeRent) ValidateAndBuild() (*Instruction, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Build(), nil
}

func (inst *ReclaimBridgeRent) Validate() error {
	// Check whether all (required) parameters are set:
	{
		if inst.Attestation == nil {
			return errors.New("Attestation parameter is not set")
		}
	}

	// Check whether all (required) accounts are set:
	{
		if inst.AccountMetaSlice[0] == nil {
			return errors.New("accounts.RentReclaimer is not set")
		}
		if inst.AccountMetaSlice[1] == nil {
			return errors.New("accounts.BridgeRentPayer is not set")
		}
		if inst.AccountMetaSlice[2] == nil {
			return errors.New("accounts.MessageTransmitter is not set")
		}
		if inst.AccountMetaSlice[3] == nil {
			return errors.New("accounts.MessageSentEventData is not set")
		}
		if inst.AccountMetaSlice[4] == nil {
			return errors.New("accounts.CctpMessageTransmitter is not set")
		}
	}
	return nil
}

func (inst *ReclaimBridgeRent) EncodeToTree(parent treeout.Branches) {
	parent.Child(format.Program(ProgramName, ProgramID)).
		ParentFunc(func(programBranch treeout.Branches) {
			programBranch.Child(format.Instruction("ReclaimBridgeRent")).
				ParentFunc(func(instructionBranch treeout.Branches) {
					instructionBranch.Child("Params[len=1]").ParentFunc(func(paramsBranch treeout.Branches) {
						paramsBranch.Child(format.Param("Attestation", inst.Attestation))
					})

					instructionBranch.Child("Accounts[len=5]").ParentFunc(func(accountsBranch treeout.Branches) {
						accountsBranch.Child(format.Meta("         rentReclaimer", inst.AccountMetaSlice.Get(0)))
						accountsBranch.Child(format.Meta("       bridgeRentPayer", inst.AccountMetaSlice.Get(1)))
						accountsBranch.Child(format.Meta("    messageTransmitter", inst.AccountMetaSlice.Get(2)))
						accountsBranch.Child(format.Meta("  messageSentEventData", inst.AccountMetaSlice.Get(3)))
						accountsBranch.Child(format.Meta("cctpMessageTransmitter", inst.AccountMetaSlice.Get(4)))
					})
				})
		})
}

func (obj ReclaimBridgeRent) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	err = encoder.WriteUint32(uint32(len(obj.Attestation)), bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteBytes(obj.Attestation, false)
	if err != nil {
		return err
	}
	return nil
}

func (obj *ReclaimBridgeRent) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	{
		length, err := decoder.ReadUint32(bin.LE)
		if err != nil {
			return err
		}
		obj.Attestation, err = decoder.ReadNBytes(int(length))
		if err != nil {
			return err
		}
	}
	return nil
}

// NewReclaimBridgeRentInstruction declares a new ReclaimBridgeRent instruction with the provided parameters and accounts.
func NewReclaimBridgeRentInstruction(
	// Parameters:
	attestation []byte,
	// Accounts:
	rentReclaimer solana.PublicKey,
	bridgeRentPayer solana.PublicKey,
	messageTransmitter solana.PublicKey,
	messageSentEventData solana.PublicKey,
	cctpMessageTransmitter solana.PublicKey,
) *ReclaimBridgeRent {
	return NewReclaimBridgeRentInstructionBuilder().
		SetAttestation(attestation).
		SetRentReclaimerAccount(rentReclaimer).
		SetBridgeRentPayerAccount(bridgeRentPayer).
		SetMessageTransmitterAccount(messageTransmitter).
		SetMessageSentEventDataAccount(messageSentEventData).
		SetCctpMessageTransmitterAccount(cctpMessageTransmitter)
}

// Package quartz holds the bindings for the Quartz program interface
// (IDL 0.10.0): instruction builders, account layouts and program errors.
package quartz

import (
	"bytes"
	"fmt"

	"quartzgo/constants"

	"github.com/davecgh/go-spew/spew"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/text"
	"github.com/gagliardetto/treeout"
)

var ProgramID solana.PublicKey = constants.QUARTZ_PROGRAM_ID

const ProgramName = "Quartz"

func init() {
	if !ProgramID.IsZero() {
		solana.RegisterInstructionDecoder(ProgramID, registryDecodeInstruction)
	}
}

var (
	Instruction_ReclaimBridgeRent       = bin.TypeID([8]byte{244, 64, 74, 202, 199, 79, 248, 80})
	Instruction_InitUser                = bin.TypeID([8]byte{14, 51, 68, 159, 237, 78, 158, 102})
	Instruction_CloseUser               = bin.TypeID([8]byte{86, 219, 138, 140, 236, 24, 118, 200})
	Instruction_UpgradeVault            = bin.TypeID([8]byte{52, 189, 167, 173, 189, 223, 116, 161})
	Instruction_Deposit                 = bin.TypeID([8]byte{242, 35, 198, 137, 82, 225, 242, 182})
	Instruction_FulfilDeposit           = bin.TypeID([8]byte{215, 47, 234, 49, 207, 200, 58, 223})
	Instruction_InitiateWithdraw        = bin.TypeID([8]byte{156, 172, 140, 245, 182, 250, 239, 160})
	Instruction_FulfilWithdraw          = bin.TypeID([8]byte{91, 240, 161, 40, 249, 177, 27, 13})
	Instruction_StartSpend              = bin.TypeID([8]byte{217, 51, 147, 170, 66, 154, 120, 40})
	Instruction_CompleteSpend           = bin.TypeID([8]byte{167, 183, 55, 225, 209, 151, 50, 192})
	Instruction_InitiateSpend           = bin.TypeID([8]byte{167, 73, 34, 117, 102, 40, 178, 2})
	Instruction_FulfilSpend             = bin.TypeID([8]byte{113, 58, 116, 206, 250, 73, 30, 222})
	Instruction_InitiateSpendLimits     = bin.TypeID([8]byte{170, 196, 24, 105, 5, 194, 250, 90})
	Instruction_FulfilSpendLimits       = bin.TypeID([8]byte{162, 148, 120, 217, 96, 83, 121, 147})
	Instruction_StartCollateralRepay    = bin.TypeID([8]byte{48, 64, 146, 3, 251, 199, 140, 134})
	Instruction_DepositCollateralRepay  = bin.TypeID([8]byte{208, 108, 103, 225, 210, 76, 30, 210})
	Instruction_WithdrawCollateralRepay = bin.TypeID([8]byte{139, 30, 34, 168, 162, 142, 64, 241})
)

// InstructionIDToName returns the name of the instruction given its ID.
func InstructionIDToName(id bin.TypeID) string {
	switch id {
	case Instruction_ReclaimBridgeRent:
		return "ReclaimBridgeRent"
	case Instruction_InitUser:
		return "InitUser"
	case Instruction_CloseUser:
		return "CloseUser"
	case Instruction_UpgradeVault:
		return "UpgradeVault"
	case Instruction_Deposit:
		return "Deposit"
	case Instruction_FulfilDeposit:
		return "FulfilDeposit"
	case Instruction_InitiateWithdraw:
		return "InitiateWithdraw"
	case Instruction_FulfilWithdraw:
		return "FulfilWithdraw"
	case Instruction_StartSpend:
		return "StartSpend"
	case Instruction_CompleteSpend:
		return "CompleteSpend"
	case Instruction_InitiateSpend:
		return "InitiateSpend"
	case Instruction_FulfilSpend:
		return "FulfilSpend"
	case Instruction_InitiateSpendLimits:
		return "InitiateSpendLimits"
	case Instruction_FulfilSpendLimits:
		return "FulfilSpendLimits"
	case Instruction_StartCollateralRepay:
		return "StartCollateralRepay"
	case Instruction_DepositCollateralRepay:
		return "DepositCollateralRepay"
	case Instruction_WithdrawCollateralRepay:
		return "WithdrawCollateralRepay"
	default:
		return ""
	}
}

type Instruction struct {
	bin.BaseVariant
}

func (inst *Instruction) EncodeToTree(parent treeout.Branches) {
	if enToTree, ok := inst.Impl.(text.EncodableToTree); ok {
		enToTree.EncodeToTree(parent)
	} else {
		parent.Child(spew.Sdump(inst))
	}
}

var InstructionImplDef = bin.NewVariantDefinition(
	bin.AnchorTypeIDEncoding,
	[]bin.VariantType{
		{Name: "reclaim_bridge_rent", Type: (*ReclaimBridgeRent)(nil)},
		{Name: "init_user", Type: (*InitUser)(nil)},
		{Name: "close_user", Type: (*CloseUser)(nil)},
		{Name: "upgrade_vault", Type: (*UpgradeVault)(nil)},
		{Name: "deposit", Type: (*Deposit)(nil)},
		{Name: "fulfil_deposit", Type: (*FulfilDeposit)(nil)},
		{Name: "initiate_withdraw", Type: (*InitiateWithdraw)(nil)},
		{Name: "fulfil_withdraw", Type: (*FulfilWithdraw)(nil)},
		{Name: "start_spend", Type: (*StartSpend)(nil)},
		{Name: "complete_spend", Type: (*CompleteSpend)(nil)},
		{Name: "initiate_spend", Type: (*InitiateSpend)(nil)},
		{Name: "fulfil_spend", Type: (*FulfilSpend)(nil)},
		{Name: "initiate_spend_limits", Type: (*InitiateSpendLimits)(nil)},
		{Name: "fulfil_spend_limits", Type: (*FulfilSpendLimits)(nil)},
		{Name: "start_collateral_repay", Type: (*StartCollateralRepay)(nil)},
		{Name: "deposit_collateral_repay", Type: (*DepositCollateralRepay)(nil)},
		{Name: "withdraw_collateral_repay", Type: (*WithdrawCollateralRepay)(nil)},
	},
)

func (inst *Instruction) ProgramID() solana.PublicKey {
	return ProgramID
}

func (inst *Instruction) Accounts() (out []*solana.AccountMeta) {
	return inst.Impl.(solana.AccountsGettable).GetAccounts()
}

func (inst *Instruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(inst); err != nil {
		return nil, fmt.Errorf("unable to encode instruction: %w", err)
	}
	return buf.Bytes(), nil
}

func (inst *Instruction) TextEncode(encoder *text.Encoder, option *text.Option) error {
	return encoder.Encode(inst.Impl, option)
}

func (inst *Instruction) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	return inst.BaseVariant.UnmarshalBinaryVariant(decoder, InstructionImplDef)
}

func (inst *Instruction) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteBytes(inst.TypeID.Bytes(), false)
	if err != nil {
		return fmt.Errorf("unable to write variant type: %w", err)
	}
	return encoder.Encode(inst.Impl)
}

func registryDecodeInstruction(accounts []*solana.AccountMeta, data []byte) (interface{}, error) {
	inst, err := DecodeInstruction(accounts, data)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func DecodeInstruction(accounts []*solana.AccountMeta, data []byte) (*Instruction, error) {
	inst := new(Instruction)
	if err := bin.NewBorshDecoder(data).Decode(inst); err != nil {
		return nil, fmt.Errorf("unable to decode instruction: %w", err)
	}
	if v, ok := inst.Impl.(solana.AccountsSettable); ok {
		err := v.SetAccounts(accounts)
		if err != nil {
			return nil, fmt.Errorf("unable to set accounts for instruction: %w", err)
		}
	}
	return inst, nil
}

// Name is the instruction name as Anchor logs it.
func (inst *Instruction) Name() string {
	return InstructionIDToName(inst.TypeID)
}

package quartz

import (
	"fmt"

	"quartzgo/errs"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	VaultDiscriminator                 = [8]byte{211, 8, 232, 43, 2, 152, 117, 119}
	CollateralRepayLedgerDiscriminator = [8]byte{42, 104, 229, 179, 200, 149, 230, 221}
	WithdrawOrderDiscriminator         = [8]byte{17, 175, 72, 133, 12, 202, 254, 248}
	SpendLimitsOrderDiscriminator      = [8]byte{15, 200, 135, 116, 88, 211, 171, 159}
	SpendHoldDiscriminator             = [8]byte{201, 164, 239, 163, 12, 181, 158, 235}
)

const (
	VaultSize                 = 8 + 32 + 1 + 8*5
	CollateralRepayLedgerSize = 8 + 8*2
	TimeLockSize              = 32 + 1 + 8
	WithdrawOrderSize         = 8 + TimeLockSize + 8 + 2 + 1 + 32
	SpendLimitsOrderSize      = 8 + TimeLockSize + 8*4
	SpendHoldSize             = 8 + TimeLockSize + 8 + 1
)

type Vault struct {
	Owner                           solana.PublicKey
	Bump                            uint8
	SpendLimitPerTransaction        uint64
	SpendLimitPerTimeframe          uint64
	RemainingSpendLimitPerTimeframe uint64
	NextTimeframeResetTimestamp     uint64
	TimeframeInSeconds              uint64
}

func (obj Vault) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	if err = encoder.WriteBytes(VaultDiscriminator[:], false); err != nil {
		return err
	}
	if err = writePublicKey(encoder, obj.Owner); err != nil {
		return err
	}
	if err = encoder.WriteUint8(obj.Bump); err != nil {
		return err
	}
	return writeUint64s(encoder,
		obj.SpendLimitPerTransaction,
		obj.SpendLimitPerTimeframe,
		obj.RemainingSpendLimitPerTimeframe,
		obj.NextTimeframeResetTimestamp,
		obj.TimeframeInSeconds,
	)
}

func (obj *Vault) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if err = checkDiscriminator(decoder, "Vault", VaultDiscriminator); err != nil {
		return err
	}
	if obj.Owner, err = readPublicKey(decoder); err != nil {
		return err
	}
	if obj.Bump, err = decoder.ReadUint8(); err != nil {
		return err
	}
	return readUint64s(decoder,
		&obj.SpendLimitPerTransaction,
		&obj.SpendLimitPerTimeframe,
		&obj.RemainingSpendLimitPerTimeframe,
		&obj.NextTimeframeResetTimestamp,
		&obj.TimeframeInSeconds,
	)
}

type CollateralRepayLedger struct {
	Deposit  uint64
	Withdraw uint64
}

func (obj CollateralRepayLedger) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	if err = encoder.WriteBytes(CollateralRepayLedgerDiscriminator[:], false); err != nil {
		return err
	}
	return writeUint64s(encoder, obj.Deposit, obj.Withdraw)
}

func (obj *CollateralRepayLedger) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if err = checkDiscriminator(decoder, "CollateralRepayLedger", CollateralRepayLedgerDiscriminator); err != nil {
		return err
	}
	return readUint64s(decoder, &obj.Deposit, &obj.Withdraw)
}

// TimeLock is embedded at the start of every time-locked order. Rent for the
// order account is paid by the owner or by the time lock rent payer PDA.
type TimeLock struct {
	Owner        solana.PublicKey
	IsOwnerPayer bool
	ReleaseSlot  uint64
}

// IsReleased reports whether the order can be fulfilled at slot.
func (t TimeLock) IsReleased(slot uint64) bool {
	return slot >= t.ReleaseSlot
}

func (obj TimeLock) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	if err = writePublicKey(encoder, obj.Owner); err != nil {
		return err
	}
	if err = encoder.WriteBool(obj.IsOwnerPayer); err != nil {
		return err
	}
	return encoder.WriteUint64(obj.ReleaseSlot, bin.LE)
}

func (obj *TimeLock) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if obj.Owner, err = readPublicKey(decoder); err != nil {
		return err
	}
	if obj.IsOwnerPayer, err = decoder.ReadBool(); err != nil {
		return err
	}
	obj.ReleaseSlot, err = decoder.ReadUint64(bin.LE)
	return err
}

type WithdrawOrder struct {
	TimeLock         TimeLock
	AmountBaseUnits  uint64
	DriftMarketIndex uint16
	ReduceOnly       bool
	Destination      solana.PublicKey
}

func (obj WithdrawOrder) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	if err = encoder.WriteBytes(WithdrawOrderDiscriminator[:], false); err != nil {
		return err
	}
	if err = obj.TimeLock.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	if err = encoder.WriteUint64(obj.AmountBaseUnits, bin.LE); err != nil {
		return err
	}
	if err = encoder.WriteUint16(obj.DriftMarketIndex, bin.LE); err != nil {
		return err
	}
	if err = encoder.WriteBool(obj.ReduceOnly); err != nil {
		return err
	}
	return writePublicKey(encoder, obj.Destination)
}

func (obj *WithdrawOrder) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if err = checkDiscriminator(decoder, "WithdrawOrder", WithdrawOrderDiscriminator); err != nil {
		return err
	}
	if err = obj.TimeLock.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	if obj.AmountBaseUnits, err = decoder.ReadUint64(bin.LE); err != nil {
		return err
	}
	if obj.DriftMarketIndex, err = decoder.ReadUint16(bin.LE); err != nil {
		return err
	}
	if obj.ReduceOnly, err = decoder.ReadBool(); err != nil {
		return err
	}
	obj.Destination, err = readPublicKey(decoder)
	return err
}

type SpendLimitsOrder struct {
	TimeLock                    TimeLock
	SpendLimitPerTransaction    uint64
	SpendLimitPerTimeframe      uint64
	TimeframeInSeconds          uint64
	NextTimeframeResetTimestamp uint64
}

func (obj SpendLimitsOrder) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	if err = encoder.WriteBytes(SpendLimitsOrderDiscriminator[:], false); err != nil {
		return err
	}
	if err = obj.TimeLock.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	return writeUint64s(encoder,
		obj.SpendLimitPerTransaction,
		obj.SpendLimitPerTimeframe,
		obj.TimeframeInSeconds,
		obj.NextTimeframeResetTimestamp,
	)
}

func (obj *SpendLimitsOrder) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if err = checkDiscriminator(decoder, "SpendLimitsOrder", SpendLimitsOrderDiscriminator); err != nil {
		return err
	}
	if err = obj.TimeLock.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	return readUint64s(decoder,
		&obj.SpendLimitPerTransaction,
		&obj.SpendLimitPerTimeframe,
		&obj.TimeframeInSeconds,
		&obj.NextTimeframeResetTimestamp,
	)
}

type SpendHold struct {
	TimeLock            TimeLock
	AmountUsdcBaseUnits uint64
	SpendFee            bool
}

func (obj SpendHold) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	if err = encoder.WriteBytes(SpendHoldDiscriminator[:], false); err != nil {
		return err
	}
	if err = obj.TimeLock.MarshalWithEncoder(encoder); err != nil {
		return err
	}
	if err = encoder.WriteUint64(obj.AmountUsdcBaseUnits, bin.LE); err != nil {
		return err
	}
	return encoder.WriteBool(obj.SpendFee)
}

func (obj *SpendHold) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	if err = checkDiscriminator(decoder, "SpendHold", SpendHoldDiscriminator); err != nil {
		return err
	}
	if err = obj.TimeLock.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	if obj.AmountUsdcBaseUnits, err = decoder.ReadUint64(bin.LE); err != nil {
		return err
	}
	obj.SpendFee, err = decoder.ReadBool()
	return err
}

// DecodeAccount decodes raw account data into one of the Quartz account
// types. Data owned by another program or of another type fails with a
// ProtocolMismatch error.
func DecodeAccount[T any, PT interface {
	*T
	bin.BinaryUnmarshaler
}](data []byte) (*T, error) {
	out := new(T)
	if err := PT(out).UnmarshalWithDecoder(bin.NewBorshDecoder(data)); err != nil {
		if errs.KindOf(err) == errs.KindProtocolMismatch {
			return nil, err
		}
		return nil, errs.ProtocolMismatch("quartz.DecodeAccount", "unable to decode %T: %v", out, err)
	}
	return out, nil
}

func DecodeVault(data []byte) (*Vault, error) {
	return DecodeAccount[Vault](data)
}

func DecodeWithdrawOrder(data []byte) (*WithdrawOrder, error) {
	return DecodeAccount[WithdrawOrder](data)
}

func DecodeSpendLimitsOrder(data []byte) (*SpendLimitsOrder, error) {
	return DecodeAccount[SpendLimitsOrder](data)
}

func DecodeSpendHold(data []byte) (*SpendHold, error) {
	return DecodeAccount[SpendHold](data)
}

func DecodeCollateralRepayLedger(data []byte) (*CollateralRepayLedger, error) {
	return DecodeAccount[CollateralRepayLedger](data)
}

func checkDiscriminator(decoder *bin.Decoder, name string, expected [8]byte) error {
	discriminator, err := decoder.ReadTypeID()
	if err != nil {
		return errs.ProtocolMismatch("quartz.checkDiscriminator", "%s: unable to read discriminator: %v", name, err)
	}
	if !discriminator.Equal(expected[:]) {
		return errs.ProtocolMismatch(
			"quartz.checkDiscriminator",
			"wrong discriminator for %s: wanted %s, got %s",
			name, fmt.Sprint(expected[:]), fmt.Sprint(discriminator[:]),
		)
	}
	return nil
}

func writePublicKey(encoder *bin.Encoder, key solana.PublicKey) error {
	return encoder.WriteBytes(key[:], false)
}

func readPublicKey(decoder *bin.Decoder) (solana.PublicKey, error) {
	raw, err := decoder.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBytes(raw), nil
}

func writeUint64s(encoder *bin.Encoder, values ...uint64) error {
	for _, v := range values {
		if err := encoder.WriteUint64(v, bin.LE); err != nil {
			return err
		}
	}
	return nil
}

func readUint64s(decoder *bin.Decoder, targets ...*uint64) error {
	for _, target := range targets {
		v, err := decoder.ReadUint64(bin.LE)
		if err != nil {
			return err
		}
		*target = v
	}
	return nil
}

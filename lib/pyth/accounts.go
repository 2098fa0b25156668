// Package pyth decodes Pyth pull-oracle price update accounts.
package pyth

import (
	"math/big"

	"quartzgo/errs"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

var PriceUpdateV2Discriminator = [8]byte{34, 241, 35, 99, 157, 126, 244, 205}

// VerificationLevel is how many guardian signatures backed the update.
type VerificationLevel struct {
	Full          bool
	NumSignatures uint8 // only meaningful for partial verification
}

// PriceMessage is the price feed message posted by the receiver program.
type PriceMessage struct {
	FeedId          [32]byte
	Price           int64
	Conf            uint64
	Exponent        int32
	PublishTime     int64
	PrevPublishTime int64
	EmaPrice        int64
	EmaConf         uint64
}

type PriceUpdateV2 struct {
	WriteAuthority    solana.PublicKey
	VerificationLevel VerificationLevel
	PriceMessage      PriceMessage
	PostedSlot        uint64
}

func (obj *PriceUpdateV2) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	discriminator, err := decoder.ReadTypeID()
	if err != nil {
		return err
	}
	if !discriminator.Equal(PriceUpdateV2Discriminator[:]) {
		return errs.ProtocolMismatch("pyth.PriceUpdateV2", "wrong discriminator %v", discriminator[:])
	}
	raw, err := decoder.ReadNBytes(32)
	if err != nil {
		return err
	}
	obj.WriteAuthority = solana.PublicKeyFromBytes(raw)

	level, err := decoder.ReadUint8()
	if err != nil {
		return err
	}
	switch level {
	case 0:
		obj.VerificationLevel.NumSignatures, err = decoder.ReadUint8()
		if err != nil {
			return err
		}
	case 1:
		obj.VerificationLevel.Full = true
	default:
		return errs.ProtocolMismatch("pyth.PriceUpdateV2", "unknown verification level %d", level)
	}

	raw, err = decoder.ReadNBytes(32)
	if err != nil {
		return err
	}
	copy(obj.PriceMessage.FeedId[:], raw)
	message := &obj.PriceMessage
	if message.Price, err = decoder.ReadInt64(bin.LE); err != nil {
		return err
	}
	if message.Conf, err = decoder.ReadUint64(bin.LE); err != nil {
		return err
	}
	if message.Exponent, err = decoder.ReadInt32(bin.LE); err != nil {
		return err
	}
	if message.PublishTime, err = decoder.ReadInt64(bin.LE); err != nil {
		return err
	}
	if message.PrevPublishTime, err = decoder.ReadInt64(bin.LE); err != nil {
		return err
	}
	if message.EmaPrice, err = decoder.ReadInt64(bin.LE); err != nil {
		return err
	}
	if message.EmaConf, err = decoder.ReadUint64(bin.LE); err != nil {
		return err
	}
	obj.PostedSlot, err = decoder.ReadUint64(bin.LE)
	return err
}

func (obj PriceUpdateV2) MarshalWithEncoder(encoder *bin.Encoder) (err error) {
	if err = encoder.WriteBytes(PriceUpdateV2Discriminator[:], false); err != nil {
		return err
	}
	if err = encoder.WriteBytes(obj.WriteAuthority[:], false); err != nil {
		return err
	}
	if obj.VerificationLevel.Full {
		err = encoder.WriteUint8(1)
	} else {
		if err = encoder.WriteUint8(0); err == nil {
			err = encoder.WriteUint8(obj.VerificationLevel.NumSignatures)
		}
	}
	if err != nil {
		return err
	}
	message := obj.PriceMessage
	if err = encoder.WriteBytes(message.FeedId[:], false); err != nil {
		return err
	}
	if err = encoder.WriteInt64(message.Price, bin.LE); err != nil {
		return err
	}
	if err = encoder.WriteUint64(message.Conf, bin.LE); err != nil {
		return err
	}
	if err = encoder.WriteInt32(message.Exponent, bin.LE); err != nil {
		return err
	}
	for _, v := range []int64{message.PublishTime, message.PrevPublishTime, message.EmaPrice} {
		if err = encoder.WriteInt64(v, bin.LE); err != nil {
			return err
		}
	}
	if err = encoder.WriteUint64(message.EmaConf, bin.LE); err != nil {
		return err
	}
	return encoder.WriteUint64(obj.PostedSlot, bin.LE)
}

func DecodePriceUpdateV2(data []byte) (*PriceUpdateV2, error) {
	update := new(PriceUpdateV2)
	if err := update.UnmarshalWithDecoder(bin.NewBorshDecoder(data)); err != nil {
		if errs.KindOf(err) != errs.KindUnknown {
			return nil, err
		}
		return nil, errs.ProtocolMismatch("pyth.DecodePriceUpdateV2", "unable to decode price update: %v", err)
	}
	return update, nil
}

func (p *PriceMessage) GetPrice() decimal.Decimal {
	return decimal.New(p.Price, p.Exponent)
}

func (p *PriceMessage) GetConfidence() decimal.Decimal {
	return decimal.New(int64(p.Conf), p.Exponent)
}

// PricePrecision is the price scaled to 10^precisionExp, truncated.
func (p *PriceMessage) PricePrecision(precisionExp int32) *big.Int {
	return p.GetPrice().Shift(precisionExp).BigInt()
}

package pyth

import (
	"bytes"
	"testing"

	"quartzgo/errs"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, update PriceUpdateV2) []byte {
	buf := new(bytes.Buffer)
	require.NoError(t, update.MarshalWithEncoder(bin.NewBorshEncoder(buf)))
	return buf.Bytes()
}

func TestDecodePriceUpdateV2(t *testing.T) {
	update := PriceUpdateV2{
		WriteAuthority:    solana.NewWallet().PublicKey(),
		VerificationLevel: VerificationLevel{Full: true},
		PriceMessage: PriceMessage{
			Price:       14_523_456_789,
			Conf:        1_234_567,
			Exponent:    -8,
			PublishTime: 1_730_000_000,
			EmaPrice:    14_500_000_000,
		},
		PostedSlot: 301_000_000,
	}
	update.PriceMessage.FeedId[0] = 0xef

	full := encode(t, update)
	decoded, err := DecodePriceUpdateV2(full)
	require.NoError(t, err)
	assert.Equal(t, update, *decoded)
	assert.Equal(t, "145.23456789", decoded.PriceMessage.GetPrice().String())
	assert.Equal(t, int64(145_234_567), decoded.PriceMessage.PricePrecision(6).Int64())

	update.VerificationLevel = VerificationLevel{NumSignatures: 5}
	partial := encode(t, update)
	assert.Len(t, partial, len(full)+1)
	decoded, err = DecodePriceUpdateV2(partial)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), decoded.VerificationLevel.NumSignatures)
	assert.Equal(t, uint64(301_000_000), decoded.PostedSlot)
}

func TestDecodePriceUpdateV2Rejects(t *testing.T) {
	_, err := DecodePriceUpdateV2(make([]byte, 134))
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))

	data := encode(t, PriceUpdateV2{VerificationLevel: VerificationLevel{Full: true}})
	_, err = DecodePriceUpdateV2(data[:50])
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))

	data[40] = 7
	_, err = DecodePriceUpdateV2(data)
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))
}

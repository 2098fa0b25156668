package addresses

import (
	"encoding/hex"
	"strings"

	"github.com/gagliardetto/solana-go"

	"quartzgo/errs"
)

const PythFeedIdLength = 32

// ParsePythFeedId decodes a hex feed id with an optional 0x prefix.
func ParsePythFeedId(feedId string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(feedId, "0x"), "0X")
	decoded, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, errs.InvalidInput("ParsePythFeedId", "feed id %q is not hex: %v", feedId, err)
	}
	if len(decoded) != PythFeedIdLength {
		return nil, errs.InvalidInput("ParsePythFeedId", "Feed ID should be %d bytes long, got %d", PythFeedIdLength, len(decoded))
	}
	return decoded, nil
}

// GetPythPriceUpdatePublicKey derives the push-oracle price account for a
// feed on a shard. The feed id is validated before any derivation.
func GetPythPriceUpdatePublicKey(
	programId solana.PublicKey,
	shardId uint16,
	feedId string,
) (solana.PublicKey, error) {
	feed, err := ParsePythFeedId(feedId)
	if err != nil {
		return solana.PublicKey{}, err
	}
	address, _ := findProgramAddress([][]byte{u16LE(shardId), feed}, programId)
	return address, nil
}

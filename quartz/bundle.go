package quartz

import (
	"slices"

	"quartzgo/errs"
	quartzlib "quartzgo/lib/quartz"

	"github.com/gagliardetto/solana-go"
)

// Bundle is everything a caller needs to assemble one transaction: the
// instructions in submission order, the address lookup tables to compile
// against, and the extra keys that must sign besides the fee payer.
type Bundle struct {
	Instructions []solana.Instruction
	LookupTables []solana.PublicKey
	Signers      []solana.PrivateKey
}

// SignerKeys lists the public keys of the extra signers.
func (b *Bundle) SignerKeys() []solana.PublicKey {
	keys := make([]solana.PublicKey, len(b.Signers))
	for i, signer := range b.Signers {
		keys[i] = signer.PublicKey()
	}
	return keys
}

// SpendLimits are the card spend limits carried by a vault.
type SpendLimits struct {
	PerTransaction              uint64
	PerTimeframe                uint64
	TimeframeInSeconds          uint64
	NextTimeframeResetTimestamp uint64
}

func (l SpendLimits) validate(op string) error {
	if l.PerTransaction > l.PerTimeframe {
		return errs.InvalidParameter(op, "spend limit per transaction %d exceeds limit per timeframe %d", l.PerTransaction, l.PerTimeframe)
	}
	if l.PerTimeframe > 0 && l.TimeframeInSeconds == 0 {
		return errs.InvalidParameter(op, "timeframe must be positive when a timeframe limit is set")
	}
	return nil
}

// buildable is satisfied by every generated Quartz instruction builder.
type buildable interface {
	ValidateAndBuild() (*quartzlib.Instruction, error)
}

// build validates builder and emits the instruction against the client's
// program id.
func (p *Client) build(op string, builder buildable) (solana.Instruction, error) {
	return p.buildWithRemainingAccounts(op, builder, nil)
}

// buildWithRemainingAccounts appends Drift remaining accounts after the
// instruction's declared accounts.
func (p *Client) buildWithRemainingAccounts(op string, builder buildable, remaining solana.AccountMetaSlice) (solana.Instruction, error) {
	ix, err := builder.ValidateAndBuild()
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidInput, op, err)
	}
	data, err := ix.Data()
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidInput, op, err)
	}
	return solana.NewInstruction(p.programId, slices.Concat(ix.Accounts(), remaining), data), nil
}

// MarkSigner flips the signer flag on every meta for key in instructions that
// were already built. Metas are shared with the instructions, so the change
// is visible in their encoding.
func MarkSigner(instructions []solana.Instruction, key solana.PublicKey) int {
	marked := 0
	for _, ix := range instructions {
		for _, meta := range ix.Accounts() {
			if meta != nil && meta.PublicKey.Equals(key) {
				meta.IsSigner = true
				marked++
			}
		}
	}
	return marked
}

func newOrderKey(op string) (solana.PrivateKey, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, errs.Wrap(errs.KindTransient, op, err)
	}
	return key, nil
}

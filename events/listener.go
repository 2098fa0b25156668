package events

import (
	"context"
	"slices"
	"strings"

	"quartzgo/accounts"
	"quartzgo/errs"
	quartzlib "quartzgo/lib/quartz"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
)

// InstructionListener watches the Quartz program's logs and hands every
// confirmed instruction of a given name to a callback.
type InstructionListener struct {
	source    LogSource
	fetcher   accounts.Fetcher
	programId solana.PublicKey
	config    ListenerConfig
	logger    zerolog.Logger
}

func NewInstructionListener(
	source LogSource,
	fetcher accounts.Fetcher,
	programId solana.PublicKey,
	config ListenerConfig,
	logger zerolog.Logger,
) *InstructionListener {
	if config.Commitment == "" {
		config.Commitment = DefaultListenerConfig.Commitment
	}
	return &InstructionListener{
		source:    source,
		fetcher:   fetcher,
		programId: programId,
		config:    config,
		logger:    logger.With().Str("component", "instructionListener").Logger(),
	}
}

// Listen blocks until ctx is done or the stream cannot be re-established.
// Names compare case-insensitively. onMatch runs on the listener goroutine.
func (p *InstructionListener) Listen(ctx context.Context, name string, onMatch Handler) error {
	const op = "events.Listen"
	if name == "" {
		return errs.InvalidParameter(op, "instruction name is required")
	}
	if onMatch == nil {
		return errs.InvalidParameter(op, "callback is required")
	}
	logger := p.logger.With().Str("instruction", name).Logger()

	// streams that end before delivering anything count against Resubscribe
	var drops uint
	for {
		var stream LogStream
		err := p.config.Resubscribe.Do(ctx, op, func(ctx context.Context) error {
			var err error
			stream, err = p.source.Subscribe(ctx, p.programId, p.config.Commitment)
			return err
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			return err
		}
		logger.Info().Str("program", p.programId.String()).Msg("subscribed to program logs")

		delivered, err := p.consume(ctx, stream, name, onMatch, logger)
		stream.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if delivered {
			drops = 0
			logger.Warn().Err(err).Msg("log stream ended, resubscribing")
			continue
		}
		drops++
		logger.Warn().Err(err).Uint("drops", drops).Msg("log stream ended without data")
		if !p.config.Resubscribe.Wait(ctx, drops) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errs.Wrap(errs.KindTransient, op, err)
		}
	}
}

func (p *InstructionListener) consume(ctx context.Context, stream LogStream, name string, onMatch Handler, logger zerolog.Logger) (bool, error) {
	delivered := false
	for {
		recvCtx, cancel := ctx, context.CancelFunc(func() {})
		if p.config.ResubTimeout != nil && *p.config.ResubTimeout > 0 {
			recvCtx, cancel = context.WithTimeout(ctx, *p.config.ResubTimeout)
		}
		notification, err := stream.Recv(recvCtx)
		cancel()
		if err != nil {
			return delivered, err
		}
		delivered = true
		if notification.Failed {
			continue
		}
		if !slices.ContainsFunc(ParseInstructionNames(notification.Logs, p.programId), func(logged string) bool {
			return strings.EqualFold(logged, name)
		}) {
			continue
		}

		events, err := p.fetchInstructions(ctx, notification, name)
		if err != nil {
			if ctx.Err() != nil {
				return delivered, ctx.Err()
			}
			logger.Warn().Err(err).Str("signature", notification.Signature.String()).Msg("skipping transaction")
			continue
		}
		for _, event := range events {
			onMatch(event)
		}
	}
}

func (p *InstructionListener) fetchInstructions(ctx context.Context, notification *LogNotification, name string) ([]*InstructionEvent, error) {
	const op = "events.fetchInstructions"
	result, err := p.fetcher.FetchTransaction(ctx, notification.Signature)
	if err != nil {
		return nil, err
	}
	if result.Transaction == nil {
		return nil, errs.ProtocolMismatch(op, "transaction %s has no body", notification.Signature)
	}
	tx, err := result.Transaction.GetTransaction()
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidInput, op, err)
	}
	accountKeys := slices.Clone(tx.Message.AccountKeys)
	if result.Meta != nil {
		accountKeys = append(accountKeys, result.Meta.LoadedAddresses.Writable...)
		accountKeys = append(accountKeys, result.Meta.LoadedAddresses.ReadOnly...)
	}

	events, err := DecodeInstructions(tx.Message.Instructions, accountKeys, p.programId, name)
	if err != nil {
		return nil, err
	}
	slot := utils.TT(result.Slot == 0, notification.Slot, result.Slot)
	for _, event := range events {
		event.Signature = notification.Signature
		event.Slot = slot
	}
	return events, nil
}

// DecodeInstructions decodes the top-level instructions addressed to
// programId and keeps those named name. It is a ProtocolMismatch when none
// qualify, since the caller only asks after the logs reported one.
func DecodeInstructions(
	instructions []solana.CompiledInstruction,
	accountKeys []solana.PublicKey,
	programId solana.PublicKey,
	name string,
) ([]*InstructionEvent, error) {
	const op = "events.DecodeInstructions"
	var events []*InstructionEvent
	for _, compiled := range instructions {
		if int(compiled.ProgramIDIndex) >= len(accountKeys) {
			return nil, errs.InvalidInput(op, "program index %d out of range", compiled.ProgramIDIndex)
		}
		if !accountKeys[compiled.ProgramIDIndex].Equals(programId) {
			continue
		}
		keys := make([]solana.PublicKey, len(compiled.Accounts))
		metas := make([]*solana.AccountMeta, len(compiled.Accounts))
		for i, index := range compiled.Accounts {
			if int(index) >= len(accountKeys) {
				return nil, errs.InvalidInput(op, "account index %d out of range", index)
			}
			keys[i] = accountKeys[index]
			metas[i] = solana.Meta(keys[i])
		}
		decoded, err := quartzlib.DecodeInstruction(metas, compiled.Data)
		if err != nil || !strings.EqualFold(decoded.Name(), name) {
			continue
		}
		events = append(events, &InstructionEvent{Instruction: decoded, Accounts: keys})
	}
	if len(events) == 0 {
		return nil, errs.ProtocolMismatch(op, "no decodable %s instruction", name)
	}
	return events, nil
}

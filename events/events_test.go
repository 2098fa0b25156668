package events

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"quartzgo/accounts"
	"quartzgo/constants"
	"quartzgo/errs"
	quartzlib "quartzgo/lib/quartz"
	"quartzgo/retry"

	"github.com/davecgh/go-spew/spew"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	notifications chan *LogNotification
}

func (p *fakeStream) Recv(ctx context.Context) (*LogNotification, error) {
	select {
	case notification, ok := <-p.notifications:
		if !ok {
			return nil, errs.Transient("fakeStream.Recv", "stream closed")
		}
		return notification, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *fakeStream) Close() {}

type fakeSource struct {
	streams       []*fakeStream
	subscriptions int
}

func (p *fakeSource) Subscribe(ctx context.Context, mentions solana.PublicKey, commitment rpc.CommitmentType) (LogStream, error) {
	if p.subscriptions >= len(p.streams) {
		return nil, errs.Transient("fakeSource.Subscribe", "no more streams")
	}
	p.subscriptions++
	return p.streams[p.subscriptions-1], nil
}

func quartzLogs(names ...string) []string {
	program := constants.QUARTZ_PROGRAM_ID.String()
	var logs []string
	for _, name := range names {
		logs = append(logs,
			fmt.Sprintf("Program %s invoke [1]", program),
			"Program log: Instruction: "+name,
			fmt.Sprintf("Program %s success", program),
		)
	}
	return logs
}

func initiateWithdrawTx(t *testing.T, owner solana.PublicKey) *solana.Transaction {
	ix := quartzlib.NewInitiateWithdrawInstruction(
		1_000, 0, false,
		solana.NewWallet().PublicKey(),
		owner,
		solana.NewWallet().PublicKey(),
		owner,
		solana.SystemProgramID,
		owner,
	).Build()
	transfer := system.NewTransferInstruction(1, owner, owner).Build()
	tx, err := solana.NewTransaction([]solana.Instruction{transfer, ix}, solana.Hash{}, solana.TransactionPayer(owner))
	require.NoError(t, err)
	return tx
}

func transactionResult(t *testing.T, tx *solana.Transaction) *rpc.GetTransactionResult {
	raw, err := tx.MarshalBinary()
	require.NoError(t, err)
	var envelope rpc.TransactionResultEnvelope
	encoded := fmt.Sprintf(`[%q,"base64"]`, base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, json.Unmarshal([]byte(encoded), &envelope))
	return &rpc.GetTransactionResult{Slot: 77, Transaction: &envelope, Meta: &rpc.TransactionMeta{}}
}

// go test --run TestParseInstructionNames

func TestParseInstructionNames(t *testing.T) {
	quartz := constants.QUARTZ_PROGRAM_ID.String()
	drift := constants.DRIFT_PROGRAM_ID.String()
	logs := []string{
		"Program ComputeBudget111111111111111111111111111111 invoke [1]",
		"Program ComputeBudget111111111111111111111111111111 success",
		fmt.Sprintf("Program %s invoke [1]", quartz),
		"Program log: Instruction: FulfilWithdraw",
		fmt.Sprintf("Program %s invoke [2]", drift),
		"Program log: Instruction: Withdraw",
		fmt.Sprintf("Program %s consumed 52000 of 180000 compute units", drift),
		fmt.Sprintf("Program %s success", drift),
		fmt.Sprintf("Program %s success", quartz),
		fmt.Sprintf("Program %s invoke [1]", quartz),
		"Program log: Instruction: Deposit",
		fmt.Sprintf("Program %s failed: custom program error: 0x1771", quartz),
		"Program log: Instruction: Stray",
	}
	names := ParseInstructionNames(logs, constants.QUARTZ_PROGRAM_ID)
	spew.Dump("TestParseInstructionNames Result", names)
	assert.Equal(t, []string{"FulfilWithdraw", "Deposit"}, names)

	truncated := append(quartzLogs("Deposit")[:1], "Log truncated", "Program log: Instruction: Deposit")
	assert.Empty(t, ParseInstructionNames(truncated, constants.QUARTZ_PROGRAM_ID))
}

func TestDecodeInstructions(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	tx := initiateWithdrawTx(t, owner)

	events, err := DecodeInstructions(tx.Message.Instructions, tx.Message.AccountKeys, constants.QUARTZ_PROGRAM_ID, "initiatewithdraw")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "InitiateWithdraw", events[0].Instruction.Name())
	require.Len(t, events[0].Accounts, 6)
	assert.Equal(t, owner, events[0].Accounts[1])
	initiate := events[0].Instruction.Impl.(*quartzlib.InitiateWithdraw)
	assert.Equal(t, uint64(1_000), *initiate.AmountBaseUnits)

	_, err = DecodeInstructions(tx.Message.Instructions, tx.Message.AccountKeys, constants.QUARTZ_PROGRAM_ID, "Deposit")
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))
}

// go test --run TestInstructionListener

func TestInstructionListener(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	tx := initiateWithdrawTx(t, owner)
	signature := solana.Signature{7}
	unknown := solana.Signature{8}

	fetcher := accounts.NewMemoryFetcher()
	fetcher.SetTransaction(signature, transactionResult(t, tx))

	first := &fakeStream{notifications: make(chan *LogNotification, 4)}
	second := &fakeStream{notifications: make(chan *LogNotification, 4)}
	first.notifications <- &LogNotification{Signature: signature, Failed: true, Logs: quartzLogs("InitiateWithdraw")}
	first.notifications <- &LogNotification{Signature: signature, Logs: quartzLogs("Deposit")}
	first.notifications <- &LogNotification{Signature: unknown, Logs: quartzLogs("InitiateWithdraw")}
	close(first.notifications)
	second.notifications <- &LogNotification{Signature: signature, Slot: 70, Logs: quartzLogs("InitiateWithdraw")}

	source := &fakeSource{streams: []*fakeStream{first, second}}
	config := DefaultListenerConfig
	config.Resubscribe = retry.Policy{MaxAttempts: 1}
	listener := NewInstructionListener(source, fetcher, constants.QUARTZ_PROGRAM_ID, config, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var matched []*InstructionEvent
	err := listener.Listen(ctx, "InitiateWithdraw", func(event *InstructionEvent) {
		matched = append(matched, event)
		cancel()
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, source.subscriptions)
	require.Len(t, matched, 1)
	assert.Equal(t, signature, matched[0].Signature)
	assert.Equal(t, uint64(77), matched[0].Slot)
	assert.Equal(t, "InitiateWithdraw", matched[0].Instruction.Name())
	assert.Equal(t, 2, fetcher.Calls("FetchTransaction"))
}

func TestListenValidation(t *testing.T) {
	listener := NewInstructionListener(&fakeSource{}, accounts.NewMemoryFetcher(), constants.QUARTZ_PROGRAM_ID, DefaultListenerConfig, zerolog.Nop())
	err := listener.Listen(context.Background(), "", func(*InstructionEvent) {})
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	listener.config.Resubscribe = retry.Policy{MaxAttempts: 1}
	err = listener.Listen(context.Background(), "Deposit", func(*InstructionEvent) {})
	assert.Equal(t, errs.KindTransient, errs.KindOf(err))
}

// go test --run TestListenStopsOnDeadStreams

func TestListenStopsOnDeadStreams(t *testing.T) {
	var streams []*fakeStream
	for i := 0; i < 5; i++ {
		stream := &fakeStream{notifications: make(chan *LogNotification)}
		close(stream.notifications)
		streams = append(streams, stream)
	}
	source := &fakeSource{streams: streams}
	config := DefaultListenerConfig
	config.Resubscribe = retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
	listener := NewInstructionListener(source, accounts.NewMemoryFetcher(), constants.QUARTZ_PROGRAM_ID, config, zerolog.Nop())

	start := time.Now()
	err := listener.Listen(context.Background(), "Deposit", func(*InstructionEvent) {})
	assert.Equal(t, errs.KindTransient, errs.KindOf(err))
	assert.Equal(t, 3, source.subscriptions)
	// waits of 1ms and 2ms between the three streams
	assert.GreaterOrEqual(t, time.Since(start), 3*time.Millisecond)
}

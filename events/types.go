package events

import (
	"context"
	"time"

	quartzlib "quartzgo/lib/quartz"
	"quartzgo/retry"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type ListenerConfig struct {
	Commitment rpc.CommitmentType
	// Resubscribe paces reconnects after the log stream drops.
	Resubscribe retry.Policy
	// ResubTimeout restarts a stream that has been silent this long. Zero
	// disables the watchdog.
	ResubTimeout *time.Duration
}

var DefaultListenerConfig = ListenerConfig{
	Commitment: rpc.CommitmentConfirmed,
	Resubscribe: retry.Policy{
		MaxAttempts: 10,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
	},
	ResubTimeout: utils.NewPtr(5 * time.Minute),
}

// LogNotification is one transaction's logs as pushed by logsSubscribe.
type LogNotification struct {
	Signature solana.Signature
	Slot      uint64
	Failed    bool
	Logs      []string
}

type LogStream interface {
	Recv(ctx context.Context) (*LogNotification, error)
	Close()
}

// LogSource opens a stream of logs for transactions mentioning an address.
type LogSource interface {
	Subscribe(ctx context.Context, mentions solana.PublicKey, commitment rpc.CommitmentType) (LogStream, error)
}

// InstructionEvent is one decoded Quartz instruction from a confirmed
// transaction. Accounts are resolved against the transaction's static and
// loaded keys, in instruction order.
type InstructionEvent struct {
	Signature   solana.Signature
	Slot        uint64
	Instruction *quartzlib.Instruction
	Accounts    []solana.PublicKey
}

type Handler func(event *InstructionEvent)

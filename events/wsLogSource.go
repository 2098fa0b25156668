package events

import (
	"context"

	"quartzgo/errs"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
)

// WsLogSource is a LogSource over a websocket logsSubscribe.
type WsLogSource struct {
	client *ws.Client
}

func NewWsLogSource(client *ws.Client) *WsLogSource {
	return &WsLogSource{client: client}
}

func (p *WsLogSource) Subscribe(ctx context.Context, mentions solana.PublicKey, commitment rpc.CommitmentType) (LogStream, error) {
	subscription, err := p.client.LogsSubscribeMentions(mentions, commitment)
	if err != nil {
		return nil, errs.Wrap(errs.KindTransient, "events.Subscribe", err)
	}
	return &wsLogStream{subscription: subscription}, nil
}

type wsLogStream struct {
	subscription *ws.LogSubscription
}

func (p *wsLogStream) Recv(ctx context.Context) (*LogNotification, error) {
	result, err := p.subscription.Recv(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.KindTransient, "events.Recv", err)
	}
	return &LogNotification{
		Signature: result.Value.Signature,
		Slot:      result.Context.Slot,
		Failed:    result.Value.Err != nil,
		Logs:      result.Value.Logs,
	}, nil
}

func (p *wsLogStream) Close() {
	p.subscription.Unsubscribe()
}

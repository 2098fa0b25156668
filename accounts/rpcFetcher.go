package accounts

import (
	"context"
	"errors"

	"quartzgo/errs"
	solanalib "quartzgo/lib/solana"
	"quartzgo/retry"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type RpcFetcherConfig struct {
	Commitment rpc.CommitmentType
	Retry      retry.Policy
	// RequestsPerSecond of zero disables rate limiting.
	RequestsPerSecond float64
	Burst             int
}

var DefaultRpcFetcherConfig = RpcFetcherConfig{
	Commitment:        rpc.CommitmentConfirmed,
	Retry:             retry.DefaultPolicy,
	RequestsPerSecond: 10,
	Burst:             10,
}

// RpcFetcher implements Fetcher over a JSON-RPC node with rate limiting and
// retries.
type RpcFetcher struct {
	client  *rpc.Client
	config  RpcFetcherConfig
	limiter *rate.Limiter
	logger  zerolog.Logger
}

func NewRpcFetcher(client *rpc.Client, config RpcFetcherConfig, logger zerolog.Logger) *RpcFetcher {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), max(config.Burst, 1))
	}
	if config.Commitment == "" {
		config.Commitment = rpc.CommitmentConfirmed
	}
	return &RpcFetcher{
		client:  client,
		config:  config,
		limiter: limiter,
		logger:  logger.With().Str("component", "rpcFetcher").Logger(),
	}
}

// call runs one rate-limited RPC under the retry policy. NotFound ends the
// retries immediately.
func (p *RpcFetcher) call(ctx context.Context, op string, action func(ctx context.Context) error) error {
	attempt := 0
	return p.config.Retry.Do(ctx, op, func(ctx context.Context) error {
		attempt++
		if err := p.limiter.Wait(ctx); err != nil {
			return errs.Wrap(errs.KindTransient, op, err)
		}
		err := action(ctx)
		if err != nil && errs.KindOf(err) == errs.KindUnknown {
			p.logger.Debug().Err(err).Str("op", op).Int("attempt", attempt).Msg("rpc call failed")
		}
		return err
	})
}

func (p *RpcFetcher) FetchAccount(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	const op = "accounts.FetchAccount"
	var data []byte
	err := p.call(ctx, op, func(ctx context.Context) error {
		out, err := p.client.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: p.config.Commitment,
		})
		if errors.Is(err, rpc.ErrNotFound) || (err == nil && (out == nil || out.Value == nil)) {
			return errs.NotFound(op, "account %s does not exist", address)
		}
		if err != nil {
			return err
		}
		data = out.Value.Data.GetBinary()
		return nil
	})
	return data, err
}

func (p *RpcFetcher) FetchAccounts(ctx context.Context, addresses []solana.PublicKey) ([][]byte, error) {
	const op = "accounts.FetchAccounts"
	result := make([][]byte, 0, len(addresses))
	for _, chunk := range chunks(addresses, GET_MULTIPLE_ACCOUNTS_CHUNK_SIZE) {
		var values []*rpc.Account
		err := p.call(ctx, op, func(ctx context.Context) error {
			out, err := p.client.GetMultipleAccountsWithOpts(ctx, chunk, &rpc.GetMultipleAccountsOpts{
				Encoding:   solana.EncodingBase64,
				Commitment: p.config.Commitment,
			})
			if err != nil {
				return err
			}
			if len(out.Value) != len(chunk) {
				return errs.ProtocolMismatch(op, "requested %d accounts, node returned %d", len(chunk), len(out.Value))
			}
			values = out.Value
			return nil
		})
		if err != nil {
			return nil, err
		}
		for _, account := range values {
			if account == nil {
				result = append(result, nil)
				continue
			}
			result = append(result, account.Data.GetBinary())
		}
	}
	return result, nil
}

func (p *RpcFetcher) FetchAccountOwner(ctx context.Context, address solana.PublicKey) (solana.PublicKey, error) {
	const op = "accounts.FetchAccountOwner"
	var owner solana.PublicKey
	err := p.call(ctx, op, func(ctx context.Context) error {
		out, err := p.client.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: p.config.Commitment,
			DataSlice:  &rpc.DataSlice{Offset: new(uint64), Length: new(uint64)},
		})
		if errors.Is(err, rpc.ErrNotFound) || (err == nil && (out == nil || out.Value == nil)) {
			return errs.NotFound(op, "account %s does not exist", address)
		}
		if err != nil {
			return err
		}
		owner = out.Value.Owner
		return nil
	})
	return owner, err
}

func (p *RpcFetcher) FetchTransaction(ctx context.Context, signature solana.Signature) (*rpc.GetTransactionResult, error) {
	const op = "accounts.FetchTransaction"
	var result *rpc.GetTransactionResult
	maxVersion := uint64(0)
	err := p.call(ctx, op, func(ctx context.Context) error {
		out, err := p.client.GetTransaction(ctx, signature, &rpc.GetTransactionOpts{
			Encoding:                       solana.EncodingBase64,
			Commitment:                     p.config.Commitment,
			MaxSupportedTransactionVersion: &maxVersion,
		})
		// a just-confirmed transaction can be briefly invisible, so this is retried
		if errors.Is(err, rpc.ErrNotFound) || (err == nil && out == nil) {
			return errs.Transient(op, "transaction %s not yet available", signature)
		}
		if err != nil {
			return err
		}
		result = out
		return nil
	})
	return result, err
}

func (p *RpcFetcher) FetchProgramAccounts(ctx context.Context, programId solana.PublicKey, filters []rpc.RPCFilter) ([]KeyedAccount, error) {
	const op = "accounts.FetchProgramAccounts"
	var result []KeyedAccount
	err := p.call(ctx, op, func(ctx context.Context) error {
		out, err := solanalib.GetProgramAccountsAtSlot(ctx, p.client, programId, p.config.Commitment, filters, 0)
		if err != nil {
			return err
		}
		result = make([]KeyedAccount, 0, len(out.Accounts))
		for _, keyed := range out.Accounts {
			if keyed == nil || keyed.Account == nil {
				continue
			}
			result = append(result, KeyedAccount{PublicKey: keyed.Pubkey, Data: keyed.Account.Data.GetBinary()})
		}
		p.logger.Debug().
			Str("program", programId.String()).
			Uint64("slot", out.Slot).
			Int("count", len(result)).
			Msg("program accounts fetched")
		return nil
	})
	return result, err
}

func (p *RpcFetcher) GetSlot(ctx context.Context) (uint64, error) {
	var slot uint64
	err := p.call(ctx, "accounts.GetSlot", func(ctx context.Context) (err error) {
		slot, err = p.client.GetSlot(ctx, p.config.Commitment)
		return err
	})
	return slot, err
}

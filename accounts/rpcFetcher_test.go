package accounts

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"quartzgo/errs"
	"quartzgo/retry"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonRpcNode answers JSON-RPC calls from per-method handlers. A handler
// gets the 1-based call count for its method and returns the raw result, or
// a non-empty error message.
type jsonRpcNode struct {
	mxState  sync.Mutex
	calls    map[string]int
	handlers map[string]func(call int, params json.RawMessage) (string, string)
}

func newJsonRpcNode(t *testing.T) (*jsonRpcNode, *RpcFetcher) {
	node := &jsonRpcNode{
		calls:    make(map[string]int),
		handlers: make(map[string]func(int, json.RawMessage) (string, string)),
	}
	server := httptest.NewServer(node)
	t.Cleanup(server.Close)

	fetcher := NewRpcFetcher(rpc.New(server.URL), RpcFetcherConfig{
		Retry: retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond},
	}, zerolog.Nop())
	return node, fetcher
}

func (p *jsonRpcNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ID     json.RawMessage `json:"id"`
		Method string          `json:"method"`
		Params json.RawMessage `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p.mxState.Lock()
	p.calls[request.Method]++
	call := p.calls[request.Method]
	handler := p.handlers[request.Method]
	p.mxState.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if handler == nil {
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32601,"message":"method not found"}}`, request.ID)
		return
	}
	result, failure := handler(call, request.Params)
	if failure != "" {
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32005,"message":%q}}`, request.ID, failure)
		return
	}
	fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, request.ID, result)
}

func (p *jsonRpcNode) handle(method string, handler func(call int, params json.RawMessage) (string, string)) {
	p.mxState.Lock()
	defer p.mxState.Unlock()
	p.handlers[method] = handler
}

func (p *jsonRpcNode) Calls(method string) int {
	p.mxState.Lock()
	defer p.mxState.Unlock()
	return p.calls[method]
}

func accountJson(data []byte, owner solana.PublicKey) string {
	return fmt.Sprintf(
		`{"data":[%q,"base64"],"executable":false,"lamports":1000,"owner":%q,"rentEpoch":0}`,
		base64.StdEncoding.EncodeToString(data), owner.String(),
	)
}

// go test --run TestRpcFetcherRetriesNodeErrors

func TestRpcFetcherRetriesNodeErrors(t *testing.T) {
	node, fetcher := newJsonRpcNode(t)
	node.handle("getSlot", func(call int, _ json.RawMessage) (string, string) {
		if call == 1 {
			return "", "node is behind"
		}
		return "321", ""
	})

	slot, err := fetcher.GetSlot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(321), slot)
	assert.Equal(t, 2, node.Calls("getSlot"))
}

func TestRpcFetcherRetriesAreBounded(t *testing.T) {
	node, fetcher := newJsonRpcNode(t)
	node.handle("getSlot", func(int, json.RawMessage) (string, string) {
		return "", "node is behind"
	})

	_, err := fetcher.GetSlot(context.Background())
	assert.Equal(t, errs.KindTransient, errs.KindOf(err))
	assert.Equal(t, 3, node.Calls("getSlot"))
}

// go test --run TestRpcFetcherMissingAccount

func TestRpcFetcherMissingAccount(t *testing.T) {
	node, fetcher := newJsonRpcNode(t)
	node.handle("getAccountInfo", func(int, json.RawMessage) (string, string) {
		return `{"context":{"slot":10},"value":null}`, ""
	})

	_, err := fetcher.FetchAccount(context.Background(), solana.NewWallet().PublicKey())
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	_, err = fetcher.FetchAccountOwner(context.Background(), solana.NewWallet().PublicKey())
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	// not found is final, never retried
	assert.Equal(t, 2, node.Calls("getAccountInfo"))
}

// go test --run TestRpcFetcherFetchAccounts

func TestRpcFetcherFetchAccounts(t *testing.T) {
	node, fetcher := newJsonRpcNode(t)
	owner := solana.NewWallet().PublicKey()
	node.handle("getMultipleAccounts", func(_ int, params json.RawMessage) (string, string) {
		var args []json.RawMessage
		if err := json.Unmarshal(params, &args); err != nil {
			return "", err.Error()
		}
		var keys []string
		if err := json.Unmarshal(args[0], &keys); err != nil {
			return "", err.Error()
		}
		values := make([]json.RawMessage, len(keys))
		for i := range keys {
			values[i] = json.RawMessage("null")
			if i%2 == 0 {
				values[i] = json.RawMessage(accountJson([]byte{byte(i)}, owner))
			}
		}
		encoded, _ := json.Marshal(values)
		return fmt.Sprintf(`{"context":{"slot":10},"value":%s}`, encoded), ""
	})

	keys := make([]solana.PublicKey, GET_MULTIPLE_ACCOUNTS_CHUNK_SIZE+3)
	for i := range keys {
		keys[i] = solana.NewWallet().PublicKey()
	}
	datas, err := fetcher.FetchAccounts(context.Background(), keys)
	require.NoError(t, err)
	require.Len(t, datas, len(keys))
	assert.Equal(t, []byte{0}, datas[0])
	assert.Nil(t, datas[1])
	// the second chunk restarts its own indices
	assert.Equal(t, []byte{0}, datas[GET_MULTIPLE_ACCOUNTS_CHUNK_SIZE])
	assert.Equal(t, 2, node.Calls("getMultipleAccounts"))
}

func TestRpcFetcherFetchAccountsCountMismatch(t *testing.T) {
	node, fetcher := newJsonRpcNode(t)
	owner := solana.NewWallet().PublicKey()
	node.handle("getMultipleAccounts", func(int, json.RawMessage) (string, string) {
		return fmt.Sprintf(`{"context":{"slot":10},"value":[%s]}`, accountJson([]byte{1}, owner)), ""
	})

	_, err := fetcher.FetchAccounts(context.Background(), []solana.PublicKey{
		solana.NewWallet().PublicKey(),
		solana.NewWallet().PublicKey(),
	})
	assert.Equal(t, errs.KindProtocolMismatch, errs.KindOf(err))
	assert.Equal(t, 1, node.Calls("getMultipleAccounts"))
}

// go test --run TestRpcFetcherFetchTransaction

func TestRpcFetcherFetchTransaction(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	tx, err := solana.NewTransaction(
		[]solana.Instruction{system.NewTransferInstruction(1, payer, payer).Build()},
		solana.Hash{},
		solana.TransactionPayer(payer),
	)
	require.NoError(t, err)
	raw, err := tx.MarshalBinary()
	require.NoError(t, err)

	node, fetcher := newJsonRpcNode(t)
	node.handle("getTransaction", func(call int, _ json.RawMessage) (string, string) {
		if call < 3 {
			return "null", ""
		}
		return fmt.Sprintf(`{"slot":88,"transaction":[%q,"base64"],"meta":null}`, base64.StdEncoding.EncodeToString(raw)), ""
	})

	// a fresh transaction is invisible for the first two polls
	result, err := fetcher.FetchTransaction(context.Background(), solana.Signature{1})
	require.NoError(t, err)
	assert.Equal(t, uint64(88), result.Slot)
	assert.Equal(t, 3, node.Calls("getTransaction"))
	decoded, err := result.Transaction.GetTransaction()
	require.NoError(t, err)
	assert.Equal(t, payer, decoded.Message.AccountKeys[0])

	node.handle("getTransaction", func(int, json.RawMessage) (string, string) {
		return "null", ""
	})
	_, err = fetcher.FetchTransaction(context.Background(), solana.Signature{2})
	assert.Equal(t, errs.KindTransient, errs.KindOf(err))
	assert.Equal(t, 6, node.Calls("getTransaction"))
}

package solana

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedCaller struct {
	response string
	method   string
	params   []interface{}
}

func (p *cannedCaller) RPCCallForInto(ctx context.Context, out interface{}, method string, params []interface{}) error {
	p.method = method
	p.params = params
	return json.Unmarshal([]byte(p.response), out)
}

func TestGetProgramAccountsAtSlot(t *testing.T) {
	account := solana.NewWallet().PublicKey()
	caller := &cannedCaller{response: fmt.Sprintf(`{
		"context": {"slot": 321},
		"value": [{"pubkey": %q, "account": {"lamports": 1, "owner": %q, "data": ["AQID", "base64"], "executable": false, "rentEpoch": 0}}]
	}`, account, solana.SystemProgramID)}

	filters := []rpc.RPCFilter{{DataSize: 8}}
	out, err := GetProgramAccountsAtSlot(context.Background(), caller, solana.SystemProgramID, rpc.CommitmentConfirmed, filters, 300)
	require.NoError(t, err)
	assert.Equal(t, uint64(321), out.Slot)
	require.Len(t, out.Accounts, 1)
	assert.Equal(t, account, out.Accounts[0].Pubkey)
	assert.Equal(t, []byte{1, 2, 3}, out.Accounts[0].Account.Data.GetBinary())

	assert.Equal(t, "getProgramAccounts", caller.method)
	config := caller.params[1].(rpc.M)
	assert.Equal(t, true, config["withContext"])
	assert.Equal(t, uint64(300), config["minContextSlot"])
	assert.Equal(t, filters, config["filters"])

	_, err = GetProgramAccountsAtSlot(context.Background(), caller, solana.SystemProgramID, "", nil, 0)
	require.NoError(t, err)
	config = caller.params[1].(rpc.M)
	assert.NotContains(t, config, "minContextSlot")
	assert.NotContains(t, config, "commitment")
}

package connection

import (
	"testing"

	"quartzgo/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	secure := Config{Host: "rpc.example.com", Token: "abc", IsSecure: true}
	assert.Equal(t, "https://rpc.example.com/abc", secure.GetRpcEndpoint())
	assert.Equal(t, "wss://rpc.example.com/abc", secure.GetWsEndpoint())

	local := Config{Host: "127.0.0.1:8899"}
	assert.Equal(t, "http://127.0.0.1:8899", local.GetRpcEndpoint())
	assert.Equal(t, "ws://127.0.0.1:8899", local.GetWsEndpoint())

	assert.NotEqual(t, secure.Hash(), local.Hash())
	assert.Equal(t, secure.Hash(), (&Config{Host: "rpc.example.com", Token: "abc", IsSecure: true}).Hash())

	assert.NoError(t, local.Validate())
	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Host: "https://rpc.example.com"}).Validate())
}

// go test --run TestManagerGetRpc

func TestManagerGetRpc(t *testing.T) {
	manager := CreateManager()
	_, err := manager.GetRpc()
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))

	id := manager.AddConfig(Config{Host: "127.0.0.1:8899", MaxReferrer: 2})
	assert.Equal(t, id, manager.AddConfig(Config{Host: "127.0.0.1:8899", MaxReferrer: 5}))

	first, err := manager.GetRpc(id)
	require.NoError(t, err)
	second, err := manager.GetRpc("unknown")
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	for range 10 {
		shared, err := manager.GetRpc(id)
		require.NoError(t, err)
		assert.True(t, shared == first || shared == second)
	}
	assert.Len(t, manager.rpcConnections[id], 2)

	named := manager.AddConfig(Config{Host: "rpc.example.com", IsSecure: true}, "primary")
	assert.Equal(t, "primary", named)
	_, err = manager.GetRpc("primary")
	require.NoError(t, err)
	_, err = manager.GetRpc("primary")
	require.NoError(t, err)
	assert.Len(t, manager.rpcConnections["primary"], 2)
}

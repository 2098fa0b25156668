package connection

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"quartzgo/errs"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
)

func (p *Config) Hash() string {
	t := fmt.Sprintf("%s://%s/%s", utils.TT(p.IsSecure, "https", "http"), p.Host, p.Token)
	sum := md5.Sum([]byte(t))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (p *Config) Validate() error {
	if strings.TrimSpace(p.Host) == "" {
		return errs.InvalidParameter("connection.Validate", "host is required")
	}
	if strings.Contains(p.Host, "://") {
		return errs.InvalidParameter("connection.Validate", "host %q must not carry a scheme", p.Host)
	}
	return nil
}

func (p *Config) GetRpcEndpoint() string {
	return fmt.Sprintf("%s://%s",
		utils.TT(p.IsSecure, "https", "http"),
		p.Host+(utils.TT(p.Token == "", "", "/"+p.Token)),
	)
}

func (p *Config) GetWsEndpoint() string {
	return fmt.Sprintf("%s://%s",
		utils.TT(p.IsSecure, "wss", "ws"),
		p.Host+(utils.TT(p.Token == "", "", "/"+p.Token)),
	)
}

// Manager hands out rpc and ws clients per registered endpoint, reusing up
// to MaxReferrer clients each.
type Manager struct {
	mxState        sync.Mutex
	configs        map[string]*Config
	rpcConnections map[string][]*rpc.Client
	wsConnections  map[string][]*ws.Client
}

func CreateManager() *Manager {
	return &Manager{
		configs:        make(map[string]*Config),
		rpcConnections: make(map[string][]*rpc.Client),
		wsConnections:  make(map[string][]*ws.Client),
	}
}

// AddConfig registers config under id, or under its hash when no id is
// given, and returns the id used. An existing id keeps its first config.
func (p *Manager) AddConfig(config Config, id ...string) string {
	connectionId := config.Hash()
	if len(id) > 0 && len(id[0]) > 0 {
		connectionId = id[0]
	}
	defer p.mxState.Unlock()
	p.mxState.Lock()
	if _, exists := p.configs[connectionId]; !exists {
		p.configs[connectionId] = &config
	}
	return connectionId
}

// getConnectionId picks id when registered and a random endpoint otherwise.
// Callers hold mxState.
func (p *Manager) getConnectionId(id ...string) (string, error) {
	if len(p.configs) == 0 {
		return "", errs.InvalidParameter("connection.Manager", "no connection configured")
	}
	if len(id) > 0 && len(id[0]) > 0 {
		if _, exists := p.configs[id[0]]; exists {
			return id[0], nil
		}
	}
	return utils.RandomElement(utils.MapKeys(p.configs)), nil
}

func (p *Manager) GetRpc(id ...string) (*rpc.Client, error) {
	defer p.mxState.Unlock()
	p.mxState.Lock()
	connectionId, err := p.getConnectionId(id...)
	if err != nil {
		return nil, err
	}
	config := p.configs[connectionId]
	connections := p.rpcConnections[connectionId]
	if len(connections) > 0 && config.MaxReferrer > 0 && len(connections) >= config.MaxReferrer {
		return utils.RandomElement(connections), nil
	}
	connection := rpc.New(config.GetRpcEndpoint())
	p.rpcConnections[connectionId] = append(connections, connection)
	return connection, nil
}

func (p *Manager) GetWs(ctx context.Context, id ...string) (*ws.Client, error) {
	defer p.mxState.Unlock()
	p.mxState.Lock()
	connectionId, err := p.getConnectionId(id...)
	if err != nil {
		return nil, err
	}
	config := p.configs[connectionId]
	connections := p.wsConnections[connectionId]
	if len(connections) > 0 && config.MaxReferrer > 0 && len(connections) >= config.MaxReferrer {
		return utils.RandomElement(connections), nil
	}
	connection, err := ws.Connect(ctx, config.GetWsEndpoint())
	if err != nil {
		return nil, errs.Wrap(errs.KindTransient, "connection.GetWs", err)
	}
	p.wsConnections[connectionId] = append(connections, connection)
	return connection, nil
}

// Close closes every ws client opened so far.
func (p *Manager) Close() {
	defer p.mxState.Unlock()
	p.mxState.Lock()
	for connectionId, connections := range p.wsConnections {
		for _, connection := range connections {
			connection.Close()
		}
		delete(p.wsConnections, connectionId)
	}
}

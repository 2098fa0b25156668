package connection

import (
	"context"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
)

type Config struct {
	Host  string `yaml:"host"`
	Token string `yaml:"token"`
	// IsSecure selects https/wss over http/ws.
	IsSecure bool `yaml:"isSecure"`
	// MaxReferrer caps the clients opened per endpoint; once reached,
	// callers share a random existing one. Zero opens a client per call.
	MaxReferrer int `yaml:"maxReferrer"`
}

type IConnectionManager interface {
	AddConfig(config Config, id ...string) string
	GetRpc(id ...string) (*rpc.Client, error)
	GetWs(ctx context.Context, id ...string) (*ws.Client, error)
}

package priorityFee

import (
	"context"
)

type Method string

const (
	MethodSolana Method = "solana"
	MethodHelius Method = "helius"
)

// Strategy reduces fee samples, newest first, to one fee in micro-lamports
// per compute unit.
type Strategy interface {
	Calculate(samples []Sample) uint64
}

type Sample struct {
	Slot              uint64
	PrioritizationFee uint64
}

// RpcCaller is the JSON-RPC surface getRecentPrioritizationFees needs.
type RpcCaller interface {
	RPCCallForInto(ctx context.Context, out interface{}, method string, params []interface{}) error
}

type Config struct {
	Method Method `yaml:"method"`
	// HeliusUrl is required with MethodHelius.
	HeliusUrl   string              `yaml:"heliusUrl"`
	HeliusLevel HeliusPriorityLevel `yaml:"heliusLevel"`
	// SlotsToCheck is the lookback window for MethodSolana.
	SlotsToCheck uint64 `yaml:"slotsToCheck"`
	Percentile   uint   `yaml:"percentile"`
	// MaxFeeMicroLamports clamps the estimate after the multiplier. Zero
	// disables the clamp.
	MaxFeeMicroLamports uint64   `yaml:"maxFeeMicroLamports"`
	Multiplier          float64  `yaml:"multiplier"`
	Strategy            Strategy `yaml:"-"`
}

var DefaultConfig = Config{
	Method:       MethodSolana,
	HeliusLevel:  HeliusPriorityLevelMedium,
	SlotsToCheck: 50,
	Multiplier:   1.0,
}

package priorityFee

import (
	"context"

	"quartzgo/errs"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go"
	"github.com/go-resty/resty/v2"
)

// Estimator prices compute units for a set of write-locked accounts using
// either the node's recent fees or a Helius estimate.
type Estimator struct {
	config     Config
	connection RpcCaller
	http       *resty.Client
}

func NewEstimator(config Config, connection RpcCaller) (*Estimator, error) {
	const op = "priorityFee.NewEstimator"
	switch config.Method {
	case MethodSolana:
		if connection == nil {
			return nil, errs.InvalidParameter(op, "an rpc connection is required for the solana method")
		}
	case MethodHelius:
		if config.HeliusUrl == "" {
			return nil, errs.InvalidParameter(op, "heliusUrl is required for the helius method")
		}
	default:
		return nil, errs.InvalidParameter(op, "unknown priority fee method %q", config.Method)
	}
	if config.Strategy == nil {
		config.Strategy = &AverageStrategy{}
	}
	config.SlotsToCheck = utils.TT(config.SlotsToCheck > 0, config.SlotsToCheck, DefaultConfig.SlotsToCheck)
	config.Multiplier = utils.TT(config.Multiplier > 0.0, config.Multiplier, 1.0)
	config.HeliusLevel = utils.TT(config.HeliusLevel == "", DefaultConfig.HeliusLevel, config.HeliusLevel)
	return &Estimator{
		config:     config,
		connection: connection,
		http:       resty.New(),
	}, nil
}

// Estimate is the raw fee with the multiplier and clamp applied.
func (p *Estimator) Estimate(ctx context.Context, addresses []solana.PublicKey) (uint64, error) {
	raw, err := p.raw(ctx, addresses)
	if err != nil {
		return 0, err
	}
	fee := uint64(float64(raw) * p.config.Multiplier)
	if p.config.MaxFeeMicroLamports > 0 && fee > p.config.MaxFeeMicroLamports {
		return p.config.MaxFeeMicroLamports, nil
	}
	return fee, nil
}

func (p *Estimator) raw(ctx context.Context, addresses []solana.PublicKey) (uint64, error) {
	if p.config.Method == MethodHelius {
		levels, err := FetchHeliusPriorityFee(ctx, p.http, p.config.HeliusUrl, addresses)
		if err != nil {
			return 0, err
		}
		return uint64(levels[p.config.HeliusLevel]), nil
	}
	samples, err := FetchSolanaPriorityFee(ctx, p.connection, p.config.SlotsToCheck, addresses, p.config.Percentile)
	if err != nil {
		return 0, err
	}
	return p.config.Strategy.Calculate(samples), nil
}

package tx

import (
	"context"

	"quartzgo/errs"
	"quartzgo/priorityFee"
	"quartzgo/quartz"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
)

// Builder turns bundles into unsigned transactions against live chain
// state: a fresh blockhash, the bundle's lookup tables and, when asked for,
// a priority fee estimate and simulated compute units.
type Builder struct {
	client     RpcClient
	tables     *LookupTableCache
	estimator  *priorityFee.Estimator
	commitment rpc.CommitmentType
	logger     zerolog.Logger
}

// NewBuilder accepts a nil estimator, in which case only explicit prices
// are used.
func NewBuilder(client RpcClient, tables *LookupTableCache, estimator *priorityFee.Estimator, logger zerolog.Logger) *Builder {
	return &Builder{
		client:     client,
		tables:     tables,
		estimator:  estimator,
		commitment: rpc.CommitmentConfirmed,
		logger:     logger.With().Str("component", "txBuilder").Logger(),
	}
}

func (p *Builder) Build(ctx context.Context, bundle *quartz.Bundle, payer solana.PublicKey, params TxParams) (*solana.Transaction, error) {
	const op = "tx.Build"
	if bundle == nil || len(bundle.Instructions) == 0 {
		return nil, errs.InvalidParameter(op, "bundle has no instructions")
	}
	latest, err := p.client.GetLatestBlockhash(ctx, p.commitment)
	if err != nil {
		return nil, errs.Wrap(errs.KindTransient, op, err)
	}
	if latest == nil || latest.Value == nil {
		return nil, errs.Transient(op, "no blockhash returned")
	}
	lookupTables, err := p.tables.Get(ctx, bundle.LookupTables)
	if err != nil {
		return nil, err
	}

	if params.ComputeUnitsPrice == 0 && p.estimator != nil {
		fee, err := p.estimator.Estimate(ctx, WritableAccounts(bundle.Instructions))
		if err != nil {
			p.logger.Warn().Err(err).Msg("priority fee estimate failed, sending without one")
		} else {
			params.ComputeUnitsPrice = fee
		}
	}

	if params.SimulateComputeUnits {
		simParams := params
		simParams.ComputeUnits = MAX_COMPUTE_UNITS
		transaction, err := BuildTransaction(bundle, payer, latest.Value.Blockhash, lookupTables, simParams)
		if err != nil {
			return nil, err
		}
		if params.ComputeUnits, err = SimulateComputeUnits(ctx, p.client, transaction, params.ComputeUnitsBufferMultiplier); err != nil {
			return nil, err
		}
	}

	p.logger.Debug().
		Int("instructions", len(bundle.Instructions)).
		Uint32("computeUnits", params.ComputeUnits).
		Uint64("computeUnitsPrice", params.ComputeUnitsPrice).
		Msg("transaction built")
	return BuildTransaction(bundle, payer, latest.Value.Blockhash, lookupTables, params)
}

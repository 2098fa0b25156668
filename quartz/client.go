// Package quartz composes Quartz instruction bundles and answers account
// queries for vault owners. A Client is shared; a User is a point-in-time
// view of one vault.
package quartz

import (
	"context"
	"math/big"
	"time"

	"quartzgo/accounts"
	"quartzgo/addresses"
	"quartzgo/constants"
	"quartzgo/errs"
	quartzlib "quartzgo/lib/quartz"
	"quartzgo/math"
	"quartzgo/types"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// MAX_CONCURRENT_USER_LOADS bounds the snapshot loads run by
// GetMultipleQuartzAccounts.
const MAX_CONCURRENT_USER_LOADS = 8

type ClientConfig struct {
	Env     constants.Env
	Fetcher accounts.Fetcher
	Logger  zerolog.Logger
	// ProgramId defaults to constants.QUARTZ_PROGRAM_ID.
	ProgramId solana.PublicKey
	// AddressLookupTable defaults to constants.QUARTZ_ADDRESS_TABLE.
	AddressLookupTable  solana.PublicKey
	SpendFeeDestination solana.PublicKey
	HealthBuffer        int
}

type Client struct {
	env                 constants.Env
	programId           solana.PublicKey
	lookupTable         solana.PublicKey
	spendFeeDestination solana.PublicKey
	healthBuffer        int
	fetcher             accounts.Fetcher
	logger              zerolog.Logger
	now                 func() time.Time
}

func NewClient(config ClientConfig) (*Client, error) {
	const op = "quartz.NewClient"
	if config.Fetcher == nil {
		return nil, errs.InvalidParameter(op, "a fetcher is required")
	}
	if _, exists := constants.SpotMarkets[config.Env]; !exists {
		return nil, errs.InvalidParameter(op, "unknown env %q", config.Env)
	}
	if config.HealthBuffer < 0 || config.HealthBuffer >= constants.MAX_HEALTH {
		return nil, errs.InvalidParameter(op, "health buffer %d must be in [0, 100)", config.HealthBuffer)
	}
	if config.ProgramId.IsZero() {
		config.ProgramId = constants.QUARTZ_PROGRAM_ID
	}
	if config.AddressLookupTable.IsZero() {
		config.AddressLookupTable = constants.QUARTZ_ADDRESS_TABLE
	}
	return &Client{
		env:                 config.Env,
		programId:           config.ProgramId,
		lookupTable:         config.AddressLookupTable,
		spendFeeDestination: config.SpendFeeDestination,
		healthBuffer:        config.HealthBuffer,
		fetcher:             config.Fetcher,
		logger:              config.Logger.With().Str("component", "quartz").Logger(),
		now:                 time.Now,
	}, nil
}

func (p *Client) Env() constants.Env {
	return p.env
}

func (p *Client) ProgramId() solana.PublicKey {
	return p.programId
}

func (p *Client) Fetcher() accounts.Fetcher {
	return p.fetcher
}

func (p *Client) LookupTables() []solana.PublicKey {
	return []solana.PublicKey{p.lookupTable}
}

func (p *Client) newBundle(instructions []solana.Instruction, signers ...solana.PrivateKey) *Bundle {
	return &Bundle{
		Instructions: instructions,
		LookupTables: p.LookupTables(),
		Signers:      signers,
	}
}

// GetQuartzAccount loads the vault and a fresh Drift snapshot for owner.
func (p *Client) GetQuartzAccount(ctx context.Context, owner solana.PublicKey) (*User, error) {
	vault, err := accounts.FetchVault(ctx, p.fetcher, p.programId, owner)
	if err != nil {
		return nil, err
	}
	user := p.newUser(owner, vault)
	if err = user.Refresh(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

// GetMultipleQuartzAccounts returns one user per owner. Every owner must have
// a vault; an owner whose vault has no Drift user yet gets a nil entry.
func (p *Client) GetMultipleQuartzAccounts(ctx context.Context, owners []solana.PublicKey) ([]*User, error) {
	const op = "quartz.GetMultipleQuartzAccounts"
	if len(owners) == 0 {
		return nil, nil
	}
	vaults, err := accounts.FetchMultipleVaults(ctx, p.fetcher, p.programId, owners)
	if err != nil {
		return nil, err
	}
	driftUsers := make([]solana.PublicKey, len(owners))
	for i, owner := range owners {
		if vaults[i] == nil {
			return nil, errs.NotFound(op, "no Quartz account for %s", owner)
		}
		driftUsers[i] = addresses.GetUserAccountPublicKey(
			constants.DRIFT_PROGRAM_ID,
			addresses.GetVaultPublicKey(p.programId, owner),
			constants.DRIFT_SUB_ACCOUNT_ID,
		)
	}
	datas, err := p.fetcher.FetchAccounts(ctx, driftUsers)
	if err != nil {
		return nil, err
	}

	users := make([]*User, len(owners))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MAX_CONCURRENT_USER_LOADS)
	for i, owner := range owners {
		if datas[i] == nil {
			p.logger.Warn().Str("owner", owner.String()).Msg("vault has no Drift user")
			continue
		}
		user := p.newUser(owner, vaults[i])
		users[i] = user
		g.Go(func() error {
			return user.Refresh(gctx)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}

// GetOpenWithdrawOrders lists owner's unfulfilled withdraw orders.
func (p *Client) GetOpenWithdrawOrders(ctx context.Context, owner solana.PublicKey) ([]accounts.KeyedWithdrawOrder, error) {
	return accounts.FetchOpenWithdrawOrders(ctx, p.fetcher, p.programId, owner)
}

// GetDepositRate is the current deposit APR of a spot market at
// SPOT_MARKET_RATE_PRECISION.
func (p *Client) GetDepositRate(ctx context.Context, marketIndex uint16) (*big.Int, error) {
	spotMarket, err := accounts.FetchSpotMarket(ctx, p.fetcher, marketIndex)
	if err != nil {
		return nil, err
	}
	return math.GetDepositRate(spotMarket), nil
}

// GetBorrowRate is the current borrow APR of a spot market at
// SPOT_MARKET_RATE_PRECISION.
func (p *Client) GetBorrowRate(ctx context.Context, marketIndex uint16) (*big.Int, error) {
	spotMarket, err := accounts.FetchSpotMarket(ctx, p.fetcher, marketIndex)
	if err != nil {
		return nil, err
	}
	return math.GetBorrowRate(spotMarket), nil
}

// LoadSnapshot reads a fresh snapshot for an owner without requiring the
// vault account itself.
func (p *Client) LoadSnapshot(ctx context.Context, owner solana.PublicKey) (*types.Snapshot, error) {
	return accounts.LoadSnapshot(ctx, p.fetcher, p.env, owner, addresses.GetVaultPublicKey(p.programId, owner))
}

// MakeInitQuartzUserIxs creates the vault and its Drift user for owner.
func (p *Client) MakeInitQuartzUserIxs(owner solana.PublicKey, limits SpendLimits) (*Bundle, error) {
	const op = "quartz.MakeInitQuartzUserIxs"
	if owner.IsZero() {
		return nil, errs.InvalidParameter(op, "owner is required")
	}
	if err := limits.validate(op); err != nil {
		return nil, err
	}
	vault := addresses.GetVaultPublicKey(p.programId, owner)
	ix, err := p.build(op, quartzlib.NewInitUserInstructionBuilder().
		SetSpendLimitPerTransaction(limits.PerTransaction).
		SetSpendLimitPerTimeframe(limits.PerTimeframe).
		SetTimeframeInSeconds(limits.TimeframeInSeconds).
		SetNextTimeframeResetTimestamp(limits.NextTimeframeResetTimestamp).
		SetVaultAccount(vault).
		SetOwnerAccount(owner).
		SetInitRentPayerAccount(addresses.GetInitRentPayerPublicKey(p.programId)).
		SetDriftUserAccount(addresses.GetUserAccountPublicKey(constants.DRIFT_PROGRAM_ID, vault, constants.DRIFT_SUB_ACCOUNT_ID)).
		SetDriftUserStatsAccount(addresses.GetUserStatsAccountPublicKey(constants.DRIFT_PROGRAM_ID, vault)).
		SetDriftStateAccount(addresses.GetDriftStateAccountPublicKey(constants.DRIFT_PROGRAM_ID)).
		SetDriftProgramAccount(constants.DRIFT_PROGRAM_ID).
		SetRentAccount(solana.SysVarRentPubkey).
		SetSystemProgramAccount(solana.SystemProgramID))
	if err != nil {
		return nil, err
	}
	return p.newBundle([]solana.Instruction{ix}), nil
}

// MakeReclaimBridgeRentIxs returns the rent of a spent CCTP message account
// once its attestation is available.
func (p *Client) MakeReclaimBridgeRentIxs(
	messageSentEventData solana.PublicKey,
	attestation []byte,
	rentReclaimer solana.PublicKey,
) (*Bundle, error) {
	const op = "quartz.MakeReclaimBridgeRentIxs"
	if len(attestation) == 0 {
		return nil, errs.InvalidParameter(op, "attestation is empty")
	}
	ix, err := p.build(op, quartzlib.NewReclaimBridgeRentInstruction(
		attestation,
		rentReclaimer,
		addresses.GetBridgeRentPayerPublicKey(p.programId),
		addresses.GetMessageTransmitterPublicKey(constants.MESSAGE_TRANSMITTER_PROGRAM_ID),
		messageSentEventData,
		constants.MESSAGE_TRANSMITTER_PROGRAM_ID,
	))
	if err != nil {
		return nil, err
	}
	return p.newBundle([]solana.Instruction{ix}), nil
}

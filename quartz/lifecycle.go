package quartz

import (
	"quartzgo/addresses"
	"quartzgo/constants"
	quartzlib "quartzgo/lib/quartz"

	"github.com/gagliardetto/solana-go"
)

// MakeCloseAccountIxs closes the vault and its Drift user, returning rent to
// the init rent payer.
func (p *User) MakeCloseAccountIxs() (*Bundle, error) {
	ix, err := p.client.build("quartz.MakeCloseAccountIxs", quartzlib.NewCloseUserInstruction(
		p.Vault,
		p.Owner,
		addresses.GetInitRentPayerPublicKey(p.client.programId),
		p.DriftUser,
		p.DriftUserStats,
		addresses.GetDriftStateAccountPublicKey(constants.DRIFT_PROGRAM_ID),
		constants.DRIFT_PROGRAM_ID,
		solana.SystemProgramID,
	))
	if err != nil {
		return nil, err
	}
	return p.client.newBundle([]solana.Instruction{ix}), nil
}

// MakeUpgradeAccountIxs migrates a vault to the current layout and sets its
// spend limits.
func (p *User) MakeUpgradeAccountIxs(limits SpendLimits) (*Bundle, error) {
	const op = "quartz.MakeUpgradeAccountIxs"
	if err := limits.validate(op); err != nil {
		return nil, err
	}
	ix, err := p.client.build(op, quartzlib.NewUpgradeVaultInstruction(
		limits.PerTransaction,
		limits.PerTimeframe,
		limits.TimeframeInSeconds,
		limits.NextTimeframeResetTimestamp,
		p.Vault,
		p.Owner,
		addresses.GetInitRentPayerPublicKey(p.client.programId),
		solana.SystemProgramID,
	))
	if err != nil {
		return nil, err
	}
	return p.client.newBundle([]solana.Instruction{ix}), nil
}

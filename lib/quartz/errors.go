package quartz

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrorCode is a Quartz custom program error, as reported by Anchor in
// `custom program error: 0x....` failures.
type ErrorCode uint32

const (
	ErrCodeVaultAlreadyInitialized            ErrorCode = 6000
	ErrCodeIllegalCollateralRepayInstructions ErrorCode = 6001
	ErrCodeInvalidMint                        ErrorCode = 6002
	ErrCodeMaxSlippageExceeded                ErrorCode = 6003
	ErrCodeInvalidPlatformFee                 ErrorCode = 6004
	ErrCodeInvalidUserAccounts                ErrorCode = 6005
	ErrCodeInvalidSourceTokenAccount          ErrorCode = 6006
	ErrCodeInvalidDestinationTokenAccount     ErrorCode = 6007
	ErrCodeInvalidStartBalance                ErrorCode = 6008
	ErrCodeNegativeOraclePrice                ErrorCode = 6009
	ErrCodeInvalidMarketIndex                 ErrorCode = 6010
	ErrCodeMathOverflow                       ErrorCode = 6011
	ErrCodeInvalidPriceExponent               ErrorCode = 6012
	ErrCodeUnableToLoadAccountLoader          ErrorCode = 6013
	ErrCodeDeserializationError               ErrorCode = 6014
	ErrCodeAutoRepayThresholdNotReached       ErrorCode = 6015
	ErrCodeAutoRepayTooMuchSold               ErrorCode = 6016
	ErrCodeAutoRepayNotEnoughSold             ErrorCode = 6017
	ErrCodeIdenticalCollateralRepayMarkets    ErrorCode = 6018
	ErrCodeInvalidStartingVaultBalance        ErrorCode = 6019
	ErrCodeFreshTokenLedgerRequired           ErrorCode = 6020
	ErrCodeInvalidEvmAddress                  ErrorCode = 6021
	ErrCodeInvalidVaultOwner                  ErrorCode = 6022
	ErrCodeInvalidVaultAddress                ErrorCode = 6023
	ErrCodeLookupTableAlreadyInitialized      ErrorCode = 6024
	ErrCodeMissingTokenMint                   ErrorCode = 6025
	ErrCodeInvalidTokenProgramId              ErrorCode = 6026
	ErrCodeInvalidLookupTable                 ErrorCode = 6027
	ErrCodeInvalidLookupTableContent          ErrorCode = 6028
	ErrCodeInvalidLookupTableAuthority        ErrorCode = 6029
	ErrCodeInsufficientTimeframeSpendLimit    ErrorCode = 6030
	ErrCodeInsufficientTransactionSpendLimit  ErrorCode = 6031
	ErrCodeIllegalSpendInstructions           ErrorCode = 6032
	ErrCodeInvalidTimestamp                   ErrorCode = 6033
	ErrCodeInvalidTimeLockRentPayer           ErrorCode = 6034
	ErrCodeTimeLockNotReleased                ErrorCode = 6035
	ErrCodeInvalidTimeLockOwner               ErrorCode = 6036
	ErrCodeAccountAlreadyInitialized          ErrorCode = 6037
	ErrCodeInvalidDestinationSplWSOL          ErrorCode = 6038
)

var errorMessages = map[ErrorCode]struct {
	name string
	msg  string
}{
	ErrCodeVaultAlreadyInitialized:            {"VaultAlreadyInitialized", "Vault already initialized"},
	ErrCodeIllegalCollateralRepayInstructions: {"IllegalCollateralRepayInstructions", "Illegal collateral repay instructions"},
	ErrCodeInvalidMint:                        {"InvalidMint", "Invalid mint provided"},
	ErrCodeMaxSlippageExceeded:                {"MaxSlippageExceeded", "Price slippage is above maximum"},
	ErrCodeInvalidPlatformFee:                 {"InvalidPlatformFee", "Swap platform fee must be zero"},
	ErrCodeInvalidUserAccounts:                {"InvalidUserAccounts", "User accounts accross instructions must match"},
	ErrCodeInvalidSourceTokenAccount:          {"InvalidSourceTokenAccount", "Swap source token account does not match withdraw"},
	ErrCodeInvalidDestinationTokenAccount:     {"InvalidDestinationTokenAccount", "Swap destination token account does not match deposit"},
	ErrCodeInvalidStartBalance:                {"InvalidStartBalance", "Declared start balance is not accurate"},
	ErrCodeNegativeOraclePrice:                {"NegativeOraclePrice", "Price received from oracle should be a positive number"},
	ErrCodeInvalidMarketIndex:                 {"InvalidMarketIndex", "Invalid market index"},
	ErrCodeMathOverflow:                       {"MathOverflow", "Math overflow"},
	ErrCodeInvalidPriceExponent:               {"InvalidPriceExponent", "Price exponents received from oracle should be the same"},
	ErrCodeUnableToLoadAccountLoader:          {"UnableToLoadAccountLoader", "Unable to load account loader"},
	ErrCodeDeserializationError:               {"DeserializationError", "Could not deserialize introspection instruction data"},
	ErrCodeAutoRepayThresholdNotReached:       {"AutoRepayThresholdNotReached", "Total collateral cannot be less than margin requirement for auto repay"},
	ErrCodeAutoRepayTooMuchSold:               {"AutoRepayTooMuchSold", "Too much collateral sold in auto repay"},
	ErrCodeAutoRepayNotEnoughSold:             {"AutoRepayNotEnoughSold", "Not enough collateral sold in auto repay"},
	ErrCodeIdenticalCollateralRepayMarkets:    {"IdenticalCollateralRepayMarkets", "Collateral repay deposit and withdraw markets must be different"},
	ErrCodeInvalidStartingVaultBalance:        {"InvalidStartingVaultBalance", "Invalid starting vault balance"},
	ErrCodeFreshTokenLedgerRequired:           {"FreshTokenLedgerRequired", "Provided token ledger is not empty"},
	ErrCodeInvalidEvmAddress:                  {"InvalidEvmAddress", "Provided EVM address does not match expected format"},
	ErrCodeInvalidVaultOwner:                  {"InvalidVaultOwner", "Invalid vault owner"},
	ErrCodeInvalidVaultAddress:                {"InvalidVaultAddress", "Invalid vault address"},
	ErrCodeLookupTableAlreadyInitialized:      {"LookupTableAlreadyInitialized", "Lookup table already initialized"},
	ErrCodeMissingTokenMint:                   {"MissingTokenMint", "Missing token mint"},
	ErrCodeInvalidTokenProgramId:              {"InvalidTokenProgramId", "Invalid token program id"},
	ErrCodeInvalidLookupTable:                 {"InvalidLookupTable", "Invalid lookup table"},
	ErrCodeInvalidLookupTableContent:          {"InvalidLookupTableContent", "Invalid lookup table content"},
	ErrCodeInvalidLookupTableAuthority:        {"InvalidLookupTableAuthority", "Invalid lookup table authority"},
	ErrCodeInsufficientTimeframeSpendLimit:    {"InsufficientTimeframeSpendLimit", "Insufficient spend limit remaining for the timeframe"},
	ErrCodeInsufficientTransactionSpendLimit:  {"InsufficientTransactionSpendLimit", "Transaction is larger than the transaction spend limit"},
	ErrCodeIllegalSpendInstructions:           {"IllegalSpendInstructions", "start_spend instruction must be followed by complete_spend instruction"},
	ErrCodeInvalidTimestamp:                   {"InvalidTimestamp", "Current timestamp cannot be negative"},
	ErrCodeInvalidTimeLockRentPayer:           {"InvalidTimeLockRentPayer", "Time lock rent payer must either be the owner or the time_lock_rent_payer PDA"},
	ErrCodeTimeLockNotReleased:                {"TimeLockNotReleased", "Release slot has not passed for time lock"},
	ErrCodeInvalidTimeLockOwner:               {"InvalidTimeLockOwner", "Time lock owner does not match"},
	ErrCodeAccountAlreadyInitialized:          {"AccountAlreadyInitialized", "An initialize instruction was sent to an account that has already been initialized"},
	ErrCodeInvalidDestinationSplWSOL:          {"InvalidDestinationSplWSOL", "destination_spl is required if spl_mint is not wSOL"},
}

// ProgramError is a decoded Quartz custom error.
type ProgramError struct {
	Code ErrorCode
	Name string
	Msg  string
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("quartz error %d (%s): %s", e.Code, e.Name, e.Msg)
}

// LookupProgramError maps a custom error code to the program's error, or
// nil when the code is not one of Quartz's.
func LookupProgramError(code uint32) *ProgramError {
	entry, ok := errorMessages[ErrorCode(code)]
	if !ok {
		return nil
	}
	return &ProgramError{Code: ErrorCode(code), Name: entry.name, Msg: entry.msg}
}

var customErrorPattern = regexp.MustCompile(`custom program error: 0x([0-9a-fA-F]+)`)

// ParseProgramError extracts a Quartz error from a failed simulation or
// transaction error. It returns nil when err carries no Quartz code.
func ParseProgramError(err error) *ProgramError {
	if err == nil {
		return nil
	}
	var programErr *ProgramError
	if errors.As(err, &programErr) {
		return programErr
	}
	match := customErrorPattern.FindStringSubmatch(err.Error())
	if match == nil {
		return nil
	}
	code, parseErr := strconv.ParseUint(match[1], 16, 32)
	if parseErr != nil {
		return nil
	}
	return LookupProgramError(uint32(code))
}

package constants

import (
	"math/big"

	"quartzgo/utils"
)

var ZERO = utils.BN(0)
var ONE = utils.BN(1)
var TEN = utils.BN(10)
var HUNDRED = utils.BN(100)

var PERCENTAGE_PRECISION_EXP = utils.BN(6)
var PERCENTAGE_PRECISION = utils.PowX(TEN, PERCENTAGE_PRECISION_EXP)

var PRICE_PRECISION_EXP = utils.BN(6)
var PRICE_PRECISION = utils.PowX(TEN, PRICE_PRECISION_EXP)

var QUOTE_PRECISION_EXP = utils.BN(6)
var QUOTE_PRECISION = utils.PowX(TEN, QUOTE_PRECISION_EXP)

var SPOT_MARKET_WEIGHT_PRECISION = utils.BN(10000)
var SPOT_MARKET_CUMULATIVE_INTEREST_PRECISION = utils.BN(10_000_000_000)
var SPOT_MARKET_BALANCE_PRECISION_EXP = utils.BN(9)
var SPOT_MARKET_UTILIZATION_PRECISION = utils.BN(1_000_000)
var SPOT_MARKET_RATE_PRECISION = utils.BN(1_000_000)
var SPOT_MARKET_IMF_PRECISION = utils.BN(1_000_000)

// AMM_RESERVE_PRECISION is the size precision the IMF weight curves are defined at.
var AMM_RESERVE_PRECISION_EXP = utils.BN(9)
var AMM_RESERVE_PRECISION = utils.PowX(TEN, AMM_RESERVE_PRECISION_EXP)

// Weights are expressed as whole percentages at the public API and as
// SPOT_MARKET_WEIGHT_PRECISION internally.
var WEIGHT_PERCENT_TO_PRECISION = utils.DivX(SPOT_MARKET_WEIGHT_PRECISION, HUNDRED)

const MIN_LIABILITY_WEIGHT_PERCENT = 100
const MAX_ASSET_WEIGHT_PERCENT = 100
const MAX_HEALTH = 100

const USDC_DECIMALS = 6

// QUARTZ_HEALTH_BUFFER is the health normalisation of older program
// revisions. The current program reports Drift health unchanged.
const QUARTZ_HEALTH_BUFFER = 0

const QUOTE_SPOT_MARKET_INDEX = 0
const SOL_SPOT_MARKET_INDEX = 1

const DRIFT_SUB_ACCOUNT_ID uint16 = 0
const DRIFT_SPOT_POSITION_COUNT = 8

const PYTH_DEFAULT_SHARD uint16 = 0

const CCTP_DOMAIN_BASE uint32 = 6

const DEFAULT_COMPUTE_UNIT_LIMIT uint32 = 400_000
const DEFAULT_COMPUTE_UNIT_PRICE uint64 = 1_000_000

func TenPow(decimals uint32) *big.Int {
	return utils.PowX(TEN, utils.BN(decimals))
}

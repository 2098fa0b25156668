// Package config loads the YAML configuration shared by the CLI and
// embedding services. Values from the environment, including a .env file
// in the working directory, override the file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"quartzgo/accounts"
	"quartzgo/connection"
	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/logger"
	"quartzgo/priorityFee"
	"quartzgo/quartz"
	"quartzgo/retry"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	ENV_PREFIX               = "QUARTZ_"
	DEVNET_RPC_HOST          = "api.devnet.solana.com"
	MAINNET_RPC_HOST         = "api.mainnet-beta.solana.com"
	DEFAULT_REQUESTS_PER_SEC = 10
	DEFAULT_REQUESTS_BURST   = 10
)

type RateLimitConfig struct {
	// Rps of zero disables rate limiting.
	Rps   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type Config struct {
	Env                 constants.Env      `yaml:"env"`
	Rpc                 connection.Config  `yaml:"rpc"`
	Commitment          rpc.CommitmentType `yaml:"commitment"`
	QuartzProgramId     string             `yaml:"quartzProgramId"`
	AddressLookupTable  string             `yaml:"addressLookupTable"`
	SpendFeeDestination string             `yaml:"spendFeeDestination"`
	HealthBuffer        int                `yaml:"healthBuffer"`
	Retry               retry.Policy       `yaml:"retry"`
	RateLimit           RateLimitConfig    `yaml:"rateLimit"`
	PriorityFee         priorityFee.Config `yaml:"priorityFee"`
	JupiterUrl          string             `yaml:"jupiterUrl"`
	Log                 logger.Config      `yaml:"log"`
}

func Default(env constants.Env) *Config {
	return &Config{
		Env: env,
		Rpc: connection.Config{
			Host:     utils.TT(env == constants.EnvMainnetBeta, MAINNET_RPC_HOST, DEVNET_RPC_HOST),
			IsSecure: true,
		},
		Commitment:         rpc.CommitmentConfirmed,
		QuartzProgramId:    constants.QUARTZ_PROGRAM_ID.String(),
		AddressLookupTable: constants.QUARTZ_ADDRESS_TABLE.String(),
		Retry:              retry.DefaultPolicy,
		RateLimit:          RateLimitConfig{Rps: DEFAULT_REQUESTS_PER_SEC, Burst: DEFAULT_REQUESTS_BURST},
		PriorityFee:        priorityFee.DefaultConfig,
		Log:                logger.DefaultConfig,
	}
}

// Load reads path, applies QUARTZ_* overrides and fills what is still
// unset from Default for the resulting env. An empty path configures from
// the environment alone.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.KindInvalidInput, op, err)
	}

	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, errs.NotFound(op, "config file %s does not exist", path)
			}
			return nil, errs.Wrap(errs.KindInvalidInput, op, err)
		}
		if err = yaml.Unmarshal(data, config); err != nil {
			return nil, errs.Wrap(errs.KindInvalidInput, op, err)
		}
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.fillDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func envValue(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(ENV_PREFIX + key))
	return value, value != ""
}

func (p *Config) applyEnv() error {
	const op = "config.applyEnv"
	if value, ok := envValue("ENV"); ok {
		p.Env = constants.Env(value)
	}
	if value, ok := envValue("RPC_HOST"); ok {
		p.Rpc.Host = value
	}
	if value, ok := envValue("RPC_TOKEN"); ok {
		p.Rpc.Token = value
	}
	if value, ok := envValue("RPC_SECURE"); ok {
		secure, err := strconv.ParseBool(value)
		if err != nil {
			return errs.InvalidInput(op, "%sRPC_SECURE: %v", ENV_PREFIX, err)
		}
		p.Rpc.IsSecure = secure
	}
	if value, ok := envValue("SPEND_FEE_DESTINATION"); ok {
		p.SpendFeeDestination = value
	}
	if value, ok := envValue("HELIUS_URL"); ok {
		p.PriorityFee.Method = priorityFee.MethodHelius
		p.PriorityFee.HeliusUrl = value
	}
	if value, ok := envValue("JUPITER_URL"); ok {
		p.JupiterUrl = value
	}
	if value, ok := envValue("LOG_LEVEL"); ok {
		p.Log.Level = value
	}
	return nil
}

// fillDefaults copies every zero field from Default(p.Env). A file that
// only names mainnet-beta gets the mainnet host.
func (p *Config) fillDefaults() {
	if p.Env == "" {
		p.Env = constants.EnvDevnet
	}
	defaults := Default(p.Env)
	if p.Rpc.Host == "" {
		p.Rpc.Host = defaults.Rpc.Host
		p.Rpc.IsSecure = defaults.Rpc.IsSecure
	}
	p.Commitment = utils.TT(p.Commitment == "", defaults.Commitment, p.Commitment)
	p.QuartzProgramId = utils.TT(p.QuartzProgramId == "", defaults.QuartzProgramId, p.QuartzProgramId)
	p.AddressLookupTable = utils.TT(p.AddressLookupTable == "", defaults.AddressLookupTable, p.AddressLookupTable)
	if p.Retry.MaxAttempts == 0 {
		p.Retry = defaults.Retry
	}
	if p.RateLimit == (RateLimitConfig{}) {
		p.RateLimit = defaults.RateLimit
	}
	p.PriorityFee.Method = utils.TT(p.PriorityFee.Method == "", defaults.PriorityFee.Method, p.PriorityFee.Method)
	p.Log.Level = utils.TT(p.Log.Level == "", defaults.Log.Level, p.Log.Level)
	p.Log.TimeFormat = utils.TT(p.Log.TimeFormat == "", defaults.Log.TimeFormat, p.Log.TimeFormat)
}

func (p *Config) Validate() error {
	const op = "config.Validate"
	if _, exists := constants.SpotMarkets[p.Env]; !exists {
		return errs.InvalidParameter(op, "unknown env %q", p.Env)
	}
	if err := p.Rpc.Validate(); err != nil {
		return err
	}
	for name, value := range map[string]string{
		"quartzProgramId":    p.QuartzProgramId,
		"addressLookupTable": p.AddressLookupTable,
	} {
		if _, err := solana.PublicKeyFromBase58(value); err != nil {
			return errs.InvalidParameter(op, "%s %q: %v", name, value, err)
		}
	}
	if p.SpendFeeDestination != "" {
		if _, err := solana.PublicKeyFromBase58(p.SpendFeeDestination); err != nil {
			return errs.InvalidParameter(op, "spendFeeDestination %q: %v", p.SpendFeeDestination, err)
		}
	}
	if p.HealthBuffer < 0 || p.HealthBuffer >= constants.MAX_HEALTH {
		return errs.InvalidParameter(op, "healthBuffer %d must be in [0, 100)", p.HealthBuffer)
	}
	switch p.PriorityFee.Method {
	case priorityFee.MethodSolana:
	case priorityFee.MethodHelius:
		if p.PriorityFee.HeliusUrl == "" {
			return errs.InvalidParameter(op, "priorityFee.heliusUrl is required for the helius method")
		}
	default:
		return errs.InvalidParameter(op, "unknown priority fee method %q", p.PriorityFee.Method)
	}
	return nil
}

func (p *Config) FetcherConfig() accounts.RpcFetcherConfig {
	return accounts.RpcFetcherConfig{
		Commitment:        p.Commitment,
		Retry:             p.Retry,
		RequestsPerSecond: p.RateLimit.Rps,
		Burst:             p.RateLimit.Burst,
	}
}

// ClientConfig assumes a validated config.
func (p *Config) ClientConfig(fetcher accounts.Fetcher, log zerolog.Logger) quartz.ClientConfig {
	config := quartz.ClientConfig{
		Env:                p.Env,
		Fetcher:            fetcher,
		Logger:             log,
		ProgramId:          solana.MPK(p.QuartzProgramId),
		AddressLookupTable: solana.MPK(p.AddressLookupTable),
		HealthBuffer:       p.HealthBuffer,
	}
	if p.SpendFeeDestination != "" {
		config.SpendFeeDestination = solana.MPK(p.SpendFeeDestination)
	}
	return config
}

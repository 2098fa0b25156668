package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/priorityFee"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into dir for the test so Load sees its .env, if any.
func chdir(t *testing.T, dir string) {
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(previous) })
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "quartz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// go test --run TestLoad

func TestLoad(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeConfig(t, `
env: mainnet-beta
healthBuffer: 5
retry:
  maxAttempts: 3
  baseDelay: 100ms
  maxDelay: 2s
priorityFee:
  method: solana
  multiplier: 1.5
log:
  level: debug
`)
	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, constants.EnvMainnetBeta, config.Env)
	assert.Equal(t, MAINNET_RPC_HOST, config.Rpc.Host)
	assert.True(t, config.Rpc.IsSecure)
	assert.Equal(t, uint(3), config.Retry.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, config.Retry.BaseDelay)
	assert.Equal(t, 1.5, config.PriorityFee.Multiplier)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, float64(DEFAULT_REQUESTS_PER_SEC), config.RateLimit.Rps)

	fetcherConfig := config.FetcherConfig()
	assert.Equal(t, config.Retry, fetcherConfig.Retry)

	client := config.ClientConfig(nil, zerolog.Nop())
	assert.Equal(t, constants.QUARTZ_PROGRAM_ID, client.ProgramId)
	assert.Equal(t, 5, client.HealthBuffer)
	assert.True(t, client.SpendFeeDestination.IsZero())
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	destination := solana.NewWallet().PublicKey()
	t.Setenv("QUARTZ_RPC_HOST", "127.0.0.1:8899")
	t.Setenv("QUARTZ_RPC_SECURE", "false")
	t.Setenv("QUARTZ_SPEND_FEE_DESTINATION", destination.String())
	t.Setenv("QUARTZ_HELIUS_URL", "https://mainnet.helius-rpc.com/?api-key=x")

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, constants.EnvDevnet, config.Env)
	assert.Equal(t, "http://127.0.0.1:8899", config.Rpc.GetRpcEndpoint())
	assert.Equal(t, priorityFee.MethodHelius, config.PriorityFee.Method)
	assert.Equal(t, destination, config.ClientConfig(nil, zerolog.Nop()).SpendFeeDestination)

	t.Setenv("QUARTZ_RPC_SECURE", "sometimes")
	_, err = Load("")
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QUARTZ_LOG_LEVEL=warn\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("QUARTZ_LOG_LEVEL") })

	config, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	_, err = Load(writeConfig(t, "env: ["))
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))

	_, err = Load(writeConfig(t, "env: localnet"))
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(err))
}

func TestValidate(t *testing.T) {
	config := Default(constants.EnvDevnet)
	require.NoError(t, config.Validate())

	config.HealthBuffer = 100
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(config.Validate()))

	config = Default(constants.EnvDevnet)
	config.QuartzProgramId = "not-a-key"
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(config.Validate()))

	config = Default(constants.EnvDevnet)
	config.PriorityFee.Method = priorityFee.MethodHelius
	assert.Equal(t, errs.KindInvalidParameter, errs.KindOf(config.Validate()))

	config = Default(constants.EnvDevnet)
	config.Rpc.Host = ""
	assert.Error(t, config.Validate())
}

package constants

import (
	"fmt"
	"slices"

	"github.com/gagliardetto/solana-go"
)

type Env string

const (
	EnvDevnet      Env = "devnet"
	EnvMainnetBeta Env = "mainnet-beta"
)

// Market is a spot market supported by Quartz. Weights are at
// SPOT_MARKET_WEIGHT_PRECISION.
type Market struct {
	MarketIndex                uint16
	Name                       string
	Mint                       solana.PublicKey
	Decimals                   uint32
	PythFeedId                 string
	TokenProgram               solana.PublicKey
	InitialAssetWeight         uint32
	MaintenanceAssetWeight     uint32
	InitialLiabilityWeight     uint32
	MaintenanceLiabilityWeight uint32
	ImfFactor                  uint32
}

func (m *Market) IsSol() bool {
	return m.Mint.Equals(solana.SolMint)
}

var MainnetSpotMarkets = []Market{
	{
		MarketIndex:                0,
		Name:                       "USDC",
		Mint:                       USDC_MINT_MAINNET,
		Decimals:                   6,
		PythFeedId:                 "0xeaa020c61cc479712813461ce153894a96a6c00b21ed0cfc2798d1f9a9e9c94a",
		TokenProgram:               solana.TokenProgramID,
		InitialAssetWeight:         10000,
		MaintenanceAssetWeight:     10000,
		InitialLiabilityWeight:     10000,
		MaintenanceLiabilityWeight: 10000,
	},
	{
		MarketIndex:                1,
		Name:                       "SOL",
		Mint:                       solana.SolMint,
		Decimals:                   9,
		PythFeedId:                 "0xef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d",
		TokenProgram:               solana.TokenProgramID,
		InitialAssetWeight:         8000,
		MaintenanceAssetWeight:     9000,
		InitialLiabilityWeight:     12000,
		MaintenanceLiabilityWeight: 11000,
	},
	{
		MarketIndex:                3,
		Name:                       "wBTC",
		Mint:                       solana.MustPublicKeyFromBase58("3NZ9JMVBmGAqocybic2c7LQCJScmgsAZ6vQqTDzcqmJh"),
		Decimals:                   8,
		PythFeedId:                 "0xc9d8b075a5c69303365ae23633d4e085199bf5c520a3b90fed1322a0342ffc33",
		TokenProgram:               solana.TokenProgramID,
		InitialAssetWeight:         8000,
		MaintenanceAssetWeight:     9000,
		InitialLiabilityWeight:     12000,
		MaintenanceLiabilityWeight: 11000,
	},
	{
		MarketIndex:                4,
		Name:                       "wETH",
		Mint:                       solana.MustPublicKeyFromBase58("7vfCXTUXx5WJV5JADk17DUJ4ksgau7utNKj4b963voxs"),
		Decimals:                   8,
		PythFeedId:                 "0xff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace",
		TokenProgram:               solana.TokenProgramID,
		InitialAssetWeight:         8000,
		MaintenanceAssetWeight:     9000,
		InitialLiabilityWeight:     12000,
		MaintenanceLiabilityWeight: 11000,
	},
	{
		MarketIndex:                5,
		Name:                       "USDT",
		Mint:                       solana.MustPublicKeyFromBase58("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"),
		Decimals:                   6,
		PythFeedId:                 "0x2b89b9dc8fdf9f34709a5b106b472f0f39bb6ca9ce04b0fd7f2e971688e2e53b",
		TokenProgram:               solana.TokenProgramID,
		InitialAssetWeight:         9000,
		MaintenanceAssetWeight:     9500,
		InitialLiabilityWeight:     11000,
		MaintenanceLiabilityWeight: 10500,
	},
	{
		MarketIndex:                22,
		Name:                       "PYUSD",
		Mint:                       solana.MustPublicKeyFromBase58("2b1kV6DkPAnxd5ixfnxCpjxmKwqjjaYmCZfHsFu24GXo"),
		Decimals:                   6,
		PythFeedId:                 "0xc1da1b73d7f01e7ddd54b3766cf7fcd644395ad14f70aa706ec5384c59e76692",
		TokenProgram:               solana.Token2022ProgramID,
		InitialAssetWeight:         9000,
		MaintenanceAssetWeight:     9500,
		InitialLiabilityWeight:     11000,
		MaintenanceLiabilityWeight: 10500,
	},
}

var DevnetSpotMarkets = []Market{
	{
		MarketIndex:                0,
		Name:                       "USDC",
		Mint:                       USDC_MINT_DEVNET,
		Decimals:                   6,
		PythFeedId:                 "0xeaa020c61cc479712813461ce153894a96a6c00b21ed0cfc2798d1f9a9e9c94a",
		TokenProgram:               solana.TokenProgramID,
		InitialAssetWeight:         10000,
		MaintenanceAssetWeight:     10000,
		InitialLiabilityWeight:     10000,
		MaintenanceLiabilityWeight: 10000,
	},
	{
		MarketIndex:                1,
		Name:                       "SOL",
		Mint:                       solana.SolMint,
		Decimals:                   9,
		PythFeedId:                 "0xef0d8b6fda2ceba41da15d4095d1da392a0d2f8ed0c6c7bc0f4cfac8c280b56d",
		TokenProgram:               solana.TokenProgramID,
		InitialAssetWeight:         8000,
		MaintenanceAssetWeight:     9000,
		InitialLiabilityWeight:     12000,
		MaintenanceLiabilityWeight: 11000,
	},
}

var SpotMarkets = map[Env][]Market{
	EnvDevnet:      DevnetSpotMarkets,
	EnvMainnetBeta: MainnetSpotMarkets,
}

func FindMarket(env Env, marketIndex uint16) (*Market, bool) {
	markets := SpotMarkets[env]
	idx := slices.IndexFunc(markets, func(m Market) bool {
		return m.MarketIndex == marketIndex
	})
	if idx < 0 {
		return nil, false
	}
	return &markets[idx], true
}

func FindMarketByMint(env Env, mint solana.PublicKey) (*Market, bool) {
	markets := SpotMarkets[env]
	idx := slices.IndexFunc(markets, func(m Market) bool {
		return m.Mint.Equals(mint)
	})
	if idx < 0 {
		return nil, false
	}
	return &markets[idx], true
}

func MarketIndices(env Env) []uint16 {
	var indices []uint16
	for _, market := range SpotMarkets[env] {
		indices = append(indices, market.MarketIndex)
	}
	return indices
}

func UsdcMint(env Env) solana.PublicKey {
	if env == EnvDevnet {
		return USDC_MINT_DEVNET
	}
	return USDC_MINT_MAINNET
}

// ValidateMarket checks weight ranges and that the initial tier is at
// least as strict as the maintenance tier.
func ValidateMarket(m Market) error {
	precision := uint32(SPOT_MARKET_WEIGHT_PRECISION.Uint64())
	if m.InitialAssetWeight > precision || m.MaintenanceAssetWeight > precision {
		return fmt.Errorf("market %d: asset weight above %d", m.MarketIndex, precision)
	}
	if m.InitialLiabilityWeight < precision || m.MaintenanceLiabilityWeight < precision {
		return fmt.Errorf("market %d: liability weight below %d", m.MarketIndex, precision)
	}
	if m.InitialAssetWeight > m.MaintenanceAssetWeight {
		return fmt.Errorf("market %d: initial asset weight looser than maintenance", m.MarketIndex)
	}
	if m.InitialLiabilityWeight < m.MaintenanceLiabilityWeight {
		return fmt.Errorf("market %d: initial liability weight looser than maintenance", m.MarketIndex)
	}
	return nil
}

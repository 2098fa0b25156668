package addresses

import (
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
)

type marketAddressKind uint8

const (
	marketAddressSpotMarket marketAddressKind = iota
	marketAddressSpotMarketVault
)

var cache = struct {
	sync.RWMutex
	m map[string]solana.PublicKey
}{m: make(map[string]solana.PublicKey)}

func cached(key string, derive func() solana.PublicKey) solana.PublicKey {
	cache.RLock()
	address, exists := cache.m[key]
	cache.RUnlock()
	if exists {
		return address
	}
	address = derive()
	cache.Lock()
	cache.m[key] = address
	cache.Unlock()
	return address
}

// GetSpotMarketAddress is a memoized GetSpotMarketPublicKey.
func GetSpotMarketAddress(programId solana.PublicKey, marketIndex uint16) solana.PublicKey {
	key := fmt.Sprintf("%s-%d-%d", programId, marketAddressSpotMarket, marketIndex)
	return cached(key, func() solana.PublicKey {
		return GetSpotMarketPublicKey(programId, marketIndex)
	})
}

// GetSpotMarketVaultAddress is a memoized GetSpotMarketVaultPublicKey.
func GetSpotMarketVaultAddress(programId solana.PublicKey, marketIndex uint16) solana.PublicKey {
	key := fmt.Sprintf("%s-%d-%d", programId, marketAddressSpotMarketVault, marketIndex)
	return cached(key, func() solana.PublicKey {
		return GetSpotMarketVaultPublicKey(programId, marketIndex)
	})
}

// GetOracleAddress is a memoized shard 0 Pyth price update address.
func GetOracleAddress(programId solana.PublicKey, feedId string) (solana.PublicKey, error) {
	key := fmt.Sprintf("%s-oracle-%s", programId, feedId)
	cache.RLock()
	address, exists := cache.m[key]
	cache.RUnlock()
	if exists {
		return address, nil
	}
	address, err := GetPythPriceUpdatePublicKey(programId, 0, feedId)
	if err != nil {
		return solana.PublicKey{}, err
	}
	cache.Lock()
	cache.m[key] = address
	cache.Unlock()
	return address, nil
}

package accounts

import (
	"crypto/sha256"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/iancoleman/strcase"
)

const DISCRIMINATOR_SIZE = 8

// TIME_LOCK_OWNER_OFFSET is where every time-locked order stores its owner.
const TIME_LOCK_OWNER_OFFSET = DISCRIMINATOR_SIZE

// VAULT_OWNER_OFFSET is where the vault stores its owner.
const VAULT_OWNER_OFFSET = DISCRIMINATOR_SIZE

func GetAccountFilter(accountName string) rpc.RPCFilter {
	hash := sha256.Sum256([]byte(fmt.Sprintf("account:%s", strcase.ToCamel(accountName))))
	hashCut := hash[0:DISCRIMINATOR_SIZE]
	return rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: 0,
			Bytes:  hashCut[:],
		},
	}
}

func GetVaultFilter() rpc.RPCFilter {
	return GetAccountFilter("Vault")
}

func GetWithdrawOrderFilter() rpc.RPCFilter {
	return GetAccountFilter("WithdrawOrder")
}

func GetSpendLimitsOrderFilter() rpc.RPCFilter {
	return GetAccountFilter("SpendLimitsOrder")
}

func GetSpendHoldFilter() rpc.RPCFilter {
	return GetAccountFilter("SpendHold")
}

func GetTimeLockOwnerFilter(owner solana.PublicKey) rpc.RPCFilter {
	return rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: TIME_LOCK_OWNER_OFFSET,
			Bytes:  owner[:],
		},
	}
}

func GetVaultOwnerFilter(owner solana.PublicKey) rpc.RPCFilter {
	return rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: VAULT_OWNER_OFFSET,
			Bytes:  owner[:],
		},
	}
}

// MatchesFilters applies memcmp and dataSize filters locally.
func MatchesFilters(data []byte, filters []rpc.RPCFilter) bool {
	for _, filter := range filters {
		if filter.DataSize != 0 && uint64(len(data)) != filter.DataSize {
			return false
		}
		if filter.Memcmp == nil {
			continue
		}
		offset := int(filter.Memcmp.Offset)
		want := []byte(filter.Memcmp.Bytes)
		if offset+len(want) > len(data) {
			return false
		}
		for i, b := range want {
			if data[offset+i] != b {
				return false
			}
		}
	}
	return true
}

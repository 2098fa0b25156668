package addresses

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

func findProgramAddress(seeds [][]byte, programId solana.PublicKey) (solana.PublicKey, uint8) {
	address, bumpSeed, err := solana.FindProgramAddress(seeds, programId)
	if err != nil {
		return solana.PublicKey{}, 0
	}
	return address, bumpSeed
}

func u16LE(value uint16) []byte {
	seed := make([]byte, 2)
	binary.LittleEndian.PutUint16(seed, value)
	return seed
}

func GetDriftStateAccountPublicKeyAndNonce(
	programId solana.PublicKey,
) (solana.PublicKey, uint8) {
	return findProgramAddress([][]byte{[]byte("drift_state")}, programId)
}

func GetDriftStateAccountPublicKey(
	programId solana.PublicKey,
) solana.PublicKey {
	address, _ := GetDriftStateAccountPublicKeyAndNonce(programId)
	return address
}

func GetUserAccountPublicKeyAndNonce(
	programId solana.PublicKey,
	authority solana.PublicKey,
	subAccountIds ...uint16,
) (solana.PublicKey, uint8) {
	var subAccountId uint16 = 0
	if len(subAccountIds) > 0 {
		subAccountId = subAccountIds[0]
	}
	return findProgramAddress(
		[][]byte{
			[]byte("user"),
			authority.Bytes(),
			u16LE(subAccountId),
		},
		programId,
	)
}

// GetUserAccountPublicKey derives the Drift user owned by authority. For
// Quartz the authority is the vault, not the wallet.
func GetUserAccountPublicKey(
	programId solana.PublicKey,
	authority solana.PublicKey,
	subAccountIds ...uint16,
) solana.PublicKey {
	address, _ := GetUserAccountPublicKeyAndNonce(programId, authority, subAccountIds...)
	return address
}

func GetUserStatsAccountPublicKey(
	programId solana.PublicKey,
	authority solana.PublicKey,
) solana.PublicKey {
	address, _ := findProgramAddress(
		[][]byte{[]byte("user_stats"), authority.Bytes()},
		programId,
	)
	return address
}

func GetSpotMarketPublicKey(
	programId solana.PublicKey,
	marketIndex uint16,
) solana.PublicKey {
	address, _ := findProgramAddress(
		[][]byte{[]byte("spot_market"), u16LE(marketIndex)},
		programId,
	)
	return address
}

func GetSpotMarketVaultPublicKey(
	programId solana.PublicKey,
	marketIndex uint16,
) solana.PublicKey {
	address, _ := findProgramAddress(
		[][]byte{[]byte("spot_market_vault"), u16LE(marketIndex)},
		programId,
	)
	return address
}

func GetDriftSignerPublicKey(programId solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("drift_signer")}, programId)
	return address
}

package addresses

import (
	"github.com/gagliardetto/solana-go"
)

func GetVaultPublicKeyAndNonce(
	programId solana.PublicKey,
	owner solana.PublicKey,
) (solana.PublicKey, uint8) {
	return findProgramAddress([][]byte{[]byte("vault"), owner.Bytes()}, programId)
}

func GetVaultPublicKey(programId solana.PublicKey, owner solana.PublicKey) solana.PublicKey {
	address, _ := GetVaultPublicKeyAndNonce(programId, owner)
	return address
}

// GetVaultSplPublicKey is the vault's token account for mint, seeded by the
// vault address rather than the owner.
func GetVaultSplPublicKey(
	programId solana.PublicKey,
	vault solana.PublicKey,
	mint solana.PublicKey,
) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{vault.Bytes(), mint.Bytes()}, programId)
	return address
}

func GetSpendMulePublicKey(programId solana.PublicKey, owner solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("spend_mule"), owner.Bytes()}, programId)
	return address
}

func GetWithdrawMulePublicKey(programId solana.PublicKey, owner solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("withdraw_mule"), owner.Bytes()}, programId)
	return address
}

func GetCollateralRepayLedgerPublicKey(programId solana.PublicKey, owner solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("collateral_repay_ledger"), owner.Bytes()}, programId)
	return address
}

func GetBridgeRentPayerPublicKey(programId solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("bridge_rent_payer")}, programId)
	return address
}

func GetInitRentPayerPublicKey(programId solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("init_rent_payer")}, programId)
	return address
}

func GetTimeLockRentPayerPublicKey(programId solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("time_lock_rent_payer")}, programId)
	return address
}

func GetSpendHoldVaultPublicKey(programId solana.PublicKey) solana.PublicKey {
	timeLockRentPayer := GetTimeLockRentPayerPublicKey(programId)
	address, _ := findProgramAddress([][]byte{[]byte("spend_hold"), timeLockRentPayer.Bytes()}, programId)
	return address
}

// GetEventAuthorityPublicKey is the Anchor event-CPI authority of any program.
func GetEventAuthorityPublicKey(programId solana.PublicKey) solana.PublicKey {
	address, _ := findProgramAddress([][]byte{[]byte("__event_authority")}, programId)
	return address
}

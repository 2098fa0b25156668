package tx

import (
	"quartzgo/errs"
	"quartzgo/quartz"

	"github.com/gagliardetto/solana-go"
	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
	computebudget "github.com/gagliardetto/solana-go/programs/compute-budget"
)

// ComputeBudgetInstructions returns the limit and price instructions that
// differ from the runtime defaults.
func ComputeBudgetInstructions(params TxParams) []solana.Instruction {
	var ixs []solana.Instruction
	if params.ComputeUnits != 0 && params.ComputeUnits != DEFAULT_COMPUTE_UNITS {
		ixs = append(ixs, computebudget.NewSetComputeUnitLimitInstructionBuilder().SetUnits(params.ComputeUnits).Build())
	}
	if params.ComputeUnitsPrice != 0 {
		ixs = append(ixs, computebudget.NewSetComputeUnitPriceInstructionBuilder().SetMicroLamports(params.ComputeUnitsPrice).Build())
	}
	return ixs
}

// BuildTransaction assembles an unsigned v0 transaction for bundle. Every
// lookup table the bundle names must be among lookupTables.
func BuildTransaction(
	bundle *quartz.Bundle,
	payer solana.PublicKey,
	blockhash solana.Hash,
	lookupTables []addresslookuptable.KeyedAddressLookupTable,
	params TxParams,
) (*solana.Transaction, error) {
	const op = "tx.BuildTransaction"
	if bundle == nil || len(bundle.Instructions) == 0 {
		return nil, errs.InvalidParameter(op, "bundle has no instructions")
	}
	if payer.IsZero() {
		return nil, errs.InvalidParameter(op, "fee payer is required")
	}

	addressTables := make(map[solana.PublicKey]solana.PublicKeySlice, len(lookupTables))
	for _, lookupTable := range lookupTables {
		addressTables[lookupTable.Key] = lookupTable.State.Addresses
	}
	for _, key := range bundle.LookupTables {
		if _, exists := addressTables[key]; !exists {
			return nil, errs.InvalidParameter(op, "lookup table %s was not resolved", key)
		}
	}

	transactionBuilder := solana.NewTransactionBuilder().
		SetFeePayer(payer).
		SetRecentBlockHash(blockhash).
		WithOpt(solana.TransactionAddressTables(addressTables))
	for _, instruction := range ComputeBudgetInstructions(params) {
		transactionBuilder.AddInstruction(instruction)
	}
	for _, instruction := range bundle.Instructions {
		transactionBuilder.AddInstruction(instruction)
	}
	transaction, err := transactionBuilder.Build()
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidInput, op, err)
	}
	return transaction, nil
}

// WritableAccounts lists each writable account once, in first-use order.
func WritableAccounts(instructions []solana.Instruction) []solana.PublicKey {
	seen := make(map[solana.PublicKey]bool)
	var writable []solana.PublicKey
	for _, instruction := range instructions {
		for _, meta := range instruction.Accounts() {
			if meta.IsWritable && !seen[meta.PublicKey] {
				seen[meta.PublicKey] = true
				writable = append(writable, meta.PublicKey)
			}
		}
	}
	return writable
}

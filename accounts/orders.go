package accounts

import (
	"context"

	"quartzgo/addresses"
	"quartzgo/errs"
	"quartzgo/lib/quartz"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// KeyedWithdrawOrder pairs a decoded order with its address, which the
// fulfil instruction needs.
type KeyedWithdrawOrder struct {
	PublicKey solana.PublicKey
	Order     *quartz.WithdrawOrder
}

func fetchDecoded[T any](
	ctx context.Context,
	fetcher Fetcher,
	address solana.PublicKey,
	decode func([]byte) (*T, error),
) (*T, error) {
	data, err := fetcher.FetchAccount(ctx, address)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func FetchVault(ctx context.Context, fetcher Fetcher, programId solana.PublicKey, owner solana.PublicKey) (*quartz.Vault, error) {
	vault, err := fetchDecoded(ctx, fetcher, addresses.GetVaultPublicKey(programId, owner), quartz.DecodeVault)
	if errs.IsKind(err, errs.KindNotFound) {
		return nil, errs.NotFound("accounts.FetchVault", "no Quartz account for %s", owner)
	}
	return vault, err
}

// FetchMultipleVaults returns one entry per owner, nil where no vault exists.
func FetchMultipleVaults(ctx context.Context, fetcher Fetcher, programId solana.PublicKey, owners []solana.PublicKey) ([]*quartz.Vault, error) {
	keys := make([]solana.PublicKey, len(owners))
	for i, owner := range owners {
		keys[i] = addresses.GetVaultPublicKey(programId, owner)
	}
	datas, err := fetcher.FetchAccounts(ctx, keys)
	if err != nil {
		return nil, err
	}
	vaults := make([]*quartz.Vault, len(owners))
	for i, data := range datas {
		if data == nil {
			continue
		}
		if vaults[i], err = quartz.DecodeVault(data); err != nil {
			return nil, err
		}
	}
	return vaults, nil
}

func FetchWithdrawOrder(ctx context.Context, fetcher Fetcher, address solana.PublicKey) (*quartz.WithdrawOrder, error) {
	return fetchDecoded(ctx, fetcher, address, quartz.DecodeWithdrawOrder)
}

func FetchSpendLimitsOrder(ctx context.Context, fetcher Fetcher, address solana.PublicKey) (*quartz.SpendLimitsOrder, error) {
	return fetchDecoded(ctx, fetcher, address, quartz.DecodeSpendLimitsOrder)
}

func FetchSpendHold(ctx context.Context, fetcher Fetcher, address solana.PublicKey) (*quartz.SpendHold, error) {
	return fetchDecoded(ctx, fetcher, address, quartz.DecodeSpendHold)
}

func FetchCollateralRepayLedger(ctx context.Context, fetcher Fetcher, programId solana.PublicKey, owner solana.PublicKey) (*quartz.CollateralRepayLedger, error) {
	return fetchDecoded(ctx, fetcher, addresses.GetCollateralRepayLedgerPublicKey(programId, owner), quartz.DecodeCollateralRepayLedger)
}

// FetchOpenWithdrawOrders lists every withdraw order owned by owner that has
// not been fulfilled yet.
func FetchOpenWithdrawOrders(ctx context.Context, fetcher Fetcher, programId solana.PublicKey, owner solana.PublicKey) ([]KeyedWithdrawOrder, error) {
	keyed, err := fetcher.FetchProgramAccounts(ctx, programId, []rpc.RPCFilter{
		GetWithdrawOrderFilter(),
		GetTimeLockOwnerFilter(owner),
	})
	if err != nil {
		return nil, err
	}
	orders := make([]KeyedWithdrawOrder, 0, len(keyed))
	for _, account := range keyed {
		order, err := quartz.DecodeWithdrawOrder(account.Data)
		if err != nil {
			return nil, err
		}
		if !order.TimeLock.Owner.Equals(owner) {
			continue
		}
		orders = append(orders, KeyedWithdrawOrder{PublicKey: account.PublicKey, Order: order})
	}
	return orders, nil
}

// WithdrawOrders strips the addresses off keyed orders.
func WithdrawOrders(keyed []KeyedWithdrawOrder) []quartz.WithdrawOrder {
	orders := make([]quartz.WithdrawOrder, len(keyed))
	for i, k := range keyed {
		orders[i] = *k.Order
	}
	return orders
}

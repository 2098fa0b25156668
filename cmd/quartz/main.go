// Command quartz inspects Quartz vaults and prints unsigned transactions
// for an external signer.
//
//	quartz [-config quartz.yaml] health <owner>
//	quartz [-config quartz.yaml] limits [-reduce-only] <owner>
//	quartz [-config quartz.yaml] orders <owner>
//	quartz [-config quartz.yaml] deposit [-reduce-only] <owner> <marketIndex> <amountBaseUnits>
package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"quartzgo/accounts"
	"quartzgo/config"
	"quartzgo/connection"
	"quartzgo/constants"
	"quartzgo/errs"
	"quartzgo/logger"
	"quartzgo/math"
	"quartzgo/priorityFee"
	"quartzgo/quartz"
	"quartzgo/tx"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, flag.ErrHelp) || errs.KindOf(err) == errs.KindInvalidParameter {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("quartz", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return errs.InvalidParameter("quartz", "expected a command: health, limits, orders or deposit")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log := logger.NewWithConfig(cfg.Log)

	manager := connection.CreateManager()
	manager.AddConfig(cfg.Rpc)
	rpcClient, err := manager.GetRpc()
	if err != nil {
		return err
	}
	fetcher := accounts.NewRpcFetcher(rpcClient, cfg.FetcherConfig(), log)
	client, err := quartz.NewClient(cfg.ClientConfig(fetcher, log))
	if err != nil {
		return err
	}
	estimator, err := priorityFee.NewEstimator(cfg.PriorityFee, rpcClient)
	if err != nil {
		return err
	}

	app := &app{
		client:  client,
		builder: tx.NewBuilder(rpcClient, tx.NewLookupTableCache(fetcher), estimator, log),
		out:     out,
		logger:  log,
	}
	return app.runCommand(ctx, flags.Arg(0), flags.Args()[1:])
}

type app struct {
	client  *quartz.Client
	builder *tx.Builder
	out     io.Writer
	logger  zerolog.Logger
}

func (p *app) runCommand(ctx context.Context, name string, args []string) error {
	switch name {
	case "health":
		return p.health(ctx, args)
	case "limits":
		return p.limits(ctx, args)
	case "orders":
		return p.orders(ctx, args)
	case "deposit":
		return p.deposit(ctx, args)
	}
	return errs.InvalidParameter("quartz", "unknown command %q", name)
}

func parseOwner(op string, flags *flag.FlagSet, args []string, extra int) (solana.PublicKey, error) {
	if err := flags.Parse(args); err != nil {
		return solana.PublicKey{}, err
	}
	if flags.NArg() != 1+extra {
		return solana.PublicKey{}, errs.InvalidParameter(op, "expected %d arguments, got %d", 1+extra, flags.NArg())
	}
	owner, err := solana.PublicKeyFromBase58(flags.Arg(0))
	if err != nil {
		return solana.PublicKey{}, errs.InvalidParameter(op, "owner %q: %v", flags.Arg(0), err)
	}
	return owner, nil
}

func formatAmount(value *big.Int, decimals uint32) string {
	return math.BaseUnitsToDecimal(value, decimals).String()
}

func (p *app) health(ctx context.Context, args []string) error {
	const op = "quartz.health"
	owner, err := parseOwner(op, flag.NewFlagSet("health", flag.ContinueOnError), args, 0)
	if err != nil {
		return err
	}
	user, err := p.client.GetQuartzAccount(ctx, owner)
	if err != nil {
		return err
	}
	health, err := user.GetHealth()
	if err != nil {
		return err
	}
	collateral, err := user.GetTotalCollateralValue(ctx, nil)
	if err != nil {
		return err
	}
	weighted, err := user.GetTotalWeightedCollateralValue(ctx, nil)
	if err != nil {
		return err
	}
	margin, err := user.GetMarginRequirement(ctx, nil)
	if err != nil {
		return err
	}
	credit, err := user.GetAvailableCreditUsdcBaseUnits(ctx, nil)
	if err != nil {
		return err
	}
	spendable, err := user.GetSpendableBalanceUsdcBaseUnits(ctx, nil)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "vault\t%s\n", user.Vault)
	fmt.Fprintf(writer, "health\t%d\n", health)
	fmt.Fprintf(writer, "collateral\t%s USDC\n", formatAmount(collateral, constants.USDC_DECIMALS))
	fmt.Fprintf(writer, "weighted collateral\t%s USDC\n", formatAmount(weighted, constants.USDC_DECIMALS))
	fmt.Fprintf(writer, "margin requirement\t%s USDC\n", formatAmount(margin, constants.USDC_DECIMALS))
	fmt.Fprintf(writer, "available credit\t%s USDC\n", formatAmount(credit, constants.USDC_DECIMALS))
	fmt.Fprintf(writer, "spendable\t%s USDC\n", formatAmount(spendable, constants.USDC_DECIMALS))
	return writer.Flush()
}

func (p *app) limits(ctx context.Context, args []string) error {
	const op = "quartz.limits"
	flags := flag.NewFlagSet("limits", flag.ContinueOnError)
	reduceOnly := flags.Bool("reduce-only", false, "limit withdrawals to existing deposits")
	owner, err := parseOwner(op, flags, args, 0)
	if err != nil {
		return err
	}
	user, err := p.client.GetQuartzAccount(ctx, owner)
	if err != nil {
		return err
	}
	indices := constants.MarketIndices(p.client.Env())
	balances, err := user.GetMultipleTokenBalances(ctx, indices, nil)
	if err != nil {
		return err
	}
	limits, err := user.GetMultipleWithdrawalLimits(ctx, indices, *reduceOnly, nil)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "market\tname\tbalance\twithdrawal limit")
	for _, marketIndex := range indices {
		market, _ := constants.FindMarket(p.client.Env(), marketIndex)
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n",
			marketIndex,
			market.Name,
			formatAmount(balances[marketIndex], market.Decimals),
			formatAmount(limits[marketIndex], market.Decimals),
		)
	}
	return writer.Flush()
}

func (p *app) orders(ctx context.Context, args []string) error {
	const op = "quartz.orders"
	owner, err := parseOwner(op, flag.NewFlagSet("orders", flag.ContinueOnError), args, 0)
	if err != nil {
		return err
	}
	orders, err := p.client.GetOpenWithdrawOrders(ctx, owner)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		_, err = fmt.Fprintln(p.out, "no open withdraw orders")
		return err
	}

	writer := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "order\tmarket\tamount\treduce only\trelease slot\tdestination")
	for _, order := range orders {
		amount := strconv.FormatUint(order.Order.AmountBaseUnits, 10)
		if market, ok := constants.FindMarket(p.client.Env(), order.Order.DriftMarketIndex); ok {
			amount = formatAmount(new(big.Int).SetUint64(order.Order.AmountBaseUnits), market.Decimals) + " " + market.Name
		}
		fmt.Fprintf(writer, "%s\t%d\t%s\t%t\t%d\t%s\n",
			order.PublicKey,
			order.Order.DriftMarketIndex,
			amount,
			order.Order.ReduceOnly,
			order.Order.TimeLock.ReleaseSlot,
			order.Order.Destination,
		)
	}
	return writer.Flush()
}

func (p *app) deposit(ctx context.Context, args []string) error {
	const op = "quartz.deposit"
	flags := flag.NewFlagSet("deposit", flag.ContinueOnError)
	reduceOnly := flags.Bool("reduce-only", false, "only repay an existing borrow")
	owner, err := parseOwner(op, flags, args, 2)
	if err != nil {
		return err
	}
	marketIndex, err := strconv.ParseUint(flags.Arg(1), 10, 16)
	if err != nil {
		return errs.InvalidParameter(op, "market index %q: %v", flags.Arg(1), err)
	}
	amount, err := strconv.ParseUint(flags.Arg(2), 10, 64)
	if err != nil {
		return errs.InvalidParameter(op, "amount %q: %v", flags.Arg(2), err)
	}

	user, err := p.client.GetQuartzAccount(ctx, owner)
	if err != nil {
		return err
	}
	bundle, err := user.MakeDepositIxs(ctx, amount, uint16(marketIndex), *reduceOnly)
	if err != nil {
		return err
	}
	transaction, err := p.builder.Build(ctx, bundle, owner, tx.TxParams{SimulateComputeUnits: true})
	if err != nil {
		return err
	}
	transaction.Signatures = make([]solana.Signature, transaction.Message.Header.NumRequiredSignatures)
	raw, err := transaction.MarshalBinary()
	if err != nil {
		return errs.Wrap(errs.KindInvalidInput, op, err)
	}
	_, err = fmt.Fprintln(p.out, base64.StdEncoding.EncodeToString(raw))
	return err
}

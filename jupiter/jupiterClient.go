package jupiter

import (
	"context"
	"net/http"
	"slices"

	"quartzgo/errs"
	spl_token "quartzgo/lib/spl-token"
	"quartzgo/tx"
	"quartzgo/utils"

	"github.com/gagliardetto/solana-go"
	"github.com/ilkamo/jupiter-go/jupiter"
	"github.com/rs/zerolog"
)

const (
	SwapModeExactIn  jupiter.GetQuoteParamsSwapMode = "ExactIn"
	SwapModeExactOut jupiter.GetQuoteParamsSwapMode = "ExactOut"
)

const DEFAULT_SLIPPAGE_BPS = 50

type SwapParams struct {
	InputMint        solana.PublicKey
	OutputMint       solana.PublicKey
	Amount           uint64
	SlippageBps      int
	SwapMode         jupiter.GetQuoteParamsSwapMode
	MaxAccounts      *int
	OnlyDirectRoutes bool
	ExcludeDexes     []string
}

// Swap is a swap leg ready to sit between collateral repay start and
// deposit. LookupTables are already held by the client's table cache.
type Swap struct {
	Quote        *jupiter.QuoteResponse
	Instructions []solana.Instruction
	LookupTables []solana.PublicKey
}

type Client struct {
	url    string
	api    *jupiter.ClientWithResponses
	tables *tx.LookupTableCache
	logger zerolog.Logger
}

// NewClient talks to url, or to the public Jupiter API when url is empty.
func NewClient(url string, tables *tx.LookupTableCache, logger zerolog.Logger) (*Client, error) {
	endpoint := utils.TT(url == "", jupiter.DefaultAPIURL, url)
	api, err := jupiter.NewClientWithResponses(endpoint)
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidParameter, "jupiter.NewClient", err)
	}
	return &Client{
		url:    endpoint,
		api:    api,
		tables: tables,
		logger: logger.With().Str("component", "jupiter").Logger(),
	}, nil
}

func (p *Client) GetQuote(ctx context.Context, params SwapParams) (*jupiter.QuoteResponse, error) {
	const op = "jupiter.GetQuote"
	if params.Amount == 0 {
		return nil, errs.InvalidParameter(op, "amount must be positive")
	}
	if params.InputMint.Equals(params.OutputMint) {
		return nil, errs.InvalidParameter(op, "input and output mint are both %s", params.InputMint)
	}
	swapMode := utils.TT(params.SwapMode == "", SwapModeExactIn, params.SwapMode)
	slippageBps := utils.TT(params.SlippageBps > 0, params.SlippageBps, DEFAULT_SLIPPAGE_BPS)
	response, err := p.api.GetQuoteWithResponse(ctx, &jupiter.GetQuoteParams{
		InputMint:        params.InputMint.String(),
		OutputMint:       params.OutputMint.String(),
		Amount:           int(params.Amount),
		SlippageBps:      (*jupiter.SlippageParameter)(&slippageBps),
		SwapMode:         &swapMode,
		ExcludeDexes:     utils.TT(len(params.ExcludeDexes) == 0, nil, &params.ExcludeDexes),
		OnlyDirectRoutes: &params.OnlyDirectRoutes,
		MaxAccounts:      utils.TT(swapMode == SwapModeExactOut, nil, params.MaxAccounts),
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindTransient, op, err)
	}
	if response.JSON200 == nil {
		return nil, statusError(op, response.StatusCode())
	}
	return response.JSON200, nil
}

// GetSwapIxs quotes and fetches a swap for user, keeping only the route
// instructions. Compute budget, system and token program instructions are
// dropped, as is ATA setup for either swap mint, since the collateral
// repay legs handle those.
func (p *Client) GetSwapIxs(ctx context.Context, params SwapParams, user solana.PublicKey) (*Swap, error) {
	const op = "jupiter.GetSwapIxs"
	quote, err := p.GetQuote(ctx, params)
	if err != nil {
		return nil, err
	}
	response, err := p.api.PostSwapWithResponse(ctx, jupiter.PostSwapJSONRequestBody{
		QuoteResponse: *quote,
		UserPublicKey: user.String(),
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindTransient, op, err)
	}
	if response.JSON200 == nil {
		return nil, statusError(op, response.StatusCode())
	}
	transaction := solana.Transaction{}
	if err = transaction.UnmarshalBase64(response.JSON200.SwapTransaction); err != nil {
		return nil, errs.Wrap(errs.KindProtocolMismatch, op, err)
	}

	message := transaction.Message
	lookupTableKeys := utils.ValuesFunc(message.AddressTableLookups, func(lookup solana.MessageAddressTableLookup) solana.PublicKey {
		return lookup.AccountKey
	})
	if len(lookupTableKeys) > 0 {
		lookupTables, err := p.tables.Get(ctx, lookupTableKeys)
		if err != nil {
			return nil, err
		}
		addressTables := make(map[solana.PublicKey]solana.PublicKeySlice, len(lookupTables))
		for _, lookupTable := range lookupTables {
			addressTables[lookupTable.Key] = lookupTable.State.Addresses
		}
		if err = message.SetAddressTables(addressTables); err != nil {
			return nil, errs.Wrap(errs.KindProtocolMismatch, op, err)
		}
		if err = message.ResolveLookups(); err != nil {
			return nil, errs.Wrap(errs.KindProtocolMismatch, op, err)
		}
	}

	instructions, err := SwapInstructions(&message, params.InputMint, params.OutputMint)
	if err != nil {
		return nil, err
	}
	p.logger.Debug().
		Str("inputMint", params.InputMint.String()).
		Str("outputMint", params.OutputMint.String()).
		Uint64("amount", params.Amount).
		Int("instructions", len(instructions)).
		Int("lookupTables", len(lookupTableKeys)).
		Msg("swap fetched")
	return &Swap{Quote: quote, Instructions: instructions, LookupTables: lookupTableKeys}, nil
}

// SwapInstructions decompiles message, dropping setup instructions. Lookups
// must already be resolved for v0 messages.
func SwapInstructions(message *solana.Message, inputMint solana.PublicKey, outputMint solana.PublicKey) ([]solana.Instruction, error) {
	const op = "jupiter.SwapInstructions"
	compiled := slices.DeleteFunc(slices.Clone(message.Instructions), func(instruction solana.CompiledInstruction) bool {
		programId := message.AccountKeys[instruction.ProgramIDIndex]
		switch {
		case programId.Equals(solana.ComputeBudget),
			programId.Equals(solana.SystemProgramID),
			programId.Equals(spl_token.TOKEN_PROGRAM_ID):
			return true
		case programId.Equals(spl_token.ASSOCIATED_TOKEN_PROGRAM_ID):
			if len(instruction.Accounts) < 4 || int(instruction.Accounts[3]) >= len(message.AccountKeys) {
				return false
			}
			mint := message.AccountKeys[instruction.Accounts[3]]
			return mint.Equals(inputMint) || mint.Equals(outputMint)
		}
		return false
	})
	instructions := make([]solana.Instruction, 0, len(compiled))
	for _, instruction := range compiled {
		accounts, err := instruction.ResolveInstructionAccounts(message)
		if err != nil {
			return nil, errs.Wrap(errs.KindProtocolMismatch, op, err)
		}
		instructions = append(instructions, solana.NewInstruction(message.AccountKeys[instruction.ProgramIDIndex], accounts, instruction.Data))
	}
	return instructions, nil
}

func statusError(op string, status int) error {
	switch {
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return errs.Transient(op, "jupiter returned %d", status)
	case status == http.StatusNotFound:
		return errs.NotFound(op, "no route found")
	}
	return errs.InvalidInput(op, "jupiter returned %d", status)
}

package priorityFee

import (
	"context"

	"quartzgo/errs"

	"github.com/gagliardetto/solana-go"
	"github.com/go-resty/resty/v2"
)

type HeliusPriorityLevel string

const (
	HeliusPriorityLevelMin       HeliusPriorityLevel = "min"
	HeliusPriorityLevelLow       HeliusPriorityLevel = "low"
	HeliusPriorityLevelMedium    HeliusPriorityLevel = "medium"
	HeliusPriorityLevelHigh      HeliusPriorityLevel = "high"
	HeliusPriorityLevelVeryHigh  HeliusPriorityLevel = "veryHigh"
	HeliusPriorityLevelUnsafeMax HeliusPriorityLevel = "unsafeMax"
)

type HeliusPriorityFeeLevels map[HeliusPriorityLevel]float64

type HeliusPriorityFeeResult struct {
	PriorityFeeEstimate float64                 `json:"priorityFeeEstimate"`
	PriorityFeeLevels   HeliusPriorityFeeLevels `json:"priorityFeeLevels"`
}

type HeliusPriorityFeeResponse struct {
	Jsonrpc string                   `json:"jsonrpc"`
	Result  *HeliusPriorityFeeResult `json:"result"`
	Id      string                   `json:"id"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FetchHeliusPriorityFee asks a Helius endpoint for every priority level
// over the given write-locked accounts.
func FetchHeliusPriorityFee(
	ctx context.Context,
	client *resty.Client,
	url string,
	accounts []solana.PublicKey,
) (HeliusPriorityFeeLevels, error) {
	const op = "priorityFee.FetchHeliusPriorityFee"
	accountKeys := make([]string, len(accounts))
	for i, account := range accounts {
		accountKeys[i] = account.String()
	}
	var response HeliusPriorityFeeResponse
	resp, err := client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      "1",
			"method":  "getPriorityFeeEstimate",
			"params": []interface{}{map[string]interface{}{
				"accountKeys": accountKeys,
				"options":     map[string]interface{}{"includeAllPriorityFeeLevels": true},
			}},
		}).
		SetResult(&response).
		Post(url)
	if err != nil {
		return nil, errs.Wrap(errs.KindTransient, op, err)
	}
	if !resp.IsSuccess() {
		return nil, errs.Transient(op, "helius responded %s", resp.Status())
	}
	if response.Error != nil {
		return nil, errs.InvalidInput(op, "helius error %d: %s", response.Error.Code, response.Error.Message)
	}
	if response.Result == nil || response.Result.PriorityFeeLevels == nil {
		return nil, errs.InvalidInput(op, "helius response carries no fee levels")
	}
	return response.Result.PriorityFeeLevels, nil
}

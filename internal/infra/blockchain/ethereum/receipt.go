package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/rskreceipt/internal/pkg/types"
	"github.com/gabapcia/rskreceipt/internal/receipt"
)

// LogResponse represents a log entry attached to a receipt.
type LogResponse struct {
	Address          string   `json:"address"`
	Topics           []string `json:"topics"`
	Data             string   `json:"data"`
	BlockNumber      string   `json:"blockNumber"`
	TransactionHash  string   `json:"transactionHash"`
	TransactionIndex string   `json:"transactionIndex"`
	BlockHash        string   `json:"blockHash"`
	LogIndex         string   `json:"logIndex"`
	Removed          bool     `json:"removed"`
}

// ReceiptResponse represents a transaction receipt returned by eth_getTransactionReceipt.
//
// To and ContractAddress are null on the wire when absent and decode to "".
type ReceiptResponse struct {
	TransactionHash   string         `json:"transactionHash"`
	TransactionIndex  string         `json:"transactionIndex"`
	BlockHash         string         `json:"blockHash"`
	BlockNumber       types.Quantity `json:"blockNumber"`
	From              string         `json:"from"`
	To                string         `json:"to"`
	CumulativeGasUsed types.Quantity `json:"cumulativeGasUsed"`
	GasUsed           string         `json:"gasUsed"`
	EffectiveGasPrice string         `json:"effectiveGasPrice"`
	ContractAddress   string         `json:"contractAddress"`
	Logs              []LogResponse  `json:"logs"`
	LogsBloom         string         `json:"logsBloom"`
	Status            string         `json:"status"`
	Type              string         `json:"type"`
}

// toRawReceipt keeps the fields the receipt pipeline exports.
func (r ReceiptResponse) toRawReceipt() receipt.RawReceipt {
	return receipt.RawReceipt{
		TransactionHash:   r.TransactionHash,
		From:              r.From,
		To:                r.To,
		ContractAddress:   r.ContractAddress,
		CumulativeGasUsed: r.CumulativeGasUsed,
		BlockNumber:       r.BlockNumber,
	}
}

// isAbsent reports whether the node answered without a receipt.
func isAbsent(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// TransactionReceipt implements the receipt.Fetcher interface.
// It issues a single eth_getTransactionReceipt call and maps a null result to
// receipt.ErrNotFound. Gas or block values wider than 256 bits are reported
// as receipt.ErrNumericOverflow.
func (c *client) TransactionReceipt(ctx context.Context, id receipt.Identifier) (receipt.RawReceipt, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", id.Hash)
	if err != nil {
		return receipt.RawReceipt{}, err
	}

	if isAbsent(data) {
		return receipt.RawReceipt{}, receipt.ErrNotFound
	}

	var res ReceiptResponse
	if err := json.Unmarshal(data, &res); errors.Is(err, types.ErrQuantityRange) {
		return receipt.RawReceipt{}, fmt.Errorf("%w: %w", receipt.ErrNumericOverflow, err)
	} else if err != nil {
		return receipt.RawReceipt{}, fmt.Errorf("decode receipt: %w", err)
	}

	return res.toRawReceipt(), nil
}

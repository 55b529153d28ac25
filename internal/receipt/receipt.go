// Package receipt implements the transaction receipt pipeline: it validates a
// user supplied transaction hash, fetches the receipt from a node, normalizes
// its wide integer fields and keeps the outcome in a single state slot that
// the document and QR exporters read from.
package receipt

import (
	"errors"

	"github.com/gabapcia/rskreceipt/internal/pkg/types"
)

var (
	// ErrEmptyInput is returned when the identifier is empty after trimming.
	// No network call is made in that case.
	ErrEmptyInput = errors.New("please enter a transaction hash")

	// ErrNotFound is returned when the node reports no receipt for the hash.
	ErrNotFound = errors.New("transaction not found, please check the hash and try again")

	// ErrTransport wraps network and protocol failures while talking to the node.
	ErrTransport = errors.New("transport error")

	// ErrNumericOverflow is returned when a wide integer field does not fit a uint64.
	ErrNumericOverflow = errors.New("numeric overflow")
)

// RawReceipt is the receipt as returned by the node. Gas and block values are
// kept in their wide integer form until normalization.
type RawReceipt struct {
	TransactionHash   string
	From              string
	To                string // empty for contract creations
	ContractAddress   string // empty unless the transaction deployed a contract
	CumulativeGasUsed types.Quantity
	BlockNumber       types.Quantity
}

// Receipt is the normalized receipt used for display and export.
// It is replaced as a whole on every fetch and never mutated in place.
type Receipt struct {
	TransactionHash   string
	From              string
	To                string
	ContractAddress   string
	CumulativeGasUsed uint64
	BlockNumber       uint64
}

// HasRecipient reports whether the receipt carries a recipient address.
func (r Receipt) HasRecipient() bool {
	return r.To != ""
}

// HasContractAddress reports whether the receipt carries a deployed contract address.
func (r Receipt) HasContractAddress() bool {
	return r.ContractAddress != ""
}

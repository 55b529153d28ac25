package receipt

import (
	"fmt"
	"strconv"
)

// FieldKind identifies one exported receipt field.
type FieldKind int

const (
	FieldTransactionHash FieldKind = iota
	FieldFrom
	FieldTo
	FieldContractAddress
	FieldCumulativeGasUsed
	FieldBlockNumber
)

var fieldKeys = map[FieldKind]string{
	FieldTransactionHash:   "hash",
	FieldFrom:              "from",
	FieldTo:                "to",
	FieldContractAddress:   "contract",
	FieldCumulativeGasUsed: "gas",
	FieldBlockNumber:       "block",
}

var fieldLabels = map[FieldKind]string{
	FieldTransactionHash:   "Transaction Hash",
	FieldFrom:              "From",
	FieldTo:                "To",
	FieldContractAddress:   "Contract Address",
	FieldCumulativeGasUsed: "Cumulative Gas Used",
	FieldBlockNumber:       "Block Number",
}

// Key returns the short name used to refer to the field on the command line.
func (k FieldKind) Key() string {
	return fieldKeys[k]
}

// Label returns the human readable name of the field.
func (k FieldKind) Label() string {
	return fieldLabels[k]
}

// String implements fmt.Stringer.
func (k FieldKind) String() string {
	return k.Key()
}

// ParseFieldKind resolves a short field name such as "hash" or "gas".
func ParseFieldKind(key string) (FieldKind, error) {
	for kind, k := range fieldKeys {
		if k == key {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", key)
}

// Field is one layout directive: a field value and whether it is present.
type Field struct {
	Kind    FieldKind
	Value   string
	Present bool
}

// Fields returns every exportable field of r in the fixed export order:
// hash, sender, recipient, contract address, gas used, block number.
//
// Optional fields are always listed and flagged through Present, so every
// exporter folds over the same sequence and skips absent entries the same way.
func Fields(r Receipt) []Field {
	return []Field{
		{Kind: FieldTransactionHash, Value: r.TransactionHash, Present: true},
		{Kind: FieldFrom, Value: r.From, Present: true},
		{Kind: FieldTo, Value: r.To, Present: r.HasRecipient()},
		{Kind: FieldContractAddress, Value: r.ContractAddress, Present: r.HasContractAddress()},
		{Kind: FieldCumulativeGasUsed, Value: strconv.FormatUint(r.CumulativeGasUsed, 10), Present: true},
		{Kind: FieldBlockNumber, Value: strconv.FormatUint(r.BlockNumber, 10), Present: true},
	}
}

// PresentFields is Fields without the absent entries.
func PresentFields(r Receipt) []Field {
	all := Fields(r)

	present := make([]Field, 0, len(all))
	for _, f := range all {
		if f.Present {
			present = append(present, f)
		}
	}
	return present
}

// Lookup returns the value of the given field and whether it is present.
func Lookup(r Receipt, kind FieldKind) (string, bool) {
	for _, f := range Fields(r) {
		if f.Kind == kind {
			return f.Value, f.Present
		}
	}
	return "", false
}

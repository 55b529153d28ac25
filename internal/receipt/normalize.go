package receipt

import (
	"fmt"
	"math"

	"github.com/gabapcia/rskreceipt/internal/pkg/types"
)

// Normalize converts the wide integer fields of raw into uint64 values.
//
// The conversion is exact: any value above math.MaxUint64 fails with
// ErrNumericOverflow. String fields are copied verbatim.
func Normalize(raw RawReceipt) (Receipt, error) {
	gasUsed, err := narrow("cumulativeGasUsed", raw.CumulativeGasUsed)
	if err != nil {
		return Receipt{}, err
	}

	blockNumber, err := narrow("blockNumber", raw.BlockNumber)
	if err != nil {
		return Receipt{}, err
	}

	return Receipt{
		TransactionHash:   raw.TransactionHash,
		From:              raw.From,
		To:                raw.To,
		ContractAddress:   raw.ContractAddress,
		CumulativeGasUsed: gasUsed,
		BlockNumber:       blockNumber,
	}, nil
}

func narrow(field string, q types.Quantity) (uint64, error) {
	v, ok := q.Uint64()
	if !ok {
		return 0, fmt.Errorf("%w: %s value %s exceeds %d", ErrNumericOverflow, field, q, uint64(math.MaxUint64))
	}
	return v, nil
}

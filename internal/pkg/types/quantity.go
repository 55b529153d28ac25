package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

var (
	// ErrInvalidQuantity is returned when a string is not a valid hex quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrQuantityRange is returned when a well formed hex quantity is wider
	// than 256 bits.
	ErrQuantityRange = errors.New("quantity exceeds 256 bits")
)

// Quantity represents a hexadecimal-encoded unsigned integer as returned by
// JSON-RPC nodes (e.g., "0x5208"). It holds values up to 256 bits, wider than
// any machine integer, so callers must narrow it explicitly.
type Quantity struct {
	v uint256.Int
}

// QuantityFromString validates the input string and returns a Quantity if valid.
// Leading zeros after the "0x" prefix are accepted.
func QuantityFromString(s string) (Quantity, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return Quantity{}, fmt.Errorf("%w: %q must start with 0x", ErrInvalidQuantity, s)
	}

	digits := s[2:]
	if digits == "" {
		return Quantity{}, fmt.Errorf("%w: %q has no digits", ErrInvalidQuantity, s)
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return Quantity{}, nil
	}

	v, err := uint256.FromHex("0x" + digits)
	if errors.Is(err, uint256.ErrBig256Range) {
		return Quantity{}, fmt.Errorf("%w: %q", ErrQuantityRange, s)
	}
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q: %w", ErrInvalidQuantity, s, err)
	}

	return Quantity{v: *v}, nil
}

// QuantityFromUint64 wraps a machine integer into a Quantity.
func QuantityFromUint64(n uint64) Quantity {
	var q Quantity
	q.v.SetUint64(n)
	return q
}

// MarshalJSON encodes the Quantity as a JSON hex string.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.v.Hex())
}

// UnmarshalJSON parses and validates a JSON-encoded hex quantity.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuantity, err)
	}

	parsed, err := QuantityFromString(s)
	if err != nil {
		return err
	}

	*q = parsed
	return nil
}

// Uint64 returns the value as a uint64 and whether it fits without loss.
// When it does not fit the returned value is meaningless.
func (q Quantity) Uint64() (uint64, bool) {
	return q.v.Uint64(), q.v.IsUint64()
}

// String returns the decimal representation of the value.
func (q Quantity) String() string {
	return q.v.Dec()
}

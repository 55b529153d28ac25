package receipt

import (
	"errors"
	"strings"

	"github.com/gabapcia/rskreceipt/internal/pkg/validator"
)

// Identifier is a validated transaction hash.
//
// Only emptiness is checked; malformed hashes are left for the node to reject.
type Identifier struct {
	Hash string `validate:"notblank"`
}

// ParseIdentifier trims the user input and validates it, returning
// ErrEmptyInput when nothing is left.
func ParseIdentifier(input string) (Identifier, error) {
	id := Identifier{Hash: strings.TrimSpace(input)}

	if err := validator.Validate(id); err != nil {
		if errors.Is(err, validator.ErrValidationFailed) {
			return Identifier{}, ErrEmptyInput
		}
		return Identifier{}, err
	}

	return id, nil
}

package validator

import (
	"errors"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorInitialization(t *testing.T) {
	t.Run("should initialize validator instance", func(t *testing.T) {
		assert.NotNil(t, validator)
	})

	t.Run("should register the notblank tag", func(t *testing.T) {
		type Identifier struct {
			Hash string `validate:"notblank"`
		}

		err := validator.Struct(Identifier{Hash: "0xabc"})
		assert.NoError(t, err)
	})
}

func TestFormatError(t *testing.T) {
	t.Run("should transform validation errors to formatted errors", func(t *testing.T) {
		testValidator := gvalidator.New()

		type TestStruct struct {
			Name string `validate:"required"`
		}

		err := testValidator.Struct(TestStruct{})
		require.Error(t, err)

		formattedErr := formatError(err)

		assert.ErrorIs(t, formattedErr, ErrValidationFailed)
		assert.Contains(t, formattedErr.Error(), "'Name': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("should return original error when not validation error", func(t *testing.T) {
		originalErr := errors.New("node unreachable")
		formattedErr := formatError(originalErr)

		assert.Equal(t, originalErr, formattedErr)
	})
}

func TestValidate(t *testing.T) {
	type Identifier struct {
		Hash string `validate:"notblank"`
	}

	t.Run("should pass for a non blank value", func(t *testing.T) {
		err := Validate(Identifier{Hash: "0x8f1d"})
		assert.NoError(t, err)
	})

	t.Run("should fail for an empty value", func(t *testing.T) {
		err := Validate(Identifier{Hash: ""})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'Hash': value '' does not meet the requirements for the 'notblank' validation")
	})

	t.Run("should fail for a whitespace only value", func(t *testing.T) {
		err := Validate(Identifier{Hash: " \t\n "})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("should report every failing field", func(t *testing.T) {
		type Config struct {
			Endpoint string `validate:"required,url"`
			Size     int    `validate:"gt=0"`
		}

		err := Validate(Config{Endpoint: "not a url", Size: 0})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'Endpoint'")
		assert.Contains(t, err.Error(), "'Size'")
	})

	t.Run("should return non struct errors unchanged", func(t *testing.T) {
		err := Validate("not a struct")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidationFailed)
	})
}

package kernel_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlpha2(t *testing.T) {
	t.Run("should normalize to upper case", func(t *testing.T) {
		code, err := kernel.NewAlpha2(" us ")

		require.NoError(t, err)
		assert.Equal(t, "US", code.String())
	})

	t.Run("should reject invalid codes", func(t *testing.T) {
		for _, input := range []string{"", "U", "USA", "U1", "Ü2"} {
			_, err := kernel.NewAlpha2(input)
			assert.ErrorIs(t, err, kernel.ErrAlpha2IsInvalid, "input %q", input)
		}
	})
}

func TestNewAlpha3(t *testing.T) {
	t.Run("should normalize to upper case", func(t *testing.T) {
		code, err := kernel.NewAlpha3("rus")

		require.NoError(t, err)
		assert.Equal(t, "RUS", code.String())
	})

	t.Run("should reject invalid codes", func(t *testing.T) {
		for _, input := range []string{"", "RU", "RUSS", "R1S"} {
			_, err := kernel.NewAlpha3(input)
			assert.ErrorIs(t, err, kernel.ErrAlpha3IsInvalid, "input %q", input)
		}
	})
}

func TestContainsAlpha3(t *testing.T) {
	codes := []kernel.Alpha3{"USA", "CAN", "MEX"}

	assert.True(t, kernel.ContainsAlpha3(codes, "CAN"))
	assert.False(t, kernel.ContainsAlpha3(codes, "FRA"))
	assert.False(t, kernel.ContainsAlpha3(nil, "USA"))
}

func TestNewCurrency(t *testing.T) {
	t.Run("should normalize to upper case", func(t *testing.T) {
		currency, err := kernel.NewCurrency("usd")

		require.NoError(t, err)
		assert.Equal(t, "USD", currency.String())
	})

	t.Run("should reject invalid codes", func(t *testing.T) {
		for _, input := range []string{"", "US", "DOLLARS", "U5D"} {
			_, err := kernel.NewCurrency(input)
			assert.ErrorIs(t, err, kernel.ErrCurrencyIsInvalid, "input %q", input)
		}
	})
}

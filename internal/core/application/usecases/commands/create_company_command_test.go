package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestNewCreateCompanyCommand_ValidInput(t *testing.T) {
	// Arrange
	actor := int64Ptr(42)

	// Act
	cmd, err := commands.NewCreateCompanyCommand(actor, "acme", "acme-label", "logo.png", "usd", []string{"usa", "can"})

	// Assert
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, "acme", cmd.Name())
	assert.Equal(t, "acme-label", cmd.Label())
	assert.Equal(t, "logo.png", cmd.Logo())
	assert.Equal(t, kernel.Currency("USD"), cmd.Currency())
	assert.Equal(t, []kernel.Alpha3{"USA", "CAN"}, cmd.DeliveriesFrom())
}

func TestNewCreateCompanyCommand_InvalidInput(t *testing.T) {
	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := commands.NewCreateCompanyCommand(nil, "", "label", "", "USD", nil)

		assert.ErrorIs(t, err, commands.ErrNameIsRequired)
	})

	t.Run("should fail with empty label", func(t *testing.T) {
		_, err := commands.NewCreateCompanyCommand(nil, "acme", "", "", "USD", nil)

		assert.ErrorIs(t, err, commands.ErrLabelIsRequired)
	})

	t.Run("should fail with invalid currency", func(t *testing.T) {
		_, err := commands.NewCreateCompanyCommand(nil, "acme", "label", "", "DOLLARS", nil)

		assert.ErrorIs(t, err, kernel.ErrCurrencyIsInvalid)
	})

	t.Run("should fail with invalid origin code", func(t *testing.T) {
		_, err := commands.NewCreateCompanyCommand(nil, "acme", "label", "", "USD", []string{"US"})

		assert.ErrorIs(t, err, kernel.ErrAlpha3IsInvalid)
	})
}

func TestCreateCompanyCommand_Validate(t *testing.T) {
	t.Run("should fail for zero value command", func(t *testing.T) {
		var cmd commands.CreateCompanyCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateCompanyCommandIsNotConstructed)
	})
}

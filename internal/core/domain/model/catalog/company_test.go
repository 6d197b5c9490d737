package catalog_test

import (
	"testing"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createCompany(t *testing.T, name string, deliveriesFrom ...kernel.Alpha3) *catalog.Company {
	t.Helper()
	currency, err := kernel.NewCurrency("USD")
	require.NoError(t, err)

	company, err := catalog.NewCompany(name, name+"-label", "logo.png", currency, deliveriesFrom)
	require.NoError(t, err)
	require.NotNil(t, company)
	return company
}

func TestNewCompany(t *testing.T) {
	t.Run("should create company with valid parameters", func(t *testing.T) {
		company := createCompany(t, "acme", "USA", "CAN")

		require.NoError(t, company.Validate())
		assert.Equal(t, "acme", company.Name())
		assert.Equal(t, "acme-label", company.Label())
		assert.Equal(t, "logo.png", company.Logo())
		assert.Equal(t, "USD", company.Currency().String())
		assert.Equal(t, []kernel.Alpha3{"USA", "CAN"}, company.DeliveriesFrom())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		currency, err := kernel.NewCurrency("USD")
		require.NoError(t, err)

		_, err = catalog.NewCompany("", "label", "", currency, nil)

		assert.ErrorIs(t, err, catalog.ErrCompanyNameIsRequired)
	})

	t.Run("should fail with empty label", func(t *testing.T) {
		currency, err := kernel.NewCurrency("USD")
		require.NoError(t, err)

		_, err = catalog.NewCompany("acme", "", "", currency, nil)

		assert.ErrorIs(t, err, catalog.ErrCompanyLabelIsRequired)
	})

	t.Run("should fail with unconstructed currency", func(t *testing.T) {
		_, err := catalog.NewCompany("acme", "label", "", "", nil)

		assert.Error(t, err)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var company catalog.Company

		assert.ErrorIs(t, company.Validate(), catalog.ErrCompanyIsNotConstructed)
	})
}

func TestCompanyShipsFrom(t *testing.T) {
	company := createCompany(t, "acme", "USA", "CAN")

	assert.True(t, company.ShipsFrom("USA"))
	assert.True(t, company.ShipsFrom("CAN"))
	assert.False(t, company.ShipsFrom("MEX"))
}

func TestCompanyUpdate(t *testing.T) {
	t.Run("should replace mutable fields", func(t *testing.T) {
		company := createCompany(t, "acme", "USA")
		currency, err := kernel.NewCurrency("EUR")
		require.NoError(t, err)

		err = company.Update("acme-eu", "acme-eu-label", "eu.png", currency, []kernel.Alpha3{"FRA"})

		require.NoError(t, err)
		assert.Equal(t, "acme-eu", company.Name())
		assert.Equal(t, "EUR", company.Currency().String())
		assert.True(t, company.ShipsFrom("FRA"))
		assert.False(t, company.ShipsFrom("USA"))
	})

	t.Run("should keep state on invalid update", func(t *testing.T) {
		company := createCompany(t, "acme", "USA")

		err := company.Update("", "label", "", company.Currency(), nil)

		assert.ErrorIs(t, err, catalog.ErrCompanyNameIsRequired)
		assert.Equal(t, "acme", company.Name())
	})
}

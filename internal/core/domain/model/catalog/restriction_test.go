package catalog_test

import (
	"testing"

	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRestriction(t *testing.T, name string, maxSize, maxWeight float64, deliveriesTo ...kernel.Alpha3) *catalog.Restriction {
	t.Helper()
	restriction, err := catalog.NewRestriction(name, maxSize, maxWeight, deliveriesTo)
	require.NoError(t, err)
	require.NotNil(t, restriction)
	return restriction
}

func TestNewRestriction(t *testing.T) {
	t.Run("should create restriction with valid parameters", func(t *testing.T) {
		restriction := createRestriction(t, "acme-standard", 50, 20, "USA")

		require.NoError(t, restriction.Validate())
		assert.Equal(t, "acme-standard", restriction.Name())
		assert.InDelta(t, 50.0, restriction.MaxSize(), 0.0001)
		assert.InDelta(t, 20.0, restriction.MaxWeight(), 0.0001)
		assert.Equal(t, []kernel.Alpha3{"USA"}, restriction.DeliveriesTo())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := catalog.NewRestriction("", 50, 20, nil)

		assert.ErrorIs(t, err, catalog.ErrRestrictionNameIsRequired)
	})

	t.Run("should fail with non-positive ceilings", func(t *testing.T) {
		_, err := catalog.NewRestriction("acme-standard", 0, 20, nil)
		assert.ErrorIs(t, err, catalog.ErrMaxSizeIsRequired)

		_, err = catalog.NewRestriction("acme-standard", 50, 0, nil)
		assert.ErrorIs(t, err, catalog.ErrMaxWeightIsRequired)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var restriction catalog.Restriction

		assert.ErrorIs(t, restriction.Validate(), catalog.ErrRestrictionIsNotConstructed)
	})
}

func TestRestrictionAdmitsDestination(t *testing.T) {
	t.Run("should admit only listed destinations", func(t *testing.T) {
		restriction := createRestriction(t, "acme-standard", 50, 20, "USA", "CAN")

		assert.True(t, restriction.AdmitsDestination("USA"))
		assert.True(t, restriction.AdmitsDestination("CAN"))
		assert.False(t, restriction.AdmitsDestination("MEX"))
	})

	t.Run("should admit everything with empty allow-list", func(t *testing.T) {
		restriction := createRestriction(t, "acme-standard", 50, 20)

		assert.True(t, restriction.AdmitsDestination("USA"))
		assert.True(t, restriction.AdmitsDestination("MEX"))
	})
}

func TestRestrictionUpdate(t *testing.T) {
	t.Run("should replace ceilings and allow-list", func(t *testing.T) {
		restriction := createRestriction(t, "acme-standard", 50, 20, "USA")

		err := restriction.Update(80, 40, []kernel.Alpha3{"FRA"})

		require.NoError(t, err)
		assert.InDelta(t, 80.0, restriction.MaxSize(), 0.0001)
		assert.InDelta(t, 40.0, restriction.MaxWeight(), 0.0001)
		assert.True(t, restriction.AdmitsDestination("FRA"))
		assert.False(t, restriction.AdmitsDestination("USA"))
	})

	t.Run("should fail with invalid ceilings", func(t *testing.T) {
		restriction := createRestriction(t, "acme-standard", 50, 20)

		err := restriction.Update(0, 40, nil)

		assert.ErrorIs(t, err, catalog.ErrMaxSizeIsRequired)
	})
}

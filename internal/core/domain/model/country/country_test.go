package country_test

import (
	"testing"

	"shipping/internal/core/domain/model/country"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createNode(t *testing.T, label, alpha2, alpha3 string, numeric, level int, parent *string) *country.Country {
	t.Helper()
	a2, err := kernel.NewAlpha2(alpha2)
	require.NoError(t, err)
	a3, err := kernel.NewAlpha3(alpha3)
	require.NoError(t, err)

	c, err := country.NewCountry(label, a2, a3, numeric, level, parent)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func stringPtr(s string) *string {
	return &s
}

func TestNewCountry(t *testing.T) {
	t.Run("should create root country with valid parameters", func(t *testing.T) {
		c := createNode(t, "root", "XX", "XXX", 1, 0, nil)

		require.NoError(t, c.Validate())
		assert.Equal(t, "root", c.Label())
		assert.Equal(t, kernel.Alpha2("XX"), c.Alpha2())
		assert.Equal(t, kernel.Alpha3("XXX"), c.Alpha3())
		assert.Equal(t, 1, c.Numeric())
		assert.Equal(t, 0, c.Level())
		assert.True(t, c.IsRoot())
		assert.Nil(t, c.ParentLabel())
	})

	t.Run("should create child country with parent", func(t *testing.T) {
		c := createNode(t, "rus", "RU", "RUS", 643, 1, stringPtr("root"))

		assert.False(t, c.IsRoot())
		require.NotNil(t, c.ParentLabel())
		assert.Equal(t, "root", *c.ParentLabel())
	})

	t.Run("should fail with empty label", func(t *testing.T) {
		_, err := country.NewCountry("", "RU", "RUS", 643, 1, stringPtr("root"))

		assert.ErrorIs(t, err, country.ErrLabelIsRequired)
	})

	t.Run("should fail when non-root has no parent", func(t *testing.T) {
		_, err := country.NewCountry("rus", "RU", "RUS", 643, 1, nil)

		assert.ErrorIs(t, err, country.ErrParentLabelIsRequired)
	})

	t.Run("should fail with negative level", func(t *testing.T) {
		_, err := country.NewCountry("rus", "RU", "RUS", 643, -1, stringPtr("root"))

		assert.ErrorIs(t, err, country.ErrLevelIsInvalid)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var c country.Country

		assert.ErrorIs(t, c.Validate(), country.ErrCountryIsNotConstructed)
	})
}

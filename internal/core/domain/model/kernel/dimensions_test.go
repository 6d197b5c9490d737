package kernel_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	t.Run("should create dimensions with positive values", func(t *testing.T) {
		dims, err := kernel.NewDimensions(40, 30)

		require.NoError(t, err)
		require.NoError(t, dims.Validate())
		assert.InDelta(t, 40.0, dims.Volume(), 0.0001)
		assert.InDelta(t, 30.0, dims.Weight(), 0.0001)
	})

	t.Run("should reject non-positive volume", func(t *testing.T) {
		_, err := kernel.NewDimensions(0, 30)
		assert.Error(t, err)

		_, err = kernel.NewDimensions(-1, 30)
		assert.Error(t, err)
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		_, err := kernel.NewDimensions(40, 0)
		assert.Error(t, err)
	})
}

func TestDimensionsFitsWithin(t *testing.T) {
	dims, err := kernel.NewDimensions(40, 30)
	require.NoError(t, err)

	assert.True(t, dims.FitsWithin(40, 30))
	assert.True(t, dims.FitsWithin(100, 50))
	assert.False(t, dims.FitsWithin(39, 50))
	assert.False(t, dims.FitsWithin(100, 29))
}

package country_test

import (
	"testing"

	"shipping/internal/core/domain/model/country"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// worldNodes builds a small directory: a root with two regions, one of
// which holds two leaf countries.
func worldNodes(t *testing.T) []*country.Country {
	t.Helper()
	return []*country.Country{
		createNode(t, "root", "XX", "XXX", 1, 0, nil),
		createNode(t, "europe", "XE", "XEU", 2, 1, stringPtr("root")),
		createNode(t, "asia", "XA", "XAS", 3, 1, stringPtr("root")),
		createNode(t, "rus", "RU", "RUS", 643, 2, stringPtr("europe")),
		createNode(t, "fra", "FR", "FRA", 250, 2, stringPtr("europe")),
	}
}

func TestBuildTree(t *testing.T) {
	t.Run("should assemble tree with children ordered by label", func(t *testing.T) {
		root, err := country.BuildTree(worldNodes(t))

		require.NoError(t, err)
		assert.Equal(t, "root", root.Label())

		regions := root.Children()
		require.Len(t, regions, 2)
		assert.Equal(t, "asia", regions[0].Label())
		assert.Equal(t, "europe", regions[1].Label())

		leaves := regions[1].Children()
		require.Len(t, leaves, 2)
		assert.Equal(t, "fra", leaves[0].Label())
		assert.Equal(t, "rus", leaves[1].Label())
	})

	t.Run("should fail without a root", func(t *testing.T) {
		nodes := []*country.Country{
			createNode(t, "rus", "RU", "RUS", 643, 1, stringPtr("root")),
		}

		_, err := country.BuildTree(nodes)

		assert.ErrorIs(t, err, country.ErrTreeHasNoRoot)
	})

	t.Run("should report the missing root before any dangling parent", func(t *testing.T) {
		nodes := []*country.Country{
			createNode(t, "rus", "RU", "RUS", 643, 2, stringPtr("europe")),
			createNode(t, "fra", "FR", "FRA", 250, 2, stringPtr("nowhere")),
		}

		_, err := country.BuildTree(nodes)

		assert.ErrorIs(t, err, country.ErrTreeHasNoRoot)
	})

	t.Run("should fail with two roots", func(t *testing.T) {
		nodes := []*country.Country{
			createNode(t, "root", "XX", "XXX", 1, 0, nil),
			createNode(t, "other", "XY", "XYX", 2, 0, nil),
		}

		_, err := country.BuildTree(nodes)

		assert.ErrorIs(t, err, country.ErrTreeHasManyRoots)
	})

	t.Run("should fail with dangling parent reference", func(t *testing.T) {
		nodes := []*country.Country{
			createNode(t, "root", "XX", "XXX", 1, 0, nil),
			createNode(t, "rus", "RU", "RUS", 643, 2, stringPtr("europe")),
		}

		_, err := country.BuildTree(nodes)

		assert.Error(t, err)
	})
}

func TestFlatten(t *testing.T) {
	t.Run("should return parents strictly before children", func(t *testing.T) {
		root, err := country.BuildTree(worldNodes(t))
		require.NoError(t, err)

		flat := country.Flatten(root)

		require.Len(t, flat, 5)
		labels := make([]string, 0, len(flat))
		for _, node := range flat {
			labels = append(labels, node.Label())
		}
		assert.Equal(t, []string{"root", "asia", "europe", "fra", "rus"}, labels)
	})

	t.Run("should return nil for nil root", func(t *testing.T) {
		assert.Nil(t, country.Flatten(nil))
	})
}

func TestSearch(t *testing.T) {
	t.Run("should discriminate lookup kinds", func(t *testing.T) {
		assert.Equal(t, country.SearchByLabel, country.NewSearchByLabel("rus").Kind())
		assert.Equal(t, country.SearchByAlpha2, country.NewSearchByAlpha2("RU").Kind())
		assert.Equal(t, country.SearchByAlpha3, country.NewSearchByAlpha3("RUS").Kind())
		assert.Equal(t, country.SearchByNumeric, country.NewSearchByNumeric(643).Kind())
	})

	t.Run("should render the active key", func(t *testing.T) {
		assert.Equal(t, "alpha3=RUS", country.NewSearchByAlpha3("RUS").String())
		assert.Equal(t, "numeric=643", country.NewSearchByNumeric(643).String())
	})
}

package ports

import (
	"context"

	"shipping/internal/core/domain/model/country"
)

// CountryRepository defines the persistence contract for the geography
// directory. Countries are stored flat; tree assembly happens in the domain.
type CountryRepository interface {
	// Add persists a new country node.
	Add(ctx context.Context, aggregate *country.Country) error

	// Get retrieves a country by one of its lookup keys.
	Get(ctx context.Context, search country.Search) (*country.Country, error)

	// GetAll retrieves the whole flat country list.
	GetAll(ctx context.Context) ([]*country.Country, error)
}

package countryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shipping/internal/core/domain/model/country"
	"shipping/internal/pkg/errs"
)

// GormCountryRepository implements CountryRepository using GORM.
type GormCountryRepository struct {
	db *gorm.DB
}

// NewGormCountryRepository creates a new GORM country repository.
func NewGormCountryRepository(db *gorm.DB) *GormCountryRepository {
	return &GormCountryRepository{db: db}
}

// Add saves a new country node to the database.
func (r *GormCountryRepository) Add(ctx context.Context, aggregate *country.Country) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a country by one of its lookup keys.
func (r *GormCountryRepository) Get(ctx context.Context, search country.Search) (*country.Country, error) {
	tx := r.db.WithContext(ctx)

	var (
		dto CountryDTO
		err error
	)
	switch search.Kind() {
	case country.SearchByLabel:
		err = tx.First(&dto, "label = ?", search.Label()).Error
	case country.SearchByAlpha2:
		err = tx.First(&dto, "alpha2 = ?", search.Alpha2()).Error
	case country.SearchByAlpha3:
		err = tx.First(&dto, "alpha3 = ?", search.Alpha3()).Error
	case country.SearchByNumeric:
		err = tx.First(&dto, "numeric_code = ?", search.Numeric()).Error
	default:
		return nil, errs.NewValueIsInvalidError("search")
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("country", search)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole flat country list ordered by label.
func (r *GormCountryRepository) GetAll(ctx context.Context) ([]*country.Country, error) {
	var dtos []CountryDTO
	if err := r.db.WithContext(ctx).Order("label ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	countries := make([]*country.Country, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}

	return countries, nil
}

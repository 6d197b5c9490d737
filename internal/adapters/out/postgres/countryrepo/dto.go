// Package countryrepo provides data transfer objects and mapping functions for
// country persistence. Countries are stored as a flat adjacency list keyed by
// label; the domain layer assembles the tree.
package countryrepo

import (
	"shipping/internal/core/domain/model/country"
	"shipping/internal/core/domain/model/kernel"
)

// CountryDTO represents the database structure for persisting country nodes.
// Alpha and numeric codes carry unique indexes; the parent label is a
// self-reference into the same table, null only for the root.
type CountryDTO struct {
	Label       string  `gorm:"type:varchar(255);primaryKey"`
	Alpha2      string  `gorm:"type:varchar(2);not null;uniqueIndex"`
	Alpha3      string  `gorm:"type:varchar(3);not null;uniqueIndex"`
	Numeric     int     `gorm:"column:numeric_code;type:int;not null;uniqueIndex"`
	Level       int     `gorm:"type:int;not null"`
	ParentLabel *string `gorm:"type:varchar(255);index"`
}

// TableName specifies the database table name for country entities.
func (CountryDTO) TableName() string {
	return "countries"
}

// fromDomain converts a country domain entity to its database representation.
func fromDomain(c *country.Country) CountryDTO {
	return CountryDTO{
		Label:       c.Label(),
		Alpha2:      string(c.Alpha2()),
		Alpha3:      string(c.Alpha3()),
		Numeric:     c.Numeric(),
		Level:       c.Level(),
		ParentLabel: c.ParentLabel(),
	}
}

// toDomain converts a database DTO to a country domain entity.
func toDomain(dto CountryDTO) (*country.Country, error) {
	alpha2, err := kernel.NewAlpha2(dto.Alpha2)
	if err != nil {
		return nil, err
	}

	alpha3, err := kernel.NewAlpha3(dto.Alpha3)
	if err != nil {
		return nil, err
	}

	return country.NewCountry(dto.Label, alpha2, alpha3, dto.Numeric, dto.Level, dto.ParentLabel)
}

// Package raterepo provides data transfer objects and mapping functions for
// lane rate-table persistence. A lane row owns its tier rows; tiers keep an
// explicit position column so readers get the ascending order resolution
// depends on without re-sorting.
package raterepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/rate"
)

// RateEntryDTO represents the database structure for persisting lane rate
// tables. One row per (company package, origin) lane.
type RateEntryDTO struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CompanyPackageID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_rates_lane"`
	DeliveryFrom     string        `gorm:"type:varchar(3);not null;uniqueIndex:idx_rates_lane"`
	Tiers            []RateTierDTO `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for lane entities.
func (RateEntryDTO) TableName() string {
	return "shipping_rates"
}

// RateTierDTO represents one price tier row of a lane.
type RateTierDTO struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	EntryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position int             `gorm:"type:int;not null"`
	Weight   float64         `gorm:"type:double precision;not null"`
	Volume   float64         `gorm:"type:double precision;not null"`
	Price    decimal.Decimal `gorm:"type:numeric(20,8);not null"`
}

// TableName specifies the database table name for tier rows.
func (RateTierDTO) TableName() string {
	return "shipping_rate_tiers"
}

// fromDomain converts a lane rate table to its database representation.
// Tier positions record the entry's ascending order.
func fromDomain(entry *rate.Entry) RateEntryDTO {
	entryID := entry.ID().Bytes()
	domainTiers := entry.Tiers()

	tiers := make([]RateTierDTO, 0, len(domainTiers))
	for i, tier := range domainTiers {
		tiers = append(tiers, RateTierDTO{
			EntryID:  entryID,
			Position: i,
			Weight:   tier.Weight(),
			Volume:   tier.Volume(),
			Price:    tier.Price(),
		})
	}

	return RateEntryDTO{
		ID:               entryID,
		CompanyPackageID: entry.CompanyPackageID().Bytes(),
		DeliveryFrom:     string(entry.DeliveryFrom()),
		Tiers:            tiers,
	}
}

// toDomain converts a database DTO to a lane rate table.
func toDomain(dto RateEntryDTO) (*rate.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyPackageID, err := kernel.UUIDFromBytes(dto.CompanyPackageID[:])
	if err != nil {
		return nil, err
	}

	deliveryFrom, err := kernel.NewAlpha3(dto.DeliveryFrom)
	if err != nil {
		return nil, err
	}

	tiers := make([]rate.Tier, 0, len(dto.Tiers))
	for _, tierDTO := range dto.Tiers {
		tier, tierErr := rate.NewTier(tierDTO.Weight, tierDTO.Volume, tierDTO.Price)
		if tierErr != nil {
			return nil, tierErr
		}
		tiers = append(tiers, tier)
	}

	return rate.RestoreEntry(id, companyPackageID, deliveryFrom, tiers)
}

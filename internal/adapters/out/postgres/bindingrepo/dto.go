// Package bindingrepo provides data transfer objects and mapping functions
// for product shipment-binding persistence. A serial column records insertion
// order; the legacy first-match resolver reads bindings in that order.
package bindingrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/kernel"
)

// BindingDTO represents the database structure for persisting product
// shipment bindings.
type BindingDTO struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Serial           int64            `gorm:"type:bigint;not null;autoIncrement;uniqueIndex"`
	BaseProductID    int64            `gorm:"type:bigint;not null;index"`
	StoreID          int64            `gorm:"type:bigint;not null;index"`
	CompanyPackageID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Volume           float64          `gorm:"type:double precision;not null"`
	Weight           float64          `gorm:"type:double precision;not null"`
	Price            *decimal.Decimal `gorm:"type:numeric(20,8)"`
}

// TableName specifies the database table name for binding entities.
func (BindingDTO) TableName() string {
	return "products"
}

// fromDomain converts a binding domain entity to its database representation.
func fromDomain(b *binding.Binding) BindingDTO {
	m := b.Measurements()
	return BindingDTO{
		ID:               b.ID().Bytes(),
		BaseProductID:    b.BaseProductID(),
		StoreID:          b.StoreID(),
		CompanyPackageID: b.CompanyPackageID().Bytes(),
		Volume:           m.Volume(),
		Weight:           m.Weight(),
		Price:            b.Price(),
	}
}

// toDomain converts a database DTO to a binding domain entity.
func toDomain(dto BindingDTO) (*binding.Binding, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyPackageID, err := kernel.UUIDFromBytes(dto.CompanyPackageID[:])
	if err != nil {
		return nil, err
	}

	measurements, err := kernel.NewDimensions(dto.Volume, dto.Weight)
	if err != nil {
		return nil, err
	}

	return binding.RestoreBinding(id, dto.BaseProductID, dto.StoreID, companyPackageID, measurements, dto.Price)
}

package binding

import (
	"errors"

	"github.com/shopspring/decimal"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Binding errors.
var (
	// ErrBaseProductIDIsInvalid is returned for a non-positive base product id.
	ErrBaseProductIDIsInvalid = errs.NewValueIsInvalidError("base product id")
	// ErrStoreIDIsInvalid is returned for a non-positive store id.
	ErrStoreIDIsInvalid = errs.NewValueIsInvalidError("store id")
	// ErrBindingIsNotConstructed is returned when using an improperly initialized Binding.
	ErrBindingIsNotConstructed = errors.New("Binding must be created via NewBinding constructor")
)

// Binding attaches a base product to a company package a shipment of it may
// travel with. A product may carry several bindings, one per offering it
// supports, and nothing forbids two bindings to the same offering. Base
// product and store ids are external integers owned by the stores service.
type Binding struct {
	id               kernel.UUID
	baseProductID    int64
	storeID          int64
	companyPackageID kernel.UUID
	measurements     kernel.Dimensions
	price            *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewBinding creates a binding with a fresh identifier. price is an optional
// fixed-price override; nil means the lane rate table applies.
func NewBinding(
	baseProductID int64,
	storeID int64,
	companyPackageID kernel.UUID,
	measurements kernel.Dimensions,
	price *decimal.Decimal,
) (*Binding, error) {
	return RestoreBinding(kernel.NewUUID(), baseProductID, storeID, companyPackageID, measurements, price)
}

// RestoreBinding reconstructs a binding from persistent storage.
func RestoreBinding(
	id kernel.UUID,
	baseProductID int64,
	storeID int64,
	companyPackageID kernel.UUID,
	measurements kernel.Dimensions,
	price *decimal.Decimal,
) (*Binding, error) {
	b := &Binding{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setBaseProductID(baseProductID),
		b.setStoreID(storeID),
		b.setCompanyPackageID(companyPackageID),
		b.setMeasurements(measurements),
	); err != nil {
		return nil, err
	}

	b.setPrice(price)
	return b, nil
}

// Validate checks that the Binding was built via its constructor.
func (b *Binding) Validate() error {
	if b == nil {
		return ErrBindingIsNotConstructed
	}
	return b.guard.Validate(ErrBindingIsNotConstructed)
}

// ID returns the binding identifier.
func (b *Binding) ID() kernel.UUID {
	return b.id
}

// BaseProductID returns the external product identifier.
func (b *Binding) BaseProductID() int64 {
	return b.baseProductID
}

// StoreID returns the owning store's external identifier.
func (b *Binding) StoreID() int64 {
	return b.storeID
}

// CompanyPackageID returns the offering the product ships with.
func (b *Binding) CompanyPackageID() kernel.UUID {
	return b.companyPackageID
}

// Measurements returns the product's declared volume and weight.
func (b *Binding) Measurements() kernel.Dimensions {
	return b.measurements
}

// Price returns the fixed-price override, nil when the rate table applies.
func (b *Binding) Price() *decimal.Decimal {
	if b.price == nil {
		return nil
	}

	price := *b.price
	return &price
}

// OwnedBy reports whether the binding belongs to the given store.
func (b *Binding) OwnedBy(storeID int64) bool {
	return b.storeID == storeID
}

func (b *Binding) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.id = id
	return nil
}

func (b *Binding) setBaseProductID(baseProductID int64) error {
	if baseProductID <= 0 {
		return ErrBaseProductIDIsInvalid
	}

	b.baseProductID = baseProductID
	return nil
}

func (b *Binding) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return ErrStoreIDIsInvalid
	}

	b.storeID = storeID
	return nil
}

func (b *Binding) setCompanyPackageID(companyPackageID kernel.UUID) error {
	if err := companyPackageID.Validate(); err != nil {
		return err
	}

	b.companyPackageID = companyPackageID
	return nil
}

func (b *Binding) setMeasurements(measurements kernel.Dimensions) error {
	if err := measurements.Validate(); err != nil {
		return err
	}

	b.measurements = measurements
	return nil
}

func (b *Binding) setPrice(price *decimal.Decimal) {
	if price == nil {
		b.price = nil
		return
	}

	p := *price
	b.price = &p
}

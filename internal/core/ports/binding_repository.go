package ports

import (
	"context"

	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/kernel"
)

// BindingRepository defines the persistence contract for product shipment
// bindings. Row order is insertion order; the legacy resolver depends on it.
type BindingRepository interface {
	// Add persists a new binding.
	Add(ctx context.Context, aggregate *binding.Binding) error

	// Get retrieves a binding by id.
	Get(ctx context.Context, id kernel.UUID) (*binding.Binding, error)

	// GetByBaseProduct retrieves a product's bindings in insertion order.
	GetByBaseProduct(ctx context.Context, baseProductID int64) ([]*binding.Binding, error)

	// DeleteByBaseProduct removes every binding of a product.
	DeleteByBaseProduct(ctx context.Context, baseProductID int64) error

	// DeleteByCompanyPackage removes every binding referencing an offering.
	// Called when the offering itself is deleted.
	DeleteByCompanyPackage(ctx context.Context, companyPackageID kernel.UUID) error
}

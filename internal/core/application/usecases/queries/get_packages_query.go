package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetPackagesQueryIsNotConstructed = errors.New(
	"GetPackagesQuery must be created via NewGetPackagesQuery constructor",
)

// GetPackagesQuery retrieves every registered package tier.
type GetPackagesQuery struct {
	actor *int64

	guard guard.ConstructorGuard
}

// NewGetPackagesQuery creates a query for the package list.
func NewGetPackagesQuery(actor *int64) GetPackagesQuery {
	return GetPackagesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagesQueryIsNotConstructed)
}

// PackageResponse represents one package tier in the read model.
type PackageResponse struct {
	ID           kernel.UUID `json:"id"`
	Name         string      `json:"name"`
	MaxSize      float64     `json:"max_size"`
	MaxWeight    float64     `json:"max_weight"`
	DeliveriesTo []string    `json:"deliveries_to"`
}

// GetPackagesQueryHandler retrieves package read models directly from the
// database, sorted by name.
type GetPackagesQueryHandler struct {
	auth Authorizer
	db   *gorm.DB
}

// NewGetPackagesQueryHandler creates a handler for package listing.
func NewGetPackagesQueryHandler(auth Authorizer, db *gorm.DB) GetPackagesQueryHandler {
	return GetPackagesQueryHandler{
		auth: auth,
		db:   db,
	}
}

// Handle executes the package listing.
func (h GetPackagesQueryHandler) Handle(ctx context.Context, query GetPackagesQuery) ([]PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourcePackage, access.ActionRead, nil); err != nil {
		return nil, err
	}

	packages := make([]PackageResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			max_size,
			max_weight,
			deliveries_to
		FROM packages
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pkg          PackageResponse
			id           uuid.UUID
			deliveriesTo pq.StringArray
		)

		err = rows.Scan(
			&id,
			&pkg.Name,
			&pkg.MaxSize,
			&pkg.MaxWeight,
			&deliveriesTo,
		)
		if err != nil {
			return nil, err
		}

		packageID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pkg.ID = packageID
		pkg.DeliveriesTo = deliveriesTo

		packages = append(packages, pkg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}

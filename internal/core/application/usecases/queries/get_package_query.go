package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrGetPackageQueryIsNotConstructed = errors.New(
	"GetPackageQuery must be created via NewGetPackageQuery constructor",
)

// GetPackageQuery retrieves one package tier by id.
type GetPackageQuery struct {
	actor     *int64
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackageQuery creates a query for one package tier.
func NewGetPackageQuery(actor *int64, packageID kernel.UUID) (GetPackageQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPackageQuery{}, err
	}

	return GetPackageQuery{
		actor:     actor,
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// GetPackageQueryHandler retrieves one package through the repository.
type GetPackageQueryHandler struct {
	auth     Authorizer
	packages ports.PackageRepository
}

// NewGetPackageQueryHandler creates a handler for single-package retrieval.
func NewGetPackageQueryHandler(auth Authorizer, packages ports.PackageRepository) GetPackageQueryHandler {
	return GetPackageQueryHandler{
		auth:     auth,
		packages: packages,
	}
}

// Handle executes the package retrieval.
func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return PackageResponse{}, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourcePackage, access.ActionRead, nil); err != nil {
		return PackageResponse{}, err
	}

	pkg, err := h.packages.Get(ctx, query.packageID)
	if err != nil {
		return PackageResponse{}, err
	}

	deliveriesTo := make([]string, 0, len(pkg.DeliveriesTo()))
	for _, code := range pkg.DeliveriesTo() {
		deliveriesTo = append(deliveriesTo, string(code))
	}

	return PackageResponse{
		ID:           pkg.ID(),
		Name:         pkg.Name(),
		MaxSize:      pkg.MaxSize(),
		MaxWeight:    pkg.MaxWeight(),
		DeliveriesTo: deliveriesTo,
	}, nil
}

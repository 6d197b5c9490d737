// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Catalog listings read the database directly for optimized read models;
// availability and pricing queries assemble domain entities through the
// repository ports so the resolver logic stays in the domain layer.
package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// Authorizer approves or denies the acting user's operation before any read
// happens. Satisfied by access.Engine.
type Authorizer interface {
	Authorize(
		ctx context.Context,
		userID *int64,
		resource access.Resource,
		action access.Action,
		target access.Ownable,
	) error
}

// OfferAssembler hydrates resolver offers from the catalog repositories: the
// offering row, its company and package, and the restriction keyed by the
// composite name when one exists.
type OfferAssembler struct {
	companies ports.CompanyRepository
	packages  ports.PackageRepository
	offerings ports.CompanyPackageRepository
}

func NewOfferAssembler(
	companies ports.CompanyRepository,
	packages ports.PackageRepository,
	offerings ports.CompanyPackageRepository,
) OfferAssembler {
	return OfferAssembler{
		companies: companies,
		packages:  packages,
		offerings: offerings,
	}
}

// offerFor assembles the resolver offer for one offering.
func (a OfferAssembler) offerFor(ctx context.Context, cp *catalog.CompanyPackage) (services.Offer, error) {
	company, err := a.companies.Get(ctx, cp.CompanyID())
	if err != nil {
		return services.Offer{}, err
	}

	pkg, err := a.packages.Get(ctx, cp.PackageID())
	if err != nil {
		return services.Offer{}, err
	}

	offer := services.Offer{
		CompanyPackage: cp,
		Company:        company,
		Package:        pkg,
	}

	restriction, err := a.offerings.GetRestriction(ctx, catalog.CompositeName(company.Name(), pkg.Name()))
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return offer, nil
		}
		return services.Offer{}, err
	}

	offer.Restriction = restriction
	return offer, nil
}

// compositeNameOf renders an offer's display name.
func compositeNameOf(offer services.Offer) string {
	return catalog.CompositeName(offer.Company.Name(), offer.Package.Name())
}

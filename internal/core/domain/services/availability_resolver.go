package services

import (
	"sort"

	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Offer bundles a company package with the entities its eligibility depends
// on: the selling company (origin set), the package tier (default capacity
// ceilings) and the optional restriction (destination allow-list and ceiling
// overrides). Built by the read side, never persisted.
type Offer struct {
	CompanyPackage *catalog.CompanyPackage
	Company        *catalog.Company
	Package        *catalog.Package
	Restriction    *catalog.Restriction
}

// MaxSize returns the effective size ceiling: the restriction override when
// present, the package default otherwise.
func (o Offer) MaxSize() float64 {
	if o.Restriction != nil {
		return o.Restriction.MaxSize()
	}
	return o.Package.MaxSize()
}

// MaxWeight returns the effective weight ceiling.
func (o Offer) MaxWeight() float64 {
	if o.Restriction != nil {
		return o.Restriction.MaxWeight()
	}
	return o.Package.MaxWeight()
}

// AdmitsDestination reports whether the offer may deliver to the country.
// No restriction means unrestricted; a non-empty allow-list is absolute.
func (o Offer) AdmitsDestination(destination kernel.Alpha3) bool {
	if o.Restriction == nil {
		return true
	}
	return o.Restriction.AdmitsDestination(destination)
}

// Candidate is one product shipment binding together with its offer.
type Candidate struct {
	Binding *binding.Binding
	Offer   Offer
}

// AvailabilityResolver is the domain service deciding which company packages
// can carry a given shipment. Two resolution strategies coexist:
//
//   - v1 scans a product's bindings in their natural (insertion) order and
//     returns the first whose restriction admits the destination. When a
//     product holds several qualifying bindings the answer depends on row
//     order — a known defect kept for backward compatibility, since callers
//     of the legacy endpoints depend on its exact behavior.
//   - v2 pins the full four-tuple (product, origin, destination, parcel
//     dimensions) and demands a unique match: zero matches is not-found,
//     more than one is a data-integrity condition reported as an ambiguous
//     match, never silently narrowed to one.
//
// Every call is stateless; the resolver mutates nothing and holds no caches.
type AvailabilityResolver struct{}

// NewAvailabilityResolver creates an AvailabilityResolver.
func NewAvailabilityResolver() AvailabilityResolver {
	return AvailabilityResolver{}
}

// Eligible is the matching predicate shared by both strategies: the offer
// admits the destination, the parcel fits the effective ceilings, and the
// selling company ships from the origin.
func (AvailabilityResolver) Eligible(
	offer Offer,
	deliveryFrom kernel.Alpha3,
	deliveryTo kernel.Alpha3,
	volume float64,
	weight float64,
) bool {
	if !offer.AdmitsDestination(deliveryTo) {
		return false
	}
	if volume > offer.MaxSize() || weight > offer.MaxWeight() {
		return false
	}
	return offer.Company.ShipsFrom(deliveryFrom)
}

// FindFirstMatch is the v1 strategy. The caller supplies no origin and no
// explicit dimensions; each binding is checked against its own declared
// measurements and the destination only, and the first match in candidate
// order wins. Returns ObjectNotFound when nothing matches.
func (AvailabilityResolver) FindFirstMatch(candidates []Candidate, deliveryTo kernel.Alpha3) (Candidate, error) {
	for _, c := range candidates {
		if err := c.Binding.Validate(); err != nil {
			return Candidate{}, err
		}

		if !c.Offer.AdmitsDestination(deliveryTo) {
			continue
		}

		m := c.Binding.Measurements()
		if m.Volume() > c.Offer.MaxSize() || m.Weight() > c.Offer.MaxWeight() {
			continue
		}

		return c, nil
	}

	return Candidate{}, errs.NewObjectNotFoundError("deliveryTo", deliveryTo)
}

// ResolveUnique is the v2 strategy: applies the shared predicate to every
// candidate and requires exactly one survivor. Zero survivors returns
// ObjectNotFound; two or more return AmbiguousMatch.
func (r AvailabilityResolver) ResolveUnique(
	candidates []Candidate,
	deliveryFrom kernel.Alpha3,
	deliveryTo kernel.Alpha3,
	volume float64,
	weight float64,
) (Candidate, error) {
	var (
		matched Candidate
		count   int
	)

	for _, c := range candidates {
		if err := c.Binding.Validate(); err != nil {
			return Candidate{}, err
		}

		if !r.Eligible(c.Offer, deliveryFrom, deliveryTo, volume, weight) {
			continue
		}

		matched = c
		count++
	}

	switch count {
	case 0:
		return Candidate{}, errs.NewObjectNotFoundError("deliveryTo", deliveryTo)
	case 1:
		return matched, nil
	default:
		return Candidate{}, errs.NewAmbiguousMatchError("companyPackage", count)
	}
}

// FilterByCapacity is the generic discovery strategy: offers whose company
// ships from the origin and whose effective ceilings fit the parcel. No
// destination is given, so restriction allow-lists are ignored. The result
// is sorted ascending by company package id for determinism.
func (AvailabilityResolver) FilterByCapacity(
	offers []Offer,
	deliveryFrom kernel.Alpha3,
	size float64,
	weight float64,
) []Offer {
	eligible := make([]Offer, 0, len(offers))
	for _, o := range offers {
		if !o.Company.ShipsFrom(deliveryFrom) {
			continue
		}
		if size > o.MaxSize() || weight > o.MaxWeight() {
			continue
		}
		eligible = append(eligible, o)
	}

	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].CompanyPackage.ID().String() < eligible[j].CompanyPackage.ID().String()
	})

	return eligible
}

package queries

import (
	"context"

	"github.com/shopspring/decimal"

	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// AvailablePackageResponse is the resolver output projection: one offering a
// shipment may use, with its composite display name and, when the strategy
// computed one, a price. ShippingID is set when the result was resolved from
// a concrete product binding.
type AvailablePackageResponse struct {
	ID           kernel.UUID      `json:"id"`
	Name         string           `json:"name"`
	DeliveriesTo []string         `json:"deliveries_to"`
	Currency     string           `json:"currency"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	ShippingID   *kernel.UUID     `json:"shipping_id,omitempty"`
}

// availablePackageFromOffer projects an offer to the read model. The
// destination list comes from the restriction allow-list when one is set,
// from the package's declared destinations otherwise.
func availablePackageFromOffer(offer services.Offer) AvailablePackageResponse {
	destinations := offer.Package.DeliveriesTo()
	if offer.Restriction != nil && len(offer.Restriction.DeliveriesTo()) > 0 {
		destinations = offer.Restriction.DeliveriesTo()
	}

	deliveriesTo := make([]string, 0, len(destinations))
	for _, code := range destinations {
		deliveriesTo = append(deliveriesTo, string(code))
	}

	return AvailablePackageResponse{
		ID:           offer.CompanyPackage.ID(),
		Name:         compositeNameOf(offer),
		DeliveriesTo: deliveriesTo,
		Currency:     string(offer.CompanyPackage.Currency()),
	}
}

// availablePackageFromCandidate projects a resolved binding to the read model.
func availablePackageFromCandidate(candidate services.Candidate) AvailablePackageResponse {
	resp := availablePackageFromOffer(candidate.Offer)
	shippingID := candidate.Binding.ID()
	resp.ShippingID = &shippingID
	resp.Price = candidate.Binding.Price()
	return resp
}

// CandidateAssembler turns persisted bindings into resolver candidates,
// hydrating each referenced offering once.
type CandidateAssembler struct {
	offers    OfferAssembler
	offerings ports.CompanyPackageRepository
}

func NewCandidateAssembler(offers OfferAssembler, offerings ports.CompanyPackageRepository) CandidateAssembler {
	return CandidateAssembler{
		offers:    offers,
		offerings: offerings,
	}
}

// candidatesFor assembles candidates preserving the bindings' order. Offers
// are cached per offering id since several bindings of one product routinely
// reference the same offering.
func (a CandidateAssembler) candidatesFor(
	ctx context.Context,
	bindings []*binding.Binding,
) ([]services.Candidate, error) {
	cache := make(map[kernel.UUID]services.Offer)
	candidates := make([]services.Candidate, 0, len(bindings))

	for _, b := range bindings {
		offer, ok := cache[b.CompanyPackageID()]
		if !ok {
			cp, err := a.offerings.Get(ctx, b.CompanyPackageID())
			if err != nil {
				return nil, err
			}

			offer, err = a.offers.offerFor(ctx, cp)
			if err != nil {
				return nil, err
			}

			cache[b.CompanyPackageID()] = offer
		}

		candidates = append(candidates, services.Candidate{Binding: b, Offer: offer})
	}

	return candidates, nil
}

package queries

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetShippingQueryIsNotConstructed = errors.New(
		"GetShippingQuery must be created via NewGetShippingQuery constructor",
	)
	ErrBaseProductIDIsInvalid = errors.New("base product id must be positive")
)

// GetShippingQuery retrieves a product's shipment bindings.
type GetShippingQuery struct {
	actor         *int64
	baseProductID int64

	guard guard.ConstructorGuard
}

// NewGetShippingQuery creates a query for a product's bindings.
func NewGetShippingQuery(actor *int64, baseProductID int64) (GetShippingQuery, error) {
	if baseProductID <= 0 {
		return GetShippingQuery{}, ErrBaseProductIDIsInvalid
	}

	return GetShippingQuery{
		actor:         actor,
		baseProductID: baseProductID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShippingQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingQueryIsNotConstructed)
}

// ShippingResponse represents one product shipment binding in the read model.
type ShippingResponse struct {
	ID               kernel.UUID      `json:"id"`
	BaseProductID    int64            `json:"base_product_id"`
	StoreID          int64            `json:"store_id"`
	CompanyPackageID kernel.UUID      `json:"company_package_id"`
	Volume           float64          `json:"volume"`
	Weight           float64          `json:"weight"`
	Price            *decimal.Decimal `json:"price,omitempty"`
}

// GetShippingQueryHandler retrieves bindings in their insertion order.
// Shipment configuration is store-owned data, so access is checked against
// the owning store of the product's bindings.
type GetShippingQueryHandler struct {
	auth     Authorizer
	bindings ports.BindingRepository
}

// NewGetShippingQueryHandler creates a handler for binding retrieval.
func NewGetShippingQueryHandler(auth Authorizer, bindings ports.BindingRepository) GetShippingQueryHandler {
	return GetShippingQueryHandler{
		auth:     auth,
		bindings: bindings,
	}
}

// Handle executes the binding retrieval.
func (h GetShippingQueryHandler) Handle(ctx context.Context, query GetShippingQuery) ([]ShippingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bindings, err := h.bindings.GetByBaseProduct(ctx, query.baseProductID)
	if err != nil {
		return nil, err
	}

	var target access.Ownable
	if len(bindings) > 0 {
		target = bindings[0]
	}

	if err = h.auth.Authorize(ctx, query.actor, access.ResourceShipping, access.ActionRead, target); err != nil {
		return nil, err
	}

	responses := make([]ShippingResponse, 0, len(bindings))
	for _, b := range bindings {
		responses = append(responses, ShippingResponse{
			ID:               b.ID(),
			BaseProductID:    b.BaseProductID(),
			StoreID:          b.StoreID(),
			CompanyPackageID: b.CompanyPackageID(),
			Volume:           b.Measurements().Volume(),
			Weight:           b.Measurements().Weight(),
			Price:            b.Price(),
		})
	}

	return responses, nil
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
)

// GetShippingRates handles GET /companies_packages/:id/rates.
func (s *Server) GetShippingRates(ctx echo.Context) error {
	offeringID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetShippingRatesQuery(actorID(ctx), offeringID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	rates, err := s.handlers.ShippingRates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, rates)
}

// ReplaceShippingRates handles PUT /companies_packages/:id/rates.
func (s *Server) ReplaceShippingRates(ctx echo.Context) error {
	offeringID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req ReplaceRatesRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	tiers := make([]commands.TierSpec, 0, len(req.Tiers))
	for _, tier := range req.Tiers {
		tiers = append(tiers, commands.TierSpec{
			Weight: tier.Weight,
			Volume: tier.Volume,
			Price:  tier.Price,
		})
	}

	cmd, err := commands.NewReplaceShippingRatesCommand(actorID(ctx), offeringID, req.DeliveryFrom, tiers)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.ReplaceShippingRates.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetDeliveryPrice handles GET /companies_packages/:id/price.
func (s *Server) GetDeliveryPrice(ctx echo.Context) error {
	offeringID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	deliveryFrom, err := kernel.NewAlpha3(ctx.QueryParam("delivery_from"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	deliveryTo, err := kernel.NewAlpha3(ctx.QueryParam("delivery_to"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	volume, err := queryFloat64(ctx, "volume")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	weight, err := queryFloat64(ctx, "weight")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetDeliveryPriceQuery(actorID(ctx), offeringID, deliveryFrom, deliveryTo, volume, weight)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	price, err := s.handlers.DeliveryPrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, price)
}

// GetShipping handles GET /products/:id.
func (s *Server) GetShipping(ctx echo.Context) error {
	baseProductID, err := pathInt64(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetShippingQuery(actorID(ctx), baseProductID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	bindings, err := s.handlers.Shipping.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bindings)
}

// UpsertShipping handles PUT /products/:id.
func (s *Server) UpsertShipping(ctx echo.Context) error {
	baseProductID, err := pathInt64(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req UpsertShippingRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	bindings := make([]commands.BindingSpec, 0, len(req.Bindings))
	for _, b := range req.Bindings {
		offeringID, idErr := kernel.UUIDFromString(b.CompanyPackageID)
		if idErr != nil {
			return respondBadRequest(ctx, idErr)
		}

		bindings = append(bindings, commands.BindingSpec{
			CompanyPackageID: offeringID,
			Volume:           b.Volume,
			Weight:           b.Weight,
			Price:            b.Price,
		})
	}

	cmd, err := commands.NewUpsertShippingCommand(actorID(ctx), baseProductID, req.StoreID, bindings)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.UpsertShipping.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteShipping handles DELETE /products/:id.
func (s *Server) DeleteShipping(ctx echo.Context) error {
	baseProductID, err := pathInt64(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteShippingCommand(actorID(ctx), baseProductID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.DeleteShipping.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
)

// GetAvailablePackages handles GET /available_packages: which offerings could
// carry a parcel from an origin, with no destination and no pricing.
func (s *Server) GetAvailablePackages(ctx echo.Context) error {
	deliveryFrom, err := kernel.NewAlpha3(ctx.QueryParam("country"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	size, err := queryFloat64(ctx, "size")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	weight, err := queryFloat64(ctx, "weight")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetAvailablePackagesQuery(actorID(ctx), deliveryFrom, size, weight)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	packages, err := s.handlers.AvailablePackages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packages)
}

// FindAvailableShipping handles GET /available_packages_for_user/:base_product_id,
// the legacy destination-only lookup.
func (s *Server) FindAvailableShipping(ctx echo.Context) error {
	baseProductID, err := pathInt64(ctx, "base_product_id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	userCountry, err := kernel.NewAlpha3(ctx.QueryParam("user_country"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewFindAvailableShippingQuery(actorID(ctx), baseProductID, userCountry)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	found, err := s.handlers.FindShipping.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// GetAvailablePackage handles
// GET /available_packages_for_user/:base_product_id/:company_package_id,
// the legacy pair lookup. Deprecated in favor of the shipping-id routes.
func (s *Server) GetAvailablePackage(ctx echo.Context) error {
	baseProductID, err := pathInt64(ctx, "base_product_id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	offeringID, err := pathUUID(ctx, "company_package_id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetAvailablePackageQuery(actorID(ctx), baseProductID, offeringID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	found, err := s.handlers.AvailablePackage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// GetAvailablePackageByShippingID handles
// GET /available_packages_for_user/shipping/:shipping_id.
func (s *Server) GetAvailablePackageByShippingID(ctx echo.Context) error {
	shippingID, err := pathUUID(ctx, "shipping_id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetAvailablePackageByShippingIDQuery(actorID(ctx), shippingID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	found, err := s.handlers.AvailableByShipping.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// FindAvailableShippingV2 handles
// GET /v2/available_packages_for_user/:base_product_id, the deterministic
// lookup requiring origin, destination and parcel dimensions.
func (s *Server) FindAvailableShippingV2(ctx echo.Context) error {
	baseProductID, err := pathInt64(ctx, "base_product_id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	deliveryFrom, deliveryTo, volume, weight, err := shipmentParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewFindAvailableShippingV2Query(
		actorID(ctx),
		baseProductID,
		deliveryFrom,
		deliveryTo,
		volume,
		weight,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	found, err := s.handlers.FindShippingV2.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// GetAvailablePackageByShippingIDV2 handles
// GET /v2/available_packages_for_user/shipping/:shipping_id, the
// deterministic re-pricing confirmation of one known binding.
func (s *Server) GetAvailablePackageByShippingIDV2(ctx echo.Context) error {
	shippingID, err := pathUUID(ctx, "shipping_id")
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	deliveryFrom, deliveryTo, volume, weight, err := shipmentParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetAvailablePackageByShippingIDV2Query(
		actorID(ctx),
		shippingID,
		deliveryFrom,
		deliveryTo,
		volume,
		weight,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	found, err := s.handlers.AvailableByShippingV2.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// shipmentParams parses the four shipment query parameters of the v2 and
// pricing routes.
func shipmentParams(ctx echo.Context) (kernel.Alpha3, kernel.Alpha3, float64, float64, error) {
	deliveryFrom, err := kernel.NewAlpha3(ctx.QueryParam("delivery_from"))
	if err != nil {
		return "", "", 0, 0, err
	}

	deliveryTo, err := kernel.NewAlpha3(ctx.QueryParam("delivery_to"))
	if err != nil {
		return "", "", 0, 0, err
	}

	volume, err := queryFloat64(ctx, "volume")
	if err != nil {
		return "", "", 0, 0, err
	}

	weight, err := queryFloat64(ctx, "weight")
	if err != nil {
		return "", "", 0, 0, err
	}

	return deliveryFrom, deliveryTo, volume, weight, nil
}

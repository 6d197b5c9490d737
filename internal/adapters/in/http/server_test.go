package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/catalog"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"
)

func testContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type allowAllAuthorizer struct{}

func (allowAllAuthorizer) Authorize(
	_ context.Context, _ *int64, _ access.Resource, _ access.Action, _ access.Ownable,
) error {
	return nil
}

// emptyOfferingRepository serves an empty catalog.
type emptyOfferingRepository struct{}

func (emptyOfferingRepository) Add(context.Context, *catalog.CompanyPackage) error { return nil }
func (emptyOfferingRepository) Delete(context.Context, kernel.UUID) error          { return nil }
func (emptyOfferingRepository) Get(context.Context, kernel.UUID) (*catalog.CompanyPackage, error) {
	return nil, errs.NewObjectNotFoundError("id", nil)
}
func (emptyOfferingRepository) GetAll(context.Context) ([]*catalog.CompanyPackage, error) {
	return nil, nil
}
func (emptyOfferingRepository) GetByCompany(context.Context, kernel.UUID) ([]*catalog.CompanyPackage, error) {
	return nil, nil
}
func (emptyOfferingRepository) GetByPackage(context.Context, kernel.UUID) ([]*catalog.CompanyPackage, error) {
	return nil, nil
}
func (emptyOfferingRepository) AddRestriction(context.Context, *catalog.Restriction) error {
	return nil
}
func (emptyOfferingRepository) GetRestriction(context.Context, string) (*catalog.Restriction, error) {
	return nil, errs.NewObjectNotFoundError("name", nil)
}
func (emptyOfferingRepository) DeleteRestriction(context.Context, string) error { return nil }

func TestServer_RespondError_MapsDomainErrors(t *testing.T) {
	server := NewServer(Handlers{}, slog.New(slog.DiscardHandler))

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"should map missing object to 404", errs.NewObjectNotFoundError("company", "x"), http.StatusNotFound},
		{"should map denied access to 403", errs.NewForbiddenError("companies", "create"), http.StatusForbidden},
		{"should map ambiguous match to 409", errs.NewAmbiguousMatchError("base_product_id", 2), http.StatusConflict},
		{"should map missing rate to 422", errs.NewNoApplicableRateError(10, 40), http.StatusUnprocessableEntity},
		{"should map invalid value to 400", errs.NewValueIsInvalidError("currency"), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, rec := testContext(t, "/companies")

			require.NoError(t, server.respondError(ctx, tc.err))

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.err.Error(), decodeError(t, rec).Message)
		})
	}
}

func TestServer_RespondError_WithholdsAndLogsInternalFailures(t *testing.T) {
	// Arrange
	var logged bytes.Buffer
	server := NewServer(Handlers{}, slog.New(slog.NewTextHandler(&logged, nil)))
	ctx, rec := testContext(t, "/companies")
	cause := errors.New("driver: bad connection")

	// Act
	err := server.respondError(ctx, cause)

	// Assert: the client sees a generic 500 while the cause lands in the log.
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decodeError(t, rec).Message)
	assert.NotContains(t, rec.Body.String(), "bad connection")
	assert.Contains(t, logged.String(), "driver: bad connection")
}

func TestServer_GetAvailablePackages_ReadsCountryParam(t *testing.T) {
	handler := queries.NewGetAvailablePackagesQueryHandler(
		allowAllAuthorizer{},
		queries.NewOfferAssembler(nil, nil, emptyOfferingRepository{}),
		emptyOfferingRepository{},
		services.NewAvailabilityResolver(),
	)
	server := NewServer(Handlers{AvailablePackages: handler}, slog.New(slog.DiscardHandler))

	t.Run("should accept the country query parameter", func(t *testing.T) {
		ctx, rec := testContext(t, "/available_packages?country=USA&size=10&weight=5")

		require.NoError(t, server.GetAvailablePackages(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject a request without it", func(t *testing.T) {
		ctx, rec := testContext(t, "/available_packages?delivery_from=USA&size=10&weight=5")

		require.NoError(t, server.GetAvailablePackages(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shipping/internal/pkg/errs"
)

// ErrorResponse is the uniform error body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps a use-case error to an HTTP status: invalid input is
// 400, denied access 403, missing objects 404, an ambiguous resolver match
// 409, a parcel no published tier covers 422. Anything unrecognized — a
// storage or infrastructure failure — is logged with its cause and answered
// as a 500 with the detail withheld from the body.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var (
		notFound   *errs.ObjectNotFoundError
		forbidden  *errs.ForbiddenError
		ambiguous  *errs.AmbiguousMatchError
		noRate     *errs.NoApplicableRateError
		invalid    *errs.ValueIsInvalidError
		required   *errs.ValueIsRequiredError
		outOfRange *errs.ValueIsOutOfRangeError
		badVersion *errs.VersionIsInvalidError
	)

	switch {
	case errors.As(err, &notFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.As(err, &forbidden):
		return respond(ctx, http.StatusForbidden, err)
	case errors.As(err, &ambiguous):
		return respond(ctx, http.StatusConflict, err)
	case errors.As(err, &noRate):
		return respond(ctx, http.StatusUnprocessableEntity, err)
	case errors.As(err, &invalid), errors.As(err, &required),
		errors.As(err, &outOfRange), errors.As(err, &badVersion):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

// respondBadRequest reports a request that failed binding, struct validation
// or command construction.
func respondBadRequest(ctx echo.Context, err error) error {
	return respond(ctx, http.StatusBadRequest, err)
}

func respond(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
)

// GetRoles handles GET /roles?user_id=.
func (s *Server) GetRoles(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.QueryParam("user_id"), 10, 64)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetRolesQuery(actorID(ctx), userID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	roles, err := s.handlers.Roles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, roles)
}

// CreateRole handles POST /roles.
func (s *Server) CreateRole(ctx echo.Context) error {
	var req CreateRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewCreateRoleCommand(actorID(ctx), req.UserID, req.Name, req.Data)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.CreateRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteRole handles DELETE /roles.
func (s *Server) DeleteRole(ctx echo.Context) error {
	var req DeleteRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteRoleCommand(actorID(ctx), req.UserID, req.Name)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err = s.handlers.DeleteRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

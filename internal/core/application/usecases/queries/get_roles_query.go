package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrGetRolesQueryIsNotConstructed = errors.New(
	"GetRolesQuery must be created via NewGetRolesQuery constructor",
)

// GetRolesQuery retrieves the roles assigned to one user.
type GetRolesQuery struct {
	actor  *int64
	userID int64

	guard guard.ConstructorGuard
}

// NewGetRolesQuery creates a query for a user's roles.
func NewGetRolesQuery(actor *int64, userID int64) (GetRolesQuery, error) {
	if userID <= 0 {
		return GetRolesQuery{}, access.ErrUserIDIsInvalid
	}

	return GetRolesQuery{
		actor:  actor,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRolesQuery) Validate() error {
	return q.guard.Validate(ErrGetRolesQueryIsNotConstructed)
}

// RoleResponse represents one role assignment in the read model. Data is the
// role's owner key, the managed store id for store managers.
type RoleResponse struct {
	ID     kernel.UUID `json:"id"`
	UserID int64       `json:"user_id"`
	Name   string      `json:"name"`
	Data   *int64      `json:"data,omitempty"`
}

// GetRolesQueryHandler retrieves role assignments through the repository.
type GetRolesQueryHandler struct {
	auth  Authorizer
	roles ports.RoleRepository
}

// NewGetRolesQueryHandler creates a handler for role listing.
func NewGetRolesQueryHandler(auth Authorizer, roles ports.RoleRepository) GetRolesQueryHandler {
	return GetRolesQueryHandler{
		auth:  auth,
		roles: roles,
	}
}

// Handle executes the role listing.
func (h GetRolesQueryHandler) Handle(ctx context.Context, query GetRolesQuery) ([]RoleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.auth.Authorize(ctx, query.actor, access.ResourceRole, access.ActionRead, nil); err != nil {
		return nil, err
	}

	roles, err := h.roles.GetRolesByUserID(ctx, query.userID)
	if err != nil {
		return nil, err
	}

	responses := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, RoleResponse{
			ID:     role.ID(),
			UserID: role.UserID(),
			Name:   string(role.Name()),
			Data:   role.Data(),
		})
	}

	return responses, nil
}

package ports

import (
	"context"

	"shipping/internal/core/domain/model/access"
)

// RoleRepository defines the persistence contract for user role grants.
// Satisfies access.RoleSource so the engine reads grants fresh per call.
type RoleRepository interface {
	// Add persists a new role grant.
	Add(ctx context.Context, aggregate *access.Role) error

	// Delete removes a user's grant of the given role kind.
	Delete(ctx context.Context, userID int64, name access.RoleName) error

	// GetRolesByUserID retrieves a user's current grants.
	GetRolesByUserID(ctx context.Context, userID int64) ([]*access.Role, error)
}

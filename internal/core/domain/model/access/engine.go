package access

import (
	"context"
	"errors"

	"shipping/internal/pkg/errs"
)

// ErrEngineIsNotConstructed is returned when using an improperly initialized Engine.
var ErrEngineIsNotConstructed = errors.New("Engine must be created via NewEngine constructor")

// ErrRoleSourceIsRequired is returned when creating an engine without a role source.
var ErrRoleSourceIsRequired = errs.NewValueIsRequiredError("roleSource")

// Ownable is a resource instance that knows which owner key it belongs to.
// Shipment bindings are owned by their store.
type Ownable interface {
	OwnedBy(ownerKey int64) bool
}

// RoleSource supplies the caller's current role grants.
type RoleSource interface {
	GetRolesByUserID(ctx context.Context, userID int64) ([]*Role, error)
}

// Engine is the authorization decision point. Every use case calls Authorize
// before touching storage. Decisions are made against a static rule table
// plus the caller's roles, fetched fresh on every call so a revoked grant
// takes effect immediately.
type Engine struct {
	roleSource RoleSource
}

// NewEngine creates the authorization engine.
func NewEngine(roleSource RoleSource) (*Engine, error) {
	if roleSource == nil {
		return nil, ErrRoleSourceIsRequired
	}

	return &Engine{roleSource: roleSource}, nil
}

// Authorize approves or denies an action on a resource. userID is nil for
// anonymous callers. target carries the located resource instance for
// ownership checks; a nil target under an Owned rule is evaluated
// permissively because the underlying query filters by ownership itself.
//
// A role lookup failure counts as zero roles and therefore denies, never
// surfaces as a connection error.
func (e *Engine) Authorize(
	ctx context.Context,
	userID *int64,
	resource Resource,
	action Action,
	target Ownable,
) error {
	if e == nil || e.roleSource == nil {
		return ErrEngineIsNotConstructed
	}

	roles := e.fetchRoles(ctx, userID)
	for _, role := range roles {
		if role.Name() == RoleSuperuser {
			return nil
		}
	}

	r, ok := rules[ruleKey{resource: resource, action: action}]
	if !ok {
		return errs.NewForbiddenError(string(resource), string(action))
	}

	if r.anonymous {
		return nil
	}
	if userID == nil {
		return errs.NewForbiddenError(string(resource), string(action))
	}

	for _, role := range roles {
		if !acceptsRole(r, role.Name()) {
			continue
		}
		if r.scope == ScopeAll {
			return nil
		}
		if target == nil {
			// List-shaped calls have no instance yet; the query filters
			// by the caller's ownership discriminant.
			return nil
		}
		if role.Data() != nil && target.OwnedBy(*role.Data()) {
			return nil
		}
	}

	return errs.NewForbiddenError(string(resource), string(action))
}

func (e *Engine) fetchRoles(ctx context.Context, userID *int64) []*Role {
	if userID == nil {
		return nil
	}

	roles, err := e.roleSource.GetRolesByUserID(ctx, *userID)
	if err != nil {
		return nil
	}
	return roles
}

func acceptsRole(r rule, name RoleName) bool {
	for _, accepted := range r.roles {
		if accepted == name {
			return true
		}
	}
	return false
}

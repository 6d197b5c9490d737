package access

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// RoleName is one of the fixed role kinds known to the rule table.
type RoleName string

// Role kinds.
const (
	// RoleSuperuser may perform any operation.
	RoleSuperuser RoleName = "superuser"
	// RoleStoreManager owns the shipment bindings of the store in the role data.
	RoleStoreManager RoleName = "store_manager"
	// RoleUser is an ordinary authenticated caller.
	RoleUser RoleName = "user"
)

// Role errors.
var (
	// ErrUserIDIsInvalid is returned for a non-positive user id.
	ErrUserIDIsInvalid = errs.NewValueIsInvalidError("user id")
	// ErrRoleNameIsInvalid is returned for an unknown role kind.
	ErrRoleNameIsInvalid = errs.NewValueIsInvalidError("role name")
	// ErrRoleIsNotConstructed is returned when using an improperly initialized Role.
	ErrRoleIsNotConstructed = errors.New("Role must be created via NewRole constructor")
)

// Role grants a user a role kind, optionally scoped by an ownership
// discriminant (the store id a store manager administers). Roles are
// read-fresh on every authorization decision.
type Role struct {
	id     kernel.UUID
	userID int64
	name   RoleName
	data   *int64

	guard guard.ConstructorGuard
}

// NewRole creates a role grant with a fresh identifier.
func NewRole(userID int64, name RoleName, data *int64) (*Role, error) {
	return RestoreRole(kernel.NewUUID(), userID, name, data)
}

// RestoreRole reconstructs a role grant from persistent storage.
func RestoreRole(id kernel.UUID, userID int64, name RoleName, data *int64) (*Role, error) {
	r := &Role{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	r.setData(data)
	return r, nil
}

// Validate checks that the Role was built via its constructor.
func (r *Role) Validate() error {
	if r == nil {
		return ErrRoleIsNotConstructed
	}
	return r.guard.Validate(ErrRoleIsNotConstructed)
}

// ID returns the grant identifier.
func (r *Role) ID() kernel.UUID {
	return r.id
}

// UserID returns the user holding the role.
func (r *Role) UserID() int64 {
	return r.userID
}

// Name returns the role kind.
func (r *Role) Name() RoleName {
	return r.name
}

// Data returns the ownership discriminant, nil when the role is unscoped.
func (r *Role) Data() *int64 {
	if r.data == nil {
		return nil
	}

	data := *r.data
	return &data
}

// Owns reports whether the role's discriminant matches the ownership key.
func (r *Role) Owns(ownerKey int64) bool {
	return r.data != nil && *r.data == ownerKey
}

func (r *Role) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Role) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	r.userID = userID
	return nil
}

func (r *Role) setName(name RoleName) error {
	switch name {
	case RoleSuperuser, RoleStoreManager, RoleUser:
		r.name = name
		return nil
	default:
		return ErrRoleNameIsInvalid
	}
}

func (r *Role) setData(data *int64) {
	if data == nil {
		r.data = nil
		return
	}

	d := *data
	r.data = &d
}

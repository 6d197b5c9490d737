package commands

import (
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/pkg/guard"
)

var ErrCreateRoleCommandIsNotConstructed = errors.New(
	"CreateRoleCommand must be created via NewCreateRoleCommand constructor",
)

// CreateRoleCommand represents a request to grant a user a role, optionally
// scoped to a store via the data discriminant.
type CreateRoleCommand struct { //nolint:recvcheck //using for validation
	actor  *int64
	userID int64
	name   access.RoleName
	data   *int64

	guard guard.ConstructorGuard
}

// NewCreateRoleCommand creates a command to grant a role.
func NewCreateRoleCommand(actor *int64, userID int64, name string, data *int64) (CreateRoleCommand, error) {
	command := CreateRoleCommand{
		actor: actor,
		data:  data,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setName(name),
	); err != nil {
		return CreateRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRoleCommand) Validate() error {
	return c.guard.Validate(ErrCreateRoleCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c CreateRoleCommand) Actor() *int64 {
	return c.actor
}

// UserID returns the grantee's user id from the command.
func (c CreateRoleCommand) UserID() int64 {
	return c.userID
}

// Name returns the role kind from the command.
func (c CreateRoleCommand) Name() access.RoleName {
	return c.name
}

// Data returns the ownership discriminant, nil when unscoped.
func (c CreateRoleCommand) Data() *int64 {
	return c.data
}

func (c *CreateRoleCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return access.ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *CreateRoleCommand) setName(name string) error {
	switch access.RoleName(name) {
	case access.RoleSuperuser, access.RoleStoreManager, access.RoleUser:
		c.name = access.RoleName(name)
		return nil
	default:
		return access.ErrRoleNameIsInvalid
	}
}

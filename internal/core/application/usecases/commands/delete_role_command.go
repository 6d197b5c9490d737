package commands

import (
	"errors"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/pkg/guard"
)

var ErrDeleteRoleCommandIsNotConstructed = errors.New(
	"DeleteRoleCommand must be created via NewDeleteRoleCommand constructor",
)

// DeleteRoleCommand represents a request to revoke a user's role grant.
type DeleteRoleCommand struct { //nolint:recvcheck //using for validation
	actor  *int64
	userID int64
	name   access.RoleName

	guard guard.ConstructorGuard
}

// NewDeleteRoleCommand creates a command to revoke a role grant.
func NewDeleteRoleCommand(actor *int64, userID int64, name string) (DeleteRoleCommand, error) {
	command := DeleteRoleCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setName(name),
	); err != nil {
		return DeleteRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRoleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRoleCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c DeleteRoleCommand) Actor() *int64 {
	return c.actor
}

// UserID returns the grantee's user id from the command.
func (c DeleteRoleCommand) UserID() int64 {
	return c.userID
}

// Name returns the role kind from the command.
func (c DeleteRoleCommand) Name() access.RoleName {
	return c.name
}

func (c *DeleteRoleCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return access.ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *DeleteRoleCommand) setName(name string) error {
	switch access.RoleName(name) {
	case access.RoleSuperuser, access.RoleStoreManager, access.RoleUser:
		c.name = access.RoleName(name)
		return nil
	default:
		return access.ErrRoleNameIsInvalid
	}
}

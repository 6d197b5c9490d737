package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand represents a request to remove a package tier.
type DeletePackageCommand struct { //nolint:recvcheck //using for validation
	actor     *int64
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePackageCommand creates a command to remove a package tier.
func NewDeletePackageCommand(actor *int64, packageID kernel.UUID) (DeletePackageCommand, error) {
	command := DeletePackageCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPackageID(packageID); err != nil {
		return DeletePackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c DeletePackageCommand) Actor() *int64 {
	return c.actor
}

// PackageID returns the target package id from the command.
func (c DeletePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c *DeletePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

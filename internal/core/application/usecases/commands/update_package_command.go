package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrUpdatePackageCommandIsNotConstructed = errors.New(
	"UpdatePackageCommand must be created via NewUpdatePackageCommand constructor",
)

// UpdatePackageCommand represents a request to replace a package tier's
// attributes wholesale.
type UpdatePackageCommand struct { //nolint:recvcheck //using for validation
	actor        *int64
	packageID    kernel.UUID
	name         string
	maxSize      float64
	maxWeight    float64
	deliveriesTo []kernel.Alpha3

	guard guard.ConstructorGuard
}

// NewUpdatePackageCommand creates a command to update a package tier.
func NewUpdatePackageCommand(
	actor *int64,
	packageID kernel.UUID,
	name string,
	maxSize float64,
	maxWeight float64,
	deliveriesTo []string,
) (UpdatePackageCommand, error) {
	command := UpdatePackageCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPackageID(packageID),
		command.setName(name),
		command.setCeilings(maxSize, maxWeight),
		command.setDeliveriesTo(deliveriesTo),
	); err != nil {
		return UpdatePackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePackageCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c UpdatePackageCommand) Actor() *int64 {
	return c.actor
}

// PackageID returns the target package id from the command.
func (c UpdatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Name returns the tier name from the command.
func (c UpdatePackageCommand) Name() string {
	return c.name
}

// MaxSize returns the size ceiling from the command.
func (c UpdatePackageCommand) MaxSize() float64 {
	return c.maxSize
}

// MaxWeight returns the weight ceiling from the command.
func (c UpdatePackageCommand) MaxWeight() float64 {
	return c.maxWeight
}

// DeliveriesTo returns the default destination codes from the command.
func (c UpdatePackageCommand) DeliveriesTo() []kernel.Alpha3 {
	return c.deliveriesTo
}

func (c *UpdatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *UpdatePackageCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdatePackageCommand) setCeilings(maxSize, maxWeight float64) error {
	if maxSize <= 0 || maxWeight <= 0 {
		return ErrCeilingIsInvalid
	}

	c.maxSize = maxSize
	c.maxWeight = maxWeight
	return nil
}

func (c *UpdatePackageCommand) setDeliveriesTo(deliveriesTo []string) error {
	codes, err := toAlpha3s(deliveriesTo)
	if err != nil {
		return err
	}

	c.deliveriesTo = codes
	return nil
}

package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreatePackageCommandIsNotConstructed = errors.New(
		"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
	)
	ErrCeilingIsInvalid = errors.New("max size and max weight must be greater than 0")
)

// CreatePackageCommand represents a request to register a package tier with
// its capacity ceilings and default destination set.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	actor        *int64
	name         string
	maxSize      float64
	maxWeight    float64
	deliveriesTo []kernel.Alpha3

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to register a package tier.
func NewCreatePackageCommand(
	actor *int64,
	name string,
	maxSize float64,
	maxWeight float64,
	deliveriesTo []string,
) (CreatePackageCommand, error) {
	command := CreatePackageCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setCeilings(maxSize, maxWeight),
		command.setDeliveriesTo(deliveriesTo),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c CreatePackageCommand) Actor() *int64 {
	return c.actor
}

// Name returns the tier name from the command.
func (c CreatePackageCommand) Name() string {
	return c.name
}

// MaxSize returns the size ceiling from the command.
func (c CreatePackageCommand) MaxSize() float64 {
	return c.maxSize
}

// MaxWeight returns the weight ceiling from the command.
func (c CreatePackageCommand) MaxWeight() float64 {
	return c.maxWeight
}

// DeliveriesTo returns the default destination codes from the command.
func (c CreatePackageCommand) DeliveriesTo() []kernel.Alpha3 {
	return c.deliveriesTo
}

func (c *CreatePackageCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePackageCommand) setCeilings(maxSize, maxWeight float64) error {
	if maxSize <= 0 || maxWeight <= 0 {
		return ErrCeilingIsInvalid
	}

	c.maxSize = maxSize
	c.maxWeight = maxWeight
	return nil
}

func (c *CreatePackageCommand) setDeliveriesTo(deliveriesTo []string) error {
	codes, err := toAlpha3s(deliveriesTo)
	if err != nil {
		return err
	}

	c.deliveriesTo = codes
	return nil
}

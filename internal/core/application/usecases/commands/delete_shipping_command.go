package commands

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrDeleteShippingCommandIsNotConstructed = errors.New(
	"DeleteShippingCommand must be created via NewDeleteShippingCommand constructor",
)

// DeleteShippingCommand represents a request to clear a base product's
// shipment bindings, typically when the product itself is removed.
type DeleteShippingCommand struct { //nolint:recvcheck //using for validation
	actor         *int64
	baseProductID int64

	guard guard.ConstructorGuard
}

// NewDeleteShippingCommand creates a command to clear a product's bindings.
func NewDeleteShippingCommand(actor *int64, baseProductID int64) (DeleteShippingCommand, error) {
	command := DeleteShippingCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBaseProductID(baseProductID); err != nil {
		return DeleteShippingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShippingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShippingCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c DeleteShippingCommand) Actor() *int64 {
	return c.actor
}

// BaseProductID returns the external product id from the command.
func (c DeleteShippingCommand) BaseProductID() int64 {
	return c.baseProductID
}

func (c *DeleteShippingCommand) setBaseProductID(baseProductID int64) error {
	if baseProductID <= 0 {
		return ErrBaseProductIDIsInvalid
	}

	c.baseProductID = baseProductID
	return nil
}

package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrUpsertShippingCommandIsNotConstructed = errors.New(
		"UpsertShippingCommand must be created via NewUpsertShippingCommand constructor",
	)
	ErrBaseProductIDIsInvalid = errors.New("base product id must be greater than 0")
	ErrStoreIDIsInvalid       = errors.New("store id must be greater than 0")
)

// BindingSpec carries one requested product-to-offering binding.
type BindingSpec struct {
	CompanyPackageID kernel.UUID
	Volume           float64
	Weight           float64
	Price            *decimal.Decimal
}

// UpsertShippingCommand represents a request to replace a base product's
// shipment bindings wholesale. An empty binding list clears the product's
// shipping configuration.
type UpsertShippingCommand struct { //nolint:recvcheck //using for validation
	actor         *int64
	baseProductID int64
	storeID       int64
	bindings      []BindingSpec

	guard guard.ConstructorGuard
}

// NewUpsertShippingCommand creates a command to replace a product's bindings.
func NewUpsertShippingCommand(
	actor *int64,
	baseProductID int64,
	storeID int64,
	bindings []BindingSpec,
) (UpsertShippingCommand, error) {
	command := UpsertShippingCommand{
		actor:    actor,
		bindings: bindings,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBaseProductID(baseProductID),
		command.setStoreID(storeID),
	); err != nil {
		return UpsertShippingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertShippingCommand) Validate() error {
	return c.guard.Validate(ErrUpsertShippingCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c UpsertShippingCommand) Actor() *int64 {
	return c.actor
}

// BaseProductID returns the external product id from the command.
func (c UpsertShippingCommand) BaseProductID() int64 {
	return c.baseProductID
}

// StoreID returns the owning store's id from the command.
func (c UpsertShippingCommand) StoreID() int64 {
	return c.storeID
}

// Bindings returns the requested binding specs from the command.
func (c UpsertShippingCommand) Bindings() []BindingSpec {
	return c.bindings
}

func (c *UpsertShippingCommand) setBaseProductID(baseProductID int64) error {
	if baseProductID <= 0 {
		return ErrBaseProductIDIsInvalid
	}

	c.baseProductID = baseProductID
	return nil
}

func (c *UpsertShippingCommand) setStoreID(storeID int64) error {
	if storeID <= 0 {
		return ErrStoreIDIsInvalid
	}

	c.storeID = storeID
	return nil
}

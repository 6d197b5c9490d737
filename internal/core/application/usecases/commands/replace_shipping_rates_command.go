package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/rate"
	"shipping/internal/pkg/guard"
)

var (
	ErrReplaceShippingRatesCommandIsNotConstructed = errors.New(
		"ReplaceShippingRatesCommand must be created via NewReplaceShippingRatesCommand constructor",
	)
	ErrTiersAreRequired = errors.New("at least one rate tier is required")
)

// TierSpec carries one price tier of a lane replacement request.
type TierSpec struct {
	Weight float64
	Volume float64
	Price  decimal.Decimal
}

// ReplaceShippingRatesCommand represents a request to swap the whole tier
// list of a lane. Tiers arrive in any order; the domain sorts them ascending
// before they are stored.
type ReplaceShippingRatesCommand struct { //nolint:recvcheck //using for validation
	actor            *int64
	companyPackageID kernel.UUID
	deliveryFrom     kernel.Alpha3
	tiers            []rate.Tier

	guard guard.ConstructorGuard
}

// NewReplaceShippingRatesCommand creates a command to replace a lane's rates.
func NewReplaceShippingRatesCommand(
	actor *int64,
	companyPackageID kernel.UUID,
	deliveryFrom string,
	tiers []TierSpec,
) (ReplaceShippingRatesCommand, error) {
	command := ReplaceShippingRatesCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCompanyPackageID(companyPackageID),
		command.setDeliveryFrom(deliveryFrom),
		command.setTiers(tiers),
	); err != nil {
		return ReplaceShippingRatesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceShippingRatesCommand) Validate() error {
	return c.guard.Validate(ErrReplaceShippingRatesCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c ReplaceShippingRatesCommand) Actor() *int64 {
	return c.actor
}

// CompanyPackageID returns the lane's offering id from the command.
func (c ReplaceShippingRatesCommand) CompanyPackageID() kernel.UUID {
	return c.companyPackageID
}

// DeliveryFrom returns the lane's origin country from the command.
func (c ReplaceShippingRatesCommand) DeliveryFrom() kernel.Alpha3 {
	return c.deliveryFrom
}

// Tiers returns the validated tiers from the command.
func (c ReplaceShippingRatesCommand) Tiers() []rate.Tier {
	return c.tiers
}

func (c *ReplaceShippingRatesCommand) setCompanyPackageID(companyPackageID kernel.UUID) error {
	if err := companyPackageID.Validate(); err != nil {
		return err
	}

	c.companyPackageID = companyPackageID
	return nil
}

func (c *ReplaceShippingRatesCommand) setDeliveryFrom(deliveryFrom string) error {
	code, err := kernel.NewAlpha3(deliveryFrom)
	if err != nil {
		return err
	}

	c.deliveryFrom = code
	return nil
}

func (c *ReplaceShippingRatesCommand) setTiers(specs []TierSpec) error {
	if len(specs) == 0 {
		return ErrTiersAreRequired
	}

	tiers := make([]rate.Tier, 0, len(specs))
	for _, spec := range specs {
		tier, err := rate.NewTier(spec.Weight, spec.Volume, spec.Price)
		if err != nil {
			return err
		}
		tiers = append(tiers, tier)
	}

	c.tiers = tiers
	return nil
}

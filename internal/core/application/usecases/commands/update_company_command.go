package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrUpdateCompanyCommandIsNotConstructed = errors.New(
	"UpdateCompanyCommand must be created via NewUpdateCompanyCommand constructor",
)

// UpdateCompanyCommand represents a request to replace a company's mutable
// attributes wholesale.
type UpdateCompanyCommand struct { //nolint:recvcheck //using for validation
	actor          *int64
	companyID      kernel.UUID
	name           string
	label          string
	logo           string
	currency       kernel.Currency
	deliveriesFrom []kernel.Alpha3

	guard guard.ConstructorGuard
}

// NewUpdateCompanyCommand creates a command to update a company.
func NewUpdateCompanyCommand(
	actor *int64,
	companyID kernel.UUID,
	name string,
	label string,
	logo string,
	currency string,
	deliveriesFrom []string,
) (UpdateCompanyCommand, error) {
	command := UpdateCompanyCommand{
		actor: actor,
		logo:  logo,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCompanyID(companyID),
		command.setName(name),
		command.setLabel(label),
		command.setCurrency(currency),
		command.setDeliveriesFrom(deliveriesFrom),
	); err != nil {
		return UpdateCompanyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCompanyCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c UpdateCompanyCommand) Actor() *int64 {
	return c.actor
}

// CompanyID returns the target company id from the command.
func (c UpdateCompanyCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// Name returns the company name from the command.
func (c UpdateCompanyCommand) Name() string {
	return c.name
}

// Label returns the company label from the command.
func (c UpdateCompanyCommand) Label() string {
	return c.label
}

// Logo returns the logo URL from the command.
func (c UpdateCompanyCommand) Logo() string {
	return c.logo
}

// Currency returns the billing currency from the command.
func (c UpdateCompanyCommand) Currency() kernel.Currency {
	return c.currency
}

// DeliveriesFrom returns the origin country codes from the command.
func (c UpdateCompanyCommand) DeliveriesFrom() []kernel.Alpha3 {
	return c.deliveriesFrom
}

func (c *UpdateCompanyCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}

func (c *UpdateCompanyCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateCompanyCommand) setLabel(label string) error {
	if label == "" {
		return ErrLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *UpdateCompanyCommand) setCurrency(currency string) error {
	cur, err := kernel.NewCurrency(currency)
	if err != nil {
		return err
	}

	c.currency = cur
	return nil
}

func (c *UpdateCompanyCommand) setDeliveriesFrom(deliveriesFrom []string) error {
	codes, err := toAlpha3s(deliveriesFrom)
	if err != nil {
		return err
	}

	c.deliveriesFrom = codes
	return nil
}

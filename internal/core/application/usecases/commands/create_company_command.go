package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateCompanyCommandIsNotConstructed = errors.New(
		"CreateCompanyCommand must be created via NewCreateCompanyCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateCompanyCommand represents a request to register a shipping company
// together with the origin countries it ships from.
type CreateCompanyCommand struct { //nolint:recvcheck //using for validation
	actor          *int64
	name           string
	label          string
	logo           string
	currency       kernel.Currency
	deliveriesFrom []kernel.Alpha3

	guard guard.ConstructorGuard
}

// NewCreateCompanyCommand creates a command to register a company.
// Currency and country codes are normalized to upper case.
func NewCreateCompanyCommand(
	actor *int64,
	name string,
	label string,
	logo string,
	currency string,
	deliveriesFrom []string,
) (CreateCompanyCommand, error) {
	command := CreateCompanyCommand{
		actor: actor,
		logo:  logo,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setLabel(label),
		command.setCurrency(currency),
		command.setDeliveriesFrom(deliveriesFrom),
	); err != nil {
		return CreateCompanyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrCreateCompanyCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c CreateCompanyCommand) Actor() *int64 {
	return c.actor
}

// Name returns the company name from the command.
func (c CreateCompanyCommand) Name() string {
	return c.name
}

// Label returns the company label from the command.
func (c CreateCompanyCommand) Label() string {
	return c.label
}

// Logo returns the logo URL from the command.
func (c CreateCompanyCommand) Logo() string {
	return c.logo
}

// Currency returns the billing currency from the command.
func (c CreateCompanyCommand) Currency() kernel.Currency {
	return c.currency
}

// DeliveriesFrom returns the origin country codes from the command.
func (c CreateCompanyCommand) DeliveriesFrom() []kernel.Alpha3 {
	return c.deliveriesFrom
}

func (c *CreateCompanyCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCompanyCommand) setLabel(label string) error {
	if label == "" {
		return ErrLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *CreateCompanyCommand) setCurrency(currency string) error {
	cur, err := kernel.NewCurrency(currency)
	if err != nil {
		return err
	}

	c.currency = cur
	return nil
}

func (c *CreateCompanyCommand) setDeliveriesFrom(deliveriesFrom []string) error {
	codes, err := toAlpha3s(deliveriesFrom)
	if err != nil {
		return err
	}

	c.deliveriesFrom = codes
	return nil
}

// toAlpha3s normalizes a list of raw three-letter codes.
func toAlpha3s(values []string) ([]kernel.Alpha3, error) {
	codes := make([]kernel.Alpha3, 0, len(values))
	for _, v := range values {
		code, err := kernel.NewAlpha3(v)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

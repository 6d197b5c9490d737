package catalog

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Domain errors for company operations.
var (
	// ErrCompanyNameIsRequired is returned when creating a company without a name.
	ErrCompanyNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCompanyLabelIsRequired is returned when creating a company without a label.
	ErrCompanyLabelIsRequired = errs.NewValueIsRequiredError("label")
	// ErrCompanyIsNotConstructed is returned when using an improperly initialized Company.
	ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")
)

// Company is a shipping company. It owns the set of origin countries it
// ships from; a company package is never eligible for a shipment whose
// origin is outside that set.
type Company struct {
	id             kernel.UUID
	name           string
	label          string
	logo           string
	currency       kernel.Currency
	deliveriesFrom []kernel.Alpha3

	guard guard.ConstructorGuard
}

// NewCompany creates a company with a fresh identifier.
func NewCompany(
	name string,
	label string,
	logo string,
	currency kernel.Currency,
	deliveriesFrom []kernel.Alpha3,
) (*Company, error) {
	return RestoreCompany(kernel.NewUUID(), name, label, logo, currency, deliveriesFrom)
}

// RestoreCompany reconstructs a company from persistent storage.
func RestoreCompany(
	id kernel.UUID,
	name string,
	label string,
	logo string,
	currency kernel.Currency,
	deliveriesFrom []kernel.Alpha3,
) (*Company, error) {
	c := &Company{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setLabel(label),
		c.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	c.logo = logo
	c.setDeliveriesFrom(deliveriesFrom)
	return c, nil
}

// Validate checks that the Company was built via its constructor.
func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

// ID returns the company identifier.
func (c *Company) ID() kernel.UUID {
	return c.id
}

// Name returns the display name.
func (c *Company) Name() string {
	return c.name
}

// Label returns the short machine label.
func (c *Company) Label() string {
	return c.label
}

// Logo returns the logo URL, possibly empty.
func (c *Company) Logo() string {
	return c.logo
}

// Currency returns the company's billing currency.
func (c *Company) Currency() kernel.Currency {
	return c.currency
}

// DeliveriesFrom returns the origin countries the company ships from.
func (c *Company) DeliveriesFrom() []kernel.Alpha3 {
	out := make([]kernel.Alpha3, len(c.deliveriesFrom))
	copy(out, c.deliveriesFrom)
	return out
}

// ShipsFrom reports whether the company ships from the given origin.
func (c *Company) ShipsFrom(origin kernel.Alpha3) bool {
	return kernel.ContainsAlpha3(c.deliveriesFrom, origin)
}

// Update replaces the mutable company attributes.
func (c *Company) Update(
	name string,
	label string,
	logo string,
	currency kernel.Currency,
	deliveriesFrom []kernel.Alpha3,
) error {
	if err := errors.Join(
		c.setName(name),
		c.setLabel(label),
		c.setCurrency(currency),
	); err != nil {
		return err
	}

	c.logo = logo
	c.setDeliveriesFrom(deliveriesFrom)
	return nil
}

func (c *Company) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Company) setName(name string) error {
	if name == "" {
		return ErrCompanyNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Company) setLabel(label string) error {
	if label == "" {
		return ErrCompanyLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *Company) setCurrency(currency kernel.Currency) error {
	if currency == "" {
		return kernel.ErrCurrencyIsInvalid
	}

	c.currency = currency
	return nil
}

func (c *Company) setDeliveriesFrom(deliveriesFrom []kernel.Alpha3) {
	c.deliveriesFrom = make([]kernel.Alpha3, len(deliveriesFrom))
	copy(c.deliveriesFrom, deliveriesFrom)
}

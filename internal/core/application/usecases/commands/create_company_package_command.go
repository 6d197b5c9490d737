package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrCreateCompanyPackageCommandIsNotConstructed = errors.New(
	"CreateCompanyPackageCommand must be created via NewCreateCompanyPackageCommand constructor",
)

// RestrictionSpec carries the optional initial restriction created together
// with an offering: replaced ceilings and a destination allow-list.
type RestrictionSpec struct {
	MaxSize      float64
	MaxWeight    float64
	DeliveriesTo []string
}

// CreateCompanyPackageCommand represents a request to register an offering:
// a company selling a package tier, optionally restricted from the start.
// The offering and its restriction are persisted in one transaction.
type CreateCompanyPackageCommand struct { //nolint:recvcheck //using for validation
	actor       *int64
	companyID   kernel.UUID
	packageID   kernel.UUID
	restriction *RestrictionSpec

	guard guard.ConstructorGuard
}

// NewCreateCompanyPackageCommand creates a command to register an offering.
// restriction may be nil for an unrestricted offering.
func NewCreateCompanyPackageCommand(
	actor *int64,
	companyID kernel.UUID,
	packageID kernel.UUID,
	restriction *RestrictionSpec,
) (CreateCompanyPackageCommand, error) {
	command := CreateCompanyPackageCommand{
		actor:       actor,
		restriction: restriction,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCompanyID(companyID),
		command.setPackageID(packageID),
	); err != nil {
		return CreateCompanyPackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCompanyPackageCommand) Validate() error {
	return c.guard.Validate(ErrCreateCompanyPackageCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c CreateCompanyPackageCommand) Actor() *int64 {
	return c.actor
}

// CompanyID returns the selling company's id from the command.
func (c CreateCompanyPackageCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// PackageID returns the offered package's id from the command.
func (c CreateCompanyPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Restriction returns the initial restriction spec, nil when unrestricted.
func (c CreateCompanyPackageCommand) Restriction() *RestrictionSpec {
	return c.restriction
}

func (c *CreateCompanyPackageCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}

func (c *CreateCompanyPackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

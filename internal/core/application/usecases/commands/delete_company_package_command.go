package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrDeleteCompanyPackageCommandIsNotConstructed = errors.New(
	"DeleteCompanyPackageCommand must be created via NewDeleteCompanyPackageCommand constructor",
)

// DeleteCompanyPackageCommand represents a request to retire an offering
// together with everything that references it.
type DeleteCompanyPackageCommand struct { //nolint:recvcheck //using for validation
	actor            *int64
	companyPackageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCompanyPackageCommand creates a command to retire an offering.
func NewDeleteCompanyPackageCommand(actor *int64, companyPackageID kernel.UUID) (DeleteCompanyPackageCommand, error) {
	command := DeleteCompanyPackageCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCompanyPackageID(companyPackageID); err != nil {
		return DeleteCompanyPackageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCompanyPackageCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCompanyPackageCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c DeleteCompanyPackageCommand) Actor() *int64 {
	return c.actor
}

// CompanyPackageID returns the target offering id from the command.
func (c DeleteCompanyPackageCommand) CompanyPackageID() kernel.UUID {
	return c.companyPackageID
}

func (c *DeleteCompanyPackageCommand) setCompanyPackageID(companyPackageID kernel.UUID) error {
	if err := companyPackageID.Validate(); err != nil {
		return err
	}

	c.companyPackageID = companyPackageID
	return nil
}

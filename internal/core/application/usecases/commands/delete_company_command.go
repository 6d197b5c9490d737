package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrDeleteCompanyCommandIsNotConstructed = errors.New(
	"DeleteCompanyCommand must be created via NewDeleteCompanyCommand constructor",
)

// DeleteCompanyCommand represents a request to remove a company.
type DeleteCompanyCommand struct { //nolint:recvcheck //using for validation
	actor     *int64
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCompanyCommand creates a command to remove a company.
func NewDeleteCompanyCommand(actor *int64, companyID kernel.UUID) (DeleteCompanyCommand, error) {
	command := DeleteCompanyCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCompanyID(companyID); err != nil {
		return DeleteCompanyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCompanyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCompanyCommandIsNotConstructed)
}

// Actor returns the acting user's id, nil for anonymous callers.
func (c DeleteCompanyCommand) Actor() *int64 {
	return c.actor
}

// CompanyID returns the target company id from the command.
func (c DeleteCompanyCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *DeleteCompanyCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}

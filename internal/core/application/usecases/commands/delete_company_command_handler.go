package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
)

// DeleteCompanyCommandHandler handles the business logic for company
// removal.
type DeleteCompanyCommandHandler struct {
	auth       Authorizer
	uowFactory CompanyUoWFactory
}

// NewDeleteCompanyCommandHandler creates a handler for company removal.
func NewDeleteCompanyCommandHandler(auth Authorizer, uowFactory CompanyUoWFactory) DeleteCompanyCommandHandler {
	return DeleteCompanyCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the company removal command.
func (h *DeleteCompanyCommandHandler) Handle(ctx context.Context, cmd DeleteCompanyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourceCompany, access.ActionDelete, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CompanyRepository().Delete(ctx, cmd.CompanyID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
)

// UpdateCompanyCommandHandler handles the business logic for company
// updates. The read and the write share one transaction.
type UpdateCompanyCommandHandler struct {
	auth       Authorizer
	uowFactory CompanyUoWFactory
}

// NewUpdateCompanyCommandHandler creates a handler for company updates.
func NewUpdateCompanyCommandHandler(auth Authorizer, uowFactory CompanyUoWFactory) UpdateCompanyCommandHandler {
	return UpdateCompanyCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the company update command.
func (h *UpdateCompanyCommandHandler) Handle(ctx context.Context, cmd UpdateCompanyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourceCompany, access.ActionUpdate, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	companyRepo := uow.CompanyRepository()
	company, err := companyRepo.Get(ctx, cmd.CompanyID())
	if err != nil {
		return err
	}

	if err = company.Update(cmd.Name(), cmd.Label(), cmd.Logo(), cmd.Currency(), cmd.DeliveriesFrom()); err != nil {
		return err
	}

	if err = companyRepo.Update(ctx, company); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

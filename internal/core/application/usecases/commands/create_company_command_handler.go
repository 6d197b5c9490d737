package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/catalog"
)

// CreateCompanyCommandHandler handles the business logic for company
// registration.
type CreateCompanyCommandHandler struct {
	auth       Authorizer
	uowFactory CompanyUoWFactory
}

// NewCreateCompanyCommandHandler creates a handler for company registration.
func NewCreateCompanyCommandHandler(auth Authorizer, uowFactory CompanyUoWFactory) CreateCompanyCommandHandler {
	return CreateCompanyCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the company creation command.
func (h *CreateCompanyCommandHandler) Handle(ctx context.Context, cmd CreateCompanyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourceCompany, access.ActionCreate, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	company, err := catalog.NewCompany(cmd.Name(), cmd.Label(), cmd.Logo(), cmd.Currency(), cmd.DeliveriesFrom())
	if err != nil {
		return err
	}

	if err = uow.CompanyRepository().Add(ctx, company); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

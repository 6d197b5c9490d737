package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/country"
)

// CreateCountryCommandHandler handles the business logic for extending the
// geography tree. The parent lookup and the insert run in one transaction so
// a concurrent parent removal cannot orphan the new node.
type CreateCountryCommandHandler struct {
	auth       Authorizer
	uowFactory CountryUoWFactory
}

// NewCreateCountryCommandHandler creates a handler for country creation.
func NewCreateCountryCommandHandler(auth Authorizer, uowFactory CountryUoWFactory) CreateCountryCommandHandler {
	return CreateCountryCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the country creation command.
func (h *CreateCountryCommandHandler) Handle(ctx context.Context, cmd CreateCountryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourceCountry, access.ActionCreate, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	countryRepo := uow.CountryRepository()
	if cmd.ParentLabel() != nil {
		if _, err := countryRepo.Get(ctx, country.NewSearchByLabel(*cmd.ParentLabel())); err != nil {
			return err
		}
	}

	node, err := country.NewCountry(
		cmd.Label(),
		cmd.Alpha2(),
		cmd.Alpha3(),
		cmd.Numeric(),
		cmd.Level(),
		cmd.ParentLabel(),
	)
	if err != nil {
		return err
	}

	if err = countryRepo.Add(ctx, node); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

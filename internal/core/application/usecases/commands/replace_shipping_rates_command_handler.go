package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/rate"
)

// ReplaceShippingRatesCommandHandler handles the business logic for lane
// rate replacement. The offering is verified and the old tier list swapped
// for the new one inside a single transaction; readers never observe a lane
// with a partial tier list.
type ReplaceShippingRatesCommandHandler struct {
	auth       Authorizer
	uowFactory RateUoWFactory
}

// NewReplaceShippingRatesCommandHandler creates a handler for rate replacement.
func NewReplaceShippingRatesCommandHandler(auth Authorizer, uowFactory RateUoWFactory) ReplaceShippingRatesCommandHandler {
	return ReplaceShippingRatesCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the rate replacement command.
func (h *ReplaceShippingRatesCommandHandler) Handle(ctx context.Context, cmd ReplaceShippingRatesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.auth.Authorize(ctx, cmd.Actor(), access.ResourceRate, access.ActionUpdate, nil); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CompanyPackageRepository().Get(ctx, cmd.CompanyPackageID()); err != nil {
		return err
	}

	entry, err := rate.NewEntry(cmd.CompanyPackageID(), cmd.DeliveryFrom(), cmd.Tiers())
	if err != nil {
		return err
	}

	if err = uow.RateRepository().Replace(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

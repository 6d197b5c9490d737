package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
)

// DeleteShippingCommandHandler handles the business logic for clearing a
// product's shipment bindings. Ownership is checked against the bindings on
// record: the caller must own the store the product belongs to. A product
// with no bindings deletes as a no-op, mirroring upsert-with-empty-list.
type DeleteShippingCommandHandler struct {
	auth       Authorizer
	uowFactory BindingUoWFactory
}

// NewDeleteShippingCommandHandler creates a handler for binding removal.
func NewDeleteShippingCommandHandler(auth Authorizer, uowFactory BindingUoWFactory) DeleteShippingCommandHandler {
	return DeleteShippingCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the binding removal command.
func (h *DeleteShippingCommandHandler) Handle(ctx context.Context, cmd DeleteShippingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bindingRepo := uow.BindingRepository()
	existing, err := bindingRepo.GetByBaseProduct(ctx, cmd.BaseProductID())
	if err != nil {
		return err
	}

	var target access.Ownable
	if len(existing) > 0 {
		target = existing[0]
	}

	if err = h.auth.Authorize(ctx, cmd.Actor(), access.ResourceShipping, access.ActionDelete, target); err != nil {
		return err
	}

	if err = bindingRepo.DeleteByBaseProduct(ctx, cmd.BaseProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

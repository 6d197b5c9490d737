package commands

import (
	"context"

	"shipping/internal/core/domain/model/access"
	"shipping/internal/core/domain/model/binding"
	"shipping/internal/core/domain/model/kernel"
)

// UpsertShippingCommandHandler handles the business logic for replacing a
// product's shipment bindings. Ownership is enforced against the bindings on
// record when the product already has any, so a caller cannot overwrite
// another store's bindings by claiming their own store id; a fresh product is
// checked against the claimed store. The existing bindings are dropped and
// the new set inserted in request order within one transaction, preserving
// the insertion order the legacy resolver reads back.
type UpsertShippingCommandHandler struct {
	auth       Authorizer
	uowFactory BindingUoWFactory
}

// NewUpsertShippingCommandHandler creates a handler for binding replacement.
func NewUpsertShippingCommandHandler(auth Authorizer, uowFactory BindingUoWFactory) UpsertShippingCommandHandler {
	return UpsertShippingCommandHandler{
		auth:       auth,
		uowFactory: uowFactory,
	}
}

// Handle processes the binding replacement command.
func (h *UpsertShippingCommandHandler) Handle(ctx context.Context, cmd UpsertShippingCommand) error {
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

	var target access.Ownable = storeOwned(cmd.StoreID())
	if len(existing) > 0 {
		target = existing[0]
	}

	if err = h.auth.Authorize(ctx, cmd.Actor(), access.ResourceShipping, access.ActionUpdate, target); err != nil {
		return err
	}

	if err = bindingRepo.DeleteByBaseProduct(ctx, cmd.BaseProductID()); err != nil {
		return err
	}

	companyPackageRepo := uow.CompanyPackageRepository()
	for _, spec := range cmd.Bindings() {
		// The offering must exist; a binding to a retired offering would
		// poison every availability query for the product.
		if _, err = companyPackageRepo.Get(ctx, spec.CompanyPackageID); err != nil {
			return err
		}

		b, bindErr := newBinding(cmd, spec)
		if bindErr != nil {
			return bindErr
		}

		if err = bindingRepo.Add(ctx, b); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func newBinding(cmd UpsertShippingCommand, spec BindingSpec) (*binding.Binding, error) {
	measurements, err := kernel.NewDimensions(spec.Volume, spec.Weight)
	if err != nil {
		return nil, err
	}

	return binding.NewBinding(cmd.BaseProductID(), cmd.StoreID(), spec.CompanyPackageID, measurements, spec.Price)
}

package commands

import (
	"context"

	"colis/internal/core/domain/model/access"
)

// UpdateTariffCommandHandler replaces the tariff. Quotes already issued keep
// the price they were signed with.
type UpdateTariffCommandHandler struct {
	uowFactory TariffUoWFactory
	policy     access.Policy
}

func NewUpdateTariffCommandHandler(uowFactory TariffUoWFactory, policy access.Policy) UpdateTariffCommandHandler {
	return UpdateTariffCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *UpdateTariffCommandHandler) Handle(ctx context.Context, cmd UpdateTariffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.ActorRole(), access.ActionUpdateTariff); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TariffRepository().Save(ctx, cmd.Tariff()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

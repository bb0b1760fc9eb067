package commands

import (
	"context"
	"time"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/quote"
	"colis/internal/core/domain/services"
	"colis/internal/core/ports"
)

// CreateQuoteResult is a priced quote and the draft token that carries it.
type CreateQuoteResult struct {
	Quote quote.Quote
	Token string
}

// CreateQuoteCommandHandler prices parcels against the current tariff and
// signs the result into a draft token. Nothing is written to the store.
type CreateQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	calculator services.PricingCalculator
	codec      ports.DraftTokenCodec
}

func NewCreateQuoteCommandHandler(
	uowFactory QuoteUoWFactory,
	calculator services.PricingCalculator,
	codec ports.DraftTokenCodec,
) CreateQuoteCommandHandler {
	return CreateQuoteCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		codec:      codec,
	}
}

func (h *CreateQuoteCommandHandler) Handle(ctx context.Context, cmd CreateQuoteCommand) (CreateQuoteResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateQuoteResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateQuoteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agencies := uow.AgencyRepository()
	if _, err := agencies.Get(ctx, cmd.Route().DepartureAgencyID); err != nil {
		return CreateQuoteResult{}, err
	}
	if _, err := agencies.Get(ctx, cmd.Route().ArrivalAgencyID); err != nil {
		return CreateQuoteResult{}, err
	}

	currentTariff, err := uow.TariffRepository().Get(ctx)
	if err != nil {
		return CreateQuoteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateQuoteResult{}, err
	}

	q, err := h.calculator.Price(kernel.NewUUID(), cmd.Parcels(), currentTariff, cmd.Route(), time.Now())
	if err != nil {
		return CreateQuoteResult{}, err
	}

	token, err := h.codec.Encode(q)
	if err != nil {
		return CreateQuoteResult{}, err
	}

	return CreateQuoteResult{Quote: q, Token: token}, nil
}

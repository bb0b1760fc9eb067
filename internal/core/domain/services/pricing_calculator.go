package services

import (
	"errors"
	"fmt"
	"time"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/quote"
	"colis/internal/core/domain/model/tariff"
	"colis/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// pricePrecision is the number of decimal places kept on a final price.
const pricePrecision = 2

// PricingCalculator turns parcels and a tariff into a Quote. It has no side
// effects: the same inputs always yield the same quote.
//
//	price = baseRate + fixedRate + weightRate×Σweight + volumeRate×Σ(h×w×l)
//
// Sums are kept exact; rounding (half-up, two places) is applied once to the
// final price.
type PricingCalculator struct {
	ttl time.Duration
}

// NewPricingCalculator creates a calculator whose quotes expire ttl after issue.
func NewPricingCalculator(ttl time.Duration) PricingCalculator {
	if ttl <= 0 {
		ttl = quote.DefaultDraftTTL
	}
	return PricingCalculator{ttl: ttl}
}

// Price computes the quote identified by draftID, issued at issuedAt.
func (c PricingCalculator) Price(
	draftID kernel.UUID,
	parcels []quote.Parcel,
	t tariff.Tariff,
	route quote.Route,
	issuedAt time.Time,
) (quote.Quote, error) {
	if len(parcels) == 0 {
		return quote.Quote{}, fmt.Errorf("%w: %w", quote.ErrInvalidParcel, errs.NewValueIsRequiredError("parcels"))
	}
	if err := t.Validate(); err != nil {
		return quote.Quote{}, err
	}

	var validationErrs []error
	totalWeight := decimal.Zero
	totalVolume := decimal.Zero
	for i, p := range parcels {
		if err := p.Validate(); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("parcel %d: %w: %w", i, quote.ErrInvalidParcel, err))
			continue
		}
		totalWeight = totalWeight.Add(p.Weight())
		totalVolume = totalVolume.Add(p.Volume())
	}
	if err := errors.Join(validationErrs...); err != nil {
		return quote.Quote{}, err
	}

	price := t.BaseRate().
		Add(t.FixedRate()).
		Add(t.WeightRate().Mul(totalWeight)).
		Add(t.VolumeRate().Mul(totalVolume)).
		Round(pricePrecision)

	return quote.NewQuote(draftID, parcels, totalWeight, totalVolume, price, route, issuedAt, issuedAt.Add(c.ttl))
}

// Package tariff holds the rate tuple the pricing calculator reads.
package tariff

import (
	"errors"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")

// Tariff is the singleton set of rates applied to every quote:
// price = baseRate + fixedRate + weightRate*totalWeight + volumeRate*totalVolume.
// All four rates are strictly positive.
type Tariff struct { //nolint:recvcheck //using for validation
	weightRate decimal.Decimal
	volumeRate decimal.Decimal
	baseRate   decimal.Decimal
	fixedRate  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewTariff validates and builds a tariff. Every rate failing validation is
// reported in the joined error.
func NewTariff(weightRate, volumeRate, baseRate, fixedRate decimal.Decimal) (Tariff, error) {
	t := Tariff{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		t.setRate(&t.weightRate, "weightRate", weightRate),
		t.setRate(&t.volumeRate, "volumeRate", volumeRate),
		t.setRate(&t.baseRate, "baseRate", baseRate),
		t.setRate(&t.fixedRate, "fixedRate", fixedRate),
	); err != nil {
		return Tariff{}, err
	}

	return t, nil
}

func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// WeightRate is the price per kilogram.
func (t Tariff) WeightRate() decimal.Decimal { return t.weightRate }

// VolumeRate is the price per cubic metre.
func (t Tariff) VolumeRate() decimal.Decimal { return t.volumeRate }

func (t Tariff) BaseRate() decimal.Decimal  { return t.baseRate }
func (t Tariff) FixedRate() decimal.Decimal { return t.fixedRate }

func (t *Tariff) setRate(dst *decimal.Decimal, name string, value decimal.Decimal) error {
	if err := kernel.RequirePositive(name, value); err != nil {
		return err
	}
	*dst = value
	return nil
}

package queries

import (
	"errors"

	"colis/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetTariffQueryIsNotConstructed = errors.New(
	"GetTariffQuery must be created via NewGetTariffQuery constructor",
)

type GetTariffQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTariffQuery() GetTariffQuery {
	return GetTariffQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTariffQuery) Validate() error {
	return q.guard.Validate(ErrGetTariffQueryIsNotConstructed)
}

type GetTariffQueryResponse struct {
	WeightRate decimal.Decimal
	VolumeRate decimal.Decimal
	BaseRate   decimal.Decimal
	FixedRate  decimal.Decimal
}

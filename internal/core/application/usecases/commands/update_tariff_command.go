package commands

import (
	"errors"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/tariff"
	"colis/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateTariffCommandIsNotConstructed = errors.New(
	"UpdateTariffCommand must be created via NewUpdateTariffCommand constructor",
)

// UpdateTariffCommand replaces the four rates of the singleton tariff.
type UpdateTariffCommand struct { //nolint:recvcheck //using for validation
	tariff    tariff.Tariff
	actorRole access.Role

	guard guard.ConstructorGuard
}

func NewUpdateTariffCommand(
	weightRate, volumeRate, baseRate, fixedRate decimal.Decimal,
	actorRole access.Role,
) (UpdateTariffCommand, error) {
	t, tariffErr := tariff.NewTariff(weightRate, volumeRate, baseRate, fixedRate)
	if err := errors.Join(tariffErr, validateRole(actorRole)); err != nil {
		return UpdateTariffCommand{}, err
	}
	return UpdateTariffCommand{
		tariff:    t,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTariffCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTariffCommandIsNotConstructed)
}

func (c UpdateTariffCommand) Tariff() tariff.Tariff   { return c.tariff }
func (c UpdateTariffCommand) ActorRole() access.Role { return c.actorRole }

package commands

import (
	"errors"
	"fmt"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/quote"
	"colis/internal/pkg/errs"
	"colis/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateQuoteCommandIsNotConstructed = errors.New(
	"CreateQuoteCommand must be created via NewCreateQuoteCommand constructor",
)

// ParcelDimensions is an untrusted parcel as submitted by a client:
// centimetres and kilograms.
type ParcelDimensions struct {
	Height decimal.Decimal
	Width  decimal.Decimal
	Length decimal.Decimal
	Weight decimal.Decimal
}

// CreateQuoteCommand asks for a priced quote of parcels between two agencies.
type CreateQuoteCommand struct { //nolint:recvcheck //using for validation
	parcels []quote.Parcel
	route   quote.Route

	guard guard.ConstructorGuard
}

// NewCreateQuoteCommand validates every parcel and reports all invalid ones
// at once, each prefixed with its position.
func NewCreateQuoteCommand(
	parcels []ParcelDimensions,
	departureAgencyID, arrivalAgencyID kernel.UUID,
) (CreateQuoteCommand, error) {
	cmd := CreateQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcels(parcels),
		cmd.setRoute(departureAgencyID, arrivalAgencyID),
	); err != nil {
		return CreateQuoteCommand{}, err
	}

	return cmd, nil
}

func (c CreateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuoteCommandIsNotConstructed)
}

func (c CreateQuoteCommand) Parcels() []quote.Parcel {
	out := make([]quote.Parcel, len(c.parcels))
	copy(out, c.parcels)
	return out
}

func (c CreateQuoteCommand) Route() quote.Route {
	return c.route
}

func (c *CreateQuoteCommand) setParcels(parcels []ParcelDimensions) error {
	if len(parcels) == 0 {
		return fmt.Errorf("%w: %w", quote.ErrInvalidParcel, errs.NewValueIsRequiredError("parcels"))
	}

	var parcelErrs []error
	for i, p := range parcels {
		parcel, err := quote.NewParcel(p.Height, p.Width, p.Length, p.Weight)
		if err != nil {
			parcelErrs = append(parcelErrs, fmt.Errorf("parcel %d: %w", i, err))
			continue
		}
		c.parcels = append(c.parcels, parcel)
	}
	return errors.Join(parcelErrs...)
}

func (c *CreateQuoteCommand) setRoute(departureAgencyID, arrivalAgencyID kernel.UUID) error {
	route, err := quote.NewRoute(departureAgencyID, arrivalAgencyID)
	if err != nil {
		return err
	}
	if departureAgencyID.IsEqual(arrivalAgencyID) {
		return errs.NewValueIsInvalidErrorWithCause("arrivalAgencyId", errors.New("must differ from departureAgencyId"))
	}
	c.route = route
	return nil
}

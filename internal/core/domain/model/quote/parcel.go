package quote

import (
	"errors"
	"fmt"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"
	"colis/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidParcel wraps every parcel validation failure, including an
	// empty parcel list.
	ErrInvalidParcel = errors.New("parcel is invalid")

	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel fields are stored with a fixed scale, so a value that does not fit
// is rejected here rather than rounded by the store.
const (
	dimensionScale = 2
	weightScale    = 3
)

var (
	// cubicCentimetresPerCubicMetre converts centimetre dimensions to a volume in m³.
	cubicCentimetresPerCubicMetre = decimal.NewFromInt(1_000_000)

	maxDimension = decimal.NewFromInt(10_000)
	maxWeight    = decimal.NewFromInt(100_000)
)

// Parcel is one package of a shipment. Dimensions are in centimetres with at
// most two decimals, up to 10000 cm. Weight is in kilograms with at most three
// decimals, up to 100000 kg. All are strictly positive.
type Parcel struct { //nolint:recvcheck //using for validation
	height decimal.Decimal
	width  decimal.Decimal
	length decimal.Decimal
	weight decimal.Decimal

	guard guard.ConstructorGuard
}

// NewParcel validates the dimensions and weight. The returned error matches
// ErrInvalidParcel and lists every offending field.
func NewParcel(height, width, length, weight decimal.Decimal) (Parcel, error) {
	p := Parcel{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.set(&p.height, "height", height, dimensionScale, maxDimension),
		p.set(&p.width, "width", width, dimensionScale, maxDimension),
		p.set(&p.length, "length", length, dimensionScale, maxDimension),
		p.set(&p.weight, "weight", weight, weightScale, maxWeight),
	); err != nil {
		return Parcel{}, fmt.Errorf("%w: %w", ErrInvalidParcel, err)
	}

	return p, nil
}

func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p Parcel) Height() decimal.Decimal { return p.height }
func (p Parcel) Width() decimal.Decimal  { return p.width }
func (p Parcel) Length() decimal.Decimal { return p.length }
func (p Parcel) Weight() decimal.Decimal { return p.weight }

// Volume returns height×width×length in cubic metres, unrounded.
func (p Parcel) Volume() decimal.Decimal {
	return p.height.Mul(p.width).Mul(p.length).Div(cubicCentimetresPerCubicMetre)
}

// Equal compares parcels by value.
func (p Parcel) Equal(other Parcel) bool {
	return p.height.Equal(other.height) &&
		p.width.Equal(other.width) &&
		p.length.Equal(other.length) &&
		p.weight.Equal(other.weight)
}

func (p *Parcel) set(dst *decimal.Decimal, name string, value decimal.Decimal, scale int32, maxValue decimal.Decimal) error {
	if err := kernel.RequirePositive(name, value); err != nil {
		return err
	}
	if value.GreaterThan(maxValue) {
		return errs.NewValueIsOutOfRangeError(name, value.String(), "0 (exclusive)", maxValue.String())
	}
	if !value.Equal(value.Truncate(scale)) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s has more than %d decimal places", value, scale))
	}
	*dst = value
	return nil
}

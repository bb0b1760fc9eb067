package quote

import (
	"errors"
	"fmt"
	"time"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultDraftTTL is how long a quote stays promotable after it was priced.
const DefaultDraftTTL = 30 * 24 * time.Hour

var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")

// Route is the pair of agencies a shipment travels between.
type Route struct {
	DepartureAgencyID kernel.UUID
	ArrivalAgencyID   kernel.UUID
}

// NewRoute validates both agency identifiers.
func NewRoute(departureAgencyID, arrivalAgencyID kernel.UUID) (Route, error) {
	if err := errors.Join(
		wrapParam("departureAgencyId", departureAgencyID.Validate()),
		wrapParam("arrivalAgencyId", arrivalAgencyID.Validate()),
	); err != nil {
		return Route{}, err
	}
	return Route{DepartureAgencyID: departureAgencyID, ArrivalAgencyID: arrivalAgencyID}, nil
}

func wrapParam(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

// Quote is a priced, immutable shipment proposal. Before promotion it only
// exists inside a signed draft token; its ID is the promotion idempotency key.
type Quote struct {
	id          kernel.UUID
	parcels     []Parcel
	totalWeight decimal.Decimal
	totalVolume decimal.Decimal
	price       decimal.Decimal
	route       Route
	createdAt   time.Time
	expiresAt   time.Time

	isConstructed bool
}

// NewQuote assembles a quote from already computed totals. Times are kept in
// UTC with second precision so that a quote survives a token round trip unchanged.
func NewQuote(
	id kernel.UUID,
	parcels []Parcel,
	totalWeight, totalVolume, price decimal.Decimal,
	route Route,
	createdAt, expiresAt time.Time,
) (Quote, error) {
	if err := id.Validate(); err != nil {
		return Quote{}, err
	}
	if len(parcels) == 0 {
		return Quote{}, fmt.Errorf("%w: %w", ErrInvalidParcel, errs.NewValueIsRequiredError("parcels"))
	}
	for _, p := range parcels {
		if err := p.Validate(); err != nil {
			return Quote{}, err
		}
	}
	if _, err := NewRoute(route.DepartureAgencyID, route.ArrivalAgencyID); err != nil {
		return Quote{}, err
	}
	createdAt = createdAt.UTC().Truncate(time.Second)
	expiresAt = expiresAt.UTC().Truncate(time.Second)
	if !expiresAt.After(createdAt) {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"expiresAt", fmt.Errorf("%s is not after %s", expiresAt, createdAt))
	}

	own := make([]Parcel, len(parcels))
	copy(own, parcels)

	return Quote{
		id:            id,
		parcels:       own,
		totalWeight:   totalWeight,
		totalVolume:   totalVolume,
		price:         price,
		route:         route,
		createdAt:     createdAt,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

func (q Quote) Validate() error {
	if !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

func (q Quote) ID() kernel.UUID { return q.id }

// Parcels returns a copy of the ordered parcel list.
func (q Quote) Parcels() []Parcel {
	out := make([]Parcel, len(q.parcels))
	copy(out, q.parcels)
	return out
}

func (q Quote) TotalWeight() decimal.Decimal { return q.totalWeight }
func (q Quote) TotalVolume() decimal.Decimal { return q.totalVolume }
func (q Quote) Price() decimal.Decimal       { return q.price }
func (q Quote) Route() Route                 { return q.route }
func (q Quote) CreatedAt() time.Time         { return q.createdAt }
func (q Quote) ExpiresAt() time.Time         { return q.expiresAt }

// IsExpired reports whether now is past the quote's expiry.
func (q Quote) IsExpired(now time.Time) bool {
	return now.After(q.expiresAt)
}

// Equal compares quotes by value.
func (q Quote) Equal(other Quote) bool {
	if len(q.parcels) != len(other.parcels) {
		return false
	}
	for i := range q.parcels {
		if !q.parcels[i].Equal(other.parcels[i]) {
			return false
		}
	}
	return q.id.IsEqual(other.id) &&
		q.totalWeight.Equal(other.totalWeight) &&
		q.totalVolume.Equal(other.totalVolume) &&
		q.price.Equal(other.price) &&
		q.route.DepartureAgencyID.IsEqual(other.route.DepartureAgencyID) &&
		q.route.ArrivalAgencyID.IsEqual(other.route.ArrivalAgencyID) &&
		q.createdAt.Equal(other.createdAt) &&
		q.expiresAt.Equal(other.expiresAt)
}

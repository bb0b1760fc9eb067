package shipment

import (
	"errors"
	"fmt"
	"time"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/quote"
	"colis/internal/pkg/ddd"
	"colis/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrDeleted is returned by transitions on a soft-deleted shipment.
	ErrDeleted = errs.NewStateConflictError("shipment is deleted")

	// ErrNotPaid is returned when completing an unpaid shipment.
	ErrNotPaid = errs.NewStateConflictError("shipment is not paid")
)

// Shipment is the durable record of a transport order. It is created from a
// promoted Quote and owns its parcels. Every guarded method checks all of its
// preconditions before touching any field, so a rejected call leaves the
// shipment unchanged.
type Shipment struct {
	ddd.BaseAggregate

	id             kernel.UUID
	draftID        kernel.UUID
	userID         kernel.UUID
	destinataireID kernel.UUID
	route          quote.Route
	parcels        []quote.Parcel
	totalWeight    decimal.Decimal
	totalVolume    decimal.Decimal
	price          decimal.Decimal
	trackingNumber TrackingNumber
	status         Status
	paid           bool
	isDeleted      bool
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewShipment materializes q for userID in Draft status. The draft id of the
// quote is kept so a second promotion of the same quote can be detected.
func NewShipment(
	id kernel.UUID,
	q quote.Quote,
	userID, destinataireID kernel.UUID,
	trackingNumber TrackingNumber,
	now time.Time,
) (*Shipment, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	s := &Shipment{
		draftID:       q.ID(),
		route:         q.Route(),
		parcels:       q.Parcels(),
		totalWeight:   q.TotalWeight(),
		totalVolume:   q.TotalVolume(),
		price:         q.Price(),
		status:        Draft,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setDestinataireID(destinataireID),
		s.setTrackingNumber(trackingNumber),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a shipment from persisted state without raising events.
func RestoreShipment(
	id, draftID, userID, destinataireID kernel.UUID,
	route quote.Route,
	parcels []quote.Parcel,
	totalWeight, totalVolume, price decimal.Decimal,
	trackingNumber TrackingNumber,
	status Status,
	paid, isDeleted bool,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		draftID:       draftID,
		route:         route,
		parcels:       append([]quote.Parcel(nil), parcels...),
		totalWeight:   totalWeight,
		totalVolume:   totalVolume,
		price:         price,
		paid:          paid,
		isDeleted:     isDeleted,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setDestinataireID(destinataireID),
		s.setTrackingNumber(trackingNumber),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID                { return s.id }
func (s *Shipment) DraftID() kernel.UUID           { return s.draftID }
func (s *Shipment) UserID() kernel.UUID            { return s.userID }
func (s *Shipment) DestinataireID() kernel.UUID    { return s.destinataireID }
func (s *Shipment) Route() quote.Route             { return s.route }
func (s *Shipment) TotalWeight() decimal.Decimal   { return s.totalWeight }
func (s *Shipment) TotalVolume() decimal.Decimal   { return s.totalVolume }
func (s *Shipment) Price() decimal.Decimal         { return s.price }
func (s *Shipment) TrackingNumber() TrackingNumber { return s.trackingNumber }
func (s *Shipment) Status() Status                 { return s.status }
func (s *Shipment) IsPaid() bool                   { return s.paid }
func (s *Shipment) IsDeleted() bool                { return s.isDeleted }
func (s *Shipment) CreatedAt() time.Time           { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time           { return s.updatedAt }

// Parcels returns a copy of the parcels still attached to the shipment.
func (s *Shipment) Parcels() []quote.Parcel {
	out := make([]quote.Parcel, len(s.parcels))
	copy(out, s.parcels)
	return out
}

// IsOwnedBy reports whether userID is the customer who promoted the shipment.
func (s *Shipment) IsOwnedBy(userID kernel.UUID) bool {
	return s.userID.IsEqual(userID)
}

// Confirm moves a freshly promoted shipment to Confirmed.
func (s *Shipment) Confirm(now time.Time) error {
	next, err := s.status.Confirm()
	if err != nil {
		return err
	}
	s.status = next
	s.touch(now)
	s.RaiseDomainEvent(newConfirmedEvent(s))
	return nil
}

// MarkPaid records a successful payment. A second payment of the same
// shipment is a no-op and reports changed=false.
func (s *Shipment) MarkPaid(now time.Time) (changed bool, err error) {
	if s.isDeleted {
		return false, ErrDeleted
	}
	if s.status != Confirmed {
		return false, fmt.Errorf("%w: %s", ErrNotConfirmed, s.status)
	}
	if s.paid {
		return false, nil
	}
	s.paid = true
	s.touch(now)
	s.RaiseDomainEvent(newStatusChangedEvent(EventPaid, s))
	return true, nil
}

// Cancel moves the shipment to Cancelled and detaches its parcels. The header
// and tracking history are kept.
func (s *Shipment) Cancel(now time.Time) error {
	next, err := s.status.Cancel()
	if err != nil {
		return err
	}
	s.status = next
	s.parcels = nil
	s.touch(now)
	s.RaiseDomainEvent(newStatusChangedEvent(EventCancelled, s))
	return nil
}

// Complete closes a paid, confirmed shipment.
func (s *Shipment) Complete(now time.Time) error {
	if s.isDeleted {
		return ErrDeleted
	}
	next, err := s.status.Complete()
	if err != nil {
		return err
	}
	if !s.paid {
		return ErrNotPaid
	}
	s.status = next
	s.touch(now)
	s.RaiseDomainEvent(newStatusChangedEvent(EventCompleted, s))
	return nil
}

// SoftDelete hides a cancelled or completed shipment. Rows are never removed.
func (s *Shipment) SoftDelete(now time.Time) error {
	if s.isDeleted {
		return ErrDeleted
	}
	if err := s.status.ValidateDelete(); err != nil {
		return err
	}
	s.isDeleted = true
	s.touch(now)
	s.RaiseDomainEvent(newStatusChangedEvent(EventDeleted, s))
	return nil
}

func (s *Shipment) touch(now time.Time) {
	s.updatedAt = now.UTC()
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	s.id = id
	return nil
}

func (s *Shipment) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("userId: %w", err)
	}
	s.userID = id
	return nil
}

func (s *Shipment) setDestinataireID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("destinataireId: %w", err)
	}
	s.destinataireID = id
	return nil
}

func (s *Shipment) setTrackingNumber(tn TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	s.trackingNumber = tn
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

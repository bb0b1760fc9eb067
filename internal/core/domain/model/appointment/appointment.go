// Package appointment holds the pickup/drop-off slot booked against a paid shipment.
package appointment

import (
	"errors"
	"fmt"
	"time"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/pkg/ddd"
	"colis/internal/pkg/errs"
)

const (
	EventBooked    = "appointment.booked"
	EventCancelled = "appointment.cancelled"
)

var (
	ErrAppointmentIsNotConstructed = errors.New("Appointment must be created via Book or RestoreAppointment")

	// ErrNotAllowed is returned when a booking precondition fails. The reason
	// is wrapped for logs but callers only surface "forbidden".
	ErrNotAllowed = errs.NewForbiddenError("book appointment")

	ErrAlreadyCancelled = errs.NewStateConflictError("appointment is already cancelled")
	ErrNotOwner         = errs.NewForbiddenError("cancel appointment")
)

// Status of an appointment. Only Scheduled appointments count towards the
// one-per-shipment limit.
type Status int

const (
	Unknown Status = iota
	Scheduled
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Scheduled:
		return "SCHEDULED"
	case Cancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) Validate() error {
	if s != Scheduled && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not an appointment status", s))
	}
	return nil
}

type Appointment struct {
	ddd.BaseAggregate

	id         kernel.UUID
	shipmentID kernel.UUID
	userID     kernel.UUID
	agencyID   kernel.UUID
	date       time.Time
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// Book schedules an appointment for s at the shipment's departure agency.
// The shipment must be owned by userID, paid, not deleted and neither
// completed nor cancelled; date must lie
// after now. Whether the shipment already has an appointment is checked by
// the caller against the store.
func Book(id kernel.UUID, s *shipment.Shipment, userID kernel.UUID, date, now time.Time) (*Appointment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}
	if !date.After(now) {
		return nil, errs.NewValueIsOutOfRangeError("date", date.Format(time.RFC3339), now.Format(time.RFC3339), "inf")
	}

	switch {
	case !s.IsOwnedBy(userID):
		return nil, fmt.Errorf("%w: not the owner", ErrNotAllowed)
	case s.IsDeleted():
		return nil, fmt.Errorf("%w: shipment is deleted", ErrNotAllowed)
	case !s.IsPaid():
		return nil, fmt.Errorf("%w: shipment is not paid", ErrNotAllowed)
	case s.Status().IsTerminal():
		return nil, fmt.Errorf("%w: shipment is %s", ErrNotAllowed, s.Status())
	}

	a := &Appointment{
		id:            id,
		shipmentID:    s.ID(),
		userID:        userID,
		agencyID:      s.Route().DepartureAgencyID,
		date:          date.UTC(),
		status:        Scheduled,
		createdAt:     now.UTC(),
		isConstructed: true,
	}
	a.RaiseDomainEvent(newEvent(EventBooked, a))
	return a, nil
}

// RestoreAppointment rebuilds an appointment from the store.
func RestoreAppointment(
	id, shipmentID, userID, agencyID kernel.UUID,
	date time.Time,
	status Status,
	createdAt time.Time,
) (*Appointment, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		userID.Validate(),
		agencyID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Appointment{
		id:            id,
		shipmentID:    shipmentID,
		userID:        userID,
		agencyID:      agencyID,
		date:          date,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (a *Appointment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAppointmentIsNotConstructed
	}
	return nil
}

func (a *Appointment) ID() kernel.UUID         { return a.id }
func (a *Appointment) ShipmentID() kernel.UUID { return a.shipmentID }
func (a *Appointment) UserID() kernel.UUID     { return a.userID }
func (a *Appointment) AgencyID() kernel.UUID   { return a.agencyID }
func (a *Appointment) Date() time.Time         { return a.date }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }

// Cancel frees the shipment for a new booking. Only the owner may cancel.
func (a *Appointment) Cancel(userID kernel.UUID) error {
	if !a.userID.IsEqual(userID) {
		return ErrNotOwner
	}
	if a.status == Cancelled {
		return ErrAlreadyCancelled
	}
	a.status = Cancelled
	a.RaiseDomainEvent(newEvent(EventCancelled, a))
	return nil
}

// Event is published when an appointment is booked or cancelled.
type Event struct {
	ddd.BaseEvent
	ShipmentID string    `json:"shipmentId"`
	AgencyID   string    `json:"agencyId"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

func newEvent(name string, a *Appointment) Event {
	return Event{
		BaseEvent:  ddd.NewBaseEvent(name, a.id.Bytes()),
		ShipmentID: a.shipmentID.String(),
		AgencyID:   a.agencyID.String(),
		Date:       a.date,
		Status:     a.status.String(),
	}
}

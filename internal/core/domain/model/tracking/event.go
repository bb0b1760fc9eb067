// Package tracking holds the append-only ledger of delivery progress events.
package tracking

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/ddd"
	"colis/internal/pkg/errs"
)

const (
	EventAppended = "tracking.appended"

	maxLocationLength    = 255
	maxDescriptionLength = 1000
)

var ErrEventIsNotConstructed = errors.New("tracking Event must be created via NewEvent or RestoreEvent")

// Event is one entry of a shipment's tracking history. Events are never
// updated once stored. Seq is assigned by the store at insertion and is the
// only ordering key; CreatedAt is informational.
type Event struct {
	ddd.BaseAggregate

	id            kernel.UUID
	seq           int64
	shipmentID    kernel.UUID
	status        Status
	location      string
	description   string
	createdAt     time.Time
	createdByRole access.Role

	isConstructed bool
}

// NewEvent builds an event that has not been stored yet.
func NewEvent(
	id, shipmentID kernel.UUID,
	status Status,
	location, description string,
	createdByRole access.Role,
	now time.Time,
) (*Event, error) {
	e := &Event{
		id:            id,
		shipmentID:    shipmentID,
		status:        status,
		location:      location,
		description:   description,
		createdAt:     now.UTC(),
		createdByRole: createdByRole,
		isConstructed: true,
	}
	if err := e.validateFields(); err != nil {
		return nil, err
	}
	e.RaiseDomainEvent(AppendedEvent{
		BaseEvent:     ddd.NewBaseEvent(EventAppended, shipmentID.Bytes()),
		TrackingEvent: id.String(),
		Status:        status.String(),
		Location:      location,
		CreatedByRole: string(createdByRole),
	})
	return e, nil
}

// RestoreEvent rebuilds a stored event.
func RestoreEvent(
	id kernel.UUID,
	seq int64,
	shipmentID kernel.UUID,
	status Status,
	location, description string,
	createdByRole access.Role,
	createdAt time.Time,
) (*Event, error) {
	e := &Event{
		id:            id,
		seq:           seq,
		shipmentID:    shipmentID,
		status:        status,
		location:      location,
		description:   description,
		createdAt:     createdAt,
		createdByRole: createdByRole,
		isConstructed: true,
	}
	if err := e.validateFields(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Event) validateFields() error {
	var lengthErrs []error
	if n := utf8.RuneCountInString(e.location); n > maxLocationLength {
		lengthErrs = append(lengthErrs, errs.NewValueIsOutOfRangeError("location length", n, 0, maxLocationLength))
	}
	if n := utf8.RuneCountInString(e.description); n > maxDescriptionLength {
		lengthErrs = append(lengthErrs, errs.NewValueIsOutOfRangeError("description length", n, 0, maxDescriptionLength))
	}
	return errors.Join(
		wrap("id", e.id.Validate()),
		wrap("shipmentId", e.shipmentID.Validate()),
		e.status.Validate(),
		errors.Join(lengthErrs...),
	)
}

func wrap(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

func (e *Event) ID() kernel.UUID            { return e.id }
func (e *Event) Seq() int64                 { return e.seq }
func (e *Event) ShipmentID() kernel.UUID    { return e.shipmentID }
func (e *Event) Status() Status             { return e.status }
func (e *Event) Location() string           { return e.location }
func (e *Event) Description() string        { return e.description }
func (e *Event) CreatedAt() time.Time       { return e.createdAt }
func (e *Event) CreatedByRole() access.Role { return e.createdByRole }

// AssignSeq records the position given by the store. It only applies once.
func (e *Event) AssignSeq(seq int64) {
	if e.seq == 0 {
		e.seq = seq
	}
}

// CurrentStatus returns the status of the event with the highest sequence,
// which is the shipment's visible delivery status. ok is false for an empty history.
func CurrentStatus(events []*Event) (status Status, ok bool) {
	var latest *Event
	for _, e := range events {
		if latest == nil || e.seq > latest.seq {
			latest = e
		}
	}
	if latest == nil {
		return "", false
	}
	return latest.status, true
}

// AppendedEvent is published for every appended tracking event. It is keyed
// by shipment so that a consumer sees the history in order.
type AppendedEvent struct {
	ddd.BaseEvent
	TrackingEvent string `json:"trackingEventId"`
	Status        string `json:"status"`
	Location      string `json:"location"`
	CreatedByRole string `json:"createdByRole"`
}

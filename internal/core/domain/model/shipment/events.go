package shipment

import (
	"colis/internal/pkg/ddd"
)

const (
	EventConfirmed = "shipment.confirmed"
	EventPaid      = "shipment.paid"
	EventCancelled = "shipment.cancelled"
	EventCompleted = "shipment.completed"
	EventDeleted   = "shipment.deleted"
)

// ConfirmedEvent is raised when a draft is promoted into a confirmed shipment.
type ConfirmedEvent struct {
	ddd.BaseEvent
	TrackingNumber    string `json:"trackingNumber"`
	UserID            string `json:"userId"`
	DestinataireID    string `json:"destinataireId"`
	DepartureAgencyID string `json:"departureAgencyId"`
	ArrivalAgencyID   string `json:"arrivalAgencyId"`
	Price             string `json:"price"`
}

// StatusChangedEvent is raised by payment, cancellation, completion and deletion.
type StatusChangedEvent struct {
	ddd.BaseEvent
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"status"`
	Paid           bool   `json:"paid"`
	Deleted        bool   `json:"deleted"`
}

func newConfirmedEvent(s *Shipment) ConfirmedEvent {
	return ConfirmedEvent{
		BaseEvent:         ddd.NewBaseEvent(EventConfirmed, s.id.Bytes()),
		TrackingNumber:    s.trackingNumber.String(),
		UserID:            s.userID.String(),
		DestinataireID:    s.destinataireID.String(),
		DepartureAgencyID: s.route.DepartureAgencyID.String(),
		ArrivalAgencyID:   s.route.ArrivalAgencyID.String(),
		Price:             s.price.StringFixed(2),
	}
}

func newStatusChangedEvent(name string, s *Shipment) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:      ddd.NewBaseEvent(name, s.id.Bytes()),
		TrackingNumber: s.trackingNumber.String(),
		Status:         s.status.String(),
		Paid:           s.paid,
		Deleted:        s.isDeleted,
	}
}

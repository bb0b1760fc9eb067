package http

import (
	"time"

	"colis/internal/core/application/usecases/queries"
	"colis/internal/core/domain/model/appointment"
	"colis/internal/core/domain/model/quote"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/core/domain/model/tracking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ParcelRequest struct {
	Height decimal.Decimal `json:"height"`
	Width  decimal.Decimal `json:"width"`
	Length decimal.Decimal `json:"length"`
	Weight decimal.Decimal `json:"weight"`
}

type QuoteRequest struct {
	DepartureAgencyID uuid.UUID       `json:"departureAgencyId"`
	ArrivalAgencyID   uuid.UUID       `json:"arrivalAgencyId"`
	Parcels           []ParcelRequest `json:"parcels"`
}

type PromoteRequest struct {
	DestinataireID uuid.UUID `json:"destinataireId"`
}

const (
	PaymentSucceeded = "SUCCEEDED"
	PaymentFailed    = "FAILED"
)

type PaymentNotification struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

type AppointmentRequest struct {
	Date time.Time `json:"date"`
}

type TrackingEventRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type TariffRequest struct {
	WeightRate decimal.Decimal `json:"weightRate"`
	VolumeRate decimal.Decimal `json:"volumeRate"`
	BaseRate   decimal.Decimal `json:"baseRate"`
	FixedRate  decimal.Decimal `json:"fixedRate"`
}

type ParcelView struct {
	Height string `json:"height"`
	Width  string `json:"width"`
	Length string `json:"length"`
	Weight string `json:"weight"`
}

type QuoteView struct {
	ID                string       `json:"id"`
	DepartureAgencyID string       `json:"departureAgencyId"`
	ArrivalAgencyID   string       `json:"arrivalAgencyId"`
	Parcels           []ParcelView `json:"parcels"`
	TotalWeight       string       `json:"totalWeight"`
	TotalVolume       string       `json:"totalVolume"`
	Price             string       `json:"price"`
	CreatedAt         time.Time    `json:"createdAt"`
	ExpiresAt         time.Time    `json:"expiresAt"`
}

func newQuoteView(q quote.Quote) QuoteView {
	parcels := make([]ParcelView, 0, len(q.Parcels()))
	for _, p := range q.Parcels() {
		parcels = append(parcels, ParcelView{
			Height: p.Height().String(),
			Width:  p.Width().String(),
			Length: p.Length().String(),
			Weight: p.Weight().String(),
		})
	}
	return QuoteView{
		ID:                q.ID().String(),
		DepartureAgencyID: q.Route().DepartureAgencyID.String(),
		ArrivalAgencyID:   q.Route().ArrivalAgencyID.String(),
		Parcels:           parcels,
		TotalWeight:       q.TotalWeight().String(),
		TotalVolume:       q.TotalVolume().String(),
		Price:             q.Price().StringFixed(2),
		CreatedAt:         q.CreatedAt(),
		ExpiresAt:         q.ExpiresAt(),
	}
}

type ShipmentView struct {
	ID                string       `json:"id"`
	TrackingNumber    string       `json:"trackingNumber"`
	UserID            string       `json:"userId"`
	DestinataireID    string       `json:"destinataireId"`
	DepartureAgencyID string       `json:"departureAgencyId"`
	ArrivalAgencyID   string       `json:"arrivalAgencyId"`
	Status            string       `json:"status"`
	Paid              bool         `json:"paid"`
	Price             string       `json:"price"`
	TotalWeight       string       `json:"totalWeight"`
	TotalVolume       string       `json:"totalVolume"`
	DeliveryStatus    string       `json:"deliveryStatus,omitempty"`
	Parcels           []ParcelView `json:"parcels"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

func newShipmentView(s *shipment.Shipment) ShipmentView {
	parcels := make([]ParcelView, 0, len(s.Parcels()))
	for _, p := range s.Parcels() {
		parcels = append(parcels, ParcelView{
			Height: p.Height().String(),
			Width:  p.Width().String(),
			Length: p.Length().String(),
			Weight: p.Weight().String(),
		})
	}
	return ShipmentView{
		ID:                s.ID().String(),
		TrackingNumber:    s.TrackingNumber().String(),
		UserID:            s.UserID().String(),
		DestinataireID:    s.DestinataireID().String(),
		DepartureAgencyID: s.Route().DepartureAgencyID.String(),
		ArrivalAgencyID:   s.Route().ArrivalAgencyID.String(),
		Status:            s.Status().String(),
		Paid:              s.IsPaid(),
		Price:             s.Price().StringFixed(2),
		TotalWeight:       s.TotalWeight().String(),
		TotalVolume:       s.TotalVolume().String(),
		Parcels:           parcels,
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
}

func newShipmentDetailView(d queries.GetShipmentQueryResponse) ShipmentView {
	parcels := make([]ParcelView, 0, len(d.Parcels))
	for _, p := range d.Parcels {
		parcels = append(parcels, ParcelView{
			Height: p.Height.String(),
			Width:  p.Width.String(),
			Length: p.Length.String(),
			Weight: p.Weight.String(),
		})
	}
	return ShipmentView{
		ID:                d.ID.String(),
		TrackingNumber:    d.TrackingNumber,
		UserID:            d.UserID.String(),
		DestinataireID:    d.DestinataireID.String(),
		DepartureAgencyID: d.DepartureAgencyID.String(),
		ArrivalAgencyID:   d.ArrivalAgencyID.String(),
		Status:            d.Status,
		Paid:              d.Paid,
		Price:             d.Price.StringFixed(2),
		TotalWeight:       d.TotalWeight.String(),
		TotalVolume:       d.TotalVolume.String(),
		DeliveryStatus:    d.DeliveryStatus,
		Parcels:           parcels,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

type AppointmentView struct {
	ID         string    `json:"id"`
	ShipmentID string    `json:"shipmentId"`
	AgencyID   string    `json:"agencyId"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

func newAppointmentView(a *appointment.Appointment) AppointmentView {
	return AppointmentView{
		ID:         a.ID().String(),
		ShipmentID: a.ShipmentID().String(),
		AgencyID:   a.AgencyID().String(),
		Date:       a.Date(),
		Status:     a.Status().String(),
	}
}

type TrackingEventView struct {
	ID            string    `json:"id"`
	Seq           int64     `json:"seq"`
	Status        string    `json:"status"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	CreatedByRole string    `json:"createdByRole"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newTrackingEventView(e *tracking.Event) TrackingEventView {
	return TrackingEventView{
		ID:            e.ID().String(),
		Seq:           e.Seq(),
		Status:        e.Status().String(),
		Location:      e.Location(),
		Description:   e.Description(),
		CreatedByRole: string(e.CreatedByRole()),
		CreatedAt:     e.CreatedAt(),
	}
}

func newTrackingHistoryView(history []queries.TrackingEventResponse) []TrackingEventView {
	views := make([]TrackingEventView, 0, len(history))
	for _, e := range history {
		views = append(views, TrackingEventView{
			ID:            e.ID.String(),
			Seq:           e.Seq,
			Status:        e.Status,
			Location:      e.Location,
			Description:   e.Description,
			CreatedByRole: e.CreatedByRole,
			CreatedAt:     e.CreatedAt,
		})
	}
	return views
}

type TariffView struct {
	WeightRate string `json:"weightRate"`
	VolumeRate string `json:"volumeRate"`
	BaseRate   string `json:"baseRate"`
	FixedRate  string `json:"fixedRate"`
}

func newTariffView(t queries.GetTariffQueryResponse) TariffView {
	return TariffView{
		WeightRate: t.WeightRate.String(),
		VolumeRate: t.VolumeRate.String(),
		BaseRate:   t.BaseRate.String(),
		FixedRate:  t.FixedRate.String(),
	}
}

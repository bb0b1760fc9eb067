// Package shipmentrepo persists shipments and their parcels with GORM.
package shipmentrepo

import (
	"time"

	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/quote"
	"colis/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Index names double as the keys reported on unique violations.
const (
	draftIndex          = "idx_shipments_draft_id"
	trackingNumberIndex = "idx_shipments_tracking_number"
)

// ShipmentDTO is the shipments row. draft_id is the promotion idempotency
// key: a quote can be materialized once.
type ShipmentDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DraftID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_shipments_draft_id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	DestinataireID    uuid.UUID       `gorm:"type:uuid;not null"`
	DepartureAgencyID uuid.UUID       `gorm:"type:uuid;not null"`
	ArrivalAgencyID   uuid.UUID       `gorm:"type:uuid;not null"`
	TrackingNumber    string          `gorm:"size:16;not null;uniqueIndex:idx_shipments_tracking_number"`
	TotalWeight       decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	TotalVolume       decimal.Decimal `gorm:"type:numeric(24,12);not null"`
	Price             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status            int             `gorm:"not null"`
	Paid              bool            `gorm:"not null;default:false"`
	IsDeleted         bool            `gorm:"not null;default:false"`
	CreatedAt         time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt         time.Time       `gorm:"not null;autoUpdateTime:false"`
	Parcels           []ParcelDTO     `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ParcelDTO is a parcel row. Position keeps the order of the quote.
type ParcelDTO struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	ShipmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position   int             `gorm:"not null"`
	Height     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Width      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Length     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Weight     decimal.Decimal `gorm:"type:numeric(10,3);not null"`
}

func (ParcelDTO) TableName() string {
	return "shipment_parcels"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:                s.ID().Bytes(),
		DraftID:           s.DraftID().Bytes(),
		UserID:            s.UserID().Bytes(),
		DestinataireID:    s.DestinataireID().Bytes(),
		DepartureAgencyID: s.Route().DepartureAgencyID.Bytes(),
		ArrivalAgencyID:   s.Route().ArrivalAgencyID.Bytes(),
		TrackingNumber:    s.TrackingNumber().String(),
		TotalWeight:       s.TotalWeight(),
		TotalVolume:       s.TotalVolume(),
		Price:             s.Price(),
		Status:            int(s.Status()),
		Paid:              s.IsPaid(),
		IsDeleted:         s.IsDeleted(),
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
	for i, p := range s.Parcels() {
		dto.Parcels = append(dto.Parcels, ParcelDTO{
			ShipmentID: dto.ID,
			Position:   i,
			Height:     p.Height(),
			Width:      p.Width(),
			Length:     p.Length(),
			Weight:     p.Weight(),
		})
	}
	return dto
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	ids := make([]kernel.UUID, 0, 6)
	for _, raw := range []uuid.UUID{dto.ID, dto.DraftID, dto.UserID, dto.DestinataireID, dto.DepartureAgencyID, dto.ArrivalAgencyID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	route, err := quote.NewRoute(ids[4], ids[5])
	if err != nil {
		return nil, err
	}

	tn, err := shipment.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	parcels := make([]quote.Parcel, 0, len(dto.Parcels))
	for _, p := range dto.Parcels {
		parcel, parcelErr := quote.NewParcel(p.Height, p.Width, p.Length, p.Weight)
		if parcelErr != nil {
			return nil, parcelErr
		}
		parcels = append(parcels, parcel)
	}

	return shipment.RestoreShipment(
		ids[0], ids[1], ids[2], ids[3],
		route, parcels,
		dto.TotalWeight, dto.TotalVolume, dto.Price,
		tn, shipment.Status(dto.Status),
		dto.Paid, dto.IsDeleted,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

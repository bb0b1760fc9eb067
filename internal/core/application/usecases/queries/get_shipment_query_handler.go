package queries

import (
	"context"
	"time"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetShipmentQueryHandler struct {
	db     *gorm.DB
	policy access.Policy
}

func NewGetShipmentQueryHandler(db *gorm.DB, policy access.Policy) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db, policy: policy}
}

type shipmentRow struct {
	ID                uuid.UUID
	TrackingNumber    string
	UserID            uuid.UUID
	DestinataireID    uuid.UUID
	DepartureAgencyID uuid.UUID
	ArrivalAgencyID   uuid.UUID
	Status            int
	Paid              bool
	Price             decimal.Decimal
	TotalWeight       decimal.Decimal
	TotalVolume       decimal.Decimal
	DeliveryStatus    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Handle returns the shipment detail. The delivery status is taken from the
// tracking event with the highest sequence number, so ties in created_at
// never reorder history.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if err := visibleOwner(ctx, h.db, h.policy, query.shipmentViewer); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var row shipmentRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.tracking_number,
			s.user_id,
			s.destinataire_id,
			s.departure_agency_id,
			s.arrival_agency_id,
			s.status,
			s.paid,
			s.price,
			s.total_weight,
			s.total_volume,
			COALESCE(latest.status, '') AS delivery_status,
			s.created_at,
			s.updated_at
		FROM shipments s
		LEFT JOIN LATERAL (
			SELECT status
			FROM tracking_events
			WHERE shipment_id = s.id
			ORDER BY seq DESC
			LIMIT 1
		) latest ON true
		WHERE s.id = ?
	`, query.ShipmentID().Bytes()).Scan(&row).Error
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var parcels []ParcelResponse
	err = h.db.WithContext(ctx).Raw(`
		SELECT height, width, length, weight
		FROM shipment_parcels
		WHERE shipment_id = ?
		ORDER BY position
	`, query.ShipmentID().Bytes()).Scan(&parcels).Error
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return row.toResponse(parcels)
}

func (r shipmentRow) toResponse(parcels []ParcelResponse) (GetShipmentQueryResponse, error) {
	ids := make([]kernel.UUID, 0, 5)
	for _, raw := range []uuid.UUID{r.ID, r.UserID, r.DestinataireID, r.DepartureAgencyID, r.ArrivalAgencyID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return GetShipmentQueryResponse{}, err
		}
		ids = append(ids, id)
	}

	if parcels == nil {
		parcels = []ParcelResponse{}
	}

	return GetShipmentQueryResponse{
		ID:                ids[0],
		TrackingNumber:    r.TrackingNumber,
		UserID:            ids[1],
		DestinataireID:    ids[2],
		DepartureAgencyID: ids[3],
		ArrivalAgencyID:   ids[4],
		Status:            shipment.Status(r.Status).String(),
		Paid:              r.Paid,
		Price:             r.Price,
		TotalWeight:       r.TotalWeight,
		TotalVolume:       r.TotalVolume,
		Parcels:           parcels,
		DeliveryStatus:    r.DeliveryStatus,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}, nil
}

package queries

import (
	"context"
	"time"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetTrackingHistoryQueryHandler struct {
	db     *gorm.DB
	policy access.Policy
}

func NewGetTrackingHistoryQueryHandler(db *gorm.DB, policy access.Policy) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db, policy: policy}
}

func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]TrackingEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := visibleOwner(ctx, h.db, h.policy, query.shipmentViewer); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			seq,
			status,
			location,
			description,
			created_by_role,
			created_at
		FROM tracking_events
		WHERE shipment_id = ?
		ORDER BY seq
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]TrackingEventResponse, 0)
	for rows.Next() {
		var (
			event TrackingEventResponse
			id    uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&event.Seq,
			&event.Status,
			&event.Location,
			&event.Description,
			&event.CreatedByRole,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		event.ID = eventID
		event.CreatedAt = event.CreatedAt.In(time.UTC)
		history = append(history, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

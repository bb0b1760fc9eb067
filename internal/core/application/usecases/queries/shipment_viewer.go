package queries

import (
	"context"
	"errors"
	"fmt"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/pkg/errs"
	"colis/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shipmentViewer is an actor reading one shipment.
type shipmentViewer struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID
	actorRole  access.Role

	guard guard.ConstructorGuard
}

func newShipmentViewer(shipmentID, actorID kernel.UUID, actorRole access.Role) (shipmentViewer, error) {
	_, roleErr := access.ParseRole(string(actorRole))
	if err := errors.Join(
		wrapParam("shipmentId", shipmentID.Validate()),
		wrapParam("actorId", actorID.Validate()),
		roleErr,
	); err != nil {
		return shipmentViewer{}, err
	}
	return shipmentViewer{
		shipmentID: shipmentID,
		actorID:    actorID,
		actorRole:  actorRole,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (v shipmentViewer) ShipmentID() kernel.UUID { return v.shipmentID }
func (v shipmentViewer) ActorID() kernel.UUID    { return v.actorID }
func (v shipmentViewer) ActorRole() access.Role  { return v.actorRole }

func wrapParam(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

// visibleOwner returns the owner of a shipment that is not deleted and that
// the viewer may read.
func visibleOwner(ctx context.Context, db *gorm.DB, policy access.Policy, v shipmentViewer) error {
	var owner struct {
		UserID uuid.UUID
	}
	result := db.WithContext(ctx).Raw(`
		SELECT user_id
		FROM shipments
		WHERE id = ? AND is_deleted = false
	`, v.shipmentID.Bytes()).Scan(&owner)
	if result.Error != nil {
		return result.Error
	}

	notFound := errs.NewObjectNotFoundError("shipment", v.shipmentID)
	if result.RowsAffected == 0 {
		return notFound
	}
	if policy.Allows(v.actorRole, access.ActionViewAnyShipment) {
		return nil
	}
	ownerID, err := kernel.UUIDFromBytes(owner.UserID[:])
	if err != nil {
		return err
	}
	if !ownerID.IsEqual(v.actorID) {
		return notFound
	}
	return nil
}

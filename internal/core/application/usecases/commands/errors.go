package commands

import (
	"errors"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/appointment"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/pkg/errs"
)

var (
	// ErrInvalidDraft is returned when a draft token fails verification or
	// has expired. Callers treat it as "no draft present".
	ErrInvalidDraft = errors.New("no draft present")

	// ErrDuplicatePromotion is returned when the draft was already promoted.
	ErrDuplicatePromotion = errs.NewStateConflictError("draft already promoted")

	// ErrAppointmentNotAllowed is returned when a booking precondition fails,
	// including a booking raced by a concurrent one.
	ErrAppointmentNotAllowed = appointment.ErrNotAllowed

	// ErrShipmentDeleted is returned by operations on a soft-deleted shipment.
	ErrShipmentDeleted = shipment.ErrDeleted
)

// authorizeOwnerOr lets the owner or a role granted action through. Actors
// who may not see the shipment get the same not-found error as for an
// unknown id; only operators with read access learn they are forbidden.
func authorizeOwnerOr(
	policy access.Policy,
	s *shipment.Shipment,
	actorID kernel.UUID,
	role access.Role,
	action access.Action,
	operation string,
) error {
	if s.IsOwnedBy(actorID) || policy.Allows(role, action) {
		return nil
	}
	if !policy.Allows(role, access.ActionViewAnyShipment) {
		return errs.NewObjectNotFoundError("shipment", s.ID())
	}
	return errs.NewForbiddenError(operation)
}

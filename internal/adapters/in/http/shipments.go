package http

import (
	"net/http"

	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/application/usecases/queries"
	"colis/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// PromoteDraft handles POST /api/v1/shipments. The draft is consumed: the
// cookie is cleared on success and on an unusable draft.
func (s *Server) PromoteDraft(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req PromoteRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	destinataire, err := toKernel("destinataireId", req.DestinataireID)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewPromoteDraftCommand(draftToken(c), actor.ID, destinataire)
	if err != nil {
		return s.writeError(c, err)
	}

	promoted, err := s.handlers.PromoteDraft.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	s.clearDraftCookie(c)
	return c.JSON(http.StatusCreated, newShipmentView(promoted))
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(c echo.Context) error {
	actor, id, err := s.actorAndID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentQuery(id, actor.ID, actor.Role)
	if err != nil {
		return s.writeError(c, err)
	}

	detail, err := s.handlers.GetShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, newShipmentDetailView(detail))
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(c echo.Context) error {
	actor, id, err := s.actorAndID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelShipmentCommand(id, actor.ID, actor.Role)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.CancelShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CompleteShipment handles POST /api/v1/shipments/:id/complete.
func (s *Server) CompleteShipment(c echo.Context) error {
	actor, id, err := s.actorAndID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteShipmentCommand(id, actor.ID, actor.Role)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.CompleteShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(c echo.Context) error {
	actor, id, err := s.actorAndID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteShipmentCommand(id, actor.ID, actor.Role)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.DeleteShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) actorAndID(c echo.Context) (Actor, kernel.UUID, error) {
	actor, err := requireActor(c)
	if err != nil {
		return Actor{}, kernel.UUID{}, err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return Actor{}, kernel.UUID{}, err
	}
	return actor, id, nil
}

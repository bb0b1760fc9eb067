package http

import (
	"net/http"

	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// AppendTrackingEvent handles POST /api/v1/shipments/:id/tracking-events.
func (s *Server) AppendTrackingEvent(c echo.Context) error {
	actor, shipmentID, err := s.actorAndID(c)
	if err != nil {
		return err
	}

	var req TrackingEventRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAppendTrackingEventCommand(shipmentID, req.Status, req.Location, req.Description, actor.Role)
	if err != nil {
		return s.writeError(c, err)
	}

	event, err := s.handlers.AppendTrackingEvent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newTrackingEventView(event))
}

// GetTrackingHistory handles GET /api/v1/shipments/:id/tracking-events.
func (s *Server) GetTrackingHistory(c echo.Context) error {
	actor, shipmentID, err := s.actorAndID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetTrackingHistoryQuery(shipmentID, actor.ID, actor.Role)
	if err != nil {
		return s.writeError(c, err)
	}

	history, err := s.handlers.GetTrackingHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, newTrackingHistoryView(history))
}

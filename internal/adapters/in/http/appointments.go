package http

import (
	"net/http"

	"colis/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// BookAppointment handles POST /api/v1/shipments/:id/appointments.
func (s *Server) BookAppointment(c echo.Context) error {
	actor, shipmentID, err := s.actorAndID(c)
	if err != nil {
		return err
	}

	var req AppointmentRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewBookAppointmentCommand(shipmentID, actor.ID, req.Date)
	if err != nil {
		return s.writeError(c, err)
	}

	booked, err := s.handlers.BookAppointment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, newAppointmentView(booked))
}

// CancelAppointment handles DELETE /api/v1/appointments/:id.
func (s *Server) CancelAppointment(c echo.Context) error {
	actor, appointmentID, err := s.actorAndID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelAppointmentCommand(appointmentID, actor.ID)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.CancelAppointment.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

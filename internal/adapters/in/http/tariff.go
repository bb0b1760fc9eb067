package http

import (
	"net/http"

	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetTariff handles GET /api/v1/tariff. The tariff is public.
func (s *Server) GetTariff(c echo.Context) error {
	current, err := s.handlers.GetTariff.Handle(c.Request().Context(), queries.NewGetTariffQuery())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, newTariffView(current))
}

// UpdateTariff handles PUT /api/v1/tariff.
func (s *Server) UpdateTariff(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req TariffRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateTariffCommand(req.WeightRate, req.VolumeRate, req.BaseRate, req.FixedRate, actor.Role)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.UpdateTariff.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

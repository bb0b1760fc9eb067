package http

import (
	"net/http"

	"colis/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// CreateQuote handles POST /api/v1/quotes. The priced quote is returned and
// stored, signed, in the draft cookie; nothing is persisted.
func (s *Server) CreateQuote(c echo.Context) error {
	var req QuoteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	departure, err := toKernel("departureAgencyId", req.DepartureAgencyID)
	if err != nil {
		return s.writeError(c, err)
	}
	arrival, err := toKernel("arrivalAgencyId", req.ArrivalAgencyID)
	if err != nil {
		return s.writeError(c, err)
	}

	parcels := make([]commands.ParcelDimensions, 0, len(req.Parcels))
	for _, p := range req.Parcels {
		parcels = append(parcels, commands.ParcelDimensions{
			Height: p.Height,
			Width:  p.Width,
			Length: p.Length,
			Weight: p.Weight,
		})
	}

	cmd, err := commands.NewCreateQuoteCommand(parcels, departure, arrival)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.CreateQuote.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	s.setDraftCookie(c, result.Token, result.Quote.ExpiresAt())
	return c.JSON(http.StatusCreated, newQuoteView(result.Quote))
}

// GetDraft handles GET /api/v1/quotes/draft.
func (s *Server) GetDraft(c echo.Context) error {
	token := draftToken(c)
	if token == "" {
		return s.writeError(c, commands.ErrInvalidDraft)
	}

	q, err := s.drafts.Decode(token)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, newQuoteView(q))
}

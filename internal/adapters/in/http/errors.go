package http

import (
	"errors"
	"net/http"

	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/domain/model/quote"
	"colis/internal/core/ports"
	"colis/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const noDraftMessage = "no draft present"

// writeError maps an application error to its response. Unexpected errors
// are logged and answered with a generic message.
func (s *Server) writeError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	status, message := classify(err)
	switch status {
	case http.StatusUnprocessableEntity:
		s.clearDraftCookie(c)
	case http.StatusInternalServerError:
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method, "route", c.Path(), "error", err)
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

func classify(err error) (int, string) {
	switch {
	case isDraftError(err):
		return http.StatusUnprocessableEntity, noDraftMessage
	case errors.Is(err, quote.ErrInvalidParcel),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrStateConflict),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func isDraftError(err error) bool {
	return errors.Is(err, commands.ErrInvalidDraft) ||
		errors.Is(err, ports.ErrExpiredToken) ||
		errors.Is(err, ports.ErrInvalidSignature) ||
		errors.Is(err, ports.ErrMalformedToken)
}

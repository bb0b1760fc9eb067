package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"colis/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// HeaderSignature carries the hex HMAC-SHA256 of the webhook body.
const HeaderSignature = "X-Signature"

const maxWebhookBody = 64 << 10

var errBadSignature = echo.NewHTTPError(http.StatusUnauthorized, "invalid signature")

// PaymentWebhook handles POST /api/v1/shipments/:id/payment. The payment
// provider signs the raw body; a FAILED notification is acknowledged and
// leaves the shipment untouched.
func (s *Server) PaymentWebhook(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if !s.verifySignature(body, c.Request().Header.Get(HeaderSignature)) {
		return errBadSignature
	}

	var notification PaymentNotification
	if err = json.Unmarshal(body, &notification); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	switch notification.Status {
	case PaymentSucceeded:
	case PaymentFailed:
		s.logger.InfoContext(c.Request().Context(), "Payment failed",
			"shipmentId", id.String(), "reference", notification.Reference)
		return c.NoContent(http.StatusAccepted)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown payment status")
	}

	cmd, err := commands.NewMarkShipmentPaidCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}

	paid, err := s.handlers.MarkShipmentPaid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, newShipmentView(paid))
}

func (s *Server) verifySignature(body []byte, header string) bool {
	got, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(header), "sha256="))
	if err != nil || len(got) == 0 {
		return false
	}
	mac := hmac.New(sha256.New, s.webhookSecret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// SignWebhook returns the X-Signature value for body under secret.
func SignWebhook(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

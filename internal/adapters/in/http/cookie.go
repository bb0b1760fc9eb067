package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// DraftCookieName carries the signed draft token between quote and promotion.
const DraftCookieName = "colis_draft"

func (s *Server) setDraftCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     DraftCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(s.draftTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearDraftCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     DraftCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})
}

func draftToken(c echo.Context) string {
	cookie, err := c.Cookie(DraftCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

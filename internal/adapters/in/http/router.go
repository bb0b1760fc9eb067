package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"colis/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

// RouterOptions tunes the middleware stack.
type RouterOptions struct {
	// QuoteRateLimit is the number of quote requests per second allowed per
	// client IP. Zero disables the limit.
	QuoteRateLimit float64
	// Swagger serves the API description under /swagger/.
	Swagger bool
}

// NewRouter builds the echo instance serving the API, health and metrics.
func NewRouter(server *Server, doc *openapi3.T, opts RouterOptions) (*echo.Echo, error) {
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi router: %w", err)
	}

	metrics.Register()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = server.httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(requestMetrics)
	e.Use(requestLogger(server.logger))
	e.Use(actorMiddleware)
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	if opts.Swagger {
		if err = registerSwagger(doc); err != nil {
			return nil, fmt.Errorf("swagger: %w", err)
		}
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	var quoteLimit []echo.MiddlewareFunc
	if opts.QuoteRateLimit > 0 {
		store := middleware.NewRateLimiterMemoryStore(rate.Limit(opts.QuoteRateLimit))
		quoteLimit = append(quoteLimit, middleware.RateLimiter(store))
	}

	RegisterHandlers(e.Group("/api/v1"), server, quoteLimit...)

	return e, nil
}

// RegisterHandlers binds every endpoint of the API to g.
func RegisterHandlers(g *echo.Group, s *Server, quoteMiddleware ...echo.MiddlewareFunc) {
	g.POST("/quotes", s.CreateQuote, quoteMiddleware...)
	g.GET("/quotes/draft", s.GetDraft)

	g.POST("/shipments", s.PromoteDraft)
	g.GET("/shipments/:id", s.GetShipment)
	g.DELETE("/shipments/:id", s.DeleteShipment)
	g.POST("/shipments/:id/payment", s.PaymentWebhook)
	g.POST("/shipments/:id/cancel", s.CancelShipment)
	g.POST("/shipments/:id/complete", s.CompleteShipment)
	g.POST("/shipments/:id/appointments", s.BookAppointment)
	g.GET("/shipments/:id/tracking-events", s.GetTrackingHistory)
	g.POST("/shipments/:id/tracking-events", s.AppendTrackingEvent)

	g.DELETE("/appointments/:id", s.CancelAppointment)

	g.GET("/tariff", s.GetTariff)
	g.PUT("/tariff", s.UpdateTariff)
}

// httpErrorHandler renders echo errors in the API error shape.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	} else {
		s.logger.ErrorContext(c.Request().Context(), "Unhandled error", "route", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, ErrorResponse{Code: status, Message: message})
	}
	if err != nil {
		s.logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", err)
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "Request", attrs...)
			return nil
		},
	})
}

func requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)
		metrics.HTTPRequests.WithLabelValues(c.Request().Method, route, status).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request().Method, route, status).Observe(time.Since(start).Seconds())
		return err
	}
}

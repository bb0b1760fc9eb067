// Package http is the REST adapter of the shipping engine.
package http

import (
	"context"
	"log/slog"
	"time"

	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/application/usecases/queries"
	"colis/internal/core/domain/model/appointment"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/core/domain/model/tracking"
	"colis/internal/core/ports"
)

// Use case contracts, satisfied by the command and query handlers.
type (
	CreateQuoteHandler interface {
		Handle(ctx context.Context, cmd commands.CreateQuoteCommand) (commands.CreateQuoteResult, error)
	}
	PromoteDraftHandler interface {
		Handle(ctx context.Context, cmd commands.PromoteDraftCommand) (*shipment.Shipment, error)
	}
	MarkShipmentPaidHandler interface {
		Handle(ctx context.Context, cmd commands.MarkShipmentPaidCommand) (*shipment.Shipment, error)
	}
	CancelShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.CancelShipmentCommand) error
	}
	CompleteShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteShipmentCommand) error
	}
	DeleteShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteShipmentCommand) error
	}
	BookAppointmentHandler interface {
		Handle(ctx context.Context, cmd commands.BookAppointmentCommand) (*appointment.Appointment, error)
	}
	CancelAppointmentHandler interface {
		Handle(ctx context.Context, cmd commands.CancelAppointmentCommand) error
	}
	AppendTrackingEventHandler interface {
		Handle(ctx context.Context, cmd commands.AppendTrackingEventCommand) (*tracking.Event, error)
	}
	UpdateTariffHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateTariffCommand) error
	}
	GetShipmentHandler interface {
		Handle(ctx context.Context, query queries.GetShipmentQuery) (queries.GetShipmentQueryResponse, error)
	}
	GetTrackingHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetTrackingHistoryQuery) ([]queries.TrackingEventResponse, error)
	}
	GetTariffHandler interface {
		Handle(ctx context.Context, query queries.GetTariffQuery) (queries.GetTariffQueryResponse, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateQuote         CreateQuoteHandler
	PromoteDraft        PromoteDraftHandler
	MarkShipmentPaid    MarkShipmentPaidHandler
	CancelShipment      CancelShipmentHandler
	CompleteShipment    CompleteShipmentHandler
	DeleteShipment      DeleteShipmentHandler
	BookAppointment     BookAppointmentHandler
	CancelAppointment   CancelAppointmentHandler
	AppendTrackingEvent AppendTrackingEventHandler
	UpdateTariff        UpdateTariffHandler
	GetShipment         GetShipmentHandler
	GetTrackingHistory  GetTrackingHistoryHandler
	GetTariff           GetTariffHandler
}

// Server implements the REST endpoints on top of the use cases.
type Server struct {
	handlers      Handlers
	drafts        ports.DraftTokenCodec
	draftTTL      time.Duration
	webhookSecret []byte
	logger        *slog.Logger
}

// NewServer creates the HTTP server. drafts decodes the draft cookie for
// GET /quotes/draft; webhookSecret verifies payment notifications.
func NewServer(
	handlers Handlers,
	drafts ports.DraftTokenCodec,
	draftTTL time.Duration,
	webhookSecret []byte,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers:      handlers,
		drafts:        drafts,
		draftTTL:      draftTTL,
		webhookSecret: webhookSecret,
		logger:        logger.With("component", "http_server"),
	}
}

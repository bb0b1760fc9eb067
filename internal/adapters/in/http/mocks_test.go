package http

import (
	"context"

	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/application/usecases/queries"
	"colis/internal/core/domain/model/appointment"
	"colis/internal/core/domain/model/quote"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
)

type MockCreateQuoteHandler struct{ mock.Mock }

func (m *MockCreateQuoteHandler) Handle(ctx context.Context, cmd commands.CreateQuoteCommand) (commands.CreateQuoteResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateQuoteResult), args.Error(1)
}

type MockPromoteDraftHandler struct{ mock.Mock }

func (m *MockPromoteDraftHandler) Handle(ctx context.Context, cmd commands.PromoteDraftCommand) (*shipment.Shipment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockMarkShipmentPaidHandler struct{ mock.Mock }

func (m *MockMarkShipmentPaidHandler) Handle(ctx context.Context, cmd commands.MarkShipmentPaidCommand) (*shipment.Shipment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockCancelShipmentHandler struct{ mock.Mock }

func (m *MockCancelShipmentHandler) Handle(ctx context.Context, cmd commands.CancelShipmentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCompleteShipmentHandler struct{ mock.Mock }

func (m *MockCompleteShipmentHandler) Handle(ctx context.Context, cmd commands.CompleteShipmentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteShipmentHandler struct{ mock.Mock }

func (m *MockDeleteShipmentHandler) Handle(ctx context.Context, cmd commands.DeleteShipmentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockBookAppointmentHandler struct{ mock.Mock }

func (m *MockBookAppointmentHandler) Handle(ctx context.Context, cmd commands.BookAppointmentCommand) (*appointment.Appointment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}

type MockCancelAppointmentHandler struct{ mock.Mock }

func (m *MockCancelAppointmentHandler) Handle(ctx context.Context, cmd commands.CancelAppointmentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAppendTrackingEventHandler struct{ mock.Mock }

func (m *MockAppendTrackingEventHandler) Handle(ctx context.Context, cmd commands.AppendTrackingEventCommand) (*tracking.Event, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Event), args.Error(1)
}

type MockUpdateTariffHandler struct{ mock.Mock }

func (m *MockUpdateTariffHandler) Handle(ctx context.Context, cmd commands.UpdateTariffCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetShipmentHandler struct{ mock.Mock }

func (m *MockGetShipmentHandler) Handle(ctx context.Context, query queries.GetShipmentQuery) (queries.GetShipmentQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetShipmentQueryResponse), args.Error(1)
}

type MockGetTrackingHistoryHandler struct{ mock.Mock }

func (m *MockGetTrackingHistoryHandler) Handle(ctx context.Context, query queries.GetTrackingHistoryQuery) ([]queries.TrackingEventResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.TrackingEventResponse), args.Error(1)
}

type MockGetTariffHandler struct{ mock.Mock }

func (m *MockGetTariffHandler) Handle(ctx context.Context, query queries.GetTariffQuery) (queries.GetTariffQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetTariffQueryResponse), args.Error(1)
}

type MockDraftTokenCodec struct{ mock.Mock }

func (m *MockDraftTokenCodec) Encode(q quote.Quote) (string, error) {
	args := m.Called(q)
	return args.String(0), args.Error(1)
}

func (m *MockDraftTokenCodec) Decode(token string) (quote.Quote, error) {
	args := m.Called(token)
	return args.Get(0).(quote.Quote), args.Error(1)
}

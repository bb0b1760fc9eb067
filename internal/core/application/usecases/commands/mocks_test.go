package commands_test

import (
	"context"
	"testing"
	"time"

	"colis/internal/core/domain/model/agency"
	"colis/internal/core/domain/model/appointment"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/quote"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/core/domain/model/tariff"
	"colis/internal/core/domain/model/tracking"
	"colis/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) DeleteParcels(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAppointmentRepository struct{ mock.Mock }

func (m *MockAppointmentRepository) Add(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appointment.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) HasScheduled(ctx context.Context, shipmentID kernel.UUID) (bool, error) {
	args := m.Called(ctx, shipmentID)
	return args.Bool(0), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Append(ctx context.Context, e *tracking.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockTariffRepository struct{ mock.Mock }

func (m *MockTariffRepository) Get(ctx context.Context) (tariff.Tariff, error) {
	args := m.Called(ctx)
	return args.Get(0).(tariff.Tariff), args.Error(1)
}

func (m *MockTariffRepository) Save(ctx context.Context, t tariff.Tariff) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockAgencyRepository struct{ mock.Mock }

func (m *MockAgencyRepository) Get(ctx context.Context, id kernel.UUID) (*agency.Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agency.Agency), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnprocessed(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkProcessed(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

// MockUoW satisfies every narrow unit of work of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) AppointmentRepository() ports.AppointmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AppointmentRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) TariffRepository() ports.TariffRepository {
	args := m.Called()
	return args.Get(0).(ports.TariffRepository)
}

func (m *MockUoW) AgencyRepository() ports.AgencyRepository {
	args := m.Called()
	return args.Get(0).(ports.AgencyRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

// MockUoWFactory creates whichever narrow unit of work T a handler expects.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	args := m.Called()
	return args.Get(0).(T)
}

func newFactory[T any](uow T) *MockUoWFactory[T] {
	f := new(MockUoWFactory[T])
	f.On("Create").Return(uow).Once()
	return f
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

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

// fixtures

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newAgency(t *testing.T, code string) *agency.Agency {
	t.Helper()
	a, err := agency.NewAgency(kernel.NewUUID(), code, code+" agency")
	require.NoError(t, err)
	return a
}

func newQuote(t *testing.T, departure, arrival *agency.Agency) quote.Quote {
	t.Helper()
	p, err := quote.NewParcel(dec("10"), dec("20"), dec("30"), dec("2"))
	require.NoError(t, err)
	route, err := quote.NewRoute(departure.ID(), arrival.ID())
	require.NoError(t, err)
	now := time.Now().UTC()
	q, err := quote.NewQuote(kernel.NewUUID(), []quote.Parcel{p}, dec("2"), p.Volume(), dec("25.00"), route, now, now.Add(time.Hour))
	require.NoError(t, err)
	return q
}

func newConfirmedShipment(t *testing.T, userID kernel.UUID) *shipment.Shipment {
	t.Helper()
	q := newQuote(t, newAgency(t, "BRU"), newAgency(t, "LGG"))
	tn, err := shipment.NewTrackingNumber("BRU-LGG-ABCDEFGH")
	require.NoError(t, err)
	s, err := shipment.NewShipment(kernel.NewUUID(), q, userID, kernel.NewUUID(), tn, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Confirm(time.Now()))
	s.ClearDomainEvents()
	return s
}

func newPaidShipment(t *testing.T, userID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s := newConfirmedShipment(t, userID)
	_, err := s.MarkPaid(time.Now())
	require.NoError(t, err)
	s.ClearDomainEvents()
	return s
}

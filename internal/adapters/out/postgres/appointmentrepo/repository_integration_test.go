package appointmentrepo_test

import (
	"context"
	"testing"
	"time"

	"colis/internal/adapters/out/postgres/appointmentrepo"
	"colis/internal/adapters/out/postgres/pgtest"
	"colis/internal/adapters/out/postgres/shipmentrepo"
	"colis/internal/core/domain/model/appointment"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type AppointmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *appointmentrepo.GormAppointmentRepository
	owner      kernel.UUID
	shipment   *shipment.Shipment
}

func (suite *AppointmentRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *AppointmentRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = appointmentrepo.NewGormAppointmentRepository(suite.db, noopTracker{})

	q, err := pgtest.NewQuote()
	suite.Require().NoError(err)
	suite.owner = kernel.NewUUID()
	suite.shipment, err = pgtest.NewConfirmedShipment(q, suite.owner, 0)
	suite.Require().NoError(err)
	_, err = suite.shipment.MarkPaid(pgtest.Now)
	suite.Require().NoError(err)
	suite.Require().NoError(shipmentrepo.NewGormShipmentRepository(suite.db, noopTracker{}).Add(ctx, suite.shipment))
}

func (suite *AppointmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AppointmentRepositoryIntegrationTestSuite) book() *appointment.Appointment {
	a, err := appointment.Book(kernel.NewUUID(), suite.shipment, suite.owner, pgtest.Now.Add(72*time.Hour), pgtest.Now)
	suite.Require().NoError(err)
	return a
}

func (suite *AppointmentRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	a := suite.book()

	suite.Require().NoError(suite.repository.Add(ctx, a))
	got, err := suite.repository.Get(ctx, a.ID())

	suite.Require().NoError(err)
	suite.Equal(appointment.Scheduled, got.Status())
	suite.True(got.AgencyID().IsEqual(suite.shipment.Route().DepartureAgencyID))
	suite.True(got.Date().Equal(a.Date()))

	has, err := suite.repository.HasScheduled(ctx, suite.shipment.ID())
	suite.Require().NoError(err)
	suite.True(has)
}

func (suite *AppointmentRepositoryIntegrationTestSuite) TestSecondScheduledAppointmentIsRejected() {
	ctx := context.Background()
	first := suite.book()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, suite.book())

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	got, getErr := suite.repository.Get(ctx, first.ID())
	suite.Require().NoError(getErr)
	suite.Equal(appointment.Scheduled, got.Status())
}

func (suite *AppointmentRepositoryIntegrationTestSuite) TestCancelledAppointmentFreesTheShipment() {
	ctx := context.Background()
	first := suite.book()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(first.Cancel(suite.owner))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	has, err := suite.repository.HasScheduled(ctx, suite.shipment.ID())
	suite.Require().NoError(err)
	suite.False(has)

	suite.Require().NoError(suite.repository.Add(ctx, suite.book()))
}

func (suite *AppointmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAppointmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentRepositoryIntegrationTestSuite))
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"colis/internal/adapters/out/postgres/pgtest"
	"colis/internal/adapters/out/postgres/shipmentrepo"
	"colis/internal/adapters/out/postgres/tariffrepo"
	"colis/internal/adapters/out/postgres/trackingrepo"
	"colis/internal/core/application/usecases/queries"
	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/core/domain/model/tariff"
	"colis/internal/core/domain/model/tracking"
	"colis/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	shipments *shipmentrepo.GormShipmentRepository
	events    *trackingrepo.GormTrackingRepository
	owner     kernel.UUID
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.shipments = shipmentrepo.NewGormShipmentRepository(suite.db, noopTracker{})
	suite.events = trackingrepo.NewGormTrackingRepository(suite.db, noopTracker{})
	suite.owner = kernel.NewUUID()
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) addShipment(n int) *shipment.Shipment {
	q, err := pgtest.NewQuote()
	suite.Require().NoError(err)
	s, err := pgtest.NewConfirmedShipment(q, suite.owner, n)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipments.Add(context.Background(), s))
	return s
}

func (suite *QueriesIntegrationTestSuite) appendEvent(shipmentID kernel.UUID, status tracking.Status, at time.Time) {
	e, err := tracking.NewEvent(kernel.NewUUID(), shipmentID, status, "Liège", "", access.RoleAgencyAdmin, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.events.Append(context.Background(), e))
}

func (suite *QueriesIntegrationTestSuite) TestGetShipment_Detail() {
	ctx := context.Background()
	s := suite.addShipment(0)

	query, err := queries.NewGetShipmentQuery(s.ID(), suite.owner, access.RoleCustomer)
	suite.Require().NoError(err)
	handler := queries.NewGetShipmentQueryHandler(suite.db, access.DefaultPolicy())

	detail, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(s.ID(), detail.ID)
	suite.Equal(s.TrackingNumber().String(), detail.TrackingNumber)
	suite.Equal("CONFIRMED", detail.Status)
	suite.False(detail.Paid)
	suite.True(decimal.RequireFromString("31.40").Equal(detail.Price))
	suite.Require().Len(detail.Parcels, 2)
	suite.True(decimal.NewFromInt(10).Equal(detail.Parcels[0].Height))
	suite.True(decimal.NewFromInt(50).Equal(detail.Parcels[1].Height))
	suite.Empty(detail.DeliveryStatus)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipment_DeliveryStatusFollowsInsertionOrder() {
	ctx := context.Background()
	s := suite.addShipment(0)

	// Client clocks may disagree; only the append order counts.
	suite.appendEvent(s.ID(), tracking.Pending, pgtest.Now.Add(time.Hour))
	suite.appendEvent(s.ID(), tracking.Sent, pgtest.Now)
	suite.appendEvent(s.ID(), tracking.Delivered, pgtest.Now)

	query, err := queries.NewGetShipmentQuery(s.ID(), kernel.NewUUID(), access.RoleAgencyAdmin)
	suite.Require().NoError(err)
	handler := queries.NewGetShipmentQueryHandler(suite.db, access.DefaultPolicy())

	detail, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("DELIVERED", detail.DeliveryStatus)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipment_ForeignCustomerSeesNothing() {
	s := suite.addShipment(0)

	query, err := queries.NewGetShipmentQuery(s.ID(), kernel.NewUUID(), access.RoleCustomer)
	suite.Require().NoError(err)
	handler := queries.NewGetShipmentQueryHandler(suite.db, access.DefaultPolicy())

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetShipment_DeletedIsHidden() {
	ctx := context.Background()
	s := suite.addShipment(0)
	suite.Require().NoError(s.Cancel(pgtest.Now))
	suite.Require().NoError(s.SoftDelete(pgtest.Now))
	suite.Require().NoError(suite.shipments.Update(ctx, s))

	query, err := queries.NewGetShipmentQuery(s.ID(), suite.owner, access.RoleCustomer)
	suite.Require().NoError(err)
	handler := queries.NewGetShipmentQueryHandler(suite.db, access.DefaultPolicy())

	_, err = handler.Handle(ctx, query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetTrackingHistory_Ordered() {
	ctx := context.Background()
	s := suite.addShipment(0)
	other := suite.addShipment(1)

	suite.appendEvent(s.ID(), tracking.Pending, pgtest.Now)
	suite.appendEvent(other.ID(), tracking.Returned, pgtest.Now)
	suite.appendEvent(s.ID(), tracking.Sent, pgtest.Now.Add(-time.Hour))
	suite.appendEvent(s.ID(), tracking.Delivered, pgtest.Now)

	query, err := queries.NewGetTrackingHistoryQuery(s.ID(), suite.owner, access.RoleCustomer)
	suite.Require().NoError(err)
	handler := queries.NewGetTrackingHistoryQueryHandler(suite.db, access.DefaultPolicy())

	history, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(history, 3)
	suite.Equal("PENDING", history[0].Status)
	suite.Equal("SENT", history[1].Status)
	suite.Equal("DELIVERED", history[2].Status)
	suite.Less(history[0].Seq, history[1].Seq)
	suite.Equal("AGENCY_ADMIN", history[2].CreatedByRole)
}

func (suite *QueriesIntegrationTestSuite) TestGetTrackingHistory_UnknownShipment() {
	query, err := queries.NewGetTrackingHistoryQuery(kernel.NewUUID(), suite.owner, access.RoleSuperAdmin)
	suite.Require().NoError(err)
	handler := queries.NewGetTrackingHistoryQueryHandler(suite.db, access.DefaultPolicy())

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetTariff() {
	ctx := context.Background()
	handler := queries.NewGetTariffQueryHandler(suite.db)

	_, err := handler.Handle(ctx, queries.NewGetTariffQuery())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	t, err := tariff.NewTariff(
		decimal.RequireFromString("2.5"), decimal.RequireFromString("0.001"),
		decimal.NewFromInt(5), decimal.NewFromInt(1),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(tariffrepo.NewGormTariffRepository(suite.db).Save(ctx, t))

	current, err := handler.Handle(ctx, queries.NewGetTariffQuery())
	suite.Require().NoError(err)
	suite.True(t.WeightRate().Equal(current.WeightRate))
	suite.True(t.VolumeRate().Equal(current.VolumeRate))
	suite.True(t.BaseRate().Equal(current.BaseRate))
	suite.True(t.FixedRate().Equal(current.FixedRate))
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

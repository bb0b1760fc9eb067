package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgres_adapter "colis/internal/adapters/out/postgres"
	"colis/internal/adapters/out/postgres/outboxrepo"
	"colis/internal/adapters/out/postgres/pgtest"
	"colis/internal/adapters/out/postgres/shipmentrepo"
	"colis/internal/adapters/out/postgres/tariffrepo"
	"colis/internal/core/domain/model/kernel"
	"colis/internal/core/domain/model/shipment"
	"colis/internal/core/domain/model/tariff"
	"colis/internal/core/ports"
	"colis/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipment() *shipment.Shipment {
	q, err := pgtest.NewQuote()
	suite.Require().NoError(err)
	s, err := pgtest.NewConfirmedShipment(q, kernel.NewUUID(), 0)
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(model any) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WritesEventsToOutbox() {
	ctx := context.Background()
	s := suite.newShipment()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Empty(s.DomainEvents())
	var rows []outboxrepo.MessageDTO
	suite.Require().NoError(suite.db.Order("seq").Find(&rows).Error)
	suite.Require().Len(rows, 1)
	suite.Equal(shipment.EventConfirmed, rows[0].Name)
	suite.Equal(s.ID().Bytes(), rows[0].AggregateID)
	suite.Nil(rows[0].ProcessedAt)

	var payload map[string]any
	suite.Require().NoError(json.Unmarshal(rows[0].Payload, &payload))
	suite.Equal(s.TrackingNumber().String(), payload["trackingNumber"])
	suite.Equal("31.40", payload["price"])
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsStateAndEvents() {
	ctx := context.Background()
	s := suite.newShipment()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countRows(&shipmentrepo.ShipmentDTO{}))
	suite.Equal(int64(0), suite.countRows(&outboxrepo.MessageDTO{}))
	suite.Len(s.DomainEvents(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAggregateSavedTwiceIsWrittenOnce() {
	ctx := context.Background()
	s := suite.newShipment()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	_, err := s.MarkPaid(pgtest.Now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, s))
	suite.Require().NoError(uow.Commit(ctx))

	var names []string
	suite.Require().NoError(suite.db.Model(&outboxrepo.MessageDTO{}).Order("seq").Pluck("name", &names).Error)
	suite.Equal([]string{shipment.EventConfirmed, shipment.EventPaid}, names)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutbox_GetUnprocessedAndMarkProcessed() {
	ctx := context.Background()
	for range 3 {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		q, err := pgtest.NewQuote()
		suite.Require().NoError(err)
		s, err := pgtest.NewConfirmedShipment(q, kernel.NewUUID(), int(suite.countRows(&shipmentrepo.ShipmentDTO{})))
		suite.Require().NoError(err)
		suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
		suite.Require().NoError(uow.Commit(ctx))
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	batch, err := uow.OutboxRepository().GetUnprocessed(ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Len(batch, 2)
	ids := []uuid.UUID{batch[0].ID, batch[1].ID}
	suite.Require().NoError(uow.OutboxRepository().MarkProcessed(ctx, ids, time.Now()))
	suite.Require().NoError(uow.Commit(ctx))

	rest, err := suite.factory.Create().OutboxRepository().GetUnprocessed(ctx, 10)
	suite.Require().NoError(err)
	suite.Len(rest, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTariff_SaveReplacesCurrent() {
	ctx := context.Background()
	repo := suite.factory.Create().TariffRepository()

	_, err := repo.Get(ctx)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	first, err := tariff.NewTariff(decimal.NewFromInt(2), decimal.NewFromInt(1), decimal.NewFromInt(10), decimal.NewFromInt(5))
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Save(ctx, first))
	second, err := tariff.NewTariff(decimal.RequireFromString("2.5"), decimal.NewFromInt(1), decimal.NewFromInt(10), decimal.NewFromInt(5))
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Save(ctx, second))

	got, err := repo.Get(ctx)
	suite.Require().NoError(err)
	suite.True(got.WeightRate().Equal(decimal.RequireFromString("2.5")))
	suite.Equal(int64(1), suite.countRows(&tariffrepo.TariffDTO{}))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

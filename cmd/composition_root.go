package cmd

import (
	"log/slog"

	"colis/internal/adapters/out/drafttoken"
	"colis/internal/adapters/out/kafka"
	"colis/internal/adapters/out/postgres"
	"colis/internal/core/application/usecases/commands"
	"colis/internal/core/application/usecases/queries"
	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/services"
	"colis/internal/core/ports"
	"colis/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     access.Policy
	drafts     *drafttoken.Codec
	producer   *kafka.Producer
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, policy access.Policy, logger *slog.Logger) (*CompositionRoot, error) {
	drafts, err := drafttoken.NewCodec([]byte(configs.DraftTokenSecret))
	if err != nil {
		return nil, err
	}
	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
		drafts:     drafts,
		producer:   kafka.NewProducer(configs.KafkaHost, configs.KafkaShipmentEventsTopic),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) DraftTokenCodec() ports.DraftTokenCodec {
	return c.drafts
}

func (c *CompositionRoot) EventPublisher() *kafka.Producer {
	return c.producer
}

func (c *CompositionRoot) CreateCreateQuoteCommandHandler() *commands.CreateQuoteCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateQuoteCommandHandler(f, services.NewPricingCalculator(c.configs.DraftTokenTTL), c.drafts)
	return &h
}

func (c *CompositionRoot) CreatePromoteDraftCommandHandler() *commands.PromoteDraftCommandHandler {
	var f commands.PromotionUoWFactory = FuncPromotionUoWFactory(func() commands.PromotionUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPromoteDraftCommandHandler(f, c.drafts, services.NewTrackingNumberGenerator())
	return &h
}

func (c *CompositionRoot) CreateMarkShipmentPaidCommandHandler() *commands.MarkShipmentPaidCommandHandler {
	h := commands.NewMarkShipmentPaidCommandHandler(c.shipmentUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() *commands.CancelShipmentCommandHandler {
	h := commands.NewCancelShipmentCommandHandler(c.shipmentUoWFactory(), c.policy)
	return &h
}

func (c *CompositionRoot) CreateCompleteShipmentCommandHandler() *commands.CompleteShipmentCommandHandler {
	h := commands.NewCompleteShipmentCommandHandler(c.shipmentUoWFactory(), c.policy)
	return &h
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() *commands.DeleteShipmentCommandHandler {
	h := commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory(), c.policy)
	return &h
}

func (c *CompositionRoot) CreateBookAppointmentCommandHandler() *commands.BookAppointmentCommandHandler {
	h := commands.NewBookAppointmentCommandHandler(c.appointmentUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCancelAppointmentCommandHandler() *commands.CancelAppointmentCommandHandler {
	h := commands.NewCancelAppointmentCommandHandler(c.appointmentUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAppendTrackingEventCommandHandler() *commands.AppendTrackingEventCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewAppendTrackingEventCommandHandler(f, c.policy)
	return &h
}

func (c *CompositionRoot) CreateUpdateTariffCommandHandler() *commands.UpdateTariffCommandHandler {
	var f commands.TariffUoWFactory = FuncTariffUoWFactory(func() commands.TariffUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateTariffCommandHandler(f, c.policy)
	return &h
}

func (c *CompositionRoot) CreatePublishOutboxCommandHandler() *commands.PublishOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPublishOutboxCommandHandler(f, c.producer)
	return &h
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetTariffQueryHandler() queries.GetTariffQueryHandler {
	return queries.NewGetTariffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePublishOutboxCommandHandler(),
		c.configs.OutboxBatchSize,
		c.configs.OutboxSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) appointmentUoWFactory() commands.AppointmentUoWFactory {
	return FuncAppointmentUoWFactory(func() commands.AppointmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncPromotionUoWFactory func() commands.PromotionUoW

func (f FuncPromotionUoWFactory) Create() commands.PromotionUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncAppointmentUoWFactory func() commands.AppointmentUoW

func (f FuncAppointmentUoWFactory) Create() commands.AppointmentUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncTariffUoWFactory func() commands.TariffUoW

func (f FuncTariffUoWFactory) Create() commands.TariffUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

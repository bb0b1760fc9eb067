package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"colis/cmd"
	httpin "colis/internal/adapters/in/http"
	"colis/internal/adapters/out/postgres"
	"colis/internal/adapters/out/postgres/tariffrepo"
	"colis/internal/core/domain/model/tariff"

	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(ctx, configs)

	policy, err := cmd.BuildPolicy(configs)
	if err != nil {
		log.Fatalf("Error building access policy: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, policy, logger)
	if err != nil {
		log.Fatalf("Error creating composition root: %v", err)
	}
	defer func() {
		if err := app.EventPublisher().Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func mustOpenDatabase(ctx context.Context, configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	seed, err := tariff.NewTariff(configs.SeedWeightRate, configs.SeedVolumeRate, configs.SeedBaseRate, configs.SeedFixedRate)
	if err != nil {
		log.Fatalf("Error in seed tariff: %v", err)
	}
	if err = tariffrepo.NewGormTariffRepository(gormDB).SeedIfEmpty(ctx, seed); err != nil {
		log.Fatalf("Error seeding tariff: %v", err)
	}
	return gormDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateQuote:         app.CreateCreateQuoteCommandHandler(),
		PromoteDraft:        app.CreatePromoteDraftCommandHandler(),
		MarkShipmentPaid:    app.CreateMarkShipmentPaidCommandHandler(),
		CancelShipment:      app.CreateCancelShipmentCommandHandler(),
		CompleteShipment:    app.CreateCompleteShipmentCommandHandler(),
		DeleteShipment:      app.CreateDeleteShipmentCommandHandler(),
		BookAppointment:     app.CreateBookAppointmentCommandHandler(),
		CancelAppointment:   app.CreateCancelAppointmentCommandHandler(),
		AppendTrackingEvent: app.CreateAppendTrackingEventCommandHandler(),
		UpdateTariff:        app.CreateUpdateTariffCommandHandler(),
		GetShipment:         app.CreateGetShipmentQueryHandler(),
		GetTrackingHistory:  app.CreateGetTrackingHistoryQueryHandler(),
		GetTariff:           app.CreateGetTariffQueryHandler(),
	}, app.DraftTokenCodec(), configs.DraftTokenTTL, []byte(configs.PaymentWebhookSecret), logger)

	e, err := httpin.NewRouter(server, doc, httpin.RouterOptions{
		QuoteRateLimit: configs.QuoteRateLimit,
		Swagger:        configs.SwaggerEnabled,
	})
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		logger.Info("HTTP server starting", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

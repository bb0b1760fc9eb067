package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"colis"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	DraftTokenSecret     string        `env:"DRAFT_TOKEN_SECRET,required"`
	DraftTokenTTL        time.Duration `env:"DRAFT_TOKEN_TTL" envDefault:"720h"`
	PaymentWebhookSecret string        `env:"PAYMENT_WEBHOOK_SECRET,required"`

	KafkaHost                string `env:"KAFKA_HOST"`
	KafkaShipmentEventsTopic string `env:"KAFKA_SHIPMENT_EVENTS_TOPIC" envDefault:"shipment.events"`

	TrackingAppendRoles []string `env:"TRACKING_APPEND_ROLES" envSeparator:"," envDefault:"AGENCY_ADMIN,SUPER_ADMIN,ACCOUNTANT"`
	AccessPolicyFile    string   `env:"ACCESS_POLICY_FILE"`

	OutboxBatchSize int    `env:"OUTBOX_BATCH_SIZE" envDefault:"100"`
	OutboxSchedule  string `env:"OUTBOX_SCHEDULE" envDefault:"*/5 * * * * *"`

	QuoteRateLimit float64 `env:"QUOTE_RATE_LIMIT" envDefault:"5"`
	SwaggerEnabled bool    `env:"SWAGGER_ENABLED" envDefault:"true"`

	// Written to the tariff table on first start only.
	SeedWeightRate decimal.Decimal `env:"TARIFF_WEIGHT_RATE" envDefault:"2"`
	SeedVolumeRate decimal.Decimal `env:"TARIFF_VOLUME_RATE" envDefault:"1"`
	SeedBaseRate   decimal.Decimal `env:"TARIFF_BASE_RATE" envDefault:"10"`
	SeedFixedRate  decimal.Decimal `env:"TARIFF_FIXED_RATE" envDefault:"5"`
}

// LoadConfig reads the environment, after loading envFile when it exists.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if cfg.OutboxBatchSize <= 0 {
		return Config{}, fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", cfg.OutboxBatchSize)
	}
	if cfg.DraftTokenTTL <= 0 {
		return Config{}, fmt.Errorf("DRAFT_TOKEN_TTL must be positive, got %s", cfg.DraftTokenTTL)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

package jobs

import (
	"context"
	"log/slog"

	"colis/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxSchedule runs the relay every five seconds.
const DefaultOutboxSchedule = "*/5 * * * * *"

type outboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error)
}

// OutboxRelayJob drains the transactional outbox to the message bus.
type OutboxRelayJob struct {
	handler   outboxPublisher
	batchSize int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay. Each run publishes at most batchSize
// messages.
func NewOutboxRelayJob(handler outboxPublisher, batchSize int, schedule string, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start registers the relay with the scheduler and starts it.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce publishes one batch and reports how many messages went out.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewPublishOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay misconfigured", "error", err)
		return 0
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err)
		return 0
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox batch published", "count", published)
	}
	return published
}

// Stop stops the scheduler and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

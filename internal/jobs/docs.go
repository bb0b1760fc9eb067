// Package jobs provides scheduled background tasks of the shipping engine.
//
// Jobs are cron-based (github.com/robfig/cron/v3, with seconds) and call
// command handlers; they hold no business logic of their own.
//
// # Available Jobs
//
// OutboxRelayJob reads unprocessed rows of the outbox, publishes them to
// Kafka and marks them processed. Runs overlap-free: a run still in
// progress makes the next tick a no-op.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(publishOutboxHandler, 100, jobs.DefaultOutboxSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Messages are
// delivered at least once.
package jobs

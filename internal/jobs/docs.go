// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish unsent outbox messages to the message bus
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepository, producer, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *" which means it runs every
// second, keeping event delivery latency low without coupling request handling
// to the broker.
//
// # Error Handling
//
// A publish failure stops the current batch and is logged; unsent messages
// stay in the outbox and are retried on the next tick. Messages are marked
// sent only after broker acknowledgment, so delivery is at-least-once.
package jobs

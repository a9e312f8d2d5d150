package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize bounds how many messages one relay tick publishes.
const relayBatchSize = 100

// MessagePublisher publishes a single outbox message to the bus.
type MessagePublisher interface {
	Publish(ctx context.Context, message ports.OutboxMessage) error
}

// OutboxRelayJob drains the transactional outbox. Runs every second, fetches
// unsent messages in creation order, publishes them, and marks each one sent
// only after the broker acknowledged it. A message that fails to publish stops
// the batch so per-order ordering is preserved.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher MessagePublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a relay over the outbox repository and a publisher.
func NewOutboxRelayJob(
	outbox ports.OutboxRepository,
	publisher MessagePublisher,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relayPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// relayPending publishes one batch of unsent messages.
func (j *OutboxRelayJob) relayPending(ctx context.Context) error {
	pending, err := j.outbox.FetchPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, message := range pending {
		if err = j.publisher.Publish(ctx, message); err != nil {
			return err
		}

		if err = j.outbox.MarkSent(ctx, message.EventID, time.Now().UTC()); err != nil {
			return err
		}
	}

	return nil
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"medpanda/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleBroadcastJob periodically looks for orders that were broadcast to
// couriers but have had no acceptance. Runs every minute and logs each stale
// order so pharmacy staff can re-broadcast or intervene.
type StaleBroadcastJob struct {
	handler   queries.GetStaleBroadcastsQueryHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleBroadcastJob creates a new job for detecting stale broadcasts.
// A broadcast counts as stale once it has waited longer than olderThan.
func NewStaleBroadcastJob(
	handler queries.GetStaleBroadcastsQueryHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *StaleBroadcastJob {
	return &StaleBroadcastJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_broadcast_job"),
	}
}

// Start begins the stale broadcast job to run every minute.
func (j *StaleBroadcastJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetStaleBroadcastsQuery(j.olderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale broadcast query construction failed", "error", err)
			return
		}

		stale, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale broadcast job failed", "error", err)
			return
		}

		for _, entry := range stale {
			j.logger.WarnContext(ctx, "Broadcast order has no acceptance",
				"orderId", entry.ID.String(),
				"address", entry.Address,
				"pendingRequests", entry.PendingRequests,
				"lastActivityAt", entry.LastActivityAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale broadcast job started (running every minute)")
	return nil
}

// Stop stops the stale broadcast job.
func (j *StaleBroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale broadcast job stopped")
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"ruralcart/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AvailabilityCleanupJob sweeps expired driver delivery windows once a day
// shortly after midnight, so the availability board never shows days in the
// past.
type AvailabilityCleanupJob struct {
	handler commands.RemoveExpiredAvailabilityCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAvailabilityCleanupJob creates the daily cleanup job.
func NewAvailabilityCleanupJob(
	handler commands.RemoveExpiredAvailabilityCommandHandler,
	logger *slog.Logger,
) *AvailabilityCleanupJob {
	return &AvailabilityCleanupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "availability_cleanup_job"),
	}
}

// Start schedules the cleanup to run daily at 00:05.
func (j *AvailabilityCleanupJob) Start() error {
	_, err := j.cron.AddFunc("5 0 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRemoveExpiredAvailabilityCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Availability cleanup command invalid", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Availability cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired availability windows removed", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Availability cleanup job started (running daily)")
	return nil
}

// Stop stops the cleanup job.
func (j *AvailabilityCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Availability cleanup job stopped")
}

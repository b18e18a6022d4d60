package jobs

import (
	"context"
	"log/slog"

	"zapshift/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AvailabilityReconciliationJob periodically repairs rider availability.
// Lifecycle updates write the parcel and the rider together, but a partial
// failure between requests can leave a rider marked engaged with no active
// parcel. This job frees those riders.
type AvailabilityReconciliationJob struct {
	handler commands.ReconcileRiderAvailabilityCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAvailabilityReconciliationJob creates the reconciliation job.
func NewAvailabilityReconciliationJob(
	handler commands.ReconcileRiderAvailabilityCommandHandler,
	logger *slog.Logger,
) *AvailabilityReconciliationJob {
	return &AvailabilityReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "availability_reconciliation_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *AvailabilityReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileRiderAvailabilityCommand()

		freed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Availability reconciliation failed", "error", handleErr)
			return
		}
		if freed > 0 {
			j.logger.InfoContext(ctx, "Freed stuck riders", "count", freed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Availability reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *AvailabilityReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Availability reconciliation job stopped")
}

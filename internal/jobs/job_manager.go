package jobs

import (
	"fmt"
	"log/slog"

	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tastingRoomJob *TastingRoomJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	tastingRoomCustomerID kernel.UUID,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		tastingRoomJob: NewTastingRoomJob(submitOrderHandler, tastingRoomCustomerID, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tastingRoomJob.Start(); err != nil {
		return fmt.Errorf("failed to start tasting room job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tastingRoomJob.Stop()
}

package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/edupet/engine/internal/logger"
	"github.com/edupet/engine/internal/reset"
)

// ResetJob runs the idempotent daily reset check. Safe to fire every poll
// interval: the reset only performs work once per calendar date.
type ResetJob struct {
	resetService reset.Service
}

// NewResetJob creates a new ResetJob.
func NewResetJob(resetService reset.Service) *ResetJob {
	return &ResetJob{resetService: resetService}
}

func (j *ResetJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	result, err := j.resetService.CheckAndReset(ctx)
	if err != nil {
		log.Error(LogMsgResetCheckFailed, "error", err)
		return fmt.Errorf("reset check: %w", err)
	}
	if result.Performed {
		log.Info(LogMsgResetPerformed, "date", result.Date)
	}
	return nil
}

// MaintenanceJob runs the periodic sweeps: pruning expired growth tickets
// and flipping due plants to READY. Both run even if one fails.
type MaintenanceJob struct {
	resetService reset.Service
}

// NewMaintenanceJob creates a new MaintenanceJob.
func NewMaintenanceJob(resetService reset.Service) *MaintenanceJob {
	return &MaintenanceJob{resetService: resetService}
}

func (j *MaintenanceJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var errs []error

	cleanup, err := j.resetService.CleanupExpiredTickets(ctx)
	if err != nil {
		log.Error(LogMsgMaintenanceFailed, "sweep", "tickets", "error", err)
		errs = append(errs, fmt.Errorf("ticket cleanup: %w", err))
	} else if cleanup.ExpiredCount > 0 {
		log.Info(LogMsgTicketsPruned, "expired", cleanup.ExpiredCount, "remaining", cleanup.RemainingCount)
	}

	sweep, err := j.resetService.UpdatePlantsStatus(ctx)
	if err != nil {
		log.Error(LogMsgMaintenanceFailed, "sweep", "plants", "error", err)
		errs = append(errs, fmt.Errorf("plant sweep: %w", err))
	} else if sweep.UpdatedCount > 0 {
		log.Info(LogMsgPlantsSweptToReady, "updated", sweep.UpdatedCount)
	}

	return errors.Join(errs...)
}

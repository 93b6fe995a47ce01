package scheduler

import (
	"context"
	"log/slog"
	"time"

	"pillmate/internal/domain/lifecycle"
	"pillmate/internal/usecase"
)

// ExpiryJob expires commands that were never completed within the retention horizon.
type ExpiryJob struct {
	commandUC usecase.CommandUsecase
	horizon   time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewExpiryJob creates the command expiry job.
func NewExpiryJob(commandUC usecase.CommandUsecase, horizon time.Duration, logger *slog.Logger) *ExpiryJob {
	return &ExpiryJob{
		commandUC: commandUC,
		horizon:   horizon,
		logger:    logger,
		now:       time.Now,
	}
}

// Run implements cron.Job.
func (j *ExpiryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := j.RunOnce(ctx); err != nil {
		j.logger.Error("Command expiry run failed", slog.Any("error", err))
	}
}

// RunOnce expires every pending or delivered command created before now minus the horizon.
func (j *ExpiryJob) RunOnce(ctx context.Context) (int64, error) {
	olderThan := j.now().Add(-j.horizon)

	expired, err := j.commandUC.ExpireStale(ctx, olderThan)
	if err != nil {
		return 0, err
	}

	j.logger.Debug("Command expiry run finished",
		slog.Time("older_than", olderThan),
		slog.Int64("expired", expired),
	)

	return expired, nil
}

// Package scheduler runs periodic housekeeping jobs as a delivery.
package scheduler

import (
	"context"
	"log/slog"
	"strings"

	"pillmate/config"
	"pillmate/internal/delivery"
	"pillmate/internal/domain/lifecycle"
	"pillmate/internal/errors"
	"pillmate/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type cronScheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	spec   string
}

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	CommandUC usecase.CommandUsecase
}

// NewScheduler creates the delivery that runs the command expiry job on the sweeper schedule.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	if params.Cfg.Sweeper == nil {
		return nil, errors.New("sweeper configuration is required")
	}

	spec := params.Cfg.Sweeper.Schedule
	job := NewExpiryJob(params.CommandUC, params.Cfg.Sweeper.RetentionHorizon, params.Logger)

	c, err := newCron(spec, job)
	if err != nil {
		return nil, err
	}

	srv := &cronScheduler{
		cron:   c,
		logger: params.Logger,
		spec:   spec,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newCron builds a cron runner for spec. Six fields enable seconds precision.
func newCron(spec string, job cron.Job) (*cron.Cron, error) {
	var c *cron.Cron
	if len(strings.Fields(spec)) == 6 {
		c = cron.New(cron.WithSeconds())
	} else {
		c = cron.New()
	}

	if _, err := c.AddJob(spec, job); err != nil {
		return nil, errors.Wrapf(err, "invalid sweeper schedule %q", spec)
	}

	return c, nil
}

// Serve runs the scheduler until it is stopped.
func (s *cronScheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting command expiry scheduler", slog.String("schedule", s.spec))
	s.cron.Run()

	return nil
}

func (s *cronScheduler) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down command expiry scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.WithStack(shutdownCtx.Err())
	}
}

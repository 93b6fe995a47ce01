package main

import (
	"context"
	"log/slog"
	"os"

	"pillmate/config"
	"pillmate/internal/delivery"
	"pillmate/internal/delivery/scheduler"
	logs "pillmate/internal/infra/log"
	"pillmate/internal/infra/metrics"
	"pillmate/internal/infra/persistence/postgres"
	"pillmate/internal/usecase/impl"

	"go.uber.org/fx"
)

type startSchedulerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.NewRecorder,
			metrics.NewMetricsRecorder,
			postgres.NewDeviceRepository,
			postgres.NewCommandRepository,
			impl.NewCommandService,
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startScheduler,
		),
	).Run()
}

func startScheduler(ctx context.Context, params startSchedulerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start scheduler", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

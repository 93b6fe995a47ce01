package main

import (
	"context"
	"log/slog"
	"os"

	"pillmate/config"
	"pillmate/internal/delivery"
	"pillmate/internal/delivery/api"
	"pillmate/internal/delivery/api/middleware"
	"pillmate/internal/delivery/api/router/handler"
	"pillmate/internal/infra/auth"
	logs "pillmate/internal/infra/log"
	"pillmate/internal/infra/metrics"
	"pillmate/internal/infra/persistence/postgres"
	"pillmate/internal/infra/push"
	"pillmate/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.NewRecorder,
		metrics.NewMetricsRecorder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewCompartmentRepository,
			postgres.NewScheduleRepository,
			postgres.NewCommandRepository,
			postgres.NewDoseEventRepository,
			postgres.NewWeightReadingRepository,
			postgres.NewPushSubscriptionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewCredentialVerifier,
			auth.NewJWTService,
			push.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewCommandService,
			impl.NewDoseService,
			impl.NewNotificationService,
			impl.NewHealthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewDeviceAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewCommandHandler,
			handler.NewDoseHandler,
			handler.NewNotificationHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

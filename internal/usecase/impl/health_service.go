package impl

import (
	"context"
	"log/slog"
	"time"

	"pillmate/config"
	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/repository"
	"pillmate/internal/errors"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// healthService implements the HealthUsecase interface.
type healthService struct {
	subscriptionRepo repository.PushSubscriptionRepository
	deviceRepo       repository.DeviceRepository
	hasVAPIDPublic   bool
	hasVAPIDPrivate  bool
	logger           *slog.Logger
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	SubscriptionRepo repository.PushSubscriptionRepository
	DeviceRepo       repository.DeviceRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewHealthService is the constructor for healthService.
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	srv := &healthService{
		subscriptionRepo: params.SubscriptionRepo,
		deviceRepo:       params.DeviceRepo,
		logger:           params.Logger,
	}
	if params.Config != nil && params.Config.Push != nil {
		srv.hasVAPIDPublic = params.Config.Push.VAPIDPublicKey != ""
		srv.hasVAPIDPrivate = params.Config.Push.VAPIDPrivateKey != ""
	}

	return srv
}

// Check reports liveness, adding push readiness and per-user counts for authenticated callers.
func (srv *healthService) Check(ctx context.Context, userID *uuid.UUID) (*usecase.HealthReport, error) {
	report := &usecase.HealthReport{
		OK:        true,
		Timestamp: time.Now().UTC(),
	}
	if userID == nil {
		return report, nil
	}

	subscriptions, err := srv.subscriptionRepo.CountSubscriptionsByUser(ctx, *userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count push subscriptions")
	}

	devices, err := srv.deviceRepo.CountDevicesByUser(ctx, *userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count devices")
	}

	hasPublic, hasPrivate := srv.hasVAPIDPublic, srv.hasVAPIDPrivate
	report.HasVAPIDPublic = &hasPublic
	report.HasVAPIDPrivate = &hasPrivate
	report.PushSubscriptions = &subscriptions
	report.Devices = &devices

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Health checked",
		slog.Int64("push_subscriptions", subscriptions),
		slog.Int64("devices", devices),
	)

	return report, nil
}

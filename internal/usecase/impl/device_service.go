// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"pillmate/config"
	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/constants"
	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/domain/repository"
	"pillmate/internal/domain/schedule"
	"pillmate/internal/domain/service"
	"pillmate/internal/errors"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// maxConfigCompartments is the number of slots the firmware can address.
	maxConfigCompartments = 3
	// maxUpcomingDoses caps the upcoming list shown on the dashboard.
	maxUpcomingDoses = 6
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager        repository.TransactionManager
	deviceRepo       repository.DeviceRepository
	compartmentRepo  repository.CompartmentRepository
	scheduleRepo     repository.ScheduleRepository
	verifier         service.CredentialVerifier
	metrics          service.MetricsRecorder
	defaultTimezone  string
	compartmentCount int
	logger           *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	DeviceRepo      repository.DeviceRepository
	CompartmentRepo repository.CompartmentRepository
	ScheduleRepo    repository.ScheduleRepository
	Verifier        service.CredentialVerifier
	Metrics         service.MetricsRecorder
	Config          *config.Config
	Logger          *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	defaultTimezone := constants.DefaultTimezone
	compartmentCount := constants.DefaultCompartmentCount
	if params.Config != nil && params.Config.Device != nil {
		if params.Config.Device.DefaultTimezone != "" {
			defaultTimezone = params.Config.Device.DefaultTimezone
		}
		if params.Config.Device.DefaultCompartmentCount > 0 {
			compartmentCount = params.Config.Device.DefaultCompartmentCount
		}
	}

	return &deviceService{
		txManager:        params.TxManager,
		deviceRepo:       params.DeviceRepo,
		compartmentRepo:  params.CompartmentRepo,
		scheduleRepo:     params.ScheduleRepo,
		verifier:         params.Verifier,
		metrics:          params.Metrics,
		defaultTimezone:  defaultTimezone,
		compartmentCount: compartmentCount,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuthenticateDevice resolves the device by serial and verifies the presented secret.
// Unknown serials and wrong secrets are indistinguishable to the caller.
func (srv *deviceService) AuthenticateDevice(ctx context.Context, credentials usecase.DeviceCredentials) (*entity.Device, error) {
	serial := strings.TrimSpace(credentials.Serial)
	if serial == "" || credentials.Secret == "" {
		srv.metrics.DeviceAuthenticated(service.DeviceAuthRejected)

		return nil, domainerrors.ErrDeviceAuthFailed
	}

	device, err := srv.deviceRepo.FindDeviceBySerial(ctx, serial)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		srv.log(ctx).Warn("Device authentication failed: unknown serial", slog.String("serial", serial))
		srv.metrics.DeviceAuthenticated(service.DeviceAuthRejected)

		return nil, domainerrors.ErrDeviceAuthFailed
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by serial")
	}

	verification := srv.verifier.Verify(credentials.Secret, device.SecretHash)
	if !verification.Valid {
		srv.log(ctx).Warn("Device authentication failed: secret mismatch", slog.String("serial", serial))
		srv.metrics.DeviceAuthenticated(service.DeviceAuthRejected)

		return nil, domainerrors.ErrDeviceAuthFailed
	}

	if verification.NeedsUpgrade {
		srv.log(ctx).Info("Device authenticated with legacy secret hash; reprovision to upgrade",
			slog.String("serial", serial),
			slog.String("device_id", device.ID.String()),
		)
		srv.metrics.DeviceAuthenticated(service.DeviceAuthLegacy)
	} else {
		srv.metrics.DeviceAuthenticated(service.DeviceAuthOK)
	}

	return device, nil
}

// RegisterDevice creates the device and its default compartments in one transaction.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	timezone := strings.TrimSpace(input.Timezone)
	if timezone == "" {
		timezone = srv.defaultTimezone
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:  "timezone",
			Reason: fmt.Sprintf("unknown IANA timezone %q", timezone),
		})
	}

	secretHash, err := srv.verifier.Hash(input.Secret)
	if err != nil {
		return nil, domainerrors.ErrSecretHashFailed.WrapMessage(err.Error())
	}

	now := time.Now()
	device := &entity.Device{
		ID:         uuid.New(),
		UserID:     userID,
		Serial:     strings.TrimSpace(input.Serial),
		SecretHash: secretHash,
		Name:       strings.TrimSpace(input.Name),
		Timezone:   timezone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewDeviceRepository().CreateDevice(ctx, device); err != nil {
			return err
		}

		return repoFactory.NewCompartmentRepository().CreateCompartments(ctx, defaultCompartments(device.ID, srv.compartmentCount))
	})
	if errors.Is(err, repository.ErrDuplicateDevice) {
		return nil, domainerrors.ErrDuplicateDevice
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Info("Device registered",
		slog.String("device_id", device.ID.String()),
		slog.String("serial", device.Serial),
		slog.Int("compartments", srv.compartmentCount),
	)

	return device, nil
}

// defaultCompartments builds slots 1..count with evenly spaced actuator angles.
func defaultCompartments(deviceID uuid.UUID, count int) []*entity.Compartment {
	compartments := make([]*entity.Compartment, 0, count)
	for i := 1; i <= count; i++ {
		angle := (i - 1) * constants.CompartmentAngleStep
		compartments = append(compartments, &entity.Compartment{
			ID:            uuid.New(),
			DeviceID:      deviceID,
			Idx:           i,
			Title:         fmt.Sprintf("Compartment %d", i),
			Active:        true,
			ServoAngleDeg: &angle,
		})
	}

	return compartments
}

// ReprovisionDevice stores a fresh hash of the new secret under the current scheme.
func (srv *deviceService) ReprovisionDevice(ctx context.Context, userID, deviceID uuid.UUID, secret string) error {
	device, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, deviceID)
	if err != nil {
		return err
	}

	secretHash, err := srv.verifier.Hash(secret)
	if err != nil {
		return domainerrors.ErrSecretHashFailed.WrapMessage(err.Error())
	}

	err = srv.deviceRepo.UpdateSecretHash(ctx, device.ID, secretHash)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to update device secret")
	}

	srv.log(ctx).Info("Device reprovisioned", slog.String("device_id", device.ID.String()))

	return nil
}

// GetUserDevice returns a device owned by the user.
func (srv *deviceService) GetUserDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	return loadOwnedDevice(ctx, srv.deviceRepo, userID, deviceID)
}

// GetDeviceConfig returns the addressable compartments with their schedules and next occurrences.
func (srv *deviceService) GetDeviceConfig(ctx context.Context, device *entity.Device, now time.Time) (*usecase.DeviceConfig, error) {
	compartments, err := srv.compartmentRepo.FindCompartmentsByDevice(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find compartments")
	}

	addressable := make([]*entity.Compartment, 0, len(compartments))
	ids := make([]uuid.UUID, 0, len(compartments))
	for _, c := range compartments {
		if c.Idx > maxConfigCompartments {
			continue
		}
		addressable = append(addressable, c)
		ids = append(ids, c.ID)
	}

	cfg := &usecase.DeviceConfig{
		DeviceID:     device.ID,
		Timezone:     device.Timezone,
		Compartments: addressable,
		Schedules:    []*usecase.ScheduleConfig{},
	}
	if len(ids) == 0 {
		return cfg, nil
	}

	schedules, err := srv.scheduleRepo.FindSchedulesByCompartments(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find schedules")
	}

	nowLocal := now.In(device.Location())
	for _, s := range schedules {
		sc := &usecase.ScheduleConfig{Schedule: s}
		if next, ok := schedule.ComputeOccurrence(s, nowLocal); ok {
			sc.NextOccurrence = &next
		}
		cfg.Schedules = append(cfg.Schedules, sc)
	}

	return cfg, nil
}

// GetUpcomingDoses lists today's occurrences at or after now for active compartments.
func (srv *deviceService) GetUpcomingDoses(ctx context.Context, userID, deviceID uuid.UUID, now time.Time) ([]*usecase.UpcomingDose, error) {
	device, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, deviceID)
	if err != nil {
		return nil, err
	}

	compartments, err := srv.compartmentRepo.FindCompartmentsByDevice(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find compartments")
	}

	active := make(map[uuid.UUID]*entity.Compartment, len(compartments))
	ids := make([]uuid.UUID, 0, len(compartments))
	for _, c := range compartments {
		if !c.Active {
			continue
		}
		active[c.ID] = c
		ids = append(ids, c.ID)
	}

	upcoming := []*usecase.UpcomingDose{}
	if len(ids) == 0 {
		return upcoming, nil
	}

	schedules, err := srv.scheduleRepo.FindSchedulesByCompartments(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find schedules")
	}

	nowLocal := now.In(device.Location())
	for _, s := range schedules {
		compartment, ok := active[s.CompartmentID]
		if !ok || !schedule.IsScheduledToday(s, nowLocal) {
			continue
		}

		start, _ := schedule.Window(s, nowLocal)
		if start.Before(nowLocal) {
			continue
		}

		upcoming = append(upcoming, &usecase.UpcomingDose{
			CompartmentID: compartment.ID,
			ScheduleID:    s.ID,
			Idx:           compartment.Idx,
			Title:         compartment.Title,
			ScheduledAt:   start,
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].ScheduledAt.Equal(upcoming[j].ScheduledAt) {
			return upcoming[i].Idx < upcoming[j].Idx
		}

		return upcoming[i].ScheduledAt.Before(upcoming[j].ScheduledAt)
	})
	if len(upcoming) > maxUpcomingDoses {
		upcoming = upcoming[:maxUpcomingDoses]
	}

	return upcoming, nil
}

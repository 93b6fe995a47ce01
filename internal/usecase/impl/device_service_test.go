package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pillmate/config"
	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/domain/repository"
	"pillmate/internal/domain/service"
	"pillmate/internal/errors"
	mockRepo "pillmate/internal/mocks/repository"
	mockSvc "pillmate/internal/mocks/service"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service         usecase.DeviceUsecase
	txManager       *mockRepo.MockTransactionManager
	deviceRepo      *mockRepo.MockDeviceRepository
	compartmentRepo *mockRepo.MockCompartmentRepository
	scheduleRepo    *mockRepo.MockScheduleRepository
	verifier        *mockSvc.MockCredentialVerifier
	metrics         *mockSvc.MockMetricsRecorder
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	fx := deviceServiceFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
		compartmentRepo: mockRepo.NewMockCompartmentRepository(t),
		scheduleRepo:    mockRepo.NewMockScheduleRepository(t),
		verifier:        mockSvc.NewMockCredentialVerifier(t),
		metrics:         mockSvc.NewMockMetricsRecorder(t),
	}

	fx.service = NewDeviceService(DeviceServiceParams{
		TxManager:       fx.txManager,
		DeviceRepo:      fx.deviceRepo,
		CompartmentRepo: fx.compartmentRepo,
		ScheduleRepo:    fx.scheduleRepo,
		Verifier:        fx.verifier,
		Metrics:         fx.metrics,
		Config: &config.Config{
			Device: &config.DeviceConfig{DefaultTimezone: "America/Mexico_City", DefaultCompartmentCount: 3},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fx
}

func testDevice(userID uuid.UUID) *entity.Device {
	return &entity.Device{
		ID:         uuid.New(),
		UserID:     userID,
		Serial:     "PM-0001",
		SecretHash: "$2a$10$hash",
		Name:       "Kitchen",
		Timezone:   "America/Mexico_City",
	}
}

func TestDeviceService_AuthenticateDevice(t *testing.T) {
	device := testDevice(uuid.New())

	tests := []struct {
		name         string
		credentials  usecase.DeviceCredentials
		setup        func(fx deviceServiceFixtures)
		wantErr      error
		wantDeviceID uuid.UUID
	}{
		{
			name:        "modern hash accepted",
			credentials: usecase.DeviceCredentials{Serial: "PM-0001", Secret: "s3cret"},
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceBySerial(mock.Anything, "PM-0001").Return(device, nil)
				fx.verifier.EXPECT().Verify("s3cret", device.SecretHash).Return(service.Verification{Valid: true})
				fx.metrics.EXPECT().DeviceAuthenticated(service.DeviceAuthOK).Return()
			},
			wantDeviceID: device.ID,
		},
		{
			name:        "legacy hash accepted and flagged",
			credentials: usecase.DeviceCredentials{Serial: " PM-0001 ", Secret: "s3cret"},
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceBySerial(mock.Anything, "PM-0001").Return(device, nil)
				fx.verifier.EXPECT().Verify("s3cret", device.SecretHash).Return(service.Verification{Valid: true, NeedsUpgrade: true})
				fx.metrics.EXPECT().DeviceAuthenticated(service.DeviceAuthLegacy).Return()
			},
			wantDeviceID: device.ID,
		},
		{
			name:        "wrong secret rejected",
			credentials: usecase.DeviceCredentials{Serial: "PM-0001", Secret: "nope"},
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceBySerial(mock.Anything, "PM-0001").Return(device, nil)
				fx.verifier.EXPECT().Verify("nope", device.SecretHash).Return(service.Verification{})
				fx.metrics.EXPECT().DeviceAuthenticated(service.DeviceAuthRejected).Return()
			},
			wantErr: domainerrors.ErrDeviceAuthFailed,
		},
		{
			name:        "unknown serial rejected",
			credentials: usecase.DeviceCredentials{Serial: "PM-9999", Secret: "s3cret"},
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceBySerial(mock.Anything, "PM-9999").Return(nil, repository.ErrDeviceNotFound)
				fx.metrics.EXPECT().DeviceAuthenticated(service.DeviceAuthRejected).Return()
			},
			wantErr: domainerrors.ErrDeviceAuthFailed,
		},
		{
			name:        "missing secret rejected without lookup",
			credentials: usecase.DeviceCredentials{Serial: "PM-0001"},
			setup: func(fx deviceServiceFixtures) {
				fx.metrics.EXPECT().DeviceAuthenticated(service.DeviceAuthRejected).Return()
			},
			wantErr: domainerrors.ErrDeviceAuthFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx)

			got, err := fx.service.AuthenticateDevice(context.Background(), tt.credentials)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDeviceID, got.ID)
		})
	}
}

func TestDeviceService_AuthenticateDevice_RepositoryError(t *testing.T) {
	fx := createTestDeviceService(t)
	dbErr := errors.New("connection reset")

	fx.deviceRepo.EXPECT().FindDeviceBySerial(mock.Anything, "PM-0001").Return(nil, dbErr)

	_, err := fx.service.AuthenticateDevice(context.Background(), usecase.DeviceCredentials{Serial: "PM-0001", Secret: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrDeviceAuthFailed)
}

func TestDeviceService_RegisterDevice_CreatesDefaultCompartments(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	txCompartmentRepo := mockRepo.NewMockCompartmentRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	fx.verifier.EXPECT().Hash("s3cret").Return("$2a$10$newhash", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
	factory.EXPECT().NewCompartmentRepository().Return(txCompartmentRepo)
	txDeviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)

	var created []*entity.Compartment
	txCompartmentRepo.EXPECT().
		CreateCompartments(ctx, mock.AnythingOfType("[]*entity.Compartment")).
		Run(func(_ context.Context, compartments []*entity.Compartment) {
			created = compartments
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		Serial: "PM-0001",
		Secret: "s3cret",
		Name:   "Kitchen",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "$2a$10$newhash", device.SecretHash)
	assert.Equal(t, "America/Mexico_City", device.Timezone)

	require.Len(t, created, 3)
	for i, c := range created {
		assert.Equal(t, device.ID, c.DeviceID)
		assert.Equal(t, i+1, c.Idx)
		assert.True(t, c.Active)
		require.NotNil(t, c.ServoAngleDeg)
		assert.Equal(t, i*90, *c.ServoAngleDeg)
	}
	assert.Equal(t, "Compartment 1", created[0].Title)
}

func TestDeviceService_RegisterDevice_DuplicateSerial(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.verifier.EXPECT().Hash("s3cret").Return("$2a$10$newhash", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.RegisterDeviceInput{Serial: "PM-0001", Secret: "s3cret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateDevice)
}

func TestDeviceService_RegisterDevice_InvalidTimezone(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.RegisterDeviceInput{
		Serial:   "PM-0001",
		Secret:   "s3cret",
		Timezone: "Mars/Olympus_Mons",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "timezone", validationErr.Violations()[0].Field)
}

func TestDeviceService_ReprovisionDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	device := testDevice(userID)

	t.Run("owner replaces secret", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
		fx.verifier.EXPECT().Hash("fresh").Return("$2a$10$fresh", nil)
		fx.deviceRepo.EXPECT().UpdateSecretHash(ctx, device.ID, "$2a$10$fresh").Return(nil)

		require.NoError(t, fx.service.ReprovisionDevice(ctx, userID, device.ID, "fresh"))
	})

	t.Run("foreign device reported as not found", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

		err := fx.service.ReprovisionDevice(ctx, uuid.New(), device.ID, "fresh")

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}

func TestDeviceService_GetDeviceConfig(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	device := testDevice(uuid.New())
	loc := device.Location()

	first := &entity.Compartment{ID: uuid.New(), DeviceID: device.ID, Idx: 1, Active: true}
	second := &entity.Compartment{ID: uuid.New(), DeviceID: device.ID, Idx: 2, Active: true}
	extra := &entity.Compartment{ID: uuid.New(), DeviceID: device.ID, Idx: 4, Active: true}
	morning := &entity.Schedule{
		ID:            uuid.New(),
		CompartmentID: first.ID,
		TimeOfDay:     entity.TimeOfDay{Hour: 8},
		DaysOfWeek:    entity.AllDays,
		WindowMinutes: 10,
	}

	fx.compartmentRepo.EXPECT().FindCompartmentsByDevice(ctx, device.ID).Return([]*entity.Compartment{first, second, extra}, nil)
	fx.scheduleRepo.EXPECT().FindSchedulesByCompartments(ctx, []uuid.UUID{first.ID, second.ID}).Return([]*entity.Schedule{morning}, nil)

	// Monday 07:00 local.
	now := time.Date(2024, time.January, 1, 7, 0, 0, 0, loc)
	cfg, err := fx.service.GetDeviceConfig(ctx, device, now)

	require.NoError(t, err)
	assert.Equal(t, device.ID, cfg.DeviceID)
	assert.Len(t, cfg.Compartments, 2)
	require.Len(t, cfg.Schedules, 1)
	require.NotNil(t, cfg.Schedules[0].NextOccurrence)
	assert.True(t, cfg.Schedules[0].NextOccurrence.Equal(time.Date(2024, time.January, 1, 8, 0, 0, 0, loc)))
}

func TestDeviceService_GetUpcomingDoses(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	device := testDevice(userID)
	loc := device.Location()

	active := &entity.Compartment{ID: uuid.New(), DeviceID: device.ID, Idx: 1, Title: "Aspirin", Active: true}
	inactive := &entity.Compartment{ID: uuid.New(), DeviceID: device.ID, Idx: 2, Title: "Old", Active: false}

	schedules := []*entity.Schedule{
		{ID: uuid.New(), CompartmentID: active.ID, TimeOfDay: entity.TimeOfDay{Hour: 20}, DaysOfWeek: entity.AllDays, WindowMinutes: 10},
		{ID: uuid.New(), CompartmentID: active.ID, TimeOfDay: entity.TimeOfDay{Hour: 12, Minute: 30}, DaysOfWeek: entity.AllDays, WindowMinutes: 10},
		// Already past.
		{ID: uuid.New(), CompartmentID: active.ID, TimeOfDay: entity.TimeOfDay{Hour: 7}, DaysOfWeek: entity.AllDays, WindowMinutes: 10},
		// Tuesday only; today is Monday.
		{ID: uuid.New(), CompartmentID: active.ID, TimeOfDay: entity.TimeOfDay{Hour: 15}, DaysOfWeek: 1 << 1, WindowMinutes: 10},
	}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.compartmentRepo.EXPECT().FindCompartmentsByDevice(ctx, device.ID).Return([]*entity.Compartment{active, inactive}, nil)
	fx.scheduleRepo.EXPECT().FindSchedulesByCompartments(ctx, []uuid.UUID{active.ID}).Return(schedules, nil)

	now := time.Date(2024, time.January, 1, 9, 0, 0, 0, loc)
	upcoming, err := fx.service.GetUpcomingDoses(ctx, userID, device.ID, now)

	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, 12, upcoming[0].ScheduledAt.Hour())
	assert.Equal(t, 20, upcoming[1].ScheduledAt.Hour())
	assert.Equal(t, "Aspirin", upcoming[0].Title)
}

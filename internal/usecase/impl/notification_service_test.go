package impl

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
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

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	subscriptionRepo *mockRepo.MockPushSubscriptionRepository
	compartmentRepo  *mockRepo.MockCompartmentRepository
	sender           *mockSvc.MockPushSender
	metrics          *mockSvc.MockMetricsRecorder
}

func testPushConfig() *config.Config {
	return &config.Config{
		Push: &config.PushConfig{
			SendTimeout:        time.Second,
			MaxConcurrentSends: 4,
			Icon:               "/icon-192.png",
			Badge:              "/badge-72.png",
		},
	}
}

func createTestNotificationService(t *testing.T, sender service.PushSender) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		subscriptionRepo: mockRepo.NewMockPushSubscriptionRepository(t),
		compartmentRepo:  mockRepo.NewMockCompartmentRepository(t),
		metrics:          mockSvc.NewMockMetricsRecorder(t),
	}
	if sender == nil {
		fx.sender = mockSvc.NewMockPushSender(t)
		sender = fx.sender
	}

	fx.service = NewNotificationService(NotificationServiceParams{
		SubscriptionRepo: fx.subscriptionRepo,
		CompartmentRepo:  fx.compartmentRepo,
		Sender:           sender,
		Metrics:          fx.metrics,
		Config:           testPushConfig(),
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fx
}

func testSubscriptions(userID uuid.UUID, n int) []*entity.PushSubscription {
	subs := make([]*entity.PushSubscription, 0, n)
	for i := 0; i < n; i++ {
		subs = append(subs, &entity.PushSubscription{
			ID:       uuid.New(),
			UserID:   userID,
			Endpoint: "https://push.example.com/" + uuid.NewString(),
			P256dh:   "p256dh",
			Auth:     "auth",
			Platform: entity.PushPlatformWeb,
		})
	}

	return subs
}

func TestNotificationService_NotifyUser_PrunesOnlyGoneEndpoints(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()
	userID := uuid.New()
	subs := testSubscriptions(userID, 3)
	gone := subs[1]

	fx.subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).Return(subs, nil)
	fx.sender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*entity.PushSubscription"), mock.AnythingOfType("*service.PushMessage")).
		RunAndReturn(func(_ context.Context, sub *entity.PushSubscription, _ *service.PushMessage) error {
			if sub.ID == gone.ID {
				return errors.Join(service.ErrEndpointGone, errors.New("410 Gone"))
			}

			return nil
		}).
		Times(3)
	fx.subscriptionRepo.EXPECT().DeleteSubscription(ctx, gone.ID).Return(nil).Once()
	fx.metrics.EXPECT().PushDelivered(service.PushResultSent).Return().Times(2)
	fx.metrics.EXPECT().PushDelivered(service.PushResultGone).Return().Once()

	result, err := fx.service.NotifyUser(ctx, userID, "title", "body", map[string]any{"route": "/dashboard"})

	require.NoError(t, err)
	assert.Equal(t, &usecase.DispatchResult{Sent: 2, Total: 3}, result)
}

func TestNotificationService_NotifyUser_TransientFailureKeepsSubscription(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()
	userID := uuid.New()
	subs := testSubscriptions(userID, 2)

	fx.subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).Return(subs, nil)
	fx.sender.EXPECT().Send(mock.Anything, subs[0], mock.Anything).Return(errors.New("500 Internal Server Error"))
	fx.sender.EXPECT().Send(mock.Anything, subs[1], mock.Anything).Return(nil)
	fx.metrics.EXPECT().PushDelivered(service.PushResultFailed).Return().Once()
	fx.metrics.EXPECT().PushDelivered(service.PushResultSent).Return().Once()

	result, err := fx.service.NotifyUser(ctx, userID, "title", "body", nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 2, result.Total)
	fx.subscriptionRepo.AssertNotCalled(t, "DeleteSubscription", mock.Anything, mock.Anything)
}

func TestNotificationService_NotifyUser_NoSubscriptions(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).Return(nil, nil)

	result, err := fx.service.NotifyUser(ctx, userID, "title", "body", nil)

	require.NoError(t, err)
	assert.Equal(t, &usecase.DispatchResult{Sent: 0, Total: 0}, result)
}

func TestNotificationService_NotifyUser_RepositoryError(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).Return(nil, errors.New("db down"))

	_, err := fx.service.NotifyUser(ctx, userID, "title", "body", nil)

	require.Error(t, err)
}

// concurrencyProbe records the peak number of in-flight sends.
type concurrencyProbe struct {
	inFlight atomic.Int32
	peak     atomic.Int32
	calls    atomic.Int32
}

func (p *concurrencyProbe) Send(ctx context.Context, _ *entity.PushSubscription, _ *service.PushMessage) error {
	p.calls.Add(1)
	n := p.inFlight.Add(1)
	defer p.inFlight.Add(-1)
	for {
		peak := p.peak.Load()
		if n <= peak || p.peak.CompareAndSwap(peak, n) {
			break
		}
	}

	select {
	case <-time.After(20 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

func TestNotificationService_NotifyUser_BoundsConcurrency(t *testing.T) {
	probe := &concurrencyProbe{}
	fx := createTestNotificationService(t, probe)
	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).Return(testSubscriptions(userID, 12), nil)
	fx.metrics.EXPECT().PushDelivered(service.PushResultSent).Return().Times(12)

	result, err := fx.service.NotifyUser(ctx, userID, "title", "body", nil)

	require.NoError(t, err)
	assert.Equal(t, 12, result.Sent)
	assert.Equal(t, int32(12), probe.calls.Load())
	assert.LessOrEqual(t, probe.peak.Load(), int32(4))
}

func TestNotificationService_StartAlarm(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()
	device := testDevice(uuid.New())
	compartment := &entity.Compartment{ID: uuid.New(), DeviceID: device.ID, Idx: 2, Title: "Metformin", Active: true}
	scheduleID := uuid.New()
	subs := testSubscriptions(device.UserID, 1)

	// 14:30 UTC is 08:30 in Mexico City.
	scheduledAt := time.Date(2024, time.March, 4, 14, 30, 0, 0, time.UTC)

	fx.compartmentRepo.EXPECT().FindCompartmentByID(ctx, compartment.ID).Return(compartment, nil)
	fx.subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, device.UserID).Return(subs, nil)

	var sent *service.PushMessage
	fx.sender.EXPECT().
		Send(mock.Anything, subs[0], mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, _ *entity.PushSubscription, message *service.PushMessage) {
			sent = message
		}).
		Return(nil)
	fx.metrics.EXPECT().PushDelivered(service.PushResultSent).Return()

	result, err := fx.service.StartAlarm(ctx, device, &usecase.StartAlarmInput{
		CompartmentID: compartment.ID,
		ScheduleID:    &scheduleID,
		ScheduledAt:   scheduledAt,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	require.NotNil(t, sent)
	assert.Equal(t, defaultAlarmTitle, sent.Title)
	assert.Equal(t, "Metformin — 08:30 (compartment 2)", sent.Body)
	assert.Equal(t, "/icon-192.png", sent.Icon)
	assert.Equal(t, "/badge-72.png", sent.Badge)
	assert.Equal(t, map[string]any{
		"route":         "/dashboard",
		"deviceId":      device.ID.String(),
		"compartmentId": compartment.ID.String(),
		"scheduledAt":   "2024-03-04T14:30:00Z",
		"scheduleId":    scheduleID.String(),
		"action":        "open_app",
	}, sent.Data)
}

func TestNotificationService_StartAlarm_ForeignCompartment(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()
	device := testDevice(uuid.New())
	foreign := &entity.Compartment{ID: uuid.New(), DeviceID: uuid.New(), Idx: 1}

	fx.compartmentRepo.EXPECT().FindCompartmentByID(ctx, foreign.ID).Return(foreign, nil)

	_, err := fx.service.StartAlarm(ctx, device, &usecase.StartAlarmInput{CompartmentID: foreign.ID, ScheduledAt: time.Now()})

	assert.ErrorIs(t, err, domainerrors.ErrCompartmentNotFound)
}

func TestNotificationService_StartAlarm_UnknownCompartment(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()
	device := testDevice(uuid.New())
	id := uuid.New()

	fx.compartmentRepo.EXPECT().FindCompartmentByID(ctx, id).Return(nil, repository.ErrCompartmentNotFound)

	_, err := fx.service.StartAlarm(ctx, device, &usecase.StartAlarmInput{CompartmentID: id, ScheduledAt: time.Now()})

	assert.ErrorIs(t, err, domainerrors.ErrCompartmentNotFound)
}

func TestNotificationService_Subscribe(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("web subscription upserted", func(t *testing.T) {
		fx := createTestNotificationService(t, nil)
		fx.subscriptionRepo.EXPECT().
			UpsertSubscription(ctx, mock.MatchedBy(func(s *entity.PushSubscription) bool {
				return s.UserID == userID && s.Platform == entity.PushPlatformWeb && s.Endpoint == "https://push.example.com/a"
			})).
			Return(nil)

		sub, err := fx.service.Subscribe(ctx, userID, &usecase.SubscribeInput{
			Endpoint: " https://push.example.com/a ",
			P256dh:   "key",
			Auth:     "secret",
		})

		require.NoError(t, err)
		assert.NotNil(t, sub.LastSeen)
	})

	t.Run("web subscription without keys rejected", func(t *testing.T) {
		fx := createTestNotificationService(t, nil)

		_, err := fx.service.Subscribe(ctx, userID, &usecase.SubscribeInput{Endpoint: "https://push.example.com/a"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("fcm token needs no keys", func(t *testing.T) {
		fx := createTestNotificationService(t, nil)
		fx.subscriptionRepo.EXPECT().UpsertSubscription(ctx, mock.AnythingOfType("*entity.PushSubscription")).Return(nil)

		sub, err := fx.service.Subscribe(ctx, userID, &usecase.SubscribeInput{Endpoint: "fcm-token", Platform: entity.PushPlatformFCM})

		require.NoError(t, err)
		assert.Equal(t, entity.PushPlatformFCM, sub.Platform)
	})
}

func TestNotificationService_Unsubscribe(t *testing.T) {
	fx := createTestNotificationService(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().DeleteSubscriptionByEndpoint(ctx, userID, "https://push.example.com/a").Return(nil).Once()
	fx.subscriptionRepo.EXPECT().DeleteSubscriptionByEndpoint(ctx, userID, "https://push.example.com/b").Return(repository.ErrSubscriptionNotFound).Once()

	require.NoError(t, fx.service.Unsubscribe(ctx, userID, "https://push.example.com/a"))
	assert.ErrorIs(t, fx.service.Unsubscribe(ctx, userID, "https://push.example.com/b"), domainerrors.ErrSubscriptionNotFound)
}

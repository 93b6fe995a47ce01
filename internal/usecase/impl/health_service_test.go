package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pillmate/config"
	mockRepo "pillmate/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_Check(t *testing.T) {
	subscriptionRepo := mockRepo.NewMockPushSubscriptionRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	srv := NewHealthService(HealthServiceParams{
		SubscriptionRepo: subscriptionRepo,
		DeviceRepo:       deviceRepo,
		Config:           &config.Config{Push: &config.PushConfig{VAPIDPublicKey: "pub"}},
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ctx := context.Background()

	t.Run("anonymous caller gets liveness only", func(t *testing.T) {
		report, err := srv.Check(ctx, nil)

		require.NoError(t, err)
		assert.True(t, report.OK)
		assert.Nil(t, report.Devices)
		assert.Nil(t, report.HasVAPIDPublic)
	})

	t.Run("authenticated caller gets counts", func(t *testing.T) {
		userID := uuid.New()
		subscriptionRepo.EXPECT().CountSubscriptionsByUser(ctx, userID).Return(int64(2), nil)
		deviceRepo.EXPECT().CountDevicesByUser(ctx, userID).Return(int64(1), nil)

		report, err := srv.Check(ctx, &userID)

		require.NoError(t, err)
		require.NotNil(t, report.PushSubscriptions)
		assert.Equal(t, int64(2), *report.PushSubscriptions)
		assert.Equal(t, int64(1), *report.Devices)
		assert.True(t, *report.HasVAPIDPublic)
		assert.False(t, *report.HasVAPIDPrivate)
	})
}

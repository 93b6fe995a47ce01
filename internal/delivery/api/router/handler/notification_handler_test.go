package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/entity"
	mockUsecase "pillmate/internal/mocks/usecase"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestNotificationHandler(t *testing.T) (*NotificationHandler, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	return NewNotificationHandler(NotificationHandlerParams{
		NotificationUC: notificationUC,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), notificationUC
}

func TestNotificationHandler_StartAlarm(t *testing.T) {
	h, notificationUC := newTestNotificationHandler(t)
	device := &entity.Device{ID: uuid.New()}
	compartmentID := uuid.New()
	scheduledAt := time.Date(2024, time.January, 1, 14, 30, 0, 0, time.UTC)

	notificationUC.EXPECT().
		StartAlarm(mock.Anything, device, mock.MatchedBy(func(in *usecase.StartAlarmInput) bool {
			return in.CompartmentID == compartmentID && in.ScheduledAt.Equal(scheduledAt) && in.ScheduleID == nil
		})).
		Return(&usecase.DispatchResult{Sent: 2, Total: 3}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/alarm-start", fmt.Sprintf(
		`{"serial":"PM-1","secret":"s","compartmentId":"%s","scheduledAt":"2024-01-01T14:30:00Z"}`, compartmentID,
	))
	deliverycontext.SetDevice(c, device)

	require.NoError(t, h.StartAlarm(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"notificationsSent":2}`, rec.Body.String())
}

func TestNotificationHandler_Subscribe(t *testing.T) {
	userID := uuid.New()

	t.Run("web subscription with keys", func(t *testing.T) {
		h, notificationUC := newTestNotificationHandler(t)
		notificationUC.EXPECT().
			Subscribe(mock.Anything, userID, mock.MatchedBy(func(in *usecase.SubscribeInput) bool {
				return in.Endpoint == "https://push.example/abc" && in.P256dh == "pk" && in.Auth == "ak" && in.Platform == ""
			})).
			Return(&entity.PushSubscription{ID: uuid.New(), UserID: userID, Endpoint: "https://push.example/abc"}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/push/subscriptions",
			`{"endpoint":"https://push.example/abc","keys":{"p256dh":"pk","auth":"ak"}}`)
		deliverycontext.SetUserID(c, userID)

		require.NoError(t, h.Subscribe(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown platform", func(t *testing.T) {
		h, _ := newTestNotificationHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/push/subscriptions",
			`{"endpoint":"https://push.example/abc","platform":"pager"}`)
		deliverycontext.SetUserID(c, userID)

		require.NoError(t, h.Subscribe(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNotificationHandler_Unsubscribe(t *testing.T) {
	h, notificationUC := newTestNotificationHandler(t)
	userID := uuid.New()
	notificationUC.EXPECT().Unsubscribe(mock.Anything, userID, "https://push.example/abc").Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/api/v1/push/subscriptions", `{"endpoint":"https://push.example/abc"}`)
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, h.Unsubscribe(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_SelfTest(t *testing.T) {
	h, notificationUC := newTestNotificationHandler(t)
	userID := uuid.New()
	notificationUC.EXPECT().SendSelfTest(mock.Anything, userID).Return(&usecase.DispatchResult{Sent: 1, Total: 1}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/push/self-test", "")
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, h.SelfTest(c))

	assert.JSONEq(t, `{"sent":1,"total":1}`, string(decodeEnvelope(t, rec).Data))
}

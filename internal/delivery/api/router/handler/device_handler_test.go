package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	mockUsecase "pillmate/internal/mocks/usecase"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceHandlerFixtures struct {
	handler  *DeviceHandler
	deviceUC *mockUsecase.MockDeviceUsecase
	doseUC   *mockUsecase.MockDoseUsecase
	now      time.Time
}

func newTestDeviceHandler(t *testing.T) deviceHandlerFixtures {
	fx := deviceHandlerFixtures{
		deviceUC: mockUsecase.NewMockDeviceUsecase(t),
		doseUC:   mockUsecase.NewMockDoseUsecase(t),
		now:      time.Date(2024, time.January, 1, 14, 0, 0, 0, time.UTC),
	}
	fx.handler = NewDeviceHandler(DeviceHandlerParams{
		DeviceUC: fx.deviceUC,
		DoseUC:   fx.doseUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	fx.handler.now = func() time.Time { return fx.now }

	return fx
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the new device id", func(t *testing.T) {
		fx := newTestDeviceHandler(t)
		deviceID := uuid.New()
		fx.deviceUC.EXPECT().
			RegisterDevice(mock.Anything, userID, &usecase.RegisterDeviceInput{Serial: "PM-001", Secret: "s3cret", Name: "Kitchen"}).
			Return(&entity.Device{ID: deviceID}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/devices", `{"serial":"PM-001","secret":"s3cret","name":"Kitchen"}`)
		deliverycontext.SetUserID(c, userID)

		require.NoError(t, fx.handler.RegisterDevice(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, deviceID, decodeData[RegisterDeviceResponse](t, rec).DeviceID)
	})

	t.Run("duplicate serial", func(t *testing.T) {
		fx := newTestDeviceHandler(t)
		fx.deviceUC.EXPECT().RegisterDevice(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrDuplicateDevice)

		c, rec := newTestContext(http.MethodPost, "/api/v1/devices", `{"serial":"PM-001","secret":"s3cret","name":"Kitchen"}`)
		deliverycontext.SetUserID(c, userID)

		require.NoError(t, fx.handler.RegisterDevice(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing serial", func(t *testing.T) {
		fx := newTestDeviceHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/devices", `{"secret":"s3cret","name":"Kitchen"}`)
		deliverycontext.SetUserID(c, userID)

		require.NoError(t, fx.handler.RegisterDevice(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Error.Details), `"field":"serial"`)
	})
}

func TestDeviceHandler_ReprovisionDevice(t *testing.T) {
	fx := newTestDeviceHandler(t)
	userID := uuid.New()
	deviceID := uuid.New()
	fx.deviceUC.EXPECT().ReprovisionDevice(mock.Anything, userID, deviceID, "fresh-secret").Return(nil)

	c, rec := newTestContext(http.MethodPut, "/api/v1/devices/"+deviceID.String()+"/secret", `{"secret":"fresh-secret"}`)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, fx.handler.ReprovisionDevice(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_GetDeviceConfig(t *testing.T) {
	device := &entity.Device{ID: uuid.New(), UserID: uuid.New(), Timezone: "UTC"}
	cfg := &usecase.DeviceConfig{DeviceID: device.ID, Timezone: "UTC", Schedules: []*usecase.ScheduleConfig{}}

	t.Run("device credentials", func(t *testing.T) {
		fx := newTestDeviceHandler(t)
		fx.deviceUC.EXPECT().GetDeviceConfig(mock.Anything, device, fx.now).Return(cfg, nil)

		c, rec := newTestContext(http.MethodGet, "/api/v1/devices/config", "")
		deliverycontext.SetDevice(c, device)

		require.NoError(t, fx.handler.GetDeviceConfig(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"compartments", "deviceId", "schedules", "timezone"}, topLevelKeys(t, rec))
		assert.Equal(t, device.ID, decodeBody[usecase.DeviceConfig](t, rec).DeviceID)
	})

	t.Run("owner token with device id", func(t *testing.T) {
		fx := newTestDeviceHandler(t)
		fx.deviceUC.EXPECT().GetUserDevice(mock.Anything, device.UserID, device.ID).Return(device, nil)
		fx.deviceUC.EXPECT().GetDeviceConfig(mock.Anything, device, fx.now).Return(cfg, nil)

		c, rec := newTestContext(http.MethodGet, "/api/v1/devices/config?deviceId="+device.ID.String(), "")
		deliverycontext.SetUserID(c, device.UserID)

		require.NoError(t, fx.handler.GetDeviceConfig(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, device.ID, decodeData[usecase.DeviceConfig](t, rec).DeviceID)
	})

	t.Run("owner token without device id", func(t *testing.T) {
		fx := newTestDeviceHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/devices/config", "")
		deliverycontext.SetUserID(c, device.UserID)

		require.NoError(t, fx.handler.GetDeviceConfig(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("foreign device", func(t *testing.T) {
		fx := newTestDeviceHandler(t)
		stranger := uuid.New()
		fx.deviceUC.EXPECT().GetUserDevice(mock.Anything, stranger, device.ID).Return(nil, domainerrors.ErrDeviceNotFound)

		c, rec := newTestContext(http.MethodGet, "/api/v1/devices/config?deviceId="+device.ID.String(), "")
		deliverycontext.SetUserID(c, stranger)

		require.NoError(t, fx.handler.GetDeviceConfig(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeviceHandler_GetAdherence(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("reports adherence for the window", func(t *testing.T) {
		fx := newTestDeviceHandler(t)
		from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 7)
		fx.doseUC.EXPECT().GetAdherence(mock.Anything, userID, deviceID, from, to).Return(&usecase.AdherenceReport{
			DoseCounts: entity.DoseCounts{Taken: 3, Late: 1, Missed: 1, Skipped: 5},
			Adherence:  60,
			From:       from,
			To:         to,
		}, nil)

		c, rec := newTestContext(http.MethodGet, "/api/v1/devices/"+deviceID.String()+"/adherence?from=2024-01-01T00:00:00Z&to=2024-01-08T00:00:00Z", "")
		c.SetParamNames("id")
		c.SetParamValues(deviceID.String())
		deliverycontext.SetUserID(c, userID)

		require.NoError(t, fx.handler.GetAdherence(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		report := decodeData[usecase.AdherenceReport](t, rec)
		assert.Equal(t, 60, report.Adherence)
		assert.Equal(t, 5, report.Skipped)
	})

	t.Run("window bounds are required", func(t *testing.T) {
		fx := newTestDeviceHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/v1/devices/"+deviceID.String()+"/adherence?from=2024-01-01T00:00:00Z", "")
		c.SetParamNames("id")
		c.SetParamValues(deviceID.String())
		deliverycontext.SetUserID(c, userID)

		require.NoError(t, fx.handler.GetAdherence(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeviceHandler_GetUpcomingDoses(t *testing.T) {
	fx := newTestDeviceHandler(t)
	userID := uuid.New()
	deviceID := uuid.New()
	fx.deviceUC.EXPECT().GetUpcomingDoses(mock.Anything, userID, deviceID, fx.now).Return([]*usecase.UpcomingDose{
		{Idx: 1, Title: "Metformin", ScheduledAt: fx.now.Add(time.Hour)},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/devices/"+deviceID.String()+"/upcoming", "")
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, fx.handler.GetUpcomingDoses(c))

	doses := decodeData[[]usecase.UpcomingDose](t, rec)
	require.Len(t, doses, 1)
	assert.Equal(t, "Metformin", doses[0].Title)
}

package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/constants"
	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	mockUsecase "pillmate/internal/mocks/usecase"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceAuthMiddleware_Authenticate(t *testing.T) {
	device := &entity.Device{ID: uuid.New(), Serial: "PM-001"}
	credentials := usecase.DeviceCredentials{Serial: "PM-001", Secret: "s3cret"}

	t.Run("header credentials", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		deviceUC.EXPECT().AuthenticateDevice(mock.Anything, credentials).Return(device, nil)
		m := NewDeviceAuthMiddleware(DeviceAuthMiddlewareParams{DeviceUC: deviceUC})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/commands/poll", nil)
		req.Header.Set(constants.HeaderDeviceSerial, "PM-001")
		req.Header.Set(constants.HeaderDeviceSecret, "s3cret")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := m.Authenticate(func(c echo.Context) error {
			got, ok := deliverycontext.GetDevice(c)
			require.True(t, ok)
			assert.Equal(t, device.ID, got.ID)

			return nil
		})(c)

		require.NoError(t, err)
	})

	t.Run("body credentials leave the body readable", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		deviceUC.EXPECT().AuthenticateDevice(mock.Anything, credentials).Return(device, nil)
		m := NewDeviceAuthMiddleware(DeviceAuthMiddlewareParams{DeviceUC: deviceUC})

		body := `{"serial":"PM-001","secret":"s3cret","commandId":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/commands/ack", strings.NewReader(body))
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := m.Authenticate(func(c echo.Context) error {
			raw, err := io.ReadAll(c.Request().Body)
			require.NoError(t, err)
			assert.Equal(t, body, string(raw))

			return nil
		})(c)

		require.NoError(t, err)
	})

	t.Run("rejected credentials stop the chain", func(t *testing.T) {
		deviceUC := mockUsecase.NewMockDeviceUsecase(t)
		deviceUC.EXPECT().
			AuthenticateDevice(mock.Anything, usecase.DeviceCredentials{Serial: "PM-001", Secret: "wrong"}).
			Return(nil, domainerrors.ErrDeviceAuthFailed)
		m := NewDeviceAuthMiddleware(DeviceAuthMiddlewareParams{DeviceUC: deviceUC})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/alarm-start", strings.NewReader(`{"serial":"PM-001","secret":"wrong"}`))
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := m.Authenticate(func(echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		})(c)

		assert.ErrorIs(t, err, domainerrors.ErrDeviceAuthFailed)
	})
}

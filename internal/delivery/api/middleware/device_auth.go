package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/constants"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceAuthMiddlewareParams holds dependencies for DeviceAuthMiddleware, injected by Fx.
type DeviceAuthMiddlewareParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
}

// DeviceAuthMiddleware authenticates firmware requests by serial and shared secret.
type DeviceAuthMiddleware struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceAuthMiddleware is the constructor for DeviceAuthMiddleware.
func NewDeviceAuthMiddleware(params DeviceAuthMiddlewareParams) *DeviceAuthMiddleware {
	return &DeviceAuthMiddleware{deviceUC: params.DeviceUC}
}

// bodyCredentials are the credential fields firmware embeds in JSON request bodies.
type bodyCredentials struct {
	Serial string `json:"serial"`
	Secret string `json:"secret"`
}

// Authenticate resolves the device from the X-Device-Serial/X-Device-Secret headers, falling
// back to the serial and secret fields of a JSON body. The body is restored for the handler.
func (m *DeviceAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credentials, err := extractCredentials(c)
		if err != nil {
			return err
		}

		device, err := m.deviceUC.AuthenticateDevice(c.Request().Context(), credentials)
		if err != nil {
			return err
		}
		deliverycontext.SetDevice(c, device)

		return next(c)
	}
}

func extractCredentials(c echo.Context) (usecase.DeviceCredentials, error) {
	req := c.Request()
	credentials := usecase.DeviceCredentials{
		Serial: req.Header.Get(constants.HeaderDeviceSerial),
		Secret: req.Header.Get(constants.HeaderDeviceSecret),
	}
	if credentials.Serial != "" && credentials.Secret != "" {
		return credentials, nil
	}

	if req.Body == nil || req.Method == http.MethodGet {
		return credentials, nil
	}

	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return credentials, domainerrors.ErrValidationFailed.WithDetails("failed to read request body")
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))

	var fromBody bodyCredentials
	if len(raw) > 0 && json.Unmarshal(raw, &fromBody) == nil {
		if credentials.Serial == "" {
			credentials.Serial = fromBody.Serial
		}
		if credentials.Secret == "" {
			credentials.Secret = fromBody.Secret
		}
	}

	return credentials, nil
}

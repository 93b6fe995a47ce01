// Package handler contains the echo handlers of the API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pillmate/internal/delivery/api/response"
	deliverycontext "pillmate/internal/delivery/context"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	DoseUC   usecase.DoseUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	doseUC   usecase.DoseUsecase
	logger   *slog.Logger
	now      func() time.Time
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		doseUC:   params.DoseUC,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	Serial   string `json:"serial" validate:"required,max=50"`
	Secret   string `json:"secret" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
	Timezone string `json:"timezone" validate:"omitempty,max=64"`
}

// RegisterDeviceResponse is returned after a device has been registered
type RegisterDeviceResponse struct {
	DeviceID uuid.UUID `json:"deviceId"`
}

// ReprovisionDeviceRequest represents the request body for replacing a device secret
type ReprovisionDeviceRequest struct {
	Secret string `json:"secret" validate:"required,max=100"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.RegisterDeviceInput{
		Serial:   req.Serial,
		Secret:   req.Secret,
		Name:     req.Name,
		Timezone: req.Timezone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RegisterDeviceResponse{DeviceID: device.ID})
}

// ReprovisionDevice handles replacing the shared secret of an owned device
func (h *DeviceHandler) ReprovisionDevice(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req ReprovisionDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid secret input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.ReprovisionDevice(c.Request().Context(), userID, deviceID, req.Secret); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device secret replaced successfully"})
}

// GetDeviceConfig returns the configuration either to the device itself or to its owner
func (h *DeviceHandler) GetDeviceConfig(c echo.Context) error {
	ctx := c.Request().Context()

	device, deviceAuth := deliverycontext.GetDevice(c)
	if !deviceAuth {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}

		deviceID, err := uuid.Parse(c.QueryParam("deviceId"))
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
		}

		device, err = h.deviceUC.GetUserDevice(ctx, userID, deviceID)
		if err != nil {
			return response.HandleAppError(c, err)
		}
	}

	cfg, err := h.deviceUC.GetDeviceConfig(ctx, device, h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if deviceAuth {
		return response.Bare(c, http.StatusOK, cfg)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// GetUpcomingDoses lists the remaining doses of today for an owned device
func (h *DeviceHandler) GetUpcomingDoses(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	doses, err := h.deviceUC.GetUpcomingDoses(c.Request().Context(), userID, deviceID, h.now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, doses)
}

// GetAdherence reports dose counts and adherence for an owned device over [from, to)
func (h *DeviceHandler) GetAdherence(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	from, err := parseTimestampParam(c, "from")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	to, err := parseTimestampParam(c, "to")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if from == nil || to == nil {
		return response.HandleAppError(c, domainerrors.NewValidationError(
			domainerrors.FieldViolation{Field: "from", Reason: "from and to are required"},
		))
	}

	report, err := h.doseUC.GetAdherence(c.Request().Context(), userID, deviceID, *from, *to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// parseTimestampParam reads an optional RFC 3339 query parameter.
func parseTimestampParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, domainerrors.NewValidationError(
			domainerrors.FieldViolation{Field: name, Reason: "must be an RFC 3339 timestamp"},
		)
	}

	return &ts, nil
}

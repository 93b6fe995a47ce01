package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pillmate/internal/delivery/api/response"
	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/entity"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves alarms and push subscription management
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// StartAlarmRequest represents the alarm a device raises for a due dose
type StartAlarmRequest struct {
	CompartmentID uuid.UUID  `json:"compartmentId" validate:"required"`
	ScheduleID    *uuid.UUID `json:"scheduleId"`
	ScheduledAt   time.Time  `json:"scheduledAt" validate:"required"`
	Title         string     `json:"title" validate:"max=200"`
}

// StartAlarmResponse reports how many endpoints accepted the alarm
type StartAlarmResponse struct {
	Success           bool `json:"success"`
	NotificationsSent int  `json:"notificationsSent"`
}

// SubscriptionKeys is the Web Push key material of an endpoint
type SubscriptionKeys struct {
	P256dh string `json:"p256dh" validate:"max=256"`
	Auth   string `json:"auth" validate:"max=256"`
}

// SubscribeRequest represents a push endpoint registration
type SubscribeRequest struct {
	Endpoint   string           `json:"endpoint" validate:"required,max=2048"`
	Keys       SubscriptionKeys `json:"keys"`
	Platform   string           `json:"platform" validate:"omitempty,oneof=web fcm"`
	DeviceInfo json.RawMessage  `json:"deviceInfo"`
}

// UnsubscribeRequest identifies the endpoint to remove
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required,max=2048"`
}

// StartAlarm notifies the owner of the authenticated device that a dose is due
func (h *NotificationHandler) StartAlarm(c echo.Context) error {
	device, ok := deliverycontext.GetDevice(c)
	if !ok {
		return response.Unauthorized(c, "DEVICE_AUTH_FAILED", "Device is not authenticated")
	}

	var req StartAlarmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alarm input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.notificationUC.StartAlarm(c.Request().Context(), device, &usecase.StartAlarmInput{
		CompartmentID: req.CompartmentID,
		ScheduleID:    req.ScheduleID,
		ScheduledAt:   req.ScheduledAt,
		Title:         req.Title,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bare(c, http.StatusOK, StartAlarmResponse{
		Success:           true,
		NotificationsSent: result.Sent,
	})
}

// Subscribe registers or refreshes a push endpoint of the caller
func (h *NotificationHandler) Subscribe(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	subscription, err := h.notificationUC.Subscribe(c.Request().Context(), userID, &usecase.SubscribeInput{
		Endpoint:   req.Endpoint,
		P256dh:     req.Keys.P256dh,
		Auth:       req.Keys.Auth,
		Platform:   entity.PushPlatform(req.Platform),
		DeviceInfo: req.DeviceInfo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}

// Unsubscribe deletes one push endpoint of the caller
func (h *NotificationHandler) Unsubscribe(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unsubscribe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.Unsubscribe(c.Request().Context(), userID, req.Endpoint); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed successfully"})
}

// SelfTest sends a test notification to every endpoint of the caller
func (h *NotificationHandler) SelfTest(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.notificationUC.SendSelfTest(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

package usecase

import (
	"context"
	"encoding/json"
	"time"

	"pillmate/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchResult counts how many of a user's endpoints accepted a notification.
type DispatchResult struct {
	Sent  int `json:"sent"`
	Total int `json:"total"`
}

// StartAlarmInput identifies the dose occurrence a device is alarming for
type StartAlarmInput struct {
	CompartmentID uuid.UUID
	ScheduleID    *uuid.UUID
	ScheduledAt   time.Time
	Title         string // Optional notification title override.
}

// SubscribeInput is a push endpoint registration
type SubscribeInput struct {
	Endpoint   string
	P256dh     string
	Auth       string
	Platform   entity.PushPlatform
	DeviceInfo json.RawMessage
}

// NotificationUsecase defines push fan-out and subscription management
type NotificationUsecase interface {
	// NotifyUser delivers one notification to every endpoint of the user, pruning gone endpoints.
	NotifyUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]any) (*DispatchResult, error)

	// StartAlarm notifies the device owner that a dose is due.
	StartAlarm(ctx context.Context, device *entity.Device, input *StartAlarmInput) (*DispatchResult, error)

	// SendSelfTest sends a test notification to the user's own endpoints.
	SendSelfTest(ctx context.Context, userID uuid.UUID) (*DispatchResult, error)

	// Subscribe registers or refreshes a push endpoint for the user.
	Subscribe(ctx context.Context, userID uuid.UUID, input *SubscribeInput) (*entity.PushSubscription, error)

	// Unsubscribe removes the user's endpoint.
	Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error
}

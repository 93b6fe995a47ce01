package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// HealthReport is the service status, with per-user detail for authenticated callers.
type HealthReport struct {
	OK                bool      `json:"ok"`
	Timestamp         time.Time `json:"timestamp"`
	HasVAPIDPublic    *bool     `json:"hasVapidPublic,omitempty"`
	HasVAPIDPrivate   *bool     `json:"hasVapidPrivate,omitempty"`
	PushSubscriptions *int64    `json:"pushSubscriptions,omitempty"`
	Devices           *int64    `json:"devices,omitempty"`
}

// HealthUsecase reports service health
type HealthUsecase interface {
	// Check returns the health report; userID is nil for anonymous callers.
	Check(ctx context.Context, userID *uuid.UUID) (*HealthReport, error)
}

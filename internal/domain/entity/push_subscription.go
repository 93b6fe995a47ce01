package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PushPlatform distinguishes browser Web Push endpoints from native app tokens.
type PushPlatform string

const (
	PushPlatformWeb PushPlatform = "web" // Endpoint URL + p256dh/auth key material.
	PushPlatformFCM PushPlatform = "fcm" // Endpoint holds a Firebase registration token.
)

// PushSubscription is a registered endpoint able to receive push notifications for a user.
type PushSubscription struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Endpoint   string          `json:"endpoint"`
	P256dh     string          `json:"-"`
	Auth       string          `json:"-"`
	Platform   PushPlatform    `json:"platform"`
	DeviceInfo json.RawMessage `json:"device_info,omitempty"`
	LastSeen   *time.Time      `json:"last_seen,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

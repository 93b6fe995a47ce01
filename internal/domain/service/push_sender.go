package service

import (
	"context"

	"pillmate/internal/domain/entity"
	"pillmate/internal/errors"
)

// ErrEndpointGone marks a delivery failure whose endpoint is permanently unreachable
// (HTTP 404/410 or an unregistered app token). Only this failure prunes a subscription.
var ErrEndpointGone = errors.New("push endpoint gone")

// PushMessage is the notification payload delivered to the client-side handler.
type PushMessage struct {
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Icon  string         `json:"icon"`
	Badge string         `json:"badge"`
	Data  map[string]any `json:"data"`
}

// PushSender delivers one message to one subscription endpoint.
type PushSender interface {
	// Send delivers the message. A gone endpoint yields an error matching ErrEndpointGone.
	Send(ctx context.Context, subscription *entity.PushSubscription, message *PushMessage) error
}

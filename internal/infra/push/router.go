package push

import (
	"context"

	"pillmate/internal/domain/entity"
	"pillmate/internal/domain/service"
	"pillmate/internal/errors"
)

// ErrPlatformUnsupported is returned when no sender is configured for a subscription platform.
var ErrPlatformUnsupported = errors.New("no push sender configured for platform")

// platformRouter picks the sender matching the subscription platform.
type platformRouter struct {
	senders map[entity.PushPlatform]service.PushSender
}

// NewRouter combines per-platform senders into one PushSender. Nil senders are skipped.
func NewRouter(senders map[entity.PushPlatform]service.PushSender) service.PushSender {
	configured := make(map[entity.PushPlatform]service.PushSender, len(senders))
	for platform, sender := range senders {
		if sender != nil {
			configured[platform] = sender
		}
	}

	return &platformRouter{senders: configured}
}

func (r *platformRouter) Send(ctx context.Context, subscription *entity.PushSubscription, message *service.PushMessage) error {
	platform := subscription.Platform
	if platform == "" {
		platform = entity.PushPlatformWeb
	}

	sender, ok := r.senders[platform]
	if !ok {
		return errors.Wrapf(ErrPlatformUnsupported, "platform %q", platform)
	}

	return sender.Send(ctx, subscription, message)
}

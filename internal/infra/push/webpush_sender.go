// Package push delivers notifications to Web Push endpoints and native app tokens.
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"pillmate/config"
	"pillmate/internal/domain/entity"
	"pillmate/internal/domain/service"
	"pillmate/internal/errors"

	"github.com/SherClockHolmes/webpush-go"
)

// maxErrorBody caps how much of a rejected response is kept for logging.
const maxErrorBody = 512

// DeliveryError is a per-endpoint failure reported by a push service.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("push service rejected delivery with status %d", e.StatusCode)
	}

	return fmt.Sprintf("push service rejected delivery with status %d: %s", e.StatusCode, e.Body)
}

// Is reports gone for 404 and 410 responses.
func (e *DeliveryError) Is(target error) bool {
	return target == service.ErrEndpointGone &&
		(e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone)
}

type webPushSender struct {
	options webpush.Options
}

// NewWebPushSender creates a Web Push sender signing requests with the VAPID key pair.
func NewWebPushSender(cfg *config.PushConfig, client *http.Client) (service.PushSender, error) {
	if cfg == nil || cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		return nil, errors.New("vapid key pair must be provided")
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &webPushSender{
		options: webpush.Options{
			HTTPClient:      client,
			Subscriber:      cfg.Subscriber,
			TTL:             cfg.TTL,
			Urgency:         webpush.Urgency(cfg.Urgency),
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
		},
	}, nil
}

// Send encrypts the message for the subscription and posts it to the endpoint.
func (s *webPushSender) Send(ctx context.Context, subscription *entity.PushSubscription, message *service.PushMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "marshal push payload")
	}

	options := s.options
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.P256dh,
			Auth:   subscription.Auth,
		},
	}, &options)
	if err != nil {
		return errors.Wrap(err, "send web push")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	return &DeliveryError{StatusCode: resp.StatusCode, Body: string(body)}
}

package push

import (
	"context"
	"fmt"

	"pillmate/internal/domain/entity"
	"pillmate/internal/domain/service"
	"pillmate/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the subset of the FCM client used here.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseSender struct {
	client messagingClient
}

// NewFirebaseSender creates an FCM sender from a service account credentials file.
func NewFirebaseSender(ctx context.Context, projectID, credentialsPath string) (service.PushSender, error) {
	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{client: client}, nil
}

// Send delivers the message to the registration token stored as the endpoint.
func (s *firebaseSender) Send(ctx context.Context, subscription *entity.PushSubscription, message *service.PushMessage) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: subscription.Endpoint,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: stringifyData(message.Data),
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	})
	if err != nil {
		if messaging.IsUnregistered(err) {
			return errors.Join(service.ErrEndpointGone, err)
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// stringifyData flattens the payload data because FCM only carries string values.
func stringifyData(data map[string]any) map[string]string {
	if len(data) == 0 {
		return nil
	}

	out := make(map[string]string, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			out[key] = v
		default:
			out[key] = fmt.Sprint(v)
		}
	}

	return out
}

package repository

import (
	"context"

	"pillmate/internal/domain/entity"
	"pillmate/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a push subscription is not found.
var ErrSubscriptionNotFound = errors.New("push subscription not found")

// PushSubscriptionRepository defines the interface for push endpoint persistence.
type PushSubscriptionRepository interface {
	// UpsertSubscription stores the endpoint for the user, refreshing keys when it already exists.
	UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error

	// FindSubscriptionsByUser retrieves every endpoint registered by a user.
	FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// CountSubscriptionsByUser returns the number of endpoints registered by a user.
	CountSubscriptionsByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteSubscription removes a subscription by its ID.
	DeleteSubscription(ctx context.Context, id uuid.UUID) error

	// DeleteSubscriptionByEndpoint removes the user's subscription for an endpoint.
	DeleteSubscriptionByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error
}

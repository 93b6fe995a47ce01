package postgres

import (
	"context"
	"encoding/json"

	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/domain/repository"
	"pillmate/internal/errors"
	"pillmate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushSubscriptionRepository implements the repository.PushSubscriptionRepository interface.
type pushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository is the constructor for pushSubscriptionRepository.
func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{db: db}
}

// UpsertSubscription inserts the endpoint or refreshes its keys when the user already has it.
func (repo *pushSubscriptionRepository) UpsertSubscription(ctx context.Context, subscription *entity.PushSubscription) error {
	subscriptionM := fromPushSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "platform", "device_info", "last_seen"}),
		}, clause.Returning{}).
		Create(subscriptionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt

	return nil
}

// FindSubscriptionsByUser retrieves every endpoint registered by a user.
func (repo *pushSubscriptionRepository) FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push subscriptions by user")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, m := range subscriptionModels {
		subscriptions = append(subscriptions, toPushSubscriptionDomain(m))
	}

	return subscriptions, nil
}

// CountSubscriptionsByUser returns the number of endpoints registered by a user.
func (repo *pushSubscriptionRepository) CountSubscriptionsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count push subscriptions")
	}

	return count, nil
}

// DeleteSubscription removes a subscription by its ID.
func (repo *pushSubscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushSubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteSubscriptionByEndpoint removes the user's subscription for an endpoint.
func (repo *pushSubscriptionRepository) DeleteSubscriptionByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&model.PushSubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push subscription by endpoint")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPushSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:         data.ID,
		UserID:     data.UserID,
		Endpoint:   data.Endpoint,
		P256dh:     data.P256dh,
		Auth:       data.Auth,
		Platform:   entity.PushPlatform(data.Platform),
		DeviceInfo: json.RawMessage(data.DeviceInfo),
		LastSeen:   data.LastSeen,
		CreatedAt:  data.CreatedAt,
	}
}

func fromPushSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	if data == nil {
		return nil
	}

	platform := string(data.Platform)
	if platform == "" {
		platform = string(entity.PushPlatformWeb)
	}

	return &model.PushSubscriptionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Endpoint:   data.Endpoint,
		P256dh:     data.P256dh,
		Auth:       data.Auth,
		Platform:   platform,
		DeviceInfo: datatypes.JSON(data.DeviceInfo),
		LastSeen:   data.LastSeen,
		CreatedAt:  data.CreatedAt,
	}
}

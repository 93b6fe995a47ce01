package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
type PushSubscriptionModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_push_subscriptions_user_endpoint"`
	Endpoint   string         `gorm:"type:text;not null;uniqueIndex:idx_push_subscriptions_user_endpoint"`
	P256dh     string         `gorm:"column:p256dh;type:text;not null;default:''"`
	Auth       string         `gorm:"type:text;not null;default:''"`
	Platform   string         `gorm:"type:varchar(16);not null;default:'web'"`
	DeviceInfo datatypes.JSON `gorm:"type:jsonb"`
	LastSeen   *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}

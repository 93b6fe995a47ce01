package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CommandModel is the GORM-specific struct for the 'commands' table.
type CommandModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_commands_device_status_created,priority:1"`
	Type      string         `gorm:"type:varchar(32);not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	Status    string         `gorm:"type:varchar(16);not null;default:'pending';index:idx_commands_device_status_created,priority:2"`
	CreatedAt time.Time      `gorm:"index:idx_commands_device_status_created,priority:3"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommandModel) TableName() string {
	return "commands"
}

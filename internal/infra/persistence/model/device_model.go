// Package model holds the GORM-specific table structs of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
type DeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Serial     string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	SecretHash string    `gorm:"type:varchar(255);not null"`
	Name       string    `gorm:"type:varchar(100);not null;default:''"`
	Timezone   string    `gorm:"type:varchar(64);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// CompartmentModel is the GORM-specific struct for the 'compartments' table.
type CompartmentModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_compartments_device_idx"`
	Idx                 int       `gorm:"not null;uniqueIndex:idx_compartments_device_idx"`
	Title               string    `gorm:"type:varchar(200);not null;default:''"`
	Active              bool      `gorm:"not null;default:true"`
	ExpectedPillWeightG *float64  `gorm:"type:numeric(8,3)"`
	ServoAngleDeg       *int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompartmentModel) TableName() string {
	return "compartments"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DoseEventModel is the GORM-specific struct for the append-only 'dose_events' table.
type DoseEventModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_dose_events_device_scheduled,priority:1"`
	CompartmentID *uuid.UUID `gorm:"type:uuid"`
	ScheduleID    *uuid.UUID `gorm:"type:uuid"`
	ScheduledAt   time.Time  `gorm:"not null;index:idx_dose_events_device_scheduled,priority:2"`
	ActualAt      *time.Time
	Status        string   `gorm:"type:varchar(16);not null"`
	DeltaWeightG  *float64 `gorm:"type:numeric(8,3)"`
	Source        string   `gorm:"type:varchar(16);not null;default:'auto'"`
	Notes         string   `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoseEventModel) TableName() string {
	return "dose_events"
}

// WeightReadingModel is the GORM-specific struct for the 'weight_readings' table.
type WeightReadingModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	MeasuredAt time.Time      `gorm:"not null"`
	WeightG    float64        `gorm:"type:numeric(10,3);not null"`
	Raw        datatypes.JSON `gorm:"type:jsonb"`
}

// TableName explicitly sets the table name for GORM.
func (WeightReadingModel) TableName() string {
	return "weight_readings"
}

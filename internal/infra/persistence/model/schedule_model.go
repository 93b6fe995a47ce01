package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ScheduleModel is the GORM-specific struct for the 'schedules' table.
type ScheduleModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CompartmentID uuid.UUID      `gorm:"type:uuid;not null;index"`
	TimeOfDay     datatypes.Time `gorm:"type:time;not null"`
	DaysOfWeek    int16          `gorm:"not null;check:days_of_week > 0 AND days_of_week < 128"`
	WindowMinutes int            `gorm:"not null;default:0"`
	EnableLED     bool           `gorm:"column:enable_led;not null;default:true"`
	EnableBuzzer  bool           `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleModel) TableName() string {
	return "schedules"
}

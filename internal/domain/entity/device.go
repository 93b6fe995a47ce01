// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a physical pill dispenser owned by a user.
type Device struct {
	ID         uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID     uuid.UUID `json:"user_id"`    // The ID of the user who owns this device.
	Serial     string    `json:"serial"`     // Human-assigned, unique serial printed on the unit.
	SecretHash string    `json:"-"`          // Scheme-tagged hash of the device's shared secret.
	Name       string    `json:"name"`       // Display name chosen by the owner.
	Timezone   string    `json:"timezone"`   // IANA timezone the schedules are expressed in.
	CreatedAt  time.Time `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt  time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// Location resolves the device timezone, falling back to UTC for unknown names.
func (d *Device) Location() *time.Location {
	if d == nil || d.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// Compartment is one physically addressable pill slot on a device.
type Compartment struct {
	ID                  uuid.UUID `json:"id"`
	DeviceID            uuid.UUID `json:"device_id"`
	Idx                 int       `json:"idx"`                             // 1-based slot index.
	Title               string    `json:"title"`                           // Display title (usually the medication name).
	Active              bool      `json:"active"`                          // Inactive slots are ignored by alarms.
	ExpectedPillWeightG *float64  `json:"expected_pill_weight_g,omitempty"` // Optional expected weight of one pill.
	ServoAngleDeg       *int      `json:"servo_angle_deg,omitempty"`       // Optional actuator angle for the slot.
}

package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WeightReading is a raw scale sample reported by a device.
type WeightReading struct {
	ID         uuid.UUID       `json:"id"`
	DeviceID   uuid.UUID       `json:"device_id"`
	MeasuredAt time.Time       `json:"measured_at"`
	WeightG    float64         `json:"weight_g"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DoseStatus is the recorded outcome of one scheduled dose.
type DoseStatus string

const (
	DoseStatusTaken   DoseStatus = "taken"
	DoseStatusLate    DoseStatus = "late"
	DoseStatusMissed  DoseStatus = "missed"
	DoseStatusSkipped DoseStatus = "skipped"
)

// DoseSource tells whether the outcome was detected by the device or entered by hand.
type DoseSource string

const (
	DoseSourceAuto   DoseSource = "auto"
	DoseSourceManual DoseSource = "manual"
)

// DoseEvent is an append-only record of a dose outcome.
type DoseEvent struct {
	ID            uuid.UUID  `json:"id"`
	DeviceID      uuid.UUID  `json:"device_id"`
	CompartmentID *uuid.UUID `json:"compartment_id"`
	ScheduleID    *uuid.UUID `json:"schedule_id"`
	ScheduledAt   time.Time  `json:"scheduled_at"`
	ActualAt      *time.Time `json:"actual_at"`
	Status        DoseStatus `json:"status"`
	DeltaWeightG  *float64   `json:"delta_weight_g"`
	Source        DoseSource `json:"source"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// DoseCounts aggregates dose outcomes per status over a time window.
type DoseCounts struct {
	Taken   int `json:"taken"`
	Late    int `json:"late"`
	Missed  int `json:"missed"`
	Skipped int `json:"skipped"`
}

// Add counts one event with the given status.
func (c *DoseCounts) Add(status DoseStatus, n int) {
	switch status {
	case DoseStatusTaken:
		c.Taken += n
	case DoseStatusLate:
		c.Late += n
	case DoseStatusMissed:
		c.Missed += n
	case DoseStatusSkipped:
		c.Skipped += n
	}
}

// Adherence returns round(100*taken/(taken+late+missed)); skipped doses are excluded
// from both sides. An empty window yields 0.
func (c DoseCounts) Adherence() int {
	due := c.Taken + c.Late + c.Missed
	if due == 0 {
		return 0
	}

	return int(math.Round(100 * float64(c.Taken) / float64(due)))
}

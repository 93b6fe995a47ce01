package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DayMask is a 7-bit weekday bitmask: bit 0 = Monday ... bit 6 = Sunday.
type DayMask uint8

// AllDays has every weekday bit set.
const AllDays DayMask = 0b1111111

// Valid reports whether the mask is nonzero and uses only the 7 weekday bits.
func (m DayMask) Valid() bool {
	return m != 0 && m&^AllDays == 0
}

// Has reports whether the given bit position (0..6) is set.
func (m DayMask) Has(bit uint) bool {
	return bit < 7 && (m>>bit)&1 == 1
}

// TimeOfDay is a wall-clock hour and minute, local to the device timezone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" (the Postgres time text form).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
	}

	t := TimeOfDay{Hour: hour, Minute: minute}
	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}

	return t, nil
}

// Valid reports whether the value lies within 00:00-23:59.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalText encodes the value as "HH:MM".
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes "HH:MM" or "HH:MM:SS".
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// Schedule is a recurring day/time rule attached to a compartment.
type Schedule struct {
	ID            uuid.UUID `json:"id"`
	CompartmentID uuid.UUID `json:"compartment_id"`
	TimeOfDay     TimeOfDay `json:"time_of_day"`
	DaysOfWeek    DayMask   `json:"days_of_week"`
	WindowMinutes int       `json:"window_minutes"` // Tolerance window after TimeOfDay.
	EnableLED     bool      `json:"enable_led"`
	EnableBuzzer  bool      `json:"enable_buzzer"`
}

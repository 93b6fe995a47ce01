// Package schedule decides whether a recurring dose schedule applies to a given
// local date and time. Every function is pure: the caller supplies "now" already
// converted to the device timezone.
package schedule

import (
	"time"

	"pillmate/internal/domain/entity"
)

// weekdayBit maps the platform weekday numbering (Sunday = 0) onto the mask bit
// order (Monday = bit 0 ... Sunday = bit 6).
var weekdayBit = [7]uint{
	time.Sunday:    6,
	time.Monday:    0,
	time.Tuesday:   1,
	time.Wednesday: 2,
	time.Thursday:  3,
	time.Friday:    4,
	time.Saturday:  5,
}

// WeekdayBit returns the mask bit position of a weekday.
func WeekdayBit(day time.Weekday) uint {
	return weekdayBit[day]
}

// IsScheduledToday reports whether the weekday bit of nowLocal's date is set.
func IsScheduledToday(s *entity.Schedule, nowLocal time.Time) bool {
	return s.DaysOfWeek.Has(WeekdayBit(nowLocal.Weekday()))
}

// Window returns the dosing window [start, end) of the schedule on the date of
// dayLocal. The end never extends past the following midnight.
func Window(s *entity.Schedule, dayLocal time.Time) (start, end time.Time) {
	y, m, d := dayLocal.Date()
	loc := dayLocal.Location()

	start = time.Date(y, m, d, s.TimeOfDay.Hour, s.TimeOfDay.Minute, 0, 0, loc)
	end = start.Add(time.Duration(s.WindowMinutes) * time.Minute)

	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	if end.After(midnight) {
		end = midnight
	}

	return start, end
}

// IsDue reports whether nowLocal falls inside today's window and today is scheduled.
func IsDue(s *entity.Schedule, nowLocal time.Time) bool {
	if !IsScheduledToday(s, nowLocal) {
		return false
	}

	start, end := Window(s, nowLocal)

	return !nowLocal.Before(start) && nowLocal.Before(end)
}

// ComputeOccurrence returns the start of the occurrence relevant at nowLocal: the
// current window when it is due, otherwise the next scheduled start. The boolean
// is false when the mask selects no weekday.
func ComputeOccurrence(s *entity.Schedule, nowLocal time.Time) (time.Time, bool) {
	if !s.DaysOfWeek.Valid() {
		return time.Time{}, false
	}

	if IsDue(s, nowLocal) {
		start, _ := Window(s, nowLocal)
		return start, true
	}

	y, m, d := nowLocal.Date()
	for offset := 0; offset <= 7; offset++ {
		day := time.Date(y, m, d+offset, 12, 0, 0, 0, nowLocal.Location())
		if !IsScheduledToday(s, day) {
			continue
		}

		start, _ := Window(s, day)
		if start.After(nowLocal) {
			return start, true
		}
	}

	return time.Time{}, false
}

// Validate checks the schedule invariants.
func Validate(s *entity.Schedule) error {
	if !s.DaysOfWeek.Valid() {
		return ErrInvalidDayMask
	}
	if !s.TimeOfDay.Valid() {
		return ErrInvalidTimeOfDay
	}
	if s.WindowMinutes < 0 {
		return ErrInvalidWindow
	}

	return nil
}

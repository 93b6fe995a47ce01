package schedule

import "pillmate/internal/errors"

var (
	ErrInvalidDayMask   = errors.New("days of week mask must select at least one weekday")
	ErrInvalidTimeOfDay = errors.New("time of day must be between 00:00 and 23:59")
	ErrInvalidWindow    = errors.New("window minutes must not be negative")
)

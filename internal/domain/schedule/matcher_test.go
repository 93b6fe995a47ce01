package schedule

import (
	"testing"
	"time"

	"pillmate/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestWeekdayBit_AllPlatformWeekdays(t *testing.T) {
	// 2024-01-01 is a Monday.
	expected := map[time.Weekday]uint{
		time.Monday:    0,
		time.Tuesday:   1,
		time.Wednesday: 2,
		time.Thursday:  3,
		time.Friday:    4,
		time.Saturday:  5,
		time.Sunday:    6,
	}

	seen := map[uint]bool{}
	for offset := 0; offset < 7; offset++ {
		day := time.Date(2024, 1, 1+offset, 9, 0, 0, 0, time.UTC)
		bit := WeekdayBit(day.Weekday())

		assert.Equal(t, expected[day.Weekday()], bit, "weekday %s", day.Weekday())
		assert.Equal(t, uint(offset), bit, "day offset %d from Monday", offset)
		seen[bit] = true

		for other := uint(0); other < 7; other++ {
			s := &entity.Schedule{DaysOfWeek: entity.DayMask(1 << other)}
			assert.Equal(t, other == bit, IsScheduledToday(s, day), "weekday %s mask bit %d", day.Weekday(), other)
		}
	}
	assert.Len(t, seen, 7)
}

func TestIsScheduledToday_IndependentOfTimeOfDay(t *testing.T) {
	monTue := &entity.Schedule{DaysOfWeek: 0b0000011}

	monday := time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC)
	wednesday := time.Date(2024, 1, 3, 23, 59, 0, 0, time.UTC)

	assert.True(t, IsScheduledToday(monTue, monday))
	assert.False(t, IsScheduledToday(monTue, wednesday))

	for minute := 0; minute < 24*60; minute += 7 {
		at := monday.Add(time.Duration(minute-1) * time.Minute)
		assert.True(t, IsScheduledToday(monTue, at), "monday at %s", at.Format("15:04"))
		at = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC).Add(time.Duration(minute) * time.Minute)
		assert.False(t, IsScheduledToday(monTue, at), "wednesday at %s", at.Format("15:04"))
	}
}

func TestIsDue_WindowBoundaries(t *testing.T) {
	loc := mustLocation(t, "America/Mexico_City")
	s := &entity.Schedule{
		TimeOfDay:     entity.TimeOfDay{Hour: 8, Minute: 0},
		DaysOfWeek:    entity.AllDays,
		WindowMinutes: 10,
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"at start", time.Date(2024, 3, 5, 8, 0, 0, 0, loc), true},
		{"last second", time.Date(2024, 3, 5, 8, 9, 59, 0, loc), true},
		{"end is exclusive", time.Date(2024, 3, 5, 8, 10, 0, 0, loc), false},
		{"before start", time.Date(2024, 3, 5, 7, 59, 59, 0, loc), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDue(s, tt.now))
		})
	}
}

func TestIsDue_DayNotScheduled(t *testing.T) {
	s := &entity.Schedule{
		TimeOfDay:     entity.TimeOfDay{Hour: 8},
		DaysOfWeek:    0b0000001, // Monday
		WindowMinutes: 30,
	}

	assert.True(t, IsDue(s, time.Date(2024, 1, 1, 8, 5, 0, 0, time.UTC)))
	assert.False(t, IsDue(s, time.Date(2024, 1, 2, 8, 5, 0, 0, time.UTC)))
}

func TestWindow_ClampedAtMidnight(t *testing.T) {
	s := &entity.Schedule{
		TimeOfDay:     entity.TimeOfDay{Hour: 23, Minute: 50},
		DaysOfWeek:    entity.AllDays,
		WindowMinutes: 30,
	}

	start, end := Window(s, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 1, 23, 50, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), end)

	assert.True(t, IsDue(s, time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)))
	assert.False(t, IsDue(s, time.Date(2024, 1, 2, 0, 5, 0, 0, time.UTC)))
}

func TestComputeOccurrence(t *testing.T) {
	s := &entity.Schedule{
		TimeOfDay:     entity.TimeOfDay{Hour: 8, Minute: 30},
		DaysOfWeek:    0b0010101, // Mon, Wed, Fri
		WindowMinutes: 15,
	}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"later today", time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)},
		{"inside window", time.Date(2024, 1, 1, 8, 40, 0, 0, time.UTC), time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)},
		{"window passed", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 3, 8, 30, 0, 0, time.UTC)},
		{"unscheduled day", time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC), time.Date(2024, 1, 3, 8, 30, 0, 0, time.UTC)},
		{"wraps to next week", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 8, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeOccurrence(s, tt.now)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestComputeOccurrence_SingleDayNextWeek(t *testing.T) {
	s := &entity.Schedule{
		TimeOfDay:  entity.TimeOfDay{Hour: 8},
		DaysOfWeek: 0b0000001,
	}

	got, ok := ComputeOccurrence(s, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC), got)
}

func TestComputeOccurrence_EmptyMask(t *testing.T) {
	_, ok := ComputeOccurrence(&entity.Schedule{}, time.Now())
	assert.False(t, ok)
}

func TestComputeOccurrence_UsesLocalTimezone(t *testing.T) {
	loc := mustLocation(t, "America/Mexico_City")
	s := &entity.Schedule{
		TimeOfDay:     entity.TimeOfDay{Hour: 20},
		DaysOfWeek:    0b0000001, // Monday
		WindowMinutes: 10,
	}

	// Tuesday 01:00 UTC is still Monday 19:00 in Mexico City.
	now := time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC).In(loc)
	got, ok := ComputeOccurrence(s, now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 20, 0, 0, 0, loc), got)
}

func TestValidate(t *testing.T) {
	valid := &entity.Schedule{TimeOfDay: entity.TimeOfDay{Hour: 23, Minute: 59}, DaysOfWeek: entity.AllDays, WindowMinutes: 10}
	require.NoError(t, Validate(valid))

	assert.ErrorIs(t, Validate(&entity.Schedule{DaysOfWeek: 0}), ErrInvalidDayMask)
	assert.ErrorIs(t, Validate(&entity.Schedule{DaysOfWeek: 0x80}), ErrInvalidDayMask)
	assert.ErrorIs(t, Validate(&entity.Schedule{DaysOfWeek: 1, TimeOfDay: entity.TimeOfDay{Hour: 24}}), ErrInvalidTimeOfDay)
	assert.ErrorIs(t, Validate(&entity.Schedule{DaysOfWeek: 1, WindowMinutes: -1}), ErrInvalidWindow)
}

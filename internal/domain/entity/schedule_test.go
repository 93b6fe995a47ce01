package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "08:00", want: TimeOfDay{Hour: 8}},
		{in: "23:59:00", want: TimeOfDay{Hour: 23, Minute: 59}},
		{in: " 7:05 ", want: TimeOfDay{Hour: 7, Minute: 5}},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_TextRoundTrip(t *testing.T) {
	in := TimeOfDay{Hour: 9, Minute: 5}

	text, err := in.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "09:05", string(text))

	var out TimeOfDay
	require.NoError(t, out.UnmarshalText(text))
	assert.Equal(t, in, out)
	assert.Equal(t, 545, out.Minutes())
}

func TestDayMask(t *testing.T) {
	assert.True(t, AllDays.Valid())
	assert.False(t, DayMask(0).Valid())
	assert.False(t, DayMask(0b10000000).Valid())

	weekdays := DayMask(0b0011111)
	assert.True(t, weekdays.Has(0))
	assert.True(t, weekdays.Has(4))
	assert.False(t, weekdays.Has(5))
	assert.False(t, weekdays.Has(7))
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoseCounts_Adherence(t *testing.T) {
	tests := []struct {
		name   string
		counts DoseCounts
		want   int
	}{
		{name: "skipped excluded", counts: DoseCounts{Taken: 3, Late: 1, Missed: 1, Skipped: 5}, want: 60},
		{name: "all taken", counts: DoseCounts{Taken: 4}, want: 100},
		{name: "only skipped", counts: DoseCounts{Skipped: 3}, want: 0},
		{name: "empty window", counts: DoseCounts{}, want: 0},
		{name: "rounds half up", counts: DoseCounts{Taken: 1, Missed: 1}, want: 50},
		{name: "rounds to nearest", counts: DoseCounts{Taken: 2, Late: 1}, want: 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.counts.Adherence())
		})
	}
}

func TestDoseCounts_Add(t *testing.T) {
	var counts DoseCounts
	counts.Add(DoseStatusTaken, 2)
	counts.Add(DoseStatusLate, 1)
	counts.Add(DoseStatusMissed, 3)
	counts.Add(DoseStatusSkipped, 4)
	counts.Add("unknown", 9)

	assert.Equal(t, DoseCounts{Taken: 2, Late: 1, Missed: 3, Skipped: 4}, counts)
}

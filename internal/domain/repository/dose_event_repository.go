package repository

import (
	"context"
	"time"

	"pillmate/internal/domain/entity"

	"github.com/google/uuid"
)

// DoseEventRepository is the append-only dose ledger store.
type DoseEventRepository interface {
	// CreateDoseEvent appends a dose event.
	CreateDoseEvent(ctx context.Context, event *entity.DoseEvent) error

	// CountDoseEvents aggregates events of the device with scheduled_at in [from, to).
	CountDoseEvents(ctx context.Context, deviceID uuid.UUID, from, to time.Time) (entity.DoseCounts, error)
}

// WeightReadingRepository stores raw scale samples.
type WeightReadingRepository interface {
	// CreateWeightReadings bulk inserts readings and returns how many were stored.
	CreateWeightReadings(ctx context.Context, readings []*entity.WeightReading) (int, error)
}

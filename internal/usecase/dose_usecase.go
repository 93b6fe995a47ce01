package usecase

import (
	"context"
	"encoding/json"
	"time"

	"pillmate/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordDoseInput is a dose outcome reported by a device
type RecordDoseInput struct {
	CompartmentID uuid.UUID
	ScheduleID    *uuid.UUID
	ScheduledAt   time.Time
	Status        entity.DoseStatus
	ActualAt      *time.Time
	DeltaWeightG  *float64
	Source        entity.DoseSource // Defaults to auto.
	Notes         string
}

// AdherenceReport summarises dose outcomes over [From, To).
type AdherenceReport struct {
	entity.DoseCounts
	Adherence int       `json:"adherence"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
}

// WeightReadingInput is one scale sample in a bulk upload
type WeightReadingInput struct {
	MeasuredAt time.Time
	WeightG    float64
	Raw        json.RawMessage
}

// DoseUsecase defines the dose ledger operations
type DoseUsecase interface {
	// RecordDose appends a dose event for a compartment of the device.
	RecordDose(ctx context.Context, device *entity.Device, input *RecordDoseInput) (*entity.DoseEvent, error)

	// GetAdherence computes adherence for the user's device over [from, to).
	GetAdherence(ctx context.Context, userID, deviceID uuid.UUID, from, to time.Time) (*AdherenceReport, error)

	// IngestWeights stores a batch of raw scale samples for the device.
	IngestWeights(ctx context.Context, device *entity.Device, readings []*WeightReadingInput) (int, error)
}

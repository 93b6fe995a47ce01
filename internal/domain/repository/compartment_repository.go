package repository

import (
	"context"

	"pillmate/internal/domain/entity"
	"pillmate/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCompartmentNotFound is returned when a compartment is not found.
	ErrCompartmentNotFound = errors.New("compartment not found")
	// ErrScheduleNotFound is returned when a schedule is not found.
	ErrScheduleNotFound = errors.New("schedule not found")
)

// CompartmentRepository defines the interface for compartment database operations.
type CompartmentRepository interface {
	// CreateCompartments persists a batch of compartments.
	CreateCompartments(ctx context.Context, compartments []*entity.Compartment) error

	// FindCompartmentByID retrieves a compartment by its unique ID.
	FindCompartmentByID(ctx context.Context, id uuid.UUID) (*entity.Compartment, error)

	// FindCompartmentsByDevice retrieves the compartments of a device ordered by index.
	FindCompartmentsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.Compartment, error)
}

// ScheduleRepository defines the interface for schedule database operations.
type ScheduleRepository interface {
	// FindScheduleByID retrieves a schedule by its unique ID.
	FindScheduleByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)

	// FindSchedulesByCompartments retrieves every schedule attached to the given compartments.
	FindSchedulesByCompartments(ctx context.Context, compartmentIDs []uuid.UUID) ([]*entity.Schedule, error)
}

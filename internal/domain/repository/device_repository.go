// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pillmate/internal/domain/entity"
	"pillmate/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device whose serial is taken.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDeviceBySerial retrieves a device by its serial.
	FindDeviceBySerial(ctx context.Context, serial string) (*entity.Device, error)

	// UpdateSecretHash replaces the stored secret hash of a device.
	UpdateSecretHash(ctx context.Context, id uuid.UUID, secretHash string) error

	// CountDevicesByUser returns the number of devices owned by a user.
	CountDevicesByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

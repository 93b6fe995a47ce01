// Package usecase defines the application's business operations.
package usecase

import (
	"context"
	"time"

	"pillmate/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceCredentials is the serial and shared secret a device presents.
type DeviceCredentials struct {
	Serial string
	Secret string
}

// RegisterDeviceInput represents the data needed to provision a device
type RegisterDeviceInput struct {
	Serial   string
	Secret   string
	Name     string
	Timezone string // Optional; the configured default applies when empty.
}

// ScheduleConfig is a schedule together with its next occurrence in the device timezone.
type ScheduleConfig struct {
	*entity.Schedule
	NextOccurrence *time.Time `json:"next_occurrence"`
}

// DeviceConfig is the configuration snapshot a device downloads.
type DeviceConfig struct {
	DeviceID     uuid.UUID             `json:"deviceId"`
	Timezone     string                `json:"timezone"`
	Compartments []*entity.Compartment `json:"compartments"`
	Schedules    []*ScheduleConfig     `json:"schedules"`
}

// UpcomingDose is one of today's remaining dose occurrences.
type UpcomingDose struct {
	CompartmentID uuid.UUID `json:"compartment_id"`
	ScheduleID    uuid.UUID `json:"schedule_id"`
	Idx           int       `json:"idx"`
	Title         string    `json:"title"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}

// DeviceUsecase defines the interface for device provisioning and authentication use cases
type DeviceUsecase interface {
	// AuthenticateDevice verifies device credentials and returns the device.
	AuthenticateDevice(ctx context.Context, credentials DeviceCredentials) (*entity.Device, error)

	// RegisterDevice provisions a device with its default compartments for the user.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.Device, error)

	// ReprovisionDevice replaces the device secret, re-hashing it under the current scheme.
	ReprovisionDevice(ctx context.Context, userID, deviceID uuid.UUID, secret string) error

	// GetUserDevice returns a device owned by the user.
	GetUserDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error)

	// GetDeviceConfig builds the configuration snapshot of a device as of now.
	GetDeviceConfig(ctx context.Context, device *entity.Device, now time.Time) (*DeviceConfig, error)

	// GetUpcomingDoses lists today's remaining occurrences for the user's device.
	GetUpcomingDoses(ctx context.Context, userID, deviceID uuid.UUID, now time.Time) ([]*UpcomingDose, error)
}

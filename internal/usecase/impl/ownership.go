package impl

import (
	"context"

	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/domain/repository"
	"pillmate/internal/errors"

	"github.com/google/uuid"
)

// loadOwnedDevice fetches a device and checks that userID owns it.
// Foreign devices are reported as not found so their existence is not revealed.
func loadOwnedDevice(ctx context.Context, repo repository.DeviceRepository, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := repo.FindDeviceByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}

	if device.UserID != userID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}

// loadDeviceCompartment fetches a compartment and checks that it belongs to the device.
func loadDeviceCompartment(ctx context.Context, repo repository.CompartmentRepository, deviceID, compartmentID uuid.UUID) (*entity.Compartment, error) {
	compartment, err := repo.FindCompartmentByID(ctx, compartmentID)
	if errors.Is(err, repository.ErrCompartmentNotFound) {
		return nil, domainerrors.ErrCompartmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find compartment")
	}

	if compartment.DeviceID != deviceID {
		return nil, domainerrors.ErrCompartmentNotFound
	}

	return compartment, nil
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/domain/repository"
	"pillmate/internal/errors"
	"pillmate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device for a user.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindDeviceBySerial retrieves a device by its serial.
func (repo *deviceRepository) FindDeviceBySerial(ctx context.Context, serial string) (*entity.Device, error) {
	return repo.findOne(ctx, "serial = ?", serial)
}

func (repo *deviceRepository) findOne(ctx context.Context, query string, arg any) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

// UpdateSecretHash replaces the stored secret hash of a device.
func (repo *deviceRepository) UpdateSecretHash(ctx context.Context, id uuid.UUID, secretHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("secret_hash", secretHash)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device secret")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// CountDevicesByUser returns the number of devices owned by a user.
func (repo *deviceRepository) CountDevicesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count devices")
	}

	return count, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:         data.ID,
		UserID:     data.UserID,
		Serial:     data.Serial,
		SecretHash: data.SecretHash,
		Name:       data.Name,
		Timezone:   data.Timezone,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Serial:     data.Serial,
		SecretHash: data.SecretHash,
		Name:       data.Name,
		Timezone:   data.Timezone,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

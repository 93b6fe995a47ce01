package postgres

import (
	"context"
	"time"

	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/domain/repository"
	"pillmate/internal/errors"
	"pillmate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// compartmentRepository implements the repository.CompartmentRepository interface.
type compartmentRepository struct {
	db *gorm.DB
}

// NewCompartmentRepository is the constructor for compartmentRepository.
func NewCompartmentRepository(db *gorm.DB) repository.CompartmentRepository {
	return &compartmentRepository{db: db}
}

// CreateCompartments persists a batch of compartments in one statement.
func (repo *compartmentRepository) CreateCompartments(ctx context.Context, compartments []*entity.Compartment) error {
	if len(compartments) == 0 {
		return nil
	}

	models := make([]*model.CompartmentModel, 0, len(compartments))
	for _, c := range compartments {
		models = append(models, fromCompartmentDomain(c))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create compartments")
	}

	for i, m := range models {
		compartments[i].ID = m.ID
	}

	return nil
}

// FindCompartmentByID retrieves a compartment by its unique ID.
func (repo *compartmentRepository) FindCompartmentByID(ctx context.Context, id uuid.UUID) (*entity.Compartment, error) {
	var compartmentM model.CompartmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&compartmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find compartment by ID")
	}

	return toCompartmentDomain(&compartmentM), nil
}

// FindCompartmentsByDevice retrieves the compartments of a device ordered by index.
func (repo *compartmentRepository) FindCompartmentsByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.Compartment, error) {
	var compartmentModels []*model.CompartmentModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("idx ASC").
		Find(&compartmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find compartments by device")
	}

	compartments := make([]*entity.Compartment, 0, len(compartmentModels))
	for _, m := range compartmentModels {
		compartments = append(compartments, toCompartmentDomain(m))
	}

	return compartments, nil
}

// scheduleRepository implements the repository.ScheduleRepository interface.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// FindScheduleByID retrieves a schedule by its unique ID.
func (repo *scheduleRepository) FindScheduleByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	var scheduleM model.ScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule by ID")
	}

	return toScheduleDomain(&scheduleM), nil
}

// FindSchedulesByCompartments retrieves every schedule attached to the given compartments.
func (repo *scheduleRepository) FindSchedulesByCompartments(ctx context.Context, compartmentIDs []uuid.UUID) ([]*entity.Schedule, error) {
	if len(compartmentIDs) == 0 {
		return []*entity.Schedule{}, nil
	}

	var scheduleModels []*model.ScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("compartment_id IN ?", compartmentIDs).
		Order("time_of_day ASC").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find schedules by compartments")
	}

	schedules := make([]*entity.Schedule, 0, len(scheduleModels))
	for _, m := range scheduleModels {
		schedules = append(schedules, toScheduleDomain(m))
	}

	return schedules, nil
}

// --- Mapper Functions ---

func toCompartmentDomain(data *model.CompartmentModel) *entity.Compartment {
	if data == nil {
		return nil
	}

	return &entity.Compartment{
		ID:                  data.ID,
		DeviceID:            data.DeviceID,
		Idx:                 data.Idx,
		Title:               data.Title,
		Active:              data.Active,
		ExpectedPillWeightG: data.ExpectedPillWeightG,
		ServoAngleDeg:       data.ServoAngleDeg,
	}
}

func fromCompartmentDomain(data *entity.Compartment) *model.CompartmentModel {
	if data == nil {
		return nil
	}

	return &model.CompartmentModel{
		ID:                  data.ID,
		DeviceID:            data.DeviceID,
		Idx:                 data.Idx,
		Title:               data.Title,
		Active:              data.Active,
		ExpectedPillWeightG: data.ExpectedPillWeightG,
		ServoAngleDeg:       data.ServoAngleDeg,
	}
}

func toScheduleDomain(data *model.ScheduleModel) *entity.Schedule {
	if data == nil {
		return nil
	}

	sinceMidnight := time.Duration(data.TimeOfDay)

	return &entity.Schedule{
		ID:            data.ID,
		CompartmentID: data.CompartmentID,
		TimeOfDay: entity.TimeOfDay{
			Hour:   int(sinceMidnight / time.Hour),
			Minute: int(sinceMidnight % time.Hour / time.Minute),
		},
		DaysOfWeek:    entity.DayMask(data.DaysOfWeek),
		WindowMinutes: data.WindowMinutes,
		EnableLED:     data.EnableLED,
		EnableBuzzer:  data.EnableBuzzer,
	}
}

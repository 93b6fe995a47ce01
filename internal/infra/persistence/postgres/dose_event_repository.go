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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const weightReadingBatchSize = 200

// doseEventRepository implements the repository.DoseEventRepository interface.
type doseEventRepository struct {
	db *gorm.DB
}

// NewDoseEventRepository is the constructor for doseEventRepository.
func NewDoseEventRepository(db *gorm.DB) repository.DoseEventRepository {
	return &doseEventRepository{db: db}
}

// CreateDoseEvent appends a dose event.
func (repo *doseEventRepository) CreateDoseEvent(ctx context.Context, event *entity.DoseEvent) error {
	eventM := fromDoseEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCompartmentNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("dose event violates table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dose event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

type doseStatusCount struct {
	Status string
	Count  int
}

// CountDoseEvents aggregates events of the device with scheduled_at in [from, to).
func (repo *doseEventRepository) CountDoseEvents(ctx context.Context, deviceID uuid.UUID, from, to time.Time) (entity.DoseCounts, error) {
	var rows []doseStatusCount

	if err := repo.db.WithContext(ctx).
		Model(&model.DoseEventModel{}).
		Select("status, COUNT(*) AS count").
		Where("device_id = ? AND scheduled_at >= ? AND scheduled_at < ?", deviceID, from, to).
		Group("status").
		Scan(&rows).Error; err != nil {
		return entity.DoseCounts{}, errors.Wrap(err, "failed to count dose events")
	}

	var counts entity.DoseCounts
	for _, row := range rows {
		counts.Add(entity.DoseStatus(row.Status), row.Count)
	}

	return counts, nil
}

// weightReadingRepository implements the repository.WeightReadingRepository interface.
type weightReadingRepository struct {
	db *gorm.DB
}

// NewWeightReadingRepository is the constructor for weightReadingRepository.
func NewWeightReadingRepository(db *gorm.DB) repository.WeightReadingRepository {
	return &weightReadingRepository{db: db}
}

// CreateWeightReadings bulk inserts readings in batches.
func (repo *weightReadingRepository) CreateWeightReadings(ctx context.Context, readings []*entity.WeightReading) (int, error) {
	if len(readings) == 0 {
		return 0, nil
	}

	models := make([]*model.WeightReadingModel, 0, len(readings))
	for _, r := range readings {
		models = append(models, &model.WeightReadingModel{
			ID:         r.ID,
			DeviceID:   r.DeviceID,
			MeasuredAt: r.MeasuredAt,
			WeightG:    r.WeightG,
			Raw:        datatypes.JSON(r.Raw),
		})
	}

	result := repo.db.WithContext(ctx).CreateInBatches(&models, weightReadingBatchSize)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return 0, repository.ErrDeviceNotFound
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert weight readings")
	}

	return int(result.RowsAffected), nil
}

// --- Mapper Functions ---

func fromDoseEventDomain(data *entity.DoseEvent) *model.DoseEventModel {
	if data == nil {
		return nil
	}

	return &model.DoseEventModel{
		ID:            data.ID,
		DeviceID:      data.DeviceID,
		CompartmentID: data.CompartmentID,
		ScheduleID:    data.ScheduleID,
		ScheduledAt:   data.ScheduledAt,
		ActualAt:      data.ActualAt,
		Status:        string(data.Status),
		DeltaWeightG:  data.DeltaWeightG,
		Source:        string(data.Source),
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
	}
}

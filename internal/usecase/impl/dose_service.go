package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/domain/repository"
	"pillmate/internal/errors"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// doseService implements the DoseUsecase interface.
type doseService struct {
	deviceRepo      repository.DeviceRepository
	compartmentRepo repository.CompartmentRepository
	scheduleRepo    repository.ScheduleRepository
	doseEventRepo   repository.DoseEventRepository
	weightRepo      repository.WeightReadingRepository
	logger          *slog.Logger
}

// DoseServiceParams holds dependencies for DoseService, injected by Fx.
type DoseServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	CompartmentRepo repository.CompartmentRepository
	ScheduleRepo    repository.ScheduleRepository
	DoseEventRepo   repository.DoseEventRepository
	WeightRepo      repository.WeightReadingRepository
	Logger          *slog.Logger
}

// NewDoseService is the constructor for doseService.
func NewDoseService(params DoseServiceParams) usecase.DoseUsecase {
	return &doseService{
		deviceRepo:      params.DeviceRepo,
		compartmentRepo: params.CompartmentRepo,
		scheduleRepo:    params.ScheduleRepo,
		doseEventRepo:   params.DoseEventRepo,
		weightRepo:      params.WeightRepo,
		logger:          params.Logger,
	}
}

func (srv *doseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordDose appends one dose outcome. Events are never updated afterwards.
func (srv *doseService) RecordDose(ctx context.Context, device *entity.Device, input *usecase.RecordDoseInput) (*entity.DoseEvent, error) {
	if err := validateDoseInput(input); err != nil {
		return nil, err
	}

	compartment, err := loadDeviceCompartment(ctx, srv.compartmentRepo, device.ID, input.CompartmentID)
	if err != nil {
		return nil, err
	}

	if input.ScheduleID != nil {
		sched, err := srv.scheduleRepo.FindScheduleByID(ctx, *input.ScheduleID)
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return nil, domainerrors.ErrScheduleNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find schedule")
		}
		if sched.CompartmentID != compartment.ID {
			return nil, domainerrors.ErrScheduleNotFound
		}
	}

	source := input.Source
	if source == "" {
		source = entity.DoseSourceAuto
	}

	compartmentID := compartment.ID
	event := &entity.DoseEvent{
		ID:            uuid.New(),
		DeviceID:      device.ID,
		CompartmentID: &compartmentID,
		ScheduleID:    input.ScheduleID,
		ScheduledAt:   input.ScheduledAt,
		ActualAt:      input.ActualAt,
		Status:        input.Status,
		DeltaWeightG:  input.DeltaWeightG,
		Source:        source,
		Notes:         input.Notes,
		CreatedAt:     time.Now(),
	}

	if err := srv.doseEventRepo.CreateDoseEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to record dose event")
	}

	srv.log(ctx).Info("Dose recorded",
		slog.String("device_id", device.ID.String()),
		slog.Int("compartment_idx", compartment.Idx),
		slog.String("status", string(event.Status)),
	)

	return event, nil
}

func validateDoseInput(input *usecase.RecordDoseInput) error {
	var violations []domainerrors.FieldViolation

	switch input.Status {
	case entity.DoseStatusTaken, entity.DoseStatusLate, entity.DoseStatusMissed, entity.DoseStatusSkipped:
	default:
		violations = append(violations, domainerrors.FieldViolation{Field: "status", Reason: "must be one of taken, late, missed, skipped"})
	}

	switch input.Source {
	case "", entity.DoseSourceAuto, entity.DoseSourceManual:
	default:
		violations = append(violations, domainerrors.FieldViolation{Field: "source", Reason: "must be auto or manual"})
	}

	if input.ScheduledAt.IsZero() {
		violations = append(violations, domainerrors.FieldViolation{Field: "scheduledAt", Reason: "is required"})
	}

	if len(violations) > 0 {
		return domainerrors.NewValidationError(violations...)
	}

	return nil
}

// GetAdherence aggregates the device's dose events over [from, to).
func (srv *doseService) GetAdherence(ctx context.Context, userID, deviceID uuid.UUID, from, to time.Time) (*usecase.AdherenceReport, error) {
	if !from.Before(to) {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:  "from",
			Reason: "must be before to",
		})
	}

	device, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, deviceID)
	if err != nil {
		return nil, err
	}

	counts, err := srv.doseEventRepo.CountDoseEvents(ctx, device.ID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count dose events")
	}

	return &usecase.AdherenceReport{
		DoseCounts: counts,
		Adherence:  counts.Adherence(),
		From:       from,
		To:         to,
	}, nil
}

// IngestWeights stores a batch of raw scale samples for the device.
func (srv *doseService) IngestWeights(ctx context.Context, device *entity.Device, readings []*usecase.WeightReadingInput) (int, error) {
	if len(readings) == 0 {
		return 0, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:  "readings",
			Reason: "must contain at least one reading",
		})
	}

	rows := make([]*entity.WeightReading, 0, len(readings))
	for i, r := range readings {
		if r.MeasuredAt.IsZero() {
			return 0, domainerrors.NewValidationError(domainerrors.FieldViolation{
				Field:  fmt.Sprintf("readings[%d].measuredAt", i),
				Reason: "is required",
			})
		}
		rows = append(rows, &entity.WeightReading{
			ID:         uuid.New(),
			DeviceID:   device.ID,
			MeasuredAt: r.MeasuredAt,
			WeightG:    r.WeightG,
			Raw:        r.Raw,
		})
	}

	inserted, err := srv.weightRepo.CreateWeightReadings(ctx, rows)
	if err != nil {
		return 0, errors.Wrap(err, "failed to store weight readings")
	}

	srv.log(ctx).Debug("Weight readings stored",
		slog.String("device_id", device.ID.String()),
		slog.Int("inserted", inserted),
	)

	return inserted, nil
}

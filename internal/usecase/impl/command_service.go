package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/domain/repository"
	"pillmate/internal/domain/service"
	"pillmate/internal/errors"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// commandService implements the CommandUsecase interface.
type commandService struct {
	deviceRepo  repository.DeviceRepository
	commandRepo repository.CommandRepository
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// CommandServiceParams holds dependencies for CommandService, injected by Fx.
type CommandServiceParams struct {
	fx.In

	DeviceRepo  repository.DeviceRepository
	CommandRepo repository.CommandRepository
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewCommandService is the constructor for commandService.
func NewCommandService(params CommandServiceParams) usecase.CommandUsecase {
	return &commandService{
		deviceRepo:  params.DeviceRepo,
		commandRepo: params.CommandRepo,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *commandService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCommand queues a pending command on a device owned by the user.
func (srv *commandService) CreateCommand(ctx context.Context, userID uuid.UUID, input *usecase.CreateCommandInput) (*entity.Command, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:  "type",
			Reason: "must be one of snooze, apply_config, reboot",
		})
	}

	payload, err := normalizePayload(input.Payload)
	if err != nil {
		return nil, err
	}

	device, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, input.DeviceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	command := &entity.Command{
		ID:        uuid.New(),
		DeviceID:  device.ID,
		Type:      input.Type,
		Payload:   payload,
		Status:    entity.CommandStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.commandRepo.CreateCommand(ctx, command); err != nil {
		return nil, errors.Wrap(err, "failed to create command")
	}

	srv.metrics.CommandsTransitioned(entity.CommandStatusPending, 1)
	srv.log(ctx).Info("Command queued",
		slog.String("command_id", command.ID.String()),
		slog.String("device_id", device.ID.String()),
		slog.String("type", string(command.Type)),
	)

	return command, nil
}

// normalizePayload defaults an absent payload to {} and rejects anything but a JSON object.
func normalizePayload(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.RawMessage("{}"), nil
	}

	var object map[string]json.RawMessage
	if trimmed[0] != '{' || json.Unmarshal(trimmed, &object) != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:  "payload",
			Reason: "must be a JSON object",
		})
	}

	return json.RawMessage(trimmed), nil
}

// PollCommands claims the device's pending commands in one conditional update.
func (srv *commandService) PollCommands(ctx context.Context, device *entity.Device, since *time.Time) ([]*entity.Command, error) {
	commands, err := srv.commandRepo.ClaimPending(ctx, device.ID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim pending commands")
	}

	if len(commands) > 0 {
		srv.metrics.CommandsTransitioned(entity.CommandStatusAck, len(commands))
		srv.log(ctx).Debug("Commands delivered",
			slog.String("device_id", device.ID.String()),
			slog.Int("count", len(commands)),
		)
	}

	return commands, nil
}

// AckCommand records the device's execution outcome for a delivered command.
func (srv *commandService) AckCommand(ctx context.Context, device *entity.Device, input *usecase.AckCommandInput) (*entity.Command, error) {
	if !input.Status.IsDeviceReport() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:  "status",
			Reason: "must be done or error",
		})
	}

	command, err := srv.commandRepo.CompleteCommand(ctx, device.ID, input.CommandID, input.Status, input.Detail)
	switch {
	case errors.Is(err, repository.ErrCommandNotFound):
		return nil, domainerrors.ErrCommandNotFound
	case errors.Is(err, repository.ErrCommandNotAckable):
		srv.log(ctx).Warn("Rejected ack for command not in ack state",
			slog.String("command_id", input.CommandID.String()),
			slog.String("device_id", device.ID.String()),
		)

		return nil, domainerrors.ErrCommandStateConflict.WithDetails(err.Error())
	case err != nil:
		return nil, errors.Wrap(err, "failed to complete command")
	}

	srv.metrics.CommandsTransitioned(input.Status, 1)
	srv.log(ctx).Info("Command completed",
		slog.String("command_id", command.ID.String()),
		slog.String("status", string(command.Status)),
	)

	return command, nil
}

// ExpireStale moves unfinished commands older than the horizon to expired.
func (srv *commandService) ExpireStale(ctx context.Context, olderThan time.Time) (int64, error) {
	expired, err := srv.commandRepo.ExpireStale(ctx, olderThan)
	if err != nil {
		return 0, errors.Wrap(err, "failed to expire stale commands")
	}

	if expired > 0 {
		srv.metrics.CommandsTransitioned(entity.CommandStatusExpired, int(expired))
	}
	srv.log(ctx).Info("Stale commands expired",
		slog.Int64("count", expired),
		slog.Time("older_than", olderThan),
	)

	return expired, nil
}

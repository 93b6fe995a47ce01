package usecase

import (
	"context"
	"encoding/json"
	"time"

	"pillmate/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommandInput represents a command a user queues for one of their devices
type CreateCommandInput struct {
	DeviceID uuid.UUID
	Type     entity.CommandType
	Payload  json.RawMessage // Optional JSON object.
}

// AckCommandInput is a device's execution report for a delivered command
type AckCommandInput struct {
	CommandID uuid.UUID
	Status    entity.CommandStatus // done or error
	Detail    *string
}

// CommandUsecase defines the per-device command queue operations
type CommandUsecase interface {
	// CreateCommand queues a pending command on a device owned by the user. Never deduplicates.
	CreateCommand(ctx context.Context, userID uuid.UUID, input *CreateCommandInput) (*entity.Command, error)

	// PollCommands hands out the device's pending commands oldest first, marking them ack.
	PollCommands(ctx context.Context, device *entity.Device, since *time.Time) ([]*entity.Command, error)

	// AckCommand closes a delivered command. Commands not in ack yield a state conflict.
	AckCommand(ctx context.Context, device *entity.Device, input *AckCommandInput) (*entity.Command, error)

	// ExpireStale moves pending and ack commands created before olderThan to expired.
	ExpireStale(ctx context.Context, olderThan time.Time) (int64, error)
}

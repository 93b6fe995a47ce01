package repository

import (
	"context"
	"time"

	"pillmate/internal/domain/entity"
	"pillmate/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCommandNotFound is returned when no command with the ID exists for the device.
	ErrCommandNotFound = errors.New("command not found")
	// ErrCommandNotAckable is returned when a command exists but is not in the ack state.
	ErrCommandNotAckable = errors.New("command not in ack state")
)

// CommandRepository defines the per-device command mailbox operations.
type CommandRepository interface {
	// CreateCommand persists a new pending command. No deduplication is performed.
	CreateCommand(ctx context.Context, command *entity.Command) error

	// FindCommandByID retrieves a command by its unique ID.
	FindCommandByID(ctx context.Context, id uuid.UUID) (*entity.Command, error)

	// ClaimPending atomically moves every pending command of the device (optionally only
	// those created after since) to ack in one statement and returns them oldest first.
	ClaimPending(ctx context.Context, deviceID uuid.UUID, since *time.Time) ([]*entity.Command, error)

	// CompleteCommand moves a command of the device from ack to status, merging detail
	// into the payload when given. Returns ErrCommandNotFound or ErrCommandNotAckable.
	CompleteCommand(ctx context.Context, deviceID, commandID uuid.UUID, status entity.CommandStatus, detail *string) (*entity.Command, error)

	// ExpireStale moves pending and ack commands created before olderThan to expired.
	ExpireStale(ctx context.Context, olderThan time.Time) (int64, error)
}

package postgres

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
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

// claimPendingSQL hands out every pending command of a device exactly once. Rows held
// by a concurrent claim are skipped, and the outer status predicate is re-checked
// after any lock wait, so two pollers never both receive the same command.
const claimPendingSQL = `
UPDATE commands AS c
SET status = ?, updated_at = ?
WHERE c.status = ?
  AND c.id IN (
    SELECT id FROM commands
    WHERE device_id = ? AND status = ?%s
    ORDER BY created_at ASC
    FOR UPDATE SKIP LOCKED
  )
RETURNING c.*`

// completeCommandSQL closes one delivered command, merging the device detail into the payload.
const completeCommandSQL = `
UPDATE commands
SET status = ?,
    updated_at = ?,
    payload = CASE
      WHEN CAST(? AS text) IS NULL THEN payload
      ELSE COALESCE(payload, '{}'::jsonb) || jsonb_build_object('detail', CAST(? AS text))
    END
WHERE id = ? AND device_id = ? AND status = ?
RETURNING *`

// commandRepository implements the repository.CommandRepository interface.
type commandRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCommandRepository is the constructor for commandRepository.
func NewCommandRepository(db *gorm.DB) repository.CommandRepository {
	return &commandRepository{db: db, now: time.Now}
}

// CreateCommand persists a new pending command.
func (repo *commandRepository) CreateCommand(ctx context.Context, command *entity.Command) error {
	commandM := fromCommandDomain(command)

	if err := repo.db.WithContext(ctx).Create(commandM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create command")
	}

	command.ID = commandM.ID
	command.CreatedAt = commandM.CreatedAt
	command.UpdatedAt = commandM.UpdatedAt

	return nil
}

// FindCommandByID retrieves a command by its unique ID.
func (repo *commandRepository) FindCommandByID(ctx context.Context, id uuid.UUID) (*entity.Command, error) {
	var commandM model.CommandModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommandNotFound
		}

		return nil, errors.Wrap(err, "failed to find command by ID")
	}

	return toCommandDomain(&commandM), nil
}

// ClaimPending transitions pending commands to ack in a single statement.
func (repo *commandRepository) ClaimPending(ctx context.Context, deviceID uuid.UUID, since *time.Time) ([]*entity.Command, error) {
	args := []any{
		string(entity.CommandStatusAck), repo.now(),
		string(entity.CommandStatusPending),
		deviceID, string(entity.CommandStatusPending),
	}

	sinceClause := ""
	if since != nil {
		sinceClause = " AND created_at > ?"
		args = append(args, *since)
	}

	var commandModels []*model.CommandModel
	query := strings.Replace(claimPendingSQL, "%s", sinceClause, 1)
	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&commandModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to claim pending commands")
	}

	// RETURNING does not preserve the subquery order.
	slices.SortStableFunc(commandModels, func(a, b *model.CommandModel) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	commands := make([]*entity.Command, 0, len(commandModels))
	for _, m := range commandModels {
		commands = append(commands, toCommandDomain(m))
	}

	return commands, nil
}

// CompleteCommand moves a command from ack to done or error.
func (repo *commandRepository) CompleteCommand(
	ctx context.Context,
	deviceID, commandID uuid.UUID,
	status entity.CommandStatus,
	detail *string,
) (*entity.Command, error) {
	var commandModels []*model.CommandModel

	result := repo.db.WithContext(ctx).Raw(completeCommandSQL,
		string(status), repo.now(),
		detail, detail,
		commandID, deviceID, string(entity.CommandStatusAck),
	).Scan(&commandModels)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete command")
	}

	if len(commandModels) == 1 {
		return toCommandDomain(commandModels[0]), nil
	}

	// Nothing matched: tell an unknown or foreign command apart from one that is not ackable.
	existing, err := repo.FindCommandByID(ctx, commandID)
	if err != nil {
		return nil, err
	}
	if existing.DeviceID != deviceID {
		return nil, repository.ErrCommandNotFound
	}

	return nil, errors.Wrapf(repository.ErrCommandNotAckable, "command is %s", existing.Status)
}

// ExpireStale moves unfinished commands created before olderThan to expired.
func (repo *commandRepository) ExpireStale(ctx context.Context, olderThan time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CommandModel{}).
		Where("status IN ? AND created_at < ?", []string{
			string(entity.CommandStatusPending),
			string(entity.CommandStatusAck),
		}, olderThan).
		Updates(map[string]any{
			"status":     string(entity.CommandStatusExpired),
			"updated_at": repo.now(),
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to expire commands")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toCommandDomain(data *model.CommandModel) *entity.Command {
	if data == nil {
		return nil
	}

	return &entity.Command{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Type:      entity.CommandType(data.Type),
		Payload:   json.RawMessage(data.Payload),
		Status:    entity.CommandStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCommandDomain(data *entity.Command) *model.CommandModel {
	if data == nil {
		return nil
	}

	payload := datatypes.JSON(data.Payload)
	if len(payload) == 0 {
		payload = datatypes.JSON("{}")
	}

	return &model.CommandModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Type:      string(data.Type),
		Payload:   payload,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

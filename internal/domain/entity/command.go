package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CommandType enumerates the kinds of work a device can be asked to do.
type CommandType string

const (
	CommandTypeSnooze      CommandType = "snooze"
	CommandTypeApplyConfig CommandType = "apply_config"
	CommandTypeReboot      CommandType = "reboot"
)

// Valid reports whether the type is one the firmware understands.
func (t CommandType) Valid() bool {
	switch t {
	case CommandTypeSnooze, CommandTypeApplyConfig, CommandTypeReboot:
		return true
	default:
		return false
	}
}

// CommandStatus is the lifecycle state of a queued command.
type CommandStatus string

const (
	CommandStatusPending CommandStatus = "pending" // Created, not yet handed to the device.
	CommandStatusAck     CommandStatus = "ack"     // Delivered by a poll, not yet executed.
	CommandStatusDone    CommandStatus = "done"    // Device reported success.
	CommandStatusError   CommandStatus = "error"   // Device reported failure.
	CommandStatusExpired CommandStatus = "expired" // Never completed within the retention horizon.
)

// commandTransitions lists the allowed next states for each state.
var commandTransitions = map[CommandStatus][]CommandStatus{
	CommandStatusPending: {CommandStatusAck, CommandStatusExpired},
	CommandStatusAck:     {CommandStatusDone, CommandStatusError, CommandStatusExpired},
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle step.
func (s CommandStatus) CanTransitionTo(next CommandStatus) bool {
	for _, allowed := range commandTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no transition out of s exists.
func (s CommandStatus) IsTerminal() bool {
	return len(commandTransitions[s]) == 0
}

// IsDeviceReport reports whether s is an outcome a device may report through an ack.
func (s CommandStatus) IsDeviceReport() bool {
	return s == CommandStatusDone || s == CommandStatusError
}

// Command is a unit of work queued for a device to execute asynchronously.
type Command struct {
	ID        uuid.UUID       `json:"id"`
	DeviceID  uuid.UUID       `json:"device_id"`
	Type      CommandType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Status    CommandStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

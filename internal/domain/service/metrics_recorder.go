package service

import "pillmate/internal/domain/entity"

// Push delivery results.
const (
	PushResultSent   = "sent"
	PushResultFailed = "failed"
	PushResultGone   = "gone"
)

// Device authentication results.
const (
	DeviceAuthOK       = "ok"
	DeviceAuthLegacy   = "legacy"
	DeviceAuthRejected = "rejected"
)

// MetricsRecorder receives operational counters from the use cases.
type MetricsRecorder interface {
	// PushDelivered counts one per-endpoint delivery outcome.
	PushDelivered(result string)

	// CommandsTransitioned counts commands entering a status.
	CommandsTransitioned(status entity.CommandStatus, count int)

	// DeviceAuthenticated counts one device authentication attempt.
	DeviceAuthenticated(result string)
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pillmate/internal/delivery/api/response"
	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/entity"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommandHandlerParams holds dependencies for CommandHandler, injected by Fx.
type CommandHandlerParams struct {
	fx.In

	CommandUC usecase.CommandUsecase
	Logger    *slog.Logger
}

// CommandHandler serves the device command queue
type CommandHandler struct {
	commandUC usecase.CommandUsecase
	logger    *slog.Logger
}

// NewCommandHandler is the constructor for CommandHandler
func NewCommandHandler(params CommandHandlerParams) *CommandHandler {
	return &CommandHandler{
		commandUC: params.CommandUC,
		logger:    params.Logger,
	}
}

// CreateCommandRequest represents the request body for queueing a command
type CreateCommandRequest struct {
	DeviceID uuid.UUID       `json:"deviceId" validate:"required"`
	Type     string          `json:"type" validate:"required,oneof=snooze apply_config reboot"`
	Payload  json.RawMessage `json:"payload"`
}

// CreateCommandResponse carries the id of the queued command
type CreateCommandResponse struct {
	CommandID uuid.UUID `json:"commandId"`
}

// PollCommandsResponse lists the commands handed out by one poll
type PollCommandsResponse struct {
	Commands []*entity.Command `json:"commands"`
}

// AckCommandRequest represents a device's execution report
type AckCommandRequest struct {
	CommandID uuid.UUID `json:"commandId" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=done error"`
	Detail    *string   `json:"detail" validate:"omitempty,max=500"`
}

// AckCommandResponse carries the command as stored after the acknowledgement
type AckCommandResponse struct {
	Success bool            `json:"success"`
	Command *entity.Command `json:"command"`
}

// CreateCommand queues a command for one of the caller's devices
func (h *CommandHandler) CreateCommand(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateCommandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid command input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	command, err := h.commandUC.CreateCommand(c.Request().Context(), userID, &usecase.CreateCommandInput{
		DeviceID: req.DeviceID,
		Type:     entity.CommandType(req.Type),
		Payload:  req.Payload,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateCommandResponse{CommandID: command.ID})
}

// PollCommands hands the device its pending commands and marks them delivered
func (h *CommandHandler) PollCommands(c echo.Context) error {
	device, ok := deliverycontext.GetDevice(c)
	if !ok {
		return response.Unauthorized(c, "DEVICE_AUTH_FAILED", "Device is not authenticated")
	}

	since, err := parseTimestampParam(c, "since")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	commands, err := h.commandUC.PollCommands(c.Request().Context(), device, since)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if commands == nil {
		commands = []*entity.Command{}
	}

	return response.Bare(c, http.StatusOK, PollCommandsResponse{Commands: commands})
}

// AckCommand records the outcome the device reports for a delivered command
func (h *CommandHandler) AckCommand(c echo.Context) error {
	device, ok := deliverycontext.GetDevice(c)
	if !ok {
		return response.Unauthorized(c, "DEVICE_AUTH_FAILED", "Device is not authenticated")
	}

	var req AckCommandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid acknowledgement input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	command, err := h.commandUC.AckCommand(c.Request().Context(), device, &usecase.AckCommandInput{
		CommandID: req.CommandID,
		Status:    entity.CommandStatus(req.Status),
		Detail:    req.Detail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bare(c, http.StatusOK, AckCommandResponse{Success: true, Command: command})
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pillmate/internal/delivery/api/response"
	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/entity"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DoseHandlerParams holds dependencies for DoseHandler, injected by Fx.
type DoseHandlerParams struct {
	fx.In

	DoseUC usecase.DoseUsecase
	Logger *slog.Logger
}

// DoseHandler accepts dose events and weight readings from devices
type DoseHandler struct {
	doseUC usecase.DoseUsecase
	logger *slog.Logger
}

// NewDoseHandler is the constructor for DoseHandler
func NewDoseHandler(params DoseHandlerParams) *DoseHandler {
	return &DoseHandler{
		doseUC: params.DoseUC,
		logger: params.Logger,
	}
}

// RecordDoseRequest represents a dose report from a device
type RecordDoseRequest struct {
	CompartmentID uuid.UUID  `json:"compartmentId" validate:"required"`
	ScheduleID    *uuid.UUID `json:"scheduleId"`
	ScheduledAt   time.Time  `json:"scheduledAt" validate:"required"`
	Status        string     `json:"status" validate:"required,oneof=taken late missed skipped"`
	ActualAt      *time.Time `json:"actualAt"`
	DeltaWeightG  *float64   `json:"deltaWeightG" validate:"omitempty,min=-1000,max=1000"`
	Source        string     `json:"source" validate:"omitempty,oneof=auto manual"`
	Notes         string     `json:"notes" validate:"max=500"`
}

// WeightReadingRequest is one scale sample
type WeightReadingRequest struct {
	MeasuredAt time.Time       `json:"measuredAt" validate:"required"`
	WeightG    float64         `json:"weightG" validate:"min=-100000,max=100000"`
	Raw        json.RawMessage `json:"raw"`
}

// IngestWeightsRequest represents a batch of scale samples
type IngestWeightsRequest struct {
	Readings []*WeightReadingRequest `json:"readings" validate:"required,min=1,max=1000,dive,required"`
}

// IngestWeightsResponse reports how many readings were stored
type IngestWeightsResponse struct {
	Inserted int `json:"inserted"`
}

// RecordDose appends a dose event reported by the authenticated device
func (h *DoseHandler) RecordDose(c echo.Context) error {
	device, ok := deliverycontext.GetDevice(c)
	if !ok {
		return response.Unauthorized(c, "DEVICE_AUTH_FAILED", "Device is not authenticated")
	}

	var req RecordDoseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dose event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.doseUC.RecordDose(c.Request().Context(), device, &usecase.RecordDoseInput{
		CompartmentID: req.CompartmentID,
		ScheduleID:    req.ScheduleID,
		ScheduledAt:   req.ScheduledAt,
		Status:        entity.DoseStatus(req.Status),
		ActualAt:      req.ActualAt,
		DeltaWeightG:  req.DeltaWeightG,
		Source:        entity.DoseSource(req.Source),
		Notes:         req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bare(c, http.StatusCreated, event)
}

// IngestWeights stores a batch of scale samples from the authenticated device
func (h *DoseHandler) IngestWeights(c echo.Context) error {
	device, ok := deliverycontext.GetDevice(c)
	if !ok {
		return response.Unauthorized(c, "DEVICE_AUTH_FAILED", "Device is not authenticated")
	}

	var req IngestWeightsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weight readings input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	readings := make([]*usecase.WeightReadingInput, 0, len(req.Readings))
	for _, reading := range req.Readings {
		readings = append(readings, &usecase.WeightReadingInput{
			MeasuredAt: reading.MeasuredAt,
			WeightG:    reading.WeightG,
			Raw:        reading.Raw,
		})
	}

	inserted, err := h.doseUC.IngestWeights(c.Request().Context(), device, readings)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Bare(c, http.StatusCreated, IngestWeightsResponse{Inserted: inserted})
}

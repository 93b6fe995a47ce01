package handler

import (
	"net/http"

	"pillmate/internal/delivery/api/response"
	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{healthUC: params.HealthUC}
}

// HealthCheck reports liveness; authenticated callers also get push and device counts.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	var userID *uuid.UUID
	if id, ok := deliverycontext.GetUserID(c); ok {
		userID = &id
	}

	report, err := h.healthUC.Check(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

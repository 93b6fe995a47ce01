package handler

import (
	"net/http"
	"testing"
	"time"

	deliverycontext "pillmate/internal/delivery/context"
	mockUsecase "pillmate/internal/mocks/usecase"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		healthUC := mockUsecase.NewMockHealthUsecase(t)
		healthUC.EXPECT().Check(mock.Anything, (*uuid.UUID)(nil)).Return(&usecase.HealthReport{OK: true, Timestamp: time.Now()}, nil)
		h := NewHealthHandler(HealthHandlerParams{HealthUC: healthUC})

		c, rec := newTestContext(http.MethodGet, "/health", "")

		require.NoError(t, h.HealthCheck(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pushSubscriptions")
	})

	t.Run("authenticated caller", func(t *testing.T) {
		userID := uuid.New()
		healthUC := mockUsecase.NewMockHealthUsecase(t)
		healthUC.EXPECT().
			Check(mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool { return id != nil && *id == userID })).
			Return(&usecase.HealthReport{OK: true}, nil)
		h := NewHealthHandler(HealthHandlerParams{HealthUC: healthUC})

		c, rec := newTestContext(http.MethodGet, "/health", "")
		deliverycontext.SetUserID(c, userID)

		require.NoError(t, h.HealthCheck(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

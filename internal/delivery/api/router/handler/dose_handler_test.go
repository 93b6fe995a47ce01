package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	deliverycontext "pillmate/internal/delivery/context"
	"pillmate/internal/domain/entity"
	domainerrors "pillmate/internal/domain/errors"
	mockUsecase "pillmate/internal/mocks/usecase"
	"pillmate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDoseHandler(t *testing.T) (*DoseHandler, *mockUsecase.MockDoseUsecase) {
	doseUC := mockUsecase.NewMockDoseUsecase(t)

	return NewDoseHandler(DoseHandlerParams{
		DoseUC: doseUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), doseUC
}

func TestDoseHandler_RecordDose(t *testing.T) {
	device := &entity.Device{ID: uuid.New()}
	compartmentID := uuid.New()

	t.Run("appends the event", func(t *testing.T) {
		h, doseUC := newTestDoseHandler(t)
		doseUC.EXPECT().
			RecordDose(mock.Anything, device, mock.MatchedBy(func(in *usecase.RecordDoseInput) bool {
				return in.CompartmentID == compartmentID &&
					in.Status == entity.DoseStatusLate &&
					in.DeltaWeightG != nil && *in.DeltaWeightG == -0.5 &&
					in.Source == ""
			})).
			Return(&entity.DoseEvent{ID: uuid.New(), DeviceID: device.ID, Status: entity.DoseStatusLate}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/events/dose", fmt.Sprintf(
			`{"serial":"PM-1","secret":"s","compartmentId":"%s","scheduledAt":"2024-01-01T08:00:00Z","status":"late","deltaWeightG":-0.5}`,
			compartmentID,
		))
		deliverycontext.SetDevice(c, device)

		require.NoError(t, h.RecordDose(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, topLevelKeys(t, rec), "data")
		event := decodeBody[entity.DoseEvent](t, rec)
		assert.Equal(t, device.ID, event.DeviceID)
		assert.Equal(t, entity.DoseStatusLate, event.Status)
	})

	t.Run("delta weight out of range", func(t *testing.T) {
		h, _ := newTestDoseHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/events/dose", fmt.Sprintf(
			`{"compartmentId":"%s","scheduledAt":"2024-01-01T08:00:00Z","status":"taken","deltaWeightG":5000}`,
			compartmentID,
		))
		deliverycontext.SetDevice(c, device)

		require.NoError(t, h.RecordDose(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("compartment of another device", func(t *testing.T) {
		h, doseUC := newTestDoseHandler(t)
		doseUC.EXPECT().RecordDose(mock.Anything, device, mock.Anything).Return(nil, domainerrors.ErrCompartmentNotFound)

		c, rec := newTestContext(http.MethodPost, "/api/v1/events/dose", fmt.Sprintf(
			`{"compartmentId":"%s","scheduledAt":"2024-01-01T08:00:00Z","status":"taken"}`,
			compartmentID,
		))
		deliverycontext.SetDevice(c, device)

		require.NoError(t, h.RecordDose(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDoseHandler_IngestWeights(t *testing.T) {
	device := &entity.Device{ID: uuid.New()}

	t.Run("stores the batch", func(t *testing.T) {
		h, doseUC := newTestDoseHandler(t)
		doseUC.EXPECT().
			IngestWeights(mock.Anything, device, mock.MatchedBy(func(readings []*usecase.WeightReadingInput) bool {
				return len(readings) == 2 && string(readings[1].Raw) == `{"adc":8123}`
			})).
			Return(2, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/weights/bulk",
			`{"readings":[{"measuredAt":"2024-01-01T08:00:00Z","weightG":12.5},{"measuredAt":"2024-01-01T08:00:01Z","weightG":12.1,"raw":{"adc":8123}}]}`)
		deliverycontext.SetDevice(c, device)

		require.NoError(t, h.IngestWeights(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"inserted":2}`, rec.Body.String())
	})

	t.Run("batch larger than 1000", func(t *testing.T) {
		h, _ := newTestDoseHandler(t)
		readings := make([]string, 1001)
		for i := range readings {
			readings[i] = `{"measuredAt":"2024-01-01T08:00:00Z","weightG":1}`
		}

		c, rec := newTestContext(http.MethodPost, "/api/v1/weights/bulk", `{"readings":[`+strings.Join(readings, ",")+`]}`)
		deliverycontext.SetDevice(c, device)

		require.NoError(t, h.IngestWeights(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("weight out of range", func(t *testing.T) {
		h, _ := newTestDoseHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/weights/bulk",
			`{"readings":[{"measuredAt":"2024-01-01T08:00:00Z","weightG":100001}]}`)
		deliverycontext.SetDevice(c, device)

		require.NoError(t, h.IngestWeights(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Error.Details), "readings[0].weightG")
	})
}

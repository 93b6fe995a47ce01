package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"pillmate/internal/domain/entity"
	"pillmate/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	r.PushDelivered(service.PushResultSent)
	r.PushDelivered(service.PushResultSent)
	r.PushDelivered(service.PushResultGone)
	r.CommandsTransitioned(entity.CommandStatusAck, 3)
	r.CommandsTransitioned(entity.CommandStatusExpired, 0)
	r.DeviceAuthenticated(service.DeviceAuthLegacy)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.pushDeliveries.WithLabelValues(service.PushResultSent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.pushDeliveries.WithLabelValues(service.PushResultGone)))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.commandTransitions.WithLabelValues(string(entity.CommandStatusAck))))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.commandTransitions.WithLabelValues(string(entity.CommandStatusExpired))))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.deviceAuth.WithLabelValues(service.DeviceAuthLegacy)))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.PushDelivered(service.PushResultFailed)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `pillmate_push_deliveries_total{result="failed"} 1`)
}

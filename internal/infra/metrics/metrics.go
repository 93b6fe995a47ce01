// Package metrics exposes operational counters through Prometheus.
package metrics

import (
	"net/http"

	"pillmate/internal/domain/entity"
	"pillmate/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pillmate"

// Recorder implements service.MetricsRecorder with Prometheus counters.
type Recorder struct {
	registry           *prometheus.Registry
	pushDeliveries     *prometheus.CounterVec
	commandTransitions *prometheus.CounterVec
	deviceAuth         *prometheus.CounterVec
}

// NewRecorder creates a recorder with its own registry, including Go runtime collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		pushDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_deliveries_total",
			Help:      "Per-endpoint push delivery outcomes.",
		}, []string{"result"}),
		commandTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_transitions_total",
			Help:      "Commands entering each lifecycle status.",
		}, []string{"status"}),
		deviceAuth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "device_auth_total",
			Help:      "Device secret verification attempts.",
		}, []string{"result"}),
	}

	registry.MustRegister(
		r.pushDeliveries,
		r.commandTransitions,
		r.deviceAuth,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// NewMetricsRecorder exposes the recorder as the domain interface for Fx.
func NewMetricsRecorder(r *Recorder) service.MetricsRecorder {
	return r
}

func (r *Recorder) PushDelivered(result string) {
	r.pushDeliveries.WithLabelValues(result).Inc()
}

func (r *Recorder) CommandsTransitioned(status entity.CommandStatus, count int) {
	if count <= 0 {
		return
	}
	r.commandTransitions.WithLabelValues(string(status)).Add(float64(count))
}

func (r *Recorder) DeviceAuthenticated(result string) {
	r.deviceAuth.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) PushDelivered(string) {}

func (Nop) CommandsTransitioned(entity.CommandStatus, int) {}

func (Nop) DeviceAuthenticated(string) {}

var _ service.MetricsRecorder = Nop{}

package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	nuts "github.com/vaudience/go-nuts"
)

// Service exposes prometheus metrics. Each instance owns its registry, so
// two instances in one process never collide on registration.
type Service struct {
	registry     *prometheus.Registry
	events       *prometheus.CounterVec
	measurements prometheus.Counter
}

// NewService creates a new monitoring service
func NewService() *Service {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Service{
		registry: registry,
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "plantech_events_total",
			Help: "Count of domain events by type.",
		}, []string{"event"}),
		measurements: factory.NewCounter(prometheus.CounterOpts{
			Name: "plantech_measurements_ingested_total",
			Help: "Count of measurements accepted from devices.",
		}),
	}
}

// RecordEvent counts a domain event (user.registered, sensor.deleted, ...).
func (s *Service) RecordEvent(event string) {
	s.events.WithLabelValues(event).Inc()
	nuts.L.Debugf("[Monitoring] Event %s recorded", event)
}

// RecordMeasurement counts an accepted device reading.
func (s *Service) RecordMeasurement() {
	s.measurements.Inc()
}

// Handler serves the /metrics endpoint for this service's registry.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

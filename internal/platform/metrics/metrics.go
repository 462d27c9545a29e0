package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del scheduler de internación.
// Todos los métodos aceptan receiver nil (métricas deshabilitadas).
type Metrics struct {
	registry *prometheus.Registry

	administrationsGenerated prometheus.Counter
	itemsRecorded            *prometheus.CounterVec
	itemsSkipped             *prometheus.CounterVec
	stayTransitions          *prometheus.CounterVec
	lateItems                prometheus.Gauge
	lateNotifications        *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		administrationsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hospitalization_administrations_generated_total",
			Help: "Dose slots materialized by the schedule generator",
		}),
		itemsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hospitalization_items_recorded_total",
			Help: "Administrations and checklist items marked as done",
		}, []string{"kind"}),
		itemsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hospitalization_items_skipped_total",
			Help: "Administrations and checklist items skipped, by origin",
		}, []string{"kind", "origin"}),
		stayTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hospitalization_stay_transitions_total",
			Help: "Stay status changes",
		}, []string{"status"}),
		lateItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hospitalization_late_items",
			Help: "Unresolved items past their grace period at the last watcher pass",
		}),
		lateNotifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hospitalization_late_notifications_total",
			Help: "Late-item notifications handed to the sink",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.administrationsGenerated,
		m.itemsRecorded,
		m.itemsSkipped,
		m.stayTransitions,
		m.lateItems,
		m.lateNotifications,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) AdministrationsGenerated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.administrationsGenerated.Add(float64(n))
}

func (m *Metrics) ItemRecorded(kind string) {
	if m == nil {
		return
	}
	m.itemsRecorded.WithLabelValues(kind).Inc()
}

// ItemSkipped: origin es "operator" o "system" (cascadas).
func (m *Metrics) ItemSkipped(kind, origin string) {
	if m == nil {
		return
	}
	m.itemsSkipped.WithLabelValues(kind, origin).Inc()
}

func (m *Metrics) StayTransition(status string) {
	if m == nil {
		return
	}
	m.stayTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) SetLateItems(n int) {
	if m == nil {
		return
	}
	m.lateItems.Set(float64(n))
}

func (m *Metrics) LateNotification(ok bool) {
	if m == nil {
		return
	}
	result := "sent"
	if !ok {
		result = "failed"
	}
	m.lateNotifications.WithLabelValues(result).Inc()
}

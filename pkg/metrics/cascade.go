package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CascadeMetrics records outcomes of referential cascade units.
type CascadeMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	retries  *prometheus.CounterVec
}

// NewCascadeMetrics registers the cascade metrics on the provided registerer.
func NewCascadeMetrics(reg prometheus.Registerer) *CascadeMetrics {
	if reg == nil {
		return &CascadeMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cascade_duration_seconds",
		Help:    "Duration of cascade transactions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity", "operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cascade_success_total",
		Help: "Committed cascade transactions.",
	}, []string{"entity", "operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cascade_failure_total",
		Help: "Rolled back cascade transactions.",
	}, []string{"entity", "operation"})
	retries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cascade_retries_total",
		Help: "Transient-failure retries of cascade transactions.",
	}, []string{"entity", "operation"})
	reg.MustRegister(duration, success, failure, retries)
	return &CascadeMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		retries:  retries,
	}
}

// ObserveDuration records the duration for one cascade invocation.
func (c *CascadeMetrics) ObserveDuration(entity, op string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(entity), normalizeLabel(op)).Observe(duration.Seconds())
}

// IncSuccess increments the commit counter.
func (c *CascadeMetrics) IncSuccess(entity, op string) {
	if c == nil || c.success == nil {
		return
	}
	c.success.WithLabelValues(normalizeLabel(entity), normalizeLabel(op)).Inc()
}

// IncFailure increments the rollback counter.
func (c *CascadeMetrics) IncFailure(entity, op string) {
	if c == nil || c.failure == nil {
		return
	}
	c.failure.WithLabelValues(normalizeLabel(entity), normalizeLabel(op)).Inc()
}

// IncRetry increments the transient-retry counter.
func (c *CascadeMetrics) IncRetry(entity, op string) {
	if c == nil || c.retries == nil {
		return
	}
	c.retries.WithLabelValues(normalizeLabel(entity), normalizeLabel(op)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

// Package metrics exposes Prometheus collectors for HTTP traffic and for
// campaign and evaluation events.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "maturity"

// Evaluation change sources
const (
	SourceSingle = "single"
	SourceBulk   = "bulk"
)

// Metrics holds the application collectors on a private registry.
// All recording methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	statusChanges        *prometheus.CounterVec
	participantsEnrolled prometheus.Counter
	evaluationsCreated   prometheus.Counter
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a new registry
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluation_status_changes_total",
			Help:      "Evaluation status changes by new status and source",
		},
		[]string{"status", "source"},
	)

	m.participantsEnrolled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "participants_enrolled_total",
		Help:      "Services enrolled in campaigns",
	})

	m.evaluationsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluations_created_total",
		Help:      "Evaluation rows created by participant enrollment",
	})

	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	// Default buckets: 0.005 .. 10 seconds
	m.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.registry.MustRegister(
		m.statusChanges,
		m.participantsEnrolled,
		m.evaluationsCreated,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry holding every collector
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordStatusChange counts one evaluation moving to status
func (m *Metrics) RecordStatusChange(status, source string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(status, source).Inc()
}

// RecordEnrollment counts one participant and the evaluation rows created for it
func (m *Metrics) RecordEnrollment(evaluations int) {
	if m == nil {
		return
	}
	m.participantsEnrolled.Inc()
	m.evaluationsCreated.Add(float64(evaluations))
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

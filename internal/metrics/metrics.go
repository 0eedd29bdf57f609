// Package metrics records provider, generation and HTTP metrics in a
// Prometheus registry owned by the Recorder.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "teambuilder"

// Recorder captures metrics about provider calls, generations and HTTP
// requests. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	providerAttempts *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	generations      *prometheus.CounterVec
	generationTime   *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with its own registry, including the Go
// runtime and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// LLM calls take seconds, not milliseconds.
	llmBuckets := []float64{0.5, 1, 2, 4, 8, 12, 15, 20, 30}

	r := &Recorder{
		registry: reg,
		providerAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_attempts_total",
			Help:      "LLM provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_attempt_duration_seconds",
			Help:      "Duration of single LLM provider calls.",
			Buckets:   llmBuckets,
		}, []string{"provider"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Team generations by outcome.",
		}, []string{"outcome"}),
		generationTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "End to end duration of team generations, retries included.",
			Buckets:   llmBuckets,
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		r.providerAttempts,
		r.providerLatency,
		r.generations,
		r.generationTime,
		r.httpRequests,
		r.httpLatency,
	)
	return r
}

// RecordProviderAttempt counts one provider call and observes its latency.
func (r *Recorder) RecordProviderAttempt(provider, outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.providerAttempts.WithLabelValues(provider, outcome).Inc()
	r.providerLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordGeneration counts one team generation and observes its duration.
func (r *Recorder) RecordGeneration(outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(outcome).Inc()
	r.generationTime.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordHTTPRequest tracks basic HTTP metrics. Route should be the router
// pattern, not the raw path, to keep label cardinality bounded.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ProviderAttempts returns the counter for a provider and outcome.
func (r *Recorder) ProviderAttempts(provider, outcome string) prometheus.Counter {
	return r.providerAttempts.WithLabelValues(provider, outcome)
}

// Generations returns the counter for an outcome.
func (r *Recorder) Generations(outcome string) prometheus.Counter {
	return r.generations.WithLabelValues(outcome)
}

// HTTPRequests returns the counter for a method, route and status.
func (r *Recorder) HTTPRequests(method, route string, status int) prometheus.Counter {
	return r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

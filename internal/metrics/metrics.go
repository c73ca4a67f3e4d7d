// Package metrics holds the Prometheus collectors of the script writer.
package metrics

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "scriptwriter"

// Generation stages reported by GenerationFailures.
const (
	StageChannel = "channel"
	StageLLM     = "llm"
	StageHistory = "history"
)

// Metrics groups every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	RequestDuration    *prometheus.HistogramVec
	RequestsInFlight   prometheus.Gauge
	ScriptsGenerated   *prometheus.CounterVec
	GenerationFailures *prometheus.CounterVec
	LLMLatency         prometheus.Histogram
	ChannelLookups     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "HTTP request duration in seconds, by endpoint and method.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint", "method", "status"},
		),
		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being served.",
			},
		),
		ScriptsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scripts_generated_total",
				Help:      "Scripts generated, by source (manual or channel) and tone.",
			},
			[]string{"source", "tone"},
		),
		GenerationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_failures_total",
				Help:      "Failed generation steps, by stage.",
			},
			[]string{"stage"},
		),
		LLMLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "llm_request_duration_seconds",
				Help:      "Duration of text generation calls.",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
			},
		),
		ChannelLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "channel_lookups_total",
				Help:      "YouTube channel lookups, by outcome.",
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(
		m.RequestDuration,
		m.RequestsInFlight,
		m.ScriptsGenerated,
		m.GenerationFailures,
		m.LLMLatency,
		m.ChannelLookups,
	)
	return m
}

// RegisterPool exports live pgxpool stats as gauges.
func RegisterPool(reg prometheus.Registerer, pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	reg.MustRegister(
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_connection_pool_active",
				Help:      "Number of active database connections.",
			},
			func() float64 { return float64(pool.Stat().AcquiredConns()) },
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_connection_pool_idle",
				Help:      "Number of idle database connections.",
			},
			func() float64 { return float64(pool.Stat().IdleConns()) },
		),
	)
}

func (m *Metrics) ScriptGenerated(source, tone string) {
	if m == nil {
		return
	}
	m.ScriptsGenerated.WithLabelValues(source, tone).Inc()
}

func (m *Metrics) GenerationFailed(stage string) {
	if m == nil {
		return
	}
	m.GenerationFailures.WithLabelValues(stage).Inc()
}

func (m *Metrics) ObserveLLM(d time.Duration) {
	if m == nil {
		return
	}
	m.LLMLatency.Observe(d.Seconds())
}

func (m *Metrics) ChannelLookup(outcome string) {
	if m == nil {
		return
	}
	m.ChannelLookups.WithLabelValues(outcome).Inc()
}

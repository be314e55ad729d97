package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversation engine metrics
var (
	// StreamsTotal counts streamed responses by outcome
	// (started, completed, errored, cancelled, start_failed, abandoned).
	StreamsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "omnichat",
			Subsystem: "engine",
			Name:      "streams_total",
			Help:      "Streamed assistant responses by outcome",
		},
		[]string{"outcome"},
	)

	// StaleEventsTotal counts push events dropped by the session guard.
	StaleEventsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "omnichat",
			Subsystem: "engine",
			Name:      "stale_events_total",
			Help:      "Stream events dropped because they did not match the active session",
		},
	)

	// GenerationsTotal counts non-streaming generations by kind and status.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "omnichat",
			Subsystem: "engine",
			Name:      "generations_total",
			Help:      "Regenerate, compare and blocking send calls",
		},
		[]string{"kind", "status"},
	)

	// GateBlocksTotal counts actions refused because activation is required.
	GateBlocksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "omnichat",
			Subsystem: "license",
			Name:      "gate_blocks_total",
			Help:      "Actions blocked by the license gate",
		},
		[]string{"action"},
	)

	// RetrievalDuration observes how long context assembly takes.
	RetrievalDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "omnichat",
			Subsystem: "rag",
			Name:      "build_duration_seconds",
			Help:      "Time spent assembling knowledge context",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)
)

// Package metrics defines the Prometheus metric collectors used across the
// resolution pipelines and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the resolution pipelines.
type Metrics struct {
	EntitiesScannedTotal  *prometheus.CounterVec
	ChunksWrittenTotal    *prometheus.CounterVec
	BatchesCommittedTotal *prometheus.CounterVec
	BatchDuration         *prometheus.HistogramVec
	TokensMergedTotal     prometheus.Counter
	TokensDroppedTotal    prometheus.Counter
	MalformedRefsTotal    prometheus.Counter
	RecordsResolvedTotal  *prometheus.CounterVec
	MatchScore            prometheus.Histogram
	CandidatesScored      prometheus.Histogram
	CheckpointCommits     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		EntitiesScannedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "entities_scanned_total",
				Help: "Reference entities scanned, by phase.",
			},
			[]string{"phase"},
		),
		ChunksWrittenTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "index_chunks_written_total",
				Help: "Inverted-index chunk records written, by phase.",
			},
			[]string{"phase"},
		),
		BatchesCommittedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "batches_committed_total",
				Help: "Batches whose writes and checkpoint committed, by phase.",
			},
			[]string{"phase"},
		),
		BatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "batch_duration_seconds",
				Help:    "Wall time per processed batch, by phase.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"phase"},
		),
		TokensMergedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tokens_merged_total",
				Help: "Tokens consolidated into the final merged index.",
			},
		),
		TokensDroppedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tokens_dropped_total",
				Help: "Tokens dropped for exceeding the cardinality ceiling.",
			},
		),
		MalformedRefsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "malformed_entity_refs_total",
				Help: "Posting entity ids dropped as unparseable.",
			},
		),
		RecordsResolvedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipments_resolved_total",
				Help: "Shipment records processed, by result (matched, unmatched, error).",
			},
			[]string{"result"},
		),
		MatchScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "match_score",
				Help:    "Final score of accepted matches.",
				Buckets: []float64{0.55, 0.6, 0.65, 0.7, 0.75, 0.8, 0.85, 0.9, 0.95, 1},
			},
		),
		CandidatesScored: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "candidates_scored_per_record",
				Help:    "Candidates evaluated per shipment record.",
				Buckets: []float64{0, 1, 2, 5, 10, 20},
			},
		),
		CheckpointCommits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkpoint_commits_total",
				Help: "Checkpoint values persisted, by phase.",
			},
			[]string{"phase"},
		),
	}

	prometheus.MustRegister(
		m.EntitiesScannedTotal,
		m.ChunksWrittenTotal,
		m.BatchesCommittedTotal,
		m.BatchDuration,
		m.TokensMergedTotal,
		m.TokensDroppedTotal,
		m.MalformedRefsTotal,
		m.RecordsResolvedTotal,
		m.MatchScore,
		m.CandidatesScored,
		m.CheckpointCommits,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

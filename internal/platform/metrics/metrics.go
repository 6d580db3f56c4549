package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for role resolution and its lookups.
// All methods are safe on a nil receiver.
type Metrics struct {
	// Vote role resolutions by outcome: active, single_candidate, date_range,
	// undetermined, missing_term.
	ResolutionOutcome *prometheus.CounterVec

	// Committee back-reference tables built from the document store.
	CommitteeTableBuilds prometheus.Counter

	// Metadata cache lookups by result (hit, miss).
	MetadataCache *prometheus.CounterVec

	// Collaborator lookup latency by source (legislator, vote, bill, committees, metadata).
	LookupLatency *prometheus.HistogramVec
}

// New creates and registers all metrics with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ResolutionOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rollcall_vote_role_resolutions_total",
			Help: "Total vote role resolutions by outcome",
		}, []string{"outcome"}),

		CommitteeTableBuilds: factory.NewCounter(prometheus.CounterOpts{
			Name: "rollcall_committee_table_builds_total",
			Help: "Total committee back-reference tables built from the document store",
		}),

		MetadataCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rollcall_metadata_cache_lookups_total",
			Help: "Total jurisdiction metadata cache lookups by result",
		}, []string{"result"}),

		LookupLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rollcall_lookup_duration_seconds",
			Help:    "Duration of collaborator lookups by source",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"source"}),
	}
}

// IncrementOutcome records a vote role resolution outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.ResolutionOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncrementCommitteeTableBuilds records one committee table build.
func (m *Metrics) IncrementCommitteeTableBuilds() {
	if m != nil {
		m.CommitteeTableBuilds.Inc()
	}
}

// RecordCacheHit records a metadata cache hit.
func (m *Metrics) RecordCacheHit() {
	if m != nil {
		m.MetadataCache.WithLabelValues("hit").Inc()
	}
}

// RecordCacheMiss records a metadata cache miss.
func (m *Metrics) RecordCacheMiss() {
	if m != nil {
		m.MetadataCache.WithLabelValues("miss").Inc()
	}
}

// ObserveLookupLatency records the duration of a collaborator lookup.
func (m *Metrics) ObserveLookupLatency(source string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

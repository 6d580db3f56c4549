package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementOutcome("date_range")
	m.IncrementOutcome("date_range")
	m.IncrementCommitteeTableBuilds()
	m.RecordCacheHit()
	m.RecordCacheMiss()
	m.ObserveLookupLatency("vote", 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResolutionOutcome.WithLabelValues("date_range")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommitteeTableBuilds))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MetadataCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MetadataCache.WithLabelValues("miss")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementOutcome("active")
		m.IncrementCommitteeTableBuilds()
		m.RecordCacheHit()
		m.RecordCacheMiss()
		m.ObserveLookupLatency("bill", time.Second)
	})
}

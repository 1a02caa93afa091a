package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/upb/answer-gate/models"
)

func TestMetrics_ObserveDecision(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveDecision("educator", models.QueryFactual, false, "")
	m.ObserveDecision("educator", models.QueryFactual, true, models.ReasonBelowMinSources)
	m.ObserveDecision("educator", models.QueryFactual, true, models.ReasonBelowMinSources)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("educator", "factual", "allow")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.decisions.WithLabelValues("educator", "factual", "refuse")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.refusals.WithLabelValues("BELOW_MIN_SOURCES")))
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/upb/answer-gate/models"
)

// Metrics collects gate decision metrics for Prometheus.
type Metrics struct {
	decisions *prometheus.CounterVec
	refusals  *prometheus.CounterVec
}

// NewMetrics creates and registers the decision metrics on the given
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "answer_gate",
			Name:      "decisions_total",
			Help:      "Gate decisions by persona, query type, and outcome.",
		}, []string{"persona", "query_type", "outcome"}),
		refusals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "answer_gate",
			Name:      "refusals_total",
			Help:      "Refusals by reason code.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.decisions, m.refusals)
	return m
}

// ObserveDecision records one gate decision. Implements the gate service's
// DecisionMetrics interface.
func (m *Metrics) ObserveDecision(persona string, queryType models.QueryType, refused bool, reason models.RefusalReason) {
	outcome := "allow"
	if refused {
		outcome = "refuse"
		m.refusals.WithLabelValues(string(reason)).Inc()
	}
	m.decisions.WithLabelValues(persona, string(queryType), outcome).Inc()
}

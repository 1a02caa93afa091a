// Package gate implements the retrieval-sufficiency gate: the ordered
// validation pipeline that decides whether the answering pipeline may respond
// to a query with cited content or must refuse.
package gate

import (
	"context"

	"github.com/upb/answer-gate/models"
	"github.com/upb/answer-gate/services/audit"
	"github.com/upb/answer-gate/services/classify"
	"github.com/upb/answer-gate/services/thresholds"
	"go.uber.org/zap"
)

// EvaluationRequest carries the inputs for one gate decision. Only Query and
// Results are required; everything else defaults safely.
type EvaluationRequest struct {
	Query            string
	Results          []models.RetrievalResult
	Persona          string
	Toggles          *models.Toggles
	CustomThresholds *models.PersonaThresholds
}

// DecisionMetrics receives one observation per decision. Implementations must
// be safe for concurrent callers.
type DecisionMetrics interface {
	ObserveDecision(persona string, queryType models.QueryType, refused bool, reason models.RefusalReason)
}

// Options configures a gate Service.
type Options struct {
	// AuditEnabled controls whether refusals are recorded to the sink.
	AuditEnabled bool

	// Metrics is optional; when nil, no metrics are emitted.
	Metrics DecisionMetrics
}

// Service is the decision orchestrator. Evaluation is pure and synchronous:
// it reads no shared mutable state and allocates a fresh decision per call.
// The only side effects are the audit sink append, log lines, and metrics.
type Service struct {
	registry     *thresholds.Registry
	sink         audit.RecordSink
	logger       *zap.Logger
	metrics      DecisionMetrics
	auditEnabled bool
}

// NewService creates a gate Service.
func NewService(registry *thresholds.Registry, sink audit.RecordSink, logger *zap.Logger, opts Options) *Service {
	return &Service{
		registry:     registry,
		sink:         sink,
		logger:       logger,
		metrics:      opts.Metrics,
		auditEnabled: opts.AuditEnabled,
	}
}

// Evaluate runs the gate and returns a complete decision. It never returns an
// error: insufficient evidence is a normal outcome represented as data, and
// malformed input degrades safely rather than failing.
func (s *Service) Evaluate(ctx context.Context, req EvaluationRequest) *models.RefusalDecision {
	resolved := s.registry.Resolve(req.Persona, req.Toggles, req.CustomThresholds)
	queryType := classify.Query(req.Query)

	// The only bypass: creative queries skip evidence checks entirely when
	// the resolved thresholds do not require citations.
	if !resolved.CitationsRequired && queryType == models.QueryCreative {
		s.observe(resolved.Persona, queryType, nil)
		return models.Allow()
	}

	snapshot := models.RefusalContext{
		Persona:                resolved.Persona,
		QueryType:              queryType,
		SimilarityThreshold:    resolved.SimilarityThreshold,
		ActualSimilarity:       BestSimilarity(req.Results),
		MinSourcesRequired:     resolved.MinSources,
		SourcesFound:           UniqueSourceCount(req.Results),
		PrimarySourcesRequired: resolved.PrimarySourcesOnly,
		PrimarySourcesFound:    PrimarySourceCount(req.Results),
	}

	// Checks run in reason order and short-circuit on the first failure.
	if !HasResults(req.Results) {
		return s.refuse(req.Query, snapshot, models.ReasonInsufficientRetrieval, nil)
	}
	if ok, fieldGaps := CiteableContent(req.Results); !ok {
		return s.refuse(req.Query, snapshot, models.ReasonNoCiteableContent, fieldGaps)
	}
	if !MeetsSimilarity(req.Results, resolved.SimilarityThreshold) {
		return s.refuse(req.Query, snapshot, models.ReasonLowSimilarityScore, nil)
	}
	if snapshot.SourcesFound < resolved.MinSources {
		return s.refuse(req.Query, snapshot, models.ReasonBelowMinSources, nil)
	}
	if resolved.PrimarySourcesOnly && snapshot.PrimarySourcesFound == 0 {
		return s.refuse(req.Query, snapshot, models.ReasonNoPrimarySources, nil)
	}

	s.observe(resolved.Persona, queryType, nil)
	return models.Allow()
}

// refuse assembles a refusal decision and records its side effects.
func (s *Service) refuse(query string, snapshot models.RefusalContext, reason models.RefusalReason, fieldGaps []string) *models.RefusalDecision {
	snapshot.Reason = reason

	decision := &models.RefusalDecision{
		ShouldRefuse:   true,
		Context:        &snapshot,
		RefusalMessage: refusalMessage(snapshot),
		SpecificGaps:   evidenceGaps(snapshot, fieldGaps),
		Suggestions:    suggestions(reason),
	}

	s.logger.Info("refusing answer",
		zap.String("reason", string(reason)),
		zap.String("persona", snapshot.Persona),
		zap.String("query_type", string(snapshot.QueryType)),
		zap.Float64("best_similarity", snapshot.ActualSimilarity),
		zap.Float64("similarity_threshold", snapshot.SimilarityThreshold),
		zap.Int("sources_found", snapshot.SourcesFound),
		zap.Int("min_sources_required", snapshot.MinSourcesRequired))

	if s.auditEnabled && s.sink != nil {
		s.sink.Record(models.NewAuditEvent(query, snapshot))
	}
	s.observe(snapshot.Persona, snapshot.QueryType, &reason)

	return decision
}

func (s *Service) observe(persona string, queryType models.QueryType, reason *models.RefusalReason) {
	if s.metrics == nil {
		return
	}
	if reason == nil {
		s.metrics.ObserveDecision(persona, queryType, false, "")
		return
	}
	s.metrics.ObserveDecision(persona, queryType, true, *reason)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent is a plain record of a single refusal, derived from the refusal
// context at decision time. Events live only in the process-wide sink; they
// are never persisted across restarts.
type AuditEvent struct {
	ID                     uuid.UUID     `json:"id"`
	Timestamp              time.Time     `json:"timestamp"`
	Query                  string        `json:"query"`
	Persona                string        `json:"persona"`
	QueryType              QueryType     `json:"query_type"`
	Reason                 RefusalReason `json:"reason"`
	SimilarityThreshold    float64       `json:"similarity_threshold"`
	ActualSimilarity       float64       `json:"actual_similarity"`
	MinSourcesRequired     int           `json:"min_sources_required"`
	SourcesFound           int           `json:"sources_found"`
	PrimarySourcesRequired bool          `json:"primary_sources_required"`
	PrimarySourcesFound    int           `json:"primary_sources_found"`
}

// NewAuditEvent creates an AuditEvent from a refusal context.
func NewAuditEvent(query string, ctx RefusalContext) AuditEvent {
	return AuditEvent{
		ID:                     uuid.New(),
		Timestamp:              time.Now(),
		Query:                  query,
		Persona:                ctx.Persona,
		QueryType:              ctx.QueryType,
		Reason:                 ctx.Reason,
		SimilarityThreshold:    ctx.SimilarityThreshold,
		ActualSimilarity:       ctx.ActualSimilarity,
		MinSourcesRequired:     ctx.MinSourcesRequired,
		SourcesFound:           ctx.SourcesFound,
		PrimarySourcesRequired: ctx.PrimarySourcesRequired,
		PrimarySourcesFound:    ctx.PrimarySourcesFound,
	}
}

package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func citeableResult() RetrievalResult {
	return RetrievalResult{
		Rank:          1,
		Score:         0.9,
		Snippet:       "Photosynthesis converts light energy into chemical energy.",
		CitationLabel: "Biology Primer, ch. 4",
		CanonicalURL:  "https://corpus.example.com/biology/ch4",
		DocID:         "doc-bio-004",
		ChunkID:       "chunk-17",
		Namespace:     "textbooks",
	}
}

func TestRetrievalResult_HasCiteableMetadata(t *testing.T) {
	r := citeableResult()
	assert.True(t, r.HasCiteableMetadata())
	assert.Empty(t, r.MissingCitationFields())
}

func TestRetrievalResult_MissingCitationFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RetrievalResult)
		missing []string
	}{
		{
			name:    "blank snippet",
			mutate:  func(r *RetrievalResult) { r.Snippet = "   " },
			missing: []string{"snippet"},
		},
		{
			name:    "missing citation label",
			mutate:  func(r *RetrievalResult) { r.CitationLabel = "" },
			missing: []string{"citation_label"},
		},
		{
			name:    "non-http canonical URL",
			mutate:  func(r *RetrievalResult) { r.CanonicalURL = "ftp://corpus.example.com/doc" },
			missing: []string{"canonical_url"},
		},
		{
			name:    "missing doc and chunk IDs",
			mutate:  func(r *RetrievalResult) { r.DocID = ""; r.ChunkID = "" },
			missing: []string{"doc_id", "chunk_id"},
		},
		{
			name:    "missing namespace",
			mutate:  func(r *RetrievalResult) { r.Namespace = "\t" },
			missing: []string{"namespace"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := citeableResult()
			tt.mutate(&r)
			assert.Equal(t, tt.missing, r.MissingCitationFields())
			assert.False(t, r.HasCiteableMetadata())
		})
	}
}

func TestRetrievalResult_IsPrimary(t *testing.T) {
	tests := []struct {
		name        string
		namespace   string
		contentType string
		primary     bool
	}{
		{"primary_sources namespace", "primary_sources", "", true},
		{"primary namespace", "primary", "", true},
		{"namespace case insensitive", "Primary_Sources", "", true},
		{"primary content type", "articles", "primary_source", true},
		{"secondary commentary", "commentary", "analysis", false},
		{"empty metadata", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := citeableResult()
			r.Namespace = tt.namespace
			r.ContentType = tt.contentType
			assert.Equal(t, tt.primary, r.IsPrimary())
		})
	}
}

func TestToggles_Apply_TightensOnly(t *testing.T) {
	base := PersonaThresholds{
		Persona:             "creator",
		CitationsRequired:   false,
		SimilarityThreshold: 0.60,
		MinSources:          1,
	}

	tightened := Toggles{RequireCitations: true, PrimarySourcesOnly: true}.Apply(base)
	assert.True(t, tightened.CitationsRequired)
	assert.True(t, tightened.PrimarySourcesOnly)
	// Untouched fields carry through.
	assert.Equal(t, 0.60, tightened.SimilarityThreshold)
	assert.Equal(t, 1, tightened.MinSources)

	// False toggles never loosen a stricter base.
	strict := PersonaThresholds{CitationsRequired: true, PrimarySourcesOnly: true}
	unchanged := Toggles{}.Apply(strict)
	assert.True(t, unchanged.CitationsRequired)
	assert.True(t, unchanged.PrimarySourcesOnly)
}

func TestAllow(t *testing.T) {
	d := Allow()
	assert.False(t, d.ShouldRefuse)
	assert.Nil(t, d.Context)
	assert.Empty(t, d.RefusalMessage)
	assert.NotNil(t, d.SpecificGaps)
	assert.Empty(t, d.SpecificGaps)
	assert.NotNil(t, d.Suggestions)
	assert.Empty(t, d.Suggestions)
}

func TestNewAuditEvent(t *testing.T) {
	ctx := RefusalContext{
		Reason:              ReasonBelowMinSources,
		Persona:             "researcher",
		QueryType:           QueryFactual,
		SimilarityThreshold: 0.75,
		ActualSimilarity:    0.82,
		MinSourcesRequired:  3,
		SourcesFound:        2,
	}

	event := NewAuditEvent("who discovered penicillin", ctx)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.False(t, event.Timestamp.IsZero())
	assert.Equal(t, "who discovered penicillin", event.Query)
	assert.Equal(t, "researcher", event.Persona)
	assert.Equal(t, ReasonBelowMinSources, event.Reason)
	assert.Equal(t, 3, event.MinSourcesRequired)
	assert.Equal(t, 2, event.SourcesFound)
}

package models

import "strings"

// RetrievalResult represents one scored candidate passage returned by the
// retrieval subsystem. The gate consumes results as an ordered, already-ranked
// list; it never re-scores or re-orders them.
type RetrievalResult struct {
	Rank          int     `json:"rank"`
	Score         float64 `json:"score"`
	Snippet       string  `json:"snippet"`
	CitationLabel string  `json:"citation_label"`
	CanonicalURL  string  `json:"canonical_url"`
	DocID         string  `json:"doc_id"`
	ChunkID       string  `json:"chunk_id"`
	Namespace     string  `json:"namespace"`
	ContentType   string  `json:"content_type,omitempty"`
}

// primaryNamespaces are corpus namespaces whose documents count as primary
// sources. Kept in one place so the enforcer and its validators cannot drift.
var primaryNamespaces = map[string]bool{
	"primary_sources": true,
	"primary":         true,
}

// primaryContentTypes are content-type tags that mark a result as primary
// regardless of its namespace.
var primaryContentTypes = map[string]bool{
	"primary_source": true,
	"primary":        true,
}

// IsPrimary reports whether the result is classified as an original/firsthand
// document rather than secondary commentary.
func (r *RetrievalResult) IsPrimary() bool {
	if primaryNamespaces[strings.ToLower(strings.TrimSpace(r.Namespace))] {
		return true
	}
	return primaryContentTypes[strings.ToLower(strings.TrimSpace(r.ContentType))]
}

// HasCiteableMetadata reports whether the result carries complete, non-blank
// provenance metadata. MissingCitationFields lists what is absent.
func (r *RetrievalResult) HasCiteableMetadata() bool {
	return len(r.MissingCitationFields()) == 0
}

// MissingCitationFields returns the names of required citation fields that are
// empty or whitespace-only, in a fixed field order. A canonical URL that does
// not use an http(s) scheme counts as missing.
func (r *RetrievalResult) MissingCitationFields() []string {
	var missing []string
	if isBlank(r.Snippet) {
		missing = append(missing, "snippet")
	}
	if isBlank(r.CitationLabel) {
		missing = append(missing, "citation_label")
	}
	if isBlank(r.CanonicalURL) || !hasHTTPScheme(r.CanonicalURL) {
		missing = append(missing, "canonical_url")
	}
	if isBlank(r.DocID) {
		missing = append(missing, "doc_id")
	}
	if isBlank(r.ChunkID) {
		missing = append(missing, "chunk_id")
	}
	if isBlank(r.Namespace) {
		missing = append(missing, "namespace")
	}
	return missing
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func hasHTTPScheme(rawURL string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(rawURL))
	return strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://")
}

package models

// PersonaThresholds is an immutable bundle of enforcement policy parameters.
// A bundle is constructed once per request from a named preset (optionally
// tightened by caller toggles) or supplied verbatim by the caller, and is
// never mutated during a decision.
type PersonaThresholds struct {
	Persona             string  `json:"persona"`
	CitationsRequired   bool    `json:"citations_required"`
	SimilarityThreshold float64 `json:"similarity_threshold" validate:"gte=0,lte=1"`
	MinSources          int     `json:"min_sources" validate:"gte=1"`
	PrimarySourcesOnly  bool    `json:"primary_sources_only"`
	StrictMode          bool    `json:"strict_mode"`
}

// Toggles are caller-supplied per-request overrides. Overrides may only
// tighten the active persona's thresholds, never loosen them: a true value
// forces the matching flag on, a false value is ignored.
type Toggles struct {
	RequireCitations   bool `json:"require_citations"`
	PrimarySourcesOnly bool `json:"primary_sources_only"`

	// CreativeMode is informational only; classification of the query text
	// decides the creative bypass, not this flag.
	CreativeMode bool `json:"creative_mode"`
}

// Apply returns a copy of the thresholds with the toggles applied.
func (t Toggles) Apply(base PersonaThresholds) PersonaThresholds {
	if t.RequireCitations {
		base.CitationsRequired = true
	}
	if t.PrimarySourcesOnly {
		base.PrimarySourcesOnly = true
	}
	return base
}

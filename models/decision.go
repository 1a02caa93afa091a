package models

// RefusalReason categorizes why the gate withheld an answer. The declaration
// order below is also the evaluation order of the evidence checks.
type RefusalReason string

const (
	ReasonInsufficientRetrieval RefusalReason = "INSUFFICIENT_RETRIEVAL"
	ReasonNoCiteableContent     RefusalReason = "NO_CITEABLE_CONTENT"
	ReasonLowSimilarityScore    RefusalReason = "LOW_SIMILARITY_SCORE"
	ReasonBelowMinSources       RefusalReason = "BELOW_MIN_SOURCES"
	ReasonNoPrimarySources      RefusalReason = "NO_PRIMARY_SOURCES"
)

// QueryType labels the intent of a query as classified by lexical cues.
type QueryType string

const (
	QueryFactual    QueryType = "factual"
	QueryAnalytical QueryType = "analytical"
	QueryCreative   QueryType = "creative"
)

// SuggestionType categorizes what the caller could try after a refusal.
type SuggestionType string

const (
	SuggestRefineQuery   SuggestionType = "refine_query"
	SuggestExpandCorpus  SuggestionType = "expand_corpus"
	SuggestAdjustFilters SuggestionType = "adjust_filters"
)

// Suggestion is one actionable next step attached to a refusal.
type Suggestion struct {
	Type        SuggestionType `json:"suggestion_type"`
	Description string         `json:"description"`
	Example     string         `json:"example,omitempty"`
}

// RefusalContext snapshots the inputs and thresholds relevant to why a
// refusal occurred. Produced once per refusal, never mutated.
type RefusalContext struct {
	Reason                 RefusalReason `json:"reason"`
	Persona                string        `json:"persona"`
	QueryType              QueryType     `json:"query_type"`
	SimilarityThreshold    float64       `json:"similarity_threshold"`
	ActualSimilarity       float64       `json:"actual_similarity"`
	MinSourcesRequired     int           `json:"min_sources_required"`
	SourcesFound           int           `json:"sources_found"`
	PrimarySourcesRequired bool          `json:"primary_sources_required"`
	PrimarySourcesFound    int           `json:"primary_sources_found"`
}

// RefusalDecision is the gate's output. Context, RefusalMessage, SpecificGaps,
// and Suggestions are populated iff ShouldRefuse is true. A decision is
// created fresh per evaluation and never reused.
type RefusalDecision struct {
	ShouldRefuse   bool            `json:"should_refuse"`
	Context        *RefusalContext `json:"context,omitempty"`
	RefusalMessage string          `json:"refusal_message,omitempty"`
	SpecificGaps   []string        `json:"specific_gaps"`
	Suggestions    []Suggestion    `json:"suggestions"`
}

// Allow returns an allow decision with empty gap and suggestion lists.
func Allow() *RefusalDecision {
	return &RefusalDecision{
		ShouldRefuse: false,
		SpecificGaps: []string{},
		Suggestions:  []Suggestion{},
	}
}

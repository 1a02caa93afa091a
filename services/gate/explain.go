package gate

import (
	"fmt"

	"github.com/upb/answer-gate/models"
)

// refusalMessage produces the single user-facing message for a refusal. One
// fixed template per reason; templates interpolate numeric context values and
// the persona name but never caller-supplied free text, so a query cannot
// inject into user-visible output.
func refusalMessage(ctx models.RefusalContext) string {
	switch ctx.Reason {
	case models.ReasonInsufficientRetrieval:
		return fmt.Sprintf(
			"I can't answer this reliably: no relevant documents were retrieved, and the %s persona requires cited evidence.",
			ctx.Persona)
	case models.ReasonNoCiteableContent:
		return "I can't answer this reliably: the retrieved passages are missing the citation metadata needed to attribute an answer."
	case models.ReasonLowSimilarityScore:
		return fmt.Sprintf(
			"I can't answer this reliably: the best match scored %.2f, below the %.2f similarity required for the %s persona.",
			ctx.ActualSimilarity, ctx.SimilarityThreshold, ctx.Persona)
	case models.ReasonBelowMinSources:
		return fmt.Sprintf(
			"I can't answer this reliably: only %d unique source(s) were found, but the %s persona requires at least %d.",
			ctx.SourcesFound, ctx.Persona, ctx.MinSourcesRequired)
	case models.ReasonNoPrimarySources:
		return fmt.Sprintf(
			"I can't answer this reliably: the %s persona requires primary sources and none of the retrieved documents qualify.",
			ctx.Persona)
	default:
		return "I can't answer this reliably: the retrieved evidence does not meet the required sufficiency criteria."
	}
}

// evidenceGaps produces the ordered list of specific shortfall descriptions
// for a refusal. fieldGaps carries the per-missing-field strings collected by
// the citeable-content validator; they are appended after the generic gaps.
func evidenceGaps(ctx models.RefusalContext, fieldGaps []string) []string {
	var gaps []string
	switch ctx.Reason {
	case models.ReasonInsufficientRetrieval:
		gaps = append(gaps, "no relevant documents were found in the corpus")
	case models.ReasonNoCiteableContent:
		gaps = append(gaps, "retrieved passages lack complete citation metadata")
		gaps = append(gaps, fieldGaps...)
	case models.ReasonLowSimilarityScore:
		gaps = append(gaps, fmt.Sprintf(
			"best similarity %.2f is below the %.2f threshold",
			ctx.ActualSimilarity, ctx.SimilarityThreshold))
	case models.ReasonBelowMinSources:
		gaps = append(gaps, fmt.Sprintf(
			"only %d unique source(s) found, %d required",
			ctx.SourcesFound, ctx.MinSourcesRequired))
	case models.ReasonNoPrimarySources:
		gaps = append(gaps, "no retrieved document is classified as a primary source")
	}
	return gaps
}

// suggestionCatalogue maps each refusal reason to its fixed next-step
// suggestions. NO_CITEABLE_CONTENT deliberately has none: the fix is in the
// corpus metadata, not in anything the caller can retry.
var suggestionCatalogue = map[models.RefusalReason][]models.Suggestion{
	models.ReasonInsufficientRetrieval: {
		{
			Type:        models.SuggestRefineQuery,
			Description: "Rephrase the query with more specific terms that match the corpus vocabulary.",
			Example:     "Instead of a broad topic, name the specific concept, event, or entity.",
		},
		{
			Type:        models.SuggestExpandCorpus,
			Description: "Ingest additional documents covering this topic into the corpus.",
		},
	},
	models.ReasonLowSimilarityScore: {
		{
			Type:        models.SuggestRefineQuery,
			Description: "Narrow the query so it aligns more closely with the indexed content.",
			Example:     "Add the domain or time period you are asking about.",
		},
	},
	models.ReasonBelowMinSources: {
		{
			Type:        models.SuggestRefineQuery,
			Description: "Broaden the query slightly so more distinct documents can match.",
		},
	},
	models.ReasonNoPrimarySources: {
		{
			Type:        models.SuggestAdjustFilters,
			Description: "Relax the primary-source requirement or include the primary_sources namespace in retrieval.",
		},
		{
			Type:        models.SuggestExpandCorpus,
			Description: "Ingest primary-source documents for this topic.",
		},
	},
}

// suggestions returns the catalogue entries for a reason, or an empty list.
func suggestions(reason models.RefusalReason) []models.Suggestion {
	if s, ok := suggestionCatalogue[reason]; ok {
		out := make([]models.Suggestion, len(s))
		copy(out, s)
		return out
	}
	return []models.Suggestion{}
}

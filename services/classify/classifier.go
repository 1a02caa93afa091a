// Package classify labels raw query text with one of a small closed set of
// intents. Classification is purely lexical — no model calls, no state — and
// is used only to decide whether citation enforcement can be bypassed for
// creative queries.
package classify

import (
	"strings"

	"github.com/upb/answer-gate/models"
)

var creativeCues = []string{
	"imagine", "what if", "suppose", "pretend", "hypothetical",
	"write a story", "write me a story", "tell me a story", "make up",
	"invent", "compose", "fictional", "dream up", "fantasy",
	"poem", "creative",
}

var analyticalCues = []string{
	"compare", "contrast", "versus", " vs ", " vs.", "difference between",
	"pros and cons", "trade-off", "tradeoff", "better than", "worse than",
	"analyze", "analyse", "evaluate", "weigh",
}

// Query returns the intent label for a query. Hypothetical or imaginative
// language wins over comparison language; anything else is factual, including
// the empty query.
func Query(query string) models.QueryType {
	lower := strings.ToLower(query)

	for _, cue := range creativeCues {
		if strings.Contains(lower, cue) {
			return models.QueryCreative
		}
	}
	for _, cue := range analyticalCues {
		if strings.Contains(lower, cue) {
			return models.QueryAnalytical
		}
	}
	return models.QueryFactual
}

package gate

import (
	"fmt"

	"github.com/upb/answer-gate/models"
)

// The validators below are independent, stateless predicates over a retrieval
// result list. Each corresponds to one refusal reason; the service runs them
// in reason order and stops at the first failure.

// HasResults reports whether any results were retrieved at all.
func HasResults(results []models.RetrievalResult) bool {
	return len(results) > 0
}

// CiteableContent checks that every result carries complete citation
// metadata. It returns one gap string per missing field across all offending
// results, in result order.
func CiteableContent(results []models.RetrievalResult) (bool, []string) {
	var gaps []string
	for i, r := range results {
		for _, field := range r.MissingCitationFields() {
			gaps = append(gaps, fmt.Sprintf("result %d is missing %s", i+1, field))
		}
	}
	return len(gaps) == 0, gaps
}

// BestSimilarity returns the maximum score across all results, or 0 for an
// empty list.
func BestSimilarity(results []models.RetrievalResult) float64 {
	best := 0.0
	for _, r := range results {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// MeetsSimilarity reports whether the best score reaches the threshold.
// The comparison is inclusive: a best score exactly at the threshold passes.
func MeetsSimilarity(results []models.RetrievalResult, threshold float64) bool {
	return BestSimilarity(results) >= threshold
}

// UniqueSourceCount counts distinct doc IDs across the results.
func UniqueSourceCount(results []models.RetrievalResult) int {
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		seen[r.DocID] = true
	}
	return len(seen)
}

// PrimarySourceCount counts results classified as primary sources.
func PrimarySourceCount(results []models.RetrievalResult) int {
	count := 0
	for i := range results {
		if results[i].IsPrimary() {
			count++
		}
	}
	return count
}

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/upb/answer-gate/models"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.QueryType
	}{
		{"imaginative prompt", "Imagine a world where rivers flow uphill", models.QueryCreative},
		{"story request", "tell me a story about a lighthouse keeper", models.QueryCreative},
		{"hypothetical", "What if the printing press was never invented?", models.QueryCreative},
		{"poem request", "compose a poem about autumn", models.QueryCreative},
		{"comparison", "Compare solar and wind power costs", models.QueryAnalytical},
		{"versus", "postgres vs mysql for analytics workloads", models.QueryAnalytical},
		{"pros and cons", "pros and cons of remote work", models.QueryAnalytical},
		{"plain factual", "When was the Eiffel Tower built?", models.QueryFactual},
		{"definition", "define photosynthesis", models.QueryFactual},
		{"empty query", "", models.QueryFactual},
		{"creative beats analytical", "imagine comparing two dragons", models.QueryCreative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Query(tt.query))
		})
	}
}

func TestQuery_Deterministic(t *testing.T) {
	query := "compare the two approaches"
	first := Query(query)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Query(query))
	}
}

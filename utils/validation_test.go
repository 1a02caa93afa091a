package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Query     string  `validate:"required"`
	Threshold float64 `validate:"gte=0,lte=1"`
	Sources   int     `validate:"min=1"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(sampleRequest{Query: "q", Threshold: 0.8, Sources: 2})
	assert.NoError(t, err)
}

func TestValidateStruct_Invalid(t *testing.T) {
	err := ValidateStruct(sampleRequest{Threshold: 1.5, Sources: 0})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Validation failed", vErr.Error())
	assert.Contains(t, vErr.Fields, "Query")
	assert.Contains(t, vErr.Fields, "Threshold")
	assert.Contains(t, vErr.Fields, "Sources")
	assert.Len(t, vErr.Details(), 3)
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	r := NewReport()
	assert.NotEmpty(t, r.ID)
	assert.False(t, r.CleanedAt.IsZero())
	assert.False(t, r.HasFindings())
}

func TestReportHasFindings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Report)
		want   bool
	}{
		{name: "empty", mutate: func(r *Report) {}, want: false},
		{name: "duplicates", mutate: func(r *Report) { r.DuplicatesRemoved = 2 }, want: true},
		{name: "missing before", mutate: func(r *Report) { r.MissingBefore = map[string]int{"a": 1} }, want: true},
		{name: "missing after", mutate: func(r *Report) { r.MissingAfter = map[string]int{"a": 1} }, want: true},
		{name: "constant columns", mutate: func(r *Report) { r.ConstantColumns = []string{"a"} }, want: true},
		{name: "high cardinality", mutate: func(r *Report) { r.HighCardinalityColumns = []string{"a"} }, want: true},
		{name: "outliers", mutate: func(r *Report) { r.Outliers = map[string]int{"a": 3} }, want: true},
		{name: "converted", mutate: func(r *Report) { r.ConvertedToCategory = []string{"a"} }, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{}
			tt.mutate(r)
			assert.Equal(t, tt.want, r.HasFindings())
		})
	}
}

func TestReportJSONKeys(t *testing.T) {
	r := NewReport()
	r.DuplicatesRemoved = 1
	r.MissingBefore = map[string]int{"age": 2}
	r.ConstantColumns = []string{"site"}
	r.HighCardinalityColumns = []string{"id"}
	r.Outliers = map[string]int{"salary": 3}
	r.ConvertedToCategory = []string{"country"}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"duplicates_removed",
		"missing_before",
		"constant_cols",
		"high_card_cols",
		"outliers",
		"converted_to_category",
	} {
		assert.Contains(t, decoded, key)
	}

	// Findings that did not trigger stay out of the document entirely.
	assert.NotContains(t, decoded, "missing_after")
}

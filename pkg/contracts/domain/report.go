package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report summarizes one cleaning run. It is built fresh on every Clean call
// and returned alongside the cleaned dataset; the Cleaner keeps no mutable
// report state, so one instance can serve concurrent Clean calls.
//
// Finding fields are populated only when the corresponding condition was
// detected. MissingAfter is set whenever imputation ran; it lists the
// columns that still contain missing markers afterwards, which only happens
// when a column has no non-missing values to derive a fill from.
type Report struct {
	// ID uniquely identifies the cleaning run.
	ID string `json:"id"`

	// CleanedAt is when the run started.
	CleanedAt time.Time `json:"cleaned_at"`

	// Duration is the total time the run took.
	Duration time.Duration `json:"duration"`

	// RowsIn and RowsOut are the row counts before and after cleaning.
	RowsIn  int `json:"rows_in"`
	RowsOut int `json:"rows_out"`

	// DuplicatesRemoved is the number of duplicate rows dropped.
	DuplicatesRemoved int `json:"duplicates_removed,omitempty"`

	// MissingBefore holds per-column missing counts prior to imputation,
	// for columns that had at least one missing marker.
	MissingBefore map[string]int `json:"missing_before,omitempty"`

	// MissingAfter holds per-column missing counts after imputation, for
	// columns that still have at least one missing marker.
	MissingAfter map[string]int `json:"missing_after,omitempty"`

	// ConstantColumns lists columns with exactly one distinct value.
	ConstantColumns []string `json:"constant_cols,omitempty"`

	// HighCardinalityColumns lists text and categorical columns whose
	// distinct-value count exceeds the configured threshold.
	HighCardinalityColumns []string `json:"high_card_cols,omitempty"`

	// Outliers holds per-column IQR-rule outlier counts for numeric columns.
	Outliers map[string]int `json:"outliers,omitempty"`

	// ConvertedToCategory lists text columns narrowed to a categorical
	// representation.
	ConvertedToCategory []string `json:"converted_to_category,omitempty"`
}

// NewReport creates an empty report for a run starting now.
func NewReport() *Report {
	return &Report{
		ID:        uuid.NewString(),
		CleanedAt: time.Now(),
	}
}

// HasFindings reports whether any stage recorded a data-quality finding.
func (r *Report) HasFindings() bool {
	return r.DuplicatesRemoved > 0 ||
		len(r.MissingBefore) > 0 ||
		len(r.MissingAfter) > 0 ||
		len(r.ConstantColumns) > 0 ||
		len(r.HighCardinalityColumns) > 0 ||
		len(r.Outliers) > 0 ||
		len(r.ConvertedToCategory) > 0
}

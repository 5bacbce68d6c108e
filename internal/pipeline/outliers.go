package pipeline

import (
	"log/slog"

	"tabclean/internal/stats"
	"tabclean/pkg/contracts/domain"
)

// iqrFenceFactor is the classic Tukey fence multiplier: a value is an
// outlier when it lies more than 1.5 IQRs outside the quartiles.
const iqrFenceFactor = 1.5

// OutliersStage counts IQR-rule outliers in every numeric column. Detection
// is read-only; no value is removed or clipped.
type OutliersStage struct{}

// ID returns the stage identifier.
func (s *OutliersStage) ID() string { return StageIDOutliers }

// Name returns the human-readable stage name.
func (s *OutliersStage) Name() string { return "Outlier detection" }

// Execute records per-column outlier counts when nonzero.
func (s *OutliersStage) Execute(state *State) error {
	found := make(map[string]int)
	for i := range state.Dataset.Columns {
		col := &state.Dataset.Columns[i]
		if col.Kind != domain.KindNumeric {
			continue
		}
		xs := numericValues(col)
		q1, ok := stats.Quantile(xs, 0.25)
		if !ok {
			continue
		}
		q3, _ := stats.Quantile(xs, 0.75)
		iqr := q3 - q1
		lower := q1 - iqrFenceFactor*iqr
		upper := q3 + iqrFenceFactor*iqr

		n := 0
		for _, x := range xs {
			if x < lower || x > upper {
				n++
			}
		}
		if n > 0 {
			found[col.Name] = n
		}
	}

	if len(found) > 0 {
		state.Report.Outliers = found
		state.stageLogger(s.ID()).Info("potential numeric outliers detected",
			slog.Any("counts", found))
	}
	return nil
}

package pipeline

import (
	"log/slog"

	"tabclean/internal/stats"
	"tabclean/pkg/contracts/domain"
)

// ImputeStage fills missing markers column by column. Numeric columns use
// the configured numeric strategy (mean, median or a constant); text and
// categorical columns use the categorical strategy (mode or a constant).
//
// A column with no non-missing values has no mean, median or mode to derive
// a fill from; such a column is left as-is and reported in MissingAfter
// rather than filled with an undefined value.
type ImputeStage struct{}

// ID returns the stage identifier.
func (s *ImputeStage) ID() string { return StageIDImpute }

// Name returns the human-readable stage name.
func (s *ImputeStage) Name() string { return "Missing-value imputation" }

// Execute imputes missing values and records per-column missing counts
// before and after.
func (s *ImputeStage) Execute(state *State) error {
	ds := state.Dataset

	before := make(map[string]int)
	for i := range ds.Columns {
		if n := ds.Columns[i].MissingCount(); n > 0 {
			before[ds.Columns[i].Name] = n
		}
	}
	if len(before) == 0 {
		return nil
	}

	logger := state.stageLogger(s.ID())
	logger.Info("missing values found",
		slog.Int("columns", len(before)))
	state.Report.MissingBefore = before

	for i := range ds.Columns {
		col := &ds.Columns[i]
		if before[col.Name] == 0 {
			continue
		}
		var err error
		if col.Kind == domain.KindNumeric {
			err = s.fillNumeric(col, state.Config)
		} else {
			err = s.fillCategorical(col, state.Config)
		}
		if err != nil {
			return err
		}
	}

	after := make(map[string]int)
	for i := range ds.Columns {
		if n := ds.Columns[i].MissingCount(); n > 0 {
			after[ds.Columns[i].Name] = n
		}
	}
	state.Report.MissingAfter = after

	logger.Info("imputed missing values",
		slog.String("numeric_strategy", string(state.Config.NumericStrategy)),
		slog.String("categorical_strategy", string(state.Config.CategoricalStrategy)),
		slog.Int("unresolved_columns", len(after)))
	return nil
}

func (s *ImputeStage) fillNumeric(col *domain.Column, cfg domain.CleanerConfig) error {
	var fill float64
	var ok bool

	switch cfg.NumericStrategy {
	case domain.NumericConstant:
		f, err := cfg.NumericFillValue()
		if err != nil {
			return err
		}
		fill, ok = f, true
	case domain.NumericMean:
		fill, ok = stats.Mean(numericValues(col))
	default:
		fill, ok = stats.Median(numericValues(col))
	}
	if !ok {
		return nil
	}

	for i, v := range col.Values {
		if v.IsMissing() {
			col.Values[i] = domain.Number(fill)
		}
	}
	return nil
}

func (s *ImputeStage) fillCategorical(col *domain.Column, cfg domain.CleanerConfig) error {
	var fill string
	var ok bool

	switch cfg.CategoricalStrategy {
	case domain.CategoricalConstant:
		f, err := cfg.CategoricalFillValue()
		if err != nil {
			return err
		}
		fill, ok = f, true
	default:
		fill, ok = stats.ModeStrings(textValues(col))
	}
	if !ok {
		return nil
	}

	for i, v := range col.Values {
		if v.IsMissing() {
			col.Values[i] = domain.Text(fill)
		}
	}
	return nil
}

// numericValues returns the non-missing numeric cells of a column.
func numericValues(col *domain.Column) []float64 {
	out := make([]float64, 0, len(col.Values))
	for _, v := range col.Values {
		if v.IsNumber() {
			out = append(out, v.Float())
		}
	}
	return out
}

// textValues returns the non-missing text cells of a column.
func textValues(col *domain.Column) []string {
	out := make([]string, 0, len(col.Values))
	for _, v := range col.Values {
		if v.IsText() {
			out = append(out, v.Str())
		}
	}
	return out
}

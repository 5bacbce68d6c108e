package pipeline

import (
	"log/slog"

	"tabclean/pkg/contracts/domain"
)

// ConstantColumnsStage flags columns that hold exactly one distinct
// non-missing value after the earlier stages. Flagged columns are reported,
// never removed.
type ConstantColumnsStage struct{}

// ID returns the stage identifier.
func (s *ConstantColumnsStage) ID() string { return StageIDConstantColumns }

// Name returns the human-readable stage name.
func (s *ConstantColumnsStage) Name() string { return "Constant column detection" }

// Execute records the names of constant columns.
func (s *ConstantColumnsStage) Execute(state *State) error {
	var constant []string
	for i := range state.Dataset.Columns {
		col := &state.Dataset.Columns[i]
		if col.DistinctCount() == 1 {
			constant = append(constant, col.Name)
		}
	}

	if len(constant) > 0 {
		state.Report.ConstantColumns = constant
		state.stageLogger(s.ID()).Info("constant columns found, consider removing",
			slog.Any("columns", constant))
	}
	return nil
}

// HighCardinalityStage flags text and categorical columns whose
// distinct-value count strictly exceeds the configured threshold. Flagged
// columns are reported, never altered.
type HighCardinalityStage struct{}

// ID returns the stage identifier.
func (s *HighCardinalityStage) ID() string { return StageIDHighCardinality }

// Name returns the human-readable stage name.
func (s *HighCardinalityStage) Name() string { return "High-cardinality detection" }

// Execute records the names of high-cardinality columns.
func (s *HighCardinalityStage) Execute(state *State) error {
	var flagged []string
	for i := range state.Dataset.Columns {
		col := &state.Dataset.Columns[i]
		if col.Kind != domain.KindText && col.Kind != domain.KindCategorical {
			continue
		}
		if col.DistinctCount() > state.Config.HighCardinalityThreshold {
			flagged = append(flagged, col.Name)
		}
	}

	if len(flagged) > 0 {
		state.Report.HighCardinalityColumns = flagged
		state.stageLogger(s.ID()).Info("high-cardinality columns found, consider encoding strategies",
			slog.Any("columns", flagged),
			slog.Int("threshold", state.Config.HighCardinalityThreshold))
	}
	return nil
}

package pipeline

import (
	"log/slog"

	"tabclean/internal/textutil"
)

// ColumnNamesStage rewrites every column name to a snake_case identifier.
type ColumnNamesStage struct{}

// ID returns the stage identifier.
func (s *ColumnNamesStage) ID() string { return StageIDColumnNames }

// Name returns the human-readable stage name.
func (s *ColumnNamesStage) Name() string { return "Column name normalization" }

// Execute normalizes all column names unconditionally.
func (s *ColumnNamesStage) Execute(state *State) error {
	cols := state.Dataset.Columns
	for i := range cols {
		cols[i].Name = textutil.NormalizeName(cols[i].Name)
	}
	state.stageLogger(s.ID()).Info("standardized column names",
		slog.Int("columns", len(cols)))
	return nil
}

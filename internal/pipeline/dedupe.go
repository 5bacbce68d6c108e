package pipeline

import (
	"log/slog"
)

// DedupeStage drops rows whose cell values all equal a previously seen row.
// The first occurrence is kept; later duplicates are removed.
type DedupeStage struct{}

// ID returns the stage identifier.
func (s *DedupeStage) ID() string { return StageIDDedupe }

// Name returns the human-readable stage name.
func (s *DedupeStage) Name() string { return "Duplicate row removal" }

// Execute removes duplicate rows and records the removed count when
// positive.
func (s *DedupeStage) Execute(state *State) error {
	ds := state.Dataset
	rows := ds.Rows()
	if rows == 0 {
		return nil
	}

	seen := make(map[string]struct{}, rows)
	keep := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		key := ds.RowKey(i)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}

	removed := rows - len(keep)
	if removed == 0 {
		return nil
	}

	for c := range ds.Columns {
		col := &ds.Columns[c]
		out := col.Values[:0:0]
		for _, i := range keep {
			out = append(out, col.Values[i])
		}
		col.Values = out
	}

	state.Report.DuplicatesRemoved = removed
	state.stageLogger(s.ID()).Info("removed duplicate rows",
		slog.Int("removed", removed),
		slog.Int("remaining", len(keep)))
	return nil
}

package pipeline

import (
	"log/slog"
	"sort"

	"tabclean/pkg/contracts/domain"
)

// CategoricalStage narrows low-cardinality text columns to a categorical
// representation: the column kind becomes categorical and the sorted
// distinct values become its level list. Cell values are unchanged.
type CategoricalStage struct{}

// ID returns the stage identifier.
func (s *CategoricalStage) ID() string { return StageIDCategorical }

// Name returns the human-readable stage name.
func (s *CategoricalStage) Name() string { return "Low-cardinality categorical conversion" }

// Execute converts text columns whose distinct-value count is strictly
// below rows × LowCardinalityRatio.
func (s *CategoricalStage) Execute(state *State) error {
	limit := float64(state.Dataset.Rows()) * state.Config.LowCardinalityRatio

	var converted []string
	for i := range state.Dataset.Columns {
		col := &state.Dataset.Columns[i]
		if col.Kind != domain.KindText {
			continue
		}
		if float64(col.DistinctCount()) >= limit {
			continue
		}
		col.Kind = domain.KindCategorical
		col.Levels = distinctLevels(col)
		converted = append(converted, col.Name)
	}

	if len(converted) > 0 {
		state.Report.ConvertedToCategory = converted
		state.stageLogger(s.ID()).Info("converted text columns to categorical",
			slog.Any("columns", converted))
	}
	return nil
}

// distinctLevels returns the sorted distinct text values of a column.
func distinctLevels(col *domain.Column) []string {
	seen := make(map[string]struct{})
	for _, v := range col.Values {
		if v.IsText() {
			seen[v.Str()] = struct{}{}
		}
	}
	levels := make([]string, 0, len(seen))
	for s := range seen {
		levels = append(levels, s)
	}
	sort.Strings(levels)
	return levels
}

package pipeline

import (
	"log/slog"

	"github.com/spf13/cast"

	"tabclean/internal/textutil"
	"tabclean/pkg/contracts/domain"
)

// TextNormalizeStage standardizes every text-kind column: each non-missing
// cell is converted to its string form, trimmed and lowercased. The stage
// applies to all text columns, not only the ones later narrowed to
// categorical. Categorical-kind input columns already carry an enumerated
// representation and are left untouched.
type TextNormalizeStage struct{}

// ID returns the stage identifier.
func (s *TextNormalizeStage) ID() string { return StageIDTextNormalize }

// Name returns the human-readable stage name.
func (s *TextNormalizeStage) Name() string { return "Text normalization" }

// Execute normalizes the cells of all text-kind columns.
func (s *TextNormalizeStage) Execute(state *State) error {
	normalized := 0
	for c := range state.Dataset.Columns {
		col := &state.Dataset.Columns[c]
		if col.Kind != domain.KindText {
			continue
		}
		for i, v := range col.Values {
			switch {
			case v.IsMissing():
				// Missing markers stay missing.
			case v.IsNumber():
				col.Values[i] = domain.Text(textutil.NormalizeText(cast.ToString(v.Float())))
			default:
				col.Values[i] = domain.Text(textutil.NormalizeText(v.Str()))
			}
		}
		normalized++
	}

	state.stageLogger(s.ID()).Info("standardized text columns",
		slog.Int("columns", normalized))
	return nil
}

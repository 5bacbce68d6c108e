package pipeline

import (
	"log/slog"

	"tabclean/pkg/contracts/domain"
)

// MissingTokensStage replaces text cells that exactly match a configured
// placeholder token (for example "n/a" or "null") with missing markers.
// The substitution is dataset-wide and ignores column kind; text columns
// are already normalized by the previous stage, so matching is exact.
type MissingTokensStage struct{}

// ID returns the stage identifier.
func (s *MissingTokensStage) ID() string { return StageIDMissingTokens }

// Name returns the human-readable stage name.
func (s *MissingTokensStage) Name() string { return "Missing-value placeholder substitution" }

// Execute converts placeholder tokens to missing markers.
func (s *MissingTokensStage) Execute(state *State) error {
	tokens := make(map[string]struct{}, len(state.Config.MissingTokens))
	for _, t := range state.Config.MissingTokens {
		tokens[t] = struct{}{}
	}

	replaced := 0
	for c := range state.Dataset.Columns {
		col := &state.Dataset.Columns[c]
		for i, v := range col.Values {
			if !v.IsText() {
				continue
			}
			if _, hit := tokens[v.Str()]; hit {
				col.Values[i] = domain.Missing()
				replaced++
			}
		}
	}

	if replaced > 0 {
		state.stageLogger(s.ID()).Info("replaced missing-value placeholders",
			slog.Int("cells", replaced))
	}
	return nil
}

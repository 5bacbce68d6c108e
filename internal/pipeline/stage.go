package pipeline

import (
	"fmt"
	"log/slog"

	"tabclean/pkg/contracts/domain"
)

// Stage identifiers, in execution order.
const (
	StageIDColumnNames     = "column_names"
	StageIDDedupe          = "dedupe"
	StageIDTextNormalize   = "text_normalize"
	StageIDMissingTokens   = "missing_tokens"
	StageIDImpute          = "impute"
	StageIDConstantColumns = "constant_columns"
	StageIDHighCardinality = "high_cardinality"
	StageIDOutliers        = "outliers"
	StageIDCategorical     = "categorical"
)

// Stage is a single cleaning pass. A stage may rewrite the working dataset
// and record findings on the report; it must either fully complete or
// return an error, never leave the state half-updated.
type Stage interface {
	// ID returns the stable identifier for this stage.
	ID() string

	// Name returns the human-readable name for this stage.
	Name() string

	// Execute runs the stage against the shared state.
	Execute(state *State) error
}

// State is the shared context one cleaning run threads through the stages:
// the working dataset copy, the immutable configuration, the report under
// construction and the run logger.
type State struct {
	Dataset *domain.Dataset
	Config  domain.CleanerConfig
	Report  *domain.Report
	Logger  *slog.Logger
}

// stageLogger returns the state logger scoped to a stage.
func (s *State) stageLogger(id string) *slog.Logger {
	return s.Logger.With(slog.String("stage", id))
}

// Stages returns the nine cleaning stages in their fixed execution order.
// High-cardinality detection deliberately precedes categorical conversion,
// so a column can be both flagged and converted in one run.
func Stages() []Stage {
	return []Stage{
		&ColumnNamesStage{},
		&DedupeStage{},
		&TextNormalizeStage{},
		&MissingTokensStage{},
		&ImputeStage{},
		&ConstantColumnsStage{},
		&HighCardinalityStage{},
		&OutliersStage{},
		&CategoricalStage{},
	}
}

// Run executes all stages in order against the state. The first stage error
// aborts the run.
func Run(state *State) error {
	for _, stage := range Stages() {
		if err := stage.Execute(state); err != nil {
			return fmt.Errorf("clean stage %s: %w", stage.ID(), err)
		}
	}
	return nil
}

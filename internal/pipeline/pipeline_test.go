package pipeline

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabclean/pkg/contracts/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newState(t *testing.T, ds *domain.Dataset) *State {
	t.Helper()
	return &State{
		Dataset: ds,
		Config:  domain.DefaultCleanerConfig(),
		Report:  domain.NewReport(),
		Logger:  discardLogger(),
	}
}

func mustDataset(t *testing.T, headers []string, rows [][]any) *domain.Dataset {
	t.Helper()
	ds, err := domain.FromRows(headers, rows)
	require.NoError(t, err)
	return ds
}

func TestStagesOrder(t *testing.T) {
	want := []string{
		StageIDColumnNames,
		StageIDDedupe,
		StageIDTextNormalize,
		StageIDMissingTokens,
		StageIDImpute,
		StageIDConstantColumns,
		StageIDHighCardinality,
		StageIDOutliers,
		StageIDCategorical,
	}

	got := make([]string, 0, len(want))
	for _, stage := range Stages() {
		got = append(got, stage.ID())
		assert.NotEmpty(t, stage.Name())
	}
	assert.Equal(t, want, got)
}

func TestRunEmptyDataset(t *testing.T) {
	ds, err := domain.NewDataset()
	require.NoError(t, err)

	state := newState(t, ds)
	require.NoError(t, Run(state))
	assert.False(t, state.Report.HasFindings())
}

package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabclean/pkg/contracts/domain"
)

func TestCategoricalStage(t *testing.T) {
	// Ten rows cycling through the requested number of distinct values.
	makeRows := func(distinct int) [][]any {
		rows := make([][]any, 10)
		for i := range rows {
			rows[i] = []any{fmt.Sprintf("v%d", i%distinct)}
		}
		return rows
	}

	t.Run("below the ratio converts", func(t *testing.T) {
		ds := mustDataset(t, []string{"c"}, makeRows(4))
		state := newState(t, ds)
		state.Config.LowCardinalityRatio = 0.5 // limit = 5

		require.NoError(t, (&CategoricalStage{}).Execute(state))

		col := ds.Column("c")
		assert.Equal(t, domain.KindCategorical, col.Kind)
		assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, col.Levels)
		assert.Equal(t, []string{"c"}, state.Report.ConvertedToCategory)
	})

	t.Run("above the ratio stays text", func(t *testing.T) {
		ds := mustDataset(t, []string{"c"}, makeRows(6))
		state := newState(t, ds)
		state.Config.LowCardinalityRatio = 0.5

		require.NoError(t, (&CategoricalStage{}).Execute(state))

		assert.Equal(t, domain.KindText, ds.Column("c").Kind)
		assert.Empty(t, state.Report.ConvertedToCategory)
	})

	t.Run("comparison is strict", func(t *testing.T) {
		ds := mustDataset(t, []string{"c"}, makeRows(5))
		state := newState(t, ds)
		state.Config.LowCardinalityRatio = 0.5 // 5 distinct is not < 5

		require.NoError(t, (&CategoricalStage{}).Execute(state))

		assert.Equal(t, domain.KindText, ds.Column("c").Kind)
	})

	t.Run("cell values are unchanged by conversion", func(t *testing.T) {
		ds := mustDataset(t, []string{"c"}, makeRows(2))
		state := newState(t, ds)

		require.NoError(t, (&CategoricalStage{}).Execute(state))
		// Default ratio 0.05 gives limit 0.5; 2 distinct values stay text.
		assert.Equal(t, domain.KindText, ds.Column("c").Kind)

		state.Config.LowCardinalityRatio = 0.5
		require.NoError(t, (&CategoricalStage{}).Execute(state))

		col := ds.Column("c")
		assert.Equal(t, domain.KindCategorical, col.Kind)
		assert.Equal(t, domain.Text("v0"), col.Values[0])
		assert.Equal(t, domain.Text("v1"), col.Values[1])
	})

	t.Run("numeric columns are never converted", func(t *testing.T) {
		ds := mustDataset(t, []string{"n"}, [][]any{{1}, {1}, {1}, {1}})
		state := newState(t, ds)
		state.Config.LowCardinalityRatio = 2

		require.NoError(t, (&CategoricalStage{}).Execute(state))

		assert.Equal(t, domain.KindNumeric, ds.Column("n").Kind)
	})
}

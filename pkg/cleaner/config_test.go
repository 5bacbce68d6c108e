package cleaner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabclean/pkg/contracts/domain"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCleanerConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cleaner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
verbose: false
numeric_strategy: mean
high_cardinality_threshold: 50
missing_tokens: ["?", "missing"]
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.Equal(t, domain.NumericMean, cfg.NumericStrategy)
	assert.Equal(t, 50, cfg.HighCardinalityThreshold)
	assert.Equal(t, []string{"?", "missing"}, cfg.MissingTokens)
	// Untouched fields keep their defaults.
	assert.Equal(t, domain.CategoricalMode, cfg.CategoricalStrategy)
	assert.Equal(t, 0.05, cfg.LowCardinalityRatio)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cleaner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("numeric_strategy: mean\n"), 0o600))

	t.Setenv("TABCLEAN_NUMERIC_STRATEGY", "constant")
	t.Setenv("TABCLEAN_NUMERIC_FILL", "0")
	t.Setenv("TABCLEAN_LOW_CARDINALITY_RATIO", "0.2")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, domain.NumericConstant, cfg.NumericStrategy)
	assert.Equal(t, "0", cfg.NumericFill)
	assert.Equal(t, 0.2, cfg.LowCardinalityRatio)

	fill, err := cfg.NumericFillValue()
	require.NoError(t, err)
	assert.Equal(t, 0.0, fill)
}

func TestLoadConfigInvalidStrategy(t *testing.T) {
	t.Setenv("TABCLEAN_NUMERIC_STRATEGY", "average")

	_, err := LoadConfig("")
	require.Error(t, err)
	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

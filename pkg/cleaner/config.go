package cleaner

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"tabclean/pkg/contracts/domain"
)

// envPrefix namespaces the cleaner's environment variables, e.g.
// TABCLEAN_NUMERIC_STRATEGY.
const envPrefix = "TABCLEAN"

// LoadConfig builds a cleaner configuration in three layers: defaults,
// then an optional YAML file, then environment variables. The result is
// validated before it is returned.
func LoadConfig(path string) (domain.CleanerConfig, error) {
	cfg := domain.DefaultCleanerConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFromEnv builds a configuration from defaults and environment
// variables only.
func LoadConfigFromEnv() (domain.CleanerConfig, error) {
	return LoadConfig("")
}

// applyEnv overlays environment variables on cfg. The fill values are
// deliberately loose-typed and therefore read by hand; everything else goes
// through envconfig.
func applyEnv(cfg *domain.CleanerConfig) error {
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return fmt.Errorf("load config from env: %w", err)
	}
	if v, ok := os.LookupEnv(envPrefix + "_NUMERIC_FILL"); ok {
		cfg.NumericFill = v
	}
	if v, ok := os.LookupEnv(envPrefix + "_CATEGORICAL_FILL"); ok {
		cfg.CategoricalFill = v
	}
	return nil
}

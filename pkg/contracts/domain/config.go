package domain

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// NumericStrategy selects how missing values in numeric columns are filled.
type NumericStrategy string

const (
	NumericMean     NumericStrategy = "mean"
	NumericMedian   NumericStrategy = "median"
	NumericConstant NumericStrategy = "constant"
)

// CategoricalStrategy selects how missing values in text and categorical
// columns are filled.
type CategoricalStrategy string

const (
	CategoricalMode     CategoricalStrategy = "mode"
	CategoricalConstant CategoricalStrategy = "constant"
)

// CleanerConfig configures one Cleaner instance. It is immutable for the
// lifetime of the instance; there is no runtime reconfiguration.
//
// LowCardinalityRatio is deliberately permissive: out-of-range values
// (negative or above 1) are accepted as-is and simply make the categorical
// conversion threshold unreachable or trivially reachable.
type CleanerConfig struct {
	// Verbose emits a human-readable progress line for each stage that found
	// something. Logging is observational only and never changes the report
	// or the cleaned data.
	Verbose bool `yaml:"verbose" envconfig:"VERBOSE"`

	// NumericStrategy is the imputation strategy for numeric columns.
	NumericStrategy NumericStrategy `yaml:"numeric_strategy" envconfig:"NUMERIC_STRATEGY" validate:"oneof=mean median constant"`

	// NumericFill is the fill value used when NumericStrategy is "constant".
	// Loose host values are accepted and coerced; a value that does not
	// coerce to a number is a configuration error.
	NumericFill any `yaml:"numeric_fill" ignored:"true"`

	// CategoricalStrategy is the imputation strategy for text and
	// categorical columns.
	CategoricalStrategy CategoricalStrategy `yaml:"categorical_strategy" envconfig:"CATEGORICAL_STRATEGY" validate:"oneof=mode constant"`

	// CategoricalFill is the fill value used when CategoricalStrategy is
	// "constant".
	CategoricalFill any `yaml:"categorical_fill" ignored:"true"`

	// HighCardinalityThreshold flags text and categorical columns whose
	// distinct-value count strictly exceeds it.
	HighCardinalityThreshold int `yaml:"high_cardinality_threshold" envconfig:"HIGH_CARDINALITY_THRESHOLD"`

	// LowCardinalityRatio converts a text column to categorical when its
	// distinct-value count is strictly below rows × ratio.
	LowCardinalityRatio float64 `yaml:"low_cardinality_ratio" envconfig:"LOW_CARDINALITY_RATIO"`

	// MissingTokens are the string cell values treated as missing markers.
	MissingTokens []string `yaml:"missing_tokens" envconfig:"MISSING_TOKENS"`
}

// DefaultMissingTokens returns the default placeholder token set. Tokens are
// matched against cell values after text normalization, so they are kept in
// lowercase.
func DefaultMissingTokens() []string {
	return []string{"n/a", "na", "--", "-", "none", "null", "", "nan"}
}

// DefaultCleanerConfig returns the default configuration: verbose logging,
// median numeric imputation, mode categorical imputation, high-cardinality
// threshold 100 and low-cardinality ratio 0.05.
func DefaultCleanerConfig() CleanerConfig {
	return CleanerConfig{
		Verbose:                  true,
		NumericStrategy:          NumericMedian,
		CategoricalStrategy:      CategoricalMode,
		HighCardinalityThreshold: 100,
		LowCardinalityRatio:      0.05,
		MissingTokens:            DefaultMissingTokens(),
	}
}

var configValidator = validator.New()

// Validate checks the configuration and fails fast with a
// *ConfigurationError on an unknown strategy or an uncoercible constant
// fill value.
func (c CleanerConfig) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok || len(verrs) == 0 {
			return err
		}
		fe := verrs[0]
		return NewConfigurationError(fe.Field(), "unknown value "+cast.ToString(fe.Value()))
	}
	if c.NumericStrategy == NumericConstant {
		if _, err := c.NumericFillValue(); err != nil {
			return err
		}
	}
	if c.CategoricalStrategy == CategoricalConstant {
		if _, err := c.CategoricalFillValue(); err != nil {
			return err
		}
	}
	return nil
}

// NumericFillValue coerces the constant numeric fill to a float64.
func (c CleanerConfig) NumericFillValue() (float64, error) {
	if c.NumericFill == nil {
		return 0, NewConfigurationError("NumericFill", "constant strategy requires a fill value")
	}
	f, err := cast.ToFloat64E(c.NumericFill)
	if err != nil {
		return 0, NewConfigurationError("NumericFill", "value "+cast.ToString(c.NumericFill)+" is not numeric")
	}
	return f, nil
}

// CategoricalFillValue coerces the constant categorical fill to a string.
func (c CleanerConfig) CategoricalFillValue() (string, error) {
	if c.CategoricalFill == nil {
		return "", NewConfigurationError("CategoricalFill", "constant strategy requires a fill value")
	}
	s, err := cast.ToStringE(c.CategoricalFill)
	if err != nil {
		return "", NewConfigurationError("CategoricalFill", "value does not coerce to a string")
	}
	return s, nil
}

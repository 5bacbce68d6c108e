// Package cleaner provides a configurable cleaning pipeline for in-memory
// tabular datasets.
//
// # Usage
//
// Build a dataset, construct a Cleaner and clean:
//
//	ds, err := domain.FromRows(
//	    []string{" First Name! ", "Age"},
//	    [][]any{{"Ada", 36}, {"n/a", nil}},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := cleaner.NewCleaner(domain.DefaultCleanerConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cleaned, report, err := c.Clean(ds)
//
// The input dataset is never mutated; Clean returns an independent cleaned
// copy and a typed report of what was found and changed.
//
// # Pipeline
//
// Clean runs nine stages in a fixed order: column-name normalization,
// duplicate removal, text normalization, missing-placeholder substitution,
// imputation, constant-column detection, high-cardinality detection,
// outlier detection and low-cardinality categorical conversion. Stage
// semantics live in the internal pipeline package; configuration and report
// contracts live in pkg/contracts/domain.
//
// # Configuration
//
// Configurations can be built in code starting from
// domain.DefaultCleanerConfig, or loaded with LoadConfig, which layers an
// optional YAML file and TABCLEAN_* environment variables over the
// defaults. Unknown strategy names and uncoercible constant fill values
// fail construction with a *domain.ConfigurationError; nothing silently
// falls back to a default.
package cleaner

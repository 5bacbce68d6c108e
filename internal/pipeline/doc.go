// Package pipeline implements the nine cleaning stages and their execution
// order.
//
// # Architecture
//
// Each stage implements the Stage interface (ID, Name, Execute) and runs
// against a shared State holding the working dataset copy, the immutable
// configuration, the report under construction and the run logger. Run
// executes the stages in a fixed order:
//
//  1. Column-name normalization
//  2. Duplicate-row removal
//  3. Text normalization
//  4. Missing-value placeholder substitution
//  5. Missing-value imputation
//  6. Constant-column detection
//  7. High-cardinality detection
//  8. Outlier detection
//  9. Low-cardinality categorical conversion
//
// Detection stages (6-8) are read-only over the dataset; they only record
// findings. Stages log through the state logger; with logging disabled the
// pipeline runs silently and produces byte-identical results.
package pipeline

// Package domain defines the data contracts shared by the cleaning
// pipeline and its consumers: the dataset model, the cleaner configuration
// and the diagnostic report.
//
// # Data model
//
// A Dataset is an ordered collection of equally sized Columns. Each cell is
// a Value, a small sum type over numbers, text and missing markers. Every
// column carries a ColumnKind tag (numeric, text or categorical) inferred
// once at construction; the cleaning stages dispatch on this tag rather
// than inspecting cell types at runtime.
//
// # Report
//
// Report is a typed record of one cleaning run. Each finding kind has its
// own field, absent (zero) when the condition was not detected, so callers
// get compile-time shape guarantees instead of a loosely typed map.
package domain

// Package textutil normalizes column names and text cell values.
package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nonAlnum matches runs of characters outside [a-z0-9] after lowercasing.
var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// lower is a language-neutral Unicode lowercaser.
var lower = cases.Lower(language.Und)

// NormalizeName converts a column name to a snake_case identifier:
// surrounding whitespace is trimmed, the name is lowercased, every run of
// characters outside [a-z0-9] collapses to a single underscore, and leading
// and trailing underscores are stripped.
//
//	"  First Name! " -> "first_name"
//	"Revenue($)"     -> "revenue"
func NormalizeName(name string) string {
	s := lower.String(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// NormalizeText trims surrounding whitespace and lowercases a text cell.
func NormalizeText(s string) string {
	return lower.String(strings.TrimSpace(s))
}

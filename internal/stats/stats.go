// Package stats provides the small set of descriptive statistics the
// cleaning pipeline needs: mean, median, interpolated quantiles and modes
// with deterministic tie-breaking.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of xs. The second result is false when
// xs is empty: an empty sample has no mean.
func Mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}

// Quantile returns the p-quantile of xs using linear interpolation between
// the two nearest order statistics. The second result is false when xs is
// empty.
func Quantile(xs []float64, p float64) (float64, bool) {
	n := len(xs)
	if n == 0 {
		return 0, false
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0], true
	}
	if p >= 1 {
		return sorted[n-1], true
	}

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo], true
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo]), true
}

// Median returns the 0.5-quantile of xs.
func Median(xs []float64) (float64, bool) {
	return Quantile(xs, 0.5)
}

// ModeStrings returns the most frequent string in xs. Ties break to the
// lowest value in sort order so the result is deterministic. The second
// result is false when xs is empty.
func ModeStrings(xs []string) (string, bool) {
	if len(xs) == 0 {
		return "", false
	}
	counts := make(map[string]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	best := ""
	bestCount := -1
	for x, n := range counts {
		if n > bestCount || (n == bestCount && x < best) {
			best = x
			bestCount = n
		}
	}
	return best, true
}

// ModeFloats returns the most frequent value in xs, ties breaking to the
// smallest value. The second result is false when xs is empty.
func ModeFloats(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	counts := make(map[float64]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	best := 0.0
	bestCount := -1
	for x, n := range counts {
		if n > bestCount || (n == bestCount && x < best) {
			best = x
			bestCount = n
		}
	}
	return best, true
}

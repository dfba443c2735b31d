// internal/scoring/numeric.go
package scoring

import (
	"math"
	"strings"
)

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundScore rounds half up, so 82.5 becomes 83.
func roundScore(v float64) int {
	return int(math.Floor(v + 0.5))
}

// toScore turns a 0-1 fraction into a clamped integer score.
func toScore(fraction float64) int {
	return roundScore(clamp(fraction*100, 0, 100))
}

// orOne guards a denominator against zero.
func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// lookup reads key from table, falling back to def for unknown keys.
func lookup(table map[string]float64, key string, def float64) float64 {
	if v, ok := table[normalize(key)]; ok {
		return v
	}
	return def
}

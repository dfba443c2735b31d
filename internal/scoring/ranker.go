// internal/scoring/ranker.go
package scoring

import (
	"sort"

	"franchise-fit/internal/models"
)

// Weights assigns each dimension its share of the composite. Shares sum to 1.
type Weights struct {
	Financial  float64
	Category   float64
	Style      float64
	Risk       float64
	Experience float64
	Growth     float64
}

var (
	FullWeights = Weights{
		Financial:  0.25,
		Category:   0.20,
		Style:      0.15,
		Risk:       0.15,
		Experience: 0.15,
		Growth:     0.10,
	}

	ClassicWeights = Weights{
		Financial: 0.35,
		Category:  0.25,
		Style:     0.20,
		Risk:      0.20,
	}
)

// WeightsFor returns the fixed weights of a concrete model.
func WeightsFor(m Model) Weights {
	if m == ModelFull {
		return FullWeights
	}
	return ClassicWeights
}

// Composite applies w to the rounded dimension scores and clamps the result
// to [1,100] so every franchise stays orderable.
func Composite(b models.ScoreBreakdown, w Weights) int {
	sum := float64(b.Financial)*w.Financial +
		float64(b.Category)*w.Category +
		float64(b.Style)*w.Style +
		float64(b.Risk)*w.Risk +
		float64(b.Experience)*w.Experience +
		float64(b.Growth)*w.Growth
	return roundScore(clamp(sum, 1, 100))
}

// rank sorts scored franchises by score, highest first. Ties keep catalog
// order.
func rank(scored []models.ScoredFranchise) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}

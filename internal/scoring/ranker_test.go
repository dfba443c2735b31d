// internal/scoring/ranker_test.go
package scoring

import (
	"testing"

	"franchise-fit/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWeightsSumToOne(t *testing.T) {
	for _, m := range []Model{ModelClassic, ModelFull} {
		w := WeightsFor(m)
		sum := w.Financial + w.Category + w.Style + w.Risk + w.Experience + w.Growth
		assert.InDelta(t, 1.0, sum, 1e-9, "model %s", m)
	}
}

func TestComposite(t *testing.T) {
	tests := []struct {
		name      string
		breakdown models.ScoreBreakdown
		weights   Weights
		expected  int
	}{
		{
			name:      "classic ignores experience and growth",
			breakdown: models.ScoreBreakdown{Financial: 100, Category: 100, Style: 100, Risk: 100, Experience: 50, Growth: 50},
			weights:   ClassicWeights,
			expected:  100,
		},
		{
			name:      "full weights",
			breakdown: models.ScoreBreakdown{Financial: 80, Category: 60, Style: 40, Risk: 20, Experience: 100, Growth: 0},
			weights:   FullWeights,
			expected:  56,
		},
		{
			name:      "floor is one",
			breakdown: models.ScoreBreakdown{},
			weights:   FullWeights,
			expected:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Composite(tt.breakdown, tt.weights))
		})
	}
}

func TestRank_StableOnTies(t *testing.T) {
	scored := []models.ScoredFranchise{
		{Franchise: models.Franchise{Slug: "a"}, Score: 40},
		{Franchise: models.Franchise{Slug: "b"}, Score: 70},
		{Franchise: models.Franchise{Slug: "c"}, Score: 40},
		{Franchise: models.Franchise{Slug: "d"}, Score: 70},
	}

	rank(scored)

	var slugs []string
	for _, s := range scored {
		slugs = append(slugs, s.Slug)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, slugs)
}

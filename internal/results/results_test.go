// internal/results/results_test.go
package results

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"franchise-fit/internal/models"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{100, TierExcellent},
		{90, TierExcellent},
		{89, TierStrong},
		{80, TierStrong},
		{79, TierFair},
		{60, TierFair},
		{59, TierLow},
		{1, TierLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.score), "score %d", tt.score)
	}
}

func TestFormatK(t *testing.T) {
	assert.Equal(t, "$0K", FormatK(0))
	assert.Equal(t, "$95K", FormatK(95000))
	assert.Equal(t, "$250K", FormatK(249600))
	assert.Equal(t, "$1.0M", FormatK(1_000_000))
	assert.Equal(t, "$1.2M", FormatK(1_200_000))
	assert.Equal(t, "$60K-$120K", FormatRange(60000, 120000))
}

func TestFormatGrowth(t *testing.T) {
	assert.Equal(t, "+7.5%", FormatGrowth(7.5))
	assert.Equal(t, "+0.0%", FormatGrowth(0))
	assert.Equal(t, "-2.3%", FormatGrowth(-2.25001))
}

func TestTop(t *testing.T) {
	scored := make([]models.ScoredFranchise, 20)
	assert.Len(t, Top(scored, 0), DefaultTopN)
	assert.Len(t, Top(scored, 3), 3)
	assert.Len(t, Top(scored[:2], 5), 2)
	assert.Empty(t, Top(nil, 5))
}

func TestClassicProfile(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, "100-200", p.Budget)
	assert.Equal(t, "owner-operator", p.Style)
	assert.Equal(t, "moderate", p.RiskTolerance)
	assert.Equal(t, "6", p.Timeline)
	assert.Empty(t, p.Interests)
	assert.False(t, p.HasExtendedFields())

	p = ClassicProfile("500+", "Fitness, Education,", "semi-absentee", "aggressive")
	assert.Equal(t, "500+", p.Budget)
	assert.Equal(t, []string{"Fitness", "Education"}, p.Interests)
	assert.Equal(t, "aggressive", p.RiskTolerance)
}

func TestSummarize(t *testing.T) {
	scored := []models.ScoredFranchise{
		{Franchise: models.Franchise{Slug: "a", Name: "A", InvestmentMin: 100000, InvestmentMax: 250000}, Score: 91},
		{Franchise: models.Franchise{Slug: "b", Name: "B", InvestmentMin: 50000, InvestmentMax: 1500000}, Score: 64},
	}

	got := Summarize(scored)
	assert.Equal(t, []Summary{
		{Rank: 1, Slug: "a", Name: "A", Score: 91, Tier: TierExcellent, Investment: "$100K-$250K"},
		{Rank: 2, Slug: "b", Name: "B", Score: 64, Tier: TierFair, Investment: "$50K-$1.5M"},
	}, got)
}

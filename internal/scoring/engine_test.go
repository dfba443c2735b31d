// internal/scoring/engine_test.go
package scoring

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"franchise-fit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Fixtures
// ==========================

func shortFormProfile() models.UserProfile {
	return models.UserProfile{
		Budget:        "100-200",
		Interests:     []string{"Food & Beverage"},
		Style:         "owner-operator",
		RiskTolerance: "moderate",
		Timeline:      "6",
	}
}

func fullProfile() models.UserProfile {
	p := shortFormProfile()
	p.NetWorth = "500-1m"
	p.LiquidCapital = "100-250"
	p.CreditScore = "750+"
	p.ManagementYears = "5-10"
	p.PriorOwnership = "no"
	p.HoursYear1 = "50+"
	p.HoursYear2 = "40-50"
	p.CommitmentLevel = "active"
	return p
}

func sampleCatalog() []models.Franchise {
	return []models.Franchise{
		newFranchise("burger-barn", 150_000, 250_000, "owner-operator", "food-service"),
		newFranchise("tidy-homes", 60_000, 90_000, "home-based", "mobile"),
		establishedFranchise(),
		youngFranchise(),
		newFranchise("burger-barn-2", 150_000, 250_000, "owner-operator", "food-service"),
		newFranchise("mega-gym", 900_000, 1_800_000, "manager-run", "storefront"),
	}
}

// ==========================
// Engine
// ==========================

func TestNew_Defaults(t *testing.T) {
	e := New()
	assert.Equal(t, time.Now().Year(), e.CurrentYear())
	assert.Equal(t, ModelClassic, e.ModelFor(shortFormProfile()))
	assert.Equal(t, ModelFull, e.ModelFor(fullProfile()))
}

func TestWithClock(t *testing.T) {
	e := New(WithClock(func() time.Time {
		return time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)
	}))
	assert.Equal(t, 2030, e.CurrentYear())
}

func TestWithModel_OverridesAuto(t *testing.T) {
	e := New(WithModel(ModelFull), WithCurrentYear(testYear))
	assert.Equal(t, ModelFull, e.ModelFor(shortFormProfile()))

	e = New(WithModel(ModelClassic), WithCurrentYear(testYear))
	b := e.ScoreOne(fullProfile(), establishedFranchise())
	assert.Equal(t, 50, b.Experience)
	assert.Equal(t, 50, b.Growth)
}

func TestParseModel(t *testing.T) {
	tests := []struct {
		in       string
		expected Model
		wantErr  bool
	}{
		{"", ModelAuto, false},
		{"auto", ModelAuto, false},
		{" Classic ", ModelClassic, false},
		{"FULL", ModelFull, false},
		{"weighted", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseModel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestScore_CompositeMatchesBreakdown(t *testing.T) {
	e := New(WithCurrentYear(testYear))

	for _, p := range []models.UserProfile{shortFormProfile(), fullProfile()} {
		m := e.ModelFor(p)
		for _, f := range sampleCatalog() {
			s := e.Score(p, f)
			assert.Equal(t, Composite(s.ScoreBreakdown, WeightsFor(m)), s.Score, f.Slug)
			assert.Equal(t, string(m), s.Model)
			assert.Equal(t, e.ScoreOne(p, f), s.ScoreBreakdown)
		}
	}
}

func TestScore_EmptyProfileIsNeutral(t *testing.T) {
	e := New(WithCurrentYear(testYear))
	b := e.ScoreOne(models.UserProfile{}, newFranchise("any", 100_000, 200_000))

	assert.Equal(t, 50, b.Category)
	assert.Equal(t, 50, b.Style)
	assert.Equal(t, 50, b.Risk)
	assert.Equal(t, 50, b.Experience)
	assert.Equal(t, 50, b.Growth)
}

// ==========================
// ScoreAll
// ==========================

func TestScoreAll_SortedAndComplete(t *testing.T) {
	e := New(WithCurrentYear(testYear))
	catalog := sampleCatalog()

	ranked := e.ScoreAll(shortFormProfile(), catalog)

	require.Len(t, ranked, len(catalog))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	seen := map[string]bool{}
	for _, s := range ranked {
		seen[s.Slug] = true
	}
	assert.Len(t, seen, len(catalog))
}

func TestScoreAll_TiesKeepCatalogOrder(t *testing.T) {
	e := New(WithCurrentYear(testYear))
	ranked := e.ScoreAll(shortFormProfile(), sampleCatalog())

	first, second := -1, -1
	for i, s := range ranked {
		switch s.Slug {
		case "burger-barn":
			first = i
		case "burger-barn-2":
			second = i
		}
	}
	require.NotEqual(t, -1, first)
	assert.Equal(t, ranked[first].Score, ranked[second].Score)
	assert.Less(t, first, second)
}

func TestScoreAll_DoesNotMutateCatalog(t *testing.T) {
	e := New(WithCurrentYear(testYear))
	catalog := sampleCatalog()
	before, err := json.Marshal(catalog)
	require.NoError(t, err)

	e.ScoreAll(fullProfile(), catalog)

	after, err := json.Marshal(catalog)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestScoreAll_Deterministic(t *testing.T) {
	e := New(WithCurrentYear(testYear))

	first, err := json.Marshal(e.ScoreAll(fullProfile(), sampleCatalog()))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(e.ScoreAll(fullProfile(), sampleCatalog()))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestScoreAll_EmptyCatalog(t *testing.T) {
	ranked := New(WithCurrentYear(testYear)).ScoreAll(fullProfile(), nil)
	assert.Empty(t, ranked)
}

// ==========================
// Bounds
// ==========================

func TestScoreBounds(t *testing.T) {
	budgets := []string{"", "under-50", "100-200", "500+", "nonsense"}
	tolerances := []string{"", "conservative", "moderate", "aggressive"}
	styles := []string{"", "owner-operator", "semi-absentee", "multi-unit", "home-based"}

	e := New(WithCurrentYear(testYear))
	for _, budget := range budgets {
		for _, tolerance := range tolerances {
			for _, style := range styles {
				for _, extended := range []bool{false, true} {
					p := models.UserProfile{Budget: budget, RiskTolerance: tolerance, Style: style}
					if extended {
						p.NetWorth = "250-500"
						p.PassiveInvestor = "yes"
						p.UnitPreference = "both"
					}
					for _, f := range sampleCatalog() {
						name := fmt.Sprintf("%s/%s/%s/%v/%s", budget, tolerance, style, extended, f.Slug)
						s := e.Score(p, f)
						for _, v := range []int{s.ScoreBreakdown.Financial, s.ScoreBreakdown.Category, s.ScoreBreakdown.Style,
							s.ScoreBreakdown.Risk, s.ScoreBreakdown.Experience, s.ScoreBreakdown.Growth} {
							assert.GreaterOrEqual(t, v, 0, name)
							assert.LessOrEqual(t, v, 100, name)
						}
						assert.GreaterOrEqual(t, s.Score, 1, name)
						assert.LessOrEqual(t, s.Score, 100, name)
					}
				}
			}
		}
	}
}

func TestPackageLevelHelpers(t *testing.T) {
	p := shortFormProfile()
	f := newFranchise("burger-barn", 150_000, 250_000, "owner-operator")

	assert.Equal(t, New().ScoreOne(p, f), ScoreOne(p, f))
	assert.Len(t, ScoreAll(p, sampleCatalog()), len(sampleCatalog()))
}

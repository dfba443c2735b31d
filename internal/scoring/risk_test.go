// internal/scoring/risk_test.go
package scoring

import (
	"testing"

	"franchise-fit/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreRisk(t *testing.T) {
	young := youngFranchise()
	established := establishedFranchise()

	tests := []struct {
		name      string
		tolerance string
		franchise models.Franchise
		expected  int
	}{
		{"conservative young", "conservative", young, 30},
		{"moderate young", "moderate", young, 28},
		{"aggressive young", "aggressive", young, 44},
		{"conservative established", "conservative", established, 79},
		{"moderate established", "moderate", established, 82},
		{"aggressive established", "aggressive", established, 88},
		{"tolerance ignores case", " Conservative ", established, 79},
		{"unknown tolerance", "yolo", established, 50},
		{"no tolerance", "", young, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.UserProfile{RiskTolerance: tt.tolerance}
			assert.Equal(t, tt.expected, scoreRisk(&p, &tt.franchise, testYear))
		})
	}
}

func TestScoreRisk_AggressiveBuyerAlwaysGetsBaseline(t *testing.T) {
	p := models.UserProfile{RiskTolerance: "aggressive"}
	f := models.Franchise{UnitCount: 5000, YearFounded: testYear}

	assert.GreaterOrEqual(t, scoreRisk(&p, &f, testYear), roundScore(aggressiveBaseline*100))
}

func TestScoreRiskFull(t *testing.T) {
	p := models.UserProfile{
		RiskTolerance:        "conservative",
		ExitStrategy:         "long-term",
		LitigationTolerance:  "yes",
		ClosedUnitsTolerance: "yes",
		PassiveInvestor:      "no",
		TimelineToOpen:       "within-3",
	}
	f := establishedFranchise()

	assert.Equal(t, 86, scoreRiskFull(&p, &f, testYear))
}

func TestToleranceFit(t *testing.T) {
	tests := []struct {
		name       string
		litigation string
		closed     string
		units      int
		closures   int
		expected   float64
	}{
		{"refuses litigation with few closures", "no", "", 400, 5, 1.0},
		{"refuses litigation with many closures", "no", "", 400, 20, 0.5},
		{"refuses closures with heavy churn", "", "no", 100, 50, 0},
		{"accepts both", "yes", "yes", 400, 20, 0.8},
		{"accepts only litigation", "yes", "", 400, 20, neutral},
		{"no answers", "", "", 400, 20, neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.UserProfile{LitigationTolerance: tt.litigation, ClosedUnitsTolerance: tt.closed}
			f := models.Franchise{UnitCount: tt.units, UnitsClosed: tt.closures}
			assert.InDelta(t, tt.expected, toleranceFit(&p, &f), 1e-9)
		})
	}
}

func TestPassiveFit(t *testing.T) {
	managed := models.Franchise{Tags: []string{"manager-run"}}
	operated := models.Franchise{Tags: []string{"owner-operator"}}

	assert.Equal(t, 1.0, passiveFit(&models.UserProfile{PassiveInvestor: "yes"}, &managed))
	assert.Equal(t, 0.2, passiveFit(&models.UserProfile{PassiveInvestor: "yes"}, &operated))
	assert.Equal(t, 0.5, passiveFit(&models.UserProfile{PassiveInvestor: "no"}, &managed))
	assert.Equal(t, 0.8, passiveFit(&models.UserProfile{PassiveInvestor: "no"}, &operated))
	assert.Equal(t, neutral, passiveFit(&models.UserProfile{}, &operated))
}

// internal/scoring/breakdown.go
package scoring

import (
	"fmt"
	"strings"

	"franchise-fit/internal/models"
)

// Model selects which set of dimensions drives the composite score.
type Model string

const (
	// ModelAuto picks ModelFull when the profile answers anything beyond the
	// short form and ModelClassic otherwise.
	ModelAuto Model = "auto"
	// ModelClassic scores financial, category, style and risk.
	ModelClassic Model = "classic"
	// ModelFull scores all six dimensions.
	ModelFull Model = "full"
)

// ParseModel accepts "auto", "classic" or "full". Empty means auto.
func ParseModel(s string) (Model, error) {
	switch m := Model(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ModelAuto:
		return ModelAuto, nil
	case ModelClassic, ModelFull:
		return m, nil
	default:
		return "", fmt.Errorf("unknown scoring model %q", s)
	}
}

// resolve returns the concrete model used for p.
func (m Model) resolve(p *models.UserProfile) Model {
	switch m {
	case ModelClassic, ModelFull:
		return m
	default:
		if p.HasExtendedFields() {
			return ModelFull
		}
		return ModelClassic
	}
}

// computeBreakdown runs every scorer of the resolved model. Dimensions that
// the classic model does not score are reported as the neutral 50.
func computeBreakdown(m Model, p *models.UserProfile, f *models.Franchise, currentYear int) models.ScoreBreakdown {
	if m == ModelFull {
		return models.ScoreBreakdown{
			Financial:  scoreFinancialFull(p, f),
			Category:   scoreCategoryFull(p, f),
			Style:      scoreStyleFull(p, f),
			Risk:       scoreRiskFull(p, f, currentYear),
			Experience: scoreExperience(p, f),
			Growth:     scoreGrowth(p, f),
		}
	}
	return models.ScoreBreakdown{
		Financial:  scoreFinancial(p, f),
		Category:   scoreCategory(p, f),
		Style:      scoreStyle(p, f),
		Risk:       scoreRisk(p, f, currentYear),
		Experience: 50,
		Growth:     50,
	}
}

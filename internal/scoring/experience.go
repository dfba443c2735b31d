// internal/scoring/experience.go
package scoring

import "franchise-fit/internal/models"

// isDemanding marks franchises that demand more from an owner: a large
// investment or a large system.
func isDemanding(f *models.Franchise) bool {
	return f.InvestmentMid() >= 350_000 || f.UnitCount >= 500
}

func scoreExperience(p *models.UserProfile, f *models.Franchise) int {
	if p.ManagementYears == "" && p.PriorOwnership == "" && p.Education == "" &&
		p.MarketingLevel == "" && p.OperationsLevel == "" && p.FinanceLevel == "" {
		return 50
	}

	demanding := isDemanding(f)

	management := neutral
	if p.ManagementYears != "" {
		v := lookup(managementYearsScores, p.ManagementYears, neutral)
		management = scaleForDemand(v, demanding, 0.4)
	}

	ownership := neutral
	switch normalize(p.PriorOwnership) {
	case "yes":
		ownership = 0.85
		if demanding {
			ownership = 1.0
		}
	case "no":
		ownership = 0.7
		if demanding {
			ownership = 0.4
		}
	}

	skills := neutral
	var sum float64
	var n int
	for _, level := range []string{p.MarketingLevel, p.OperationsLevel, p.FinanceLevel} {
		if level == "" {
			continue
		}
		sum += lookup(skillLevels, level, neutral)
		n++
	}
	if n > 0 {
		skills = scaleForDemand(sum/float64(n), demanding, 0.3)
	}

	education := lookup(educationScores, p.Education, neutral)

	if professionalCategories[normalize(f.Category)] {
		return toScore(management*0.30 + ownership*0.20 + skills*0.25 + education*0.25)
	}
	return toScore(management*0.30 + ownership*0.25 + skills*0.30 + education*0.15)
}

// scaleForDemand keeps v as-is for demanding franchises and lifts it
// toward 1 for simple ones, starting from floor.
func scaleForDemand(v float64, demanding bool, floor float64) float64 {
	if demanding {
		return v
	}
	return clamp01(floor + (1-floor)*v)
}

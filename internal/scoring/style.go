// internal/scoring/style.go
package scoring

import "franchise-fit/internal/models"

const (
	levelLow     = 0.25
	levelNeutral = 0.5
	levelHigh    = 1.0
)

func scoreStyle(p *models.UserProfile, f *models.Franchise) int {
	style := normalize(p.Style)
	desired := styleTags[style]
	if len(desired) == 0 {
		return 50
	}

	if f.HasTag(desired...) {
		return 100
	}

	for _, a := range styleAffinities {
		if a.style == style && f.HasTag(a.tags...) {
			return a.score
		}
	}
	return 30
}

func scoreStyleFull(p *models.UserProfile, f *models.Franchise) int {
	style := float64(scoreStyle(p, f)) / 100
	raw := style*0.35 +
		dayToDayFit(p, f)*0.20 +
		workLocationFit(p, f)*0.20 +
		hoursFit(p, f)*0.15 +
		employeeFit(p, f)*0.10
	return toScore(raw)
}

// tagLevel maps tag presence to a high/low/neutral level. High wins when a
// franchise carries both sets.
func tagLevel(f *models.Franchise, high, low []string) float64 {
	switch {
	case len(high) > 0 && f.HasTag(high...):
		return levelHigh
	case len(low) > 0 && f.HasTag(low...):
		return levelLow
	default:
		return levelNeutral
	}
}

func dayToDayFit(p *models.UserProfile, f *models.Franchise) float64 {
	switch normalize(p.DayToDay) {
	case "myself":
		return tagLevel(f, handsOnTags, absenteeTags)
	case "gm-operator":
		return tagLevel(f, absenteeTags, handsOnTags)
	case "spouse-family":
		return tagLevel(f, familyTags, nil)
	default:
		return levelNeutral
	}
}

func workLocationFit(p *models.UserProfile, f *models.Franchise) float64 {
	switch normalize(p.WorkLocation) {
	case "home":
		return tagLevel(f, homeBasedTags, storefrontTags)
	case "office":
		return tagLevel(f, officeTags, []string{"mobile"})
	case "field":
		return tagLevel(f, fieldTags, storefrontTags)
	default:
		return levelNeutral
	}
}

// hoursFit rewards long first-year hours for hands-on systems and short
// hours for everything else.
func hoursFit(p *models.UserProfile, f *models.Franchise) float64 {
	hours := normalize(p.HoursYear1)
	if hours == "" {
		return levelNeutral
	}

	if f.HasTag(handsOnTags...) {
		switch hours {
		case "50+":
			return levelHigh
		case "under-40":
			return levelLow
		default:
			return levelNeutral
		}
	}

	if hours == "under-40" {
		return levelHigh
	}
	return levelNeutral
}

func employeeFit(p *models.UserProfile, f *models.Franchise) float64 {
	switch normalize(p.EmployeeInterest) {
	case "yes":
		return tagLevel(f, staffTags, soloTags)
	case "no":
		return tagLevel(f, soloTags, staffTags)
	default:
		return levelNeutral
	}
}

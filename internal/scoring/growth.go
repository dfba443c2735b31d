// internal/scoring/growth.go
package scoring

import "franchise-fit/internal/models"

func scoreGrowth(p *models.UserProfile, f *models.Franchise) int {
	hoursGiven := p.HoursYear1 != "" && p.HoursYear2 != ""
	if p.UnitPreference == "" && p.LeadershipStyle == "" && p.CommitmentLevel == "" &&
		p.ConsideringDuration == "" && !hoursGiven {
		return 50
	}

	scalable := f.HasTag(scalableTags...)

	raw := unitPreferenceFit(p.UnitPreference, scalable)*0.30 +
		hoursTrendFit(p.HoursYear1, p.HoursYear2, scalable)*0.15 +
		leadershipFit(p.LeadershipStyle, scalable)*0.15 +
		lookup(commitmentScores, p.CommitmentLevel, neutral)*0.25 +
		lookup(durationScores, p.ConsideringDuration, neutral)*0.15
	return toScore(raw)
}

func unitPreferenceFit(pref string, scalable bool) float64 {
	switch normalize(pref) {
	case "multiple":
		return pick(scalable, 1.0, 0.3)
	case "both":
		return pick(scalable, 0.85, 0.6)
	case "single":
		return pick(scalable, 0.6, 0.9)
	default:
		return neutral
	}
}

// hoursTrendFit reads falling hours between year one and year two as a plan
// to delegate, which suits systems built to scale.
func hoursTrendFit(year1, year2 string, scalable bool) float64 {
	r1, ok1 := hoursRank[normalize(year1)]
	r2, ok2 := hoursRank[normalize(year2)]
	if !ok1 || !ok2 {
		return neutral
	}

	switch {
	case r2 < r1:
		return pick(scalable, 1.0, 0.6)
	case r2 == r1:
		return 0.6
	default:
		return pick(scalable, 0.3, 0.5)
	}
}

func leadershipFit(style string, scalable bool) float64 {
	s := normalize(style)
	switch {
	case growthLeadership[s]:
		return pick(scalable, 1.0, 0.6)
	case controlLeadership[s]:
		return pick(scalable, 0.5, 0.75)
	case s == "laissez-faire":
		return pick(scalable, 0.55, 0.4)
	default:
		return neutral
	}
}

func pick(cond bool, yes, no float64) float64 {
	if cond {
		return yes
	}
	return no
}

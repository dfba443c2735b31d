// internal/results/results.go
package results

import (
	"fmt"
	"math"
	"strings"

	"franchise-fit/internal/models"
)

const DefaultTopN = 15

type Tier string

const (
	TierExcellent Tier = "excellent"
	TierStrong    Tier = "strong"
	TierFair      Tier = "fair"
	TierLow       Tier = "low"
)

// TierFor buckets a 0-100 score for display.
func TierFor(score int) Tier {
	switch {
	case score >= 90:
		return TierExcellent
	case score >= 80:
		return TierStrong
	case score >= 60:
		return TierFair
	default:
		return TierLow
	}
}

// FormatK renders a dollar amount as $120K or $1.5M.
func FormatK(n int) string {
	if n >= 1_000_000 {
		return fmt.Sprintf("$%.1fM", float64(n)/1_000_000)
	}
	return fmt.Sprintf("$%dK", int(math.Floor(float64(n)/1000+0.5)))
}

// FormatRange renders an investment range, e.g. "$100K-$250K".
func FormatRange(lo, hi int) string {
	return FormatK(lo) + "-" + FormatK(hi)
}

// FormatGrowth renders a growth rate with an explicit sign and one decimal.
func FormatGrowth(rate float64) string {
	if rate >= 0 {
		return fmt.Sprintf("+%.1f%%", rate)
	}
	return fmt.Sprintf("%.1f%%", rate)
}

// Top returns at most n leading entries; n <= 0 means DefaultTopN.
func Top(scored []models.ScoredFranchise, n int) []models.ScoredFranchise {
	if n <= 0 {
		n = DefaultTopN
	}
	if len(scored) < n {
		n = len(scored)
	}
	return scored[:n]
}

// Defaults applied to a classic profile built from browse parameters.
const (
	DefaultBudget        = "100-200"
	DefaultStyle         = "owner-operator"
	DefaultRiskTolerance = "moderate"
	DefaultTimeline      = "6"
)

// ClassicProfile builds a short-form profile from browse parameters,
// filling the documented defaults for anything left empty. interests is a
// comma-separated list.
func ClassicProfile(budget, interests, style, risk string) models.UserProfile {
	p := models.UserProfile{
		Budget:        orDefault(budget, DefaultBudget),
		Style:         orDefault(style, DefaultStyle),
		RiskTolerance: orDefault(risk, DefaultRiskTolerance),
		Timeline:      DefaultTimeline,
	}
	for _, i := range strings.Split(interests, ",") {
		if i = strings.TrimSpace(i); i != "" {
			p.Interests = append(p.Interests, i)
		}
	}
	return p
}

// DefaultProfile is ClassicProfile with every parameter empty.
func DefaultProfile() models.UserProfile {
	return ClassicProfile("", "", "", "")
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// Summary is one line of a match report.
type Summary struct {
	Rank       int    `json:"rank"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Score      int    `json:"score"`
	Tier       Tier   `json:"tier"`
	Investment string `json:"investment"`
}

// Summarize flattens ranked results for reports.
func Summarize(scored []models.ScoredFranchise) []Summary {
	out := make([]Summary, 0, len(scored))
	for i, s := range scored {
		out = append(out, Summary{
			Rank:       i + 1,
			Slug:       s.Slug,
			Name:       s.Name,
			Category:   s.Category,
			Score:      s.Score,
			Tier:       TierFor(s.Score),
			Investment: FormatRange(s.InvestmentMin, s.InvestmentMax),
		})
	}
	return out
}

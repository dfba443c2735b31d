// internal/scoring/financial.go
package scoring

import (
	"math"

	"franchise-fit/internal/models"
)

// budgetFit scores the overlap between the buyer's budget bucket and the
// franchise investment range on a 0-1 scale.
func budgetFit(p *models.UserProfile, f *models.Franchise) float64 {
	budget := ParseRange(p.Budget, BudgetRanges)
	fMin, fMax := float64(f.InvestmentMin), float64(f.InvestmentMax)

	overlapMin := math.Max(budget.Min, fMin)
	overlapMax := math.Min(budget.Max, fMax)

	if overlapMin <= overlapMax {
		overlap := overlapMax - overlapMin
		coverage := overlap / orOne(fMax-fMin)
		utilization := overlap / orOne(budget.Span())
		return math.Min(1, 0.7*coverage+0.3*utilization)
	}

	var gap float64
	if fMin > budget.Max {
		gap = fMin - budget.Max
	} else {
		gap = budget.Min - fMax
	}
	return gapPenalty(gap / orOne(budget.Mid()))
}

// gapPenalty never returns zero: a distant budget can still be redeemed by
// the other dimensions.
func gapPenalty(gapRatio float64) float64 {
	switch {
	case gapRatio <= 0.10:
		return 0.60
	case gapRatio <= 0.25:
		return 0.40
	case gapRatio <= 0.50:
		return 0.20
	case gapRatio <= 1.00:
		return 0.08
	default:
		return 0.02
	}
}

func scoreFinancial(p *models.UserProfile, f *models.Franchise) int {
	return toScore(budgetFit(p, f))
}

func scoreFinancialFull(p *models.UserProfile, f *models.Franchise) int {
	budget := budgetFit(p, f)

	netWorth := neutral
	if p.NetWorth != "" {
		nw := ParseRange(p.NetWorth, NetWorthRanges)
		netWorth = clamp01(nw.Mid() / orOne(f.InvestmentMid()) / 3)
	}

	liquid := neutral
	if p.LiquidCapital != "" {
		lc := ParseRange(p.LiquidCapital, LiquidCapitalRanges)
		liquid = clamp01(lc.Mid() / orOne(float64(f.FranchiseFee)) / 2)
	}

	credit := lookup(creditFactors, p.CreditScore, unknownCredit)

	var bonus float64
	switch normalize(p.FinancingPreference) {
	case "sba":
		if credit >= 0.6 {
			bonus = 0.05
		}
	case "cash":
		if budget >= 0.8 {
			bonus = 0.08
		}
	}

	return toScore(budget*0.45 + netWorth*0.20 + liquid*0.20 + credit*0.15 + bonus)
}

// internal/scoring/risk.go
package scoring

import "franchise-fit/internal/models"

// aggressiveBaseline is a fixed term in the aggressive blend that depends on
// no input. It stands in for an unmodelled signal and is kept so results stay
// stable across versions.
const aggressiveBaseline = 0.8 * 0.3

type riskSignals struct {
	investment float64
	proven     float64
	revenue    float64
	maturity   float64
}

func newRiskSignals(f *models.Franchise, currentYear int) riskSignals {
	return riskSignals{
		investment: clamp01(f.InvestmentMid() / 500_000),
		proven:     clamp01(float64(f.UnitCount) / 800),
		revenue:    clamp01(float64(f.Revenue()) / 1_500_000),
		maturity:   clamp01(float64(currentYear-f.YearFounded) / 30),
	}
}

func (s riskSignals) trackRecord() float64 {
	return s.proven*0.7 + s.maturity*0.3
}

// coreRisk blends the signals according to the buyer's tolerance.
func coreRisk(tolerance string, s riskSignals) float64 {
	switch normalize(tolerance) {
	case "conservative":
		return (1-s.investment)*0.35 + s.proven*0.4 + s.maturity*0.25
	case "moderate":
		investmentOK := 0.4
		if s.investment < 0.6 {
			investmentOK = 1 - s.investment*0.5
		}
		return investmentOK*0.3 + s.trackRecord()*0.35 + s.revenue*0.35
	case "aggressive":
		upside := 1 - s.proven*0.3
		return s.revenue*0.5 + upside*0.2 + aggressiveBaseline
	default:
		return neutral
	}
}

func scoreRisk(p *models.UserProfile, f *models.Franchise, currentYear int) int {
	return toScore(coreRisk(p.RiskTolerance, newRiskSignals(f, currentYear)))
}

func scoreRiskFull(p *models.UserProfile, f *models.Franchise, currentYear int) int {
	s := newRiskSignals(f, currentYear)
	raw := coreRisk(p.RiskTolerance, s)*0.40 +
		exitFit(p.ExitStrategy, s)*0.15 +
		toleranceFit(p, f)*0.15 +
		passiveFit(p, f)*0.15 +
		timelineFit(p.TimelineToOpen, s)*0.15
	return toScore(raw)
}

func exitFit(strategy string, s riskSignals) float64 {
	switch normalize(strategy) {
	case "growth-exit":
		return s.revenue*0.7 + (1-s.maturity)*0.3
	case "long-term":
		return s.proven*0.5 + s.maturity*0.5
	case "build-sell":
		return s.revenue*0.5 + s.proven*0.5
	default:
		return neutral
	}
}

// toleranceFit penalizes systems with more than five closures in the
// trailing year when the buyer will not accept litigation or closed units.
func toleranceFit(p *models.UserProfile, f *models.Franchise) float64 {
	litigation := normalize(p.LitigationTolerance)
	closed := normalize(p.ClosedUnitsTolerance)

	switch {
	case litigation == "no" || closed == "no":
		if f.UnitsClosed > 5 {
			rate := float64(f.UnitsClosed) / orOne(float64(f.UnitCount))
			return clamp01(1 - rate*10)
		}
		return 1.0
	case litigation == "yes" && closed == "yes":
		return 0.8
	default:
		return neutral
	}
}

func passiveFit(p *models.UserProfile, f *models.Franchise) float64 {
	managerRun := f.HasTag(absenteeTags...)
	switch normalize(p.PassiveInvestor) {
	case "yes":
		if managerRun {
			return 1.0
		}
		return 0.2
	case "no":
		if managerRun {
			return 0.5
		}
		return 0.8
	default:
		return neutral
	}
}

// timelineFit favors proven systems for buyers who want to open quickly.
func timelineFit(timeline string, s riskSignals) float64 {
	switch normalize(timeline) {
	case "within-3":
		return s.trackRecord()
	case "3-6":
		return s.trackRecord()*0.5 + 0.4
	case "6-12", "12+":
		return 0.8
	default:
		return neutral
	}
}

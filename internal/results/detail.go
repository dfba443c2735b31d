// internal/results/detail.go
package results

import (
	"strconv"

	"franchise-fit/internal/models"
)

// Display holds the formatted figures shown for one franchise.
type Display struct {
	Investment   string `json:"investment"`
	FranchiseFee string `json:"franchiseFee"`
	Royalty      string `json:"royalty"`
	AdFund       string `json:"adFund"`
	AvgRevenue   string `json:"avgRevenue"`
	Growth       string `json:"growth"`
}

func Describe(f models.Franchise) Display {
	d := Display{
		Investment:   FormatRange(f.InvestmentMin, f.InvestmentMax),
		FranchiseFee: FormatK(f.FranchiseFee),
		Royalty:      formatPct(f.RoyaltyPct),
		AdFund:       formatPct(f.AdFundPct),
		AvgRevenue:   "N/A",
		Growth:       FormatGrowth(f.GrowthRate()),
	}
	if f.AvgRevenue != nil {
		d.AvgRevenue = FormatK(*f.AvgRevenue) + "/yr"
	}
	return d
}

// AgeYears is the brand age in whole years, 0 when unknown or in the future.
func AgeYears(f models.Franchise, currentYear int) int {
	if f.YearFounded > 0 && currentYear > f.YearFounded {
		return currentYear - f.YearFounded
	}
	return 0
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

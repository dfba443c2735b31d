// internal/models/franchise.go
package models

import "strings"

// Franchise is a catalog record. Records are loaded once and never mutated.
type Franchise struct {
	Slug          string   `json:"slug" yaml:"slug"`
	Name          string   `json:"name" yaml:"name"`
	Category      string   `json:"category" yaml:"category"`
	Description   string   `json:"description" yaml:"description"`
	InvestmentMin int      `json:"investmentMin" yaml:"investmentMin"`
	InvestmentMax int      `json:"investmentMax" yaml:"investmentMax"`
	FranchiseFee  int      `json:"franchiseFee" yaml:"franchiseFee"`
	RoyaltyPct    float64  `json:"royaltyPct" yaml:"royaltyPct"`
	AdFundPct     float64  `json:"adFundPct" yaml:"adFundPct"`
	AvgRevenue    *int     `json:"avgRevenue,omitempty" yaml:"avgRevenue,omitempty"`
	UnitCount     int      `json:"unitCount" yaml:"unitCount"`
	UnitsOpened   int      `json:"unitsOpened" yaml:"unitsOpened"`
	UnitsClosed   int      `json:"unitsClosed" yaml:"unitsClosed"`
	YearFounded   int      `json:"yearFounded" yaml:"yearFounded"`
	Headquarters  string   `json:"headquarters" yaml:"headquarters"`
	Website       string   `json:"website,omitempty" yaml:"website,omitempty"`
	Tags          []string `json:"tags" yaml:"tags"`
}

// InvestmentMid is the midpoint of the investment range.
func (f Franchise) InvestmentMid() float64 {
	return float64(f.InvestmentMin+f.InvestmentMax) / 2
}

// GrowthRate is net unit growth over the trailing year as a percentage of
// the current unit count.
func (f Franchise) GrowthRate() float64 {
	if f.UnitCount == 0 {
		return 0
	}
	return float64(f.UnitsOpened-f.UnitsClosed) / float64(f.UnitCount) * 100
}

// HasTag reports whether the franchise carries any of the given tags,
// ignoring case and surrounding whitespace.
func (f Franchise) HasTag(tags ...string) bool {
	for _, have := range f.Tags {
		h := strings.ToLower(strings.TrimSpace(have))
		for _, want := range tags {
			if h == want {
				return true
			}
		}
	}
	return false
}

// Revenue returns the average unit revenue, or 0 when unknown.
func (f Franchise) Revenue() int {
	if f.AvgRevenue == nil {
		return 0
	}
	return *f.AvgRevenue
}

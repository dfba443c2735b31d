// internal/scoring/fixtures_test.go
package scoring

import "franchise-fit/internal/models"

const testYear = 2026

func intPtr(v int) *int { return &v }

func newFranchise(slug string, min, max int, tags ...string) models.Franchise {
	return models.Franchise{
		Slug:          slug,
		Name:          slug,
		Category:      "Food & Beverage",
		InvestmentMin: min,
		InvestmentMax: max,
		FranchiseFee:  40_000,
		UnitCount:     300,
		YearFounded:   2010,
		Tags:          tags,
	}
}

// youngFranchise is two years old with ten units and no revenue disclosure.
func youngFranchise() models.Franchise {
	f := newFranchise("young-co", 80_000, 120_000)
	f.UnitCount = 10
	f.YearFounded = testYear - 2
	return f
}

// establishedFranchise is large, old and discloses high unit revenue.
func establishedFranchise() models.Franchise {
	f := newFranchise("established-co", 250_000, 350_000)
	f.UnitCount = 1000
	f.YearFounded = 1980
	f.AvgRevenue = intPtr(1_500_000)
	return f
}

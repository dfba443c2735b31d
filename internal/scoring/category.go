// internal/scoring/category.go
package scoring

import (
	"slices"

	"franchise-fit/internal/models"
)

func scoreCategory(p *models.UserProfile, f *models.Franchise) int {
	if len(p.Interests) == 0 {
		return 50
	}

	category := normalize(f.Category)
	for _, interest := range p.Interests {
		if normalize(interest) == category {
			return 100
		}
	}

	for _, interest := range p.Interests {
		in := normalize(interest)
		if slices.Contains(relatedCategories[in], category) || slices.Contains(relatedCategories[category], in) {
			return 65
		}
	}

	return 10
}

// scoreCategoryFull blends the model preference into related and unrelated
// categories only. An exact match stays 100 and no interests stays 50.
func scoreCategoryFull(p *models.UserProfile, f *models.Franchise) int {
	industry := scoreCategory(p, f)
	if industry == 100 || len(p.Interests) == 0 {
		return industry
	}

	var wanted []string
	for _, m := range p.FranchiseModels {
		wanted = append(wanted, modelTags[normalize(m)]...)
	}
	if len(wanted) == 0 {
		return industry
	}

	model := 30
	if f.HasTag(wanted...) {
		model = 100
	}
	return roundScore(0.75*float64(industry) + 0.25*float64(model))
}

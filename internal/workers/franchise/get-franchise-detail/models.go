// internal/workers/franchise/get-franchise-detail/models.go
package getfranchisedetail

import (
	"franchise-fit/internal/models"
	"franchise-fit/internal/results"
)

type Input struct {
	Slug string `json:"slug"`
}

type Output struct {
	Franchise  models.Franchise `json:"franchise"`
	GrowthRate float64          `json:"growthRate"`
	AgeYears   int              `json:"ageYears"`
	Display    results.Display  `json:"display"`
	Source     string           `json:"source"`
}

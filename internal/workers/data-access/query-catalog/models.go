// internal/workers/data-access/query-catalog/models.go
package querycatalog

import (
	"franchise-fit/internal/catalog"
	"franchise-fit/internal/models"
)

// Input accepts the parsedFilters produced by parse-search-filters, or a
// bare filter with explicit pagination.
type Input struct {
	ParsedFilters *ParsedFilters `json:"parsedFilters,omitempty"`
	Filter        catalog.Filter `json:"filter"`
	Pagination    Pagination     `json:"pagination"`
	SortBy        string         `json:"sortBy,omitempty"`
}

type ParsedFilters struct {
	Filter     catalog.Filter `json:"filter"`
	SortBy     string         `json:"sortBy"`
	Pagination Pagination     `json:"pagination"`
}

type Pagination struct {
	From int `json:"from"`
	Size int `json:"size"`
}

type Output struct {
	Franchises []models.Franchise `json:"franchises"`
	TotalHits  int64              `json:"totalHits"`
	MaxScore   float64            `json:"maxScore"`
	Took       int64              `json:"took"` // milliseconds
}

// internal/workers/franchise/parse-search-filters/models.go
package parsesearchfilters

import "franchise-fit/internal/catalog"

// Input carries filters as typed by a user or a form. Recognised keys:
// query (or keywords), category, investment ("min-max") or investmentRange
// ({min, max}), sortBy and pagination ({page, size}).
type Input struct {
	RawFilters map[string]interface{} `json:"rawFilters"`
}

type Output struct {
	ParsedFilters ParsedFilters `json:"parsedFilters"`
	// MatchCount is the number of catalog entries the filter keeps, or -1
	// when no catalog is loaded.
	MatchCount int `json:"matchCount"`
}

type ParsedFilters struct {
	Filter          catalog.Filter           `json:"filter"`
	InvestmentRange *catalog.InvestmentRange `json:"investmentRange,omitempty"`
	SortBy          string                   `json:"sortBy"`
	Pagination      Pagination               `json:"pagination"`
}

type Pagination struct {
	Page int `json:"page"`
	Size int `json:"size"`
	From int `json:"from"`
}

// internal/workers/franchise/parse-search-filters/handler_test.go
package parsesearchfilters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"franchise-fit/internal/catalog"
	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestCatalog(t *testing.T) *catalog.Catalog {
	c, err := catalog.New([]models.Franchise{
		{Slug: "burger-barn", Name: "Burger Barn", Category: "Food & Beverage", InvestmentMin: 250000, InvestmentMax: 600000},
		{Slug: "taco-cart", Name: "Taco Cart", Category: "Food & Beverage", InvestmentMin: 40000, InvestmentMax: 95000},
		{Slug: "tutor-hub", Name: "Tutor Hub", Category: "Education", InvestmentMin: 90000, InvestmentMax: 180000},
	})
	require.NoError(t, err)
	return c
}

func newTestHandler(t *testing.T, withCatalog bool) *Handler {
	var c *catalog.Catalog
	if withCatalog {
		c = createTestCatalog(t)
	}
	return NewHandler(LoadConfig(), c, nil, logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name           string
		rawFilters     map[string]interface{}
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:       "nil filters yield defaults",
			rawFilters: nil,
			validateOutput: func(t *testing.T, out *Output) {
				p := out.ParsedFilters
				assert.Equal(t, catalog.Filter{}, p.Filter)
				assert.Equal(t, "relevance", p.SortBy)
				assert.Equal(t, Pagination{Page: 1, Size: 20, From: 0}, p.Pagination)
				assert.Nil(t, p.InvestmentRange)
				assert.Equal(t, 3, out.MatchCount)
			},
		},
		{
			name: "query, category and investment string",
			rawFilters: map[string]interface{}{
				"keywords":   "  taco ",
				"category":   "food & beverage",
				"investment": "0-100000",
			},
			validateOutput: func(t *testing.T, out *Output) {
				p := out.ParsedFilters
				assert.Equal(t, "taco", p.Filter.Query)
				assert.Equal(t, "Food & Beverage", p.Filter.Category)
				assert.Equal(t, "0-100000", p.Filter.Investment)
				assert.Equal(t, &catalog.InvestmentRange{Min: 0, Max: 100000}, p.InvestmentRange)
				assert.Equal(t, 1, out.MatchCount)
			},
		},
		{
			name: "investment range map with money strings",
			rawFilters: map[string]interface{}{
				"investmentRange": map[string]interface{}{"min": "USD 100,000.00", "max": float64(250000)},
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, "100000-250000", out.ParsedFilters.Filter.Investment)
				assert.Equal(t, 2, out.MatchCount)
			},
		},
		{
			name: "pagination is capped and offset computed",
			rawFilters: map[string]interface{}{
				"sortBy":     "name",
				"pagination": map[string]interface{}{"page": float64(3), "size": float64(500)},
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, "name", out.ParsedFilters.SortBy)
				assert.Equal(t, Pagination{Page: 3, Size: 100, From: 200}, out.ParsedFilters.Pagination)
			},
		},
		{
			name: "invalid pagination values are ignored",
			rawFilters: map[string]interface{}{
				"pagination": map[string]interface{}{"page": float64(0), "size": "lots"},
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, Pagination{Page: 1, Size: 20}, out.ParsedFilters.Pagination)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, true)
			out, err := h.Execute(context.Background(), &Input{RawFilters: tt.rawFilters})
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

func TestHandler_Execute_WithoutCatalog(t *testing.T) {
	h := newTestHandler(t, false)
	out, err := h.Execute(context.Background(), &Input{RawFilters: map[string]interface{}{"category": "Anything"}})
	require.NoError(t, err)
	assert.Equal(t, "Anything", out.ParsedFilters.Filter.Category)
	assert.Equal(t, -1, out.MatchCount)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		rawFilters map[string]interface{}
	}{
		{name: "unknown category", rawFilters: map[string]interface{}{"category": "Space Travel"}},
		{name: "bad sortBy", rawFilters: map[string]interface{}{"sortBy": "popularity"}},
		{name: "malformed investment", rawFilters: map[string]interface{}{"investment": "cheap"}},
		{
			name: "min above max",
			rawFilters: map[string]interface{}{
				"investmentRange": map[string]interface{}{"min": float64(500000), "max": float64(100000)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, true)
			_, err := h.Execute(context.Background(), &Input{RawFilters: tt.rawFilters})
			require.Error(t, err)
			stdErr, ok := errors.AsStandardError(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeInvalidFilterFormat, stdErr.Code)
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    int
		wantErr bool
	}{
		{name: "float", input: float64(42), want: 42},
		{name: "fractional float", input: 1.5, wantErr: true},
		{name: "int", input: 7, want: 7},
		{name: "int64", input: int64(9), want: 9},
		{name: "negative", input: -1, wantErr: true},
		{name: "money string", input: "$50,000.00", want: 50000},
		{name: "negative string", input: "-300", wantErr: true},
		{name: "words", input: "abc", wantErr: true},
		{name: "nil", input: nil, wantErr: true},
		{name: "bool", input: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInt(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// internal/workers/franchise/apply-relevance-ranking/handler_test.go
package applyrelevanceranking

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/models"
	"franchise-fit/internal/scoring"
)

// ==========================
// Test Helper Functions
// ==========================

type staticCatalog []models.Franchise

func (c staticCatalog) All() []models.Franchise {
	out := make([]models.Franchise, len(c))
	copy(out, c)
	return out
}

type stubProfiles struct {
	profile *models.UserProfile
	err     error
}

func (s stubProfiles) Get(context.Context, string) (*models.UserProfile, error) {
	return s.profile, s.err
}

func createTestCatalog(n int) staticCatalog {
	categories := []string{"Food & Beverage", "Fitness", "Education", "Pet Services"}
	out := make(staticCatalog, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Franchise{
			Slug:          fmt.Sprintf("franchise-%02d", i),
			Name:          fmt.Sprintf("Franchise %02d", i),
			Category:      categories[i%len(categories)],
			InvestmentMin: 50000 + i*40000,
			InvestmentMax: 120000 + i*60000,
			UnitCount:     20 + i*15,
			UnitsOpened:   i + 2,
			UnitsClosed:   i % 3,
			YearFounded:   1990 + i,
		})
	}
	return out
}

func newTestHandler(t *testing.T, catalog CatalogSource, profiles ProfileSource) *Handler {
	return NewHandler(HandlerOptions{
		Config:   LoadConfig(),
		Engine:   scoring.New(scoring.WithCurrentYear(2026)),
		Catalog:  catalog,
		Profiles: profiles,
		Logger:   logger.NewTestLogger(t),
	})
}

func assertSortedDesc(t *testing.T, ranked []models.ScoredFranchise) {
	t.Helper()
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	catalog := createTestCatalog(20)
	fitness := &models.UserProfile{
		Budget:        "200-350",
		Interests:     []string{"Fitness"},
		Style:         "owner-operator",
		RiskTolerance: "moderate",
	}

	tests := []struct {
		name           string
		input          *Input
		profiles       ProfileSource
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:  "whole catalog with default limit",
			input: &Input{UserProfile: fitness},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, 20, out.TotalScored)
				assert.Len(t, out.RankedFranchises, 15)
				assert.Len(t, out.Summary, 15)
				assert.Equal(t, "classic", out.Model)
				assert.False(t, out.UsedDefaults)
				assertSortedDesc(t, out.RankedFranchises)
				assert.Equal(t, 1, out.Summary[0].Rank)
				assert.Equal(t, out.RankedFranchises[0].Slug, out.Summary[0].Slug)
				_, err := uuid.Parse(out.RunID)
				assert.NoError(t, err)
			},
		},
		{
			name:  "explicit candidates and max items",
			input: &Input{UserProfile: fitness, Franchises: catalog[:5], MaxItems: 3},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, 5, out.TotalScored)
				assert.Len(t, out.RankedFranchises, 3)
			},
		},
		{
			name:     "unknown user ranks with defaults",
			input:    &Input{UserID: "ghost", MaxItems: 50},
			profiles: stubProfiles{err: assert.AnError},
			validateOutput: func(t *testing.T, out *Output) {
				assert.True(t, out.UsedDefaults)
				assert.Len(t, out.RankedFranchises, 20)
				assertSortedDesc(t, out.RankedFranchises)
			},
		},
		{
			name:     "stored profile",
			input:    &Input{UserID: "user-1"},
			profiles: stubProfiles{profile: fitness},
			validateOutput: func(t *testing.T, out *Output) {
				assert.False(t, out.UsedDefaults)
				want := scoring.New(scoring.WithCurrentYear(2026)).ScoreAll(*fitness, catalog.All())
				assert.Equal(t, want[:15], out.RankedFranchises)
			},
		},
		{
			name:  "answers select the full model",
			input: &Input{Answers: map[string]interface{}{"budget": "500+", "managementYears": "5-10"}},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, "full", out.Model)
				for _, r := range out.RankedFranchises {
					assert.Equal(t, "full", r.Model)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, catalog, tt.profiles)
			out, err := h.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

func TestHandler_Execute_Deterministic(t *testing.T) {
	h := newTestHandler(t, createTestCatalog(12), nil)
	in := &Input{Answers: map[string]interface{}{"interests": "Education", "riskTolerance": "aggressive"}}

	first, err := h.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := h.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.RankedFranchises, second.RankedFranchises)
	assert.NotEqual(t, first.RunID, second.RunID)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_Errors(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	_, err := h.Execute(context.Background(), nil)
	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInvalidInput, stdErr.Code)

	_, err = h.Execute(context.Background(), &Input{})
	stdErr, ok = errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeCatalogLoadFailed, stdErr.Code)
}

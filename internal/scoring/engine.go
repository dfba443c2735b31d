// Package scoring computes how well a franchise fits a buyer's profile.
//
// Every function in this package is pure: the same profile, franchise and
// current year always produce the same breakdown and composite score.
package scoring

import (
	"time"

	"franchise-fit/internal/models"
)

// Engine scores profiles against franchises. The zero value is not usable;
// construct one with New.
type Engine struct {
	model       Model
	currentYear int
}

// Option configures an Engine.
type Option func(*Engine)

// WithModel fixes the scoring model instead of choosing per profile.
func WithModel(m Model) Option {
	return func(e *Engine) { e.model = m }
}

// WithCurrentYear pins the year used to compute franchise age.
func WithCurrentYear(year int) Option {
	return func(e *Engine) { e.currentYear = year }
}

// WithClock reads the current year from now once, at construction.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.currentYear = now().Year() }
}

// New returns an Engine. Without WithCurrentYear or WithClock the year is
// taken from the wall clock when New is called.
func New(opts ...Option) *Engine {
	e := &Engine{model: ModelAuto}
	for _, opt := range opts {
		opt(e)
	}
	if e.currentYear == 0 {
		e.currentYear = time.Now().Year()
	}
	return e
}

// CurrentYear reports the year used for franchise age.
func (e *Engine) CurrentYear() int { return e.currentYear }

// ModelFor reports the concrete model the engine applies to profile.
func (e *Engine) ModelFor(profile models.UserProfile) Model {
	return e.model.resolve(&profile)
}

// ScoreOne returns the per-dimension breakdown for one franchise.
func (e *Engine) ScoreOne(profile models.UserProfile, franchise models.Franchise) models.ScoreBreakdown {
	m := e.model.resolve(&profile)
	return computeBreakdown(m, &profile, &franchise, e.currentYear)
}

// Score returns the franchise annotated with its breakdown and composite.
func (e *Engine) Score(profile models.UserProfile, franchise models.Franchise) models.ScoredFranchise {
	m := e.model.resolve(&profile)
	return e.score(m, &profile, franchise)
}

// ScoreAll scores every franchise in catalog and returns them sorted by
// composite score, highest first. The result has the same length as catalog
// and catalog itself is left untouched.
func (e *Engine) ScoreAll(profile models.UserProfile, catalog []models.Franchise) []models.ScoredFranchise {
	m := e.model.resolve(&profile)
	scored := make([]models.ScoredFranchise, 0, len(catalog))
	for _, f := range catalog {
		scored = append(scored, e.score(m, &profile, f))
	}
	rank(scored)
	return scored
}

func (e *Engine) score(m Model, p *models.UserProfile, f models.Franchise) models.ScoredFranchise {
	b := computeBreakdown(m, p, &f, e.currentYear)
	return models.ScoredFranchise{
		Franchise:      f,
		Score:          Composite(b, WeightsFor(m)),
		ScoreBreakdown: b,
		Model:          string(m),
	}
}

// ScoreOne scores one franchise with a default engine.
func ScoreOne(profile models.UserProfile, franchise models.Franchise) models.ScoreBreakdown {
	return New().ScoreOne(profile, franchise)
}

// ScoreAll ranks catalog with a default engine.
func ScoreAll(profile models.UserProfile, catalog []models.Franchise) []models.ScoredFranchise {
	return New().ScoreAll(profile, catalog)
}

// internal/models/score.go
package models

// ScoreBreakdown carries one 0-100 score per dimension.
type ScoreBreakdown struct {
	Financial  int `json:"financial"`
	Category   int `json:"category"`
	Style      int `json:"style"`
	Risk       int `json:"risk"`
	Experience int `json:"experience"`
	Growth     int `json:"growth"`
}

// ScoredFranchise is a catalog record annotated with its composite score.
type ScoredFranchise struct {
	Franchise
	Score          int            `json:"score"`
	ScoreBreakdown ScoreBreakdown `json:"scoreBreakdown"`
	Model          string         `json:"model"`
}

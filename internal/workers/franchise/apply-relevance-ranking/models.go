// internal/workers/franchise/apply-relevance-ranking/models.go
package applyrelevanceranking

import (
	"franchise-fit/internal/models"
	"franchise-fit/internal/results"
)

// Input selects the profile and the candidates to rank. With no
// Franchises the whole catalog is ranked.
type Input struct {
	UserID      string                 `json:"userId,omitempty"`
	UserProfile *models.UserProfile    `json:"userProfile,omitempty"`
	Answers     map[string]interface{} `json:"answers,omitempty"`
	Franchises  []models.Franchise     `json:"franchises,omitempty"`
	MaxItems    int                    `json:"maxItems,omitempty"`
}

type Output struct {
	RunID            string                   `json:"runId"`
	Model            string                   `json:"model"`
	TotalScored      int                      `json:"totalScored"`
	UsedDefaults     bool                     `json:"usedDefaultProfile"`
	RankedFranchises []models.ScoredFranchise `json:"rankedFranchises"`
	Summary          []results.Summary        `json:"summary"`
}

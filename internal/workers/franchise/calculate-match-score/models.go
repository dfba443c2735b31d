// internal/workers/franchise/calculate-match-score/models.go
package calculatematchscore

import (
	"franchise-fit/internal/models"
	"franchise-fit/internal/results"
)

// Input names the buyer and the franchise. The profile is taken from
// UserProfile, then Answers, then the profile store by UserID. The
// franchise is taken from Franchise, then looked up by FranchiseSlug.
type Input struct {
	UserID        string                 `json:"userId,omitempty"`
	UserProfile   *models.UserProfile    `json:"userProfile,omitempty"`
	Answers       map[string]interface{} `json:"answers,omitempty"`
	FranchiseSlug string                 `json:"franchiseSlug,omitempty"`
	Franchise     *models.Franchise      `json:"franchise,omitempty"`
}

type Output struct {
	FranchiseSlug  string                `json:"franchiseSlug"`
	MatchScore     int                   `json:"matchScore"`
	ScoreBreakdown models.ScoreBreakdown `json:"scoreBreakdown"`
	Model          string                `json:"model"`
	Tier           results.Tier          `json:"tier"`
	ProfileSource  string                `json:"profileSource"`
}

const (
	sourceInput   = "input"
	sourceAnswers = "answers"
	sourceStore   = "store"
	sourceNone    = "none"
)

// internal/workers/profile/validate-profile/models.go
package validateprofile

import (
	"franchise-fit/internal/common/validation"
	"franchise-fit/internal/models"
)

type Input struct {
	UserID  string                 `json:"userId"`
	Answers map[string]interface{} `json:"answers"`
	// Strict overrides the worker default for this job when set.
	Strict *bool `json:"strict,omitempty"`
	// Persist saves a valid profile to the profile store under UserID.
	Persist bool `json:"persist,omitempty"`
}

type Output struct {
	Valid     bool                         `json:"valid"`
	Errors    []validation.ValidationError `json:"validationErrors,omitempty"`
	Profile   *models.UserProfile          `json:"userProfile,omitempty"`
	Model     string                       `json:"scoringModel,omitempty"`
	Persisted bool                         `json:"persisted"`
}

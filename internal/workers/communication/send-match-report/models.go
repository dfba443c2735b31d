// internal/workers/communication/send-match-report/models.go
package sendmatchreport

import (
	"time"

	"franchise-fit/internal/models"
	"franchise-fit/internal/results"
)

type Input struct {
	UserID           string                   `json:"userId"`
	Email            string                   `json:"email"`
	RunID            string                   `json:"runId,omitempty"`
	RankedFranchises []models.ScoredFranchise `json:"rankedFranchises"`
	TopN             int                      `json:"topN,omitempty"`
}

type Output struct {
	ReportID       string            `json:"reportId"`
	EmailMessageID string            `json:"emailMessageId,omitempty"`
	TopicMessageID string            `json:"topicMessageId,omitempty"`
	Channels       []string          `json:"channels"`
	Summary        []results.Summary `json:"reportSummary"`
	SentAt         time.Time         `json:"sentAt"`
}

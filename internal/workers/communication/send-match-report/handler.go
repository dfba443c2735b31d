// internal/workers/communication/send-match-report/handler.go
package sendmatchreport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"franchise-fit/internal/common/camunda"
	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/metrics"
	"franchise-fit/internal/common/observability"
	"franchise-fit/internal/results"
)

const (
	TaskType = "send-match-report"

	channelEmail = "email"
	channelTopic = "sns"
)

// Mailer delivers the report by email; *aws.SESClient satisfies it.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, text, html string) (string, error)
}

// Publisher fans the report out to a topic; *aws.SNSClient satisfies it.
type Publisher interface {
	PublishToTopic(ctx context.Context, topicARN, subject, message, messageID string) (string, error)
}

type Handler struct {
	config    *Config
	mailer    Mailer
	publisher Publisher
	runner    *camunda.Runner
	logger    logger.Logger
}

type HandlerOptions struct {
	Config        *Config
	Mailer        Mailer
	Publisher     Publisher
	Observability *observability.Observability
	Logger        logger.Logger
}

func NewHandler(opts HandlerOptions) *Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = LoadConfig()
	}
	log := opts.Logger.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    cfg,
		mailer:    opts.Mailer,
		publisher: opts.Publisher,
		runner:    camunda.NewRunner(TaskType, cfg.Timeout, opts.Observability, log),
		logger:    log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.runner.Run(client, job, func(ctx context.Context) (interface{}, error) {
		var input Input
		if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
			return nil, errors.NewInvalidInputError(fmt.Sprintf("parse input: %v", err))
		}
		return h.execute(ctx, &input)
	})
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, errors.NewInvalidInputError("input cannot be nil")
	}
	if !isValidEmail(input.Email) {
		return nil, errors.NewInvalidInputError(fmt.Sprintf("invalid email address: %q", input.Email))
	}
	if len(input.RankedFranchises) == 0 {
		return nil, errors.NewInvalidInputError("rankedFranchises is empty")
	}
	if h.mailer == nil {
		return nil, errors.NewNotificationSendFailedError(channelEmail, fmt.Errorf("no mailer configured"))
	}

	n := input.TopN
	if n <= 0 {
		n = h.config.TopN
	}
	lines := results.Summarize(results.Top(input.RankedFranchises, n))

	reportID := input.RunID
	if reportID == "" {
		reportID = uuid.NewString()
	}

	text := renderText(lines)
	html, err := renderHTML(lines)
	if err != nil {
		return nil, err
	}

	out := &Output{ReportID: reportID, Summary: lines}

	out.EmailMessageID, err = h.mailer.SendEmail(ctx, input.Email, h.config.Subject, text, html)
	if err != nil {
		metrics.ReportsSent.WithLabelValues(channelEmail, "failed").Inc()
		return nil, errors.NewNotificationSendFailedError(channelEmail, err)
	}
	metrics.ReportsSent.WithLabelValues(channelEmail, "sent").Inc()
	out.Channels = append(out.Channels, channelEmail)

	// The email already went out; a topic failure is logged, not retried.
	if h.publisher != nil && h.config.TopicARN != "" {
		id, err := h.publisher.PublishToTopic(ctx, h.config.TopicARN, h.config.Subject, renderSummary(lines), reportID)
		if err != nil {
			metrics.ReportsSent.WithLabelValues(channelTopic, "failed").Inc()
			h.logger.Warn("report topic publish failed", map[string]interface{}{
				"reportId": reportID,
				"error":    err,
			})
		} else {
			metrics.ReportsSent.WithLabelValues(channelTopic, "sent").Inc()
			out.TopicMessageID = id
			out.Channels = append(out.Channels, channelTopic)
		}
	}

	out.SentAt = time.Now().UTC()
	h.logger.Info("match report sent", map[string]interface{}{
		"userId":   input.UserID,
		"reportId": reportID,
		"lines":    len(lines),
		"channels": out.Channels,
	})
	return out, nil
}

// Execute sends a report outside of a Zeebe job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

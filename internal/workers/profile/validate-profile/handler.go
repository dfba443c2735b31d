// internal/workers/profile/validate-profile/handler.go
package validateprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"franchise-fit/internal/common/camunda"
	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/observability"
	"franchise-fit/internal/common/validation"
	"franchise-fit/internal/models"
	"franchise-fit/internal/profile"
	"franchise-fit/internal/scoring"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "validate-profile"

// ProfileWriter persists validated profiles; *profile.Store satisfies it.
type ProfileWriter interface {
	Save(ctx context.Context, userID string, p models.UserProfile) error
}

type Handler struct {
	config *Config
	engine *scoring.Engine
	store  ProfileWriter
	runner *camunda.Runner
	logger logger.Logger
}

func NewHandler(config *Config, store ProfileWriter, obs *observability.Observability, log logger.Logger) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		engine: scoring.New(),
		store:  store,
		runner: camunda.NewRunner(TaskType, config.Timeout, obs, log),
		logger: log,
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
	if input.Persist && input.UserID == "" {
		return nil, errors.NewInvalidInputError("userId is required when persist is set")
	}

	result, err := validation.ValidateAnswers(input.Answers)
	if err != nil {
		return nil, err
	}

	if !result.Valid {
		h.logger.Warn("profile answers rejected", map[string]interface{}{
			"userId": input.UserID,
			"fields": result.Fields(),
		})
		if h.strict(input) {
			return nil, errors.NewProfileValidationFailedError(
				"invalid answers: " + strings.Join(result.Fields(), ", "))
		}
		return &Output{Valid: false, Errors: result.Errors}, nil
	}

	p, err := profile.FromAnswers(input.Answers)
	if err != nil {
		return nil, errors.NewProfileValidationFailedError(err.Error())
	}

	out := &Output{
		Valid:   true,
		Profile: &p,
		Model:   string(h.engine.ModelFor(p)),
	}

	if input.Persist {
		if h.store == nil {
			return nil, errors.NewInvalidInputError("persist requested but no profile store is configured")
		}
		if err := h.store.Save(ctx, input.UserID, p); err != nil {
			return nil, errors.NewQueryExecutionFailedError("save_profile", err)
		}
		out.Persisted = true
	}

	h.logger.Info("profile validated", map[string]interface{}{
		"userId":    input.UserID,
		"model":     out.Model,
		"persisted": out.Persisted,
	})
	return out, nil
}

func (h *Handler) strict(input *Input) bool {
	if input.Strict != nil {
		return *input.Strict
	}
	return h.config.Strict
}

// Execute validates answers outside of a Zeebe job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

// internal/workers/franchise/apply-relevance-ranking/handler.go
package applyrelevanceranking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"franchise-fit/internal/common/camunda"
	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/metrics"
	"franchise-fit/internal/common/observability"
	"franchise-fit/internal/models"
	"franchise-fit/internal/profile"
	"franchise-fit/internal/results"
	"franchise-fit/internal/scoring"
)

const TaskType = "apply-relevance-ranking"

type ProfileSource interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
}

// CatalogSource supplies the full candidate set.
type CatalogSource interface {
	All() []models.Franchise
}

type Handler struct {
	config   *Config
	engine   *scoring.Engine
	catalog  CatalogSource
	profiles ProfileSource
	obs      *observability.Observability
	runner   *camunda.Runner
	logger   logger.Logger
}

type HandlerOptions struct {
	Config        *Config
	Engine        *scoring.Engine
	Catalog       CatalogSource
	Profiles      ProfileSource
	Observability *observability.Observability
	Logger        logger.Logger
}

func NewHandler(opts HandlerOptions) *Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = LoadConfig()
	}
	engine := opts.Engine
	if engine == nil {
		engine = scoring.New()
	}
	obs := opts.Observability
	if obs == nil {
		obs, _ = observability.New(observability.Options{})
	}
	log := opts.Logger.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   cfg,
		engine:   engine,
		catalog:  opts.Catalog,
		profiles: opts.Profiles,
		obs:      obs,
		runner:   camunda.NewRunner(TaskType, cfg.Timeout, obs, log),
		logger:   log,
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

	candidates := input.Franchises
	if len(candidates) == 0 {
		if h.catalog == nil {
			return nil, errors.NewCatalogLoadFailedError("ranking", fmt.Errorf("no catalog configured"))
		}
		candidates = h.catalog.All()
	}

	p, usedDefaults, err := h.resolveProfile(ctx, input)
	if err != nil {
		return nil, err
	}

	scored := h.engine.ScoreAll(p, candidates)
	model := string(h.engine.ModelFor(p))
	for _, s := range scored {
		metrics.ObserveScore(s.Model, s.Score)
	}
	h.obs.RecordRanked(ctx, model, len(scored))

	limit := input.MaxItems
	if limit <= 0 {
		limit = h.config.MaxItems
	}
	top := results.Top(scored, limit)

	runID := uuid.NewString()
	h.logger.Info("franchises ranked", map[string]interface{}{
		"runId":        runID,
		"userId":       input.UserID,
		"model":        model,
		"totalScored":  len(scored),
		"returned":     len(top),
		"usedDefaults": usedDefaults,
	})

	return &Output{
		RunID:            runID,
		Model:            model,
		TotalScored:      len(scored),
		UsedDefaults:     usedDefaults,
		RankedFranchises: top,
		Summary:          results.Summarize(top),
	}, nil
}

// resolveProfile falls back to the default browse profile when nothing
// better is available.
func (h *Handler) resolveProfile(ctx context.Context, input *Input) (models.UserProfile, bool, error) {
	switch {
	case input.UserProfile != nil:
		return *input.UserProfile, false, nil
	case len(input.Answers) > 0:
		p, err := profile.FromAnswers(input.Answers)
		if err != nil {
			return models.UserProfile{}, false, errors.NewProfileValidationFailedError(err.Error())
		}
		return p, false, nil
	case input.UserID != "" && h.profiles != nil:
		p, err := h.profiles.Get(ctx, input.UserID)
		if err == nil {
			return *p, false, nil
		}
		h.logger.Warn("failed to fetch user profile, ranking with defaults", map[string]interface{}{
			"userId": input.UserID,
			"error":  err,
		})
	}
	return results.DefaultProfile(), true, nil
}

// Execute ranks outside of a Zeebe job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

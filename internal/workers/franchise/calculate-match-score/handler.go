// internal/workers/franchise/calculate-match-score/handler.go
package calculatematchscore

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"franchise-fit/internal/common/camunda"
	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/metrics"
	"franchise-fit/internal/common/observability"
	"franchise-fit/internal/models"
	"franchise-fit/internal/profile"
	"franchise-fit/internal/results"
	"franchise-fit/internal/scoring"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "calculate-match-score"

// neutralScore is reported for every dimension when no profile exists.
const neutralScore = 50

// ProfileSource resolves stored profiles by user id.
type ProfileSource interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
}

// FranchiseLookup finds catalog records by slug.
type FranchiseLookup interface {
	BySlug(slug string) (models.Franchise, bool)
}

type Handler struct {
	config   *Config
	engine   *scoring.Engine
	catalog  FranchiseLookup
	profiles ProfileSource
	runner   *camunda.Runner
	logger   logger.Logger
}

type HandlerOptions struct {
	Config        *Config
	Engine        *scoring.Engine
	Catalog       FranchiseLookup
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
	log := opts.Logger.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   cfg,
		engine:   engine,
		catalog:  opts.Catalog,
		profiles: opts.Profiles,
		runner:   camunda.NewRunner(TaskType, cfg.Timeout, opts.Observability, log),
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
	franchise, err := h.resolveFranchise(input)
	if err != nil {
		return nil, err
	}

	p, source, err := h.resolveProfile(ctx, input)
	if err != nil {
		return nil, err
	}

	if p == nil {
		h.logger.Info("no profile available, returning neutral scores", map[string]interface{}{
			"userId":        input.UserID,
			"franchiseSlug": franchise.Slug,
		})
		return &Output{
			FranchiseSlug: franchise.Slug,
			MatchScore:    neutralScore,
			ScoreBreakdown: models.ScoreBreakdown{
				Financial: neutralScore, Category: neutralScore, Style: neutralScore,
				Risk: neutralScore, Experience: neutralScore, Growth: neutralScore,
			},
			Model:         sourceNone,
			Tier:          results.TierFor(neutralScore),
			ProfileSource: sourceNone,
		}, nil
	}

	scored := h.engine.Score(*p, franchise)
	metrics.ObserveScore(scored.Model, scored.Score)

	h.logger.Info("match score calculated", map[string]interface{}{
		"userId":        input.UserID,
		"franchiseSlug": franchise.Slug,
		"score":         scored.Score,
		"model":         scored.Model,
		"profileSource": source,
	})

	return &Output{
		FranchiseSlug:  franchise.Slug,
		MatchScore:     scored.Score,
		ScoreBreakdown: scored.ScoreBreakdown,
		Model:          scored.Model,
		Tier:           results.TierFor(scored.Score),
		ProfileSource:  source,
	}, nil
}

func (h *Handler) resolveFranchise(input *Input) (models.Franchise, error) {
	if input.Franchise != nil {
		return *input.Franchise, nil
	}
	if input.FranchiseSlug == "" {
		return models.Franchise{}, errors.NewInvalidInputError("franchise or franchiseSlug is required")
	}
	if h.catalog == nil {
		return models.Franchise{}, errors.NewCatalogLoadFailedError("lookup", fmt.Errorf("no catalog configured"))
	}
	f, ok := h.catalog.BySlug(input.FranchiseSlug)
	if !ok {
		return models.Franchise{}, errors.NewFranchiseNotFoundError(input.FranchiseSlug)
	}
	return f, nil
}

func (h *Handler) resolveProfile(ctx context.Context, input *Input) (*models.UserProfile, string, error) {
	if input.UserProfile != nil {
		return input.UserProfile, sourceInput, nil
	}
	if len(input.Answers) > 0 {
		p, err := profile.FromAnswers(input.Answers)
		if err != nil {
			return nil, "", errors.NewProfileValidationFailedError(err.Error())
		}
		return &p, sourceAnswers, nil
	}
	if input.UserID == "" || h.profiles == nil {
		if h.config.RequireProfile {
			return nil, "", errors.NewProfileNotFoundError(input.UserID)
		}
		return nil, sourceNone, nil
	}

	p, err := h.profiles.Get(ctx, input.UserID)
	if err == nil {
		return p, sourceStore, nil
	}
	if !h.config.RequireProfile {
		h.logger.Warn("failed to fetch user profile", map[string]interface{}{
			"userId": input.UserID,
			"error":  err,
		})
		return nil, sourceNone, nil
	}
	if stderrors.Is(err, profile.ErrNotFound) {
		return nil, "", errors.NewProfileNotFoundError(input.UserID)
	}
	return nil, "", errors.NewQueryExecutionFailedError("user_profile", err)
}

// Execute scores one franchise outside of a Zeebe job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

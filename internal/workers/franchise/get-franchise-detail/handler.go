// internal/workers/franchise/get-franchise-detail/handler.go
package getfranchisedetail

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"franchise-fit/internal/catalog"
	"franchise-fit/internal/common/camunda"
	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/observability"
	"franchise-fit/internal/models"
	"franchise-fit/internal/results"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "get-franchise-detail"

type FranchiseLookup interface {
	BySlug(slug string) (models.Franchise, bool)
}

// FranchiseStore is consulted when the in-memory catalog misses, e.g. for
// records added to the database after startup.
type FranchiseStore interface {
	Get(ctx context.Context, slug string) (models.Franchise, error)
}

type Handler struct {
	config  *Config
	catalog FranchiseLookup
	store   FranchiseStore
	runner  *camunda.Runner
	logger  logger.Logger
}

type HandlerOptions struct {
	Config        *Config
	Catalog       FranchiseLookup
	Store         FranchiseStore
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
		config:  cfg,
		catalog: opts.Catalog,
		store:   opts.Store,
		runner:  camunda.NewRunner(TaskType, cfg.Timeout, opts.Observability, log),
		logger:  log,
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
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return nil, errors.NewInvalidInputError("slug is required")
	}

	f, source, err := h.lookup(ctx, slug)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Franchise:  f,
		GrowthRate: f.GrowthRate(),
		AgeYears:   results.AgeYears(f, h.config.CurrentYear),
		Source:     source,
		Display:    results.Describe(f),
	}

	h.logger.Info("franchise detail resolved", map[string]interface{}{
		"slug":       f.Slug,
		"source":     source,
		"growthRate": out.GrowthRate,
	})
	return out, nil
}

func (h *Handler) lookup(ctx context.Context, slug string) (models.Franchise, string, error) {
	if h.catalog != nil {
		if f, ok := h.catalog.BySlug(slug); ok {
			return f, "catalog", nil
		}
	}
	if h.store == nil {
		return models.Franchise{}, "", errors.NewFranchiseNotFoundError(slug)
	}

	f, err := h.store.Get(ctx, slug)
	switch {
	case err == nil:
		return f, "database", nil
	case stderrors.Is(err, catalog.ErrNotFound):
		return models.Franchise{}, "", errors.NewFranchiseNotFoundError(slug)
	case stderrors.Is(err, context.DeadlineExceeded):
		return models.Franchise{}, "", errors.NewQueryTimeoutError("franchise_detail")
	default:
		return models.Franchise{}, "", errors.NewQueryExecutionFailedError("franchise_detail", err)
	}
}

// Execute resolves a franchise outside of a Zeebe job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

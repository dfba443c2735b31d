// internal/workers/data-access/query-catalog/handler.go
package querycatalog

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"franchise-fit/internal/catalog"
	"franchise-fit/internal/common/camunda"
	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "query-catalog"

// Searcher runs catalog searches; *catalog.SearchIndex satisfies it.
type Searcher interface {
	Search(ctx context.Context, sr catalog.SearchRequest) (*catalog.SearchResult, error)
}

type Handler struct {
	config *Config
	index  Searcher
	runner *camunda.Runner
	logger logger.Logger
}

func NewHandler(config *Config, index Searcher, obs *observability.Observability, log logger.Logger) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		index:  index,
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

	req := catalog.SearchRequest{
		Filter: input.Filter,
		From:   input.Pagination.From,
		Size:   input.Pagination.Size,
		SortBy: input.SortBy,
	}
	if pf := input.ParsedFilters; pf != nil {
		req = catalog.SearchRequest{
			Filter: pf.Filter,
			From:   pf.Pagination.From,
			Size:   pf.Pagination.Size,
			SortBy: pf.SortBy,
		}
	}

	res, err := h.index.Search(ctx, req)
	if err != nil {
		return nil, mapSearchError(ctx, err)
	}

	h.logger.Info("catalog search completed", map[string]interface{}{
		"totalHits": res.TotalHits,
		"returned":  len(res.Franchises),
		"took":      res.Took,
	})

	return &Output{
		Franchises: res.Franchises,
		TotalHits:  res.TotalHits,
		MaxScore:   res.MaxScore,
		Took:       res.Took,
	}, nil
}

func mapSearchError(ctx context.Context, err error) error {
	switch {
	case stderrors.Is(err, catalog.ErrInvalidInvestment):
		return errors.NewInvalidFilterFormatError(err.Error())
	case stderrors.Is(err, catalog.ErrIndexNotFound):
		return errors.NewIndexNotFoundError(err.Error())
	case ctx.Err() == context.DeadlineExceeded || stderrors.Is(err, context.DeadlineExceeded):
		return errors.NewSearchTimeoutError("catalog")
	case stderrors.Is(err, catalog.ErrSearchFailed):
		return errors.NewSearchQueryFailedError("catalog", err)
	case stderrors.Is(err, catalog.ErrSearchUnavailable):
		return errors.NewElasticsearchConnectionFailedError(err)
	default:
		return errors.NewElasticsearchConnectionFailedError(err)
	}
}

// Execute runs a search outside of a Zeebe job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

// internal/workers/franchise/parse-search-filters/handler.go
package parsesearchfilters

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"franchise-fit/internal/catalog"
	"franchise-fit/internal/common/camunda"
	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "parse-search-filters"

var validSortOptions = map[string]bool{
	"relevance": true, "investmentMin": true, "name": true,
}

var nonDigits = regexp.MustCompile(`[^\d]+`)

type Handler struct {
	config  *Config
	catalog *catalog.Catalog
	runner  *camunda.Runner
	logger  logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, obs *observability.Observability, log logger.Logger) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:  config,
		catalog: cat,
		runner:  camunda.NewRunner(TaskType, config.Timeout, obs, log),
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

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	raw := input.RawFilters
	if raw == nil {
		raw = map[string]interface{}{}
	}

	parsed := ParsedFilters{
		SortBy:     "relevance",
		Pagination: Pagination{Page: 1, Size: h.config.DefaultPageSize},
	}

	for _, key := range []string{"query", "keywords"} {
		if s, ok := raw[key].(string); ok && strings.TrimSpace(s) != "" {
			parsed.Filter.Query = strings.TrimSpace(s)
			break
		}
	}

	if s, ok := raw["category"].(string); ok {
		category, err := h.parseCategory(s)
		if err != nil {
			return nil, err
		}
		parsed.Filter.Category = category
	}

	inv, err := h.parseInvestment(raw)
	if err != nil {
		return nil, err
	}
	if inv != nil {
		parsed.InvestmentRange = inv
		parsed.Filter.Investment = fmt.Sprintf("%d-%d", inv.Min, inv.Max)
	}

	if sortByRaw, ok := raw["sortBy"]; ok {
		s, _ := sortByRaw.(string)
		s = strings.TrimSpace(s)
		if !validSortOptions[s] {
			return nil, errors.NewInvalidFilterFormatError(fmt.Sprintf("invalid sortBy '%s'", s))
		}
		parsed.SortBy = s
	}

	if pgMap, ok := raw["pagination"].(map[string]interface{}); ok {
		if page, err := parseInt(pgMap["page"]); err == nil && page >= 1 {
			parsed.Pagination.Page = page
		}
		if size, err := parseInt(pgMap["size"]); err == nil && size >= 1 {
			parsed.Pagination.Size = min(size, h.config.MaxPageSize)
		}
	}
	parsed.Pagination.From = (parsed.Pagination.Page - 1) * parsed.Pagination.Size

	out := &Output{ParsedFilters: parsed, MatchCount: -1}
	if h.catalog != nil {
		matches, err := h.catalog.Filter(parsed.Filter)
		if err != nil {
			return nil, errors.NewInvalidFilterFormatError(err.Error())
		}
		out.MatchCount = len(matches)
	}

	h.logger.Info("filters parsed successfully", map[string]interface{}{
		"filter":     parsed.Filter,
		"sortBy":     parsed.SortBy,
		"pagination": parsed.Pagination,
		"matchCount": out.MatchCount,
	})
	return out, nil
}

// parseCategory matches case-insensitively against the loaded catalog and
// returns the catalog's spelling.
func (h *Handler) parseCategory(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || h.catalog == nil {
		return s, nil
	}
	for _, c := range h.catalog.Categories() {
		if strings.EqualFold(c, s) {
			return c, nil
		}
	}
	return "", errors.NewInvalidFilterFormatError(fmt.Sprintf("invalid category '%s'", s))
}

func (h *Handler) parseInvestment(raw map[string]interface{}) (*catalog.InvestmentRange, error) {
	if s, ok := raw["investment"].(string); ok {
		r, ok, err := catalog.ParseInvestment(s)
		if err != nil {
			return nil, errors.NewInvalidFilterFormatError(err.Error())
		}
		if !ok {
			return nil, nil
		}
		return &r, nil
	}

	invMap, ok := raw["investmentRange"].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	r := catalog.InvestmentRange{Min: 0, Max: h.config.MaxInvestment}
	if v, err := parseInt(invMap["min"]); err == nil {
		r.Min = v
	}
	if v, err := parseInt(invMap["max"]); err == nil && v > 0 && v <= h.config.MaxInvestment {
		r.Max = v
	}
	if r.Min > r.Max {
		return nil, errors.NewInvalidFilterFormatError(
			fmt.Sprintf("investment min (%d) > max (%d)", r.Min, r.Max))
	}
	return &r, nil
}

// parseInt accepts JSON numbers and money strings such as "USD 50,000.00".
func parseInt(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, stderrors.New("cannot parse nil as integer")
	case float64:
		if v < 0 || v != float64(int(v)) {
			return 0, stderrors.New("not a valid positive integer")
		}
		return int(v), nil
	case int:
		if v < 0 {
			return 0, stderrors.New("negative integer not allowed")
		}
		return v, nil
	case int64:
		if v < 0 {
			return 0, stderrors.New("negative integer not allowed")
		}
		return int(v), nil
	case string:
		cleaned := strings.NewReplacer(" ", "", "$", "", "USD", "", ",", "").Replace(v)
		if whole, _, found := strings.Cut(cleaned, "."); found {
			cleaned = whole
		}
		if strings.HasPrefix(cleaned, "-") {
			return 0, stderrors.New("negative integer not allowed")
		}
		cleaned = nonDigits.ReplaceAllString(cleaned, "")
		if cleaned == "" {
			return 0, stderrors.New("not a number")
		}
		return strconv.Atoi(cleaned)
	default:
		return 0, stderrors.New("not a number")
	}
}

// Execute parses filters outside of a Zeebe job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

// internal/catalog/search.go
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"franchise-fit/internal/models"
)

var (
	ErrIndexNotFound     = errors.New("search index not found")
	ErrSearchFailed      = errors.New("search request failed")
	ErrSearchUnavailable = errors.New("search cluster unreachable")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// indexMapping keeps slug, category and tags as exact keywords so filters
// can use term queries.
const indexMapping = `{
  "mappings": {
    "properties": {
      "slug":          {"type": "keyword"},
      "name":          {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "category":      {"type": "keyword"},
      "description":   {"type": "text"},
      "investmentMin": {"type": "long"},
      "investmentMax": {"type": "long"},
      "franchiseFee":  {"type": "long"},
      "royaltyPct":    {"type": "float"},
      "adFundPct":     {"type": "float"},
      "avgRevenue":    {"type": "long"},
      "unitCount":     {"type": "integer"},
      "unitsOpened":   {"type": "integer"},
      "unitsClosed":   {"type": "integer"},
      "yearFounded":   {"type": "integer"},
      "headquarters":  {"type": "keyword"},
      "website":       {"type": "keyword", "index": false},
      "tags":          {"type": "keyword"}
    }
  }
}`

// SearchIndex is the Elasticsearch view of the catalog.
type SearchIndex struct {
	client *elasticsearch.Client
	index  string
}

func NewSearchIndex(client *elasticsearch.Client, index string) *SearchIndex {
	return &SearchIndex{client: client, index: index}
}

// SearchRequest is a paged catalog search.
type SearchRequest struct {
	Filter Filter
	From   int
	Size   int
	// SortBy is "name" or "investmentMin"; anything else sorts by relevance.
	SortBy string
}

type SearchResult struct {
	Franchises []models.Franchise `json:"franchises"`
	TotalHits  int64              `json:"totalHits"`
	MaxScore   float64            `json:"maxScore"`
	Took       int64              `json:"took"`
}

// EnsureIndex creates the index with the catalog mapping when it does not
// exist yet.
func (s *SearchIndex) EnsureIndex(ctx context.Context) error {
	res, err := esapi.IndicesExistsRequest{Index: []string{s.index}}.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = esapi.IndicesCreateRequest{
		Index: s.index,
		Body:  strings.NewReader(indexMapping),
	}.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("%w: create index: %s", ErrSearchFailed, res.String())
	}
	return nil
}

// IndexAll writes every franchise using its slug as document id. The last
// write waits for a refresh so the documents are searchable on return.
func (s *SearchIndex) IndexAll(ctx context.Context, items []models.Franchise) error {
	for i, f := range items {
		body, err := json.Marshal(f)
		if err != nil {
			return err
		}
		req := esapi.IndexRequest{
			Index:      s.index,
			DocumentID: f.Slug,
			Body:       bytes.NewReader(body),
		}
		if i == len(items)-1 {
			req.Refresh = "wait_for"
		}
		res, err := req.Do(ctx, s.client)
		if err != nil {
			return fmt.Errorf("%w: index %s: %v", ErrSearchFailed, f.Slug, err)
		}
		failed := res.IsError()
		status := res.String()
		res.Body.Close()
		if failed {
			return fmt.Errorf("%w: index %s: %s", ErrSearchFailed, f.Slug, status)
		}
	}
	return nil
}

// Search runs a catalog search.
func (s *SearchIndex) Search(ctx context.Context, sr SearchRequest) (*SearchResult, error) {
	query, err := BuildQuery(sr)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	from, size := page(sr.From, sr.Size)
	start := time.Now()
	res, err := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  bytes.NewReader(body),
		From:  &from,
		Size:  &size,
	}.Do(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, s.index)
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, res.String())
	}

	var decoded struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			MaxScore *float64 `json:"max_score"`
			Hits     []struct {
				Source models.Franchise `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSearchFailed, err)
	}

	out := &SearchResult{
		Franchises: make([]models.Franchise, 0, len(decoded.Hits.Hits)),
		TotalHits:  decoded.Hits.Total.Value,
		Took:       time.Since(start).Milliseconds(),
	}
	if decoded.Hits.MaxScore != nil {
		out.MaxScore = *decoded.Hits.MaxScore
	}
	for _, h := range decoded.Hits.Hits {
		out.Franchises = append(out.Franchises, h.Source)
	}
	return out, nil
}

func page(from, size int) (int, int) {
	if from < 0 {
		from = 0
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return from, size
}

// BuildQuery turns a search request into an Elasticsearch query body.
func BuildQuery(sr SearchRequest) (map[string]interface{}, error) {
	var must, filter []interface{}

	if q := strings.TrimSpace(sr.Filter.Query); q != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q,
				"fields": []string{"name^3", "description^2", "category"},
				"type":   "best_fields",
			},
		})
	} else {
		must = append(must, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	if sr.Filter.Category != "" {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"category": sr.Filter.Category},
		})
	}

	inv, ok, err := ParseInvestment(sr.Filter.Investment)
	if err != nil {
		return nil, err
	}
	if ok {
		filter = append(filter,
			map[string]interface{}{"range": map[string]interface{}{"investmentMin": map[string]interface{}{"lte": inv.Max}}},
			map[string]interface{}{"range": map[string]interface{}{"investmentMax": map[string]interface{}{"gte": inv.Min}}},
		)
	}

	boolQuery := map[string]interface{}{"must": must}
	if len(filter) > 0 {
		boolQuery["filter"] = filter
	}
	query := map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
	}

	switch sr.SortBy {
	case "name":
		query["sort"] = []map[string]interface{}{{"name.raw": "asc"}}
	case "investmentMin":
		query["sort"] = []map[string]interface{}{{"investmentMin": "asc"}}
	}
	return query, nil
}

// internal/catalog/source.go
package catalog

import (
	"context"
	"fmt"

	"franchise-fit/internal/common/config"
	"franchise-fit/internal/common/database"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/metrics"
	"franchise-fit/internal/models"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// Load builds the catalog from the configured source. db is required for
// the postgres and sqlite sources and ignored for files.
func Load(ctx context.Context, cfg config.CatalogConfig, db *database.SQLClient, log logger.Logger) (*Catalog, error) {
	var (
		items []models.Franchise
		err   error
	)

	switch cfg.Source {
	case SourceFile, "":
		items, err = LoadFiles(cfg.Paths)
	case SourcePostgres, SourceSQLite:
		if db == nil {
			return nil, fmt.Errorf("catalog source %s needs a database connection", cfg.Source)
		}
		items, err = NewStore(db).List(ctx)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", cfg.Source, err)
	}

	c, err := New(items)
	if err != nil {
		return nil, err
	}

	metrics.CatalogSize.WithLabelValues(sourceLabel(cfg.Source)).Set(float64(c.Len()))
	log.Info("catalog loaded", map[string]interface{}{
		"source":     sourceLabel(cfg.Source),
		"franchises": c.Len(),
		"categories": len(c.Categories()),
	})
	return c, nil
}

func sourceLabel(s string) string {
	if s == "" {
		return SourceFile
	}
	return s
}

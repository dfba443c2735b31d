// internal/common/database/sqlite.go
package database

import (
	"database/sql"
	"fmt"

	"franchise-fit/internal/common/config"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLite opens the local catalog database used by the CLI. SQLite allows
// a single writer, so the pool is capped at one connection.
func NewSQLite(cfg config.SQLiteConfig) (*SQLClient, error) {
	db, err := sql.Open("sqlite3", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(1)

	return &SQLClient{DB: db, Driver: "sqlite3"}, nil
}

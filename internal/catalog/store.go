// internal/catalog/store.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"franchise-fit/internal/common/database"
	"franchise-fit/internal/models"
)

var ErrNotFound = errors.New("franchise not found")

const franchiseColumns = `slug, name, category, description, investment_min, investment_max,
		franchise_fee, royalty_pct, ad_fund_pct, avg_revenue, unit_count, units_opened,
		units_closed, year_founded, headquarters, website, tags`

const createFranchisesTable = `
CREATE TABLE IF NOT EXISTS franchises (
	slug           TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	category       TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT '',
	investment_min INTEGER NOT NULL DEFAULT 0,
	investment_max INTEGER NOT NULL DEFAULT 0,
	franchise_fee  INTEGER NOT NULL DEFAULT 0,
	royalty_pct    REAL NOT NULL DEFAULT 0,
	ad_fund_pct    REAL NOT NULL DEFAULT 0,
	avg_revenue    INTEGER,
	unit_count     INTEGER NOT NULL DEFAULT 0,
	units_opened   INTEGER NOT NULL DEFAULT 0,
	units_closed   INTEGER NOT NULL DEFAULT 0,
	year_founded   INTEGER NOT NULL DEFAULT 0,
	headquarters   TEXT NOT NULL DEFAULT '',
	website        TEXT NOT NULL DEFAULT '',
	tags           TEXT NOT NULL DEFAULT '[]'
)`

// Store reads and writes franchises in a SQL table. It works against both
// PostgreSQL and SQLite; tags are kept as a JSON array in a text column.
type Store struct {
	db     *sql.DB
	driver string
}

func NewStore(client *database.SQLClient) *Store {
	return &Store{db: client.DB, driver: client.Driver}
}

// bind rewrites ? placeholders to $n for PostgreSQL.
func (s *Store) bind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EnsureSchema creates the franchises table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createFranchisesTable); err != nil {
		return fmt.Errorf("create franchises table: %w", err)
	}
	return nil
}

// List returns every franchise ordered by slug.
func (s *Store) List(ctx context.Context) ([]models.Franchise, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+franchiseColumns+` FROM franchises ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("query franchises: %w", err)
	}
	defer rows.Close()

	var out []models.Franchise
	for rows.Next() {
		f, err := scanFranchise(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate franchises: %w", err)
	}
	return out, nil
}

// Get returns one franchise or ErrNotFound.
func (s *Store) Get(ctx context.Context, slug string) (models.Franchise, error) {
	row := s.db.QueryRowContext(ctx, s.bind(`SELECT `+franchiseColumns+` FROM franchises WHERE slug = ?`), slug)
	f, err := scanFranchise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Franchise{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return f, err
}

// Upsert writes items in a single transaction, replacing rows with the
// same slug.
func (s *Store) Upsert(ctx context.Context, items []models.Franchise) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.bind(`INSERT INTO franchises (`+franchiseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (slug) DO UPDATE SET
			name = excluded.name, category = excluded.category, description = excluded.description,
			investment_min = excluded.investment_min, investment_max = excluded.investment_max,
			franchise_fee = excluded.franchise_fee, royalty_pct = excluded.royalty_pct,
			ad_fund_pct = excluded.ad_fund_pct, avg_revenue = excluded.avg_revenue,
			unit_count = excluded.unit_count, units_opened = excluded.units_opened,
			units_closed = excluded.units_closed, year_founded = excluded.year_founded,
			headquarters = excluded.headquarters, website = excluded.website, tags = excluded.tags`))
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, f := range items {
		tags, err := json.Marshal(nonNil(f.Tags))
		if err != nil {
			return err
		}
		var revenue sql.NullInt64
		if f.AvgRevenue != nil {
			revenue = sql.NullInt64{Int64: int64(*f.AvgRevenue), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			f.Slug, f.Name, f.Category, f.Description, f.InvestmentMin, f.InvestmentMax,
			f.FranchiseFee, f.RoyaltyPct, f.AdFundPct, revenue, f.UnitCount, f.UnitsOpened,
			f.UnitsClosed, f.YearFounded, f.Headquarters, f.Website, string(tags),
		); err != nil {
			return fmt.Errorf("upsert %s: %w", f.Slug, err)
		}
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanFranchise(row scanner) (models.Franchise, error) {
	var (
		f       models.Franchise
		revenue sql.NullInt64
		tags    string
	)
	err := row.Scan(
		&f.Slug, &f.Name, &f.Category, &f.Description, &f.InvestmentMin, &f.InvestmentMax,
		&f.FranchiseFee, &f.RoyaltyPct, &f.AdFundPct, &revenue, &f.UnitCount, &f.UnitsOpened,
		&f.UnitsClosed, &f.YearFounded, &f.Headquarters, &f.Website, &tags,
	)
	if err != nil {
		return f, err
	}
	if revenue.Valid {
		v := int(revenue.Int64)
		f.AvgRevenue = &v
	}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &f.Tags); err != nil {
			return f, fmt.Errorf("decode tags for %s: %w", f.Slug, err)
		}
	}
	return f, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

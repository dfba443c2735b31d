// cmd/fitscore/root.go
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"franchise-fit/internal/catalog"
	"franchise-fit/internal/common/config"
	"franchise-fit/internal/common/database"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/scoring"
)

const app = "fitscore"

var (
	cfgFile string
	v       = viper.New()

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "fitscore scores franchise opportunities against an investor profile",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is configs/config.yaml)")
	rootCmd.PersistentFlags().StringSlice("catalog", nil, "catalog file globs, e.g. 'data/**/*.yaml'")
	rootCmd.PersistentFlags().String("source", "", "catalog source: file, postgres or sqlite")
	rootCmd.PersistentFlags().String("model", "", "scoring model: auto, classic or full")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	_ = v.BindPFlag("catalog.paths", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = v.BindPFlag("catalog.source", rootCmd.PersistentFlags().Lookup("source"))
	_ = v.BindPFlag("scoring.model", rootCmd.PersistentFlags().Lookup("model"))
	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// env bundles what every subcommand needs.
type env struct {
	cfg *config.Config
	log logger.Logger
}

func newEnv() (*env, error) {
	cfg, err := config.LoadWith(v, cfgFile)
	if err != nil {
		return nil, err
	}

	level, format := "warn", "console"
	if v.GetBool("debug") {
		level = "debug"
	}
	if v.GetBool("json") {
		format = "json"
	}
	return &env{cfg: cfg, log: logger.NewCLI(level, format)}, nil
}

func (e *env) engine() (*scoring.Engine, error) {
	model, err := scoring.ParseModel(e.cfg.Scoring.Model)
	if err != nil {
		return nil, err
	}
	opts := []scoring.Option{scoring.WithModel(model)}
	if e.cfg.Scoring.CurrentYear > 0 {
		opts = append(opts, scoring.WithCurrentYear(e.cfg.Scoring.CurrentYear))
	}
	return scoring.New(opts...), nil
}

// openDB connects to the database backing the configured catalog source.
func (e *env) openDB(ctx context.Context) (*database.SQLClient, error) {
	var (
		db  *database.SQLClient
		err error
	)
	switch e.cfg.Catalog.Source {
	case catalog.SourceSQLite:
		db, err = database.NewSQLite(e.cfg.Database.SQLite)
	case catalog.SourcePostgres:
		db, err = database.NewPostgres(e.cfg.Database.Postgres)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect %s: %w", e.cfg.Catalog.Source, err)
	}
	return db, nil
}

func (e *env) catalog(ctx context.Context) (*catalog.Catalog, error) {
	db, err := e.openDB(ctx)
	if err != nil {
		return nil, err
	}
	if db != nil {
		defer db.Close()
	}
	return catalog.Load(ctx, e.cfg.Catalog, db, e.log)
}

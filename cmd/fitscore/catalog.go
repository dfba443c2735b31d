// cmd/fitscore/catalog.go
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"franchise-fit/internal/catalog"
	"franchise-fit/internal/common/database"
	"franchise-fit/internal/results"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and import the franchise catalog",
}

var listFilter catalog.Filter

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog franchises, optionally filtered",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		cat, err := e.catalog(cmd.Context())
		if err != nil {
			return err
		}
		items, err := cat.Filter(listFilter)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SLUG\tNAME\tCATEGORY\tINVESTMENT\tUNITS")
		for _, f := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
				f.Slug, f.Name, f.Category, results.FormatRange(f.InvestmentMin, f.InvestmentMax), f.UnitCount)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d franchises\n", len(items), cat.Len())
		return nil
	},
}

var importIndex bool

var catalogImportCmd = &cobra.Command{
	Use:   "import <glob>...",
	Short: "Load catalog files into the SQLite database and optionally Elasticsearch",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		items, err := catalog.LoadFiles(args)
		if err != nil {
			return err
		}
		// New rejects duplicate slugs and broken ranges before anything is written.
		if _, err := catalog.New(items); err != nil {
			return err
		}

		db, err := database.NewSQLite(e.cfg.Database.SQLite)
		if err != nil {
			return err
		}
		defer db.Close()

		store := catalog.NewStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		if err := store.Upsert(ctx, items); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d franchises into %s\n", len(items), e.cfg.Database.SQLite.Path)

		if !importIndex {
			return nil
		}
		es, err := database.NewElasticsearch(e.cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		index := catalog.NewSearchIndex(es.Client, es.Index)
		if err := index.EnsureIndex(ctx); err != nil {
			return err
		}
		if err := index.IndexAll(ctx, items); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "indexed %d franchises into %s\n", len(items), es.Index)
		return nil
	},
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct categories in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		cat, err := e.catalog(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range cat.Categories() {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogImportCmd, catalogCategoriesCmd)

	catalogListCmd.Flags().StringVarP(&listFilter.Query, "query", "q", "", "name contains (case-insensitive)")
	catalogListCmd.Flags().StringVar(&listFilter.Category, "category", "", "exact category")
	catalogListCmd.Flags().StringVar(&listFilter.Investment, "investment", "", "investment range min-max, e.g. 100000-250000")

	catalogImportCmd.Flags().BoolVar(&importIndex, "index", false, "also push the records to the Elasticsearch index")
}

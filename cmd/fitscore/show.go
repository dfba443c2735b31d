// cmd/fitscore/show.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"franchise-fit/internal/catalog"
	"franchise-fit/internal/results"
)

var showProfile profileFlags

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show one franchise, with its fit breakdown when a profile is given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		cat, err := e.catalog(cmd.Context())
		if err != nil {
			return err
		}
		engine, err := e.engine()
		if err != nil {
			return err
		}

		f, ok := cat.BySlug(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", catalog.ErrNotFound, args[0])
		}

		out := cmd.OutOrStdout()
		results.RenderDetail(out, f, engine.CurrentYear())

		if !cmd.Flags().Changed("profile") && !cmd.Flags().Changed("budget") &&
			!cmd.Flags().Changed("interests") && !cmd.Flags().Changed("style") && !cmd.Flags().Changed("risk") {
			return nil
		}
		p, err := showProfile.resolve()
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		results.RenderBreakdown(out, engine.Score(p, f))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showProfile.register(showCmd)
}

// cmd/fitscore/rank.go
package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"franchise-fit/internal/common/metrics"
	"franchise-fit/internal/models"
	"franchise-fit/internal/results"
)

type rankOptions struct {
	profile profileFlags
	top     int
	asJSON  bool
}

var rankOpts rankOptions

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score every catalog franchise against a profile and list the best matches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		p, err := rankOpts.profile.resolve()
		if err != nil {
			return err
		}
		return e.rank(cmd, p, rankOpts.top, rankOpts.asJSON)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankOpts.profile.register(rankCmd)
	rankCmd.Flags().IntVarP(&rankOpts.top, "top", "n", 0, "number of matches to show (default scoring.top_n)")
	rankCmd.Flags().BoolVar(&rankOpts.asJSON, "output-json", false, "print results as JSON")
}

func (e *env) rank(cmd *cobra.Command, p models.UserProfile, top int, asJSON bool) error {
	cat, err := e.catalog(cmd.Context())
	if err != nil {
		return err
	}
	engine, err := e.engine()
	if err != nil {
		return err
	}
	if top <= 0 {
		top = e.cfg.Scoring.TopN
	}

	scored := results.Top(engine.ScoreAll(p, cat.All()), top)
	for _, s := range scored {
		metrics.ObserveScore(s.Model, s.Score)
	}
	e.log.Debug("ranked catalog", map[string]interface{}{
		"model":   string(engine.ModelFor(p)),
		"catalog": cat.Len(),
		"shown":   len(scored),
	})

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), results.Summarize(scored))
	}
	results.RenderRanking(cmd.OutOrStdout(), scored)
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

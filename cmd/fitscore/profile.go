// cmd/fitscore/profile.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"franchise-fit/internal/common/validation"
	"franchise-fit/internal/models"
	"franchise-fit/internal/profile"
	"franchise-fit/internal/results"
)

// profileFlags are shared by every command that scores.
type profileFlags struct {
	file      string
	budget    string
	interests string
	style     string
	risk      string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "profile", "p", "", "answers file (YAML or JSON)")
	cmd.Flags().StringVar(&f.budget, "budget", "", "short form: budget bucket, e.g. 100-200")
	cmd.Flags().StringVar(&f.interests, "interests", "", "short form: comma separated categories")
	cmd.Flags().StringVar(&f.style, "style", "", "short form: ownership style")
	cmd.Flags().StringVar(&f.risk, "risk", "", "short form: risk tolerance")
}

// resolve reads the answers file when given, otherwise builds a short-form
// profile from flags with the results page defaults.
func (f *profileFlags) resolve() (models.UserProfile, error) {
	if f.file == "" {
		return results.ClassicProfile(f.budget, f.interests, f.style, f.risk), nil
	}
	answers, err := readAnswers(f.file)
	if err != nil {
		return models.UserProfile{}, err
	}
	return decodeAnswers(answers)
}

func readAnswers(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	answers := map[string]interface{}{}
	// JSON documents are valid YAML.
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return answers, nil
}

func decodeAnswers(answers map[string]interface{}) (models.UserProfile, error) {
	p, err := profile.FromAnswers(answers)
	if err != nil {
		return models.UserProfile{}, err
	}
	res, err := validation.ValidateProfile(p)
	if err != nil {
		return models.UserProfile{}, err
	}
	if !res.Valid {
		msgs := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			msgs = append(msgs, e.Field+": "+e.Message)
		}
		return models.UserProfile{}, fmt.Errorf("invalid profile:\n  %s", strings.Join(msgs, "\n  "))
	}
	return p, nil
}

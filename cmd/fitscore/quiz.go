// cmd/fitscore/quiz.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"franchise-fit/internal/quiz"
)

const (
	promptSkip = "Skip"
	promptDone = "Done"
)

var errExit = errors.New("exit requested")

type quizOptions struct {
	short bool
	out   string
	top   int
}

var quizOpts quizOptions

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer the questionnaire interactively and rank the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		var only []string
		if quizOpts.short {
			only = quiz.ShortForm
		}
		answers, err := quiz.Run(promptAsker{}, only)
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return err
		}

		p, err := decodeAnswers(answers)
		if err != nil {
			return err
		}

		if quizOpts.out != "" {
			data, err := yaml.Marshal(answers)
			if err != nil {
				return err
			}
			if err := os.WriteFile(quizOpts.out, data, 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "answers saved to %s\n", quizOpts.out)
		}

		fmt.Fprintln(cmd.OutOrStdout())
		return e.rank(cmd, p, quizOpts.top, false)
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)

	quizCmd.Flags().BoolVarP(&quizOpts.short, "short", "s", false, "only ask the four short-form questions")
	quizCmd.Flags().StringVarP(&quizOpts.out, "out", "o", "", "save answers to this file for later 'rank --profile'")
	quizCmd.Flags().IntVarP(&quizOpts.top, "top", "n", 0, "number of matches to show")
}

// promptAsker drives the questionnaire through promptui.
type promptAsker struct{}

func (promptAsker) Single(q quiz.Question) (string, error) {
	prompt := promptui.Select{
		Label: q.Question,
		Items: append(q.Labels(), promptSkip),
		Size:  len(q.Options) + 1,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", interrupted(err)
	}
	if i >= len(q.Options) {
		return "", nil
	}
	return q.Options[i].Value, nil
}

// Multi re-prompts until Done, toggling one option per round.
func (promptAsker) Multi(q quiz.Question) ([]string, error) {
	picked := make([]bool, len(q.Options))
	for {
		items := make([]string, 0, len(q.Options)+1)
		for i, o := range q.Options {
			mark := "[ ] "
			if picked[i] {
				mark = "[x] "
			}
			items = append(items, mark+o.Label)
		}
		items = append(items, promptDone)

		prompt := promptui.Select{Label: q.Question, Items: items, Size: len(items)}
		i, _, err := prompt.Run()
		if err != nil {
			return nil, interrupted(err)
		}
		if i == len(q.Options) {
			break
		}
		picked[i] = !picked[i]
	}

	var out []string
	for i, ok := range picked {
		if ok {
			out = append(out, q.Options[i].Value)
		}
	}
	return out, nil
}

func (promptAsker) Text(q quiz.Question) (string, error) {
	label := q.Question
	if q.Hint != "" {
		label += " (" + q.Hint + ")"
	}
	prompt := promptui.Prompt{Label: label}
	s, err := prompt.Run()
	if err != nil {
		return "", interrupted(err)
	}
	return s, nil
}

func interrupted(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return errExit
	}
	return err
}

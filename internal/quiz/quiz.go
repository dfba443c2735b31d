// internal/quiz/quiz.go
package quiz

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

type Kind string

const (
	KindSingle Kind = "single"
	KindMulti  Kind = "multi"
	KindText   Kind = "text"
)

type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Desc  string `yaml:"desc,omitempty"`
}

type Question struct {
	ID       string   `yaml:"id"`
	Question string   `yaml:"question"`
	Kind     Kind     `yaml:"type"`
	Hint     string   `yaml:"hint,omitempty"`
	Options  []Option `yaml:"options,omitempty"`
}

type Section struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

// ShortForm lists the questions the classic model scores.
var ShortForm = []string{"budget", "interests", "style", "riskTolerance"}

var (
	sections    []Section
	sectionsErr error
	sectionOnce sync.Once
)

// Sections returns the questionnaire in presentation order.
func Sections() ([]Section, error) {
	sectionOnce.Do(func() {
		var doc struct {
			Sections []Section `yaml:"sections"`
		}
		if err := yaml.Unmarshal(questionsYAML, &doc); err != nil {
			sectionsErr = fmt.Errorf("decode questionnaire: %w", err)
			return
		}
		sections = doc.Sections
	})
	return sections, sectionsErr
}

// Asker collects one answer. Single returns an option value, Multi zero or
// more option values and Text free text, possibly empty.
type Asker interface {
	Single(q Question) (string, error)
	Multi(q Question) ([]string, error)
	Text(q Question) (string, error)
}

// Run walks the questionnaire and returns the answers keyed by question id,
// ready for profile.FromAnswers. A non-empty only restricts the walk to
// those ids. Unanswered questions are left out.
func Run(a Asker, only []string) (map[string]interface{}, error) {
	secs, err := Sections()
	if err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(only))
	for _, id := range only {
		want[id] = true
	}

	answers := make(map[string]interface{})
	for _, s := range secs {
		for _, q := range s.Questions {
			if len(want) > 0 && !want[q.ID] {
				continue
			}
			switch q.Kind {
			case KindMulti:
				vals, err := a.Multi(q)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", q.ID, err)
				}
				if len(vals) > 0 {
					answers[q.ID] = vals
				}
			case KindText:
				v, err := a.Text(q)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", q.ID, err)
				}
				if v = strings.TrimSpace(v); v != "" {
					answers[q.ID] = v
				}
			default:
				v, err := a.Single(q)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", q.ID, err)
				}
				if v != "" {
					answers[q.ID] = v
				}
			}
		}
	}
	return answers, nil
}

// Labels maps option values back to display labels for q.
func (q Question) Labels() []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Label
	}
	return out
}

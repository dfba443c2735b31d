// internal/profile/decode.go
package profile

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"franchise-fit/internal/models"
)

// FromAnswers decodes questionnaire answers keyed by question id into a
// profile. Multi-select answers may arrive as a list or as a
// comma-separated string; unknown keys are ignored.
func FromAnswers(answers map[string]interface{}) (models.UserProfile, error) {
	var p models.UserProfile
	if len(answers) == 0 {
		return p, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return p, err
	}
	if err := dec.Decode(answers); err != nil {
		return p, fmt.Errorf("decode answers: %w", err)
	}

	p.Interests = compact(p.Interests)
	p.FranchiseModels = compact(p.FranchiseModels)
	p.CoreValues = compact(p.CoreValues)
	return p, nil
}

// ToAnswers is the inverse of FromAnswers, omitting unanswered questions.
func ToAnswers(p models.UserProfile) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if err := mapstructure.Decode(p, &out); err != nil {
		return nil, err
	}
	for k, v := range out {
		switch val := v.(type) {
		case string:
			if val == "" {
				delete(out, k)
			}
		case []string:
			if len(val) == 0 {
				delete(out, k)
			}
		}
	}
	return out, nil
}

func compact(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

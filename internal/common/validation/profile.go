// internal/common/validation/profile.go
package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"franchise-fit/internal/models"
)

//go:embed profile.schema.json
var profileSchemaJSON string

var (
	profileSchema     *gojsonschema.Schema
	profileSchemaErr  error
	profileSchemaOnce sync.Once
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Fields returns the distinct fields that failed, sorted.
func (r *ValidationResult) Fields() []string {
	seen := make(map[string]struct{}, len(r.Errors))
	fields := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if _, ok := seen[e.Field]; ok {
			continue
		}
		seen[e.Field] = struct{}{}
		fields = append(fields, e.Field)
	}
	sort.Strings(fields)
	return fields
}

func loadProfileSchema() (*gojsonschema.Schema, error) {
	profileSchemaOnce.Do(func() {
		profileSchema, profileSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(profileSchemaJSON))
	})
	return profileSchema, profileSchemaErr
}

// ValidateAnswers checks raw questionnaire answers against the profile
// schema. Unknown keys and values outside a question's vocabulary are
// reported; scoring still treats them as unanswered.
func ValidateAnswers(answers map[string]interface{}) (*ValidationResult, error) {
	schema, err := loadProfileSchema()
	if err != nil {
		return nil, fmt.Errorf("load profile schema: %w", err)
	}
	if answers == nil {
		answers = map[string]interface{}{}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(answers))
	if err != nil {
		return nil, fmt.Errorf("validate answers: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldOf(desc),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}
	return out, nil
}

// ValidateProfile validates an already decoded profile.
func ValidateProfile(p models.UserProfile) (*ValidationResult, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var answers map[string]interface{}
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, err
	}
	return ValidateAnswers(answers)
}

func fieldOf(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if field == "(root)" {
		if prop, ok := desc.Details()["property"].(string); ok {
			return prop
		}
	}
	// array items come back as "interests.1"
	if i := strings.IndexByte(field, '.'); i > 0 {
		return field[:i]
	}
	return field
}

// internal/profile/decode_test.go
package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"franchise-fit/internal/models"
)

func TestFromAnswers(t *testing.T) {
	tests := []struct {
		name           string
		answers        map[string]interface{}
		validateOutput func(t *testing.T, p models.UserProfile)
	}{
		{
			name:    "nil answers give an empty profile",
			answers: nil,
			validateOutput: func(t *testing.T, p models.UserProfile) {
				assert.True(t, p.IsEmpty())
			},
		},
		{
			name: "short form with list interests",
			answers: map[string]interface{}{
				"budget":        "100-200",
				"interests":     []interface{}{"Fitness", " Pet Services "},
				"style":         "owner-operator",
				"riskTolerance": "moderate",
			},
			validateOutput: func(t *testing.T, p models.UserProfile) {
				assert.Equal(t, "100-200", p.Budget)
				assert.Equal(t, []string{"Fitness", "Pet Services"}, p.Interests)
				assert.False(t, p.HasExtendedFields())
			},
		},
		{
			name: "comma separated multi-select and numeric timeline",
			answers: map[string]interface{}{
				"interests":       "Food & Beverage,,Education",
				"franchiseModels": "services,mobile",
				"timeline":        6,
				"unknownQuestion": "ignored",
			},
			validateOutput: func(t *testing.T, p models.UserProfile) {
				assert.Equal(t, []string{"Food & Beverage", "Education"}, p.Interests)
				assert.Equal(t, []string{"services", "mobile"}, p.FranchiseModels)
				assert.Equal(t, "6", p.Timeline)
				assert.True(t, p.HasExtendedFields())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromAnswers(tt.answers)
			require.NoError(t, err)
			tt.validateOutput(t, p)
		})
	}
}

func TestToAnswers(t *testing.T) {
	p := models.UserProfile{
		Budget:     "200-350",
		Interests:  []string{"Fitness"},
		HoursYear1: "50+",
	}

	answers, err := ToAnswers(p)
	require.NoError(t, err)
	assert.Len(t, answers, 3)
	assert.Equal(t, "50+", answers["hoursYear1"])

	back, err := FromAnswers(answers)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

// internal/workers/profile/validate-profile/handler_test.go
package validateprofile

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/models"
	"franchise-fit/internal/profile"
)

// ==========================
// Test Helper Functions
// ==========================

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) Save(ctx context.Context, userID string, p models.UserProfile) error {
	return m.Called(ctx, userID, p).Error(0)
}

func shortForm() map[string]interface{} {
	return map[string]interface{}{
		"budget":        "100-200",
		"interests":     []interface{}{"Fitness"},
		"style":         "owner-operator",
		"riskTolerance": "moderate",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	strict := true
	tests := []struct {
		name           string
		config         *Config
		input          *Input
		expectError    bool
		errorCode      errors.ErrorCode
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:  "short form selects classic model",
			input: &Input{Answers: shortForm()},
			validateOutput: func(t *testing.T, out *Output) {
				assert.True(t, out.Valid)
				assert.Equal(t, "classic", out.Model)
				require.NotNil(t, out.Profile)
				assert.Equal(t, []string{"Fitness"}, out.Profile.Interests)
				assert.False(t, out.Persisted)
			},
		},
		{
			name: "extended answers select full model",
			input: &Input{Answers: map[string]interface{}{
				"budget":          "200-350",
				"managementYears": "5-10",
				"education":       "bachelors",
			}},
			validateOutput: func(t *testing.T, out *Output) {
				assert.True(t, out.Valid)
				assert.Equal(t, "full", out.Model)
			},
		},
		{
			name:  "invalid answers complete with errors",
			input: &Input{Answers: map[string]interface{}{"budget": "a lot"}},
			validateOutput: func(t *testing.T, out *Output) {
				assert.False(t, out.Valid)
				assert.Nil(t, out.Profile)
				require.Len(t, out.Errors, 1)
				assert.Equal(t, "budget", out.Errors[0].Field)
			},
		},
		{
			name:        "strict config throws",
			config:      &Config{Strict: true},
			input:       &Input{Answers: map[string]interface{}{"style": "remote"}},
			expectError: true,
			errorCode:   errors.ErrCodeProfileValidationFailed,
		},
		{
			name:        "strict input overrides config",
			input:       &Input{Answers: map[string]interface{}{"unknownQuestion": "x"}, Strict: &strict},
			expectError: true,
			errorCode:   errors.ErrCodeProfileValidationFailed,
		},
		{
			name:        "persist without user id",
			input:       &Input{Answers: shortForm(), Persist: true},
			expectError: true,
			errorCode:   errors.ErrCodeInvalidInput,
		},
		{
			name:        "persist without store",
			input:       &Input{UserID: "u-1", Answers: shortForm(), Persist: true},
			expectError: true,
			errorCode:   errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.config, nil, nil, logger.NewTestLogger(t))
			out, err := h.Execute(context.Background(), tt.input)

			if tt.expectError {
				require.Error(t, err)
				stdErr, ok := errors.AsStandardError(err)
				require.True(t, ok)
				assert.Equal(t, tt.errorCode, stdErr.Code)
				return
			}
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

// ==========================
// Persistence Tests
// ==========================

func TestHandler_Execute_PersistsToStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := profile.NewStore(nil, rdb, profile.Options{}, logger.NewNoOpLogger())

	h := NewHandler(nil, store, nil, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), &Input{UserID: "u-42", Answers: shortForm(), Persist: true})
	require.NoError(t, err)
	assert.True(t, out.Persisted)

	got, err := store.Get(context.Background(), "u-42")
	require.NoError(t, err)
	assert.Equal(t, "100-200", got.Budget)
	assert.Equal(t, "moderate", got.RiskTolerance)
}

func TestHandler_Execute_SaveFailure(t *testing.T) {
	w := &mockWriter{}
	w.On("Save", mock.Anything, "u-1", mock.Anything).Return(assert.AnError)

	h := NewHandler(nil, w, nil, logger.NewTestLogger(t))
	_, err := h.Execute(context.Background(), &Input{UserID: "u-1", Answers: shortForm(), Persist: true})

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeQueryExecutionFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	w.AssertExpectations(t)
}

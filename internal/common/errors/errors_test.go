// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRetryCount(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeCatalogLoadFailed, 3},
		{ErrCodeQueryExecutionFailed, 3},
		{ErrCodeSearchQueryFailed, 3},
		{ErrCodeNotificationSendFailed, 3},
		{ErrCodeQueryTimeout, 2},
		{ErrCodeSearchTimeout, 2},
		{ErrCodeProfileNotFound, 0},
		{ErrCodeFranchiseNotFound, 0},
		{ErrCodeInvalidFilterFormat, 0},
		{ErrCodeProfileValidationFailed, 0},
		{ErrCodeScoringFailed, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetRetryCount(tt.code))
			assert.Equal(t, tt.expected > 0, IsRetryableErrorCode(tt.code))
		})
	}
}

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewFranchiseNotFoundError("burger-barn").WithMetadata("slug", "burger-barn")

	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "FRANCHISE_NOT_FOUND", bpmnErr.Code)
	assert.False(t, bpmnErr.Retryable)
	assert.Equal(t, 0, bpmnErr.Retries)
	assert.Equal(t, "burger-barn", bpmnErr.ErrorVariables["slug"])

	vars := bpmnErr.ToErrorVariables()
	assert.Equal(t, "FRANCHISE_NOT_FOUND", vars["errorCode"])
	assert.Equal(t, "slug: burger-barn", vars["errorDetails"])
	assert.Equal(t, "FRANCHISE_NOT_FOUND", vars["originalErrorCode"])
}

func TestConvertToBPMNError_RetryableTechnicalError(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewSearchQueryFailedError("franchise_search", errors.New("503")))

	assert.Equal(t, "SEARCH_QUERY_FAILED", bpmnErr.Code)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, 3, bpmnErr.Retries)
}

func TestAsStandardError_Unwraps(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("load catalog: %w", NewCatalogLoadFailedError("postgres", cause))

	stdErr, ok := AsStandardError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeCatalogLoadFailed, stdErr.Code)
	assert.ErrorIs(t, wrapped, cause)
}

func TestNormalize_PlainError(t *testing.T) {
	stdErr := Normalize(errors.New("boom"))
	assert.Equal(t, ErrCodeInternal, stdErr.Code)
	assert.False(t, stdErr.Retryable)
	assert.Equal(t, "boom", stdErr.Details)
}

func TestRemainingRetries(t *testing.T) {
	job := func(retries int32) entities.Job {
		return entities.Job{ActivatedJob: &pb.ActivatedJob{Retries: retries}}
	}

	assert.Equal(t, int32(1), remainingRetries(job(2), 3))
	assert.Equal(t, int32(3), remainingRetries(job(5), 3))
	assert.Equal(t, int32(3), remainingRetries(job(0), 3))
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "PROFILE", GetErrorCategory(ErrCodeProfileNotFound))
	assert.Equal(t, "CATALOG", GetErrorCategory(ErrCodeFranchiseNotFound))
	assert.Equal(t, "CATALOG", GetErrorCategory(ErrCodeCatalogLoadFailed))
	assert.Equal(t, "DATABASE", GetErrorCategory(ErrCodeQueryTimeout))
	assert.Equal(t, "SEARCH", GetErrorCategory(ErrCodeIndexNotFound))
	assert.Equal(t, "NOTIFICATION", GetErrorCategory(ErrCodeNotificationSendFailed))
	assert.Equal(t, "SCORING", GetErrorCategory(ErrCodeScoringFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidFilterFormat))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

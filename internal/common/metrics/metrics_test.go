// internal/common/metrics/metrics_test.go
package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveScore(t *testing.T) {
	before := testutil.ToFloat64(FranchisesScored.WithLabelValues("classic"))

	ObserveScore("classic", 72)
	ObserveScore("classic", 88)

	assert.Equal(t, before+2, testutil.ToFloat64(FranchisesScored.WithLabelValues("classic")))
}

func TestCatalogSize(t *testing.T) {
	CatalogSize.WithLabelValues("file").Set(42)
	assert.Equal(t, 42.0, testutil.ToFloat64(CatalogSize.WithLabelValues("file")))
}

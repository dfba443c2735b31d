// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	FranchisesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "franchises_scored_total",
			Help: "Franchises scored, by resolved scoring model",
		},
		[]string{"model"},
	)

	CompositeScores = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "franchise_composite_score",
			Help:    "Distribution of composite fit scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
		[]string{"model"},
	)

	CatalogSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_franchises",
			Help: "Franchises in the most recently loaded catalog",
		},
		[]string{"source"},
	)

	ProfileLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_lookups_total",
			Help: "Profile store lookups by result (cache_hit, db_hit, miss, error)",
		},
		[]string{"result"},
	)

	ReportsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_reports_sent_total",
			Help: "Match report deliveries by channel and status",
		},
		[]string{"channel", "status"},
	)
)

// ObserveScore records one scored franchise.
func ObserveScore(model string, score int) {
	FranchisesScored.WithLabelValues(model).Inc()
	CompositeScores.WithLabelValues(model).Observe(float64(score))
}

// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"time"

	"franchise-fit/internal/common/config"
	"franchise-fit/internal/common/errors"
	"franchise-fit/internal/common/logger"
	"franchise-fit/internal/common/metrics"
	"franchise-fit/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.opentelemetry.io/otel/attribute"
)

// JobFunc does the work of one job and returns the variables to complete it
// with.
type JobFunc func(ctx context.Context) (interface{}, error)

// Runner wraps a worker's job function with a timeout, a span, metrics and
// the shared Zeebe complete/fail handling.
type Runner struct {
	taskType string
	timeout  time.Duration
	obs      *observability.Observability
	errs     *errors.ErrorHandler
	logger   logger.Logger
}

// NewRunner returns a Runner for taskType. obs may be nil.
func NewRunner(taskType string, timeout time.Duration, obs *observability.Observability, log logger.Logger) *Runner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if obs == nil {
		obs, _ = observability.New(observability.Options{})
	}
	return &Runner{
		taskType: taskType,
		timeout:  timeout,
		obs:      obs,
		errs:     errors.NewErrorHandler(log),
		logger:   log,
	}
}

// Run executes fn for job and completes or fails the job.
func (r *Runner) Run(client worker.JobClient, job entities.Job, fn JobFunc) {
	start := time.Now()
	active := metrics.WorkerJobsActive.WithLabelValues(r.taskType)
	active.Inc()
	defer active.Dec()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	ctx, span := r.obs.StartSpan(ctx, r.taskType,
		attribute.Int64("job.key", job.Key),
		attribute.Int64("process.instance.key", job.ProcessInstanceKey),
	)

	log := r.logger.WithFields(map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})
	if traceID := observability.TraceID(ctx); traceID != "" {
		log = log.WithFields(map[string]interface{}{"traceId": traceID})
	}
	log.Info("processing job", nil)

	output, err := fn(ctx)

	// Job commands get their own deadline so a slow fn cannot strand the job.
	sendCtx, sendCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer sendCancel()

	if err == nil {
		err = r.complete(sendCtx, client, job, output)
	}
	observability.EndSpan(span, err)

	status := "completed"
	if err != nil {
		status = "failed"
		metrics.WorkerJobsFailed.WithLabelValues(r.taskType, string(errors.Normalize(err).Code)).Inc()
		r.errs.HandleJobError(sendCtx, client, job, err)
	} else {
		metrics.WorkerJobsCompleted.WithLabelValues(r.taskType).Inc()
		log.Info("job completed", map[string]interface{}{"durationMs": time.Since(start).Milliseconds()})
	}

	metrics.WorkerJobDuration.WithLabelValues(r.taskType).Observe(time.Since(start).Seconds())
	r.obs.RecordJobProcessed(ctx, r.taskType, status)
	r.obs.RecordJobDuration(ctx, r.taskType, time.Since(start), status)
}

func (r *Runner) complete(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return errors.NewInvalidInputError("encode output: " + err.Error())
	}
	if _, err := cmd.Send(ctx); err != nil {
		r.logger.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
	}
	return nil
}

// StartWorker opens a job worker for taskType when it is enabled and returns
// it so the caller can close it on shutdown.
func StartWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handler worker.JobHandler, log logger.Logger) worker.JobWorker {
	if !wcfg.Enabled {
		log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return nil
	}

	jw := client.NewJobWorker().
		JobType(taskType).
		Handler(handler).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Open()

	log.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})
	return jw
}

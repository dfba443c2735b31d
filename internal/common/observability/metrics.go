// internal/common/observability/metrics.go
package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability owns the OpenTelemetry meter and tracer providers.
type Observability struct {
	meterProvider  *metric.MeterProvider
	meter          otelmetric.Meter
	jobCounter     otelmetric.Int64Counter
	jobDuration    otelmetric.Float64Histogram
	rankedCounter  otelmetric.Int64Counter
	tracerProvider tracerShutdowner
	tracer         tracer
}

// Options mirrors the observability config section.
type Options struct {
	ServiceName    string
	MetricsEnabled bool
	TracingEnabled bool
	SampleRatio    float64
}

// New builds the providers. A provider that fails to start is replaced by a
// no-op so workers never block on telemetry.
func New(opts Options) (*Observability, error) {
	o := &Observability{tracer: noopTracer()}
	var errs []error

	if opts.MetricsEnabled {
		if err := o.initMetrics(opts.ServiceName); err != nil {
			errs = append(errs, err)
		}
	}
	if opts.TracingEnabled {
		o.initTracing(opts.ServiceName, opts.SampleRatio)
	}
	return o, errors.Join(errs...)
}

func (o *Observability) initMetrics(serviceName string) error {
	exporter, err := prometheus.New()
	if err != nil {
		return err
	}

	o.meterProvider = metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(o.meterProvider)
	o.meter = o.meterProvider.Meter(serviceName)

	o.jobCounter, _ = o.meter.Int64Counter(
		"jobs.processed",
		otelmetric.WithDescription("Number of jobs processed"),
	)
	o.jobDuration, _ = o.meter.Float64Histogram(
		"jobs.duration",
		otelmetric.WithDescription("Job processing duration"),
		otelmetric.WithUnit("ms"),
	)
	o.rankedCounter, _ = o.meter.Int64Counter(
		"franchises.ranked",
		otelmetric.WithDescription("Franchises returned by ranking runs"),
	)
	return nil
}

func (o *Observability) RecordJobProcessed(ctx context.Context, taskType, status string) {
	if o.jobCounter != nil {
		o.jobCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("task_type", taskType),
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordJobDuration(ctx context.Context, taskType string, duration time.Duration, status string) {
	if o.jobDuration != nil {
		o.jobDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("task_type", taskType),
			attribute.String("status", status),
		))
	}
}

// RecordRanked counts the franchises a ranking run returned.
func (o *Observability) RecordRanked(ctx context.Context, model string, n int) {
	if o.rankedCounter != nil {
		o.rankedCounter.Add(ctx, int64(n), otelmetric.WithAttributes(attribute.String("model", model)))
	}
}

// Shutdown flushes both providers.
func (o *Observability) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var errs []error
	if o.meterProvider != nil {
		errs = append(errs, o.meterProvider.Shutdown(ctx))
	}
	if o.tracerProvider != nil {
		errs = append(errs, o.tracerProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

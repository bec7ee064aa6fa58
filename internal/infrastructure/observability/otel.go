package observability

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/zatekoja/costnavigator"

// Metrics holds all application metrics
type Metrics struct {
	RequestCount     metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	DBQueryDuration  metric.Float64Histogram
	CacheHitCount    metric.Int64Counter
	CacheMissCount   metric.Int64Counter
	IntentParseCount metric.Int64Counter
	ModelDuration    metric.Float64Histogram
	SearchResults    metric.Int64Histogram
}

// SetupOptions selects which signals are exported
type SetupOptions struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	ExportLogs     bool
}

// Setup initializes OpenTelemetry trace, metric and (optionally) log export.
// The returned function flushes and stops every provider that was started.
func Setup(ctx context.Context, opts SetupOptions) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(opts.ServiceName),
			semconv.ServiceVersion(opts.ServiceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(opts.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	shutdowns = append(shutdowns, tracerProvider.Shutdown)

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(opts.Endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(15*time.Second))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)
	shutdowns = append(shutdowns, meterProvider.Shutdown)

	if err := runtime.Start(
		runtime.WithMeterProvider(meterProvider),
		runtime.WithMinimumReadMemStatsInterval(15*time.Second),
	); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	if opts.ExportLogs {
		logExporter, err := otlploggrpc.New(ctx,
			otlploggrpc.WithEndpoint(opts.Endpoint),
			otlploggrpc.WithInsecure(),
		)
		if err != nil {
			_ = shutdown(ctx)
			return nil, err
		}
		loggerProvider := sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
			sdklog.WithResource(res),
		)
		attachLogExport(loggerProvider.Logger(instrumentationName))
		shutdowns = append(shutdowns, loggerProvider.Shutdown)
	}

	return shutdown, nil
}

var (
	metricsOnce sync.Once
	metricsInst *Metrics
	metricsErr  error
)

// InitMetrics creates the application instruments on the global meter.
// Instruments created before Setup forward to the real provider once it is installed.
func InitMetrics() (*Metrics, error) {
	metricsOnce.Do(func() {
		metricsInst, metricsErr = newMetrics(otel.Meter(instrumentationName))
	})
	return metricsInst, metricsErr
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	if m.RequestCount, err = meter.Int64Counter(
		"http.server.request.count",
		metric.WithDescription("Number of HTTP requests"),
	); err != nil {
		return nil, err
	}
	if m.RequestDuration, err = meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}
	if m.DBQueryDuration, err = meter.Float64Histogram(
		"db.query.duration",
		metric.WithDescription("Database query duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}
	if m.CacheHitCount, err = meter.Int64Counter(
		"cache.hit.count",
		metric.WithDescription("Number of cache hits"),
	); err != nil {
		return nil, err
	}
	if m.CacheMissCount, err = meter.Int64Counter(
		"cache.miss.count",
		metric.WithDescription("Number of cache misses"),
	); err != nil {
		return nil, err
	}
	if m.IntentParseCount, err = meter.Int64Counter(
		"intent.parse.count",
		metric.WithDescription("Questions parsed, by strategy and outcome"),
	); err != nil {
		return nil, err
	}
	if m.ModelDuration, err = meter.Float64Histogram(
		"intent.model.duration",
		metric.WithDescription("Language model call duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}
	if m.SearchResults, err = meter.Int64Histogram(
		"search.results",
		metric.WithDescription("Providers returned per search after ranking"),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func metrics() *Metrics {
	m, err := InitMetrics()
	if err != nil {
		return nil
	}
	return m
}

// StartSpan starts a new trace span
func StartSpan(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.Tracer(instrumentationName)
	return tracer.Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// RecordError records an error in the current span
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
}

// RecordRequestMetric records an HTTP request
func RecordRequestMetric(ctx context.Context, method, route string, statusCode int, duration time.Duration) {
	m := metrics()
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", statusCode),
	)
	m.RequestCount.Add(ctx, 1, attrs)
	m.RequestDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

// RecordDBMetric records a database operation metric
func RecordDBMetric(ctx context.Context, operation string, duration time.Duration) {
	if m := metrics(); m != nil {
		m.DBQueryDuration.Record(ctx, float64(duration.Microseconds())/1000,
			metric.WithAttributes(attribute.String("db.operation", operation)))
	}
}

// RecordCacheHit records a cache hit for a key family such as "zip"
func RecordCacheHit(ctx context.Context, family string) {
	if m := metrics(); m != nil {
		m.CacheHitCount.Add(ctx, 1, metric.WithAttributes(attribute.String("cache.family", family)))
	}
}

// RecordCacheMiss records a cache miss for a key family
func RecordCacheMiss(ctx context.Context, family string) {
	if m := metrics(); m != nil {
		m.CacheMissCount.Add(ctx, 1, metric.WithAttributes(attribute.String("cache.family", family)))
	}
}

// RecordIntentParse counts a parse by the strategy that answered and its outcome
func RecordIntentParse(ctx context.Context, strategy, outcome string) {
	if m := metrics(); m != nil {
		m.IntentParseCount.Add(ctx, 1, metric.WithAttributes(
			attribute.String("strategy", strategy),
			attribute.String("outcome", outcome),
		))
	}
}

// RecordModelCall records the latency of one language model request
func RecordModelCall(ctx context.Context, model, status string, duration time.Duration) {
	if m := metrics(); m != nil {
		m.ModelDuration.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(
			attribute.String("model", model),
			attribute.String("status", status),
		))
	}
}

// RecordSearchResults records how many providers a search returned
func RecordSearchResults(ctx context.Context, sort string, n int) {
	if m := metrics(); m != nil {
		m.SearchResults.Record(ctx, int64(n), metric.WithAttributes(attribute.String("sort", sort)))
	}
}

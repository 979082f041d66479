// Package observability bootstraps OpenTelemetry tracing and metrics for
// the console. It is env driven and off by default: set OMNIA_OTEL_ENABLED
// and an OTLP endpoint to turn it on.
package observability

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Observability holds the console's tracer and request instruments. The
// zero-value disabled instance is safe to use everywhere.
type Observability struct {
	enabled bool
	tracer  trace.Tracer

	shutdown func(context.Context) error

	requests   metric.Int64Counter
	requestDur metric.Float64Histogram
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Init reads the OTel environment and builds exporters when enabled.
// Failures disable observability rather than blocking startup.
func Init(ctx context.Context, log logr.Logger) *Observability {
	disabled := &Observability{
		tracer:   otel.Tracer("omnia/console"),
		shutdown: func(context.Context) error { return nil },
	}

	if !strings.EqualFold(getEnv("OMNIA_OTEL_ENABLED", ""), "true") {
		return disabled
	}

	serviceName := firstNonEmpty(
		getEnv("OMNIA_OTEL_SERVICE_NAME", ""),
		getEnv("OTEL_SERVICE_NAME", ""),
		"omnia-console",
	)
	endpoint := firstNonEmpty(
		getEnv("OMNIA_OTEL_OTLP_ENDPOINT", ""),
		getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	)
	protocol := strings.ToLower(firstNonEmpty(
		getEnv("OMNIA_OTEL_OTLP_PROTOCOL", ""),
		getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", ""),
		"grpc",
	))
	resAttrStr := firstNonEmpty(
		getEnv("OMNIA_OTEL_RESOURCE_ATTRIBUTES", ""),
		getEnv("OTEL_RESOURCE_ATTRIBUTES", ""),
	)

	if endpoint == "" {
		log.Info("observability enabled but no OTLP endpoint set; skipping OTel bootstrap")
		return disabled
	}

	res := buildResource(ctx, serviceName, resAttrStr, log)
	tracerProvider, meterProvider, err := buildProviders(ctx, protocol, endpoint, res)
	if err != nil {
		log.Error(err, "failed to initialize OTel exporters")
		return disabled
	}

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)

	o := &Observability{
		enabled: true,
		tracer:  otel.Tracer("omnia/console"),
		shutdown: func(ctx context.Context) error {
			var firstErr error
			if err := tracerProvider.Shutdown(ctx); err != nil {
				firstErr = err
			}
			if err := meterProvider.Shutdown(ctx); err != nil && firstErr == nil {
				firstErr = err
			}
			return firstErr
		},
	}
	o.initMetrics(log)
	return o
}

// Shutdown flushes exporters.
func (o *Observability) Shutdown(ctx context.Context) error {
	if o == nil || o.shutdown == nil {
		return nil
	}
	return o.shutdown(ctx)
}

func buildResource(ctx context.Context, serviceName, attrsCSV string, log logr.Logger) *resource.Resource {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(serviceName),
		attribute.String("service.namespace", "omnia"),
	}
	for k, v := range parseResourceAttributes(attrsCSV) {
		attrs = append(attrs, attribute.String(k, v))
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(attrs...),
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcess(),
	)
	if err != nil {
		log.Error(err, "failed building OTel resource, using defaults")
		return resource.Default()
	}
	return res
}

func buildProviders(
	ctx context.Context,
	protocol string,
	endpoint string,
	res *resource.Resource,
) (*sdktrace.TracerProvider, *sdkmetric.MeterProvider, error) {
	cleanEndpoint, insecure := normalizeEndpoint(endpoint)

	var (
		traceExp sdktrace.SpanExporter
		metricRM sdkmetric.Reader
		err      error
	)

	switch protocol {
	case "http/protobuf":
		traceOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cleanEndpoint)}
		metricOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cleanEndpoint)}
		if insecure {
			traceOpts = append(traceOpts, otlptracehttp.WithInsecure())
			metricOpts = append(metricOpts, otlpmetrichttp.WithInsecure())
		}
		traceExp, err = otlptracehttp.New(ctx, traceOpts...)
		if err != nil {
			return nil, nil, err
		}
		metricExp, err := otlpmetrichttp.New(ctx, metricOpts...)
		if err != nil {
			return nil, nil, err
		}
		metricRM = sdkmetric.NewPeriodicReader(metricExp)
	default:
		traceOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cleanEndpoint)}
		metricOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cleanEndpoint)}
		if insecure {
			traceOpts = append(traceOpts, otlptracegrpc.WithInsecure())
			metricOpts = append(metricOpts, otlpmetricgrpc.WithInsecure())
		}
		traceExp, err = otlptracegrpc.New(ctx, traceOpts...)
		if err != nil {
			return nil, nil, err
		}
		metricExp, err := otlpmetricgrpc.New(ctx, metricOpts...)
		if err != nil {
			return nil, nil, err
		}
		metricRM = sdkmetric.NewPeriodicReader(metricExp)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(metricRM),
		sdkmetric.WithResource(res),
	)
	return tp, mp, nil
}

func normalizeEndpoint(endpoint string) (string, bool) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", true
	}
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		u, err := url.Parse(endpoint)
		if err == nil && u.Host != "" {
			return u.Host, u.Scheme != "https"
		}
	}
	return endpoint, true
}

func parseResourceAttributes(csv string) map[string]string {
	out := map[string]string{}
	if strings.TrimSpace(csv) == "" {
		return out
	}
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.TrimSpace(kv[0])
		v := strings.TrimSpace(kv[1])
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func (o *Observability) initMetrics(log logr.Logger) {
	meter := otel.Meter("omnia/console")
	var err error

	o.requests, err = meter.Int64Counter("omnia.console.requests")
	if err != nil {
		log.Error(err, "failed creating metric omnia.console.requests")
	}
	o.requestDur, err = meter.Float64Histogram("omnia.console.request.duration")
	if err != nil {
		log.Error(err, "failed creating metric omnia.console.request.duration")
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware traces console requests and records request metrics. A no-op
// when observability is disabled.
func (o *Observability) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if o == nil || !o.enabled || r.Header.Get("Upgrade") == "websocket" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, span := o.tracer.Start(r.Context(), "console.request",
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("url.path", r.URL.Path),
			))
		defer span.End()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.status_code", sw.status))
		if sw.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(sw.status))
		}

		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.Int("status", sw.status),
		)
		if o.requests != nil {
			o.requests.Add(ctx, 1, attrs)
		}
		if o.requestDur != nil {
			o.requestDur.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)
		}
	})
}

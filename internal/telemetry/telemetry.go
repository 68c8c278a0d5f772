// Package telemetry provides OpenTelemetry tracing for the hunt.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "treasurehunter"
	serviceVersion = "0.1.0"

	// APIKeyEnv and DatasetEnv name the variables main turns into OTEL_* settings.
	APIKeyEnv  = "HONEYCOMB_TREASUREHUNTER_API_KEY"
	DatasetEnv = "HONEYCOMB_TREASUREHUNTER_DATASET"
)

// Setup installs a global tracer provider exporting over OTLP HTTP, reading
// the standard OTEL_EXPORTER_OTLP_* variables. The game mode is recorded as a
// resource attribute.
//
// The returned shutdown flushes pending spans.
func Setup(ctx context.Context, mode string) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(resourceAttributes(mode)...))
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func resourceAttributes(mode string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("game.mode", mode),
	}
}

// Enabled reports whether an API key is configured. Without one, main skips
// Setup and every span goes to the default no-op provider.
func Enabled() bool {
	return os.Getenv(APIKeyEnv) != ""
}

// ConfigureHoneycomb points the OTLP exporter at Honeycomb using the API key
// and dataset variables.
func ConfigureHoneycomb() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv(APIKeyEnv)
	dataset := os.Getenv(DatasetEnv)
	if dataset == "" {
		dataset = serviceName
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			"x-honeycomb-team="+apiKey+",x-honeycomb-dataset="+dataset)
	}
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

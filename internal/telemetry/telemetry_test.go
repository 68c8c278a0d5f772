package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("spans should be no-ops before Setup")
	}
}

func TestResourceAttributesCarryMode(t *testing.T) {
	attrs := make(map[string]string)
	for _, kv := range resourceAttributes("samurai") {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}

	if attrs["game.mode"] != "samurai" {
		t.Errorf("game.mode = %q, want samurai", attrs["game.mode"])
	}
	if attrs["service.name"] != "treasurehunter" {
		t.Errorf("service.name = %q", attrs["service.name"])
	}
}

func TestConfigureHoneycomb(t *testing.T) {
	t.Setenv(APIKeyEnv, "secret")
	t.Setenv(DatasetEnv, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if !Enabled() {
		t.Fatal("Enabled() should be true with an API key")
	}
	ConfigureHoneycomb()

	want := "x-honeycomb-team=secret,x-honeycomb-dataset=treasurehunter"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "https://api.honeycomb.io" {
		t.Errorf("endpoint = %q", got)
	}
}

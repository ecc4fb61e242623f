package tracing

import (
	"testing"

	"github.com/clientbook/clientbook/config"
	"github.com/clientbook/clientbook/pkg/logger"
)

func TestInitTracing_Disabled(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled: false,
	}

	if err := InitTracing(cfg, logger.NewTestLogger(t)); err != nil {
		t.Fatalf("Expected no error when tracing is disabled, got: %v", err)
	}
}

func TestInitTracing_WithInvalidExporter(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:       true,
		TraceExporter: "invalid",
	}

	if err := InitTracing(cfg, logger.NewTestLogger(t)); err == nil {
		t.Error("Expected error with invalid exporter, got nil")
	}
}

func TestInitTracing_WithNoneExporters(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:             true,
		SamplingProbability: 1,
		TraceExporter:       "none",
		MetricsExporter:     "none",
	}

	if err := InitTracing(cfg, logger.NewTestLogger(t)); err != nil {
		t.Errorf("Expected no error with none exporters, got: %v", err)
	}
}

func TestInitMetricsExporters_WithInvalidExporter(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:         true,
		MetricsExporter: "invalid",
	}

	if err := initMetricsExporters(cfg, logger.NewTestLogger(t)); err == nil {
		t.Error("Expected error with invalid metrics exporter, got nil")
	}
}

func TestInitMetricsExporters_RejectsPrometheus(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:         true,
		MetricsExporter: "datadog, prometheus",
	}

	err := initMetricsExporters(cfg, logger.NewTestLogger(t))
	if err == nil {
		t.Fatal("Expected error for pull-based prometheus exporter, got nil")
	}
	if err.Error() != "unsupported metrics exporter: prometheus" {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestInitMetricsExporters_Empty(t *testing.T) {
	for _, exporter := range []string{"", "none"} {
		cfg := &config.TracingConfig{MetricsExporter: exporter}
		if err := initMetricsExporters(cfg, logger.NewTestLogger(t)); err != nil {
			t.Errorf("Expected no error for %q metrics exporter, got: %v", exporter, err)
		}
	}
}

func TestInitTraceExporter_Empty(t *testing.T) {
	for _, exporter := range []string{"", "none"} {
		cfg := &config.TracingConfig{TraceExporter: exporter}
		if err := initTraceExporter(cfg, logger.NewTestLogger(t)); err != nil {
			t.Errorf("Expected no error for %q trace exporter, got: %v", exporter, err)
		}
	}
}

func TestExporters_MissingSettings(t *testing.T) {
	log := logger.NewTestLogger(t)
	cfg := &config.TracingConfig{ServiceName: "clientbook"}

	tests := []struct {
		name string
		init func(*config.TracingConfig, logger.Logger) error
	}{
		{"jaeger", initJaegerExporter},
		{"zipkin", initZipkinExporter},
		{"stackdriver trace", initStackdriverTraceExporter},
		{"datadog trace", initDatadogTraceExporter},
		{"xray", initXRayExporter},
		{"stackdriver metrics", initStackdriverMetricsExporter},
		{"datadog metrics", initDatadogMetricsExporter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.init(cfg, log); err == nil {
				t.Errorf("Expected error for %s with missing settings, got nil", tt.name)
			}
		})
	}
}

func TestDatadogAgentAddress(t *testing.T) {
	cfg := &config.TracingConfig{AgentEndpoint: "agent:8126"}
	if got := datadogAgentAddress(cfg); got != "agent:8126" {
		t.Errorf("Expected fallback to agent endpoint, got %q", got)
	}

	cfg.DatadogAgentAddress = "datadog:8126"
	if got := datadogAgentAddress(cfg); got != "datadog:8126" {
		t.Errorf("Expected datadog address, got %q", got)
	}
}

func TestFlush(t *testing.T) {
	calls := 0
	registerFlusher(func() { calls++ })
	registerFlusher(func() { calls++ })

	Flush()
	if calls != 2 {
		t.Errorf("Expected 2 flush calls, got %d", calls)
	}

	// Flushers are dropped after a flush
	Flush()
	if calls != 2 {
		t.Errorf("Expected flushers to run once, got %d calls", calls)
	}
}

func TestRegisterDatabaseViews(t *testing.T) {
	if err := RegisterDatabaseViews(); err != nil {
		t.Fatalf("Expected no error registering database views, got: %v", err)
	}
	// Registering the same views twice is allowed
	if err := RegisterDatabaseViews(); err != nil {
		t.Fatalf("Expected no error registering database views twice, got: %v", err)
	}
}

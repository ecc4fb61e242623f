package tracing

import (
	"fmt"
	"strings"
	"sync"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/clientbook/clientbook/config"
	"github.com/clientbook/clientbook/pkg/logger"
)

var (
	flushMu  sync.Mutex
	flushers []func()
)

func registerFlusher(f func()) {
	flushMu.Lock()
	defer flushMu.Unlock()
	flushers = append(flushers, f)
}

// Flush pushes buffered spans and metrics out of every registered exporter.
// The CLI exits right after its command runs, so this must be called before exit.
func Flush() {
	flushMu.Lock()
	defer flushMu.Unlock()
	for _, f := range flushers {
		f()
	}
	flushers = nil
}

// InitTracing initializes OpenCensus tracing with the given configuration
func InitTracing(tracingConfig *config.TracingConfig, log logger.Logger) error {
	if !tracingConfig.Enabled {
		return nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(tracingConfig.SamplingProbability),
	})

	if tracingConfig.TraceExporter != "none" && tracingConfig.TraceExporter != "" {
		if err := initTraceExporter(tracingConfig, log); err != nil {
			return err
		}
	}

	if tracingConfig.MetricsExporter != "none" && tracingConfig.MetricsExporter != "" {
		if err := initMetricsExporters(tracingConfig, log); err != nil {
			return err
		}
	}

	log.WithFields(map[string]interface{}{
		"trace_exporter":   tracingConfig.TraceExporter,
		"metrics_exporter": tracingConfig.MetricsExporter,
	}).Info("OpenCensus initialized")
	return nil
}

func initTraceExporter(cfg *config.TracingConfig, log logger.Logger) error {
	switch cfg.TraceExporter {
	case "jaeger":
		return initJaegerExporter(cfg, log)
	case "zipkin":
		return initZipkinExporter(cfg, log)
	case "stackdriver":
		return initStackdriverTraceExporter(cfg, log)
	case "datadog":
		return initDatadogTraceExporter(cfg, log)
	case "xray":
		return initXRayExporter(cfg, log)
	case "none", "":
		return nil
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}
}

func initMetricsExporters(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.MetricsExporter == "none" || cfg.MetricsExporter == "" {
		return nil
	}

	// Validate every name before registering anything
	var exporters []string
	for _, exporter := range strings.Split(cfg.MetricsExporter, ",") {
		exporter = strings.TrimSpace(exporter)
		if exporter == "" {
			continue
		}
		switch exporter {
		case "stackdriver", "datadog":
			exporters = append(exporters, exporter)
		default:
			return fmt.Errorf("unsupported metrics exporter: %s", exporter)
		}
	}

	for _, exporter := range exporters {
		var err error
		switch exporter {
		case "stackdriver":
			err = initStackdriverMetricsExporter(cfg, log)
		case "datadog":
			err = initDatadogMetricsExporter(cfg, log)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize %s metrics exporter: %w", exporter, err)
		}
	}

	if err := RegisterDatabaseViews(); err != nil {
		return err
	}

	return nil
}

// RegisterDatabaseViews registers the ocsql connection and latency views
func RegisterDatabaseViews() error {
	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return fmt.Errorf("failed to register database views: %w", err)
	}
	return nil
}

func initJaegerExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.JaegerEndpoint == "" {
		return fmt.Errorf("Jaeger endpoint is required for Jaeger exporter")
	}

	je, err := jaeger.NewExporter(jaeger.Options{
		CollectorEndpoint: cfg.JaegerEndpoint,
		ServiceName:       cfg.ServiceName,
		Process: jaeger.Process{
			ServiceName: cfg.ServiceName,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create Jaeger exporter: %w", err)
	}

	trace.RegisterExporter(je)
	registerFlusher(je.Flush)
	log.WithField("endpoint", cfg.JaegerEndpoint).Info("Jaeger exporter initialized")
	return nil
}

func initZipkinExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.ZipkinEndpoint == "" {
		return fmt.Errorf("Zipkin endpoint is required for Zipkin exporter")
	}

	reporter := zipkinhttp.NewReporter(cfg.ZipkinEndpoint)
	ze := zipkin.NewExporter(reporter, nil)
	trace.RegisterExporter(ze)
	registerFlusher(func() {
		if err := reporter.Close(); err != nil {
			log.WithField("error", err.Error()).Warn("Failed to close Zipkin reporter")
		}
	})
	log.WithField("endpoint", cfg.ZipkinEndpoint).Info("Zipkin exporter initialized")
	return nil
}

func initStackdriverTraceExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.StackdriverProjectID == "" {
		return fmt.Errorf("Stackdriver project ID is required for Stackdriver exporter")
	}

	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID: cfg.StackdriverProjectID,
	})
	if err != nil {
		return fmt.Errorf("failed to create Stackdriver exporter: %w", err)
	}

	trace.RegisterExporter(se)
	registerFlusher(se.Flush)
	log.WithField("project_id", cfg.StackdriverProjectID).Info("Stackdriver exporter initialized")
	return nil
}

func datadogAgentAddress(cfg *config.TracingConfig) string {
	if cfg.DatadogAgentAddress != "" {
		return cfg.DatadogAgentAddress
	}
	return cfg.AgentEndpoint
}

func initDatadogTraceExporter(cfg *config.TracingConfig, log logger.Logger) error {
	agentAddr := datadogAgentAddress(cfg)
	if agentAddr == "" {
		return fmt.Errorf("Datadog agent address is required for Datadog exporter")
	}

	exporter, err := datadog.NewExporter(datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: agentAddr,
		StatsAddr: agentAddr,
	})
	if err != nil {
		return fmt.Errorf("failed to create Datadog exporter: %w", err)
	}

	trace.RegisterExporter(exporter)
	registerFlusher(exporter.Stop)
	log.WithField("agent_address", agentAddr).Info("Datadog exporter initialized")
	return nil
}

func initXRayExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.XRayRegion == "" {
		return fmt.Errorf("AWS region is required for X-Ray exporter")
	}

	exporter, err := aws.NewExporter(
		aws.WithRegion(cfg.XRayRegion),
		aws.WithVersion("latest"),
	)
	if err != nil {
		return fmt.Errorf("failed to create AWS X-Ray exporter: %w", err)
	}

	trace.RegisterExporter(exporter)
	log.WithField("region", cfg.XRayRegion).Info("AWS X-Ray exporter initialized")
	return nil
}

func initStackdriverMetricsExporter(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.StackdriverProjectID == "" {
		return fmt.Errorf("Stackdriver project ID is required for Stackdriver metrics exporter")
	}

	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Warn("Stackdriver metrics exporter error")
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create Stackdriver metrics exporter: %w", err)
	}

	view.RegisterExporter(se)
	registerFlusher(se.Flush)
	log.WithField("project_id", cfg.StackdriverProjectID).Info("Stackdriver metrics exporter initialized")
	return nil
}

func initDatadogMetricsExporter(cfg *config.TracingConfig, log logger.Logger) error {
	agentAddr := datadogAgentAddress(cfg)
	if agentAddr == "" {
		return fmt.Errorf("Datadog agent address is required for Datadog metrics exporter")
	}

	options := datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: agentAddr,
		StatsAddr: agentAddr,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Warn("Datadog metrics exporter error")
		},
	}
	if cfg.DatadogAPIKey != "" {
		options.GlobalTags = map[string]interface{}{
			"api_key": cfg.DatadogAPIKey,
		}
	}

	exporter, err := datadog.NewExporter(options)
	if err != nil {
		return fmt.Errorf("failed to create Datadog metrics exporter: %w", err)
	}

	view.RegisterExporter(exporter)
	registerFlusher(exporter.Stop)
	log.WithField("agent_address", agentAddr).Info("Datadog metrics exporter initialized")
	return nil
}

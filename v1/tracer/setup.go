package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/ollama/v1/logger"
)

// Tracer owns the OpenTelemetry tracer provider installed as the global
// provider. Clients that call otel.Tracer, such as ollama.Client, pick it up
// automatically.
//
// Tracer is safe for concurrent use.
type Tracer struct {
	provider *sdktrace.TracerProvider
	logger   *logger.Logger
}

// NewClient builds the tracer provider, installs it and the W3C trace
// context propagator globally, and returns the Tracer.
//
// When cfg.EnableExport is set, spans are batched to an OTLP/HTTP exporter.
// log may be nil.
//
//	t, err := tracer.NewClient(tracer.Config{ServiceName: "chat-api", AppEnv: "prod"}, log)
//	if err != nil {
//	    return err
//	}
//	defer t.Shutdown(ctx)
func NewClient(cfg Config, log *logger.Logger, opts ...sdktrace.TracerProviderOption) (*Tracer, error) {
	var options []sdktrace.TracerProviderOption

	if cfg.EnableExport {
		var clientOpts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		}
		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(clientOpts...))
		if err != nil {
			return nil, fmt.Errorf("tracer: create otlp exporter: %w", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	options = append(options, sdktrace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))
	options = append(options, opts...)

	tp := sdktrace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if log != nil {
		log.Info("Tracer initialised", nil, map[string]interface{}{
			"service":       cfg.ServiceName,
			"environment":   cfg.AppEnv,
			"export":        cfg.EnableExport,
			"otlp_endpoint": cfg.Endpoint,
		})
	}

	return &Tracer{provider: tp, logger: log}, nil
}

// Tracer returns a named tracer from the provider.
func (t *Tracer) Tracer(name string) trace.Tracer {
	return t.provider.Tracer(name)
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

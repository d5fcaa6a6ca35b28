package tracer

import (
	"os"
	"strconv"
)

// Config configures the tracer provider.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is reported as deployment.environment.
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport sends spans to an OTLP/HTTP collector.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint is the collector URL, e.g. http://otel-collector:4318.
	// Empty means the OTEL_EXPORTER_OTLP_* environment defaults.
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`
}

// NewConfigFromEnv reads TRACER_SERVICE_NAME, TRACER_APP_ENV,
// TRACER_ENABLE_EXPORT and TRACER_ENDPOINT.
func NewConfigFromEnv() Config {
	cfg := Config{
		ServiceName: os.Getenv("TRACER_SERVICE_NAME"),
		AppEnv:      os.Getenv("TRACER_APP_ENV"),
		Endpoint:    os.Getenv("TRACER_ENDPOINT"),
	}
	if v, err := strconv.ParseBool(os.Getenv("TRACER_ENABLE_EXPORT")); err == nil {
		cfg.EnableExport = v
	}
	return cfg
}

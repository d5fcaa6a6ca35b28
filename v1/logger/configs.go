package logger

import (
	"os"
	"strconv"
	"strings"
)

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config holds the logger settings.
type Config struct {
	// Level is one of Debug, Info, Warning or Error. Anything else means Info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// EnableTracing adds trace_id and span_id to entries written with the
	// *WithContext methods.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"ZAP_LOGGER_ENABLE_TRACING"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`
}

// NewConfigFromEnv reads ZAP_LOGGER_LEVEL, ZAP_LOGGER_ENABLE_TRACING and
// SERVICE_NAME.
func NewConfigFromEnv() Config {
	cfg := Config{
		Level:       strings.ToLower(strings.TrimSpace(os.Getenv("ZAP_LOGGER_LEVEL"))),
		ServiceName: os.Getenv("SERVICE_NAME"),
	}
	if cfg.Level == "" {
		cfg.Level = Info
	}
	if v, err := strconv.ParseBool(os.Getenv("ZAP_LOGGER_ENABLE_TRACING")); err == nil {
		cfg.EnableTracing = v
	}
	return cfg
}

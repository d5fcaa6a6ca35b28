package metrics

import (
	"os"
	"strconv"
)

const (
	DefaultAddress   = ":9090"
	DefaultNamespace = "ollama"
)

// Config configures the metrics registry and its HTTP endpoint.
type Config struct {
	// Address is the listen address of the /metrics server.
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is attached to every metric as the "service" label.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// Namespace prefixes the built-in metric names.
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// EnableDefaultCollectors registers the Go, process and build info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`
}

// NewConfigFromEnv reads METRICS_ADDRESS, METRICS_SERVICE_NAME,
// METRICS_NAMESPACE and METRICS_ENABLE_DEFAULT_COLLECTORS.
func NewConfigFromEnv() Config {
	cfg := Config{
		Address:     os.Getenv("METRICS_ADDRESS"),
		ServiceName: os.Getenv("METRICS_SERVICE_NAME"),
		Namespace:   os.Getenv("METRICS_NAMESPACE"),
	}
	if v, err := strconv.ParseBool(os.Getenv("METRICS_ENABLE_DEFAULT_COLLECTORS")); err == nil {
		cfg.EnableDefaultCollectors = v
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	return c
}

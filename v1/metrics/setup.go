package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated Prometheus registry, the built-in request
// metrics, and the HTTP server exposing them at /metrics.
type Metrics struct {
	// Server serves the registry at /metrics.
	Server *http.Server

	// Registry holds every metric of this instance.
	Registry *prometheus.Registry

	// registerer adds the constant service label to everything registered through it.
	registerer prometheus.Registerer
	namespace  string

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	streamChunks    *prometheus.CounterVec
	responseBytes   *prometheus.HistogramVec
}

// NewMetrics creates the registry, registers the built-in metrics under
// cfg.Namespace with a constant service label, and prepares the server.
// The server is not started; see RegisterMetricsLifecycle.
//
// Built-in metrics (namespace "ollama"):
//
//	ollama_requests_total{operation,status}
//	ollama_request_duration_seconds{operation}
//	ollama_stream_chunks_total{operation}
//	ollama_response_bytes{operation}
func NewMetrics(cfg Config) *Metrics {
	cfg = cfg.withDefaults()

	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrapped,
		namespace:  cfg.Namespace,
	}

	m.requestsTotal = createCounterVec(cfg.Namespace, "requests_total",
		"Total number of Ollama requests by operation and outcome.", []string{"operation", "status"})
	m.requestDuration = createHistogramVec(cfg.Namespace, "request_duration_seconds",
		"Duration of Ollama requests in seconds. Streams are measured until fully consumed.",
		[]string{"operation"}, []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120})
	m.streamChunks = createCounterVec(cfg.Namespace, "stream_chunks_total",
		"Total number of decoded chunks received on streaming requests.", []string{"operation"})
	m.responseBytes = createHistogramVec(cfg.Namespace, "response_bytes",
		"Size of Ollama response bodies in bytes.",
		[]string{"operation"}, prometheus.ExponentialBuckets(256, 4, 8))

	wrapped.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.streamChunks,
		m.responseBytes,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}
	return m
}

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/ollama/v1/observability"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusError   = "error"
)

// ObserveOperation records one finished client operation.
//
// The status label is StatusError when the operation failed at transport
// level, StatusFailure for a non-2xx reply and StatusSuccess otherwise.
// Chunk counts are taken from the "chunks" metadata of streaming requests.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	m.IncrementRequests(op.Operation, operationStatus(op))
	m.requestDuration.WithLabelValues(op.Operation).Observe(op.Duration.Seconds())

	if chunks, ok := op.Metadata["chunks"].(int); ok && chunks > 0 {
		m.streamChunks.WithLabelValues(op.Operation).Add(float64(chunks))
	}
	if op.Error == nil {
		m.responseBytes.WithLabelValues(op.Operation).Observe(float64(op.Size))
	}
}

func operationStatus(op observability.OperationContext) string {
	if op.Error != nil {
		return StatusError
	}
	code, ok := op.Metadata["status_code"].(int)
	if !ok {
		return StatusSuccess
	}
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return StatusFailure
	}
	return StatusSuccess
}

// IncrementRequests increments the request counter.
func (m *Metrics) IncrementRequests(operation, status string) {
	m.requestsTotal.WithLabelValues(operation, status).Inc()
}

// RecordRequestDuration observes the time elapsed since start.
//
//	defer m.RecordRequestDuration(time.Now(), "generate")
func (m *Metrics) RecordRequestDuration(start time.Time, operation string) {
	m.requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// CreateCounter creates and registers an application counter under the
// configured namespace. Like the built-in metrics it carries the service label.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(m.namespace, name, help, labels)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram creates and registers an application histogram.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(m.namespace, name, help, labels, buckets)
	m.registerer.MustRegister(hist)
	return hist
}

// CreateGauge creates and registers an application gauge.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: m.namespace, Name: name, Help: help},
		labels,
	)
	m.registerer.MustRegister(gauge)
	return gauge
}

func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}

package ollama_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Aleph-Alpha/ollama/v1/logger"
	"github.com/Aleph-Alpha/ollama/v1/metrics"
	"github.com/Aleph-Alpha/ollama/v1/ollama"
	"github.com/Aleph-Alpha/ollama/v1/tracer"
)

func TestFullStackWiring(t *testing.T) {
	var (
		mu          sync.Mutex
		traceparent []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		traceparent = append(traceparent, r.Header.Get("traceparent"))
		mu.Unlock()

		switch r.URL.Path {
		case "/api/tags":
			io.WriteString(w, `{"models":[{"name":"llama3:latest"}]}`)
		case "/api/generate":
			io.WriteString(w, `{"response":"Hel"}`+"\n")
			io.WriteString(w, `{"response":"lo","done":true}`+"\n")
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":"not found"}`)
		}
	}))
	defer srv.Close()

	core, logs := observer.New(zap.DebugLevel)
	rec := tracetest.NewSpanRecorder()

	var (
		facade *ollama.Ollama
		m      *metrics.Metrics
		tr     *tracer.Tracer
	)

	app := fx.New(
		fx.Provide(
			func() *logger.Logger { return logger.NewWithZap(zap.New(core), true) },
			func(l *logger.Logger) ollama.Logger { return l },
			func() metrics.Config { return metrics.Config{Address: "127.0.0.1:0", ServiceName: "stack"} },
			func(l *logger.Logger) (*tracer.Tracer, error) {
				return tracer.NewClient(tracer.Config{ServiceName: "stack"}, l, sdktrace.WithSpanProcessor(rec))
			},
			// Depending on the tracer makes the client pick up its global provider.
			func(*tracer.Tracer) *ollama.Config { return ollama.NewConfig(srv.URL, 5) },
		),
		metrics.FXModule,
		ollama.FXModule,
		fx.Invoke(tracer.RegisterTracerLifecycle),
		fx.Populate(&facade, &m, &tr),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx))

	spanCtx, parent := tr.StartSpan(ctx, "handle-request")

	models, err := facade.ListModels(spanCtx)
	require.NoError(t, err)
	require.Len(t, models, 1)

	out, err := facade.GenerateStream(spanCtx, "llama3", "hi", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello", out["full_response"])

	_, err = facade.Model("ghost").GetInfo(spanCtx)
	require.NoError(t, err)
	parent.End()

	require.NoError(t, app.Stop(ctx))

	assert.Equal(t, 1.0, requests(t, m, "list_models", metrics.StatusSuccess))
	assert.Equal(t, 1.0, requests(t, m, "generate", metrics.StatusSuccess))
	assert.Equal(t, 1.0, requests(t, m, "show_model", metrics.StatusFailure))

	mu.Lock()
	for _, tp := range traceparent {
		assert.NotEmpty(t, tp)
	}
	mu.Unlock()

	names := map[string]bool{}
	for _, s := range rec.Ended() {
		names[s.Name()] = true
		if s.Name() != "handle-request" {
			assert.Equal(t, parent.SpanContext().TraceID(), s.SpanContext().TraceID())
		}
	}
	assert.True(t, names["ollama.list_models"])
	assert.True(t, names["ollama.generate"])
	assert.True(t, names["ollama.show_model"])

	assert.NotZero(t, logs.FilterMessage("Starting Prometheus metrics server").Len())
	assert.NotZero(t, logs.FilterMessage("Ollama client ready").Len())
}

func requests(t *testing.T, m *metrics.Metrics, operation, status string) float64 {
	t.Helper()

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != "ollama_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["operation"] == operation && labels["status"] == status {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

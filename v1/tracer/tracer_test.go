package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/fx"
)

func newRecordingTracer(t *testing.T) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tr, err := NewClient(Config{ServiceName: "test", AppEnv: "ci"}, nil, sdktrace.WithSpanProcessor(rec))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })
	return tr, rec
}

func TestStartSpanAndAttributes(t *testing.T) {
	tr, rec := newRecordingTracer(t)

	_, span := tr.StartSpan(context.Background(), "answer")
	tr.SetAttributes(span, map[string]interface{}{
		"model":    "llama3",
		"chunks":   3,
		"bytes":    int64(10),
		"temp":     0.2,
		"stream":   true,
		"messages": []string{"a"},
	})
	tr.RecordErrorOnSpan(span, errors.New("boom"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	s := ended[0]
	assert.Equal(t, "answer", s.Name())
	assert.Equal(t, codes.Error, s.Status().Code)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range s.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "llama3", attrs["model"].AsString())
	assert.Equal(t, int64(3), attrs["chunks"].AsInt64())
	assert.Equal(t, int64(10), attrs["bytes"].AsInt64())
	assert.Equal(t, 0.2, attrs["temp"].AsFloat64())
	assert.True(t, attrs["stream"].AsBool())
	assert.Equal(t, "[a]", attrs["messages"].AsString())

	var hasService bool
	for _, kv := range s.Resource().Attributes() {
		if kv.Key == "service.name" {
			hasService = kv.Value.AsString() == "test"
		}
	}
	assert.True(t, hasService)
}

func TestGlobalProviderIsInstalled(t *testing.T) {
	_, rec := newRecordingTracer(t)

	_, span := otel.Tracer("other").Start(context.Background(), "via-global")
	span.End()

	require.Len(t, rec.Ended(), 1)
	assert.Equal(t, "via-global", rec.Ended()[0].Name())
}

func TestCarrierRoundTrip(t *testing.T) {
	tr, _ := newRecordingTracer(t)

	ctx, span := tr.StartSpan(context.Background(), "producer")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	require.Contains(t, carrier, "traceparent")

	remote := tr.SetCarrierOnContext(context.Background(), carrier)
	_, child := tr.StartSpan(remote, "consumer")
	defer child.End()

	assert.Equal(t, span.SpanContext().TraceID(), child.SpanContext().TraceID())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("TRACER_SERVICE_NAME", "svc")
	t.Setenv("TRACER_APP_ENV", "staging")
	t.Setenv("TRACER_ENABLE_EXPORT", "1")
	t.Setenv("TRACER_ENDPOINT", "http://collector:4318")

	assert.Equal(t, Config{
		ServiceName:  "svc",
		AppEnv:       "staging",
		EnableExport: true,
		Endpoint:     "http://collector:4318",
	}, NewConfigFromEnv())
}

func TestExportEnabledBuildsExporter(t *testing.T) {
	tr, err := NewClient(Config{ServiceName: "svc", EnableExport: true, Endpoint: "http://127.0.0.1:1"}, nil)
	require.NoError(t, err)

	require.NotNil(t, tr.provider)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = tr.Shutdown(ctx)
}

func TestFXModule(t *testing.T) {
	var tr *Tracer
	app := fx.New(
		FXModule,
		fx.Provide(func() Config { return Config{ServiceName: "fx"} }),
		fx.Populate(&tr),
		fx.NopLogger,
	)

	ctx := context.Background()
	require.NoError(t, app.Start(ctx))
	require.NotNil(t, tr)
	assert.NotNil(t, tr.Tracer("x"))
	require.NoError(t, app.Stop(ctx))
}

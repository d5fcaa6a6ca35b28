// Package tracer configures OpenTelemetry tracing.
//
// NewClient installs a global tracer provider and the W3C trace context
// propagator. The ollama client creates one client span per request
// ("ollama.generate", "ollama.chat", ...) through the global provider and
// injects traceparent headers, so no further wiring is needed:
//
//	t, _ := tracer.NewClient(tracer.Config{
//		ServiceName:  "chat-api",
//		AppEnv:       "production",
//		EnableExport: true,
//		Endpoint:     "http://otel-collector:4318",
//	}, log)
//	defer t.Shutdown(ctx)
//
//	ctx, span := t.StartSpan(ctx, "answer-question")
//	defer span.End()
//	resp, err := client.Chat(ctx, "llama3", messages, nil)
//	if err != nil {
//		t.RecordErrorOnSpan(span, err)
//	}
//
// GetCarrier and SetCarrierOnContext move trace context across process
// boundaries that are not HTTP.
//
// Environment: TRACER_SERVICE_NAME, TRACER_APP_ENV, TRACER_ENABLE_EXPORT,
// TRACER_ENDPOINT.
package tracer

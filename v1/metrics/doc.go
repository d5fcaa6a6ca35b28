// Package metrics exposes Prometheus metrics for Ollama traffic.
//
// *Metrics implements observability.Observer, so it can be handed to
// ollama.Client.WithObserver or injected through FXModule. Every finished
// request updates:
//
//	ollama_requests_total{operation,status}     status: success, failure, error
//	ollama_request_duration_seconds{operation}
//	ollama_stream_chunks_total{operation}
//	ollama_response_bytes{operation}
//
// All metrics carry a constant service label taken from Config.ServiceName.
// A streaming request is recorded once, when its stream has been processed
// or closed.
//
// # Direct Usage
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		ServiceName: "chat-api",
//	})
//	go m.Server.ListenAndServe()
//
//	client := ollama.NewClient(ollama.DefaultConfig()).WithObserver(m)
//
// # Custom metrics
//
//	tokens := m.CreateCounter("tokens_total", "Generated tokens", []string{"model"})
//	tokens.WithLabelValues("llama3").Add(float64(evalCount))
//
// # FX Module
//
//	app := fx.New(
//		metrics.FXModule,
//		fx.Provide(metrics.NewConfigFromEnv),
//		ollama.FXModule,
//	)
//
// # Configuration
//
//	METRICS_ADDRESS                     default ":9090"
//	METRICS_SERVICE_NAME
//	METRICS_NAMESPACE                   default "ollama"
//	METRICS_ENABLE_DEFAULT_COLLECTORS   true/false
package metrics

// Package logger provides the structured logger used across this module.
//
// It wraps go.uber.org/zap and exposes the calling convention shared by the
// clients here: a message, an optional error and optional field maps.
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//		ServiceName:   "chat-api",
//	})
//
//	log.Info("Request served", nil, map[string]interface{}{"model": "llama3"})
//
// # Trace correlation
//
// When EnableTracing is set, the *WithContext methods look up the span
// carried by ctx and add its trace_id and span_id:
//
//	log.InfoWithContext(ctx, "Streaming started", nil)
//
// # Configuration
//
// NewConfigFromEnv reads:
//
//	ZAP_LOGGER_LEVEL            debug, info, warning or error (default info)
//	ZAP_LOGGER_ENABLE_TRACING   true/false
//	SERVICE_NAME                value of the "service" field
//
// # FX Module
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(logger.NewConfigFromEnv),
//		ollama.FXModule,
//		fx.Provide(func(l *logger.Logger) ollama.Logger { return l }),
//	)
//
// The ollama client only needs a value with Info, Debug, Warn and Error, so
// *Logger satisfies ollama.Logger directly.
package logger

package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *Logger built from an injected Config and flushes it
// on shutdown.
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(logger.NewConfigFromEnv),
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle syncs the zap logger when the application stops.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// stderr returns EINVAL/ENOTTY on sync for terminals; ignore it.
			_ = client.Zap.Sync()
			return nil
		},
	})
}

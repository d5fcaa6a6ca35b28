package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/ollama/v1/logger"
)

// FXModule provides *Tracer and shuts the provider down when the
// application stops, flushing pending spans.
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(tracer.NewConfigFromEnv),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// TracerParams groups the dependencies of NewClientWithDI.
type TracerParams struct {
	fx.In

	Config Config
	Logger *logger.Logger `optional:"true"`
}

// NewClientWithDI creates a Tracer from injected dependencies.
func NewClientWithDI(params TracerParams) (*Tracer, error) {
	return NewClient(params.Config, params.Logger)
}

// RegisterTracerLifecycle shuts the tracer down on application stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.logger != nil {
				tracer.logger.Info("Shutting down tracer", nil)
			}
			return tracer.Shutdown(ctx)
		},
	})
}

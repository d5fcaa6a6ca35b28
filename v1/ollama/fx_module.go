package ollama

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/ollama/v1/observability"
)

// FXModule is an fx.Module that provides the Ollama client and facade.
//
// It provides:
//   - *Client    (NewClientWithDI)
//   - Transport  (the same *Client)
//   - *Ollama    (NewFromClient)
//
// and registers a lifecycle hook that releases idle connections on shutdown.
//
// Usage:
//
//	app := fx.New(
//	    ollama.FXModule,
//	    fx.Provide(ollama.NewConfigFromEnv),
//	    // other modules...
//	)
var FXModule = fx.Module("ollama",
	fx.Provide(
		NewClientWithDI,
		func(c *Client) Transport { return c },
		NewFromClient,
	),
	fx.Invoke(RegisterOllamaLifecycle),
)

// OllamaParams groups the dependencies needed to create an Ollama client.
type OllamaParams struct {
	fx.In

	Config   *Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates a Client from injected dependencies.
//
// Logger and Observer are optional; when present they are attached with
// WithLogger and WithObserver.
func NewClientWithDI(params OllamaParams) *Client {
	client := NewClient(params.Config)
	if params.Logger != nil {
		client.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		client.WithObserver(params.Observer)
	}
	return client
}

// OllamaLifecycleParams groups the dependencies needed for lifecycle management.
type OllamaLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
	Logger    Logger `optional:"true"`
}

// RegisterOllamaLifecycle closes the client's idle connections when the
// application stops.
func RegisterOllamaLifecycle(params OllamaLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if params.Logger != nil {
				params.Logger.Info("Ollama client ready", nil, map[string]interface{}{
					"base_url": params.Client.BaseURL(),
				})
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if params.Logger != nil {
				params.Logger.Info("Shutting down Ollama client", nil, nil)
			}
			return params.Client.Close()
		},
	})
}

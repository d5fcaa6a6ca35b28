package ollama

import "context"

// Transport issues requests against the Ollama HTTP API.
//
// This interface is implemented by the concrete *Client type. Model and
// Embeddings depend on it so they can be exercised with a mock.
//
//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=ollama
type Transport interface {
	// Generate posts a non-streaming completion request to /api/generate.
	Generate(ctx context.Context, model, prompt string, opts *Options) (*Response, error)

	// GenerateStream posts a streaming completion request to /api/generate.
	GenerateStream(ctx context.Context, model, prompt string, opts *Options, onChunk ChunkHandler) (*StreamResponse, error)

	// Chat posts a non-streaming chat request to /api/chat.
	Chat(ctx context.Context, model string, messages []Message, opts *Options) (*Response, error)

	// ChatStream posts a streaming chat request to /api/chat.
	ChatStream(ctx context.Context, model string, messages []Message, opts *Options, onChunk ChunkHandler) (*StreamResponse, error)

	// ListModels lists locally available models via /api/tags.
	ListModels(ctx context.Context) (*Response, error)

	// GetModel fetches model details via /api/show.
	GetModel(ctx context.Context, model string) (*Response, error)

	// Embeddings requests an embedding via /api/embeddings.
	Embeddings(ctx context.Context, model, text string, opts *Options) (*Response, error)
}

// Logger defines the logging contract used by the ollama package.
// *logger.Logger from v1/logger satisfies it.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

var _ Transport = (*Client)(nil)

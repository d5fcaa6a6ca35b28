package ollama

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/ollama/v1/observability"
)

const (
	pathGenerate   = "/api/generate"
	pathChat       = "/api/chat"
	pathTags       = "/api/tags"
	pathShow       = "/api/show"
	pathEmbeddings = "/api/embeddings"

	tracerName = "github.com/Aleph-Alpha/ollama/v1/ollama"
)

// Client is the transport layer of the package: it sends requests to the
// fixed Ollama endpoints and returns a *Response or a *StreamResponse.
//
// Every transport-level failure is returned as a *TransportError. A non-2xx
// reply is returned as a regular *Response so that the server's error body
// can be inspected; callers check IsSuccessful.
//
// A Client is safe for concurrent use once configured. The With* setters
// are meant to be called during construction only.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     Logger
	observer   observability.Observer
	tracer     trace.Tracer
}

// NewClient creates a Client from cfg. A nil cfg means DefaultConfig.
//
// The base URL and timeout are captured at construction; later changes to
// cfg do not affect the client.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Client{
		baseURL:    cfg.BaseURL(),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		tracer:     otel.Tracer(tracerName),
	}
}

// WithLogger sets the logger used for request diagnostics.
func (c *Client) WithLogger(l Logger) *Client {
	c.logger = l
	return c
}

// WithObserver sets the observer notified after every request.
func (c *Client) WithObserver(o observability.Observer) *Client {
	c.observer = o
	return c
}

// WithTracer replaces the tracer used to create request spans.
func (c *Client) WithTracer(t trace.Tracer) *Client {
	if t != nil {
		c.tracer = t
	}
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate sends a non-streaming completion request.
//
// The payload is {model, prompt, stream: false} plus the fields of opts.
func (c *Client) Generate(ctx context.Context, model, prompt string, opts *Options) (*Response, error) {
	payload := buildPayload(opts, map[string]any{
		"model":  model,
		"prompt": prompt,
		"stream": false,
	})
	return c.post(ctx, call{operation: "generate", endpoint: pathGenerate, model: model}, payload)
}

// GenerateStream sends a streaming completion request and returns the open
// stream. The caller must call Process (or Close) on the result.
func (c *Client) GenerateStream(ctx context.Context, model, prompt string, opts *Options, onChunk ChunkHandler) (*StreamResponse, error) {
	payload := buildPayload(opts, map[string]any{
		"model":  model,
		"prompt": prompt,
		"stream": true,
	})
	return c.postStream(ctx, call{operation: "generate", endpoint: pathGenerate, model: model}, payload, onChunk)
}

// Chat sends a non-streaming chat request.
func (c *Client) Chat(ctx context.Context, model string, messages []Message, opts *Options) (*Response, error) {
	payload := buildPayload(opts, map[string]any{
		"model":    model,
		"messages": nonNilMessages(messages),
		"stream":   false,
	})
	return c.post(ctx, call{operation: "chat", endpoint: pathChat, model: model}, payload)
}

// ChatStream sends a streaming chat request and returns the open stream.
func (c *Client) ChatStream(ctx context.Context, model string, messages []Message, opts *Options, onChunk ChunkHandler) (*StreamResponse, error) {
	payload := buildPayload(opts, map[string]any{
		"model":    model,
		"messages": nonNilMessages(messages),
		"stream":   true,
	})
	return c.postStream(ctx, call{operation: "chat", endpoint: pathChat, model: model}, payload, onChunk)
}

// ListModels lists the models available on the server.
func (c *Client) ListModels(ctx context.Context) (*Response, error) {
	return c.get(ctx, call{operation: "list_models", endpoint: pathTags})
}

// GetModel fetches details of a single model.
func (c *Client) GetModel(ctx context.Context, model string) (*Response, error) {
	return c.post(ctx, call{operation: "show_model", endpoint: pathShow, model: model}, map[string]any{
		"name": model,
	})
}

// Embeddings requests the embedding of text.
//
// The payload is {model, prompt: text} plus the fields of opts.
func (c *Client) Embeddings(ctx context.Context, model, text string, opts *Options) (*Response, error) {
	payload := buildPayload(opts, map[string]any{
		"model":  model,
		"prompt": text,
	})
	return c.post(ctx, call{operation: "embeddings", endpoint: pathEmbeddings, model: model}, payload)
}

// Close releases idle HTTP connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func nonNilMessages(m []Message) []Message {
	if m == nil {
		return []Message{}
	}
	return m
}

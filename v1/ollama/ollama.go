package ollama

import "context"

// Ollama is the top-level entry point of the package.
//
// It owns one Client and offers convenience methods that return decoded
// mappings directly. The streaming variants block until the stream is
// drained; incremental output is only visible through the ChunkHandler.
type Ollama struct {
	client *Client
}

// New creates an Ollama facade from cfg. A nil cfg means DefaultConfig.
func New(cfg *Config) *Ollama {
	return NewFromClient(NewClient(cfg))
}

// NewFromClient wraps an existing Client.
func NewFromClient(c *Client) *Ollama {
	return &Ollama{client: c}
}

// Client returns the underlying transport.
func (o *Ollama) Client() *Client {
	return o.client
}

// Model returns a handle for the named model.
func (o *Ollama) Model(name string) *Model {
	return NewModel(o.client, name)
}

// ListModels returns the "models" field of /api/tags, or an empty slice
// when the field is absent. Entries that are not JSON objects are skipped.
func (o *Ollama) ListModels(ctx context.Context) ([]map[string]any, error) {
	resp, err := o.client.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	raw, _ := resp.Get("models", []any{}).([]any)
	models := make([]map[string]any, 0, len(raw))
	for _, m := range raw {
		if entry, ok := m.(map[string]any); ok {
			models = append(models, entry)
		}
	}
	return models, nil
}

// Generate returns the decoded reply of a non-streaming completion.
func (o *Ollama) Generate(ctx context.Context, model, prompt string, opts *Options) (map[string]any, error) {
	resp, err := o.client.Generate(ctx, model, prompt, opts)
	if err != nil {
		return nil, err
	}
	return resp.Data(), nil
}

// GenerateStream streams a completion and returns the accumulated result,
// including "full_response".
func (o *Ollama) GenerateStream(ctx context.Context, model, prompt string, opts *Options, onChunk ChunkHandler) (map[string]any, error) {
	stream, err := o.client.GenerateStream(ctx, model, prompt, opts, onChunk)
	if err != nil {
		return nil, err
	}
	return stream.Process()
}

// Chat returns the decoded reply of a non-streaming chat request.
func (o *Ollama) Chat(ctx context.Context, model string, messages []Message, opts *Options) (map[string]any, error) {
	resp, err := o.client.Chat(ctx, model, messages, opts)
	if err != nil {
		return nil, err
	}
	return resp.Data(), nil
}

// ChatStream streams a chat reply and returns the final chunk.
func (o *Ollama) ChatStream(ctx context.Context, model string, messages []Message, opts *Options, onChunk ChunkHandler) (map[string]any, error) {
	stream, err := o.client.ChatStream(ctx, model, messages, opts, onChunk)
	if err != nil {
		return nil, err
	}
	return stream.Process()
}

// Embeddings returns the decoded embeddings reply for text.
func (o *Ollama) Embeddings(ctx context.Context, model, text string, opts *Options) (map[string]any, error) {
	resp, err := o.client.Embeddings(ctx, model, text, opts)
	if err != nil {
		return nil, err
	}
	return resp.Data(), nil
}

package ollama

import (
	"context"
	"fmt"

	"github.com/Aleph-Alpha/ollama/v1/embedding"
)

// Embeddings generates embeddings for one model.
//
// Results are the decoded response mappings, usually {"embedding": [...]}.
// Use Vector to extract the numbers and the embedding package to compare them.
type Embeddings struct {
	transport Transport
	model     string
}

// NewEmbeddings binds model to t.
func NewEmbeddings(t Transport, model string) *Embeddings {
	return &Embeddings{transport: t, model: model}
}

// Model returns the bound model name.
func (e *Embeddings) Model() string {
	return e.model
}

// Embed requests the embedding of a single text.
func (e *Embeddings) Embed(ctx context.Context, text string, opts *Options) (map[string]any, error) {
	resp, err := e.transport.Embeddings(ctx, e.model, text, opts)
	if err != nil {
		return nil, err
	}
	return resp.Data(), nil
}

// EmbedBatch embeds texts one after another, in order.
//
// The result has one entry per text. If any request fails, no partial
// result is returned.
func (e *Embeddings) EmbedBatch(ctx context.Context, texts []string, opts *Options) ([]map[string]any, error) {
	results := make([]map[string]any, 0, len(texts))
	for i, text := range texts {
		data, err := e.Embed(ctx, text, opts)
		if err != nil {
			return nil, fmt.Errorf("embed batch item %d: %w", i, err)
		}
		results = append(results, data)
	}
	return results, nil
}

// Similarity embeds a and b and returns their cosine similarity.
func (e *Embeddings) Similarity(ctx context.Context, a, b string, opts *Options) (float64, error) {
	results, err := e.EmbedBatch(ctx, []string{a, b}, opts)
	if err != nil {
		return 0, err
	}

	va, err := Vector(results[0])
	if err != nil {
		return 0, err
	}
	vb, err := Vector(results[1])
	if err != nil {
		return 0, err
	}

	return embedding.CosineSimilarity(va, vb)
}

// Vector extracts the "embedding" field of a decoded embeddings response.
func Vector(result map[string]any) ([]float64, error) {
	raw, ok := result["embedding"].([]any)
	if !ok {
		return nil, ErrNoEmbedding
	}

	out := make([]float64, len(raw))
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", ErrNoEmbedding, i, v)
		}
		out[i] = f
	}
	return out, nil
}

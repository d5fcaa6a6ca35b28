package ollama

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Model is a handle on a single named model.
//
// Generation, chat and embedding calls are forwarded to the Transport with
// the bound model name. GetInfo is memoized for the lifetime of the handle.
type Model struct {
	transport Transport
	name      string

	mu    sync.Mutex
	info  map[string]any
	fetch singleflight.Group
}

// NewModel binds name to t.
func NewModel(t Transport, name string) *Model {
	return &Model{transport: t, name: name}
}

// Name returns the bound model name.
func (m *Model) Name() string {
	return m.name
}

// Generate forwards to Transport.Generate.
func (m *Model) Generate(ctx context.Context, prompt string, opts *Options) (*Response, error) {
	return m.transport.Generate(ctx, m.name, prompt, opts)
}

// GenerateStream forwards to Transport.GenerateStream.
func (m *Model) GenerateStream(ctx context.Context, prompt string, opts *Options, onChunk ChunkHandler) (*StreamResponse, error) {
	return m.transport.GenerateStream(ctx, m.name, prompt, opts, onChunk)
}

// Chat forwards to Transport.Chat.
func (m *Model) Chat(ctx context.Context, messages []Message, opts *Options) (*Response, error) {
	return m.transport.Chat(ctx, m.name, messages, opts)
}

// ChatStream forwards to Transport.ChatStream.
func (m *Model) ChatStream(ctx context.Context, messages []Message, opts *Options, onChunk ChunkHandler) (*StreamResponse, error) {
	return m.transport.ChatStream(ctx, m.name, messages, opts, onChunk)
}

// Embed forwards to Transport.Embeddings.
func (m *Model) Embed(ctx context.Context, text string, opts *Options) (*Response, error) {
	return m.transport.Embeddings(ctx, m.name, text, opts)
}

// GetInfo returns the decoded /api/show reply for this model.
//
// The first successful call performs the request; later calls return the
// cached mapping. Concurrent first calls share a single request, which is
// not cancelled by any one caller: each caller stops waiting when its own
// ctx is done. Transport errors are not cached.
func (m *Model) GetInfo(ctx context.Context) (map[string]any, error) {
	if info := m.cached(); info != nil {
		return info, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := m.fetch.DoChan(m.name, func() (interface{}, error) {
		if info := m.cached(); info != nil {
			return info, nil
		}

		resp, err := m.transport.GetModel(fetchCtx, m.name)
		if err != nil {
			return nil, err
		}

		info := resp.Data()
		m.mu.Lock()
		m.info = info
		m.mu.Unlock()
		return info, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[string]any), nil
	}
}

// Embeddings returns an embeddings helper bound to the same transport and model.
func (m *Model) Embeddings() *Embeddings {
	return NewEmbeddings(m.transport, m.name)
}

func (m *Model) cached() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.info
}

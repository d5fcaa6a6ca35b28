// Package ollama provides a thin client for the HTTP API of a local Ollama
// inference server: completions, chat, embeddings, model listing and model
// details, with optional newline-delimited streaming.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Transport interface: the contract for raw API calls
//   - Client struct: the concrete Transport, built with NewClient
//   - Model / Embeddings: handles bound to one model name, depending on Transport
//   - Ollama struct: facade returning decoded mappings directly
//   - FX module: provides *Client, Transport and *Ollama for dependency injection
//
// # Direct Usage (Without FX)
//
//	import "github.com/Aleph-Alpha/ollama/v1/ollama"
//
//	o := ollama.New(ollama.DefaultConfig())
//
//	out, err := o.Generate(ctx, "llama3", "Why is the sky blue?", nil)
//	if err != nil {
//	    // transport failure (connection refused, timeout, ...)
//	}
//	fmt.Println(out["response"])
//
// # Streaming
//
// Streaming calls deliver each decoded chunk to a ChunkHandler and return the
// last chunk, extended with "full_response" for completions:
//
//	res, err := o.GenerateStream(ctx, "llama3", "Tell me a story", nil, func(chunk map[string]any) {
//	    fmt.Print(chunk["response"])
//	})
//	fmt.Println(res["full_response"])
//
// With the Client directly, a *StreamResponse is returned and must be drained
// with Process (or released with Close):
//
//	stream, err := client.GenerateStream(ctx, "llama3", prompt, nil, handler)
//	if err != nil { ... }
//	final, err := stream.Process()
//
// Lines that are empty, not JSON, or empty objects are skipped silently.
//
// # Models
//
//	m := o.Model("llama3")
//	info, err := m.GetInfo(ctx) // fetched once, then cached on the handle
//	resp, err := m.Chat(ctx, []ollama.Message{{Role: "user", Content: "Hi"}}, nil)
//
// # Embeddings
//
//	emb := o.Model("nomic-embed-text").Embeddings()
//	results, err := emb.EmbedBatch(ctx, []string{"first", "second"}, nil)
//	a, _ := ollama.Vector(results[0])
//	b, _ := ollama.Vector(results[1])
//	sim, err := embedding.CosineSimilarity(a, b)
//
// # Options
//
// Optional request fields are passed with *Options. Named fields map to the
// server's parameters and Extra forwards anything else. The structural
// fields model, prompt / messages and stream are always set by the client
// and cannot be overridden through Options.
//
// # Error Handling
//
// Every failure of the HTTP exchange is returned as *TransportError and
// matches ErrTransport:
//
//	if ollama.IsTransportError(err) { ... }
//
// A non-2xx reply is NOT an error. It is returned as a *Response whose
// IsSuccessful reports false, so the server's {"error": "..."} body can be
// inspected. Bodies that are not valid JSON decode to an empty mapping.
//
// # Configuration
//
// The client can be configured via environment variables:
//
//	OLLAMA_BASE_URL=http://localhost:11434   # trailing slashes are stripped
//	OLLAMA_TIMEOUT_SECONDS=30                # per request, streams included
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,             // provides observability.Observer
//	    ollama.FXModule,
//	    fx.Provide(
//	        ollama.NewConfigFromEnv,
//	        logger.NewConfigFromEnv,
//	        metrics.NewConfigFromEnv,
//	        func(l *logger.Logger) ollama.Logger { return l },
//	    ),
//	    fx.Invoke(func(o *ollama.Ollama) {
//	        // use o
//	    }),
//	)
//
// # Observability
//
// Each request starts an OpenTelemetry client span ("ollama.generate",
// "ollama.chat", ...) and injects W3C trace context headers. When an
// observability.Observer is attached, it is notified once per request with
// the operation, endpoint, model, duration, received bytes and status code;
// streaming requests are reported after the stream is drained, together with
// the number of chunks.
//
// # Thread Safety
//
// Client, Ollama, Model and Embeddings are safe for concurrent use. A
// StreamResponse must be consumed by a single goroutine.
package ollama

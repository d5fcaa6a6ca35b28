package ollama

// Options carries the optional request fields understood by the Ollama API.
//
// Named fields cover the commonly used parameters; Extra passes any other
// key through unchanged so newer server options can be used without a
// library update. A nil *Options is valid and adds nothing to the payload.
//
// Precedence when the payload is assembled:
//
//  1. Extra
//  2. named fields (override Extra on the same key)
//  3. structural fields: model, prompt / messages, stream (always win)
//
// Example:
//
//	opts := &ollama.Options{
//	    System:     "Answer in one sentence.",
//	    Parameters: map[string]any{"temperature": 0.2, "num_ctx": 4096},
//	    Extra:      map[string]any{"think": true},
//	}
type Options struct {
	// Format requests structured output: "json" or a JSON schema object.
	Format any

	// System overrides the model's system prompt.
	System string

	// Template overrides the model's prompt template.
	Template string

	// Suffix is text placed after the generated response (fill-in-the-middle).
	Suffix string

	// Context is the token context returned by a previous generate call.
	Context []int

	// Raw disables prompt templating when true.
	Raw *bool

	// KeepAlive controls how long the model stays loaded, e.g. "5m" or "0".
	KeepAlive string

	// Images holds base64-encoded images for multimodal models.
	Images []string

	// Tools lists tool definitions available to the model during chat.
	Tools []map[string]any

	// Parameters are model runtime parameters (temperature, num_ctx, seed, ...)
	// and are sent as the "options" object.
	Parameters map[string]any

	// Extra holds additional top-level payload fields.
	Extra map[string]any
}

// Message is a single chat turn.
type Message struct {
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	Images    []string         `json:"images,omitempty"`
	ToolCalls []map[string]any `json:"tool_calls,omitempty"`
}

// ChunkHandler receives each decoded chunk of a streaming response, in stream order.
type ChunkHandler func(chunk map[string]any)

// buildPayload merges opts into a request body. Structural fields are
// written last so that no option can replace them.
func buildPayload(opts *Options, structural map[string]any) map[string]any {
	payload := make(map[string]any, len(structural)+4)

	if opts != nil {
		for k, v := range opts.Extra {
			payload[k] = v
		}
		opts.apply(payload)
	}

	for k, v := range structural {
		payload[k] = v
	}

	return payload
}

func (o *Options) apply(payload map[string]any) {
	if o.Format != nil {
		payload["format"] = o.Format
	}
	if o.System != "" {
		payload["system"] = o.System
	}
	if o.Template != "" {
		payload["template"] = o.Template
	}
	if o.Suffix != "" {
		payload["suffix"] = o.Suffix
	}
	if len(o.Context) > 0 {
		payload["context"] = o.Context
	}
	if o.Raw != nil {
		payload["raw"] = *o.Raw
	}
	if o.KeepAlive != "" {
		payload["keep_alive"] = o.KeepAlive
	}
	if len(o.Images) > 0 {
		payload["images"] = o.Images
	}
	if len(o.Tools) > 0 {
		payload["tools"] = o.Tools
	}
	if len(o.Parameters) > 0 {
		payload["options"] = o.Parameters
	}
}

package ollama

import (
	"encoding/json"
	"net/http"
)

// Response is a fully read, non-streaming reply from the Ollama server.
//
// The body is decoded into a generic mapping. A body that is empty, not JSON,
// JSON null, or not a JSON object yields an empty mapping; this is never an
// error. The raw text stays available through RawBody and Decode.
//
// A Response is read-only after construction.
type Response struct {
	statusCode int
	data       map[string]any
	rawBody    string
}

// NewResponse builds a Response from a status code and raw body.
func NewResponse(statusCode int, rawBody []byte) *Response {
	var data map[string]any
	if err := json.Unmarshal(rawBody, &data); err != nil || data == nil {
		data = map[string]any{}
	}

	return &Response{
		statusCode: statusCode,
		data:       data,
		rawBody:    string(rawBody),
	}
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int {
	return r.statusCode
}

// Data returns the decoded body. Callers must not modify the returned map.
func (r *Response) Data() map[string]any {
	return r.data
}

// RawBody returns the body exactly as received.
func (r *Response) RawBody() string {
	return r.rawBody
}

// IsSuccessful reports whether the status code is in [200, 300).
func (r *Response) IsSuccessful() bool {
	return r.statusCode >= http.StatusOK && r.statusCode < http.StatusMultipleChoices
}

// Get returns the top-level value stored under key, or def when the key is
// missing or holds JSON null.
func (r *Response) Get(key string, def any) any {
	if v, ok := r.data[key]; ok && v != nil {
		return v
	}
	return def
}

// Decode unmarshals the raw body into v.
//
// Example:
//
//	var out struct {
//	    Response string `json:"response"`
//	    Done     bool   `json:"done"`
//	}
//	if err := resp.Decode(&out); err != nil { ... }
func (r *Response) Decode(v any) error {
	return json.Unmarshal([]byte(r.rawBody), v)
}

package ollama

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StreamResponse wraps a live newline-delimited JSON response.
//
// Each line of the body is one JSON object. Process drains the body,
// hands every decoded object to the optional ChunkHandler and returns the
// last object seen. When that object has a "response" field, a
// "full_response" field holding the concatenation of every "response"
// fragment is added to it.
//
// A StreamResponse is consumed exactly once. Process and the handler run on
// the caller's goroutine.
type StreamResponse struct {
	statusCode int
	endpoint   string
	body       io.ReadCloser
	reader     *bufio.Reader
	onChunk    ChunkHandler
	consumed   bool

	// done is invoked once when the stream is drained or closed.
	done func(chunks int, size int64, err error)
}

// NewStreamResponse wraps body. onChunk may be nil.
func NewStreamResponse(statusCode int, body io.ReadCloser, onChunk ChunkHandler) *StreamResponse {
	return &StreamResponse{
		statusCode: statusCode,
		body:       body,
		reader:     bufio.NewReader(body),
		onChunk:    onChunk,
	}
}

// StatusCode returns the HTTP status code of the streaming response.
func (s *StreamResponse) StatusCode() int {
	return s.statusCode
}

// IsSuccessful reports whether the status code is in [200, 300).
func (s *StreamResponse) IsSuccessful() bool {
	return s.statusCode >= http.StatusOK && s.statusCode < http.StatusMultipleChoices
}

// Process reads the stream to the end and returns the accumulated result.
//
// Empty lines, lines that are not JSON objects and empty objects are
// skipped. An empty stream yields an empty mapping. The body is closed
// before Process returns, also when the ChunkHandler panics; the panic is
// then propagated after the request has been reported as failed.
func (s *StreamResponse) Process() (result map[string]any, err error) {
	if s.consumed {
		return nil, ErrStreamConsumed
	}
	s.consumed = true

	var (
		full   strings.Builder
		final  = map[string]any{}
		chunks int
		size   int64
	)

	defer func() {
		s.body.Close()
		if r := recover(); r != nil {
			s.finish(chunks, size, fmt.Errorf("ollama: chunk handler panicked: %v", r))
			panic(r)
		}
		s.finish(chunks, size, err)
	}()

	for {
		line, readErr := s.reader.ReadBytes('\n')
		size += int64(len(line))

		if chunk := decodeLine(line); chunk != nil {
			if s.onChunk != nil {
				s.onChunk(chunk)
			}
			if v, ok := chunk["response"]; ok && v != nil {
				full.WriteString(fragment(v))
			}
			final = chunk
			chunks++
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, &TransportError{
				Op:       "stream read",
				Endpoint: s.endpoint,
				Code:     s.statusCode,
				Err:      readErr,
			}
		}
	}

	if v, ok := final["response"]; ok && v != nil {
		final["full_response"] = full.String()
	}
	return final, nil
}

// Close releases the stream without reading it. It is a no-op after Process.
func (s *StreamResponse) Close() error {
	if s.consumed {
		return nil
	}
	s.consumed = true
	err := s.body.Close()
	s.finish(0, 0, nil)
	return err
}

func (s *StreamResponse) finish(chunks int, size int64, err error) {
	if s.done != nil {
		s.done(chunks, size, err)
		s.done = nil
	}
}

// decodeLine returns the JSON object on line, or nil when the line must be skipped.
func decodeLine(line []byte) map[string]any {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}

	var chunk map[string]any
	if err := json.Unmarshal(line, &chunk); err != nil || len(chunk) == 0 {
		return nil
	}
	return chunk
}

func fragment(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

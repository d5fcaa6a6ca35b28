package ollama

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is matched by every *TransportError via errors.Is.
	ErrTransport = errors.New("ollama: transport error")

	// ErrStreamConsumed is returned when Process is called on a drained stream.
	ErrStreamConsumed = errors.New("ollama: stream already consumed")

	// ErrNoEmbedding is returned when a response carries no usable "embedding" field.
	ErrNoEmbedding = errors.New("ollama: response has no embedding")
)

// TransportError reports a failure of the HTTP exchange itself: the request
// could not be encoded or sent, the connection failed or timed out, or the
// body could not be read.
//
// Non-2xx responses are not transport errors; they are returned as a
// *Response whose IsSuccessful reports false.
type TransportError struct {
	// Op describes the exchange, e.g. "GET", "POST" or "streaming POST".
	Op string

	// Endpoint is the API path, e.g. "/api/generate".
	Endpoint string

	// Code is the HTTP status when a response had already been received, else 0.
	Code int

	// Err is the underlying error.
	Err error
}

func (e *TransportError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("ollama: failed to send %s request to %s (status %d): %v", e.Op, e.Endpoint, e.Code, e.Err)
	}
	return fmt.Sprintf("ollama: failed to send %s request to %s: %v", e.Op, e.Endpoint, e.Err)
}

// Unwrap exposes the underlying error, so errors.Is(err, context.DeadlineExceeded) works.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// IsTransportError checks if the error originates from the HTTP layer.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsStreamConsumedError checks if the error reports a reused stream.
func IsStreamConsumedError(err error) bool {
	return errors.Is(err, ErrStreamConsumed)
}

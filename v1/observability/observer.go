// Package observability defines the hook through which the clients in this module report
// completed operations to metrics or tracing backends.
//
// Clients call Observer.ObserveOperation once per finished operation. The
// metrics package ships a Prometheus-backed implementation; tests typically
// use a small recording observer.
package observability

import "time"

// OperationContext describes a single completed client operation.
type OperationContext struct {
	// Component is the reporting client, e.g. "ollama".
	Component string

	// Operation is the logical operation name, e.g. "generate" or "chat".
	Operation string

	// Resource is the primary target of the operation (an API path for HTTP clients).
	Resource string

	// SubResource adds context to Resource, such as a model name.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the transport-level error, or nil.
	Error error

	// Size is the number of payload bytes received.
	Size int64

	// Metadata carries component-specific extras (status codes, chunk counts, ...).
	Metadata map[string]interface{}
}

// Observer receives notifications about completed operations.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

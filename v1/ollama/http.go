package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// call describes one request against a fixed endpoint.
type call struct {
	operation string
	endpoint  string
	model     string
	method    string
	stream    bool
}

func (c call) op() string {
	if c.stream {
		return "streaming " + c.method
	}
	return c.method
}

var propagator = propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})

func (c *Client) get(ctx context.Context, cl call) (*Response, error) {
	cl.method = http.MethodGet
	return c.roundTrip(ctx, cl, nil)
}

func (c *Client) post(ctx context.Context, cl call, payload map[string]any) (*Response, error) {
	cl.method = http.MethodPost
	return c.roundTrip(ctx, cl, payload)
}

// roundTrip sends the request and reads the whole body.
func (c *Client) roundTrip(ctx context.Context, cl call, payload map[string]any) (*Response, error) {
	start := time.Now()
	ctx, span := c.startSpan(ctx, cl)
	defer span.End()

	resp, err := c.send(ctx, cl, payload)
	if err != nil {
		c.record(span, cl, start, 0, 0, -1, err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := &TransportError{Op: cl.op(), Endpoint: cl.endpoint, Code: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
		c.record(span, cl, start, resp.StatusCode, int64(len(raw)), -1, terr)
		return nil, terr
	}

	c.record(span, cl, start, resp.StatusCode, int64(len(raw)), -1, nil)
	return NewResponse(resp.StatusCode, raw), nil
}

// postStream sends the request and hands the open body to a StreamResponse.
// The span stays open until the stream is processed or closed.
func (c *Client) postStream(ctx context.Context, cl call, payload map[string]any, onChunk ChunkHandler) (*StreamResponse, error) {
	cl.method = http.MethodPost
	cl.stream = true

	start := time.Now()
	ctx, span := c.startSpan(ctx, cl)

	resp, err := c.send(ctx, cl, payload)
	if err != nil {
		c.record(span, cl, start, 0, 0, 0, err)
		span.End()
		return nil, err
	}

	stream := NewStreamResponse(resp.StatusCode, resp.Body, onChunk)
	stream.endpoint = cl.endpoint
	stream.done = func(chunks int, size int64, err error) {
		c.record(span, cl, start, resp.StatusCode, size, chunks, err)
		span.End()
	}
	return stream, nil
}

// send encodes payload, attaches headers and executes the request.
func (c *Client) send(ctx context.Context, cl call, payload map[string]any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &TransportError{Op: cl.op(), Endpoint: cl.endpoint, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.endpoint, body)
	if err != nil {
		return nil, &TransportError{Op: cl.op(), Endpoint: cl.endpoint, Err: fmt.Errorf("build request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	if c.logger != nil {
		c.logger.Debug("Sending Ollama request", nil, map[string]interface{}{
			"method":   cl.method,
			"endpoint": cl.endpoint,
			"model":    cl.model,
			"stream":   cl.stream,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: cl.op(), Endpoint: cl.endpoint, Err: err}
	}
	return resp, nil
}

func (c *Client) startSpan(ctx context.Context, cl call) (context.Context, trace.Span) {
	ctx, span := c.tracer.Start(ctx, "ollama."+cl.operation, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("http.request.method", cl.method),
		attribute.String("url.path", cl.endpoint),
		attribute.Bool("ollama.stream", cl.stream),
	)
	if cl.model != "" {
		span.SetAttributes(attribute.String("ollama.model", cl.model))
	}
	return ctx, span
}

// record reports a finished exchange to the span, the observer and the logger.
// chunks is negative for non-streaming requests.
func (c *Client) record(span trace.Span, cl call, start time.Time, status int, size int64, chunks int, err error) {
	duration := time.Since(start)

	metadata := map[string]interface{}{
		"status_code": status,
		"stream":      cl.stream,
	}
	if chunks >= 0 {
		metadata["chunks"] = chunks
	}

	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}

	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if c.logger != nil {
			c.logger.Error("Ollama request failed", err, map[string]interface{}{
				"endpoint": cl.endpoint,
				"model":    cl.model,
			})
		}
	case status < http.StatusOK || status >= http.StatusMultipleChoices:
		span.SetStatus(codes.Error, http.StatusText(status))
		if c.logger != nil {
			c.logger.Warn("Ollama returned non-success status", nil, map[string]interface{}{
				"endpoint":    cl.endpoint,
				"model":       cl.model,
				"status_code": status,
			})
		}
	default:
		if c.logger != nil {
			c.logger.Debug("Ollama request completed", nil, map[string]interface{}{
				"endpoint":    cl.endpoint,
				"status_code": status,
				"duration_ms": duration.Milliseconds(),
			})
		}
	}

	c.observeOperation(cl.operation, cl.endpoint, cl.model, duration, err, size, metadata)
}

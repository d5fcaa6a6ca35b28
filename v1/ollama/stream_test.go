package ollama

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func newTrackingBody(s string) *trackingBody {
	return &trackingBody{Reader: strings.NewReader(s)}
}

func TestStreamProcessAccumulatesResponse(t *testing.T) {
	body := newTrackingBody(
		`{"response":"chunk1"}` + "\n" +
			`{"response":"chunk2"}` + "\n" +
			`{"response":"chunk3","done":true}` + "\n",
	)

	var seen []map[string]any
	stream := NewStreamResponse(200, body, func(chunk map[string]any) {
		seen = append(seen, chunk)
	})

	result, err := stream.Process()
	require.NoError(t, err)

	require.Len(t, seen, 3)
	assert.Equal(t, "chunk1", seen[0]["response"])
	assert.Equal(t, "chunk2", seen[1]["response"])
	assert.Equal(t, "chunk3", seen[2]["response"])

	assert.Equal(t, map[string]any{
		"response":      "chunk3",
		"done":          true,
		"full_response": "chunk1chunk2chunk3",
	}, result)
	assert.True(t, body.closed)
}

func TestStreamProcessEmptyStream(t *testing.T) {
	calls := 0
	stream := NewStreamResponse(200, newTrackingBody(""), func(map[string]any) { calls++ })

	result, err := stream.Process()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, result)
	assert.Zero(t, calls)
}

func TestStreamProcessSkipsInvalidLines(t *testing.T) {
	body := newTrackingBody(
		"\n" +
			"   \n" +
			`{"response":"Hel"}` + "\r\n" +
			"not json at all\n" +
			"{}\n" +
			"42\n" +
			`{"response":"lo"` + "\n" +
			`  {"response":"lo"}  ` + "\n" +
			`{"response":"","done":true,"eval_count":3}`,
	)

	calls := 0
	stream := NewStreamResponse(200, body, func(map[string]any) { calls++ })

	result, err := stream.Process()
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "Hello", result["full_response"])
	assert.Equal(t, true, result["done"])
	assert.Equal(t, 3.0, result["eval_count"])
}

func TestStreamProcessWithoutResponseField(t *testing.T) {
	body := newTrackingBody(
		`{"message":{"role":"assistant","content":"Hi"},"done":false}` + "\n" +
			`{"message":{"role":"assistant","content":"!"},"done":true}` + "\n",
	)

	result, err := NewStreamResponse(200, body, nil).Process()
	require.NoError(t, err)

	_, hasFull := result["full_response"]
	assert.False(t, hasFull)
	assert.Equal(t, true, result["done"])
	assert.Equal(t, map[string]any{"role": "assistant", "content": "!"}, result["message"])
}

func TestStreamProcessFinalChunkWithoutResponse(t *testing.T) {
	body := newTrackingBody(
		`{"response":"a"}` + "\n" +
			`{"done":true}` + "\n",
	)

	result, err := NewStreamResponse(200, body, nil).Process()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"done": true}, result)
}

func TestStreamProcessTwice(t *testing.T) {
	stream := NewStreamResponse(200, newTrackingBody(`{"response":"x"}`), nil)

	_, err := stream.Process()
	require.NoError(t, err)

	_, err = stream.Process()
	assert.ErrorIs(t, err, ErrStreamConsumed)
	assert.True(t, IsStreamConsumedError(err))
}

func TestStreamProcessReadFailure(t *testing.T) {
	boom := errors.New("connection reset")
	body := io.NopCloser(io.MultiReader(
		strings.NewReader(`{"response":"partial"}`+"\n"),
		iotest.ErrReader(boom),
	))

	calls := 0
	stream := NewStreamResponse(200, body, func(map[string]any) { calls++ })
	stream.endpoint = pathGenerate

	result, err := stream.Process()
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 1, calls)
	assert.True(t, IsTransportError(err))
	assert.ErrorIs(t, err, boom)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, pathGenerate, terr.Endpoint)
	assert.Equal(t, 200, terr.Code)
}

func TestStreamCloseWithoutProcess(t *testing.T) {
	body := newTrackingBody(`{"response":"unused"}`)
	doneCalls := 0

	stream := NewStreamResponse(200, body, nil)
	stream.done = func(int, int64, error) { doneCalls++ }

	require.NoError(t, stream.Close())
	assert.True(t, body.closed)
	assert.Equal(t, 1, doneCalls)

	require.NoError(t, stream.Close())
	_, err := stream.Process()
	assert.ErrorIs(t, err, ErrStreamConsumed)
	assert.Equal(t, 1, doneCalls)
}

func TestStreamIsSuccessful(t *testing.T) {
	assert.True(t, NewStreamResponse(200, newTrackingBody(""), nil).IsSuccessful())
	assert.False(t, NewStreamResponse(404, newTrackingBody(""), nil).IsSuccessful())
	assert.Equal(t, 404, NewStreamResponse(404, newTrackingBody(""), nil).StatusCode())
}

func TestStreamProcessHandlerPanicStillFinishes(t *testing.T) {
	body := newTrackingBody(`{"response":"a"}` + "\n" + `{"response":"b"}` + "\n")

	var (
		doneCalls int
		doneErr   error
		doneCount int
	)
	stream := NewStreamResponse(200, body, func(map[string]any) { panic("handler bug") })
	stream.done = func(chunks int, size int64, err error) {
		doneCalls++
		doneCount = chunks
		doneErr = err
	}

	assert.PanicsWithValue(t, "handler bug", func() { _, _ = stream.Process() })
	assert.True(t, body.closed)
	assert.Equal(t, 1, doneCalls)
	assert.Zero(t, doneCount)
	require.Error(t, doneErr)
	assert.Contains(t, doneErr.Error(), "handler bug")
}

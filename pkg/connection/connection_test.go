package connection

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockgraph/blockgraph.go/internal/codec"
	"github.com/blockgraph/blockgraph.go/pkg/constants"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

// stubConnection answers every Send with a fixed response.
type stubConnection struct {
	res    *RPCResponse[cbor.RawMessage]
	err    error
	method string
	params []any
}

func (c *stubConnection) Connect(context.Context) error { return nil }
func (c *stubConnection) Close(context.Context) error   { return nil }
func (c *stubConnection) Events() <-chan Frame            { return nil }
func (c *stubConnection) GetUnmarshaler() codec.Unmarshaler {
	return wire.NewCodec()
}

func (c *stubConnection) Send(_ context.Context, method string, params ...any) (*RPCResponse[cbor.RawMessage], error) {
	c.method = method
	c.params = params
	return c.res, c.err
}

func (c *stubConnection) SendRequest(ctx context.Context, req *RPCRequest) (*RPCResponse[cbor.RawMessage], error) {
	return c.Send(ctx, req.Method, req.Params...)
}

func rawResult(t *testing.T, v any) *cbor.RawMessage {
	t.Helper()
	data, err := wire.NewCodec().Marshal(v)
	require.NoError(t, err)
	raw := cbor.RawMessage(data)
	return &raw
}

func TestSendDecodesResult(t *testing.T) {
	conn := &stubConnection{res: &RPCResponse[cbor.RawMessage]{
		ID:     "abc",
		Result: rawResult(t, &wire.BlockCreateResponse{BlockID: "b1"}),
	}}

	var res RPCResponse[wire.BlockCreateResponse]
	err := Send(context.Background(), conn, &res, BlockCreate, &wire.BlockCreateRequest{ContextID: "ctx"})
	require.NoError(t, err)

	assert.Equal(t, "BlockCreate", conn.method)
	require.Len(t, conn.params, 1)
	assert.Equal(t, "abc", res.ID)
	require.NotNil(t, res.Result)
	assert.Equal(t, "b1", res.Result.BlockID)
}

func TestSendNilResult(t *testing.T) {
	conn := &stubConnection{res: &RPCResponse[cbor.RawMessage]{ID: "abc"}}

	var res RPCResponse[wire.BlockCreateResponse]
	require.NoError(t, Send(context.Background(), conn, &res, BlockCreate))
	assert.Nil(t, res.Result)

	require.NoError(t, Send[any](context.Background(), conn, nil, ObjectClose))
}

func TestSendPropagatesError(t *testing.T) {
	rpcErr := &RPCError{Code: 7, Message: "nope"}
	conn := &stubConnection{err: rpcErr}

	err := Send[any](context.Background(), conn, nil, ObjectClose)
	var got *RPCError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 7, got.Code)
	assert.True(t, errors.Is(err, &RPCError{}))
}

func TestSendUndecodableResult(t *testing.T) {
	conn := &stubConnection{res: &RPCResponse[cbor.RawMessage]{
		Result: rawResult(t, "text"),
	}}

	var res RPCResponse[wire.BlockCreateResponse]
	assert.Error(t, Send(context.Background(), conn, &res, BlockCreate))
}

func TestRPCErrorMessage(t *testing.T) {
	assert.Equal(t, "rpc error 1: bad", (&RPCError{Code: 1, Message: "bad"}).Error())
	assert.Equal(t, "rpc error 1: detail", (&RPCError{Code: 1, Message: "bad", Description: "detail"}).Error())
}

func TestResponseChannels(t *testing.T) {
	u, err := url.Parse("ws://127.0.0.1:1")
	require.NoError(t, err)

	tk := NewToolkit(NewConfig(u))
	assert.Equal(t, "ws://127.0.0.1:1", tk.BaseURL)
	assert.NoError(t, tk.PreConnectionChecks())

	ch, err := tk.CreateResponseChannel("1", false)
	require.NoError(t, err)

	_, err = tk.CreateResponseChannel("1", true)
	assert.ErrorIs(t, err, constants.ErrIDInUse)

	got, ok := tk.GetResponseChannel("1")
	require.True(t, ok)
	assert.Equal(t, ch, got)

	assert.False(t, tk.IsOrdered("1"))

	_, err = tk.CreateResponseChannel("2", true)
	require.NoError(t, err)
	assert.True(t, tk.IsOrdered("2"))

	tk.RemoveResponseChannel("1")
	_, ok = tk.GetResponseChannel("1")
	assert.False(t, ok)

	tk.RemoveResponseChannel("2")
	assert.False(t, tk.IsOrdered("2"))

	assert.Equal(t, constants.EventBufferSize, cap(tk.EventChannel))
}

func TestNewRequest(t *testing.T) {
	a := NewRequest(ObjectOpen, "x")
	b := NewRequest(ObjectOpen)

	assert.Equal(t, "ObjectOpen", a.Method)
	assert.Equal(t, []any{"x"}, a.Params)
	assert.False(t, a.Ordered)
	require.IsType(t, "", a.ID)
	assert.Len(t, a.ID, constants.RequestIDLength)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPreConnectionChecks(t *testing.T) {
	tk := Toolkit{}
	assert.ErrorIs(t, tk.PreConnectionChecks(), constants.ErrNoBaseURL)

	tk.BaseURL = "ws://x"
	assert.ErrorIs(t, tk.PreConnectionChecks(), constants.ErrNoMarshaler)

	tk.Marshaler = wire.NewCodec()
	assert.ErrorIs(t, tk.PreConnectionChecks(), constants.ErrNoUnmarshaler)
}

package fakeserver

import (
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

func TestServerStartStop(t *testing.T) {
	server := NewServer("127.0.0.1:0")

	server.AddStubResponse(StubResponse{Method: "ObjectClose", Result: true})

	require.NoError(t, server.Start())
	assert.NotEmpty(t, server.Address())
	assert.Equal(t, "ws://"+server.Address(), server.URL())
	assert.Equal(t, 0, server.Connections())
	assert.Empty(t, server.Requests())
	require.NoError(t, server.Stop())
}

func TestRequestDecode(t *testing.T) {
	c := wire.NewCodec()
	raw, err := c.Marshal("hello")
	require.NoError(t, err)

	req := &Request{Method: "LinkPreview", Params: []cbor.RawMessage{raw}, unmarshaler: c}

	var s string
	require.NoError(t, req.Decode(0, &s))
	assert.Equal(t, "hello", s)
	assert.Error(t, req.Decode(1, &s))
}

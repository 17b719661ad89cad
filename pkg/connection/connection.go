// Package connection defines the RPC transport used by a Session: the
// request/response envelope, the Connection interface and the bookkeeping
// shared by its implementations.
package connection

import (
	"context"
	"fmt"
	"sync"

	"github.com/fxamacker/cbor/v2"

	"github.com/blockgraph/blockgraph.go/internal/codec"
	"github.com/blockgraph/blockgraph.go/pkg/constants"
	"github.com/blockgraph/blockgraph.go/pkg/logger"
)

type Connection interface {
	Connect(ctx context.Context) error
	Close(ctx context.Context) error
	// Send writes a request and waits for the response carrying the same id.
	// An RPC level error is returned as *RPCError.
	Send(ctx context.Context, method string, params ...any) (*RPCResponse[cbor.RawMessage], error)
	// SendRequest is Send for a prepared request. A request without an id
	// gets one.
	SendRequest(ctx context.Context, req *RPCRequest) (*RPCResponse[cbor.RawMessage], error)
	// Events delivers, in arrival order, every frame pushed by the backend
	// without a request id and the responses of ordered requests. The
	// channel is closed when the connection closes.
	Events() <-chan Frame
	GetUnmarshaler() codec.Unmarshaler
}

// Toolkit holds what every Connection implementation needs: the codec, the
// pending response channels and the event channel.
type Toolkit struct {
	BaseURL     string
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler
	Logger      logger.Logger

	ResponseChannels     map[string]chan RPCResponse[cbor.RawMessage]
	OrderedResponses     map[string]struct{}
	ResponseChannelsLock sync.RWMutex

	EventChannel chan Frame
}

func NewToolkit(conf *Config) Toolkit {
	return Toolkit{
		BaseURL:          conf.BaseURL,
		Marshaler:        conf.Marshaler,
		Unmarshaler:      conf.Unmarshaler,
		Logger:           conf.Logger,
		ResponseChannels: make(map[string]chan RPCResponse[cbor.RawMessage]),
		OrderedResponses: make(map[string]struct{}),
		EventChannel:     make(chan Frame, constants.EventBufferSize),
	}
}

// CreateResponseChannel registers id. The response of an ordered id is
// also due on the event channel.
func (tk *Toolkit) CreateResponseChannel(id string, ordered bool) (chan RPCResponse[cbor.RawMessage], error) {
	tk.ResponseChannelsLock.Lock()
	defer tk.ResponseChannelsLock.Unlock()

	if _, ok := tk.ResponseChannels[id]; ok {
		return nil, fmt.Errorf("%w: %v", constants.ErrIDInUse, id)
	}

	// Buffered so the read loop never blocks on a caller that gave up.
	ch := make(chan RPCResponse[cbor.RawMessage], 1)
	tk.ResponseChannels[id] = ch
	if ordered {
		tk.OrderedResponses[id] = struct{}{}
	}

	return ch, nil
}

func (tk *Toolkit) RemoveResponseChannel(id string) {
	tk.ResponseChannelsLock.Lock()
	defer tk.ResponseChannelsLock.Unlock()
	delete(tk.ResponseChannels, id)
	delete(tk.OrderedResponses, id)
}

func (tk *Toolkit) GetResponseChannel(id string) (chan RPCResponse[cbor.RawMessage], bool) {
	tk.ResponseChannelsLock.RLock()
	defer tk.ResponseChannelsLock.RUnlock()
	ch, ok := tk.ResponseChannels[id]
	return ch, ok
}

func (tk *Toolkit) IsOrdered(id string) bool {
	tk.ResponseChannelsLock.RLock()
	defer tk.ResponseChannelsLock.RUnlock()
	_, ok := tk.OrderedResponses[id]
	return ok
}

func (tk *Toolkit) Events() <-chan Frame {
	return tk.EventChannel
}

func (tk *Toolkit) GetUnmarshaler() codec.Unmarshaler {
	return tk.Unmarshaler
}

func (tk *Toolkit) PreConnectionChecks() error {
	if tk.BaseURL == "" {
		return constants.ErrNoBaseURL
	}

	if tk.Marshaler == nil {
		return constants.ErrNoMarshaler
	}

	if tk.Unmarshaler == nil {
		return constants.ErrNoUnmarshaler
	}

	return nil
}

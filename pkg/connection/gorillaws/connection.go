// Package gorillaws implements connection.Connection over a gorilla/websocket
// client.
package gorillaws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	gorilla "github.com/gorilla/websocket"

	"github.com/blockgraph/blockgraph.go/internal/rand"
	"github.com/blockgraph/blockgraph.go/pkg/connection"
	"github.com/blockgraph/blockgraph.go/pkg/constants"
	"github.com/blockgraph/blockgraph.go/pkg/logger"
)

// DefaultDialer is gorilla's default dialer with compression enabled and
// the "cbor" subprotocol requested.
var DefaultDialer = &gorilla.Dialer{
	Proxy:             gorilla.DefaultDialer.Proxy,
	HandshakeTimeout:  gorilla.DefaultDialer.HandshakeTimeout,
	EnableCompression: true,
	Subprotocols:      []string{"cbor"},
}

type Option func(ws *Connection) error

type Connection struct {
	connection.Toolkit

	Conn *gorilla.Conn
	// connLock guards Conn for writes and for the swap done by Close.
	connLock sync.Mutex

	// Timeout bounds the wait for a response once the request is written.
	// Zero leaves it to the caller's context.
	Timeout time.Duration

	Option []Option
	logger logger.Logger

	// connCloseCh is closed exactly once, by Close or by the read loop on a
	// fatal read error.
	connCloseCh    chan struct{}
	closeOnce      sync.Once
	connCloseError error
	closed         bool
	closedLock     sync.RWMutex
}

var _ connection.Connection = (*Connection)(nil)

func New(p *connection.Config) *Connection {
	l := p.Logger
	if l == nil {
		l = logger.Discard()
	}

	c := &Connection{
		Toolkit:     connection.NewToolkit(p),
		Timeout:     constants.DefaultTimeout,
		logger:      l,
		connCloseCh: make(chan struct{}),
	}
	c.Toolkit.Logger = l

	return c
}

// IsClosed reports whether the connection was closed, either by Close or
// because the peer went away.
func (c *Connection) IsClosed() bool {
	c.closedLock.RLock()
	defer c.closedLock.RUnlock()
	return c.closed
}

// Connect dials BaseURL/rpc and starts the read loop. A Connection can be
// connected once; create a new one to reconnect.
func (c *Connection) Connect(ctx context.Context) error {
	if err := c.PreConnectionChecks(); err != nil {
		return err
	}

	if c.IsClosed() {
		return constants.ErrClosed
	}

	conn, res, err := DefaultDialer.DialContext(ctx, fmt.Sprintf("%s/rpc", c.BaseURL), nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	c.connLock.Lock()
	defer c.connLock.Unlock()

	c.Conn = conn

	for _, option := range c.Option {
		if err := option(c); err != nil {
			return err
		}
	}

	go c.readLoop(conn)

	c.logger.Debug("connected", "url", c.BaseURL)

	return nil
}

func (c *Connection) SetTimeOut(timeout time.Duration) *Connection {
	c.Option = append(c.Option, func(ws *Connection) error {
		ws.Timeout = timeout
		return nil
	})
	return c
}

func (c *Connection) Logger(logData logger.Logger) *Connection {
	c.logger = logData
	c.Toolkit.Logger = logData
	return c
}

func (c *Connection) SetCompression(compress bool) *Connection {
	c.Option = append(c.Option, func(ws *Connection) error {
		ws.Conn.EnableWriteCompression(compress)
		return nil
	})
	return c
}

// Close sends a close frame, bounded by ctx, then closes the socket. The
// socket is closed even when the close frame could not be written.
func (c *Connection) Close(ctx context.Context) error {
	if c.IsClosed() {
		return nil
	}

	c.markClosed(constants.ErrClosed)

	c.connLock.Lock()
	defer c.connLock.Unlock()

	conn := c.Conn
	c.Conn = nil
	if conn == nil {
		return nil
	}

	writeErr := make(chan error, 1)

	go func() {
		if deadline, ok := ctx.Deadline(); ok {
			if err := conn.SetWriteDeadline(deadline); err != nil {
				writeErr <- fmt.Errorf("Close: failed to set write deadline: %w", err)
				return
			}
		}

		writeErr <- conn.WriteMessage(gorilla.CloseMessage, gorilla.FormatCloseMessage(constants.CloseMessageCode, ""))
	}()

	select {
	case err := <-writeErr:
		if err != nil {
			c.logger.Error("failed to write close message", "error", err)
		}
	case <-ctx.Done():
	}

	return conn.Close()
}

// Send writes a request and waits for its response. The wait is bounded by
// Timeout when set, and always by ctx.
func (c *Connection) Send(ctx context.Context, method string, params ...any) (*connection.RPCResponse[cbor.RawMessage], error) {
	return c.SendRequest(ctx, connection.NewRequest(connection.RPCFunction(method), params...))
}

func (c *Connection) SendRequest(ctx context.Context, request *connection.RPCRequest) (*connection.RPCResponse[cbor.RawMessage], error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	select {
	case <-c.connCloseCh:
		return nil, c.closeError()
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if request.ID == nil || request.ID == "" {
		request.ID = rand.NewRequestID(constants.RequestIDLength)
	}
	id := fmt.Sprintf("%v", request.ID)
	method := request.Method

	responseChan, err := c.CreateResponseChannel(id, request.Ordered)
	if err != nil {
		return nil, err
	}
	defer c.RemoveResponseChannel(id)

	if err := c.write(request); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", constants.ErrTimeout, method)
		}
		return nil, ctx.Err()
	case <-c.connCloseCh:
		return nil, c.closeError()
	case res := <-responseChan:
		if res.Error != nil {
			return nil, res.Error
		}
		return &res, nil
	}
}

func (c *Connection) write(v any) error {
	data, err := c.Marshaler.Marshal(v)
	if err != nil {
		return err
	}

	c.connLock.Lock()
	defer c.connLock.Unlock()

	if c.Conn == nil {
		return constants.ErrNotConnected
	}

	err = c.Conn.WriteMessage(gorilla.BinaryMessage, data)
	if errors.Is(err, gorilla.ErrCloseSent) {
		c.markClosed(err)
	}

	return err
}

func (c *Connection) markClosed(err error) {
	c.closeOnce.Do(func() {
		c.closedLock.Lock()
		c.closed = true
		c.connCloseError = err
		c.closedLock.Unlock()
		close(c.connCloseCh)
	})
}

func (c *Connection) closeError() error {
	c.closedLock.RLock()
	defer c.closedLock.RUnlock()
	if c.connCloseError == nil {
		return constants.ErrClosed
	}
	return c.connCloseError
}

// readLoop owns the event channel and closes it on exit. Frames are handled
// in arrival order so events and ordered responses reach the consumer in
// the order they were sent.
func (c *Connection) readLoop(conn *gorilla.Conn) {
	defer close(c.EventChannel)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if c.handleError(err) {
				return
			}
			continue
		}

		c.handleResponse(data)
	}
}

// handleError reports whether the read loop should exit.
func (c *Connection) handleError(err error) bool {
	switch {
	case c.IsClosed():
		return true
	case errors.Is(err, net.ErrClosed):
		c.markClosed(net.ErrClosed)
		return true
	case gorilla.IsUnexpectedCloseError(err), gorilla.IsCloseError(err, constants.CloseMessageCode):
		c.markClosed(io.ErrClosedPipe)
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		c.markClosed(err)
		return true
	}

	c.logger.Error("read failed", "error", err)
	return false
}

func (c *Connection) handleResponse(data []byte) {
	var rpcRes connection.RPCResponse[cbor.RawMessage]
	if err := c.Unmarshaler.Unmarshal(data, &rpcRes); err != nil {
		c.logger.Error("failed to decode frame", "error", err)
		return
	}

	if rpcRes.ID != nil && rpcRes.ID != "" {
		id := fmt.Sprintf("%v", rpcRes.ID)
		responseChan, ok := c.GetResponseChannel(id)
		if !ok {
			c.logger.Warn("response for unknown request", "id", id)
			return
		}
		if rpcRes.Error == nil && c.IsOrdered(id) {
			frame := connection.Frame{RequestID: id}
			if rpcRes.Result != nil {
				frame.Payload = *rpcRes.Result
			}
			if !c.push(frame) {
				return
			}
		}
		responseChan <- rpcRes
		return
	}

	if rpcRes.Result == nil {
		// An error without an id cannot be routed to a caller.
		if rpcRes.Error != nil {
			c.logger.Error("error frame without id", "error", rpcRes.Error)
		}
		return
	}

	c.push(connection.Frame{Payload: *rpcRes.Result})
}

// push reports whether frame was queued before the connection closed.
func (c *Connection) push(frame connection.Frame) bool {
	select {
	case c.EventChannel <- frame:
		return true
	case <-c.connCloseCh:
		return false
	}
}

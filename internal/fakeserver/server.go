// Package fakeserver provides a fake backend speaking the CBOR RPC protocol
// over WebSocket, for tests.
//
// Methods are answered by stubs or handlers registered per method. Events
// can be pushed to every connected client with Emit. Failures can be
// injected per stub to exercise timeouts and dropped connections.
//
// The WebSocket server is implemented using the `gws` library.
package fakeserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/lxzan/gws"

	"github.com/blockgraph/blockgraph.go/internal/codec"
	"github.com/blockgraph/blockgraph.go/pkg/connection"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

// FailureType is a failure injected while answering a request.
type FailureType string

const (
	FailureNone FailureType = "none"
	// FailureResponseDelay sleeps for Delay before responding.
	FailureResponseDelay FailureType = "response_delay"
	// FailureNoResponse swallows the request.
	FailureNoResponse FailureType = "no_response"
	// FailureWebSocketClose sends a close frame with CloseCode and CloseReason.
	FailureWebSocketClose FailureType = "websocket_close"
	// FailureDropConnection closes the underlying network connection.
	FailureDropConnection FailureType = "drop_connection"
	// FailureInvalidResponse writes bytes that are not CBOR.
	FailureInvalidResponse FailureType = "invalid_response"
)

type FailureConfig struct {
	Type        FailureType
	Delay       time.Duration
	CloseCode   uint16
	CloseReason string
}

// Request is a decoded request frame. Params stay raw until a handler
// decodes them into the type it expects.
type Request struct {
	ID     any               `cbor:"id"`
	Method string            `cbor:"method"`
	Params []cbor.RawMessage `cbor:"params"`

	unmarshaler codec.Unmarshaler
}

// Decode decodes the i-th parameter into dst.
func (r *Request) Decode(i int, dst any) error {
	if i >= len(r.Params) {
		return fmt.Errorf("request %s has %d params, wanted param %d", r.Method, len(r.Params), i)
	}
	return r.unmarshaler.Unmarshal(r.Params[i], dst)
}

// HandlerFunc answers a request. Returning a *connection.RPCError sends it
// as the error member of the response. Any other error is sent with code
// -32000.
type HandlerFunc func(req *Request) (any, error)

type StubResponse struct {
	Method   string
	Result   any
	Error    *connection.RPCError
	Failures []FailureConfig
	// Then holds events written to the same client right after the
	// response.
	Then []any
}

// Server is the fake backend.
type Server struct {
	addr        string
	listener    net.Listener
	server      *gws.Server
	mu          sync.RWMutex
	stubs       map[string]StubResponse
	handlers    map[string]HandlerFunc
	connections map[*gws.Conn]bool
	requests    []*Request
	ctx         context.Context
	cancel      context.CancelFunc
	marshaler   codec.Marshaler
	unmarshaler codec.Unmarshaler
}

type Handler struct {
	server *Server
}

// NewServer creates a new fake server. Use "127.0.0.1:0" to bind to a
// random available port.
func NewServer(addr string) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	c := wire.NewCodec()

	s := &Server{
		addr:        addr,
		stubs:       make(map[string]StubResponse),
		handlers:    make(map[string]HandlerFunc),
		connections: make(map[*gws.Conn]bool),
		ctx:         ctx,
		cancel:      cancel,
		marshaler:   c,
		unmarshaler: c,
	}

	s.server = gws.NewServer(&Handler{server: s}, &gws.ServerOption{})
	s.server.OnError = func(_ net.Conn, err error) {
		if !errors.Is(err, net.ErrClosed) && !isUseOfClosedNetworkError(err) {
			log.Printf("Server error: %v", err)
		}
	}

	return s
}

// AddStubResponse makes method answer with a fixed result or error.
// A later stub for the same method replaces the earlier one.
func (s *Server) AddStubResponse(stub StubResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[stub.Method] = stub
}

// Handle registers fn for method. Handlers take precedence over stubs.
func (s *Server) Handle(method string, fn HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = fn
}

// Requests returns the requests received so far, oldest first.
func (s *Server) Requests() []*Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestsFor returns the requests received for method.
func (s *Server) RequestsFor(method string) []*Request {
	var out []*Request
	for _, r := range s.Requests() {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

// Emit pushes event to every connected client as a frame without an id.
// Stub responses can push events of their own with StubResponse.Then.
func (s *Server) Emit(event any) error {
	data, err := s.marshaler.Marshal(map[string]any{"id": nil, "result": event})
	if err != nil {
		return err
	}

	s.mu.RLock()
	conns := make([]*gws.Conn, 0, len(s.connections))
	for c := range s.connections {
		conns = append(conns, c)
	}
	s.mu.RUnlock()

	var errs []error
	for _, c := range conns {
		if err := c.WriteMessage(gws.OpcodeBinary, data); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Connections returns the number of open client connections.
func (s *Server) Connections() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) Start() error {
	var lc net.ListenConfig
	listener, err := lc.Listen(context.Background(), "tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener

	go func() {
		if err := s.server.RunListener(listener); err != nil {
			if !errors.Is(err, net.ErrClosed) && !isUseOfClosedNetworkError(err) {
				log.Printf("Server error: %v", err)
			}
		}
	}()

	return nil
}

func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for c := range s.connections {
		_ = c.NetConn().Close()
	}
	s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// Address returns the address the server listens on, without a scheme.
func (s *Server) Address() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// URL returns the ws:// URL of the server.
func (s *Server) URL() string {
	return "ws://" + s.Address()
}

func (h *Handler) OnOpen(socket *gws.Conn) {
	h.server.mu.Lock()
	h.server.connections[socket] = true
	h.server.mu.Unlock()
}

func (h *Handler) OnClose(socket *gws.Conn, _ error) {
	h.server.mu.Lock()
	delete(h.server.connections, socket)
	h.server.mu.Unlock()
}

func (h *Handler) OnPing(socket *gws.Conn, payload []byte) {
	_ = socket.WritePong(payload)
}

func (h *Handler) OnPong(*gws.Conn, []byte) {}

func (h *Handler) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()

	req := &Request{unmarshaler: h.server.unmarshaler}
	if err := h.server.unmarshaler.Unmarshal(message.Bytes(), req); err != nil {
		h.sendError(socket, nil, -32700, "Parse error")
		return
	}

	h.server.mu.Lock()
	h.server.requests = append(h.server.requests, req)
	handler, hasHandler := h.server.handlers[req.Method]
	stub, hasStub := h.server.stubs[req.Method]
	h.server.mu.Unlock()

	switch {
	case hasHandler:
		res, err := handler(req)
		if err != nil {
			var rpcErr *connection.RPCError
			if errors.As(err, &rpcErr) {
				h.sendError(socket, req.ID, rpcErr.Code, rpcErr.Message)
			} else {
				h.sendError(socket, req.ID, -32000, err.Error())
			}
			return
		}
		h.sendResponse(socket, req.ID, res)
	case hasStub:
		for _, failure := range stub.Failures {
			if done := h.applyFailure(socket, failure); done {
				return
			}
		}

		if stub.Error != nil {
			h.sendError(socket, req.ID, stub.Error.Code, stub.Error.Message)
			return
		}
		h.sendResponse(socket, req.ID, stub.Result)
		for _, event := range stub.Then {
			h.sendResponse(socket, nil, event)
		}
	default:
		h.sendError(socket, req.ID, -32601, "Method not found: "+req.Method)
	}
}

// applyFailure reports whether the request must not be answered.
func (h *Handler) applyFailure(socket *gws.Conn, failure FailureConfig) bool {
	switch failure.Type {
	case FailureResponseDelay:
		select {
		case <-time.After(failure.Delay):
		case <-h.server.ctx.Done():
			return true
		}
		return false
	case FailureNoResponse:
		return true
	case FailureWebSocketClose:
		socket.WriteClose(failure.CloseCode, []byte(failure.CloseReason))
		return true
	case FailureDropConnection:
		_ = socket.NetConn().Close()
		return true
	case FailureInvalidResponse:
		_ = socket.WriteMessage(gws.OpcodeBinary, []byte{0xff, 0xff, 0xff})
		return true
	default:
		return false
	}
}

func (h *Handler) sendResponse(socket *gws.Conn, id, result any) {
	data, err := h.server.marshaler.Marshal(map[string]any{"id": id, "result": result})
	if err != nil {
		h.sendError(socket, id, -32603, "Internal error")
		return
	}

	if err := socket.WriteMessage(gws.OpcodeBinary, data); err != nil {
		log.Printf("Failed to send response: %v", err)
	}
}

func (h *Handler) sendError(socket *gws.Conn, id any, code int, message string) {
	data, err := h.server.marshaler.Marshal(map[string]any{
		"id":    id,
		"error": &connection.RPCError{Code: code, Message: message},
	})
	if err != nil {
		log.Printf("Failed to marshal error response: %v", err)
		return
	}

	if err := socket.WriteMessage(gws.OpcodeBinary, data); err != nil {
		log.Printf("Failed to send error response: %v", err)
	}
}

func isUseOfClosedNetworkError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "use of closed network connection")
}

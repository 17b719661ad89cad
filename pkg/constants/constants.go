// Package constants holds shared defaults and sentinel errors.
package constants

import "time"

const (
	// DefaultTimeout bounds how long Send waits for an RPC response.
	DefaultTimeout = 30 * time.Second
	// DefaultCloseTimeout bounds the WebSocket close handshake.
	DefaultCloseTimeout = 5 * time.Second
	// RequestIDLength is the length of the id attached to each RPC request.
	RequestIDLength = 16
	// CloseMessageCode is the WebSocket close code sent on a normal close.
	CloseMessageCode = 1000
	// EventBufferSize is the capacity of the pushed-event channel.
	EventBufferSize = 256
)

var (
	WebsocketScheme       = "ws"
	WebsocketSecureScheme = "wss"
)

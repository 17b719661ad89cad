package connection

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/blockgraph/blockgraph.go/internal/rand"
	"github.com/blockgraph/blockgraph.go/pkg/constants"
)

// RPCError is the error member of a response frame.
type RPCError struct {
	Code        int    `cbor:"code"`
	Message     string `cbor:"message,omitempty"`
	Description string `cbor:"description,omitempty"`
}

func (r *RPCError) Error() string {
	if r.Description != "" {
		return fmt.Sprintf("rpc error %d: %s", r.Code, r.Description)
	}
	return fmt.Sprintf("rpc error %d: %s", r.Code, r.Message)
}

func (r *RPCError) Is(target error) bool {
	if target == nil {
		return r == nil
	}

	_, ok := target.(*RPCError)
	return ok
}

// RPCRequest is a request frame.
type RPCRequest struct {
	ID     any    `cbor:"id"`
	Method string `cbor:"method,omitempty"`
	Params []any  `cbor:"params,omitempty"`

	// Ordered requests also get their successful response delivered on
	// Events, at its arrival position among pushed events.
	Ordered bool `cbor:"-"`
}

// NewRequest builds a request with a fresh id.
func NewRequest(method RPCFunction, params ...any) *RPCRequest {
	return &RPCRequest{
		ID:     rand.NewRequestID(constants.RequestIDLength),
		Method: string(method),
		Params: params,
	}
}

// Frame is an inbound frame as delivered on Events. RequestID is empty for
// frames pushed by the backend and names the request for the response of
// an ordered request, in which case Payload is its result.
type Frame struct {
	RequestID string
	Payload   cbor.RawMessage
}

// RPCResponse is a response frame. Frames pushed by the backend on its own
// have no ID and carry the event in Result.
type RPCResponse[T any] struct {
	ID     any       `cbor:"id"`
	Error  *RPCError `cbor:"error,omitempty"`
	Result *T        `cbor:"result,omitempty"`
}

type RPCFunction string

const (
	AccountSelect           RPCFunction = "AccountSelect"
	ObjectOpen              RPCFunction = "ObjectOpen"
	ObjectClose             RPCFunction = "ObjectClose"
	ObjectSetDetails        RPCFunction = "ObjectSetDetails"
	ObjectSearchSubscribe   RPCFunction = "ObjectSearchSubscribe"
	ObjectSearchUnsubscribe RPCFunction = "ObjectSearchUnsubscribe"
	ObjectCreateRelation    RPCFunction = "ObjectCreateRelation"
	ObjectTypeCreate        RPCFunction = "ObjectTypeCreate"
	ObjectGraph             RPCFunction = "ObjectGraph"
	BlockCreate             RPCFunction = "BlockCreate"
	BlockPaste              RPCFunction = "BlockPaste"
	BlockListSetFields      RPCFunction = "BlockListSetFields"
	BlockDataviewViewUpdate RPCFunction = "BlockDataviewViewUpdate"
	HistoryGetVersions      RPCFunction = "HistoryGetVersions"
	UnsplashSearch          RPCFunction = "UnsplashSearch"
	LinkPreview             RPCFunction = "LinkPreview"
	ChatToggleReaction      RPCFunction = "ChatToggleReaction"
)

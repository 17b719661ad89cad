package blockgraph

import (
	"errors"
	"fmt"
)

// ErrSessionClosed is returned by calls made after Close.
var ErrSessionClosed = errors.New("session closed")

// ErrNoAccount is returned by calls acting for the selected account before
// AccountSelect succeeded.
var ErrNoAccount = errors.New("no account selected")

// EventError describes a pushed frame that could not be decoded.
type EventError struct {
	Err error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("undecodable event: %v", e.Err)
}

func (e *EventError) Unwrap() error {
	return e.Err
}

// ResponseError is returned when a call succeeded at the RPC level but the
// response lacks a member the caller needs.
type ResponseError struct {
	Method string
	What   string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: response has no %s", e.Method, e.What)
}

package constants

import "errors"

var (
	ErrIDInUse       = errors.New("id already in use")
	ErrTimeout       = errors.New("timeout")
	ErrNoBaseURL     = errors.New("base url not set")
	ErrNoMarshaler   = errors.New("marshaler is not set")
	ErrNoUnmarshaler = errors.New("unmarshaler is not set")
	ErrNotConnected  = errors.New("connection not established")
	ErrClosed        = errors.New("connection closed")
	ErrUnsupported   = errors.New("unsupported endpoint scheme")
	ErrEmptyResponse = errors.New("empty rpc result")
)

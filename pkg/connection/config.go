package connection

import (
	"fmt"
	"net/url"

	"github.com/blockgraph/blockgraph.go/internal/codec"
	"github.com/blockgraph/blockgraph.go/pkg/logger"
	"github.com/blockgraph/blockgraph.go/pkg/wire"
)

// Config is what a Connection implementation is built from.
type Config struct {
	URL         url.URL
	BaseURL     string
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler
	Logger      logger.Logger
}

// NewConfig returns a Config for the endpoint u using the CBOR wire codec
// and a discarding logger.
func NewConfig(u *url.URL) *Config {
	c := wire.NewCodec()
	return &Config{
		URL:         *u,
		BaseURL:     fmt.Sprintf("%s://%s", u.Scheme, u.Host),
		Marshaler:   c,
		Unmarshaler: c,
		Logger:      logger.Discard(),
	}
}

// Package rand generates request identifiers for RPC frames.
package rand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var defaultSource = newSource()

type source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSource() *source {
	seed := make([]byte, 16)
	if _, err := cryptorand.Read(seed); err != nil {
		panic("unreachable")
	}

	return &source{
		//nolint:gosec // request ids only need to be unique per connection
		rng: rand.New(rand.NewPCG(
			binary.LittleEndian.Uint64(seed[:8]),
			binary.LittleEndian.Uint64(seed[8:]),
		)),
	}
}

// NewRequestID returns a base62 string of the given length.
func NewRequestID(length int) string {
	buf := make([]byte, length)

	defaultSource.mu.Lock()
	for i := range buf {
		buf[i] = charset[defaultSource.rng.IntN(len(charset))]
	}
	defaultSource.mu.Unlock()

	return string(buf)
}

package wire

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/blockgraph/blockgraph.go/internal/codec"
)

const (
	// StructTag frames a protobuf encoded google.protobuf.Struct.
	StructTag uint64 = 60001
	// ValueTag frames a protobuf encoded google.protobuf.Value.
	ValueTag uint64 = 60002
)

var (
	encMode = getCborEncoder()
	decMode = getCborDecoder()
)

func getCborEncoder() cbor.EncMode {
	em, err := cbor.EncOptions{
		Sort:    cbor.SortCoreDeterministic,
		Time:    cbor.TimeRFC3339,
		TimeTag: cbor.EncTagRequired,
	}.EncMode()
	if err != nil {
		panic(err)
	}

	return em
}

func getCborDecoder() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any{}),
		TimeTagToAny:   cbor.TimeTagToTime,
	}.DecMode()
	if err != nil {
		panic(err)
	}

	return dm
}

// Codec is the CBOR envelope codec for RPC frames and wire messages.
type Codec struct {
	em cbor.EncMode
	dm cbor.DecMode
}

var _ codec.Codec = (*Codec)(nil)

func NewCodec() *Codec {
	return &Codec{em: encMode, dm: decMode}
}

func (c *Codec) Marshal(v any) ([]byte, error) {
	return c.em.Marshal(v)
}

func (c *Codec) NewEncoder(w io.Writer) codec.Encoder {
	return c.em.NewEncoder(w)
}

func (c *Codec) Unmarshal(data []byte, dst any) error {
	return c.dm.Unmarshal(data, dst)
}

func (c *Codec) NewDecoder(r io.Reader) codec.Decoder {
	return c.dm.NewDecoder(r)
}

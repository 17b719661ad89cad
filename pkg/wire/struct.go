package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Struct is google.protobuf.Struct. Inside CBOR frames it travels as
// StructTag wrapping the protobuf binary encoding.
type Struct structpb.Struct

// Value is google.protobuf.Value, framed as ValueTag.
type Value structpb.Value

func (s *Struct) Proto() *structpb.Struct {
	return (*structpb.Struct)(s)
}

func (v *Value) Proto() *structpb.Value {
	return (*structpb.Value)(v)
}

func (s *Struct) MarshalCBOR() ([]byte, error) {
	return marshalTaggedProto(s.Proto(), StructTag)
}

func (s *Struct) UnmarshalCBOR(data []byte) error {
	return unmarshalTaggedProto(data, StructTag, s.Proto())
}

func (v *Value) MarshalCBOR() ([]byte, error) {
	return marshalTaggedProto(v.Proto(), ValueTag)
}

func (v *Value) UnmarshalCBOR(data []byte) error {
	return unmarshalTaggedProto(data, ValueTag, v.Proto())
}

func marshalTaggedProto(m proto.Message, tag uint64) ([]byte, error) {
	data, err := proto.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf payload for tag %d: %w", tag, err)
	}

	return encMode.Marshal(cbor.Tag{
		Number:  tag,
		Content: data,
	})
}

func unmarshalTaggedProto(data []byte, tag uint64, dst proto.Message) error {
	content, err := getTaggedContent(data, tag)
	if err != nil {
		return err
	}

	var raw []byte
	if err := decMode.Unmarshal(content, &raw); err != nil {
		return fmt.Errorf("tag %d content is not a byte string: %w", tag, err)
	}

	return proto.Unmarshal(raw, dst)
}

func getTaggedContent(data []byte, tagNumber uint64) ([]byte, error) {
	var tag cbor.RawTag
	if err := decMode.Unmarshal(data, &tag); err != nil {
		return nil, err
	}

	if tag.Number != tagNumber {
		return nil, fmt.Errorf("unexpected tag number: got %d, want %d", tag.Number, tagNumber)
	}

	// RawTag.Content is already the raw encoded content, MarshalCBOR hands it back as is.
	contentData, err := tag.Content.MarshalCBOR()
	if err != nil {
		return nil, fmt.Errorf("failed to extract the raw bytes from cbor tag content: %w", err)
	}

	return contentData, nil
}

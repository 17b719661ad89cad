// Package wire is the binary protocol spoken with the backend.
//
// Messages are plain Go structs encoded with CBOR. Free-form payloads
// (block fields, object details, filter values) are carried as
// google.protobuf.Struct and google.protobuf.Value, embedded in the CBOR
// stream under the custom tags below.
//
//	| Tag   | Content                              |
//	|-------|--------------------------------------|
//	| 60001 | protobuf bytes of google.protobuf.Struct |
//	| 60002 | protobuf bytes of google.protobuf.Value  |
//
// DecodeStruct, EncodeStruct, DecodeValue and EncodeValue convert those
// payloads to and from native Go values. They are total: absent input
// decodes to an empty map or nil, and values with no protobuf
// representation encode to null.
//
// Oneof groups (block content, event payloads) are modeled as sibling
// pointer fields of which at most one is set, with a ...Case method
// reporting which.
package wire

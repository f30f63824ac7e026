package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// The service descriptor in proto.go exchanges the plain message structs
// defined in handler.go, so the wire format is JSON rather than protobuf.
// Callers select it with the "json" content-subtype.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}

package client

import (
	json "github.com/goccy/go-json"
)

// Codec carries plain Go structs over connect as JSON. Registering it under
// the name "json" replaces connect's protobuf-only JSON codec, on both the
// client and any handler built for tests.
type Codec struct{}

func (Codec) Name() string {
	return "json"
}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

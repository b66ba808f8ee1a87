package codec

import "encoding/json"

// JSON is the standard-library JSON codec.
//
// JSON handles typical item types (numbers, strings, structs, slices, maps);
// items needing custom encoding can implement json.Marshaler, or callers can
// supply their own Codec where one is accepted.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

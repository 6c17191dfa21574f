package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"winequality/pkg/features"
)

// FromJSON converts a JSON object of feature values into raw input. Strings
// and numbers are kept as text, null means missing, and any other JSON value
// is passed through verbatim so validation rejects it in schema order.
func FromJSON(in map[string]json.RawMessage) features.RawInput {
	raw := make(features.RawInput, len(in))
	for name, msg := range in {
		msg = bytes.TrimSpace(msg)
		switch {
		case len(msg) == 0 || string(msg) == "null":
			raw[name] = ""
		case msg[0] == '"':
			var s string
			if err := json.Unmarshal(msg, &s); err != nil {
				s = string(msg)
			}
			raw[name] = s
		default:
			raw[name] = string(msg)
		}
	}
	return raw
}

// ReadJSON decodes a single JSON object of feature values.
func ReadJSON(r io.Reader) (features.RawInput, error) {
	var obj map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	return FromJSON(obj), nil
}

// Package jsonutil provides shared helpers for decoding service responses.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EnvelopeKey is the field some endpoints wrap their payload in ({"data": [...]}).
const EnvelopeKey = "data"

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeArray decodes a JSON array of T. The array may be bare or wrapped in an
// object under EnvelopeKey. Empty input, null, and [] all yield an empty slice.
func DecodeArray[T any](data []byte, context string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := UnmarshalWithContext(trimmed, &envelope, context); err != nil {
			return nil, err
		}
		inner, ok := envelope[EnvelopeKey]
		if !ok {
			return nil, fmt.Errorf("%s: object has no %q field", context, EnvelopeKey)
		}
		return DecodeArray[T](inner, context)
	}

	var entries []T
	if err := UnmarshalWithContext(trimmed, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

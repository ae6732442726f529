package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyBody        = errors.New("empty body")
	ErrNotObjectOrArray = errors.New("top-level JSON value must be an object or an array")
	ErrTrailingData     = errors.New("unexpected data after top-level JSON value")
)

// Decode parses a request payload in strict mode: only an object or an
// array is accepted at the top level, and nothing may follow it.
func Decode(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrEmptyBody
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, ErrNotObjectOrArray
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.InputOffset() != int64(len(trimmed)) {
		return nil, ErrTrailingData
	}

	return payload, nil
}

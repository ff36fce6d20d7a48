package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrAbsent is the decode error for a missing or empty nested field.
var ErrAbsent = errors.New("value absent")

// Result is the outcome of decoding a nested field. Callers pick their
// fallback explicitly with OrDefault instead of swallowing the error.
type Result[T any] struct {
	Value T
	Err   error
}

// OrDefault returns the decoded value, or fallback if decoding failed.
func (r Result[T]) OrDefault(fallback T) T {
	if r.Err != nil {
		return fallback
	}
	return r.Value
}

// Malformed reports whether a value was present but could not be decoded.
func (r Result[T]) Malformed() bool {
	return r.Err != nil && !errors.Is(r.Err, ErrAbsent)
}

// Decode converts raw into T. raw may be JSON text, raw JSON bytes, or a
// value that was already decoded (map, slice, struct), which is re-encoded
// and decoded again so both shapes go through the same mapping.
func Decode[T any](raw any) Result[T] {
	var data []byte
	switch v := raw.(type) {
	case nil:
		return Result[T]{Err: ErrAbsent}
	case string:
		data = []byte(strings.TrimSpace(v))
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return Result[T]{Err: fmt.Errorf("re-encode: %w", err)}
		}
		data = b
	}
	if len(data) == 0 || string(data) == "null" {
		return Result[T]{Err: ErrAbsent}
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return Result[T]{Err: err}
	}
	return Result[T]{Value: out}
}

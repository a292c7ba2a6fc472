package types

import (
	"encoding/json"
)

// Optional is a JSON field that distinguishes between a key that was omitted
// from the payload, a key that was explicitly null, and a key with a value.
// Only omitted fields are skipped by partial updates.
type Optional[T any] struct {
	value T
	set   bool
	valid bool
}

// UnmarshalJSON implements the json.Unmarshaler interface. It only runs when
// the key is present in the payload, so an untouched Optional reports unset.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	o.valid = true
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// IsSet reports whether the key appeared in the payload at all.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsNull reports whether the key appeared with an explicit null value.
func (o Optional[T]) IsNull() bool {
	return o.set && !o.valid
}

// Get returns the value; only meaningful when IsSet and not IsNull.
func (o Optional[T]) Get() T {
	return o.value
}

// NewOptional wraps a concrete value, mainly for building test payloads.
func NewOptional[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true, valid: true}
}

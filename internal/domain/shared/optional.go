package shared

import (
	"bytes"
	"encoding/json"
)

// Optional wraps a value that may be absent from a request payload.
// It distinguishes three states: field omitted, explicit JSON null, and
// a concrete value. Update paths treat omitted and null differently, so
// a plain pointer is not enough.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns an Optional holding the given value
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an Optional for an omitted field
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// NullValue returns an Optional for an explicit JSON null
func NullValue[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// IsPresent reports whether the field appeared in the payload at all
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsNull reports whether the field was an explicit null
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// HasValue reports whether the field carried a concrete value
func (o Optional[T]) HasValue() bool {
	return o.present && !o.null
}

// Value returns the wrapped value and whether one is held
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.HasValue()
}

// ValueOr returns the wrapped value, or def when absent or null
func (o Optional[T]) ValueOr(def T) T {
	if o.HasValue() {
		return o.value
	}
	return def
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// field is present in the payload, which is what makes presence tracking work.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if bytes.Equal(data, []byte("null")) {
		o.null = true
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON implements json.Marshaler
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

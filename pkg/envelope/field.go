package envelope

import (
	"encoding/json"
	"fmt"
)

// FieldSpec describes one declared field of a schema.
type FieldSpec interface {
	Name() string
	IsRequired() bool
	check(e *Envelope) error
}

// Field is a typed view over one key of an envelope.
type Field[T any] struct {
	name     string
	required bool
}

// Required declares a field that must hold a non-null value.
func Required[T any](name string) Field[T] {
	return Field[T]{name: name, required: true}
}

// Optional declares a field that may be absent or null.
func Optional[T any](name string) Field[T] {
	return Field[T]{name: name}
}

// Name returns the wire name.
func (f Field[T]) Name() string { return f.name }

// IsRequired reports whether validation demands a non-null value.
func (f Field[T]) IsRequired() bool { return f.required }

// Set stores value under the field's wire name. Values that encode to null
// (nil slices, maps and pointers) are recorded as explicit nulls.
//
// Set panics if value cannot be encoded as JSON.
func (f Field[T]) Set(e *Envelope, value T) {
	if err := e.Set(f.name, value); err != nil {
		panic(fmt.Sprintf("envelope: %v", err))
	}
}

// SetNull records an explicit null for the field.
func (f Field[T]) SetNull(e *Envelope) {
	e.SetNull(f.name)
}

// State reports the field's presence.
func (f Field[T]) State(e *Envelope) Presence {
	return e.State(f.name)
}

// Get decodes the field. ok is false when the field is absent, null or not
// decodable as T.
func (f Field[T]) Get(e *Envelope) (value T, ok bool) {
	v, state, err := f.Lookup(e)
	if err != nil || state != Present {
		var zero T
		return zero, false
	}
	return v, true
}

// Lookup decodes the field and reports its presence. The error is non-nil
// only when a stored value does not decode as T.
func (f Field[T]) Lookup(e *Envelope) (T, Presence, error) {
	var v T
	raw, state := e.raw(f.name)
	if state != Present {
		return v, state, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, state, err
	}
	return v, Present, nil
}

func (f Field[T]) check(e *Envelope) error {
	_, _, err := f.Lookup(e)
	return err
}

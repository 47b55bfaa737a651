// Package envelope implements the field store behind every API model.
//
// An Envelope keeps the raw JSON value of each field under its wire name and
// remembers every key that was ever set, so a field that was never set, a
// field explicitly set to null and a field holding a value stay three
// distinct states through a serialize/deserialize round trip.
//
// Typed access goes through Field descriptors grouped into a Schema:
//
//	var (
//		sessionID   = envelope.Required[string]("session_id")
//		checkoutURL = envelope.Optional[string]("checkout_url")
//		schema      = envelope.NewSchema("CheckoutSessionResponse", sessionID, checkoutURL)
//	)
//
//	var e envelope.Envelope
//	sessionID.Set(&e, "cks_123")
//	checkoutURL.SetNull(&e)
//	err := schema.Validate(&e)
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Presence reports how a field exists in an envelope.
type Presence int

const (
	// Absent means the field was never set.
	Absent Presence = iota
	// Null means the field was explicitly set to null.
	Null
	// Present means the field holds a non-null value.
	Present
)

func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case Null:
		return "null"
	case Present:
		return "present"
	}
	return fmt.Sprintf("Presence(%d)", int(p))
}

var nullLiteral = []byte("null")

// Envelope is an insertion-ordered store of raw JSON values keyed by wire
// field name. The zero value is an empty envelope ready to use.
//
// Copying an Envelope value shares its store; use Clone for an independent copy.
type Envelope struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// New returns an empty envelope.
func New() *Envelope {
	return &Envelope{}
}

func (e *Envelope) store() *orderedmap.OrderedMap[string, json.RawMessage] {
	if e.fields == nil {
		e.fields = orderedmap.New[string, json.RawMessage]()
	}
	return e.fields
}

// Set encodes value as JSON and stores it under name, replacing any previous
// value. A nil value (or anything that encodes to null) records an explicit null.
func (e *Envelope) Set(name string, value any) error {
	if value == nil {
		e.SetNull(name)
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode field %q: %w", name, err)
	}
	e.store().Set(name, raw)
	return nil
}

// SetNull records an explicit null under name.
func (e *Envelope) SetNull(name string) {
	e.store().Set(name, bytes.Clone(nullLiteral))
}

// Delete removes name from the envelope and reports whether it was there.
func (e *Envelope) Delete(name string) bool {
	if e == nil || e.fields == nil {
		return false
	}
	_, ok := e.fields.Delete(name)
	return ok
}

// Get returns a copy of the raw value stored under name together with its
// presence. Absent fields return a nil value.
func (e *Envelope) Get(name string) (json.RawMessage, Presence) {
	raw, state := e.raw(name)
	if state == Absent {
		return nil, Absent
	}
	return bytes.Clone(raw), state
}

func (e *Envelope) raw(name string) (json.RawMessage, Presence) {
	if e == nil || e.fields == nil {
		return nil, Absent
	}
	raw, ok := e.fields.Get(name)
	if !ok {
		return nil, Absent
	}
	if bytes.Equal(raw, nullLiteral) {
		return raw, Null
	}
	return raw, Present
}

// State reports the presence of name.
func (e *Envelope) State(name string) Presence {
	_, state := e.raw(name)
	return state
}

// Has reports whether name was set, to a value or to null.
func (e *Envelope) Has(name string) bool {
	return e.State(name) != Absent
}

// IsNull reports whether name was explicitly set to null.
func (e *Envelope) IsNull(name string) bool {
	return e.State(name) == Null
}

// Keys returns the stored field names in insertion order.
func (e *Envelope) Keys() []string {
	if e == nil || e.fields == nil {
		return nil
	}
	keys := make([]string, 0, e.fields.Len())
	for pair := e.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of stored fields, explicit nulls included.
func (e *Envelope) Len() int {
	if e == nil || e.fields == nil {
		return 0
	}
	return e.fields.Len()
}

// Clone returns a deep copy of e. Mutating either envelope afterwards does
// not affect the other.
func (e *Envelope) Clone() *Envelope {
	c := &Envelope{}
	if e == nil || e.fields == nil {
		return c
	}
	fields := c.store()
	for pair := e.fields.Oldest(); pair != nil; pair = pair.Next() {
		fields.Set(pair.Key, bytes.Clone(pair.Value))
	}
	return c
}

// Equal reports whether e and other hold the same keys with structurally
// equal values. Key order is ignored.
func (e *Envelope) Equal(other *Envelope) bool {
	if e.Len() != other.Len() {
		return false
	}
	if e.Len() == 0 {
		return true
	}
	for pair := e.fields.Oldest(); pair != nil; pair = pair.Next() {
		theirs, ok := other.fields.Get(pair.Key)
		if !ok || !RawEqual(pair.Value, theirs) {
			return false
		}
	}
	return true
}

// Lookup evaluates a gjson path (for example "product_cart.0.product_id")
// against the serialized envelope.
func (e *Envelope) Lookup(path string) gjson.Result {
	if e == nil {
		return gjson.Result{}
	}
	data, err := e.MarshalJSON()
	if err != nil {
		return gjson.Result{}
	}
	return gjson.GetBytes(data, path)
}

// MarshalJSON writes exactly the stored keys, in insertion order. Fields that
// were never set are omitted and explicit nulls are written as null.
func (e Envelope) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if e.fields != nil {
		first := true
		for pair := e.fields.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			key, err := json.Marshal(pair.Key)
			if err != nil {
				return nil, fmt.Errorf("encode key %q: %w", pair.Key, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(pair.Value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the store with exactly the keys of the document, in
// document order. Keys unknown to any model are kept. A JSON null document
// leaves the envelope untouched.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return fmt.Errorf("%w: expected object, got %s", ErrMalformed, describe(doc))
	}

	fields := orderedmap.New[string, json.RawMessage]()
	doc.ForEach(func(key, value gjson.Result) bool {
		var compact bytes.Buffer
		if err := json.Compact(&compact, []byte(value.Raw)); err != nil {
			compact.Reset()
			compact.WriteString(value.Raw)
		}
		fields.Set(key.String(), compact.Bytes())
		return true
	})
	e.fields = fields
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), nullLiteral)
}

func describe(r gjson.Result) string {
	if r.IsArray() {
		return "array"
	}
	switch r.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Null:
		return "null"
	}
	return r.Type.String()
}

package envelope

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is returned when required fields are missing or null.
	ErrValidation = errors.New("validation failed")
	// ErrMalformed is returned when a document is not a JSON object or a
	// field cannot be decoded into its declared type.
	ErrMalformed = errors.New("malformed document")
)

// ValidationError lists every required field that is absent or null.
// Nested fields are reported as dotted paths, e.g. "product_cart[0].product_id".
type ValidationError struct {
	Model   string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Model, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Nest folds the missing fields of a nested validation failure into e,
// prefixed with path. Errors that are not validation failures are ignored.
func (e *ValidationError) Nest(path string, err error) {
	var nested *ValidationError
	if !errors.As(err, &nested) {
		return
	}
	for _, name := range nested.Missing {
		e.Missing = append(e.Missing, path+"."+name)
	}
}

// Err returns e as an error, or nil when nothing is missing.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Missing) == 0 {
		return nil
	}
	return e
}

// DecodeError reports a field whose stored value does not decode into the
// type the model declares for it.
type DecodeError struct {
	Model string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: field %q: %v", e.Model, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}

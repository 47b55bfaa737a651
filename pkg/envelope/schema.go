package envelope

import "fmt"

// Schema is the set of fields a model declares.
type Schema struct {
	name     string
	fields   []FieldSpec
	declared map[string]struct{}
}

// NewSchema declares a model schema. Field order is the order validation
// reports missing fields in.
func NewSchema(name string, fields ...FieldSpec) *Schema {
	declared := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		declared[f.Name()] = struct{}{}
	}
	return &Schema{name: name, fields: fields, declared: declared}
}

// Name returns the model name used in errors.
func (s *Schema) Name() string { return s.name }

// Fields returns the declared wire names.
func (s *Schema) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name())
	}
	return names
}

// Required returns the wire names of required fields.
func (s *Schema) Required() []string {
	var names []string
	for _, f := range s.fields {
		if f.IsRequired() {
			names = append(names, f.Name())
		}
	}
	return names
}

// Report returns a validation report for e listing every required field that
// is absent or null. Callers may extend it with Nest before calling Err.
func (s *Schema) Report(e *Envelope) *ValidationError {
	report := &ValidationError{Model: s.name}
	for _, f := range s.fields {
		if f.IsRequired() && e.State(f.Name()) != Present {
			report.Missing = append(report.Missing, f.Name())
		}
	}
	return report
}

// Validate checks presence of required fields only; values are not inspected.
func (s *Schema) Validate(e *Envelope) error {
	return s.Report(e).Err()
}

// Decode parses data into e and checks that every declared field decodes into
// its declared type. Undeclared keys are kept as-is. On error e is unchanged.
func (s *Schema) Decode(data []byte, e *Envelope) error {
	if isNull(data) {
		return nil
	}
	var decoded Envelope
	if err := decoded.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decode %s: %w", s.name, err)
	}
	for _, f := range s.fields {
		if err := f.check(&decoded); err != nil {
			return &DecodeError{Model: s.name, Field: f.Name(), Err: err}
		}
	}
	*e = decoded
	return nil
}

// Unknown returns the keys of e the schema does not declare, in insertion order.
func (s *Schema) Unknown(e *Envelope) []string {
	var unknown []string
	for _, key := range e.Keys() {
		if _, ok := s.declared[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

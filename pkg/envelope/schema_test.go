package envelope_test

import (
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/dodopayments-go/pkg/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	idField        = envelope.Required[string]("id")
	quantityField  = envelope.Required[int]("quantity")
	createdAtField = envelope.Required[time.Time]("created_at")
	noteField      = envelope.Optional[string]("note")
	tagsField      = envelope.Optional[[]string]("tags")

	testSchema = envelope.NewSchema("LineItem", idField, quantityField, createdAtField, noteField, tagsField)
)

func TestField_Accessors(t *testing.T) {
	var e envelope.Envelope

	_, ok := noteField.Get(&e)
	assert.False(t, ok)
	assert.Equal(t, envelope.Absent, noteField.State(&e))

	noteField.SetNull(&e)
	_, ok = noteField.Get(&e)
	assert.False(t, ok, "explicit null reads as not ok")
	assert.Equal(t, envelope.Null, noteField.State(&e))

	noteField.Set(&e, "fragile")
	note, ok := noteField.Get(&e)
	require.True(t, ok)
	assert.Equal(t, "fragile", note)

	tagsField.Set(&e, []string{"a", "b"})
	tags, ok := tagsField.Get(&e)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, tags)

	tags[0] = "mutated"
	again, _ := tagsField.Get(&e)
	assert.Equal(t, []string{"a", "b"}, again, "getters never alias the store")
}

func TestField_LookupTypeMismatch(t *testing.T) {
	var e envelope.Envelope
	require.NoError(t, e.Set("quantity", "three"))

	_, state, err := quantityField.Lookup(&e)
	assert.Equal(t, envelope.Present, state)
	require.Error(t, err)

	v, ok := quantityField.Get(&e)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestField_Metadata(t *testing.T) {
	assert.Equal(t, "id", idField.Name())
	assert.True(t, idField.IsRequired())
	assert.False(t, noteField.IsRequired())
}

func TestSchema_Validate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		build   func(e *envelope.Envelope)
		missing []string
	}{
		{
			name: "all required set",
			build: func(e *envelope.Envelope) {
				idField.Set(e, "li_1")
				quantityField.Set(e, 0)
				createdAtField.Set(e, now)
			},
		},
		{
			name: "optional null is fine",
			build: func(e *envelope.Envelope) {
				idField.Set(e, "li_1")
				quantityField.Set(e, 1)
				createdAtField.Set(e, now)
				noteField.SetNull(e)
				tagsField.SetNull(e)
			},
		},
		{
			name:    "everything missing",
			build:   func(e *envelope.Envelope) {},
			missing: []string{"id", "quantity", "created_at"},
		},
		{
			name: "explicit null counts as missing",
			build: func(e *envelope.Envelope) {
				idField.SetNull(e)
				quantityField.Set(e, 2)
				createdAtField.Set(e, now)
			},
			missing: []string{"id"},
		},
		{
			name: "value shape not checked",
			build: func(e *envelope.Envelope) {
				_ = e.Set("id", 12)
				_ = e.Set("quantity", "many")
				_ = e.Set("created_at", "yesterday")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e envelope.Envelope
			tt.build(&e)
			err := testSchema.Validate(&e)
			if len(tt.missing) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, envelope.ErrValidation))

			var verr *envelope.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "LineItem", verr.Model)
			assert.Equal(t, tt.missing, verr.Missing)
		})
	}
}

func TestSchema_ValidationMessage(t *testing.T) {
	err := testSchema.Validate(envelope.New())
	require.Error(t, err)
	assert.Equal(t, "LineItem: missing required fields: id, quantity, created_at", err.Error())
}

func TestValidationError_Nest(t *testing.T) {
	report := testSchema.Report(envelope.New())
	report.Nest("addons[0]", &envelope.ValidationError{Model: "Addon", Missing: []string{"addon_id"}})
	report.Nest("ignored", errors.New("not a validation error"))
	report.Nest("nil", nil)

	assert.Equal(t, []string{"id", "quantity", "created_at", "addons[0].addon_id"}, report.Missing)

	var empty *envelope.ValidationError
	assert.NoError(t, empty.Err())
	assert.NoError(t, (&envelope.ValidationError{Model: "X"}).Err())
}

func TestSchema_Decode(t *testing.T) {
	t.Run("valid document keeps unknown keys", func(t *testing.T) {
		var e envelope.Envelope
		err := testSchema.Decode([]byte(`{"id":"li_1","quantity":3,"created_at":"2024-05-01T12:00:00Z","extra":{"a":1}}`), &e)
		require.NoError(t, err)

		qty, ok := quantityField.Get(&e)
		require.True(t, ok)
		assert.Equal(t, 3, qty)

		created, ok := createdAtField.Get(&e)
		require.True(t, ok)
		assert.True(t, created.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

		assert.Equal(t, []string{"extra"}, testSchema.Unknown(&e))
	})

	t.Run("missing required fields decode fine", func(t *testing.T) {
		var e envelope.Envelope
		require.NoError(t, testSchema.Decode([]byte(`{"note":null}`), &e))
		assert.Error(t, testSchema.Validate(&e))
	})

	t.Run("type mismatch", func(t *testing.T) {
		var e envelope.Envelope
		require.NoError(t, e.Set("kept", true))

		err := testSchema.Decode([]byte(`{"id":"li_1","quantity":"three"}`), &e)
		require.Error(t, err)
		assert.True(t, errors.Is(err, envelope.ErrMalformed))

		var derr *envelope.DecodeError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "LineItem", derr.Model)
		assert.Equal(t, "quantity", derr.Field)
		assert.Equal(t, []string{"kept"}, e.Keys(), "failed decode leaves target untouched")
	})

	t.Run("null value skips type check", func(t *testing.T) {
		var e envelope.Envelope
		require.NoError(t, testSchema.Decode([]byte(`{"quantity":null}`), &e))
		assert.Equal(t, envelope.Null, quantityField.State(&e))
	})

	t.Run("not an object", func(t *testing.T) {
		var e envelope.Envelope
		err := testSchema.Decode([]byte(`[]`), &e)
		require.Error(t, err)
		assert.True(t, errors.Is(err, envelope.ErrMalformed))
		assert.Contains(t, err.Error(), "decode LineItem")
	})
}

func TestSchema_Describe(t *testing.T) {
	assert.Equal(t, "LineItem", testSchema.Name())
	assert.Equal(t, []string{"id", "quantity", "created_at", "note", "tags"}, testSchema.Fields())
	assert.Equal(t, []string{"id", "quantity", "created_at"}, testSchema.Required())
}

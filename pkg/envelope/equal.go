package envelope

import (
	"bytes"
	"encoding/json"
	"math/big"

	"github.com/google/go-cmp/cmp"
)

// numbersEqual compares JSON numbers by exact value, so 0, 0.0 and 0e0 match.
var numbersEqual = cmp.Comparer(func(x, y json.Number) bool {
	if x == y {
		return true
	}
	rx, ok := new(big.Rat).SetString(string(x))
	if !ok {
		return false
	}
	ry, ok := new(big.Rat).SetString(string(y))
	if !ok {
		return false
	}
	return rx.Cmp(ry) == 0
})

// RawEqual reports whether two raw JSON values are structurally equal:
// objects compare without regard to key order and numbers by value.
func RawEqual(a, b json.RawMessage) bool {
	if bytes.Equal(a, b) {
		return true
	}
	va, err := decodeValue(a)
	if err != nil {
		return false
	}
	vb, err := decodeValue(b)
	if err != nil {
		return false
	}
	return cmp.Equal(va, vb, numbersEqual)
}

func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

//nolint:ireturn
package tuple

import (
	"encoding/json"
	"fmt"
)

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values. Typed maps use it
// for their entries.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// Values returns both halves, for destructuring.
func (t Tuple2[A, B]) Values() (A, B) { //nolint:ireturn
	return t.first, t.second
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.first, t.second)
}

// MarshalJSON encodes the pair as a two-element array.
func (t Tuple2[A, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{t.first, t.second})
}

// UnmarshalJSON decodes a two-element array.
func (t *Tuple2[A, B]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) != 2 { //nolint:mnd
		return fmt.Errorf("tuple: expected 2 elements, got %d", len(raw)) //nolint:err113
	}

	if err := json.Unmarshal(raw[0], &t.first); err != nil {
		return err
	}

	return json.Unmarshal(raw[1], &t.second)
}

// MarshalYAML encodes the pair as a two-element sequence.
func (t Tuple2[A, B]) MarshalYAML() (any, error) {
	return []any{t.first, t.second}, nil
}

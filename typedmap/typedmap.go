// Package typedmap provides Map, an immutable insertion-ordered map whose
// keys and values are all accepted by the guards it was built with. The two
// guards are the brand. Construction and Set validate what they insert and
// fail with an error wrapping errors.ErrWrongType; Has and Delete refuse keys
// the key guard rejects, while Get treats such keys as a plain miss. Keys
// that aren't equal to themselves (a float NaN) are refused everywhere a key
// is checked, since a Go map can never look them up.
//
// Iteration follows insertion order. Overwriting a key keeps its position.
package typedmap

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/amp-labs/amp-collections/compare"
	collerrors "github.com/amp-labs/amp-collections/errors"
	"github.com/amp-labs/amp-collections/guard"
	"github.com/amp-labs/amp-collections/logger"
	"github.com/amp-labs/amp-collections/optional"
	"github.com/amp-labs/amp-collections/sequence"
	"github.com/amp-labs/amp-collections/tuple"
	"github.com/amp-labs/amp-collections/validate"
	"gopkg.in/yaml.v3"
)

// Map is an immutable insertion-ordered map branded by a key guard and a
// value guard. The zero value is empty and unbranded: Is rejects it and Set
// on it fails.
type Map[K comparable, V any] struct {
	entries    store[K, V]
	keyGuard   guard.Guard[K]
	valueGuard guard.Guard[V]
}

var (
	_ validate.HasValidateWithContext = Map[string, int]{}
	_ json.Marshaler                  = Map[string, int]{}
	_ yaml.Marshaler                  = Map[string, int]{}
)

// Make validates every entry and returns the map, or an error listing every
// rejected key and value. A key given twice keeps its first position and its
// last value.
func Make[K comparable, V any](
	keyGuard guard.Guard[K],
	valueGuard guard.Guard[V],
	entries ...tuple.Tuple2[K, V],
) (Map[K, V], error) {
	return build(opMake, keyGuard, valueGuard, entries)
}

func build[K comparable, V any](
	op string,
	keyGuard guard.Guard[K],
	valueGuard guard.Guard[V],
	entries []tuple.Tuple2[K, V],
) (Map[K, V], error) {
	var errs collerrors.Collection

	for i, e := range entries {
		checkEntry(&errs, keyGuard, valueGuard, op, i, e.First(), e.Second())
	}

	if errs.HasError() {
		return Map[K, V]{}, errs.GetError()
	}

	m := Map[K, V]{
		entries:    newStore[K, V](len(entries)),
		keyGuard:   keyGuard,
		valueGuard: valueGuard,
	}

	for _, e := range entries {
		m.entries.set(e.First(), e.Second())
	}

	return m, nil
}

// MustMake is like Make but panics on a rejected entry.
func MustMake[K comparable, V any](
	keyGuard guard.Guard[K],
	valueGuard guard.Guard[V],
	entries ...tuple.Tuple2[K, V],
) Map[K, V] {
	m, err := Make(keyGuard, valueGuard, entries...)
	if err != nil {
		panic(err)
	}

	return m
}

// Of builds a map from untyped pairs: every key must be accepted by
// keyGuard and narrow to a K, and likewise for values.
func Of[K comparable, V any](
	keyGuard guard.Guard[K],
	valueGuard guard.Guard[V],
	entries ...tuple.Tuple2[any, any],
) (Map[K, V], error) {
	var errs collerrors.Collection

	typed := make([]tuple.Tuple2[K, V], 0, len(entries))

	for i, e := range entries {
		k, keyOK := guard.Cast(keyGuard, e.First())
		if !keyOK {
			errs.Add(rejection(keyGuard, opOf, partKey, i, e.First(), reflect.TypeFor[K]()))
		}

		v, valueOK := guard.Cast(valueGuard, e.Second())
		if !valueOK {
			errs.Add(rejection(valueGuard, opOf, partValue, i, e.Second(), reflect.TypeFor[V]()))
		}

		if keyOK && valueOK {
			typed = append(typed, tuple.NewTuple2(k, v))
		}
	}

	if errs.HasError() {
		return Map[K, V]{}, errs.GetError()
	}

	return build(opOf, keyGuard, valueGuard, typed)
}

// FromMap builds a typed map from a Go map. Go maps are unordered, so keys
// are inserted in natural order of their fmt representation ("k2" before
// "k10") to keep the result deterministic.
func FromMap[K comparable, V any](keyGuard guard.Guard[K], valueGuard guard.Guard[V], m map[K]V) (Map[K, V], error) {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, compare.By(func(k K) string { return fmt.Sprint(k) }, compare.Natural()).Cmp)

	entries := make([]tuple.Tuple2[K, V], 0, len(keys))
	for _, k := range keys {
		entries = append(entries, tuple.NewTuple2(k, m[k]))
	}

	return build(opFromMap, keyGuard, valueGuard, entries)
}

// KeyGuard returns the guard every key satisfies.
func (m Map[K, V]) KeyGuard() guard.Guard[K] { //nolint:ireturn
	return m.keyGuard
}

// ValueGuard returns the guard every value satisfies.
func (m Map[K, V]) ValueGuard() guard.Guard[V] { //nolint:ireturn
	return m.valueGuard
}

// Set returns a new map with key bound to value. Only the new entry is
// validated. An existing key keeps its position.
func (m Map[K, V]) Set(key K, value V) (Map[K, V], error) {
	var errs collerrors.Collection

	checkEntry(&errs, m.keyGuard, m.valueGuard, opSet, m.entries.size(), key, value)

	if errs.HasError() {
		return Map[K, V]{}, errs.GetError()
	}

	out := m.derive(m.entries.clone())
	out.entries.set(key, value)

	return out, nil
}

// Delete returns a new map without key. Deleting an absent key is not an
// error, but a key the key guard rejects is.
func (m Map[K, V]) Delete(key K) (Map[K, V], error) {
	if err := m.checkKey(opDelete, key); err != nil {
		return Map[K, V]{}, err
	}

	if !m.entries.has(key) {
		return m, nil
	}

	out := m.derive(m.entries.clone())
	out.entries.remove(key)

	return out, nil
}

// Has reports whether key is present. A key the key guard rejects is an
// error rather than a miss.
func (m Map[K, V]) Has(key K) (bool, error) {
	if err := m.checkKey(opHas, key); err != nil {
		return false, err
	}

	return m.entries.has(key), nil
}

// Get returns the value bound to key, or None. It never fails.
func (m Map[K, V]) Get(key K) optional.Value[V] {
	v, ok := m.entries.get(key)

	return optional.FromPair(v, ok)
}

// Size returns the number of entries.
func (m Map[K, V]) Size() int {
	return m.entries.size()
}

func (m Map[K, V]) Empty() bool {
	return m.entries.size() == 0
}

// Keys returns the keys in insertion order.
func (m Map[K, V]) Keys() sequence.Sequence[K] {
	return sequence.Make(m.entries.keys...)
}

// Values returns the values in key insertion order.
func (m Map[K, V]) Values() sequence.Sequence[V] {
	return sequence.Collect[V](m)
}

// Entries returns the key/value pairs in insertion order. Passing them back
// to Make with the same guards reproduces m.
func (m Map[K, V]) Entries() []tuple.Tuple2[K, V] {
	out := make([]tuple.Tuple2[K, V], 0, m.entries.size())
	for k, v := range m.entries.seq() {
		out = append(out, tuple.NewTuple2(k, v))
	}

	return out
}

// All yields the values only, in key insertion order. Use Seq for pairs.
func (m Map[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.entries.seq() {
			if !yield(v) {
				return
			}
		}
	}
}

// Seq yields key/value pairs in insertion order.
func (m Map[K, V]) Seq() iter.Seq2[K, V] {
	return m.entries.seq()
}

// Filter keeps the entries satisfying predicate. Nothing new enters the map,
// so nothing is re-validated.
func (m Map[K, V]) Filter(predicate func(K, V) bool) Map[K, V] {
	out := m.derive(newStore[K, V](m.entries.size()))

	for k, v := range m.entries.seq() {
		if predicate(k, v) {
			out.entries.set(k, v)
		}
	}

	return out
}

// ToMap copies the entries into a Go map.
func (m Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.entries.size())
	for k, v := range m.entries.seq() {
		out[k] = v
	}

	return out
}

// ToJSON returns the entries as pairs, each encoding to a two-element array.
func (m Map[K, V]) ToJSON() []tuple.Tuple2[K, V] {
	return m.Entries()
}

// MarshalJSON encodes the map as an array of [key, value] arrays, which
// keeps insertion order and allows non-string keys.
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToJSON())
}

// MarshalYAML encodes the map as a sequence of [key, value] pairs.
func (m Map[K, V]) MarshalYAML() (any, error) {
	return m.ToJSON(), nil
}

func (m Map[K, V]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	first := true

	for k, v := range m.entries.seq() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&sb, "%v: %v", k, v)
	}

	sb.WriteByte('}')

	return sb.String()
}

// Validate re-checks every key and value against the guards, logging each
// violation. All violations are reported unless ctx asks to fail fast (see
// validate.WithFailFast). An unbranded map always fails.
func (m Map[K, V]) Validate(ctx context.Context) error {
	if m.keyGuard == nil || m.valueGuard == nil {
		return fmt.Errorf("%w: map carries no guards", collerrors.ErrWrongType)
	}

	log := logger.Get(ctx)
	failFast := validate.FailFast(ctx)

	var errs collerrors.Collection

	i := 0

	for k, v := range m.entries.seq() {
		var entryErrs collerrors.Collection

		checkEntry(&entryErrs, m.keyGuard, m.valueGuard, opValidate, i, k, v)

		if err := entryErrs.GetError(); err != nil {
			log.WarnContext(ctx, "typed map holds a rejected entry", "error", err)
			errs.Add(err)

			if failFast {
				break
			}
		}

		i++
	}

	return errs.GetError()
}

func (m Map[K, V]) derive(entries store[K, V]) Map[K, V] {
	return Map[K, V]{entries: entries, keyGuard: m.keyGuard, valueGuard: m.valueGuard}
}

func (m Map[K, V]) checkKey(op string, key K) error {
	switch {
	case !guard.Is(m.keyGuard, key):
		return rejection(m.keyGuard, op, partKey, -1, key, reflect.TypeFor[K]())
	case !reflexive(key):
		return irreflexiveKey(op, -1, key)
	default:
		return nil
	}
}

func checkEntry[K comparable, V any](
	errs *collerrors.Collection,
	keyGuard guard.Guard[K],
	valueGuard guard.Guard[V],
	op string,
	index int,
	key K,
	value V,
) {
	switch {
	case !guard.Is(keyGuard, key):
		errs.Add(rejection(keyGuard, op, partKey, index, key, reflect.TypeFor[K]()))
	case !reflexive(key):
		errs.Add(irreflexiveKey(op, index, key))
	}

	if !guard.Is(valueGuard, value) {
		errs.Add(rejection(valueGuard, op, partValue, index, value, reflect.TypeFor[V]()))
	}
}

// reflexive is false for keys such as NaN that a Go map stores but can never
// find again.
func reflexive[K comparable](key K) bool {
	return key == key //nolint:gocritic,staticcheck
}

// rejection builds the error for a refused key or value. A negative index
// means the value wasn't part of an entry list.
func rejection(p guard.Predicate, op, part string, index int, value any, want reflect.Type) error {
	err := guard.Explain(p, value)
	if err == nil {
		err = fmt.Errorf("%w: %T is not a %s", collerrors.ErrWrongType, value, want)
	}

	return annotate(op, part, index, value, err)
}

func irreflexiveKey(op string, index int, key any) error {
	return annotate(op, partKey, index, key, fmt.Errorf("%w: %v is not equal to itself", collerrors.ErrWrongType, key))
}

func annotate(op, part string, index int, value any, err error) error {
	rejectionsTotal.WithLabelValues(op, part).Inc()

	args := []any{"operation", op, "part", part, "type", fmt.Sprintf("%T", value)}

	if index < 0 {
		return logger.AnnotateError(fmt.Errorf("%s: %w", part, err), args...)
	}

	args = append(args, "index", index)

	return logger.AnnotateError(fmt.Errorf("entry %d: %s: %w", index, part, err), args...)
}

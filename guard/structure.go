package guard

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	collerrors "github.com/amp-labs/amp-collections/errors"
)

// Shape describes an object type field by field. Each value is a Predicate, a
// bare func(any) bool, or a nested shape (any map with string keys).
type Shape map[string]any

// Structure is a compiled structural guard: an object shape, an array guard
// or a tuple guard. Besides accepting or rejecting values it can explain a
// rejection down to the offending field path.
type Structure struct {
	check checkFunc
}

var (
	_ Guard[any] = Structure{}
	_ Explainer  = Structure{}
)

// Guard implements Predicate. The zero Structure rejects everything.
func (s Structure) Guard(value any) bool {
	return s.check != nil && s.check(value) == nil
}

// Cast implements Guard. Accepted values are returned unchanged.
func (s Structure) Cast(value any) (any, bool) {
	return value, s.Guard(value)
}

// Explain returns nil if value is accepted, otherwise an error wrapping
// errors.ErrWrongType that names the first failing path.
func (s Structure) Explain(value any) error {
	if s.check == nil {
		return &mismatch{reason: "no guard"}
	}

	if err := s.check(value); err != nil {
		return err
	}

	return nil
}

// checkFunc returns nil on acceptance and a *mismatch otherwise.
type checkFunc func(value any) *mismatch

// mismatch records where and why a structural check failed.
type mismatch struct {
	path   []string
	reason string
}

func (m *mismatch) Error() string {
	if len(m.path) == 0 {
		return fmt.Sprintf("%s: %s", collerrors.ErrWrongType, m.reason)
	}

	return fmt.Sprintf("%s: at %s: %s", collerrors.ErrWrongType, m.Path(), m.reason)
}

func (m *mismatch) Unwrap() error {
	return collerrors.ErrWrongType
}

// Path renders the failing location as "a.b[2].c".
func (m *mismatch) Path() string {
	var sb strings.Builder

	for i, seg := range m.path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			sb.WriteByte('.')
		}

		sb.WriteString(seg)
	}

	return sb.String()
}

func (m *mismatch) under(segment string) *mismatch {
	return &mismatch{
		path:   append([]string{segment}, m.path...),
		reason: m.reason,
	}
}

type options struct {
	strict  bool
	tagName string
}

// Option configures shape compilation.
type Option func(*options)

// WithStrict makes the compiled guard reject objects carrying fields the
// shape doesn't declare. By default extra fields are ignored.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithTagName sets the struct tag consulted for field names (default "json").
func WithTagName(name string) Option {
	return func(o *options) {
		o.tagName = name
	}
}

// Of compiles a shape into a single guard over objects. The result accepts a
// value iff it is an object (a map with string keys, a struct, or a non-nil
// pointer to a struct) and every declared field exists and satisfies its
// guard, recursively for nested shapes. The empty shape accepts every object.
//
// Compilation fails with errors.ErrInvalidShape if shape isn't a map with
// string keys or a field descriptor isn't a guard, a predicate or a nested
// shape, and with errors.ErrCyclicShape if a shape contains itself.
func Of(shape any, opts ...Option) (Structure, error) {
	o := options{tagName: "json"}
	for _, opt := range opts {
		opt(&o)
	}

	check, err := compileShape(shape, &o, map[uintptr]struct{}{})
	if err != nil {
		return Structure{}, err
	}

	return Structure{check: check}, nil
}

// MustOf is like Of but panics if the shape can't be compiled.
func MustOf(shape any, opts ...Option) Structure {
	s, err := Of(shape, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

type compiledField struct {
	name  string
	check checkFunc
}

func compileShape(shape any, o *options, active map[uintptr]struct{}) (checkFunc, error) {
	rv := reflect.ValueOf(shape)
	if !isStringKeyedMap(rv) {
		return nil, fmt.Errorf("%w: expected a map with string keys, got %T", collerrors.ErrInvalidShape, shape)
	}

	// Only the current descent path is tracked, so a sub-shape shared by
	// two fields is fine while a shape reachable from itself is not.
	if ptr := rv.Pointer(); ptr != 0 {
		if _, seen := active[ptr]; seen {
			return nil, fmt.Errorf("%w: shape contains itself", collerrors.ErrCyclicShape)
		}

		active[ptr] = struct{}{}
		defer delete(active, ptr)
	}

	names := make([]string, 0, rv.Len())
	for _, key := range rv.MapKeys() {
		names = append(names, key.String())
	}

	slices.Sort(names)

	fields := make([]compiledField, 0, len(names))

	for _, name := range names {
		desc := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key())).Interface()

		check, err := compileField(desc, o, active)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}

		fields = append(fields, compiledField{name: name, check: check})
	}

	declared := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		declared[f.name] = struct{}{}
	}

	strict := o.strict
	tagName := o.tagName

	return func(value any) *mismatch {
		obj, ok := asObject(value, tagName)
		if !ok {
			return &mismatch{reason: fmt.Sprintf("expected an object, got %T", value)}
		}

		for _, f := range fields {
			fv, found := obj.lookup(f.name)
			if !found {
				return &mismatch{path: []string{f.name}, reason: "missing field"}
			}

			if m := f.check(fv); m != nil {
				return m.under(f.name)
			}
		}

		if strict {
			for _, name := range obj.names() {
				if _, ok := declared[name]; !ok {
					return &mismatch{path: []string{name}, reason: "undeclared field"}
				}
			}
		}

		return nil
	}, nil
}

func compileField(desc any, o *options, active map[uintptr]struct{}) (checkFunc, error) {
	switch d := desc.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil field descriptor", collerrors.ErrInvalidShape)
	case Structure:
		if d.check == nil {
			return nil, fmt.Errorf("%w: zero Structure", collerrors.ErrInvalidShape)
		}

		return d.check, nil
	case Predicate:
		return leaf(d.Guard), nil
	case func(any) bool:
		if d == nil {
			return nil, fmt.Errorf("%w: nil predicate", collerrors.ErrInvalidShape)
		}

		return leaf(d), nil
	default:
		if isStringKeyedMap(reflect.ValueOf(desc)) {
			return compileShape(desc, o, active)
		}

		return nil, fmt.Errorf("%w: unsupported field descriptor %T", collerrors.ErrInvalidShape, desc)
	}
}

func leaf(pred func(any) bool) checkFunc {
	return func(value any) *mismatch {
		if pred(value) {
			return nil
		}

		return &mismatch{reason: fmt.Sprintf("rejected value of type %T", value)}
	}
}

func checkerOf(p Predicate) checkFunc {
	if s, ok := p.(Structure); ok && s.check != nil {
		return s.check
	}

	return leaf(func(value any) bool { return Is(p, value) })
}

// ArrayOf accepts slices and arrays whose every element satisfies elem.
// Empty and typed-nil slices are accepted; untyped nil is not.
func ArrayOf(elem Predicate) Structure {
	check := checkerOf(elem)

	return Structure{check: func(value any) *mismatch {
		rv := reflect.ValueOf(value)
		if !isList(rv) {
			return &mismatch{reason: fmt.Sprintf("expected an array, got %T", value)}
		}

		for i := range rv.Len() {
			if m := check(rv.Index(i).Interface()); m != nil {
				return m.under(index(i))
			}
		}

		return nil
	}}
}

// Tuple accepts slices and arrays of exactly len(guards) elements where
// element i satisfies guards[i].
func Tuple(guards ...Predicate) Structure {
	checks := make([]checkFunc, len(guards))
	for i, g := range guards {
		checks[i] = checkerOf(g)
	}

	return Structure{check: func(value any) *mismatch {
		rv := reflect.ValueOf(value)
		if !isList(rv) {
			return &mismatch{reason: fmt.Sprintf("expected a tuple, got %T", value)}
		}

		if rv.Len() != len(checks) {
			return &mismatch{reason: fmt.Sprintf("expected %d elements, got %d", len(checks), rv.Len())}
		}

		for i, check := range checks {
			if m := check(rv.Index(i).Interface()); m != nil {
				return m.under(index(i))
			}
		}

		return nil
	}}
}

func index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func isList(rv reflect.Value) bool {
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

func isStringKeyedMap(rv reflect.Value) bool {
	return rv.IsValid() && rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

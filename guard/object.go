package guard

import (
	"reflect"
	"strings"
)

// object is the read-only view a shape guard needs of an object value.
type object interface {
	lookup(name string) (any, bool)
	names() []string
}

// asObject recognizes maps with string keys, structs and non-nil pointers to
// structs. Everything else, including nil, is not an object.
func asObject(value any, tagName string) (object, bool) {
	if m, ok := value.(map[string]any); ok {
		return plainMap(m), true
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return nil, false
	}

	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return nil, false
		}

		rv = rv.Elem()
	}

	switch {
	case isStringKeyedMap(rv):
		return reflectMap{rv: rv}, true
	case rv.Kind() == reflect.Struct:
		return structObject{rv: rv, tagName: tagName}, true
	default:
		return nil, false
	}
}

type plainMap map[string]any

func (m plainMap) lookup(name string) (any, bool) {
	v, ok := m[name]

	return v, ok
}

func (m plainMap) names() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

type reflectMap struct {
	rv reflect.Value
}

func (m reflectMap) lookup(name string) (any, bool) {
	v := m.rv.MapIndex(reflect.ValueOf(name).Convert(m.rv.Type().Key()))
	if !v.IsValid() {
		return nil, false
	}

	return v.Interface(), true
}

func (m reflectMap) names() []string {
	out := make([]string, 0, m.rv.Len())
	for _, k := range m.rv.MapKeys() {
		out = append(out, k.String())
	}

	return out
}

// structObject exposes exported fields under their tag name when tagged,
// and under their Go name otherwise, as encoding/json does. A tagged field
// isn't reachable by its Go name. Fields tagged "-" are hidden.
type structObject struct {
	rv      reflect.Value
	tagName string
}

func (s structObject) lookup(name string) (any, bool) {
	t := s.rv.Type()

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tagged, hidden := s.tagged(f)
		if hidden {
			continue
		}

		visible := f.Name
		if tagged != "" {
			visible = tagged
		}

		if visible == name {
			return s.rv.Field(i).Interface(), true
		}
	}

	return nil, false
}

func (s structObject) names() []string {
	t := s.rv.Type()
	out := make([]string, 0, t.NumField())

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tagged, hidden := s.tagged(f)

		switch {
		case hidden:
		case tagged != "":
			out = append(out, tagged)
		default:
			out = append(out, f.Name)
		}
	}

	return out
}

func (s structObject) tagged(f reflect.StructField) (string, bool) {
	if s.tagName == "" {
		return "", false
	}

	name, _, _ := strings.Cut(f.Tag.Get(s.tagName), ",")
	if name == "-" {
		return "", true
	}

	return name, false
}

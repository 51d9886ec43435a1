package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// table reads typed fields out of one decoded TOML table. It keeps the first
// failure, and every read after that returns nil.
type table struct {
	name   string
	fields map[string]any
	err    error
}

func newTable(name string, data any) (*table, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("'%s' must be table type", name)
	}

	return &table{name: name, fields: m}, nil
}

func (t *table) lookup(key string) (any, bool) {
	if t.err != nil {
		return nil, false
	}

	v, ok := t.fields[key]
	return v, ok
}

// field parses a scalar. A missing key yields nil.
func field[T any](t *table, key string, parse func(any) (T, error)) *T {
	raw, ok := t.lookup(key)
	if !ok {
		return nil
	}

	v, err := parse(raw)
	if err != nil {
		t.err = fmt.Errorf("field %q: %w", key, err)
		return nil
	}

	return &v
}

// list parses an array element by element. A missing key yields nil, an
// empty array yields an empty, non-nil slice.
func list[T any](t *table, key string, parse func(any) (T, error)) []T {
	raw, ok := t.lookup(key)
	if !ok {
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		t.err = fmt.Errorf("field %q: expected list, got %T", key, raw)
		return nil
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := parse(item)
		if err != nil {
			t.err = fmt.Errorf("field %q[%d]: %w", key, i, err)
			return nil
		}
		out = append(out, v)
	}

	return out
}

// section decodes a nested table through its own UnmarshalTOML.
func section[T any, PT interface {
	*T
	toml.Unmarshaler
}](t *table, key string) *T {
	raw, ok := t.lookup(key)
	if !ok {
		return nil
	}

	var v T
	if err := PT(&v).UnmarshalTOML(raw); err != nil {
		t.err = fmt.Errorf("section [%s]: %w", key, err)
		return nil
	}

	return &v
}

package calendar

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"
	"iter"
	"log/slog"
	"slices"
)

// Fields is an ordered mapping of attribute names to values. Values should be primitives (strings, booleans, integers,
// floats), string slices, or nested *Fields so Home Assistant can serialize them for display and automations. It
// implements json.MarshalerTo, preserving insertion order, and slog.LogValuer.
//
// The zero value is not usable, construct Fields with NewFields.
type Fields struct {
	keys   []string
	values map[string]any
}

// NewFields constructs an empty Fields.
func NewFields() *Fields {
	return &Fields{values: map[string]any{}}
}

// Set stores value under key. Setting an existing key replaces the value but keeps its original position. Set returns
// the receiver so calls can be chained.
func (f *Fields) Set(key string, value any) *Fields {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}

	f.values[key] = value
	return f
}

// Get returns the value stored for key and whether it was present.
func (f *Fields) Get(key string) (any, bool) {
	if f == nil {
		return nil, false
	}

	v, ok := f.values[key]
	return v, ok
}

// Keys returns the attribute names in insertion order.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}

	return slices.Clone(f.keys)
}

// Len returns the number of attributes.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}

	return len(f.keys)
}

// All iterates over attributes in insertion order.
func (f *Fields) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if f == nil {
			return
		}

		for _, k := range f.keys {
			if !yield(k, f.values[k]) {
				return
			}
		}
	}
}

func (f *Fields) MarshalJSONTo(e *jsontext.Encoder) error {
	err := e.WriteToken(jsontext.BeginObject)
	for k, v := range f.All() {
		err = errors.Join(
			err,
			e.WriteToken(jsontext.String(k)),
			json.MarshalEncode(e, v),
		)
	}

	return errors.Join(err, e.WriteToken(jsontext.EndObject))
}

func (f *Fields) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, f.Len())
	for k, v := range f.All() {
		attrs = append(attrs, slog.Any(k, v))
	}

	return slog.GroupValue(attrs...)
}

var (
	_ json.MarshalerTo = &Fields{}
	_ slog.LogValuer   = &Fields{}
)

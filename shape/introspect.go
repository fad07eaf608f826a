package shape

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// ArrayType returns the element of v if v describes an array: a sequence
// with exactly one element.
func ArrayType(v any) (elem any, ok bool) {
	seq, ok := v.([]any)
	if !ok || len(seq) != 1 {
		return nil, false
	}

	return seq[0], true
}

// RecordType returns the ordered fields of v if v describes a record.
func RecordType(v any) (yaml.MapSlice, bool) {
	switch m := v.(type) {
	case yaml.MapSlice:
		return m, true

	case map[string]any:
		ms := make(yaml.MapSlice, 0, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			ms = append(ms, yaml.MapItem{Key: k, Value: m[k]})
		}

		return ms, true

	case map[any]any:
		keys := make([]string, 0, len(m))
		index := make(map[string]any, len(m))

		for k, val := range m {
			s := fmt.Sprint(k)
			keys = append(keys, s)
			index[s] = val
		}

		slices.Sort(keys)

		ms := make(yaml.MapSlice, 0, len(m))
		for _, k := range keys {
			ms = append(ms, yaml.MapItem{Key: k, Value: index[k]})
		}

		return ms, true
	}

	return nil, false
}

// ScalarType returns the kind name of v if v describes a scalar.
func ScalarType(v any) (string, bool) {
	s, ok := v.(string)

	return s, ok
}

// Of classifies the raw value v as a [Shape].
//
// Values that are neither arrays, records, nor kind names become a scalar of
// [KindUnknown] whose Name is the value's printed form.
func Of(v any) Shape {
	if elem, ok := ArrayType(v); ok {
		return Array{Elem: Of(elem)}
	}

	if fields, ok := RecordType(v); ok {
		r := Record{Fields: make([]Field, 0, len(fields))}
		for _, item := range fields {
			r.Fields = append(r.Fields, Field{
				Name:  fmt.Sprint(item.Key),
				Shape: Of(item.Value),
			})
		}

		return r
	}

	if name, ok := ScalarType(v); ok {
		return NewScalar(name)
	}

	if v == nil {
		return Scalar{}
	}

	return Scalar{Name: fmt.Sprint(v)}
}

// Parse decodes a YAML or JSON shape document.
func Parse(data []byte) (Shape, error) {
	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return nil, err
	}

	return Of(raw), nil
}

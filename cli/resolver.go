package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Keys name flags with hyphens or underscores. Nested mappings are joined
// with hyphens, so these all set --log-level:
//
//	log-level: debug
//	log_level: debug
//	log:
//	  level: debug
//
// Scalars are passed to kong as strings and sequences as lists of strings,
// leaving conversion to the flag's own mapper. An empty file configures
// nothing.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, err
	}

	s := settings{}
	s.flatten("", doc)

	return s, nil
}

// settings implements [kong.Resolver] over flattened YAML keys.
type settings map[string]any

func (s settings) flatten(prefix string, doc map[string]any) {
	for key, val := range doc {
		name := normalize(prefix + key)

		switch v := val.(type) {
		case map[string]any:
			s.flatten(name+"-", v)
		case []any:
			list := make([]any, len(v))
			for i, elem := range v {
				list[i] = scalar(elem)
			}

			s[name] = list
		case nil:
		default:
			s[name] = scalar(v)
		}
	}
}

func normalize(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", "-")
}

func scalar(v any) any {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// Validate implements [kong.Resolver].
func (settings) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (s settings) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := s[normalize(flag.Name)]; ok {
		return v, nil
	}

	return nil, nil
}

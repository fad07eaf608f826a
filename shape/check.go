package shape

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ardnew/kelm/pkg"
)

// Check reports every place where value does not conform to s.
//
// The result is nil when value conforms, or an error joining one
// [pkg.ErrShapeMismatch] per offending path. Generation never depends on
// Check; it exists for callers that want to reject inconsistent workbooks
// before their output reaches a compiler.
func Check(s Shape, value any) error {
	return errors.Join(check(s, value, "")...)
}

func check(s Shape, value any, path string) []error {
	return Match(s,
		func(a Array) []error {
			seq, ok := value.([]any)
			if !ok {
				return []error{mismatch(path, "array", value)}
			}

			var errs []error
			for i, elem := range seq {
				errs = append(errs, check(a.Elem, elem, path+"["+strconv.Itoa(i)+"]")...)
			}

			return errs
		},
		func(r Record) []error {
			fields, ok := RecordType(value)
			if !ok {
				return []error{mismatch(path, "record", value)}
			}

			given := make(map[string]any, len(fields))
			for _, item := range fields {
				given[fmt.Sprint(item.Key)] = item.Value
			}

			var errs []error

			for _, f := range r.Fields {
				v, ok := given[f.Name]
				if !ok {
					errs = append(errs, fieldError(join(path, f.Name), "missing field"))

					continue
				}

				delete(given, f.Name)
				errs = append(errs, check(f.Shape, v, join(path, f.Name))...)
			}

			for _, item := range fields {
				name := fmt.Sprint(item.Key)
				if _, extra := given[name]; extra {
					errs = append(errs, fieldError(join(path, name), "undeclared field"))
				}
			}

			return errs
		},
		func(sc Scalar) []error {
			if conforms(sc.Kind, value) {
				return nil
			}

			return []error{mismatch(path, String(sc), value)}
		},
	)
}

func conforms(k Kind, value any) bool {
	switch k {
	case KindString:
		_, ok := value.(string)

		return ok

	case KindInt:
		return isInteger(value)

	case KindFloat:
		switch value.(type) {
		case float32, float64:
			return true
		}

		return isInteger(value)

	case KindBoolean:
		_, ok := value.(bool)

		return ok

	default:
		return false
	}
}

func isInteger(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}

	return false
}

func mismatch(path, want string, got any) *pkg.Error {
	if path == "" {
		path = "."
	}

	return pkg.ErrShapeMismatch.
		Wrap(fmt.Errorf("%s: want %s, got %T", path, want, got)).
		With(
			slog.String("path", path),
			slog.String("want", want),
			slog.String("got", fmt.Sprintf("%T", got)),
		)
}

func fieldError(path, reason string) *pkg.Error {
	return pkg.ErrShapeMismatch.
		Wrap(fmt.Errorf("%s: %s", path, reason)).
		With(
			slog.String("path", path),
			slog.String("reason", reason),
		)
}

func join(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}

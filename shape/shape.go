package shape

import "strings"

// Shape is the closed union of [Array], [Record] and [Scalar].
type Shape interface {
	shape()
}

// Array is a list whose elements all have shape Elem.
type Array struct {
	Elem Shape
}

// Field is a named member of a [Record].
type Field struct {
	Name  string
	Shape Shape
}

// Record is a structure of named fields. Field order is significant.
type Record struct {
	Fields []Field
}

// Scalar is a primitive value of a given [Kind].
//
// Name holds the kind exactly as written, which differs from Kind.String
// only for [KindUnknown].
type Scalar struct {
	Name string
	Kind Kind
}

func (Array) shape()  {}
func (Record) shape() {}
func (Scalar) shape() {}

// Names returns the record's field names in declared order.
func (r Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}

	return names
}

// Field returns the shape of the named field.
func (r Record) Field(name string) (Shape, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Shape, true
		}
	}

	return nil, false
}

// Kind identifies a scalar type.
type Kind int

const (
	KindUnknown Kind = iota // unknown
	KindString              // string
	KindInt                 // int
	KindFloat               // float
	KindBoolean             // boolean
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// ParseKind returns the Kind named by s, or [KindUnknown].
func ParseKind(s string) Kind {
	switch strings.TrimSpace(s) {
	case "string":
		return KindString
	case "int":
		return KindInt
	case "float":
		return KindFloat
	case "boolean":
		return KindBoolean
	default:
		return KindUnknown
	}
}

// NewScalar returns the Scalar named by s.
func NewScalar(s string) Scalar {
	return Scalar{Name: s, Kind: ParseKind(s)}
}

// Match dispatches s to the handler for its variant.
//
// A nil Shape is treated as a scalar of unknown kind.
func Match[T any](
	s Shape,
	array func(Array) T,
	record func(Record) T,
	scalar func(Scalar) T,
) T {
	switch v := s.(type) {
	case Array:
		return array(v)
	case *Array:
		return array(*v)
	case Record:
		return record(v)
	case *Record:
		return record(*v)
	case Scalar:
		return scalar(v)
	case *Scalar:
		return scalar(*v)
	default:
		return scalar(Scalar{})
	}
}

// String renders s back into the kram notation it was read from.
func String(s Shape) string {
	return Match(s,
		func(a Array) string { return "[" + String(a.Elem) + "]" },
		func(r Record) string {
			var sb strings.Builder

			sb.WriteByte('{')

			for i, f := range r.Fields {
				if i > 0 {
					sb.WriteString(", ")
				}

				sb.WriteString(f.Name)
				sb.WriteString(": ")
				sb.WriteString(String(f.Shape))
			}

			sb.WriteByte('}')

			return sb.String()
		},
		func(s Scalar) string {
			if s.Name != "" {
				return s.Name
			}

			return s.Kind.String()
		},
	)
}

package elm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/kelm/shape"
)

// Placeholder stands in for the type or decoder of an unrecognized scalar
// kind. It is a free type variable in a type position and an unbound name in
// an expression, so the compiler reports it either way.
const Placeholder = "t"

// maxMapArity is the largest N for which Json.Decode provides mapN.
const maxMapArity = 8

var typeName = map[shape.Kind]string{
	shape.KindString:  "String",
	shape.KindInt:     "Int",
	shape.KindFloat:   "Float",
	shape.KindBoolean: "Bool",
}

var decoderName = map[shape.Kind]string{
	shape.KindString:  "Json.string",
	shape.KindInt:     "Json.int",
	shape.KindFloat:   "Json.float",
	shape.KindBoolean: "Json.bool",
}

// Type renders s as an Elm type.
func Type(s shape.Shape) string {
	return shape.Match(s,
		func(a shape.Array) string {
			return "(List " + Type(a.Elem) + ")"
		},
		func(r shape.Record) string {
			if len(r.Fields) == 0 {
				return "{}"
			}

			fields := make([]string, len(r.Fields))
			for i, f := range r.Fields {
				fields[i] = f.Name + ": " + Type(f.Shape)
			}

			return "{ " + strings.Join(fields, "\n  ,") + "\n  }"
		},
		func(sc shape.Scalar) string {
			if name, ok := typeName[sc.Kind]; ok {
				return name
			}

			return Placeholder
		},
	)
}

// Decoder renders a Json.Decode expression producing values of Type(s).
//
// A top-level record is built with the Model constructor; nested records use
// an anonymous constructor. Fields are decoded in the same order Type lists
// them, which the positional constructors depend on.
func Decoder(s shape.Shape) string {
	return decoder(s, "Model", 0)
}

func decoder(s shape.Shape, ctor string, depth int) string {
	return shape.Match(s,
		func(a shape.Array) string {
			return "Json.list <| " + decoder(a.Elem, "", depth+1)
		},
		func(r shape.Record) string {
			return recordDecoder(r, ctor, depth)
		},
		func(sc shape.Scalar) string {
			if name, ok := decoderName[sc.Kind]; ok {
				return name
			}

			return Placeholder
		},
	)
}

func recordDecoder(r shape.Record, ctor string, depth int) string {
	n := len(r.Fields)
	if n == 0 {
		return "Json.succeed {}"
	}

	if ctor == "" {
		ctor = constructor(r)
	}

	indent := "\n" + strings.Repeat(" ", 4+4*depth)

	fields := make([]string, n)
	for i, f := range r.Fields {
		fields[i] = "(Json.field " + quote(f.Name) + " <| " +
			decoder(f.Shape, "", depth+1) + ")"
	}

	if n <= maxMapArity {
		mapN := "Json.map"
		if n > 1 {
			mapN += strconv.Itoa(n)
		}

		return mapN + " " + ctor + indent + strings.Join(fields, indent)
	}

	// Json.Decode stops at map8; wider records are applied one field at a
	// time through andMap.
	pipeline := "Json.succeed " + ctor + indent + "|> andMap " +
		strings.Join(fields, indent+"|> andMap ")

	if depth > 0 {
		return "(" + pipeline + ")"
	}

	return pipeline
}

// constructor renders a lambda building a record of r's fields from
// positional arguments.
func constructor(r shape.Record) string {
	params := make([]string, len(r.Fields))
	assign := make([]string, len(r.Fields))

	for i, f := range r.Fields {
		params[i] = "kram_f" + strconv.Itoa(i)
		assign[i] = f.Name + " = " + params[i]
	}

	return `(\` + strings.Join(params, " ") + " -> { " +
		strings.Join(assign, ", ") + " })"
}

// Init renders the initial model as an Elm record literal, with fields in
// the order given.
func Init(values yaml.MapSlice) string {
	if len(values) == 0 {
		return "{}"
	}

	fields := make([]string, len(values))
	for i, item := range values {
		fields[i] = fmt.Sprint(item.Key) + " = " + Literal(item.Value)
	}

	return "{ " + strings.Join(fields, "\n      , ") + "\n      }"
}

// Literal renders a decoded YAML or JSON value as an Elm literal.
//
// null has no Elm equivalent and is rendered as the bare name null.
func Literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"

	case bool:
		if val {
			return "True"
		}

		return "False"

	case string:
		return quote(val)

	case int:
		return strconv.Itoa(val)
	case int8, int16, int32, int64:
		return fmt.Sprint(val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(val)

	case float32:
		return floatLiteral(float64(val))
	case float64:
		return floatLiteral(val)

	case []any:
		if len(val) == 0 {
			return "[]"
		}

		elems := make([]string, len(val))
		for i, e := range val {
			elems[i] = Literal(e)
		}

		return "[ " + strings.Join(elems, ", ") + " ]"
	}

	if fields, ok := shape.RecordType(v); ok {
		if len(fields) == 0 {
			return "{}"
		}

		entries := make([]string, len(fields))
		for i, item := range fields {
			entries[i] = fmt.Sprint(item.Key) + " = " + Literal(item.Value)
		}

		return "{ " + strings.Join(entries, ", ") + " }"
	}

	return quote(fmt.Sprint(v))
}

func floatLiteral(f float64) string {
	switch {
	case math.IsNaN(f):
		return "(0/0)"
	case math.IsInf(f, 1):
		return "(1/0)"
	case math.IsInf(f, -1):
		return "(-1/0)"
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// quote renders s as an Elm string literal.
func quote(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u{%04X}`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

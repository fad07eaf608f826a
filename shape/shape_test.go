package shape

import (
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/kelm/pkg"
)

func TestParse_PreservesFieldOrder(t *testing.T) {
	src := `
zeta: int
alpha: [string]
mid:
  b: boolean
  a: float
`

	got, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Record{Fields: []Field{
		{Name: "zeta", Shape: Scalar{Name: "int", Kind: KindInt}},
		{Name: "alpha", Shape: Array{Elem: Scalar{Name: "string", Kind: KindString}}},
		{Name: "mid", Shape: Record{Fields: []Field{
			{Name: "b", Shape: Scalar{Name: "boolean", Kind: KindBoolean}},
			{Name: "a", Shape: Scalar{Name: "float", Kind: KindFloat}},
		}}},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_JSON(t *testing.T) {
	got, err := Parse([]byte(`[{"id": "int", "name": "string"}]`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if s := String(got); s != "[{id: int, name: string}]" {
		t.Errorf("String() = %q", s)
	}
}

func TestOf_PlainMapIsSorted(t *testing.T) {
	got := Of(map[string]any{"b": "int", "a": "string", "c": "float"})

	r, ok := got.(Record)
	if !ok {
		t.Fatalf("Of() = %T, want Record", got)
	}

	if diff := cmp.Diff([]string{"a", "b", "c"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestOf_UnknownScalar(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Scalar
	}{
		{"unknown name", "date", Scalar{Name: "date", Kind: KindUnknown}},
		{"number", uint64(3), Scalar{Name: "3", Kind: KindUnknown}},
		{"nil", nil, Scalar{}},
		{"two element sequence", []any{"int", "int"}, Scalar{Name: "[int int]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(Shape(tt.want), Of(tt.in)); diff != "" {
				t.Errorf("Of() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatch_Pointers(t *testing.T) {
	kind := func(s Shape) string {
		return Match(s,
			func(Array) string { return "array" },
			func(Record) string { return "record" },
			func(Scalar) string { return "scalar" },
		)
	}

	tests := []struct {
		in   Shape
		want string
	}{
		{Array{}, "array"},
		{&Array{}, "array"},
		{Record{}, "record"},
		{&Record{}, "record"},
		{Scalar{}, "scalar"},
		{&Scalar{}, "scalar"},
		{nil, "scalar"},
	}

	for _, tt := range tests {
		if got := kind(tt.in); got != tt.want {
			t.Errorf("Match(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRecord_Field(t *testing.T) {
	r := Record{Fields: []Field{{Name: "x", Shape: NewScalar("int")}}}

	if s, ok := r.Field("x"); !ok || s != Shape(NewScalar("int")) {
		t.Errorf("Field(x) = %v, %v", s, ok)
	}

	if _, ok := r.Field("y"); ok {
		t.Error("Field(y) should not exist")
	}
}

func TestCheck(t *testing.T) {
	sh, err := Parse([]byte("count: int\nratio: float\nname: string\ntags: [string]\nenabled: boolean\n"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		init  string
		count int
	}{
		{"conforming", "count: 1\nratio: 2\nname: x\ntags: [a, b]\nenabled: true\n", 0},
		{"missing field", "count: 1\nratio: 2.5\nname: x\ntags: []\n", 1},
		{"extra field", "count: 1\nratio: 2.5\nname: x\ntags: []\nenabled: false\nmore: 1\n", 1},
		{"wrong scalar", "count: one\nratio: 2.5\nname: x\ntags: [1]\nenabled: false\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var init yaml.MapSlice
			if err := yaml.UnmarshalWithOptions([]byte(tt.init), &init, yaml.UseOrderedMap()); err != nil {
				t.Fatal(err)
			}

			err := Check(sh, init)

			var errs []error
			if joined, ok := err.(interface{ Unwrap() []error }); ok {
				errs = joined.Unwrap()
			}

			if len(errs) != tt.count {
				t.Fatalf("Check() reported %d errors, want %d: %v", len(errs), tt.count, err)
			}

			if tt.count > 0 && !errors.Is(err, pkg.ErrShapeMismatch) {
				t.Errorf("Check() error %v is not ErrShapeMismatch", err)
			}
		})
	}
}

func TestCheck_UnknownKindNeverConforms(t *testing.T) {
	if err := Check(NewScalar("date"), "2024-01-01"); err == nil {
		t.Error("Check() should reject values of an unknown kind")
	}
}

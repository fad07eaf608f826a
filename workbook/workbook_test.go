package workbook

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/kelm/pkg"
	"github.com/ardnew/kelm/shape"
)

const counterSource = `---
moduleName: Counter
imports:
  - from: Html.Events
    as: Events
shape:
  count: int
  label: string
init:
  count: 0
  label: hi
---

# Title

'''elm #total
count + 1
'''

'''elm
double x =
    x * 2
'''

'''css {#sheet kind="base"}
li { color: teal; }
'''

'''
plain text is ignored
'''

'''elm
label
'''
`

// byEquals stands in for a real classifier: anything with "=" defines.
func byEquals(code string) Classification {
	if strings.Contains(code, "=") {
		return Classification{Mode: ModeDefine, Type: "function"}
	}

	return Classification{Mode: ModeEval}
}

func parseCounter(t *testing.T) *Workbook {
	t.Helper()

	wb, err := ParseString(
		strings.ReplaceAll(counterSource, "'''", "```"),
		WithClassifier("elm", byEquals),
	)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	return wb
}

func TestParse_FrontMatter(t *testing.T) {
	wb := parseCounter(t)

	if wb.ModuleName != "Counter" {
		t.Errorf("ModuleName = %q, want Counter", wb.ModuleName)
	}

	if diff := cmp.Diff([]Import{{From: "Html.Events", As: "Events"}}, wb.Imports); diff != "" {
		t.Errorf("Imports mismatch (-want +got):\n%s", diff)
	}

	if got := shape.String(wb.Shape); got != "{count: int, label: string}" {
		t.Errorf("Shape = %s", got)
	}

	var keys []string
	for _, item := range wb.Init {
		keys = append(keys, item.Key.(string))
	}

	if diff := cmp.Diff([]string{"count", "label"}, keys); diff != "" {
		t.Errorf("Init keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Blocks(t *testing.T) {
	wb := parseCounter(t)

	type summary struct {
		Lang, ID, Code string
		Mode           Mode
		Index, Line    int
	}

	var got []summary
	for _, b := range wb.Blocks {
		got = append(got, summary{
			Lang:  b.Ref.Lang,
			ID:    b.Attrs.ID(),
			Code:  b.Code,
			Mode:  b.Class.Mode,
			Index: b.Ref.Index,
			Line:  b.Ref.Line,
		})
	}

	want := []summary{
		{Lang: "elm", ID: "total", Code: "count + 1", Mode: ModeEval, Index: 0, Line: 16},
		{Lang: "elm", Code: "double x =\n    x * 2", Mode: ModeDefine, Index: 1, Line: 20},
		{Lang: "css", ID: "sheet", Code: "li { color: teal; }", Mode: ModeDefine, Index: 2, Line: 25},
		{Lang: "elm", Code: "label", Mode: ModeEval, Index: 3, Line: 33},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}

	if kind := wb.Blocks[2].Attrs["kind"]; kind != "base" {
		t.Errorf("css kind attr = %q, want base", kind)
	}
}

func TestParse_Defaults(t *testing.T) {
	wb, err := ParseString("no front matter here\n")
	if err != nil {
		t.Fatal(err)
	}

	if wb.ModuleName != DefaultModuleName {
		t.Errorf("ModuleName = %q, want %q", wb.ModuleName, DefaultModuleName)
	}

	if _, ok := wb.Shape.(shape.Record); !ok {
		t.Errorf("Shape = %T, want empty Record", wb.Shape)
	}

	if len(wb.Blocks) != 0 {
		t.Errorf("Blocks = %v, want none", wb.Blocks)
	}
}

func TestParse_UnterminatedFrontMatterIsMarkdown(t *testing.T) {
	wb, err := ParseString("---\nmoduleName: X\n\n~~~css\na{}\n~~~\n")
	if err != nil {
		t.Fatal(err)
	}

	if wb.ModuleName != DefaultModuleName {
		t.Errorf("ModuleName = %q", wb.ModuleName)
	}

	if len(wb.Blocks) != 1 || wb.Blocks[0].Code != "a{}" {
		t.Errorf("Blocks = %+v", wb.Blocks)
	}
}

func TestParse_InvalidFrontMatter(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad yaml", "---\nimports: [\n---\n"},
		{"init not a mapping", "---\ninit: [1, 2]\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src)
			if !errors.Is(err, pkg.ErrFrontMatter) {
				t.Errorf("ParseString() error = %v, want ErrFrontMatter", err)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	wb := parseCounter(t)

	codes := func(blocks []*Block) []string {
		var out []string
		for _, b := range blocks {
			out = append(out, b.Code)
		}

		return out
	}

	tests := []struct {
		mode Mode
		lang string
		want []string
	}{
		{ModeEval, "elm", []string{"count + 1", "label"}},
		{ModeDefine, "elm", []string{"double x =\n    x * 2"}},
		{ModeDefine, "css", []string{"li { color: teal; }"}},
		{ModeEval, "css", nil},
		{ModeDefine, "js", nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.lang, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, codes(Extract(wb, tt.mode, tt.lang))); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if Extract(nil, ModeEval, "elm") != nil {
		t.Error("Extract(nil) should return nil")
	}
}

func TestLanguages(t *testing.T) {
	wb := parseCounter(t)

	if diff := cmp.Diff([]string{"elm", "css"}, wb.Languages()); diff != "" {
		t.Errorf("Languages() mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect(t *testing.T) {
	wb := parseCounter(t)

	tests := []struct {
		src  string
		want int
	}{
		{`lang == "elm"`, 3},
		{`mode == "eval" && id == "total"`, 1},
		{`attrs["kind"] == "base"`, 1},
		{`line > 20`, 2},
		{`code contains "x"`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			sel, err := Compile(tt.src)
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}

			got, err := wb.Select(sel)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}

			if len(got.Blocks) != tt.want {
				t.Errorf("Select() kept %d blocks, want %d", len(got.Blocks), tt.want)
			}

			if len(wb.Blocks) != 4 {
				t.Error("Select() modified the original workbook")
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	for _, src := range []string{`lang +`, `line + 1`, `unknown == 1`} {
		if _, err := Compile(src); !errors.Is(err, pkg.ErrCompileSelector) {
			t.Errorf("Compile(%q) error = %v, want ErrCompileSelector", src, err)
		}
	}
}

func TestSelect_NilKeepsAll(t *testing.T) {
	wb := parseCounter(t)

	got, err := wb.Select(nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Blocks) != len(wb.Blocks) {
		t.Errorf("Select(nil) kept %d of %d blocks", len(got.Blocks), len(wb.Blocks))
	}
}

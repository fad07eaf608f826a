package plugin

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/kelm/pkg"
	"github.com/ardnew/kelm/workbook"
)

const todo = "---\nmoduleName: Todo\nshape:\n  n: int\ninit:\n  n: 1\n---\n\n" +
	"~~~elm #n\nHtml.text (String.fromInt n)\n~~~\n\n" +
	"~~~elm\nhelper : Int\nhelper = 1\n~~~\n\n" +
	"~~~css\nol { margin: 0; }\n~~~\n"

// recorder is a Host that remembers what it was given.
type recorder struct {
	names []string
}

func (r *recorder) ProvidesLanguage(name string, _ Language) {
	r.names = append(r.names, name)
}

func TestElm_Register(t *testing.T) {
	var h recorder

	Elm.Register(&h)

	if diff := cmp.Diff([]string{"elm", "css"}, h.names); diff != "" {
		t.Errorf("Register() mismatch (-want +got):\n%s", diff)
	}

	want := map[string]string{"elm": "Elm", "css": "Cascading Style Sheets"}
	if diff := cmp.Diff(want, Elm.Titles()); diff != "" {
		t.Errorf("Titles() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Languages(t *testing.T) {
	r := NewRegistry(Elm)

	var uses []string
	for lang := range r.Languages() {
		uses = append(uses, lang.Name+"="+lang.Use())
	}

	want := []string{"elm=elm-webpack-loader", "css=css-loader"}
	if diff := cmp.Diff(want, uses); diff != "" {
		t.Errorf("Languages() mismatch (-want +got):\n%s", diff)
	}

	elm, err := r.Lookup("elm")
	if err != nil {
		t.Fatal(err)
	}

	if elm.Classify == nil {
		t.Error("elm should provide a classifier")
	}

	css, err := r.Lookup("css")
	if err != nil {
		t.Fatal(err)
	}

	if css.Classify != nil {
		t.Error("css should not provide a classifier")
	}

	if !strings.Contains(elm.Bind("Todo"), "Elm.Todo.init") {
		t.Errorf("elm Bind() = %q", elm.Bind("Todo"))
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := NewRegistry(Elm)

	_, err := r.Lookup("cs")
	if !errors.Is(err, pkg.ErrUnknownLanguage) {
		t.Fatalf("Lookup() error = %v, want ErrUnknownLanguage", err)
	}

	var perr *pkg.Error
	if !errors.As(err, &perr) {
		t.Fatalf("Lookup() error is %T", err)
	}

	idx := slices.IndexFunc(perr.Attrs(), func(a slog.Attr) bool { return a.Key == "suggest" })
	if idx < 0 {
		t.Fatalf("Lookup() error has no suggestions: %v", perr.Attrs())
	}

	if got := perr.Attrs()[idx].Value.Any(); !slices.Contains(got.([]string), "css") {
		t.Errorf("suggestions = %v, want css among them", got)
	}

	if got := r.Suggest("zzz"); len(got) != 0 {
		t.Errorf("Suggest(zzz) = %v, want none", got)
	}
}

func TestRegistry_ProvidesLanguageReplaces(t *testing.T) {
	r := NewRegistry(Elm)

	r.ProvidesLanguage("elm", Language{Use: func() string { return "other" }})

	if diff := cmp.Diff([]string{"elm", "css"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	lang, err := r.Lookup("elm")
	if err != nil {
		t.Fatal(err)
	}

	if lang.Use() != "other" || lang.Name != "elm" {
		t.Errorf("replacement not applied: %+v", lang)
	}

	var zero Registry

	zero.ProvidesLanguage("x", Language{})

	if diff := cmp.Diff([]string{"x"}, zero.Names()); diff != "" {
		t.Errorf("zero Registry Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_ParseAndCollate(t *testing.T) {
	r := NewRegistry(Elm)

	wb, err := r.Parse([]byte(todo))
	if err != nil {
		t.Fatal(err)
	}

	modes := map[workbook.Mode]int{}
	for _, b := range wb.Blocks {
		modes[b.Class.Mode]++
	}

	if modes[workbook.ModeEval] != 1 || modes[workbook.ModeDefine] != 2 {
		t.Errorf("block modes = %v, want 1 eval and 2 define", modes)
	}

	elmArt, err := r.Collate(wb, "elm")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(elmArt.Code, "helper = 1") ||
		!strings.Contains(elmArt.Code, `Html.li [Attr.id "n"]`) {
		t.Errorf("elm artifact:\n%s", elmArt.Code)
	}

	cssArt, err := r.Collate(wb, "css")
	if err != nil {
		t.Fatal(err)
	}

	if cssArt != (workbook.Artifact{Name: "styles.css", Language: "css", Code: "ol { margin: 0; }"}) {
		t.Errorf("css artifact = %+v", cssArt)
	}

	if _, err := r.Collate(wb, "js"); !errors.Is(err, pkg.ErrUnknownLanguage) {
		t.Errorf("Collate(js) error = %v", err)
	}
}

func TestRegistry_ParseError(t *testing.T) {
	_, err := NewRegistry(Elm).Parse([]byte("---\ninit: 3\n---\n"))

	if !errors.Is(err, pkg.ErrParseWorkbook) || !errors.Is(err, pkg.ErrFrontMatter) {
		t.Errorf("Parse() error = %v", err)
	}
}

func TestRegistry_ConcurrentCollate(t *testing.T) {
	r := NewRegistry(Elm)

	wb, err := r.Parse([]byte(todo))
	if err != nil {
		t.Fatal(err)
	}

	want, _ := r.Collate(wb, "elm")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			got, err := r.Collate(wb, "elm")
			if err != nil || got != want {
				t.Errorf("concurrent Collate() diverged: %v", err)
			}
		}()
	}

	wg.Wait()
}

package elm

import (
	"strings"
	"text/template"

	"github.com/ardnew/kelm/shape"
	"github.com/ardnew/kelm/workbook"
)

// Port is the name of the port through which the host delivers new model
// values.
const Port = "kram_input"

var module = template.Must(template.New("module").Parse(
	`port module {{.ModuleName}} exposing (main)

import Browser
import Html
import Html.Attributes as Attr exposing (class)
import Json.Decode as Json
{{- range .Imports}}
{{.}}
{{- end}}


main : Program Json.Value Model Msg
main =
  Browser.element
    { init = init
    , view = view
    , update = update
    , subscriptions = subscriptions
    }


port {{.Port}} : (Json.Value -> msg) -> Sub msg


type alias Model =
  {{.Model}}


init : Json.Value -> ( Model, Cmd msg )
init json =
  let
    initial =
      {{.Init}}
  in
  ( Result.withDefault initial <| Json.decodeValue decoder json, Cmd.none )


type Msg
  = Incoming Json.Value


update : Msg -> Model -> ( Model, Cmd msg )
update msg model =
  case msg of
    Incoming json ->
      ( Result.withDefault model <| Json.decodeValue decoder json, Cmd.none )


decoder : Json.Decoder Model
decoder =
  {{.Decoder}}


andMap : Json.Decoder a -> Json.Decoder (a -> b) -> Json.Decoder b
andMap =
  Json.map2 (|>)


subscriptions : Model -> Sub Msg
subscriptions model =
  {{.Port}} Incoming


view : Model -> Html.Html Msg
view model =
{{- if .Expose}}
  let
{{- range .Expose}}
    {{.}} = model.{{.}}
{{- end}}
  in
{{- end}}
  Html.ol []
    {{.Views}}
{{range .Defns}}
{{.}}
{{- end}}
`))

type moduleData struct {
	ModuleName string
	Port       string
	Imports    []string
	Model      string
	Init       string
	Decoder    string
	Expose     []string
	Views      string
	Defns      []string
}

// Generate assembles the Elm module for wb from its definition and eval
// blocks, each in the order given.
func Generate(wb *workbook.Workbook, defns, evals []*workbook.Block) string {
	if wb == nil {
		wb = &workbook.Workbook{}
	}

	data := moduleData{
		ModuleName: wb.ModuleName,
		Port:       Port,
		Imports:    imports(wb.Imports),
		Model:      Type(wb.Shape),
		Init:       Init(wb.Init),
		Decoder:    Decoder(wb.Shape),
		Expose:     expose(wb.Shape),
		Views:      views(evals),
		Defns:      make([]string, 0, len(defns)),
	}

	if data.ModuleName == "" {
		data.ModuleName = workbook.DefaultModuleName
	}

	for _, b := range defns {
		if b != nil {
			data.Defns = append(data.Defns, b.Code)
		}
	}

	var sb strings.Builder

	// Every field is a plain string, so execution cannot fail.
	_ = module.Execute(&sb, data)

	return sb.String()
}

func imports(specs []workbook.Import) []string {
	lines := make([]string, 0, len(specs))

	for _, spec := range specs {
		switch {
		case spec.From == "":
			continue
		case spec.As == "":
			lines = append(lines, "import "+spec.From)
		default:
			lines = append(lines, "import "+spec.From+" as "+spec.As)
		}
	}

	return lines
}

// expose returns the model fields bound by name in the view.
func expose(s shape.Shape) []string {
	return shape.Match(s,
		func(shape.Array) []string { return nil },
		func(r shape.Record) []string { return r.Names() },
		func(shape.Scalar) []string { return nil },
	)
}

func views(evals []*workbook.Block) string {
	if len(evals) == 0 {
		return "[]"
	}

	items := make([]string, len(evals))
	for i, b := range evals {
		items[i] = view(b)
	}

	return "[ " + strings.Join(items, "\n    , ") + "\n    ]"
}

func view(b *workbook.Block) string {
	if b == nil {
		return "Html.li [] []"
	}

	attrs := "[]"
	if id := b.Attrs.ID(); id != "" {
		attrs = "[Attr.id " + quote(id) + "]"
	}

	code := strings.Join(strings.Split(b.Code, "\n"), "\n        ")

	return "Html.li " + attrs + "\n      [ " + code + "\n      ]"
}

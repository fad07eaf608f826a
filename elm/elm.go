package elm

import (
	"fmt"

	"github.com/ardnew/kelm/workbook"
)

const (
	// Language is the block language this package collates.
	Language = "elm"
	// Title is the human-readable name of [Language].
	Title = "Elm"
	// ArtifactName is the file name of the generated module.
	ArtifactName = "Main.elm"
	// Loader is the bundler loader that compiles the generated module.
	Loader = "elm-webpack-loader"
)

// Use returns the bundler loader for compiled Elm modules.
func Use() string { return Loader }

// Bind returns the JavaScript that mounts the compiled program named
// moduleName. The function it evaluates to receives the compiled resource,
// the DOM container, and the program's flags.
func Bind(moduleName string) string {
	return fmt.Sprintf(`function(resource, container, initial){
        let { Elm } = resource
        let dummy = document.createElement('div')
        container.appendChild(dummy)
        let app = Elm.%s.init({ node: dummy, flags: initial })
      }`, moduleName)
}

// Collate generates the Elm module for every Elm block in wb.
func Collate(wb *workbook.Workbook) workbook.Artifact {
	evals := workbook.Extract(wb, workbook.ModeEval, Language)
	defns := workbook.Extract(wb, workbook.ModeDefine, Language)

	return workbook.Artifact{
		Name:     ArtifactName,
		Language: Language,
		Code:     Generate(wb, defns, evals),
	}
}

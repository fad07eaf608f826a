// Package css collates the CSS blocks of a workbook into one stylesheet.
package css

import (
	"strings"

	"github.com/ardnew/kelm/workbook"
)

const (
	// Language is the block language this package collates.
	Language = "css"
	// Title is the human-readable name of [Language].
	Title = "Cascading Style Sheets"
	// ArtifactName is the file name of the generated stylesheet.
	ArtifactName = "styles.css"
	// Loader is the bundler loader that imports the generated stylesheet.
	Loader = "css-loader"
	// Separator is placed between consecutive blocks.
	Separator = "\n/****/\n\n"
)

// Use returns the bundler loader for stylesheets.
func Use() string { return Loader }

// Bind returns the JavaScript that mounts a compiled stylesheet. The name is
// accepted for symmetry with other languages; a stylesheet mounts the same
// way regardless of its name.
func Bind(string) string {
	return `function(resource, container) {
          let sheet = document.createElement('style')
          sheet.innerHTML = resource.default
          container.appendChild(sheet);
      }`
}

// Generate concatenates the code of defns in order.
func Generate(defns []*workbook.Block) string {
	parts := make([]string, 0, len(defns))

	for _, b := range defns {
		if b != nil {
			parts = append(parts, b.Code)
		}
	}

	return strings.Join(parts, Separator)
}

// Collate generates the stylesheet for every CSS block in wb.
func Collate(wb *workbook.Workbook) workbook.Artifact {
	return workbook.Artifact{
		Name:     ArtifactName,
		Language: Language,
		Code:     Generate(workbook.Extract(wb, workbook.ModeDefine, Language)),
	}
}

package cmd

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/kelm/plugin"
)

// Languages lists the registered languages.
type Languages struct {
	Plain bool `help:"Disable colors"`
}

// Run executes the languages command.
func (l *Languages) Run(ctx context.Context, reg *plugin.Registry) error {
	t := table{headers: []string{"NAME", "TITLE", "LOADER", "CLASSIFIER"}}

	for lang := range reg.Languages() {
		classifier := "no"
		if lang.Classify != nil {
			classifier = "yes"
		}

		t.add(lang.Name, lang.Title, lang.Use(), classifier)
	}

	return t.render(outputFrom(ctx), styleFor(l.Plain,
		func(col int, _ string) lipgloss.Style {
			if col == 0 {
				return nameStyle
			}

			return plainStyle
		}))
}

// Package plugin registers the Elm and CSS languages with a workbook host.
//
// A host exposes a single registration call, [Host.ProvidesLanguage]. The
// [Elm] plugin's Register function provides two languages through it:
//
//   - elm: classified blocks collated into one Elm program
//   - css: every block collated into one stylesheet
//
// [Registry] is a ready-made host for programs that embed the plugin
// directly, such as the kelm command.
package plugin

import (
	"github.com/ardnew/kelm/css"
	"github.com/ardnew/kelm/elm"
	"github.com/ardnew/kelm/workbook"
)

// Language is the surface a plugin provides for one block language.
type Language struct {
	// Name is the fence language the plugin handles.
	Name string
	// Title is a human-readable name.
	Title string
	// Use returns the bundler loader for the language's artifact.
	Use func() string
	// Bind returns the mount snippet for the named module or resource.
	Bind func(name string) string
	// Classify optionally classifies blocks. Languages without a classifier
	// treat every block as a definition.
	Classify workbook.Classifier
	// Collate generates the language's artifact from a workbook.
	Collate func(*workbook.Workbook) workbook.Artifact
}

// Host accepts language registrations.
type Host interface {
	ProvidesLanguage(name string, lang Language)
}

// Plugin describes a set of languages and how to register them.
type Plugin struct {
	Name        string
	Description string
	Languages   []Language
	Register    func(Host)
}

// Titles returns each provided language name mapped to its title.
func (p Plugin) Titles() map[string]string {
	titles := make(map[string]string, len(p.Languages))
	for _, l := range p.Languages {
		titles[l.Name] = l.Title
	}

	return titles
}

var (
	elmLanguage = Language{
		Name:     elm.Language,
		Title:    elm.Title,
		Use:      elm.Use,
		Bind:     elm.Bind,
		Classify: elm.Classify,
		Collate:  elm.Collate,
	}

	cssLanguage = Language{
		Name:    css.Language,
		Title:   css.Title,
		Use:     css.Use,
		Bind:    css.Bind,
		Collate: css.Collate,
	}
)

// Elm is the Elm Architecture plugin.
//
//nolint:gochecknoglobals
var Elm = Plugin{
	Name: "elm",
	Description: "The Elm Architecture: a pure functional language " +
		"with ADTs and an MVU architecture",
	Languages: []Language{elmLanguage, cssLanguage},
	Register: func(h Host) {
		h.ProvidesLanguage(elm.Language, elmLanguage)
		h.ProvidesLanguage(css.Language, cssLanguage)
	},
}

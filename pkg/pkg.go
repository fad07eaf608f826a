//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the kelm module embedded at build time.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. It appears in help text and default config paths.
	Name = "kelm"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Elm and CSS collation for kram workbooks"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}

// Semver returns [Version] without surrounding whitespace.
func Semver() string { return strings.TrimSpace(Version) }

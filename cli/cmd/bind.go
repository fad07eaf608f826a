package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/kelm/plugin"
)

// Bind prints the runtime snippet that mounts a generated artifact.
type Bind struct {
	Lang string `help:"Language of the artifact: ${languages}" required:"" short:"l"`
	Name string `arg:"" default:"${module}" help:"Module or stylesheet name" optional:""`
}

// Run executes the bind command.
func (b *Bind) Run(ctx context.Context, reg *plugin.Registry) error {
	lang, err := reg.Lookup(b.Lang)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(outputFrom(ctx), lang.Bind(b.Name))

	return err
}

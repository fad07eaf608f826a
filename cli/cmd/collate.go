package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/kelm/log"
	"github.com/ardnew/kelm/pkg"
	"github.com/ardnew/kelm/plugin"
	"github.com/ardnew/kelm/shape"
	"github.com/ardnew/kelm/workbook"
)

// Output formats accepted by [Collate].
const (
	FormatCode = "code"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// artifactMode is the permission mode of artifacts written with --out.
const artifactMode os.FileMode = 0o644

// Collate generates one artifact per language from a workbook.
type Collate struct {
	Source string   `arg:"" default:"-" help:"Workbook file or '-' for stdin" optional:""`
	Lang   []string `help:"Collate only these languages: ${languages} (default: all)" placeholder:"LANG" short:"l"`
	Where  string   `help:"Keep only blocks matching this expression" short:"w" placeholder:"EXPR"`
	Strict bool     `help:"Reject an initial value that does not conform to the shape"`
	Format string   `default:"code" enum:"code,json,yaml" help:"Output format (${enum})" short:"f"`
	Out    string   `help:"Write artifacts into this directory instead of stdout" short:"o" placeholder:"DIR" type:"path"`
}

// Run executes the collate command.
func (c *Collate) Run(ctx context.Context, reg *plugin.Registry) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	wb, err := load(ctx, reg, c.Source)
	if err != nil {
		return err
	}

	if c.Strict && wb.Shape != nil {
		if err := shape.Check(wb.Shape, wb.Init); err != nil {
			return err
		}
	}

	if c.Where != "" {
		sel, err := workbook.Compile(c.Where)
		if err != nil {
			return err
		}

		if wb, err = wb.Select(sel); err != nil {
			return err
		}
	}

	arts, err := c.collate(ctx, reg, wb)
	if err != nil {
		return err
	}

	if c.Out != "" {
		return writeArtifacts(ctx, c.Out, arts)
	}

	return printArtifacts(outputFrom(ctx), c.Format, arts)
}

func (c *Collate) collate(
	ctx context.Context,
	reg *plugin.Registry,
	wb *workbook.Workbook,
) ([]workbook.Artifact, error) {
	names := c.Lang
	if len(names) == 0 {
		names = reg.Names()
	}

	arts := make([]workbook.Artifact, 0, len(names))

	for _, name := range names {
		art, err := reg.Collate(wb, name)
		if err != nil {
			return nil, err
		}

		log.DebugContext(ctx, "collated artifact",
			slog.String("name", art.Name),
			slog.String("language", art.Language),
			slog.Int("size", len(art.Code)),
		)

		arts = append(arts, art)
	}

	return arts, nil
}

func writeArtifacts(ctx context.Context, dir string, arts []workbook.Artifact) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pkg.ErrWriteArtifact.With(slog.String("dir", dir)).Wrap(err)
	}

	for _, art := range arts {
		path := filepath.Join(dir, art.Name)

		if err := os.WriteFile(path, []byte(art.Code+"\n"), artifactMode); err != nil {
			return pkg.ErrWriteArtifact.With(slog.String("file", path)).Wrap(err)
		}

		log.InfoContext(ctx, "wrote artifact",
			slog.String("file", path),
			slog.String("language", art.Language),
		)
	}

	return nil
}

func printArtifacts(w io.Writer, format string, arts []workbook.Artifact) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatCode, "":
		return printCode(w, arts)

	case FormatJSON:
		data, err = json.MarshalIndent(arts, "", "  ")
		data = append(data, '\n')

	case FormatYAML:
		data, err = yaml.MarshalWithOptions(arts,
			yaml.UseLiteralStyleIfMultiline(true))

	default:
		return pkg.ErrInvalidFormat.With(slog.String("format", format))
	}

	if err != nil {
		return pkg.ErrInvalidFormat.With(slog.String("format", format)).Wrap(err)
	}

	_, err = w.Write(data)

	return err
}

// printCode writes each artifact's code. Several artifacts are separated by
// a header naming the next one.
func printCode(w io.Writer, arts []workbook.Artifact) error {
	for i, art := range arts {
		if len(arts) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}

			fmt.Fprintf(w, "==> %s <==\n", art.Name)
		}

		if _, err := fmt.Fprintln(w, art.Code); err != nil {
			return err
		}
	}

	return nil
}

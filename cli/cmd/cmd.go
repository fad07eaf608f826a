package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/kelm/log"
	"github.com/ardnew/kelm/pkg"
	"github.com/ardnew/kelm/plugin"
	"github.com/ardnew/kelm/workbook"
)

type (
	kongContextKey struct{}
	inputKey       struct{}
	outputKey      struct{}
)

// WithContext returns a context carrying the parsed kong context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, kongContextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(kongContextKey{}).(*kong.Context)

	return ktx
}

// WithInput returns a context whose standard input is r.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// WithOutput returns a context whose standard output is w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// stdinSource names standard input as a workbook source.
const stdinSource = "-"

// readSource returns the content of the named workbook.
func readSource(ctx context.Context, source string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if source == "" || source == stdinSource {
		data, err = io.ReadAll(inputFrom(ctx))
	} else {
		data, err = os.ReadFile(source)
	}

	if err != nil {
		return nil, pkg.ErrReadInput.
			With(slog.String("source", source)).
			Wrap(err)
	}

	return data, nil
}

// load reads and parses the named workbook.
func load(
	ctx context.Context,
	reg *plugin.Registry,
	source string,
) (*workbook.Workbook, error) {
	data, err := readSource(ctx, source)
	if err != nil {
		return nil, err
	}

	wb, err := reg.Parse(data)
	if err != nil {
		return nil, pkg.WrapError(err).With(slog.String("source", source))
	}

	log.DebugContext(ctx, "parsed workbook",
		slog.String("source", source),
		slog.String("module", wb.ModuleName),
		slog.Int("blocks", len(wb.Blocks)),
	)

	return wb, nil
}
